// Package router turns one user question into one answer. A fixed cascade of
// strategies runs in order; the first one whose trigger matches produces the
// reply. Keyword triggers are authoritative, the generative intent label is
// advisory and only recorded on the reply.
package router

import (
	"context"
	"strings"
	"unicode"
	"unicode/utf8"

	"batterbox/internal/intent"
	"batterbox/internal/logging"
	"batterbox/internal/narrative"
	"batterbox/internal/naver"
	"batterbox/internal/store"
	"batterbox/internal/table"
)

// LiveStats fetches a player's live record tables.
type LiveStats interface {
	RecentGames(ctx context.Context, playerID string) (*table.Table, error)
	CareerStats(ctx context.Context, playerID, seasonFilter string) (*table.Table, error)
}

// NewsSearcher runs one news query.
type NewsSearcher interface {
	Search(ctx context.Context, query string) ([]naver.NewsItem, error)
}

// Reply is one assistant answer. Content is always set; Table, Profile, and
// HTML are optional payloads for tabular answers.
type Reply struct {
	Content string
	Table   *table.Table
	Profile *table.Table
	HTML    string

	// Intent is the category of the branch that produced the answer.
	// Branches with no category of their own carry the advisory classifier
	// label instead.
	Intent intent.Intent
}

// Router answers questions against the reference store, the live gateways,
// and the narrative generator.
type Router struct {
	store      *store.Store
	live       LiveStats
	news       NewsSearcher
	narrator   *narrative.Generator
	classifier *intent.Classifier
	season     string
}

// New creates a Router. season scopes live career lookups (e.g. "2025").
func New(st *store.Store, live LiveStats, news NewsSearcher, narrator *narrative.Generator, classifier *intent.Classifier, season string) *Router {
	if season == "" {
		season = "2025"
	}
	return &Router{
		store:      st,
		live:       live,
		news:       news,
		narrator:   narrator,
		classifier: classifier,
		season:     season,
	}
}

// Route answers one question. It never returns an error; gateway and
// generation failures degrade to apologetic deterministic sentences so the
// session survives them.
func (r *Router) Route(ctx context.Context, userInput string) Reply {
	userInput = strings.TrimSpace(userInput)
	lower := strings.ToLower(userInput)

	if reply, ok := r.teamNumber(userInput); ok {
		return reply
	}
	if team, ok := store.FindTeamIn(userInput); ok {
		return r.teamQuestion(ctx, userInput, lower, team)
	}

	name := r.resolveName(userInput)
	if name == "" {
		return r.noNameQuestion(ctx, userInput, lower)
	}

	logging.Router("resolved player %q from %q", name, userInput)
	label := r.classifier.Classify(ctx, userInput)
	reply := r.playerQuestion(ctx, userInput, lower, name)
	if reply.Intent == "" {
		reply.Intent = label
	}
	return reply
}

// resolveName finds a stored player name in the question: an exact match of
// the input with the 선수 suffix stripped wins, then the first stored name
// contained anywhere in the input.
func (r *Router) resolveName(userInput string) string {
	candidate := strings.TrimSpace(strings.ReplaceAll(userInput, "선수", ""))
	for _, n := range r.store.Names() {
		if n == candidate {
			return n
		}
	}
	for _, n := range r.store.Names() {
		if utf8.RuneCountInString(n) >= 2 && strings.Contains(userInput, n) {
			return n
		}
	}
	return ""
}

func koreanRuneCount(s string) int {
	count := 0
	for _, r := range s {
		if r >= '가' && r <= '힣' {
			count++
		}
	}
	return count
}

func hasWhitespace(s string) bool {
	return strings.IndexFunc(s, unicode.IsSpace) >= 0
}

func containsAny(haystack string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(haystack, n) {
			return true
		}
	}
	return false
}

// extractKoreanNames pulls 2-4 syllable Hangul runs out of the question and
// keeps the ones that are stored player names.
func (r *Router) extractKoreanNames(userInput string) []string {
	var tokens []string
	var run []rune
	flush := func() {
		if len(run) >= 2 && len(run) <= 4 {
			tokens = append(tokens, string(run))
		}
		run = run[:0]
	}
	for _, c := range userInput {
		if c >= '가' && c <= '힣' {
			run = append(run, c)
		} else {
			flush()
		}
	}
	flush()

	var names []string
	for _, tok := range tokens {
		if r.store.KnownName(tok) {
			names = append(names, tok)
		}
	}
	return names
}
