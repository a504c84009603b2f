package router

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"batterbox/internal/intent"
	"batterbox/internal/logging"
	"batterbox/internal/naver"
	"batterbox/internal/store"
)

// teamNumberPattern matches a "팀명 12번" jersey lookup.
var teamNumberPattern = regexp.MustCompile(`([a-zA-Z가-힣]+)\s*(\d{1,2})번`)

// News trigger words for team questions.
var teamNewsWords = []string{
	"뉴스", "소식", "인스타", "기사", "근황", "최근 이슈",
	"요즘 어때", "요즘 소식", "인터뷰", "요즘 근황", "요즘 뭐해",
}

// teamNumber resolves a "팀명 N번" question to a player profile.
func (r *Router) teamNumber(userInput string) (Reply, bool) {
	m := teamNumberPattern.FindStringSubmatch(userInput)
	if m == nil {
		return Reply{}, false
	}
	team := store.CanonicalTeam(m[1])
	number := strings.TrimSpace(m[2])

	p, ok := r.store.FindByTeamAndNumber(team, number)
	if !ok {
		return Reply{
			Content: fmt.Sprintf("%s %s번 선수 정보를 찾을 수 없습니다.", team, number),
			Intent:  intent.Profile,
		}, true
	}
	return Reply{
		Content: fmt.Sprintf("📌 %s %s번은 %s 선수입니다.", team, number, p.Name),
		Profile: r.store.ProfileTable(p),
		Intent:  intent.Profile,
	}, true
}

// teamQuestion handles a question that names a team but no player: news
// first, then a roster-grounded narrative, then general league context.
func (r *Router) teamQuestion(ctx context.Context, userInput, lower, team string) Reply {
	if containsAny(lower, teamNewsWords) {
		return r.teamNews(ctx, team)
	}

	players := r.store.PlayersForTeam(team)
	if len(players) > 0 {
		names := make([]string, 0, len(players))
		for _, p := range players {
			names = append(names, p.Name)
		}
		text, err := r.narrator.TeamGrounded(ctx, userInput, team, names)
		if err != nil {
			return Reply{Content: fmt.Sprintf("%s 소속 선수로는 %s 등이 있습니다.", team, strings.Join(truncateNames(names, 5), ", "))}
		}
		return Reply{Content: text}
	}

	text, err := r.narrator.TeamUngrounded(ctx, userInput, team)
	if err != nil {
		return Reply{Content: fmt.Sprintf("%s 구단에 대한 정보를 지금은 답변드리기 어렵습니다. 다시 질문해주세요.", team)}
	}
	return Reply{Content: text}
}

// teamNews builds the team news digest: social link plus recent articles.
func (r *Router) teamNews(ctx context.Context, team string) Reply {
	var sb strings.Builder
	fmt.Fprintf(&sb, "📢 %s의 최근 소식입니다.\n\n", team)
	if url, ok := r.store.SocialLinkFor(team); ok {
		fmt.Fprintf(&sb, "📸 구단 인스타그램: [바로가기](%s)\n\n", url)
	}

	items, err := r.news.Search(ctx, naver.TeamNewsQuery(team))
	if err != nil {
		logging.GatewayError("team news for %s: %v", team, err)
		items = nil
	}
	if len(items) > 0 {
		sb.WriteString("📰 야구 관련 뉴스:\n")
		for i, item := range items {
			fmt.Fprintf(&sb, "[%d] [%s](%s)\n", i+1, item.Title, item.Link)
		}
	} else {
		sb.WriteString("📰 관련 뉴스가 없습니다. 대신 구단 인스타그램을 확인해보세요!")
	}
	return Reply{Content: sb.String(), Intent: intent.News}
}

// Stat words that mark a garbled player-name question.
var typoStatWords = []string{
	"성적", "홈런", "타율", "ops", "방어율", "era", "삼진", "이닝", "경기", "요약", "평가",
}

// noNameQuestion handles input with no recognized player: a stored social
// team routes to team analysis, short or stat-flavored input asks for a
// retype, everything else goes to the free-form narrative.
func (r *Router) noNameQuestion(ctx context.Context, userInput, lower string) Reply {
	if team, ok := r.store.FindSocialTeamIn(lower); ok {
		text, err := r.narrator.TeamContext(ctx, userInput, team)
		if err != nil {
			return Reply{Content: fmt.Sprintf("%s 구단에 대한 정보를 지금은 답변드리기 어렵습니다. 다시 질문해주세요.", strings.ToUpper(team))}
		}
		return Reply{Content: text}
	}

	if koreanRuneCount(userInput) <= 2 || hasWhitespace(userInput) || containsAny(lower, typoStatWords) {
		return Reply{Content: "질문을 다시 입력해주세요. (선수 이름을 정확히 입력해주세요)"}
	}

	text, err := r.narrator.FreeForm(ctx, userInput)
	if err != nil {
		return Reply{Content: "질문을 다시 입력해주세요. (선수 이름을 정확히 입력해주세요)"}
	}
	return Reply{Content: text}
}

func truncateNames(names []string, n int) []string {
	if len(names) > n {
		return names[:n]
	}
	return names
}
