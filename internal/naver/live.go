package naver

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/launcher/flags"
	"github.com/go-rod/rod/lib/proto"
	xhtml "golang.org/x/net/html"

	"batterbox/internal/logging"
	"batterbox/internal/table"
)

// Scraper fetches live player records from the stats page with a headless
// browser. Each call launches and tears down its own browser; the page is
// script-rendered, so the scraper waits a settle delay before reading it.
type Scraper struct {
	statsURL    string // printf template taking the player id
	headless    bool
	pageTimeout time.Duration
	settleDelay time.Duration
}

// NewScraper creates a Scraper.
func NewScraper(statsURL string, headless bool, pageTimeout, settleDelay time.Duration) *Scraper {
	if statsURL == "" {
		statsURL = "https://m.sports.naver.com/player/index?playerId=%s&category=kbo&tab=record"
	}
	if pageTimeout <= 0 {
		pageTimeout = 45 * time.Second
	}
	if settleDelay <= 0 {
		settleDelay = 4 * time.Second
	}
	return &Scraper{
		statsURL:    statsURL,
		headless:    headless,
		pageTimeout: pageTimeout,
		settleDelay: settleDelay,
	}
}

// RecentGames returns the player's per-game record table, newest first,
// capped at the most recent games. ErrNotFound means the page has no game
// log for this player.
func (s *Scraper) RecentGames(ctx context.Context, playerID string) (*table.Table, error) {
	doc, err := s.fetch(ctx, playerID, false)
	if err != nil {
		return nil, err
	}
	t, err := parseGameLog(doc)
	if err != nil {
		return nil, err
	}
	logging.Gateway("game log for %s: %d rows", playerID, t.Len())
	return t, nil
}

// CareerStats returns the player's career table filtered to rows whose
// season label contains seasonFilter. ErrNotFound covers both a missing
// career region and a season with no rows.
func (s *Scraper) CareerStats(ctx context.Context, playerID, seasonFilter string) (*table.Table, error) {
	doc, err := s.fetch(ctx, playerID, true)
	if err != nil {
		return nil, err
	}
	t, err := parseCareer(doc, seasonFilter)
	if err != nil {
		return nil, err
	}
	logging.Gateway("career stats for %s (season %q): %d rows", playerID, seasonFilter, t.Len())
	return t, nil
}

// fetch loads the player page and returns the parsed DOM. When career is
// set, it clicks over to the career tab first; a missing tab is not an
// error, some player pages render the region without one.
func (s *Scraper) fetch(ctx context.Context, playerID string, career bool) (*xhtml.Node, error) {
	pageURL := fmt.Sprintf(s.statsURL, playerID)

	l := launcher.New().
		Headless(s.headless).
		Set(flags.NoSandbox).
		Set("disable-dev-shm-usage")
	controlURL, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("launch browser: %w", err)
	}

	browser := rod.New().ControlURL(controlURL).Context(ctx)
	if err := browser.Connect(); err != nil {
		// The launched process outlives a failed connect unless killed here
		l.Kill()
		return nil, fmt.Errorf("connect browser: %w", err)
	}
	defer func() {
		_ = browser.Close()
		l.Cleanup()
	}()

	page, err := browser.Page(proto.TargetCreateTarget{URL: pageURL})
	if err != nil {
		return nil, fmt.Errorf("open page: %w", err)
	}
	page = page.Timeout(s.pageTimeout)
	if err := page.WaitLoad(); err != nil {
		return nil, fmt.Errorf("load page: %w", err)
	}
	if err := s.settle(ctx, s.settleDelay); err != nil {
		return nil, err
	}

	if career {
		if el, err := page.Element(careerTabSelector); err == nil {
			if err := el.Click(proto.InputMouseButtonLeft, 1); err == nil {
				if err := s.settle(ctx, 2*time.Second); err != nil {
					return nil, err
				}
			}
		}
	}

	raw, err := page.HTML()
	if err != nil {
		return nil, fmt.Errorf("read page: %w", err)
	}
	doc, err := xhtml.Parse(strings.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("parse page: %w", err)
	}
	return doc, nil
}

func (s *Scraper) settle(ctx context.Context, d time.Duration) error {
	select {
	case <-time.After(d):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
