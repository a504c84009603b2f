// Package naver provides the two Naver-facing gateways: the news search API
// client and the headless-browser live-stats scraper.
package naver

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	xhtml "golang.org/x/net/html"

	"batterbox/internal/logging"
)

// NewsItem is one news search hit.
type NewsItem struct {
	Title string
	Link  string
}

// NewsClient queries the Naver news search API.
type NewsClient struct {
	httpClient   *http.Client
	baseURL      string
	clientID     string
	clientSecret string
	display      int
}

// NewNewsClient creates a news client. display caps the number of results
// per query.
func NewNewsClient(baseURL, clientID, clientSecret string, display int, timeout time.Duration) *NewsClient {
	if baseURL == "" {
		baseURL = "https://openapi.naver.com/v1/search/news.json"
	}
	if display <= 0 {
		display = 3
	}
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &NewsClient{
		httpClient:   &http.Client{Timeout: timeout},
		baseURL:      baseURL,
		clientID:     clientID,
		clientSecret: clientSecret,
		display:      display,
	}
}

// PlayerNewsQuery builds the search query for a player.
func PlayerNewsQuery(name string) string {
	return fmt.Sprintf("%s 야구선수 KBO 프로야구 경기", name)
}

// TeamNewsQuery builds the search query for a team.
func TeamNewsQuery(team string) string {
	return fmt.Sprintf("%s 야구 KBO 프로야구 경기", team)
}

// Search runs one news query, newest first. A non-success API response
// yields an empty list, not an error; the caller renders "no news" instead
// of failing the answer.
func (c *NewsClient) Search(ctx context.Context, query string) ([]NewsItem, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("display", fmt.Sprintf("%d", c.display))
	params.Set("sort", "date")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build news request: %w", err)
	}
	req.Header.Set("X-Naver-Client-Id", c.clientID)
	req.Header.Set("X-Naver-Client-Secret", c.clientSecret)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("news request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logging.Gateway("news query %q returned status %d", query, resp.StatusCode)
		return nil, nil
	}

	var body struct {
		Items []struct {
			Title string `json:"title"`
			Link  string `json:"link"`
		} `json:"items"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode news response: %w", err)
	}

	items := make([]NewsItem, 0, len(body.Items))
	for _, it := range body.Items {
		items = append(items, NewsItem{
			Title: stripMarkup(it.Title),
			Link:  it.Link,
		})
	}
	logging.Gateway("news query %q: %d items", query, len(items))
	return items, nil
}

// stripMarkup removes the <b> highlight tags the API embeds in titles and
// resolves HTML entities.
func stripMarkup(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return s
	}
	var sb strings.Builder
	tok := xhtml.NewTokenizer(strings.NewReader(s))
	for {
		switch tok.Next() {
		case xhtml.ErrorToken:
			return strings.TrimSpace(sb.String())
		case xhtml.TextToken:
			sb.Write(tok.Text())
		}
	}
}
