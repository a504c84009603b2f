package naver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newsServer(t *testing.T, status int, items []map[string]string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("X-Naver-Client-Id"); got != "test-id" {
			t.Errorf("client id header = %q", got)
		}
		if got := r.Header.Get("X-Naver-Client-Secret"); got != "test-secret" {
			t.Errorf("client secret header = %q", got)
		}
		q := r.URL.Query()
		if q.Get("sort") != "date" {
			t.Errorf("sort = %q, want date", q.Get("sort"))
		}
		if q.Get("display") != "3" {
			t.Errorf("display = %q, want 3", q.Get("display"))
		}

		w.WriteHeader(status)
		if status == http.StatusOK {
			_ = json.NewEncoder(w).Encode(map[string]any{"items": items})
		}
	}))
}

func TestSearch(t *testing.T) {
	srv := newsServer(t, http.StatusOK, []map[string]string{
		{"title": "<b>양의지</b> 결승타&hellip;", "link": "https://news.example/1"},
		{"title": "두산 연승", "link": "https://news.example/2"},
	})
	defer srv.Close()

	c := NewNewsClient(srv.URL, "test-id", "test-secret", 3, time.Second)
	items, err := c.Search(context.Background(), PlayerNewsQuery("양의지"))
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 2 {
		t.Fatalf("items = %d, want 2", len(items))
	}
	if items[0].Title != "양의지 결승타…" {
		t.Errorf("title = %q, markup not stripped", items[0].Title)
	}
	if items[0].Link != "https://news.example/1" {
		t.Errorf("link = %q", items[0].Link)
	}
}

func TestSearchNonOKReturnsEmpty(t *testing.T) {
	srv := newsServer(t, http.StatusTooManyRequests, nil)
	defer srv.Close()

	c := NewNewsClient(srv.URL, "test-id", "test-secret", 3, time.Second)
	items, err := c.Search(context.Background(), "두산")
	if err != nil {
		t.Fatalf("non-OK status should not be an error, got %v", err)
	}
	if len(items) != 0 {
		t.Errorf("items = %d, want 0", len(items))
	}
}

func TestSearchServerDown(t *testing.T) {
	srv := newsServer(t, http.StatusOK, nil)
	srv.Close()

	c := NewNewsClient(srv.URL, "test-id", "test-secret", 3, time.Second)
	if _, err := c.Search(context.Background(), "두산"); err == nil {
		t.Error("expected transport error")
	}
}

func TestQueryBuilders(t *testing.T) {
	if got := PlayerNewsQuery("양의지"); got != "양의지 야구선수 KBO 프로야구 경기" {
		t.Errorf("player query = %q", got)
	}
	if got := TeamNewsQuery("두산"); got != "두산 야구 KBO 프로야구 경기" {
		t.Errorf("team query = %q", got)
	}
}

func TestStripMarkup(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{"<b>bold</b> rest", "bold rest"},
		{"a &amp; b", "a & b"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := stripMarkup(tc.in); got != tc.want {
			t.Errorf("stripMarkup(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
