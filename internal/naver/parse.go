package naver

import (
	"errors"
	"strings"

	xhtml "golang.org/x/net/html"

	"batterbox/internal/table"
)

// ErrNotFound means the expected stats region is absent from the page,
// usually because the player has no records there.
var ErrNotFound = errors.New("stats region not found")

// maxGameLogRows caps the per-game table at the most recent games.
const maxGameLogRows = 15

// Page regions of the live-stats service.
const (
	gameLogAreaID        = "_gameLogArea"
	gameLogTitleListID   = "_gameLogTitleList"
	careerStatsAreaID    = "_careerStatsArea"
	careerStatsTitlesID  = "_careerStatsTitleList"
	careerTabSelector    = `[data-tab="careerStats"]`
	gameLogDateSelector  = "a"
	careerSeasonSelector = "li"
)

// parseGameLog extracts the per-game record table. Dates come from a
// separate title list and become the leading 일자 column.
func parseGameLog(doc *xhtml.Node) (*table.Table, error) {
	var dates []string
	if list := findByID(doc, gameLogTitleListID); list != nil {
		for _, a := range collectAll(list, gameLogDateSelector) {
			dates = append(dates, nodeText(a))
		}
	}

	area := findByID(doc, gameLogAreaID)
	if area == nil {
		return nil, ErrNotFound
	}
	tbl := findFirst(area, "table")
	if tbl == nil {
		return nil, ErrNotFound
	}

	headers := append([]string{"일자"}, tableHeaders(tbl)...)
	out := table.New("최근 경기 기록", headers)

	for i, tr := range tableBodyRows(tbl) {
		if i >= maxGameLogRows {
			break
		}
		date := ""
		if i < len(dates) {
			date = dates[i]
		}
		out.AddRow(append([]string{date}, rowCells(tr)...)...)
	}
	if out.Len() == 0 {
		return nil, ErrNotFound
	}
	return out, nil
}

// parseCareer extracts the career table with a leading 시즌 column and keeps
// only rows whose season label contains seasonFilter (empty keeps all).
func parseCareer(doc *xhtml.Node, seasonFilter string) (*table.Table, error) {
	var seasons []string
	if list := findByID(doc, careerStatsTitlesID); list != nil {
		for _, li := range collectAll(list, careerSeasonSelector) {
			if text := nodeText(li); text != "" {
				seasons = append(seasons, text)
			}
		}
	}

	area := findByID(doc, careerStatsAreaID)
	if area == nil {
		return nil, ErrNotFound
	}
	tbl := findFirst(area, "table")
	if tbl == nil {
		return nil, ErrNotFound
	}

	headers := append([]string{"시즌"}, tableHeaders(tbl)...)
	out := table.New("통산 기록", headers)

	filter := strings.ToLower(seasonFilter)
	for i, tr := range tableBodyRows(tbl) {
		season := ""
		if i < len(seasons) {
			season = seasons[i]
		}
		if filter != "" && !strings.Contains(strings.ToLower(season), filter) {
			continue
		}
		out.AddRow(append([]string{season}, rowCells(tr)...)...)
	}
	if out.Len() == 0 {
		return nil, ErrNotFound
	}
	return out, nil
}

// --- DOM traversal helpers ---

func findByID(n *xhtml.Node, id string) *xhtml.Node {
	if n.Type == xhtml.ElementNode {
		for _, attr := range n.Attr {
			if attr.Key == "id" && attr.Val == id {
				return n
			}
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findByID(c, id); found != nil {
			return found
		}
	}
	return nil
}

func findFirst(n *xhtml.Node, tag string) *xhtml.Node {
	if n.Type == xhtml.ElementNode && n.Data == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findFirst(c, tag); found != nil {
			return found
		}
	}
	return nil
}

func collectAll(n *xhtml.Node, tag string) []*xhtml.Node {
	var out []*xhtml.Node
	var walk func(*xhtml.Node)
	walk = func(cur *xhtml.Node) {
		if cur.Type == xhtml.ElementNode && cur.Data == tag {
			out = append(out, cur)
		}
		for c := cur.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return out
}

func nodeText(n *xhtml.Node) string {
	var sb strings.Builder
	var walk func(*xhtml.Node)
	walk = func(cur *xhtml.Node) {
		if cur.Type == xhtml.TextNode {
			sb.WriteString(cur.Data)
		}
		for c := cur.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.TrimSpace(sb.String())
}

func tableHeaders(tbl *xhtml.Node) []string {
	var headers []string
	if thead := findFirst(tbl, "thead"); thead != nil {
		for _, th := range collectAll(thead, "th") {
			headers = append(headers, nodeText(th))
		}
	}
	return headers
}

func tableBodyRows(tbl *xhtml.Node) []*xhtml.Node {
	if tbody := findFirst(tbl, "tbody"); tbody != nil {
		return collectAll(tbody, "tr")
	}
	return nil
}

func rowCells(tr *xhtml.Node) []string {
	var cells []string
	for _, td := range collectAll(tr, "td") {
		cells = append(cells, nodeText(td))
	}
	return cells
}
