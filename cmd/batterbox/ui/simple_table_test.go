package ui

import (
	"strings"
	"testing"

	"batterbox/internal/table"
)

func TestRenderTable(t *testing.T) {
	tbl := table.New("최근 경기", []string{"일자", "타율"})
	tbl.AddRow("10.01", "0.300")
	tbl.AddRow("10.02", "0.314")

	out := RenderTable(tbl, NewStyles(LightTheme()))
	for _, want := range []string{"최근 경기", "일자", "타율", "10.01", "0.314"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	// title, header, divider, two data rows
	if len(lines) < 5 {
		t.Errorf("got %d lines, want at least 5", len(lines))
	}
}

func TestRenderTableEmpty(t *testing.T) {
	if out := RenderTable(nil, DefaultStyles()); out != "" {
		t.Errorf("nil table rendered %q", out)
	}
	empty := table.New("빈 표", []string{"a"})
	if out := RenderTable(empty, DefaultStyles()); out != "" {
		t.Errorf("empty table rendered %q", out)
	}
}

func TestDetectThemeFromColorTerm(t *testing.T) {
	t.Setenv("COLORFGBG", "15;0")
	if theme := DetectTheme(); !theme.IsDark {
		t.Error("background 0 should detect dark")
	}

	t.Setenv("COLORFGBG", "0;15")
	if theme := DetectTheme(); theme.IsDark {
		t.Error("background 15 should detect light")
	}
}
