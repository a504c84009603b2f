// Package table provides the column-headed table value passed between the
// live-stats gateway, the answer router, and the presentation layer.
package table

import "strings"

// Table is an ordered, column-headed grid of string cells.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
}

// New creates a table with the given title and headers.
func New(title string, headers []string) *Table {
	return &Table{
		Title:   title,
		Headers: headers,
		Rows:    make([][]string, 0),
	}
}

// AddRow appends a row.
func (t *Table) AddRow(row ...string) {
	t.Rows = append(t.Rows, row)
}

// Len returns the number of rows.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Rows)
}

// ColumnIndex returns the index of the named column, or -1.
// Matches exactly first, then case-insensitively.
func (t *Table) ColumnIndex(name string) int {
	for i, h := range t.Headers {
		if h == name {
			return i
		}
	}
	lower := strings.ToLower(name)
	for i, h := range t.Headers {
		if strings.ToLower(h) == lower {
			return i
		}
	}
	return -1
}

// Cell returns the cell at (row, col), or "" when out of range.
func (t *Table) Cell(row, col int) string {
	if t == nil || row < 0 || row >= len(t.Rows) {
		return ""
	}
	r := t.Rows[row]
	if col < 0 || col >= len(r) {
		return ""
	}
	return r[col]
}

// Value returns the named column's cell in the given row.
func (t *Table) Value(row int, column string) string {
	return t.Cell(row, t.ColumnIndex(column))
}

// FilterRows returns a new table keeping only rows for which keep returns
// true. Headers and title are shared, rows are not copied.
func (t *Table) FilterRows(keep func(row []string) bool) *Table {
	out := &Table{Title: t.Title, Headers: t.Headers}
	for _, row := range t.Rows {
		if keep(row) {
			out.Rows = append(out.Rows, row)
		}
	}
	return out
}

// Clone returns a deep copy.
func (t *Table) Clone() *Table {
	if t == nil {
		return nil
	}
	out := &Table{Title: t.Title, Headers: append([]string(nil), t.Headers...)}
	for _, row := range t.Rows {
		out.Rows = append(out.Rows, append([]string(nil), row...))
	}
	return out
}
