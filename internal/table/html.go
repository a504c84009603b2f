package table

import (
	"html"
	"strings"
)

// Styling for exported transcript tables. Mirrors the dark conversational
// theme used by the terminal renderer.
const styledTableCSS = `<style>
.styled-table {
    color: white;
    border-collapse: collapse;
    font-size: 14px;
    width: auto;
    table-layout: auto;
    white-space: nowrap;
}
.styled-table th {
    background-color: #222;
    color: #4682B4;
    padding: 8px 10px;
    text-align: center;
}
.styled-table td {
    padding: 6px 10px;
    text-align: center;
    border-bottom: 1px solid #444;
}
.styled-table tr:hover {
    background-color: #333;
}
</style>`

// RenderHTML renders the table as a styled HTML fragment.
func (t *Table) RenderHTML() string {
	if t == nil || len(t.Rows) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(styledTableCSS)
	sb.WriteString("\n<div><table class=\"styled-table\">\n<thead><tr>")
	for _, h := range t.Headers {
		sb.WriteString("<th>")
		sb.WriteString(html.EscapeString(h))
		sb.WriteString("</th>")
	}
	sb.WriteString("</tr></thead>\n<tbody>\n")
	for _, row := range t.Rows {
		sb.WriteString("<tr>")
		for i := range t.Headers {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			sb.WriteString("<td>")
			sb.WriteString(html.EscapeString(cell))
			sb.WriteString("</td>")
		}
		sb.WriteString("</tr>\n")
	}
	sb.WriteString("</tbody></table></div>")
	return sb.String()
}
