package gherkin

import "strings"

// ExamplesTable is the canonical {columns, rows} form of an Examples block.
// Column and row order are preserved exactly as parsed; every cell stays a
// string. Rows is never nil, so a header-only table marshals as "rows": [].
type ExamplesTable struct {
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// Render writes the table back out as pipe-delimited Gherkin text, header
// row first.
func (t *ExamplesTable) Render() string {
	var b strings.Builder
	renderRow(&b, t.Columns)
	for _, row := range t.Rows {
		renderRow(&b, row)
	}
	return b.String()
}

func renderRow(b *strings.Builder, cells []string) {
	b.WriteString("|")
	for _, c := range cells {
		b.WriteString(" ")
		b.WriteString(c)
		b.WriteString(" |")
	}
	b.WriteString("\n")
}
