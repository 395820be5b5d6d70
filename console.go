package rxkit

import (
	"io"
	"sort"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// RenderBundleTable prints the table sorted by key
func RenderBundleTable(w io.Writer, title string, t Table) {
	keys := make([]int, 0, len(t))
	for k := range t {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetTitle(title)
	tw.AppendHeader(table.Row{"Key", "Value"})
	for _, k := range keys {
		tw.AppendRow(table.Row{k, t[k]})
	}
	tw.AppendFooter(table.Row{"Entries", len(t)})
	tw.Render()
}

// RenderQueryResult prints the rows collected by a RowsQuery
func RenderQueryResult(w io.Writer, q *RowsQuery) {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)

	header := make(table.Row, len(q.Columns))
	for i, c := range q.Columns {
		header[i] = c
	}
	tw.AppendHeader(header)

	for _, r := range q.Rows {
		row := make(table.Row, len(r))
		for i, v := range r {
			if v == "NULL" {
				row[i] = text.Colors{text.FgHiBlack}.Sprint(v)
				continue
			}
			row[i] = v
		}
		tw.AppendRow(row)
	}

	tw.AppendFooter(table.Row{"Rows", len(q.Rows)})
	tw.Render()
}
