package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/networth"
	md "github.com/nao1215/markdown"
)

// noDelta marks a change that is undefined for the row.
const noDelta = "—"

// HistoryMarkdown renders the net-worth trend over the report's range.
func HistoryMarkdown(r *networth.HistoryReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Net Worth History (%s)", r.Range))

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Date", "Total (USD)", "Change (USD)", "Change %"},
	}
	for _, e := range r.Entries {
		change, pct := noDelta, noDelta
		if e.Change != nil {
			change = e.Change.SignedString()
		}
		if e.ChangePct != nil {
			pct = e.ChangePct.SignedString()
		}
		table.Rows = append(table.Rows, []string{
			e.Date.String(),
			e.Total.String(),
			change,
			pct,
		})
	}
	doc.Table(table)

	return doc.String()
}
