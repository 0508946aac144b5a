package renderer

import (
	"bytes"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/etnz/networth"
	md "github.com/nao1215/markdown"
)

// SnapshotsMarkdown renders the snapshot index: one row per date with its
// entry count and the currencies its rate table covers.
func SnapshotsMarkdown(p *networth.Portfolio) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Snapshots")

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignLeft,
		},
		Header: []string{"Date", "Entries", "Currencies"},
	}
	for s := range p.Snapshots() {
		table.Rows = append(table.Rows, []string{
			s.Date.String(),
			fmt.Sprintf("%d", len(s.Entries)),
			currencySummary(s),
		})
	}
	doc.Table(table)

	return doc.String()
}

func currencySummary(s networth.Snapshot) string {
	others := slices.Sorted(maps.Keys(s.Rates))
	if len(others) == 0 {
		return "USD only"
	}
	return "USD, " + strings.Join(others, ", ")
}
