// Package renderer turns report structs into markdown documents.
package renderer

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/etnz/networth"
	md "github.com/nao1215/markdown"
)

// NetWorthMarkdown renders the point-in-time breakdown: one table per
// category, a grand total, and the allocation across categories.
func NetWorthMarkdown(r *networth.NetWorthReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	title := fmt.Sprintf("Net Worth on %s", r.Date)
	if r.Category != "" {
		title = fmt.Sprintf("Net Worth on %s (%s)", r.Date, strings.ToUpper(r.Category))
	}
	doc.H1(title)

	for _, g := range r.Groups {
		if len(g.Assets) == 0 {
			continue
		}
		doc.H2(strings.ToUpper(g.Category))
		table := md.TableSet{
			Alignment: []md.TableAlignment{
				md.AlignLeft,
				md.AlignRight,
				md.AlignRight,
			},
			Header: []string{"Asset", "Native", "USD"},
		}
		for _, a := range g.Assets {
			table.Rows = append(table.Rows, []string{
				a.Name,
				a.Native.String(),
				a.USD.String(),
			})
		}
		table.Rows = append(table.Rows, []string{
			md.Bold("Subtotal"), "", md.Bold(g.Subtotal.String()),
		})
		doc.Table(table)
	}

	doc.H2("Total")
	doc.PlainText(md.Bold(r.Total.String()))

	if r.Category == "" && len(r.Groups) > 0 {
		doc.H2("Allocation")
		groups := make([]networth.CategoryGroup, len(r.Groups))
		copy(groups, r.Groups)
		sort.SliceStable(groups, func(i, j int) bool {
			return groups[i].Allocation > groups[j].Allocation
		})
		table := md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
			Header:    []string{"Category", "Share"},
		}
		for _, g := range groups {
			table.Rows = append(table.Rows, []string{
				strings.ToUpper(g.Category),
				g.Allocation.String(),
			})
		}
		doc.Table(table)
	}

	return doc.String()
}
