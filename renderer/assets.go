package renderer

import (
	"bytes"
	"strings"

	"github.com/etnz/networth"
	md "github.com/nao1215/markdown"
)

// AssetsMarkdown renders the asset registry.
func AssetsMarkdown(p *networth.Portfolio) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Assets")

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
		},
		Header: []string{"ID", "Name", "Category", "Currency"},
	}
	for a := range p.Assets() {
		table.Rows = append(table.Rows, []string{
			a.ID,
			a.Name,
			strings.ToUpper(a.Category),
			a.Currency,
		})
	}
	doc.Table(table)

	return doc.String()
}
