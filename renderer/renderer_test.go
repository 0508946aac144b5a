package renderer

import (
	"strings"
	"testing"
	"time"

	"github.com/etnz/networth"
	"github.com/shopspring/decimal"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func testPortfolio(t *testing.T) *networth.Portfolio {
	t.Helper()
	p := networth.NewPortfolio()
	for _, a := range []struct{ id, name, category, currency string }{
		{"vti", "Vanguard Total Market", "etf", "USD"},
		{"sav", "Swiss Savings", "bank", "CHF"},
	} {
		if err := p.AddAsset(a.id, a.name, a.category, a.currency); err != nil {
			t.Fatal(err)
		}
	}
	err := p.UpsertSnapshot(networth.NewDate(2025, time.July, 15),
		map[string]decimal.Decimal{"CHF": dec("0.9")},
		map[string]decimal.Decimal{"vti": dec("12500"), "sav": dec("9000")},
	)
	if err != nil {
		t.Fatal(err)
	}
	return p
}

// headings parses a markdown document and returns its heading texts, so the
// tests assert structure and not byte-exact layout.
func headings(t *testing.T, doc string) []string {
	t.Helper()
	content := []byte(doc)
	root := goldmark.DefaultParser().Parse(text.NewReader(content))

	var out []string
	ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if h, ok := n.(*ast.Heading); ok {
			var b strings.Builder
			for i := 0; i < h.Lines().Len(); i++ {
				line := h.Lines().At(i)
				b.Write(line.Value(content))
			}
			out = append(out, strings.TrimSpace(b.String()))
		}
		return ast.WalkContinue, nil
	})
	return out
}

func TestNetWorthMarkdown(t *testing.T) {
	p := testPortfolio(t)
	r, err := p.NewNetWorthReport(networth.Date{}, "")
	if err != nil {
		t.Fatal(err)
	}

	doc := NetWorthMarkdown(r)

	hs := headings(t, doc)
	if len(hs) == 0 || hs[0] != "Net Worth on 2025-07-15" {
		t.Errorf("headings = %v", hs)
	}
	for _, want := range []string{"BANK", "ETF", "Total", "Allocation"} {
		if !strings.Contains(strings.Join(hs, "\n"), want) {
			t.Errorf("missing heading %q in %v", want, hs)
		}
	}
	for _, want := range []string{"Vanguard Total Market", "$12,500.00", "$22,500.00", "55.56%"} {
		if !strings.Contains(doc, want) {
			t.Errorf("document missing %q:\n%s", want, doc)
		}
	}
}

func TestNetWorthMarkdownFiltered(t *testing.T) {
	p := testPortfolio(t)
	r, err := p.NewNetWorthReport(networth.Date{}, "etf")
	if err != nil {
		t.Fatal(err)
	}

	doc := NetWorthMarkdown(r)
	if !strings.Contains(doc, "Net Worth on 2025-07-15 (ETF)") {
		t.Errorf("title should name the filter:\n%s", doc)
	}
	if strings.Contains(doc, "Allocation") {
		t.Error("filtered report should not show the allocation section")
	}
	if strings.Contains(doc, "Swiss Savings") {
		t.Error("filtered report should not show other categories")
	}
}

func TestHistoryMarkdown(t *testing.T) {
	p := testPortfolio(t)
	if err := p.UpsertSnapshot(networth.NewDate(2025, time.August, 1),
		map[string]decimal.Decimal{"CHF": dec("0.9")},
		map[string]decimal.Decimal{"vti": dec("13000"), "sav": dec("9000")},
	); err != nil {
		t.Fatal(err)
	}
	r, err := p.NewHistoryReport(networth.All, networth.NewDate(2025, time.August, 15))
	if err != nil {
		t.Fatal(err)
	}

	doc := HistoryMarkdown(r)
	if hs := headings(t, doc); len(hs) == 0 || hs[0] != "Net Worth History (ALL)" {
		t.Errorf("headings = %v", hs)
	}
	// first row has no deltas, second row gains $500.
	for _, want := range []string{noDelta, "2025-07-15", "2025-08-01", "+$500.00"} {
		if !strings.Contains(doc, want) {
			t.Errorf("document missing %q:\n%s", want, doc)
		}
	}
}

func TestAssetsMarkdown(t *testing.T) {
	doc := AssetsMarkdown(testPortfolio(t))
	for _, want := range []string{"vti", "Vanguard Total Market", "ETF", "USD", "sav", "CHF"} {
		if !strings.Contains(doc, want) {
			t.Errorf("document missing %q:\n%s", want, doc)
		}
	}
}

func TestSnapshotsMarkdown(t *testing.T) {
	p := testPortfolio(t)
	doc := SnapshotsMarkdown(p)
	for _, want := range []string{"2025-07-15", "USD, CHF"} {
		if !strings.Contains(doc, want) {
			t.Errorf("document missing %q:\n%s", want, doc)
		}
	}

	// a USD-only portfolio summarizes its currencies accordingly.
	solo := networth.NewPortfolio()
	if err := solo.AddAsset("vti", "Vanguard", "etf", "USD"); err != nil {
		t.Fatal(err)
	}
	if err := solo.UpsertSnapshot(networth.NewDate(2025, time.July, 15), nil,
		map[string]decimal.Decimal{"vti": dec("1")}); err != nil {
		t.Fatal(err)
	}
	if doc := SnapshotsMarkdown(solo); !strings.Contains(doc, "USD only") {
		t.Errorf("document missing %q:\n%s", "USD only", doc)
	}
}
