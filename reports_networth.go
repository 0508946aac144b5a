package networth

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

// AssetValue is one report row: an asset's recorded native value and its USD
// equivalent on the report date.
type AssetValue struct {
	ID     string
	Name   string
	Native Money
	USD    Money
}

// CategoryGroup holds the rows of one category with their USD subtotal and
// the category's share of the report total.
type CategoryGroup struct {
	Category   string
	Assets     []AssetValue
	Subtotal   Money
	Allocation Percent
}

// NetWorthReport is the point-in-time breakdown of the portfolio, everything
// converted to USD at the snapshot's recorded rates.
type NetWorthReport struct {
	Date     Date
	Category string // filter applied, empty when reporting all categories
	Groups   []CategoryGroup
	Total    Money
}

// NewNetWorthReport builds the breakdown for the snapshot on the given date,
// or for the latest snapshot when on is the zero date. A non-empty category
// restricts the report to that category, matched case-insensitively. Assets
// without an entry in the snapshot are omitted from the rows; a category can
// still appear with no rows when none of its assets were measured that day.
func (p *Portfolio) NewNetWorthReport(on Date, category string) (*NetWorthReport, error) {
	var s Snapshot
	if on.IsZero() {
		var ok bool
		if s, ok = p.Latest(); !ok {
			return nil, fmt.Errorf("%w: record one first", ErrNoSnapshots)
		}
	} else {
		var ok bool
		if s, ok = p.SnapshotOn(on); !ok {
			return nil, fmt.Errorf("%w: snapshot on %s", ErrNotFound, on)
		}
	}

	filter := strings.ToLower(strings.TrimSpace(category))
	owned := make([]Asset, 0, len(p.assets))
	for _, a := range p.assets {
		if filter == "" || a.Category == filter {
			owned = append(owned, a)
		}
	}
	if filter != "" && len(owned) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrEmptyCategory, category)
	}

	byCategory := map[string][]AssetValue{}
	subtotals := map[string]decimal.Decimal{}
	total := decimal.Decimal{}
	for _, a := range owned {
		if _, ok := byCategory[a.Category]; !ok {
			byCategory[a.Category] = nil
			subtotals[a.Category] = decimal.Decimal{}
		}
		value, ok := s.Entries[a.ID]
		if !ok {
			continue
		}
		usd, err := ToUSD(value, a.Currency, s.Rates)
		if err != nil {
			return nil, fmt.Errorf("asset %q on %s: %w", a.ID, s.Date, err)
		}
		byCategory[a.Category] = append(byCategory[a.Category], AssetValue{
			ID:     a.ID,
			Name:   a.Name,
			Native: M(value, a.Currency),
			USD:    M(usd, USD),
		})
		subtotals[a.Category] = subtotals[a.Category].Add(usd)
		total = total.Add(usd)
	}

	r := &NetWorthReport{Date: s.Date, Category: filter, Total: M(total, USD)}
	for _, c := range slices.Sorted(maps.Keys(byCategory)) {
		r.Groups = append(r.Groups, CategoryGroup{
			Category:   c,
			Assets:     byCategory[c],
			Subtotal:   M(subtotals[c], USD),
			Allocation: PercentOf(subtotals[c], total),
		})
	}
	return r, nil
}
