package networth

import (
	"fmt"
	"maps"
	"slices"

	"github.com/shopspring/decimal"
)

// HistoryEntry is one point of the trend: the USD total on a date and its
// change from the previous included point. Change is nil on the first row;
// ChangePct is also nil when the previous total was zero, where a relative
// change is undefined.
type HistoryEntry struct {
	Date      Date
	Total     Money
	Change    *Money
	ChangePct *Percent
}

// HistoryReport is the net-worth trend over a trailing range.
type HistoryReport struct {
	Range   HistoryRange
	Entries []HistoryEntry
}

// NewHistoryReport builds the trend of USD totals for the snapshots within
// the range, anchored at today. Cutoffs subtract whole months with the day
// clamped to the target month's length.
func (p *Portfolio) NewHistoryReport(rng HistoryRange, today Date) (*HistoryReport, error) {
	cutoff, bounded := rng.Cutoff(today)

	r := &HistoryReport{Range: rng}
	var prev decimal.Decimal
	for _, s := range p.snapshots {
		if bounded && s.Date.Before(cutoff) {
			continue
		}
		total := decimal.Decimal{}
		for _, id := range slices.Sorted(maps.Keys(s.Entries)) {
			a, _ := p.Asset(id)
			usd, err := ToUSD(s.Entries[id], a.Currency, s.Rates)
			if err != nil {
				return nil, fmt.Errorf("asset %q on %s: %w", id, s.Date, err)
			}
			total = total.Add(usd)
		}

		e := HistoryEntry{Date: s.Date, Total: M(total, USD)}
		if len(r.Entries) > 0 {
			change := M(total.Sub(prev), USD)
			e.Change = &change
			if !prev.IsZero() {
				pct := PercentOf(total.Sub(prev), prev)
				e.ChangePct = &pct
			}
		}
		r.Entries = append(r.Entries, e)
		prev = total
	}
	if len(r.Entries) == 0 {
		return nil, fmt.Errorf("%w in range %s", ErrNoSnapshots, rng)
	}
	return r, nil
}
