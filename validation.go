package networth

import (
	"fmt"
	"maps"
	"slices"
)

// Check verifies the whole-portfolio invariants: unique asset ids, unique
// ascending snapshot dates, no dangling entry references, full rate coverage
// for non-USD entries, and positive rates. It is run after decoding a
// document and before saving one; a hand-edited file that violates an
// invariant is rejected, never repaired.
func (p *Portfolio) Check() error {
	ids := map[string]bool{}
	for _, a := range p.assets {
		if a.ID == "" {
			return fmt.Errorf("asset with empty id")
		}
		if ids[a.ID] {
			return fmt.Errorf("%w: %q", ErrDuplicateID, a.ID)
		}
		ids[a.ID] = true
		if err := ValidateCurrency(a.Currency); err != nil {
			return err
		}
	}

	var prev Date
	for i, s := range p.snapshots {
		if s.Date.IsZero() {
			return fmt.Errorf("snapshot with zero date")
		}
		if i > 0 && s.Date.Compare(prev) <= 0 {
			return fmt.Errorf("snapshots out of order: %s does not come after %s", s.Date, prev)
		}
		prev = s.Date

		for _, id := range slices.Sorted(maps.Keys(s.Entries)) {
			a, ok := p.Asset(id)
			if !ok {
				return fmt.Errorf("%w: %q in snapshot %s", ErrInvalidReference, id, s.Date)
			}
			if a.Currency == USD {
				continue
			}
			if _, ok := s.Rates[a.Currency]; !ok {
				return fmt.Errorf("%w: %q needed by asset %q in snapshot %s", ErrMissingRate, a.Currency, id, s.Date)
			}
		}
		for _, c := range slices.Sorted(maps.Keys(s.Rates)) {
			if !s.Rates[c].IsPositive() {
				return fmt.Errorf("exchange rate for %q in snapshot %s must be positive, got %s", c, s.Date, s.Rates[c])
			}
		}
	}
	return nil
}
