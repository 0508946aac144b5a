package networth

import (
	"fmt"
	"iter"
	"maps"
	"slices"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Asset is something owned: an account, a fund, a property. Category is
// stored lowercase, Currency is an uppercase ISO 4217 code.
type Asset struct {
	ID       string
	Name     string
	Category string
	Currency string
}

// Snapshot records the state of the portfolio on one date: exchange rates for
// that day and the native-currency value of each measured asset. An asset
// absent from Entries was not measured that day, which is different from a
// zero value.
type Snapshot struct {
	Date    Date
	Rates   map[string]decimal.Decimal
	Entries map[string]decimal.Decimal
}

// Portfolio is the aggregate root: the asset registry and the snapshot time
// series, kept sorted ascending by date. Mutations validate first and leave
// the portfolio untouched on error.
type Portfolio struct {
	assets    []Asset
	snapshots []Snapshot
}

// NewPortfolio returns an empty portfolio.
func NewPortfolio() *Portfolio { return &Portfolio{} }

// ValidateCurrency reports whether code is a currency known to the ISO 4217
// table, so that formatting is always possible later.
func ValidateCurrency(code string) error {
	if money.GetCurrency(code) == nil {
		return fmt.Errorf("unknown currency code %q", code)
	}
	return nil
}

func normalizeAsset(a Asset) Asset {
	a.ID = strings.TrimSpace(a.ID)
	a.Name = strings.TrimSpace(a.Name)
	a.Category = strings.ToLower(strings.TrimSpace(a.Category))
	a.Currency = strings.ToUpper(strings.TrimSpace(a.Currency))
	return a
}

// Asset returns the asset with the given id.
func (p *Portfolio) Asset(id string) (Asset, bool) {
	for _, a := range p.assets {
		if a.ID == id {
			return a, true
		}
	}
	return Asset{}, false
}

// Assets iterates over the assets in insertion order.
func (p *Portfolio) Assets() iter.Seq[Asset] {
	return func(yield func(Asset) bool) {
		for _, a := range p.assets {
			if !yield(a) {
				return
			}
		}
	}
}

// Snapshots iterates over the snapshots in ascending date order.
func (p *Portfolio) Snapshots() iter.Seq[Snapshot] {
	return func(yield func(Snapshot) bool) {
		for _, s := range p.snapshots {
			if !yield(s) {
				return
			}
		}
	}
}

// SnapshotOn returns the snapshot recorded on the given date.
func (p *Portfolio) SnapshotOn(on Date) (Snapshot, bool) {
	for _, s := range p.snapshots {
		if s.Date == on {
			return s, true
		}
	}
	return Snapshot{}, false
}

// Latest returns the most recent snapshot.
func (p *Portfolio) Latest() (Snapshot, bool) {
	if len(p.snapshots) == 0 {
		return Snapshot{}, false
	}
	return p.snapshots[len(p.snapshots)-1], true
}

// AddAsset registers a new asset. The id must be non-empty and unused, the
// currency a known ISO code. Category is lowercased, currency uppercased.
func (p *Portfolio) AddAsset(id, name, category, currency string) error {
	a := normalizeAsset(Asset{ID: id, Name: name, Category: category, Currency: currency})
	if a.ID == "" {
		return fmt.Errorf("asset id cannot be empty")
	}
	if _, ok := p.Asset(a.ID); ok {
		return fmt.Errorf("%w: %q", ErrDuplicateID, a.ID)
	}
	if err := ValidateCurrency(a.Currency); err != nil {
		return err
	}
	p.assets = append(p.assets, a)
	return nil
}

// EditAsset updates the named fields of an existing asset. An empty string
// keeps the current value. Changing the currency requires every snapshot that
// holds an entry for the asset to already carry a rate for the new currency,
// otherwise ErrMissingRate; rates of the old currency that no remaining asset
// uses are purged.
func (p *Portfolio) EditAsset(id, name, category, currency string) error {
	i := slices.IndexFunc(p.assets, func(a Asset) bool { return a.ID == id })
	if i < 0 {
		return fmt.Errorf("%w: asset %q", ErrNotFound, id)
	}
	edited := p.assets[i]
	if name != "" {
		edited.Name = name
	}
	if category != "" {
		edited.Category = category
	}
	if currency != "" {
		edited.Currency = currency
	}
	edited = normalizeAsset(edited)
	if err := ValidateCurrency(edited.Currency); err != nil {
		return err
	}

	old := p.assets[i]
	if edited.Currency != old.Currency && edited.Currency != USD {
		for _, s := range p.snapshots {
			if _, ok := s.Entries[id]; !ok {
				continue
			}
			if _, ok := s.Rates[edited.Currency]; !ok {
				return fmt.Errorf("%w: snapshot %s has no rate for %q", ErrMissingRate, s.Date, edited.Currency)
			}
		}
	}

	p.assets[i] = edited
	if edited.Currency != old.Currency {
		p.purgeUnusedRates(old.Currency)
	}
	return nil
}

// RemoveAsset deletes an asset and cascades over every snapshot, stripping
// its entries and dropping its currency's rate where no other asset still
// uses that currency. The whole removal is staged on copies and committed
// once.
func (p *Portfolio) RemoveAsset(id string) error {
	i := slices.IndexFunc(p.assets, func(a Asset) bool { return a.ID == id })
	if i < 0 {
		return fmt.Errorf("%w: asset %q", ErrNotFound, id)
	}
	removed := p.assets[i]
	assets := slices.Delete(slices.Clone(p.assets), i, i+1)

	stillUsed := false
	for _, a := range assets {
		if a.Currency == removed.Currency {
			stillUsed = true
			break
		}
	}

	snapshots := slices.Clone(p.snapshots)
	for j, s := range snapshots {
		entries := maps.Clone(s.Entries)
		delete(entries, id)
		rates := s.Rates
		if !stillUsed {
			rates = maps.Clone(rates)
			delete(rates, removed.Currency)
		}
		snapshots[j].Entries = entries
		snapshots[j].Rates = rates
	}

	p.assets = assets
	p.snapshots = snapshots
	return nil
}

// SnapshotRefs returns the number of snapshots holding an entry for the
// asset. Callers use it to warn before a destructive removal.
func (p *Portfolio) SnapshotRefs(id string) (int, error) {
	if _, ok := p.Asset(id); !ok {
		return 0, fmt.Errorf("%w: asset %q", ErrNotFound, id)
	}
	n := 0
	for _, s := range p.snapshots {
		if _, ok := s.Entries[id]; ok {
			n++
		}
	}
	return n, nil
}

// UpsertSnapshot records or replaces the snapshot on the given date. The
// snapshot is validated as a whole before anything changes.
func (p *Portfolio) UpsertSnapshot(on Date, rates, entries map[string]decimal.Decimal) error {
	s := Snapshot{Date: on, Rates: maps.Clone(rates), Entries: maps.Clone(entries)}
	if s.Rates == nil {
		s.Rates = map[string]decimal.Decimal{}
	}
	if s.Entries == nil {
		s.Entries = map[string]decimal.Decimal{}
	}
	if err := p.validateSnapshot(s); err != nil {
		return err
	}
	for i := range p.snapshots {
		if p.snapshots[i].Date == on {
			p.snapshots[i] = s
			return nil
		}
	}
	p.snapshots = append(p.snapshots, s)
	slices.SortFunc(p.snapshots, func(a, b Snapshot) int { return a.Date.Compare(b.Date) })
	return nil
}

// RemoveSnapshot deletes the snapshot recorded on the given date.
func (p *Portfolio) RemoveSnapshot(on Date) error {
	i := slices.IndexFunc(p.snapshots, func(s Snapshot) bool { return s.Date == on })
	if i < 0 {
		return fmt.Errorf("%w: snapshot on %s", ErrNotFound, on)
	}
	p.snapshots = slices.Delete(p.snapshots, i, i+1)
	return nil
}

// validateSnapshot checks one snapshot against the asset registry. Maps are
// walked in sorted key order so the reported error is deterministic.
func (p *Portfolio) validateSnapshot(s Snapshot) error {
	if s.Date.IsZero() {
		return fmt.Errorf("snapshot date cannot be zero")
	}
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
		if c == USD {
			return fmt.Errorf("%w: USD in snapshot %s", ErrExtraneousRate, s.Date)
		}
		if !p.currencyInUse(c) {
			return fmt.Errorf("%w: %q in snapshot %s, no asset uses it", ErrExtraneousRate, c, s.Date)
		}
		if !s.Rates[c].IsPositive() {
			return fmt.Errorf("exchange rate for %q must be positive, got %s", c, s.Rates[c])
		}
	}
	return nil
}

func (p *Portfolio) currencyInUse(currency string) bool {
	for _, a := range p.assets {
		if a.Currency == currency {
			return true
		}
	}
	return false
}

func (p *Portfolio) purgeUnusedRates(currency string) {
	if currency == USD || p.currencyInUse(currency) {
		return
	}
	for i := range p.snapshots {
		delete(p.snapshots[i].Rates, currency)
	}
}

// ForeignCurrencies returns the sorted list of non-USD currencies used by the
// asset registry. The prompt layer asks one rate per element.
func (p *Portfolio) ForeignCurrencies() []string {
	seen := map[string]bool{}
	for _, a := range p.assets {
		if a.Currency != USD {
			seen[a.Currency] = true
		}
	}
	return slices.Sorted(maps.Keys(seen))
}
