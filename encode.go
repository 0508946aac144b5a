package networth

import (
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"slices"

	"github.com/shopspring/decimal"
)

func init() {
	// values and rates are numbers in the document, not strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// Wire format of the persisted document. Entries are a list of
// {asset_id, value} pairs so a hand editor sees one line per asset.
type jasset struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Currency string `json:"currency"`
}

type jentry struct {
	AssetID string          `json:"asset_id"`
	Value   decimal.Decimal `json:"value"`
}

type jsnapshot struct {
	Date    Date                       `json:"date"`
	Rates   map[string]decimal.Decimal `json:"rates"`
	Entries []jentry                   `json:"entries"`
}

type jportfolio struct {
	Assets    []jasset    `json:"assets"`
	Snapshots []jsnapshot `json:"snapshots"`
}

// DecodePortfolio reads the JSON document and rebuilds the portfolio.
// Structural problems return a wrapped ErrCorruptData; a well-formed document
// that violates a model invariant returns a wrapped ErrInvalidPortfolio.
func DecodePortfolio(r io.Reader) (*Portfolio, error) {
	var doc jportfolio
	dec := json.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptData, err)
	}

	p := NewPortfolio()
	for _, a := range doc.Assets {
		p.assets = append(p.assets, Asset(a))
	}
	for _, s := range doc.Snapshots {
		snap := Snapshot{Date: s.Date, Rates: s.Rates, Entries: map[string]decimal.Decimal{}}
		if snap.Rates == nil {
			snap.Rates = map[string]decimal.Decimal{}
		}
		for _, e := range s.Entries {
			if _, ok := snap.Entries[e.AssetID]; ok {
				return nil, fmt.Errorf("%w: duplicate entry for asset %q in snapshot %s", ErrCorruptData, e.AssetID, s.Date)
			}
			snap.Entries[e.AssetID] = e.Value
		}
		p.snapshots = append(p.snapshots, snap)
	}

	if err := p.Check(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPortfolio, err)
	}
	return p, nil
}

// EncodePortfolio writes the portfolio as an indented JSON document. The
// output is deterministic: assets in stored order, snapshots ascending,
// rate keys sorted, entries sorted by asset id. Values keep every recorded
// digit.
func EncodePortfolio(w io.Writer, p *Portfolio) error {
	doc := jportfolio{
		Assets:    make([]jasset, 0, len(p.assets)),
		Snapshots: make([]jsnapshot, 0, len(p.snapshots)),
	}
	for _, a := range p.assets {
		doc.Assets = append(doc.Assets, jasset(a))
	}
	for _, s := range p.snapshots {
		js := jsnapshot{Date: s.Date, Rates: s.Rates, Entries: make([]jentry, 0, len(s.Entries))}
		if js.Rates == nil {
			js.Rates = map[string]decimal.Decimal{}
		}
		for _, id := range slices.Sorted(maps.Keys(s.Entries)) {
			js.Entries = append(js.Entries, jentry{AssetID: id, Value: s.Entries[id]})
		}
		doc.Snapshots = append(doc.Snapshots, js)
	}

	buf, err := json.MarshalIndent(&doc, "", "  ")
	if err != nil {
		return err
	}
	buf = append(buf, '\n')
	_, err = w.Write(buf)
	return err
}
