package networth

import "errors"

// Error taxonomy of the portfolio engine. Operations wrap these with
// fmt.Errorf("%w: ...") to carry the offending id, date or currency, so
// callers discriminate with errors.Is and still get a useful message.
var (
	// ErrDuplicateID reports an attempt to add an asset under a taken id.
	ErrDuplicateID = errors.New("duplicate asset id")
	// ErrNotFound reports a reference to an asset id or snapshot date that
	// does not exist.
	ErrNotFound = errors.New("not found")
	// ErrInvalidReference reports a snapshot entry naming an unknown asset.
	ErrInvalidReference = errors.New("entry references unknown asset")
	// ErrMissingRate reports a required currency absent from a rate table.
	ErrMissingRate = errors.New("missing exchange rate")
	// ErrExtraneousRate reports a rate for USD or for a currency no asset uses.
	ErrExtraneousRate = errors.New("extraneous exchange rate")
	// ErrNoSnapshots reports a report request on an empty snapshot list, or a
	// history range containing no snapshot.
	ErrNoSnapshots = errors.New("no snapshots")
	// ErrEmptyCategory reports a category filter matching no owned asset.
	ErrEmptyCategory = errors.New("no asset in category")
	// ErrCorruptData reports a persisted document that does not parse.
	ErrCorruptData = errors.New("corrupt portfolio data")
	// ErrInvalidPortfolio reports a parsed document violating model invariants.
	ErrInvalidPortfolio = errors.New("invalid portfolio")
)
