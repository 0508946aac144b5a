// Package networth implements a personal net-worth ledger.
//
// A user records dated snapshots of asset values in arbitrary currencies.
// The package maintains the growing time series, converts everything to the
// USD reporting currency at display time, and builds point-in-time breakdowns
// and historical trend reports.
//
// The aggregate is a [Portfolio]: a list of assets and a list of dated
// snapshots, persisted as a single JSON document. All mutations validate
// first and leave the portfolio untouched on error. There is no live pricing
// and no network access anywhere: rates are whatever the user recorded.
package networth
