package networth

import (
	"fmt"
	"strings"
	"time"
)

// HistoryRange selects the lower date bound of a history report, anchored at
// the current date.
type HistoryRange int

const (
	// OneMonth covers the last month of snapshots.
	OneMonth HistoryRange = iota
	// SixMonths covers the last six months of snapshots.
	SixMonths
	// OneYear covers the last year of snapshots.
	OneYear
	// FiveYears covers the last five years of snapshots.
	FiveYears
	// All covers every recorded snapshot.
	All
)

func (r HistoryRange) String() string {
	switch r {
	case OneMonth:
		return "1M"
	case SixMonths:
		return "6M"
	case OneYear:
		return "1Y"
	case FiveYears:
		return "5Y"
	case All:
		return "ALL"
	default:
		return "unknown"
	}
}

// ParseHistoryRange parses a range label, case-insensitively.
func ParseHistoryRange(s string) (HistoryRange, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "1M":
		return OneMonth, nil
	case "6M":
		return SixMonths, nil
	case "1Y":
		return OneYear, nil
	case "5Y":
		return FiveYears, nil
	case "ALL":
		return All, nil
	default:
		return 0, fmt.Errorf("invalid history range %q: expected 1M, 6M, 1Y, 5Y, or ALL", s)
	}
}

// Cutoff returns the inclusive lower bound for snapshot dates, anchored at
// today. The second return value is false for All, which has no lower bound.
func (r HistoryRange) Cutoff(today Date) (Date, bool) {
	switch r {
	case OneMonth:
		return today.addMonths(-1), true
	case SixMonths:
		return today.addMonths(-6), true
	case OneYear:
		return today.addMonths(-12), true
	case FiveYears:
		return today.addMonths(-60), true
	default:
		return Date{}, false
	}
}

// addMonths shifts the date by whole months, clamping the day to the target
// month's length: one month before 2025-03-31 is 2025-02-28, not March 3rd.
func (d Date) addMonths(n int) Date {
	y, m := d.y, int(d.m)+n
	for m <= 0 {
		m += 12
		y--
	}
	for m > 12 {
		m -= 12
		y++
	}
	day := d.d
	if last := daysIn(y, time.Month(m)); day > last {
		day = last
	}
	return NewDate(y, time.Month(m), day)
}

// daysIn returns the number of days in the given month.
func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
