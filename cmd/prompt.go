package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/etnz/networth"
	"github.com/shopspring/decimal"
)

// Interactive input for snapshot recording. All prompts take an injected
// reader and writer so tests can script them. Existing values are offered as
// defaults when editing a snapshot.

// promptRates asks one exchange rate per foreign currency. A rate is
// required and must be positive; on EOF the prompt gives up with an error.
func promptRates(r *bufio.Reader, w io.Writer, currencies []string, existing map[string]decimal.Decimal) (map[string]decimal.Decimal, error) {
	rates := map[string]decimal.Decimal{}
	for _, c := range currencies {
		prev, hasPrev := existing[c]
		for {
			if hasPrev {
				fmt.Fprintf(w, "Rate for %s (1 USD = ? %s) [%s]: ", c, c, prev)
			} else {
				fmt.Fprintf(w, "Rate for %s (1 USD = ? %s): ", c, c)
			}
			line, err := r.ReadString('\n')
			if err != nil && line == "" {
				return nil, fmt.Errorf("input closed while reading rate for %s: %w", c, err)
			}
			line = strings.TrimSpace(line)
			if line == "" {
				if hasPrev {
					rates[c] = prev
					break
				}
				fmt.Fprintf(w, "A rate for %s is required.\n", c)
				continue
			}
			rate, perr := decimal.NewFromString(line)
			if perr != nil || !rate.IsPositive() {
				fmt.Fprintf(w, "Please enter a positive number.\n")
				continue
			}
			rates[c] = rate
			break
		}
	}
	return rates, nil
}

// promptValues asks the native-currency value of each asset. Empty input
// keeps the existing value when there is one, and omits the asset otherwise.
func promptValues(r *bufio.Reader, w io.Writer, assets []networth.Asset, existing map[string]decimal.Decimal) (map[string]decimal.Decimal, error) {
	values := map[string]decimal.Decimal{}
	for _, a := range assets {
		prev, hasPrev := existing[a.ID]
		for {
			if hasPrev {
				fmt.Fprintf(w, "Value of %s (%s) [%s]: ", a.Name, a.Currency, prev)
			} else {
				fmt.Fprintf(w, "Value of %s (%s) [skip]: ", a.Name, a.Currency)
			}
			line, err := r.ReadString('\n')
			if err != nil && line == "" {
				return nil, fmt.Errorf("input closed while reading value for %s: %w", a.ID, err)
			}
			line = strings.TrimSpace(line)
			if line == "" {
				if hasPrev {
					values[a.ID] = prev
				}
				break
			}
			value, perr := decimal.NewFromString(line)
			if perr != nil || value.IsNegative() {
				fmt.Fprintf(w, "Please enter a non-negative number, or leave empty.\n")
				continue
			}
			values[a.ID] = value
			break
		}
	}
	return values, nil
}

// confirm asks a y/N question and returns true only on an explicit yes.
func confirm(r *bufio.Reader, w io.Writer, msg string) bool {
	fmt.Fprintf(w, "%s [y/N]: ", msg)
	line, _ := r.ReadString('\n')
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
