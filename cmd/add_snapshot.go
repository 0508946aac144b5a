package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"slices"

	"github.com/etnz/networth"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type addSnapshotCmd struct {
	date string
}

func (*addSnapshotCmd) Name() string     { return "add-snapshot" }
func (*addSnapshotCmd) Synopsis() string { return "record asset values for a date" }
func (*addSnapshotCmd) Usage() string {
	return `add-snapshot [-d <date>]

  Records a snapshot interactively: one exchange rate per foreign currency,
  then one value per asset (empty input skips an asset). Defaults to today.
`
}

func (c *addSnapshotCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "snapshot date (YYYY-MM-DD, default today)")
}

func (c *addSnapshotCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on := networth.Today()
	if c.date != "" {
		var err error
		if on, err = networth.ParseDate(c.date); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitUsageError
		}
	}

	p, path, err := loadPortfolio()
	if err != nil {
		return fail(err)
	}
	assets := slices.Collect(p.Assets())
	if len(assets) == 0 {
		fmt.Fprintln(os.Stderr, "no assets registered, add one with add-asset first")
		return subcommands.ExitFailure
	}

	r := bufio.NewReader(os.Stdin)
	if existing, ok := p.SnapshotOn(on); ok {
		if !confirm(r, os.Stdout, fmt.Sprintf("A snapshot already exists on %s with %d entries. Replace it?", on, len(existing.Entries))) {
			fmt.Println("Aborted.")
			return subcommands.ExitSuccess
		}
	}

	rates, err := promptRates(r, os.Stdout, p.ForeignCurrencies(), map[string]decimal.Decimal{})
	if err != nil {
		return fail(err)
	}
	values, err := promptValues(r, os.Stdout, assets, map[string]decimal.Decimal{})
	if err != nil {
		return fail(err)
	}

	if err := p.UpsertSnapshot(on, rates, values); err != nil {
		return fail(err)
	}
	if err := networth.SavePortfolio(path, p); err != nil {
		return fail(err)
	}
	fmt.Printf("Recorded snapshot on %s with %d entries.\n", on, len(values))
	return subcommands.ExitSuccess
}
