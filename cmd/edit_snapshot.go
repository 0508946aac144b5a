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
)

type editSnapshotCmd struct {
	date string
}

func (*editSnapshotCmd) Name() string     { return "edit-snapshot" }
func (*editSnapshotCmd) Synopsis() string { return "re-record an existing snapshot" }
func (*editSnapshotCmd) Usage() string {
	return `edit-snapshot -d <date>

  Walks through the rates and values of an existing snapshot again, offering
  the recorded numbers as defaults. Empty input keeps a default.
`
}

func (c *editSnapshotCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "snapshot date (YYYY-MM-DD)")
}

func (c *editSnapshotCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.date == "" {
		fmt.Fprintln(os.Stderr, "-d is required")
		return subcommands.ExitUsageError
	}
	on, err := networth.ParseDate(c.date)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	p, path, err := loadPortfolio()
	if err != nil {
		return fail(err)
	}
	s, ok := p.SnapshotOn(on)
	if !ok {
		return fail(fmt.Errorf("no snapshot on %s", on))
	}

	r := bufio.NewReader(os.Stdin)
	rates, err := promptRates(r, os.Stdout, p.ForeignCurrencies(), s.Rates)
	if err != nil {
		return fail(err)
	}
	values, err := promptValues(r, os.Stdout, slices.Collect(p.Assets()), s.Entries)
	if err != nil {
		return fail(err)
	}

	if err := p.UpsertSnapshot(on, rates, values); err != nil {
		return fail(err)
	}
	if err := networth.SavePortfolio(path, p); err != nil {
		return fail(err)
	}
	fmt.Printf("Updated snapshot on %s with %d entries.\n", on, len(values))
	return subcommands.ExitSuccess
}
