package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/networth"
	"github.com/google/subcommands"
)

type removeSnapshotCmd struct {
	date string
}

func (*removeSnapshotCmd) Name() string     { return "remove-snapshot" }
func (*removeSnapshotCmd) Synopsis() string { return "delete the snapshot of a date" }
func (*removeSnapshotCmd) Usage() string {
	return `remove-snapshot -d <date>

  Deletes the snapshot recorded on the given date.
`
}

func (c *removeSnapshotCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "snapshot date (YYYY-MM-DD)")
}

func (c *removeSnapshotCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	if err := p.RemoveSnapshot(on); err != nil {
		return fail(err)
	}
	if err := networth.SavePortfolio(path, p); err != nil {
		return fail(err)
	}
	fmt.Printf("Removed snapshot on %s.\n", on)
	return subcommands.ExitSuccess
}
