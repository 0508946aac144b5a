package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/networth"
	"github.com/etnz/networth/renderer"
	"github.com/google/subcommands"
)

type showCmd struct {
	date     string
	category string
}

func (*showCmd) Name() string     { return "show" }
func (*showCmd) Synopsis() string { return "display the net-worth breakdown" }
func (*showCmd) Usage() string {
	return `show [-d <date>] [-c <category>]

  Displays the net worth in USD, broken down by category, for the latest
  snapshot or for the snapshot of the given date.
`
}

func (c *showCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "snapshot date (YYYY-MM-DD, default latest)")
	f.StringVar(&c.category, "c", "", "restrict to one category")
}

func (c *showCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var on networth.Date
	if c.date != "" {
		var err error
		if on, err = networth.ParseDate(c.date); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitUsageError
		}
	}

	p, _, err := loadPortfolio()
	if err != nil {
		return fail(err)
	}
	report, err := p.NewNetWorthReport(on, c.category)
	if err != nil {
		return fail(err)
	}

	printMarkdown(renderer.NetWorthMarkdown(report))
	return subcommands.ExitSuccess
}
