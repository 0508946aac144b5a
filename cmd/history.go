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

type historyCmd struct {
	rng string
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "display the net-worth trend over time" }
func (*historyCmd) Usage() string {
	return `history [-r <range>]

  Displays the USD total of each snapshot in the range, with the change from
  the previous one. Ranges: 1M, 6M, 1Y, 5Y, ALL.
`
}

func (c *historyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.rng, "r", "ALL", "history range (1M, 6M, 1Y, 5Y, ALL)")
}

func (c *historyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	rng, err := networth.ParseHistoryRange(c.rng)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	p, _, err := loadPortfolio()
	if err != nil {
		return fail(err)
	}
	report, err := p.NewHistoryReport(rng, networth.Today())
	if err != nil {
		return fail(err)
	}

	printMarkdown(renderer.HistoryMarkdown(report))
	return subcommands.ExitSuccess
}
