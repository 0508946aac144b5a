package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/networth"
	"github.com/google/subcommands"
)

type addAssetCmd struct {
	id       string
	name     string
	category string
	currency string
}

func (*addAssetCmd) Name() string     { return "add-asset" }
func (*addAssetCmd) Synopsis() string { return "register a new asset" }
func (*addAssetCmd) Usage() string {
	return `add-asset -id <id> -name <name> -c <category> -cur <currency>

  Registers a new asset in the portfolio. The id must be unique; the
  currency is a 3-letter ISO code.
`
}

func (c *addAssetCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "unique asset id")
	f.StringVar(&c.name, "name", "", "display name")
	f.StringVar(&c.category, "c", "", "category (e.g. etf, bank, real-estate)")
	f.StringVar(&c.currency, "cur", networth.USD, "native currency code")
}

func (c *addAssetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" || c.name == "" || c.category == "" {
		fmt.Fprintln(os.Stderr, "-id, -name and -c are required")
		return subcommands.ExitUsageError
	}

	p, path, err := loadPortfolio()
	if err != nil {
		return fail(err)
	}
	if err := p.AddAsset(c.id, c.name, c.category, c.currency); err != nil {
		return fail(err)
	}
	if err := networth.SavePortfolio(path, p); err != nil {
		return fail(err)
	}
	fmt.Printf("Added asset %q.\n", c.id)
	return subcommands.ExitSuccess
}
