package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/networth"
	"github.com/google/subcommands"
)

type editAssetCmd struct {
	id       string
	name     string
	category string
	currency string
}

func (*editAssetCmd) Name() string     { return "edit-asset" }
func (*editAssetCmd) Synopsis() string { return "update an asset's name, category or currency" }
func (*editAssetCmd) Usage() string {
	return `edit-asset -id <id> [-name <name>] [-c <category>] [-cur <currency>]

  Updates the given fields of an existing asset. Omitted fields keep their
  current value. Changing the currency requires every snapshot measuring the
  asset to already carry a rate for the new currency.
`
}

func (c *editAssetCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "asset id")
	f.StringVar(&c.name, "name", "", "new display name")
	f.StringVar(&c.category, "c", "", "new category")
	f.StringVar(&c.currency, "cur", "", "new currency code")
}

func (c *editAssetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		fmt.Fprintln(os.Stderr, "-id is required")
		return subcommands.ExitUsageError
	}
	if c.name == "" && c.category == "" && c.currency == "" {
		fmt.Fprintln(os.Stderr, "nothing to change: provide -name, -c or -cur")
		return subcommands.ExitUsageError
	}

	p, path, err := loadPortfolio()
	if err != nil {
		return fail(err)
	}
	if err := p.EditAsset(c.id, c.name, c.category, c.currency); err != nil {
		return fail(err)
	}
	if err := networth.SavePortfolio(path, p); err != nil {
		return fail(err)
	}
	fmt.Printf("Updated asset %q.\n", c.id)
	return subcommands.ExitSuccess
}
