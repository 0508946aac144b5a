package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/networth"
	"github.com/google/subcommands"
)

type removeAssetCmd struct {
	id        string
	assumeYes bool
}

func (*removeAssetCmd) Name() string     { return "remove-asset" }
func (*removeAssetCmd) Synopsis() string { return "delete an asset and its recorded values" }
func (*removeAssetCmd) Usage() string {
	return `remove-asset -id <id> [-y]

  Deletes an asset. Its values are removed from every snapshot, and exchange
  rates no remaining asset needs are dropped. Asks for confirmation when the
  asset appears in snapshots, unless -y is given.
`
}

func (c *removeAssetCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "asset id")
	f.BoolVar(&c.assumeYes, "y", false, "do not ask for confirmation")
}

func (c *removeAssetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		fmt.Fprintln(os.Stderr, "-id is required")
		return subcommands.ExitUsageError
	}

	p, path, err := loadPortfolio()
	if err != nil {
		return fail(err)
	}

	refs, err := p.SnapshotRefs(c.id)
	if err != nil {
		return fail(err)
	}
	if refs > 0 && !c.assumeYes {
		r := bufio.NewReader(os.Stdin)
		msg := fmt.Sprintf("This asset appears in %d snapshot(s). Removing it deletes those values too. Continue?", refs)
		if !confirm(r, os.Stdout, msg) {
			fmt.Println("Aborted.")
			return subcommands.ExitSuccess
		}
	}

	if err := p.RemoveAsset(c.id); err != nil {
		return fail(err)
	}
	if err := networth.SavePortfolio(path, p); err != nil {
		return fail(err)
	}
	fmt.Printf("Removed asset %q.\n", c.id)
	return subcommands.ExitSuccess
}
