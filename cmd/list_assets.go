package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/networth/renderer"
	"github.com/google/subcommands"
)

type listAssetsCmd struct{}

func (*listAssetsCmd) Name() string     { return "list-assets" }
func (*listAssetsCmd) Synopsis() string { return "list the registered assets" }
func (*listAssetsCmd) Usage() string {
	return `list-assets

  Lists every registered asset with its category and native currency.
`
}

func (*listAssetsCmd) SetFlags(*flag.FlagSet) {}

func (c *listAssetsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, _, err := loadPortfolio()
	if err != nil {
		return fail(err)
	}

	empty := true
	for range p.Assets() {
		empty = false
		break
	}
	if empty {
		fmt.Println("No assets yet. Add one with add-asset.")
		return subcommands.ExitSuccess
	}

	printMarkdown(renderer.AssetsMarkdown(p))
	return subcommands.ExitSuccess
}
