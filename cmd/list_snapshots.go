package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/networth/renderer"
	"github.com/google/subcommands"
)

type listSnapshotsCmd struct{}

func (*listSnapshotsCmd) Name() string     { return "list-snapshots" }
func (*listSnapshotsCmd) Synopsis() string { return "list the recorded snapshots" }
func (*listSnapshotsCmd) Usage() string {
	return `list-snapshots

  Lists every recorded snapshot with its entry count and currencies.
`
}

func (*listSnapshotsCmd) SetFlags(*flag.FlagSet) {}

func (c *listSnapshotsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, _, err := loadPortfolio()
	if err != nil {
		return fail(err)
	}

	empty := true
	for range p.Snapshots() {
		empty = false
		break
	}
	if empty {
		fmt.Println("No snapshots yet. Record one with add-snapshot.")
		return subcommands.ExitSuccess
	}

	printMarkdown(renderer.SnapshotsMarkdown(p))
	return subcommands.ExitSuccess
}
