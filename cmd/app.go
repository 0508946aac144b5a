// Package cmd implements the CLI application to manage a net-worth ledger.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/networth"
	"github.com/google/subcommands"
)

// Commands lists every subcommand. A main package registers them all and
// executes the user-selected one.
var Commands = []subcommands.Command{
	&addAssetCmd{},
	&editAssetCmd{},
	&removeAssetCmd{},
	&listAssetsCmd{},
	&addSnapshotCmd{},
	&editSnapshotCmd{},
	&removeSnapshotCmd{},
	&listSnapshotsCmd{},
	&showCmd{},
	&historyCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var portfolioFile = flag.String("f", "", "Path to the portfolio file (default: <user config dir>/nw-tracker/portfolio.json)")

// portfolioPath resolves the file to operate on, from the -f flag or the
// default location.
func portfolioPath() (string, error) {
	if *portfolioFile != "" {
		return *portfolioFile, nil
	}
	return networth.DefaultPath()
}

// loadPortfolio is the central function to open the portfolio document.
// A missing file loads as an empty portfolio.
func loadPortfolio() (*networth.Portfolio, string, error) {
	path, err := portfolioPath()
	if err != nil {
		return nil, "", err
	}
	p, err := networth.LoadPortfolio(path)
	if err != nil {
		return nil, "", err
	}
	return p, path, nil
}

// printMarkdown renders a markdown document to the terminal, falling back to
// the raw text when rendering fails.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}

// fail reports an error on stderr and returns the failure status.
func fail(err error) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return subcommands.ExitFailure
}
