// Package cmd implements the CLI application to track a household net worth.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/dmoraru/networth"
	"github.com/dmoraru/networth/store"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package calls Register() to declare the subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&reportCmd{}, "reporting")
	c.Register(&exportCmd{}, "reporting")

	c.Register(&addCmd{}, "editing")
	c.Register(&withdrawCmd{}, "editing")
	c.Register(&snapshotCmd{}, "editing")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var inputFile = flag.String("input-file", "portfolio.json", "Path to the portfolio input file (JSON format)")
var sqlitePath = flag.String("store", "", "Path to a SQLite database to use instead of the JSON file")

// openStore selects the persistence backend from the global flags.
func openStore() (store.Store, error) {
	if *sqlitePath != "" {
		return store.OpenSQLite(*sqlitePath)
	}
	return &store.File{Path: *inputFile}, nil
}

// LoadInput reads the portfolio input from the configured store.
// A missing store degrades to an empty input.
func LoadInput() (*networth.PortfolioInput, error) {
	s, err := openStore()
	if err != nil {
		return nil, err
	}
	return s.Load()
}

// SaveInput writes the portfolio input back to the configured store.
func SaveInput(in *networth.PortfolioInput) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	return s.Save(in)
}

// printMarkdown renders markdown for the terminal, falling back to the
// raw text when the renderer fails.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}

// fail prints the error and maps it to an exit status.
func fail(err error) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return subcommands.ExitFailure
}
