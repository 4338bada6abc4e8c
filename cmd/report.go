package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/dmoraru/networth"
	"github.com/dmoraru/networth/renderer"
	"github.com/google/subcommands"
)

// reportCmd holds the flags for the 'report' subcommand.
type reportCmd struct {
	raw   bool
	fxCHF string
	fxRON string
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "render the net worth report" }
func (*reportCmd) Usage() string {
	return `nw report [-raw] [-fx-chf <rate>] [-fx-ron <rate>]

  Render the full net worth report in markdown: totals, performance,
  breakdown, holdings, allocation vs target and currency exposure.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.raw, "raw", false, "print raw markdown instead of terminal-styled output")
	f.StringVar(&c.fxCHF, "fx-chf", "", "override the CHF to EUR rate for this run")
	f.StringVar(&c.fxRON, "fx-ron", "", "override the RON to EUR rate for this run")
}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	in, err := LoadInput()
	if err != nil {
		return fail(fmt.Errorf("loading input: %w", err))
	}

	s := networth.Compute(in, networth.FXOverride{CHF: c.fxCHF, RON: c.fxRON})
	md := renderer.Render(s, in)

	if c.raw {
		fmt.Print(md)
	} else {
		printMarkdown(md)
	}
	return subcommands.ExitSuccess
}
