package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/dmoraru/networth"
	"github.com/google/subcommands"
)

// snapshotCmd holds the flags for the 'snapshot' subcommand.
type snapshotCmd struct {
	date  string
	fxCHF string
	fxRON string
}

func (*snapshotCmd) Name() string     { return "snapshot" }
func (*snapshotCmd) Synopsis() string { return "record the current net worth in the history" }
func (*snapshotCmd) Usage() string {
	return `nw snapshot [-d <date>] [-fx-chf <rate>] [-fx-ron <rate>]

  Compute the current net worth and append it to the history series.
  A snapshot on an existing date overwrites that entry.
`
}

func (c *snapshotCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "date to record the snapshot on, defaults to the input date")
	f.StringVar(&c.fxCHF, "fx-chf", "", "override the CHF to EUR rate for this run")
	f.StringVar(&c.fxRON, "fx-ron", "", "override the RON to EUR rate for this run")
}

func (c *snapshotCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	in, err := LoadInput()
	if err != nil {
		return fail(fmt.Errorf("loading input: %w", err))
	}

	s := networth.Compute(in, networth.FXOverride{CHF: c.fxCHF, RON: c.fxRON})

	on := s.Date
	if c.date != "" {
		on, err = networth.ParseDate(c.date)
		if err != nil {
			return fail(fmt.Errorf("parsing date: %w", err))
		}
	}

	next := in.WithSnapshot(on, s.NetWorth)
	if err := SaveInput(next); err != nil {
		return fail(fmt.Errorf("saving input: %w", err))
	}

	fmt.Printf("Recorded net worth %s on %s\n", s.NetWorth, on)
	return subcommands.ExitSuccess
}
