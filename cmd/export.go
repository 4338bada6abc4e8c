package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/dmoraru/networth"
	"github.com/google/subcommands"
)

// exportCmd holds the flags for the 'export' subcommand.
type exportCmd struct {
	format string
	output string
	fxCHF  string
	fxRON  string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the report as a csv or xlsx file" }
func (*exportCmd) Usage() string {
	return `nw export [-format csv|xlsx] [-o <file>] [-fx-chf <rate>] [-fx-ron <rate>]

  Export the computed report as a delimited file. The default file name
  is net-worth-<date>.csv in the current directory.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.format, "format", "csv", "output format (csv, xlsx)")
	f.StringVar(&c.output, "o", "", "output file, defaults to net-worth-<date>.<format>")
	f.StringVar(&c.fxCHF, "fx-chf", "", "override the CHF to EUR rate for this run")
	f.StringVar(&c.fxRON, "fx-ron", "", "override the RON to EUR rate for this run")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.format != "csv" && c.format != "xlsx" {
		fmt.Fprintf(os.Stderr, "Error: unknown format %q (want csv or xlsx)\n", c.format)
		return subcommands.ExitUsageError
	}

	in, err := LoadInput()
	if err != nil {
		return fail(fmt.Errorf("loading input: %w", err))
	}

	s := networth.Compute(in, networth.FXOverride{CHF: c.fxCHF, RON: c.fxRON})
	rows := networth.BuildExportRows(s, in, time.Now().Format(time.RFC3339))

	filename := c.output
	if filename == "" {
		filename = fmt.Sprintf("net-worth-%s.%s", s.Date, c.format)
	}

	w, err := os.Create(filename)
	if err != nil {
		return fail(fmt.Errorf("creating %q: %w", filename, err))
	}
	defer w.Close()

	switch c.format {
	case "xlsx":
		err = rows.WriteXLSX(w)
	default:
		_, err = w.WriteString(rows.DelimitedText())
	}
	if err != nil {
		return fail(fmt.Errorf("writing %q: %w", filename, err))
	}

	fmt.Printf("Exported report to %s\n", filename)
	return subcommands.ExitSuccess
}
