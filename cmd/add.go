package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/dmoraru/networth"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

// addCmd holds the flags for the 'add' subcommand.
type addCmd struct {
	name     string
	label    string
	currency string
	amount   string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add to a brokerage position" }
func (*addCmd) Usage() string {
	return `nw add -name <position> -amount <value> [-label <sleeve>] [-currency EUR|USD]

  Add value to a brokerage position. An existing position with the same
  name is accumulated, otherwise a new one is appended.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "position name (e.g. a ticker)")
	f.StringVar(&c.label, "label", "", "sleeve label for a new position")
	f.StringVar(&c.currency, "currency", networth.CurEUR, "currency of the amount")
	f.StringVar(&c.amount, "amount", "", "amount to add, in the position currency")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" || c.amount == "" {
		fmt.Println(c.Usage())
		return subcommands.ExitUsageError
	}
	amount, err := decimal.NewFromString(c.amount)
	if err != nil {
		return fail(fmt.Errorf("parsing amount %q: %w", c.amount, err))
	}
	if !amount.IsPositive() {
		return fail(fmt.Errorf("amount must be positive, got %s", amount))
	}

	in, err := LoadInput()
	if err != nil {
		return fail(fmt.Errorf("loading input: %w", err))
	}

	next := in.WithPosition(networth.BrokerageHolding{
		Name:     c.name,
		Label:    networth.Sleeve(c.label),
		Currency: c.currency,
		Amount:   amount,
	})
	if err := SaveInput(next); err != nil {
		return fail(fmt.Errorf("saving input: %w", err))
	}

	fmt.Printf("Added %s %s to %s\n", amount, c.currency, c.name)
	return subcommands.ExitSuccess
}
