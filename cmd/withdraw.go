package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/dmoraru/networth"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

// withdrawCmd holds the flags for the 'withdraw' subcommand.
type withdrawCmd struct {
	name     string
	currency string
	amount   string
}

func (*withdrawCmd) Name() string     { return "withdraw" }
func (*withdrawCmd) Synopsis() string { return "withdraw from a brokerage position" }
func (*withdrawCmd) Usage() string {
	return `nw withdraw -name <position> -amount <value> [-currency EUR|USD]

  Reduce a brokerage position. The position is floored at zero and
  removed once empty. Withdrawing from an unknown position is a no-op.
`
}

func (c *withdrawCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "position name (e.g. a ticker)")
	f.StringVar(&c.currency, "currency", networth.CurEUR, "currency of the amount")
	f.StringVar(&c.amount, "amount", "", "amount to withdraw, in the position currency")
}

func (c *withdrawCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	next := in.WithWithdrawal(c.name, c.currency, amount)
	if err := SaveInput(next); err != nil {
		return fail(fmt.Errorf("saving input: %w", err))
	}

	fmt.Printf("Withdrew %s %s from %s\n", amount, c.currency, c.name)
	return subcommands.ExitSuccess
}
