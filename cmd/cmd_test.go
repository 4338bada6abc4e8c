package cmd

import (
	"context"
	"flag"
	"path/filepath"
	"testing"

	"github.com/dmoraru/networth"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

// useTempStore points the package level flags at a throwaway file.
func useTempStore(t *testing.T) {
	t.Helper()
	old := *inputFile
	*inputFile = filepath.Join(t.TempDir(), "portfolio.json")
	t.Cleanup(func() { *inputFile = old })
}

func run(t *testing.T, c subcommands.Command, args ...string) subcommands.ExitStatus {
	t.Helper()
	f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	c.SetFlags(f)
	if err := f.Parse(args); err != nil {
		t.Fatalf("parsing args: %v", err)
	}
	return c.Execute(context.Background(), f)
}

func TestAddThenWithdraw(t *testing.T) {
	useTempStore(t)

	if got := run(t, &addCmd{}, "-name", "VWCE", "-label", "World ETF", "-amount", "1000"); got != subcommands.ExitSuccess {
		t.Fatalf("add exited %v", got)
	}
	if got := run(t, &addCmd{}, "-name", "VWCE", "-amount", "500"); got != subcommands.ExitSuccess {
		t.Fatalf("second add exited %v", got)
	}

	in, err := LoadInput()
	if err != nil {
		t.Fatal(err)
	}
	if len(in.Brokerage) != 1 {
		t.Fatalf("got %d positions, want 1", len(in.Brokerage))
	}
	if got, want := in.Brokerage[0].Amount, decimal.NewFromInt(1500); !got.Equal(want) {
		t.Errorf("got %s, want %s", got, want)
	}

	if got := run(t, &withdrawCmd{}, "-name", "VWCE", "-amount", "1500"); got != subcommands.ExitSuccess {
		t.Fatalf("withdraw exited %v", got)
	}
	in, err = LoadInput()
	if err != nil {
		t.Fatal(err)
	}
	if len(in.Brokerage) != 0 {
		t.Errorf("got %d positions after emptying, want 0", len(in.Brokerage))
	}
}

func TestAddRejectsBadAmount(t *testing.T) {
	useTempStore(t)

	for _, amount := range []string{"abc", "-5", "0"} {
		if got := run(t, &addCmd{}, "-name", "VWCE", "-amount", amount); got == subcommands.ExitSuccess {
			t.Errorf("add -amount %s: got success, want failure", amount)
		}
	}
}

func TestSnapshotAppendsHistory(t *testing.T) {
	useTempStore(t)

	if got := run(t, &addCmd{}, "-name", "VWCE", "-amount", "1000"); got != subcommands.ExitSuccess {
		t.Fatalf("add exited %v", got)
	}
	if got := run(t, &snapshotCmd{}, "-d", "2025-07-31"); got != subcommands.ExitSuccess {
		t.Fatalf("snapshot exited %v", got)
	}

	in, err := LoadInput()
	if err != nil {
		t.Fatal(err)
	}
	if in.History.Len() != 1 {
		t.Fatalf("got %d history entries, want 1", in.History.Len())
	}
	day, value := in.History.Latest()
	if got, want := day, networth.NewDate(2025, 7, 31); got != want {
		t.Errorf("got %s, want %s", got, want)
	}
	if got, want := value, networth.EUR(1000); !got.Equal(want) {
		t.Errorf("got %s, want %s", got, want)
	}
}
