package networth

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestDriftRow_Classification(t *testing.T) {
	target := func(v float64) *float64 { return &v }

	tests := []struct {
		name   string
		actual Percent
		target *float64
		status DriftStatus
		badge  string
	}{
		{"overweight", 27, target(20), Overweight, "Overweight (+7.00%)"},
		{"underweight", 4, target(10), Underweight, "Underweight (-6.00%)"},
		{"within band positive", 23, target(20), WithinBand, "Within band (3.00%)"},
		{"within band negative", 17, target(20), WithinBand, "Within band (-3.00%)"},
		{"boundary is not flagged", 25, target(20), WithinBand, "Within band (5.00%)"},
		{"negative boundary is not flagged", 15, target(20), WithinBand, "Within band (-5.00%)"},
		{"just past the band", 25.01, target(20), Overweight, "Overweight (+5.01%)"},
		{"no target", 42, nil, NoTarget, "n/a"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := driftRow("X", tt.actual, tt.target)
			if row.Status != tt.status {
				t.Errorf("status = %v, want %v", row.Status, tt.status)
			}
			if got := row.Badge(); got != tt.badge {
				t.Errorf("Badge() = %q, want %q", got, tt.badge)
			}
		})
	}
}

func TestAnalyzeAllocation(t *testing.T) {
	in := testInput()
	// Net worth 10000: cash 2700 (27% vs 10% target), crypto 0,
	// energy 1000 (10% vs 20%), water 500 (5% target, on target),
	// other 0 (vs 5% target), untargeted label.
	in.Cash = []CashHolding{{Currency: "EUR", Amount: decimal.NewFromInt(2700)}}
	in.Brokerage = []BrokerageHolding{
		{Name: "XOM", Label: "Energy Stocks", Currency: "EUR", Amount: decimal.NewFromInt(1000)},
		{Name: "PHO", Label: "Water ETF", Currency: "EUR", Amount: decimal.NewFromInt(500)},
		{Name: "ARK", Label: "Speculative", Currency: "EUR", Amount: decimal.NewFromInt(5800)},
	}
	s := Compute(in, FXOverride{})
	if !s.NetWorth.Equal(EUR(10000)) {
		t.Fatalf("NetWorth = %v, want 10000", s.NetWorth)
	}

	rows := map[Sleeve]DriftRow{}
	for _, r := range AnalyzeAllocation(s, in.Targets) {
		rows[r.Sleeve] = r
	}

	if got := rows[SleeveEmergencyFund]; got.Status != Overweight || got.Badge() != "Overweight (+17.00%)" {
		t.Errorf("Emergency Fund = %v %q", got.Status, got.Badge())
	}
	if got := rows[SleeveCrypto]; got.Status != Underweight || got.Badge() != "Underweight (-10.00%)" {
		t.Errorf("Crypto = %v %q", got.Status, got.Badge())
	}
	if got := rows["Energy Stocks"]; got.Status != Underweight {
		t.Errorf("Energy Stocks = %v, want Underweight", got.Status)
	}
	if got := rows["Water ETF"]; got.Status != WithinBand || got.Badge() != "Within band (0.00%)" {
		t.Errorf("Water ETF = %v %q", got.Status, got.Badge())
	}
	if got := rows["Speculative"]; got.Status != NoTarget || got.Badge() != "n/a" {
		t.Errorf("Speculative = %v %q, want untargeted n/a", got.Status, got.Badge())
	}
	if got := rows[SleeveFlexible]; got.Status != WithinBand {
		t.Errorf("Flexible = %v, want WithinBand at 0%% actual vs 5%% target", got.Status)
	}
}

func TestAnalyzeAllocation_CategorySleeveShadowsLabel(t *testing.T) {
	in := testInput()
	in.Cash = []CashHolding{{Currency: "EUR", Amount: decimal.NewFromInt(5000)}}
	// A brokerage label reusing a category sleeve name must not produce a second row.
	in.Brokerage = []BrokerageHolding{
		{Name: "BTC-ETP", Label: SleeveCrypto, Currency: "EUR", Amount: decimal.NewFromInt(5000)},
	}
	s := Compute(in, FXOverride{})

	count := 0
	for _, r := range AnalyzeAllocation(s, in.Targets) {
		if r.Sleeve == SleeveCrypto {
			count++
		}
	}
	if count != 1 {
		t.Errorf("Crypto sleeve appears %d times, want 1", count)
	}
}

func TestAnalyzeAllocation_ZeroNetWorth(t *testing.T) {
	in := testInput()
	s := Compute(in, FXOverride{})

	for _, r := range AnalyzeAllocation(s, in.Targets) {
		if !r.ActualPct.Equal(0) {
			t.Errorf("%s actual = %v, want 0 with zero net worth", r.Sleeve, r.ActualPct)
		}
	}
}

func TestAnalyzeCryptoSplit(t *testing.T) {
	in := testInput()
	in.Crypto = []CryptoHolding{
		{Coin: CoinBTC, Amount: Q(0.1)}, // 5500
		{Coin: CoinETH, Amount: Q(1)},   // 2800
	}
	s := Compute(in, FXOverride{})

	rows := AnalyzeCryptoSplit(s, in.CryptoSplit)
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}

	// BTC share: 5500/8300 = 66.27% vs 80 target.
	btc := rows[0]
	if btc.Sleeve != "BTC share" {
		t.Errorf("rows[0].Sleeve = %q, want BTC share", btc.Sleeve)
	}
	if !btc.ActualPct.Equal(66.265060) {
		t.Errorf("BTC actual = %v, want 66.27", btc.ActualPct)
	}
	if btc.Status != Underweight {
		t.Errorf("BTC status = %v, want Underweight", btc.Status)
	}

	eth := rows[1]
	if eth.Status != Overweight {
		t.Errorf("ETH status = %v, want Overweight at 33.73%% vs 20%%", eth.Status)
	}
}

func TestAnalyzeCryptoSplit_EmptySleeve(t *testing.T) {
	in := testInput()
	s := Compute(in, FXOverride{})

	for _, r := range AnalyzeCryptoSplit(s, in.CryptoSplit) {
		if !r.ActualPct.Equal(0) {
			t.Errorf("%s actual = %v, want 0 with empty crypto sleeve", r.Sleeve, r.ActualPct)
		}
	}
}
