package networth

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
)

func TestComputeReturn_EmptyHistory(t *testing.T) {
	in := testInput()
	in.Cash = []CashHolding{{Currency: "EUR", Amount: decimal.NewFromInt(1000)}}
	s := Compute(in, FXOverride{})

	for _, period := range Periods() {
		t.Run(period.String(), func(t *testing.T) {
			res := ComputeReturn(s, in.History, period)
			if res == nil {
				t.Fatal("ComputeReturn() = nil, want zero-change performance")
			}
			if !res.Change().IsZero() {
				t.Errorf("abs = %v, want 0", res.Change())
			}
			if !res.Percent().Equal(0) {
				t.Errorf("pct = %v, want 0", res.Percent())
			}
		})
	}
}

func TestComputeReturn_AllAgainstBaseline(t *testing.T) {
	in := testInput()
	in.Cash = []CashHolding{{Currency: "EUR", Amount: decimal.NewFromInt(43630)}}
	in.History.
		Append(NewDate(2025, 1, 31), EUR(30000)).
		Append(NewDate(2025, 7, 31), EUR(40300))
	s := Compute(in, FXOverride{})

	res := ComputeReturn(s, in.History, AllTime)
	if got, want := res.Change(), EUR(13630); !got.Equal(want) {
		t.Errorf("abs = %v, want %v", got, want)
	}
	if got, want := res.Percent(), Percent(45.433333); !got.Equal(want) {
		t.Errorf("pct = %v, want %v", got, want)
	}
}

func TestComputeReturn_MoMAgainstLatest(t *testing.T) {
	in := testInput()
	in.Cash = []CashHolding{{Currency: "EUR", Amount: decimal.NewFromInt(43630)}}
	in.History.
		Append(NewDate(2025, 1, 31), EUR(30000)).
		Append(NewDate(2025, 7, 31), EUR(40300))
	s := Compute(in, FXOverride{})

	res := ComputeReturn(s, in.History, MoM)
	if got, want := res.Change(), EUR(3330); !got.Equal(want) {
		t.Errorf("abs = %v, want %v", got, want)
	}
	if got, want := res.Percent(), Percent(100*3330.0/40300.0); !got.Equal(want) {
		t.Errorf("pct = %v, want %v", got, want)
	}
}

func TestComputeReturn_SpacedPeriodsDegradeToLatest(t *testing.T) {
	// 3M/6M/1Y resolve positionally until the series carries real
	// monthly spacing; they must agree with MoM.
	in := testInput()
	in.Cash = []CashHolding{{Currency: "EUR", Amount: decimal.NewFromInt(50000)}}
	in.History.Append(NewDate(2025, 7, 31), EUR(40000))
	s := Compute(in, FXOverride{})

	want := ComputeReturn(s, in.History, MoM)
	for _, period := range []Period{ThreeMonths, SixMonths, OneYear} {
		got := ComputeReturn(s, in.History, period)
		if !got.Change().Equal(want.Change()) || !got.Percent().Equal(want.Percent()) {
			t.Errorf("%s = {%v %v}, want MoM resolution {%v %v}",
				period, got.Change(), got.Percent(), want.Change(), want.Percent())
		}
	}
}

func TestPerformance_ZeroReference(t *testing.T) {
	p := Performance{Start: EUR(0), End: EUR(500)}
	if got := p.Percent(); !got.Equal(0) {
		t.Errorf("Percent() with zero reference = %v, want 0", got)
	}
	if got, want := p.Change(), EUR(500); !got.Equal(want) {
		t.Errorf("Change() = %v, want %v", got, want)
	}
}

func TestPeriod_Months(t *testing.T) {
	tests := []struct {
		period Period
		want   int
	}{
		{MoM, 0}, {ThreeMonths, 3}, {SixMonths, 6}, {OneYear, 12}, {AllTime, 0},
	}
	for _, tt := range tests {
		if got := tt.period.Months(); got != tt.want {
			t.Errorf("%s.Months() = %d, want %d", tt.period, got, tt.want)
		}
	}
}

func TestParsePeriod(t *testing.T) {
	for _, period := range Periods() {
		got, err := ParsePeriod(period.String())
		if err != nil || got != period {
			t.Errorf("ParsePeriod(%q) = %v, %v", period.String(), got, err)
		}
	}
	if _, err := ParsePeriod("fortnight"); err == nil {
		t.Error("ParsePeriod(fortnight) expected an error")
	}
}

func TestPercent_Round2(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{7.004, 7.00},
		{7.006, 7.01},
		{-6.654, -6.65},
		{0, 0},
	}
	for _, tt := range tests {
		if got := Percent(tt.in).Round2(); math.Abs(float64(got)-tt.want) > 1e-9 {
			t.Errorf("Round2(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
