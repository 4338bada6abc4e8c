package networth

import "fmt"

// DriftBand is the tolerance, in percentage points, around a target
// before a sleeve is flagged over- or underweight. The band is
// inclusive: only |drift| strictly greater than the band flags.
const DriftBand = 5.0

type DriftStatus int

const (
	NoTarget DriftStatus = iota
	WithinBand
	Overweight
	Underweight
)

// DriftRow reports one sleeve's actual weight against its target.
type DriftRow struct {
	Sleeve    Sleeve
	ActualPct Percent  // share of net worth (or of the crypto sleeve for coin rows)
	Target    *float64 // nil when the sleeve has no configured target
	Drift     Percent  // rounded to 2 decimals, zero when Target is nil
	Status    DriftStatus
}

// Badge returns the display classification, e.g. "Overweight (+7.00%)".
func (r DriftRow) Badge() string {
	switch r.Status {
	case Overweight:
		return fmt.Sprintf("Overweight (+%s)", r.Drift.String())
	case Underweight:
		return fmt.Sprintf("Underweight (%s)", r.Drift.String())
	case WithinBand:
		return fmt.Sprintf("Within band (%s)", r.Drift.String())
	default:
		return "n/a"
	}
}

func driftRow(sleeve Sleeve, actual Percent, target *float64) DriftRow {
	row := DriftRow{Sleeve: sleeve, ActualPct: actual, Target: target}
	if target == nil {
		return row
	}
	row.Drift = Percent(float64(actual) - *target).Round2()
	switch {
	case row.Drift > DriftBand:
		row.Status = Overweight
	case row.Drift < -DriftBand:
		row.Status = Underweight
	default:
		row.Status = WithinBand
	}
	return row
}

// AnalyzeAllocation compares each sleeve's actual share of net worth to
// its configured target. Category sleeves come first, then the
// brokerage sleeves in first-seen order; a label shadowed by an earlier
// row is skipped.
func AnalyzeAllocation(s *ComputedPortfolio, targets TargetAllocation) []DriftRow {
	type sleeveValue struct {
		sleeve Sleeve
		eur    Money
	}
	sleeves := []sleeveValue{
		{SleeveEmergencyFund, s.CashTotal},
		{SleeveCrypto, s.CryptoTotal},
		{SleeveFlexible, s.OtherTotal},
	}
	for _, lt := range s.ByLabel {
		sleeves = append(sleeves, sleeveValue{lt.Label, lt.EUR})
	}

	seen := map[Sleeve]bool{}
	rows := make([]DriftRow, 0, len(sleeves))
	for _, sv := range sleeves {
		if seen[sv.sleeve] {
			continue
		}
		seen[sv.sleeve] = true
		rows = append(rows, driftRow(sv.sleeve, Share(sv.eur, s.NetWorth), targets.Target(sv.sleeve)))
	}
	return rows
}

// AnalyzeCryptoSplit applies the same band rule to the internal BTC/ETH
// split, measured as each coin's share of the crypto sleeve rather than
// of net worth.
func AnalyzeCryptoSplit(s *ComputedPortfolio, split CryptoSplit) []DriftRow {
	var rows []DriftRow
	for _, coin := range []string{CoinBTC, CoinETH} {
		target, ok := split[coin]
		if !ok {
			continue
		}
		coinEUR := EUR(0)
		for _, c := range s.Crypto {
			if c.Coin == coin {
				coinEUR = coinEUR.Add(c.EUR)
			}
		}
		rows = append(rows, driftRow(Sleeve(coin+" share"), Share(coinEUR, s.CryptoTotal), &target))
	}
	return rows
}
