package networth

// ComputedPortfolio is the canonical EUR-denominated view of the
// portfolio at the input's date. It is built once per Compute call and
// read-only afterwards: every downstream consumer (renderer, exporter)
// reads these fields by name.
type ComputedPortfolio struct {
	Date Date
	FX   FXTable // effective table, overrides already applied

	Cash           []ValuedCash
	CashTotal      Money
	Brokerage      []ValuedPosition
	BrokerageTotal Money
	Crypto         []ValuedCrypto
	CryptoTotal    Money
	Other          []ValuedAsset
	OtherTotal     Money

	LiabilitiesTotal Money
	TotalAssets      Money
	NetWorth         Money

	LastMonth  Money // most recent history entry, or current net worth when the history is empty
	Baseline   Money // first history entry, or current net worth when the history is empty
	MoMChange  Performance
	Cumulative Performance

	Breakdown  []BreakdownRow
	ByLabel    []LabelTotal
	ByCurrency []CurrencyExposure
}

// BreakdownRow pairs a holding category with its total and, where one
// applies, its configured target percentage of net worth. Brokerage has
// no single target: its sub-sleeves are targeted individually.
type BreakdownRow struct {
	Name   string
	EUR    Money
	Target *float64
}

// LabelTotal is the summed EUR value of one brokerage sleeve, in
// first-seen order of the labels in the input.
type LabelTotal struct {
	Label Sleeve
	EUR   Money
}

// CurrencyExposure is the EUR value of assets exposed to one currency.
// Crypto is its own bucket, not attributed to a fiat currency.
type CurrencyExposure struct {
	Currency string
	EUR      Money
}

// Category display names for the fixed breakdown rows.
const (
	CategoryCash      = "Cash & Emergency Fund"
	CategoryBrokerage = "Brokerage Holdings"
	CategoryCrypto    = "Crypto"
	CategoryOther     = "Other Assets"
)

// CryptoBucket is the currency-exposure bucket for non-fiat holdings.
const CryptoBucket = "Crypto"

// Compute values and aggregates the input into a new ComputedPortfolio.
// It is a pure function: deterministic, no I/O, no mutation of the
// input, and it never fails. Absent sections degrade to zero totals.
func Compute(in *PortfolioInput, override FXOverride) *ComputedPortfolio {
	fx := in.FX.Effective(override)

	s := &ComputedPortfolio{Date: in.Date, FX: fx}

	for _, h := range in.Cash {
		v := h.Value(fx)
		s.Cash = append(s.Cash, v)
		s.CashTotal = s.CashTotal.Add(v.EUR)
	}
	for _, h := range in.Brokerage {
		v := h.Value(fx)
		s.Brokerage = append(s.Brokerage, v)
		s.BrokerageTotal = s.BrokerageTotal.Add(v.EUR)
	}
	for _, h := range in.Crypto {
		v := h.Value(in.CryptoPrices)
		s.Crypto = append(s.Crypto, v)
		s.CryptoTotal = s.CryptoTotal.Add(v.EUR)
	}
	for _, h := range in.OtherAssets {
		v := h.Value(fx)
		s.Other = append(s.Other, v)
		s.OtherTotal = s.OtherTotal.Add(v.EUR)
	}

	// Liabilities are retained for forward compatibility but always
	// value to zero in the current scope.
	s.LiabilitiesTotal = EUR(0)

	s.TotalAssets = s.CashTotal.Add(s.BrokerageTotal).Add(s.CryptoTotal).Add(s.OtherTotal)
	s.NetWorth = s.TotalAssets.Sub(s.LiabilitiesTotal)

	// History references: empty history falls back to the current net
	// worth, yielding zero change rather than failing.
	s.LastMonth, s.Baseline = s.NetWorth, s.NetWorth
	if in.History != nil && in.History.Len() > 0 {
		_, s.LastMonth = in.History.Latest()
		_, s.Baseline = in.History.Baseline()
	}
	s.MoMChange = Performance{Start: s.LastMonth, End: s.NetWorth}
	s.Cumulative = Performance{Start: s.Baseline, End: s.NetWorth}

	s.Breakdown = []BreakdownRow{
		{Name: CategoryCash, EUR: s.CashTotal, Target: in.Targets.Target(SleeveEmergencyFund)},
		{Name: CategoryBrokerage, EUR: s.BrokerageTotal, Target: nil},
		{Name: CategoryCrypto, EUR: s.CryptoTotal, Target: in.Targets.Target(SleeveCrypto)},
		{Name: CategoryOther, EUR: s.OtherTotal, Target: in.Targets.Target(SleeveFlexible)},
	}

	s.ByLabel = byLabel(s.Brokerage)
	s.ByCurrency = byCurrency(s)

	return s
}

// byLabel sums brokerage positions per sleeve label, preserving the
// first-seen order of labels; repeated labels accumulate.
func byLabel(positions []ValuedPosition) []LabelTotal {
	index := map[Sleeve]int{}
	var totals []LabelTotal
	for _, p := range positions {
		if i, ok := index[p.Label]; ok {
			totals[i].EUR = totals[i].EUR.Add(p.EUR)
			continue
		}
		index[p.Label] = len(totals)
		totals = append(totals, LabelTotal{Label: p.Label, EUR: p.EUR})
	}
	return totals
}

// byCurrency groups asset values by currency exposure. Crypto is its
// own bucket. USD cash sits in transit accounts and is not counted as
// USD exposure; it still counts toward the cash total.
func byCurrency(s *ComputedPortfolio) []CurrencyExposure {
	exposures := []CurrencyExposure{{Currency: CryptoBucket, EUR: s.CryptoTotal}}
	for _, code := range []string{CurEUR, CurUSD, CurRON, CurCHF} {
		total := EUR(0)
		if code != CurUSD {
			for _, c := range s.Cash {
				if c.Currency == code {
					total = total.Add(c.EUR)
				}
			}
		}
		for _, p := range s.Brokerage {
			if p.Currency == code {
				total = total.Add(p.EUR)
			}
		}
		for _, a := range s.Other {
			if a.Currency == code {
				total = total.Add(a.EUR)
			}
		}
		exposures = append(exposures, CurrencyExposure{Currency: code, EUR: total})
	}
	return exposures
}

// Share returns the percentage a part represents of a whole, 0 when the
// whole is zero.
func Share(part, whole Money) Percent {
	if whole.IsZero() {
		return 0
	}
	return Percent(100 * part.AsFloat() / whole.AsFloat())
}
