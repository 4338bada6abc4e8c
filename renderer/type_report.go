package renderer

import (
	"fmt"

	"github.com/dmoraru/networth"
)

// Report is the view model for the markdown report: every value is
// preformatted so the templates stay purely structural.
type Report struct {
	Date     string
	NetWorth string
	Assets   string

	Returns []ReturnLine

	Breakdown []CategoryLine

	Cash           []CashLine
	CashTotal      string
	Brokerage      []PositionLine
	BrokerageTotal string
	Crypto         []CoinLine
	CryptoTotal    string
	Other          []AssetLine
	OtherTotal     string

	Allocation  []AllocationLine
	CryptoSplit []AllocationLine

	Exposure []ExposureLine
}

type ReturnLine struct {
	Period string
	Abs    string
	Pct    string
}

type CategoryLine struct {
	Name   string
	EUR    string
	Share  string // of net worth
	Target string
}

type CashLine struct {
	Currency string
	Original string
	EUR      string
}

type PositionLine struct {
	Name  string
	Label string
	EUR   string
	Share string // of the brokerage total
}

type CoinLine struct {
	Coin  string
	EUR   string
	Share string // of the crypto sleeve
}

type AssetLine struct {
	Name string
	EUR  string
}

type AllocationLine struct {
	Sleeve string
	Actual string
	Target string
	Badge  string
}

type ExposureLine struct {
	Currency string
	EUR      string
	Share    string // of total assets
}

// NewReport assembles the view model from a computed portfolio.
func NewReport(s *networth.ComputedPortfolio, in *networth.PortfolioInput) *Report {
	r := &Report{
		Date:           s.Date.String(),
		NetWorth:       s.NetWorth.String(),
		Assets:         s.TotalAssets.String(),
		CashTotal:      s.CashTotal.String(),
		BrokerageTotal: s.BrokerageTotal.String(),
		CryptoTotal:    s.CryptoTotal.String(),
		OtherTotal:     s.OtherTotal.String(),
	}

	for _, period := range networth.Periods() {
		res := networth.ComputeReturn(s, in.History, period)
		r.Returns = append(r.Returns, ReturnLine{
			Period: period.String(),
			Abs:    res.Change().String(),
			Pct:    res.Percent().String(),
		})
	}

	for _, b := range s.Breakdown {
		r.Breakdown = append(r.Breakdown, CategoryLine{
			Name:   b.Name,
			EUR:    b.EUR.String(),
			Share:  networth.Share(b.EUR, s.NetWorth).String(),
			Target: formatTarget(b.Target),
		})
	}

	for _, c := range s.Cash {
		original := fmt.Sprintf("%s %s", c.Amount, c.Currency)
		r.Cash = append(r.Cash, CashLine{Currency: c.Currency, Original: original, EUR: c.EUR.String()})
	}
	for _, p := range s.Brokerage {
		r.Brokerage = append(r.Brokerage, PositionLine{
			Name:  p.Name,
			Label: string(p.Label),
			EUR:   p.EUR.String(),
			Share: networth.Share(p.EUR, s.BrokerageTotal).String(),
		})
	}
	for _, c := range s.Crypto {
		r.Crypto = append(r.Crypto, CoinLine{
			Coin:  c.Coin,
			EUR:   c.EUR.String(),
			Share: networth.Share(c.EUR, s.CryptoTotal).String(),
		})
	}
	for _, a := range s.Other {
		r.Other = append(r.Other, AssetLine{Name: a.Name, EUR: a.EUR.String()})
	}

	for _, row := range networth.AnalyzeAllocation(s, in.Targets) {
		r.Allocation = append(r.Allocation, allocationLine(row))
	}
	for _, row := range networth.AnalyzeCryptoSplit(s, in.CryptoSplit) {
		r.CryptoSplit = append(r.CryptoSplit, allocationLine(row))
	}

	for _, e := range s.ByCurrency {
		r.Exposure = append(r.Exposure, ExposureLine{
			Currency: e.Currency,
			EUR:      e.EUR.String(),
			Share:    networth.Share(e.EUR, s.TotalAssets).String(),
		})
	}

	return r
}

func allocationLine(row networth.DriftRow) AllocationLine {
	return AllocationLine{
		Sleeve: string(row.Sleeve),
		Actual: row.ActualPct.String(),
		Target: formatTarget(row.Target),
		Badge:  row.Badge(),
	}
}

func formatTarget(target *float64) string {
	if target == nil {
		return "–"
	}
	return fmt.Sprintf("%g%%", *target)
}
