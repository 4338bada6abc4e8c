package networth

import (
	"encoding/csv"
	"strconv"
	"strings"
)

// Row is one ordered line of the flat tabular export.
type Row []string

// Rows is the whole export, section by section.
type Rows []Row

// BuildExportRows flattens a computed portfolio into the canonical
// export: metadata, summary KPIs, one table per holding category each
// terminated by a total row, the allocation-vs-target table and the
// currency exposure. Monetary cells are plain text with two decimals
// and no symbol; percentage cells carry no percent sign.
func BuildExportRows(s *ComputedPortfolio, in *PortfolioInput, exportedAt string) Rows {
	rows := Rows{
		{"Report Date", s.Date.String()},
		{"Exported At", exportedAt},
		{"FX Rates (to EUR)",
			"USD:" + s.FX[CurUSD].String(),
			"CHF:" + s.FX[CurCHF].String(),
			"RON:" + s.FX[CurRON].String()},
		{},
	}

	rows = append(rows,
		Row{"Summary"},
		Row{"Total Assets (EUR)", s.TotalAssets.Fixed()},
		Row{"Net Worth (EUR)", s.NetWorth.Fixed()},
		Row{"MoM Change (EUR)", s.MoMChange.Change().Fixed(), "MoM Change (%)", s.MoMChange.Percent().Fixed()},
		Row{"Cumulative (EUR)", s.Cumulative.Change().Fixed(), "Cumulative (%)", s.Cumulative.Percent().Fixed()},
		Row{},
	)

	rows = append(rows, Row{"Cash Balances"}, Row{"Currency", "Original Amount", "EUR Value"})
	for _, c := range s.Cash {
		rows = append(rows, Row{c.Currency, c.Amount.String(), c.EUR.Fixed()})
	}
	rows = append(rows, Row{"Total", "", s.CashTotal.Fixed()}, Row{})

	rows = append(rows, Row{"Brokerage Portfolio"}, Row{"Ticker", "Sleeve", "Currency", "Original Amount", "EUR Value"})
	for _, p := range s.Brokerage {
		rows = append(rows, Row{p.Name, string(p.Label), p.Currency, p.Amount.String(), p.EUR.Fixed()})
	}
	rows = append(rows, Row{"Total", "", "", "", s.BrokerageTotal.Fixed()}, Row{})

	rows = append(rows, Row{"Crypto Holdings"}, Row{"Coin", "Amount", "EUR Value"})
	for _, c := range s.Crypto {
		rows = append(rows, Row{c.Coin, c.Amount.String(), c.EUR.Fixed()})
	}
	rows = append(rows, Row{"Total", "", s.CryptoTotal.Fixed()}, Row{})

	rows = append(rows, Row{"Other Assets"}, Row{"Name", "Currency", "Amount", "EUR Value"})
	for _, a := range s.Other {
		rows = append(rows, Row{a.Name, a.Currency, a.Amount.String(), a.EUR.Fixed()})
	}
	rows = append(rows, Row{"Total", "", "", s.OtherTotal.Fixed()}, Row{})

	rows = append(rows, Row{"Allocation vs Target"}, Row{"Sleeve", "Actual % of Net Worth", "Target %", "Drift %"})
	for _, r := range AnalyzeAllocation(s, in.Targets) {
		target, drift := "", ""
		if r.Target != nil {
			target = strconv.FormatFloat(*r.Target, 'f', -1, 64)
			drift = r.Drift.Fixed()
		}
		rows = append(rows, Row{string(r.Sleeve), r.ActualPct.Fixed(), target, drift})
	}
	rows = append(rows, Row{})

	rows = append(rows, Row{"Currency Exposure (Assets)"}, Row{"Currency", "EUR Value", "% of Assets"})
	for _, e := range s.ByCurrency {
		rows = append(rows, Row{e.Currency, e.EUR.Fixed(), Share(e.EUR, s.TotalAssets).Fixed()})
	}

	return rows
}

// DelimitedText serializes the rows as comma-delimited text. Cells
// containing a separator, quote or newline are quoted with internal
// quotes doubled, so the output round-trips through any conforming
// parser.
func (r Rows) DelimitedText() string {
	var b strings.Builder
	w := csv.NewWriter(&b)
	for _, row := range r {
		// encoding/csv refuses zero-field records; a blank section
		// separator is a single empty cell.
		if len(row) == 0 {
			row = Row{""}
		}
		w.Write(row)
	}
	w.Flush()
	return b.String()
}
