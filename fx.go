package networth

import (
	"maps"
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

// Currency codes with a known rate-to-EUR. Any other code passes through
// conversion unchanged, a deliberate forward-compatibility policy.
const (
	CurEUR = "EUR"
	CurUSD = "USD"
	CurCHF = "CHF"
	CurRON = "RON"
)

// Coin symbols priced by the CryptoPriceTable.
const (
	CoinBTC = "BTC"
	CoinETH = "ETH"
)

// FXTable maps a currency code to its rate to EUR.
type FXTable map[string]decimal.Decimal

// ToEUR converts an amount in the given currency to EUR.
//
// EUR amounts pass through unchanged. USD, CHF and RON multiply by the
// table rate, whatever it is: a zero or negative rate simply propagates,
// rate validation belongs to the configuration layer. Any other code
// passes through unconverted, treated as already EUR.
func (t FXTable) ToEUR(amount decimal.Decimal, currency string) Money {
	switch currency {
	case CurUSD, CurCHF, CurRON:
		return EUR(amount.Mul(t[currency]))
	default:
		return EUR(amount)
	}
}

// FXOverride carries user-entered replacement rates for CHF and RON,
// still in their raw text form.
type FXOverride struct {
	CHF string
	RON string
}

// Effective returns the table with the override applied. An override
// value is used only if it parses as a finite number greater than zero;
// otherwise the base rate is retained silently.
func (t FXTable) Effective(o FXOverride) FXTable {
	fx := maps.Clone(t)
	if fx == nil {
		fx = FXTable{}
	}
	if r, ok := parseRate(o.CHF); ok {
		fx[CurCHF] = r
	}
	if r, ok := parseRate(o.RON); ok {
		fx[CurRON] = r
	}
	return fx
}

func parseRate(s string) (decimal.Decimal, bool) {
	if s == "" {
		return decimal.Decimal{}, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return decimal.Decimal{}, false
	}
	return decimal.NewFromFloat(v), true
}

// CryptoPriceTable maps a coin symbol to its EUR spot price.
type CryptoPriceTable map[string]decimal.Decimal

// Value returns the EUR value of an amount of coins. An unknown symbol
// has a zero price; rejecting it is an input-validation concern upstream.
func (p CryptoPriceTable) Value(coin string, amount Quantity) Money {
	return EUR(p[coin]).Mul(amount)
}
