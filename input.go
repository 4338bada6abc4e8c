package networth

import (
	"maps"
	"slices"

	"github.com/shopspring/decimal"
)

// PortfolioInput bundles everything a computation needs: holdings, FX
// table, crypto prices, targets and the historical snapshot series. It
// is a value the caller owns; the engine never mutates it, and edits
// construct a new input through the With* helpers.
type PortfolioInput struct {
	Date         Date               `json:"date,omitzero"`
	FX           FXTable            `json:"fx"`
	CryptoPrices CryptoPriceTable   `json:"cryptoPrices"`
	Cash         []CashHolding      `json:"cash"`
	Brokerage    []BrokerageHolding `json:"brokerage"`
	Crypto       []CryptoHolding    `json:"crypto"`
	OtherAssets  []OtherAsset       `json:"otherAssets"`
	Liabilities  []OtherAsset       `json:"liabilities"` // retained for forward compatibility, always empty
	History      *History           `json:"history"`
	Targets      TargetAllocation   `json:"targets"`
	CryptoSplit  CryptoSplit        `json:"cryptoSplit"`
}

// NewPortfolioInput returns an empty input ready to be filled.
func NewPortfolioInput() *PortfolioInput {
	return &PortfolioInput{
		FX:           FXTable{},
		CryptoPrices: CryptoPriceTable{},
		History:      &History{},
		Targets:      TargetAllocation{},
		CryptoSplit:  CryptoSplit{},
	}
}

// Clone returns a deep copy of the input.
func (in *PortfolioInput) Clone() *PortfolioInput {
	out := *in
	out.FX = maps.Clone(in.FX)
	out.CryptoPrices = maps.Clone(in.CryptoPrices)
	out.Cash = slices.Clone(in.Cash)
	out.Brokerage = slices.Clone(in.Brokerage)
	out.Crypto = slices.Clone(in.Crypto)
	out.OtherAssets = slices.Clone(in.OtherAssets)
	out.Liabilities = slices.Clone(in.Liabilities)
	out.Targets = maps.Clone(in.Targets)
	out.CryptoSplit = maps.Clone(in.CryptoSplit)
	if in.History != nil {
		out.History = in.History.Clone()
	} else {
		out.History = &History{}
	}
	return &out
}

// WithPosition returns a new input with the brokerage position added.
// An existing position with the same name accumulates the amount instead
// of creating a duplicate entry.
func (in *PortfolioInput) WithPosition(p BrokerageHolding) *PortfolioInput {
	out := in.Clone()
	if i := slices.IndexFunc(out.Brokerage, func(b BrokerageHolding) bool { return b.Name == p.Name }); i >= 0 {
		out.Brokerage[i].Amount = out.Brokerage[i].Amount.Add(p.Amount)
		return out
	}
	out.Brokerage = append(out.Brokerage, p)
	return out
}

// WithWithdrawal returns a new input with the named brokerage position
// reduced by amount, floored at zero. A position reaching zero is
// removed; an unknown position leaves the input unchanged.
func (in *PortfolioInput) WithWithdrawal(name, currency string, amount decimal.Decimal) *PortfolioInput {
	out := in.Clone()
	i := slices.IndexFunc(out.Brokerage, func(b BrokerageHolding) bool {
		return b.Name == name && b.Currency == currency
	})
	if i < 0 {
		return out
	}
	rest := out.Brokerage[i].Amount.Sub(amount)
	if rest.IsNegative() {
		rest = decimal.Zero
	}
	if rest.IsZero() {
		out.Brokerage = slices.Delete(out.Brokerage, i, i+1)
		return out
	}
	out.Brokerage[i].Amount = rest
	return out
}

// WithSnapshot returns a new input whose history records the given net
// worth on the given day, overwriting any snapshot already on that day.
func (in *PortfolioInput) WithSnapshot(on Date, netWorth Money) *PortfolioInput {
	out := in.Clone()
	out.History.Append(on, netWorth)
	return out
}
