package networth

import "github.com/shopspring/decimal"

// Sleeve is a named allocation bucket with an optional target percentage
// of net worth. A few sleeves are bound to whole holding categories; any
// other value is a custom brokerage label.
type Sleeve string

const (
	SleeveEmergencyFund Sleeve = "Emergency Fund"
	SleeveCrypto        Sleeve = "Crypto"
	SleeveFlexible      Sleeve = "Flexible / Open"
)

// TargetAllocation maps a sleeve to its target percentage of net worth
// (0-100). Targets need not sum to exactly 100; the flexible sleeve
// absorbs the residual.
type TargetAllocation map[Sleeve]float64

// Target returns the configured target for a sleeve, or nil if the
// sleeve has none.
func (t TargetAllocation) Target(s Sleeve) *float64 {
	if v, ok := t[s]; ok {
		return &v
	}
	return nil
}

// CryptoSplit maps a coin symbol to its target percentage share of the
// crypto sleeve, independent of the net worth targets.
type CryptoSplit map[string]float64

// CashHolding is a cash balance in a single currency. The amount may be
// negative (overdraft).
type CashHolding struct {
	Currency string          `json:"currency"`
	Amount   decimal.Decimal `json:"amount"`
}

// BrokerageHolding is a position held at the broker, tagged with the
// sleeve it belongs to.
type BrokerageHolding struct {
	Name     string          `json:"name"`
	Label    Sleeve          `json:"label"`
	Currency string          `json:"currency"`
	Amount   decimal.Decimal `json:"amount"`
}

// CryptoHolding is a number of coins held, in native units.
type CryptoHolding struct {
	Coin   string   `json:"coin"`
	Amount Quantity `json:"amount"`
}

// OtherAsset is any asset outside the main categories.
type OtherAsset struct {
	Name     string          `json:"name"`
	Currency string          `json:"currency"`
	Amount   decimal.Decimal `json:"amount"`
}

// Valued* records decorate a holding with its EUR-equivalent value.
// The source holding is embedded untouched; valuation never mutates it.

type ValuedCash struct {
	CashHolding
	EUR Money
}

type ValuedPosition struct {
	BrokerageHolding
	EUR Money
}

type ValuedCrypto struct {
	CryptoHolding
	EUR Money
}

type ValuedAsset struct {
	OtherAsset
	EUR Money
}

// Value converts the cash balance to EUR using the given FX table.
func (h CashHolding) Value(fx FXTable) ValuedCash {
	return ValuedCash{h, fx.ToEUR(h.Amount, h.Currency)}
}

// Value converts the position to EUR using the given FX table.
func (h BrokerageHolding) Value(fx FXTable) ValuedPosition {
	return ValuedPosition{h, fx.ToEUR(h.Amount, h.Currency)}
}

// Value prices the coins in EUR using the given spot price table.
func (h CryptoHolding) Value(prices CryptoPriceTable) ValuedCrypto {
	return ValuedCrypto{h, prices.Value(h.Coin, h.Amount)}
}

// Value converts the asset to EUR using the given FX table.
func (h OtherAsset) Value(fx FXTable) ValuedAsset {
	return ValuedAsset{h, fx.ToEUR(h.Amount, h.Currency)}
}
