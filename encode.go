package networth

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// DecodeInput reads a portfolio input from its single-document JSON
// form. Missing sections decode to their empty values, so a minimal
// document is a valid input.
func DecodeInput(r io.Reader) (*PortfolioInput, error) {
	in := NewPortfolioInput()
	dec := json.NewDecoder(r)
	if err := dec.Decode(in); err != nil {
		return nil, fmt.Errorf("cannot parse portfolio input: %w", err)
	}
	if in.History == nil {
		in.History = &History{}
	}
	return in, nil
}

// EncodeInput writes the portfolio input in its canonical JSON form,
// indented for hand editing, decimal amounts unquoted.
func EncodeInput(w io.Writer, in *PortfolioInput) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(in); err != nil {
		return fmt.Errorf("cannot encode portfolio input: %w", err)
	}
	return nil
}
