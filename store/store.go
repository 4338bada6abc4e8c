// Package store is the optional persistence boundary for the portfolio
// input. The engine never depends on it: a caller without a store
// simply works on an in-memory input.
package store

import "github.com/dmoraru/networth"

// Store loads and saves the entire portfolio input as one opaque
// document.
type Store interface {
	Load() (*networth.PortfolioInput, error)
	Save(*networth.PortfolioInput) error
}
