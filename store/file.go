package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/dmoraru/networth"
)

// File persists the input as a single JSON document on disk.
type File struct {
	Path string
}

// Load reads the input document. A missing file degrades to the empty
// input rather than an error, so a fresh setup starts in-memory.
func (f File) Load() (*networth.PortfolioInput, error) {
	r, err := os.Open(f.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return networth.NewPortfolioInput(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("open input file: %w", err)
	}
	defer r.Close()

	in, err := networth.DecodeInput(r)
	if err != nil {
		return nil, fmt.Errorf("read input file %q: %w", f.Path, err)
	}
	return in, nil
}

// Save writes the input document, creating the parent directory if
// needed.
func (f File) Save(in *networth.PortfolioInput) error {
	if dir := filepath.Dir(f.Path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create input directory: %w", err)
		}
	}
	w, err := os.Create(f.Path)
	if err != nil {
		return fmt.Errorf("create input file: %w", err)
	}
	defer w.Close()

	if err := networth.EncodeInput(w, in); err != nil {
		return fmt.Errorf("write input file %q: %w", f.Path, err)
	}
	return nil
}
