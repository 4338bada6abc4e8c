package store

import (
	"bytes"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dmoraru/networth"

	_ "modernc.org/sqlite"
)

// documentName is the key under which the single portfolio input
// document is stored.
const documentName = "input"

// SQLite persists the input document in a local sqlite database.
type SQLite struct {
	db *sql.DB
}

// OpenSQLite opens (and if needed creates) the database at dbPath and
// applies the schema migrations.
func OpenSQLite(dbPath string) (*SQLite, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := runMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLite{db: db}, nil
}

func (s *SQLite) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Load reads the stored input document. An absent document degrades to
// the empty input.
func (s *SQLite) Load() (*networth.PortfolioInput, error) {
	var body []byte
	err := s.db.QueryRow(`SELECT body FROM documents WHERE name = ?`, documentName).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return networth.NewPortfolioInput(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("load input document: %w", err)
	}

	in, err := networth.DecodeInput(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("decode input document: %w", err)
	}
	return in, nil
}

// Save upserts the input document.
func (s *SQLite) Save(in *networth.PortfolioInput) error {
	var buf bytes.Buffer
	if err := networth.EncodeInput(&buf, in); err != nil {
		return fmt.Errorf("encode input document: %w", err)
	}

	_, err := s.db.Exec(`
		INSERT INTO documents (name, body, updated_at)
		VALUES (?, ?, datetime('now'))
		ON CONFLICT(name) DO UPDATE SET body = excluded.body, updated_at = excluded.updated_at`,
		documentName, buf.Bytes())
	if err != nil {
		return fmt.Errorf("save input document: %w", err)
	}
	return nil
}
