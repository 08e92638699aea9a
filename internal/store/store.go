// Package store reads the local valuations data file.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"strings"
	"sync"

	_ "github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"

	"github.com/itusdata/valuations-cli-go/internal/output"
)

// Querier runs one parameterized statement and returns the full result.
// Columns exposes the schema of the configured table so requested field
// names can be checked before they are interpolated into statement text.
type Querier interface {
	Query(sqlText string, args ...interface{}) (*output.Table, error)
	Columns(table string) (map[string]bool, error)
}

// SQLite reads a local SQLite data file. Each query opens its own
// short-lived read-only connection; query volume is low enough that pooling
// buys nothing.
type SQLite struct {
	path string

	mu      sync.Mutex
	columns map[string]bool
}

// New creates a store over the data file at path. The file is not touched
// until the first query.
func New(path string) *SQLite {
	return &SQLite{path: path}
}

// open verifies the data file exists before handing out a connection.
func (s *SQLite) open() (*sql.DB, error) {
	if _, err := os.Stat(s.path); err != nil {
		return nil, fmt.Errorf("data file not found at path: %s", s.path)
	}
	db, err := sql.Open("sqlite3", "file:"+s.path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("open data file: %w", err)
	}
	return db, nil
}

// Query runs the statement and captures the entire result in memory, then
// closes the connection.
func (s *SQLite) Query(sqlText string, args ...interface{}) (*output.Table, error) {
	db, err := s.open()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.Query(sqlText, args...)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	table := &output.Table{Header: append([]string(nil), cols...)}
	for rows.Next() {
		raw := make([]interface{}, len(cols))
		ptrs := make([]interface{}, len(cols))
		for i := range raw {
			ptrs[i] = &raw[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}
		row := make([]interface{}, len(cols))
		for i, v := range raw {
			row[i] = normalize(v)
		}
		table.Rows = append(table.Rows, row)
	}
	return table, rows.Err()
}

// Columns returns the column set of table, read once via PRAGMA table_info
// and memoized for the lifetime of the store.
func (s *SQLite) Columns(table string) (map[string]bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.columns != nil {
		return s.columns, nil
	}

	info, err := s.Query(fmt.Sprintf("PRAGMA table_info(%s)", table))
	if err != nil {
		return nil, err
	}
	cols := make(map[string]bool, len(info.Rows))
	for _, row := range info.Rows {
		// name is the second column of table_info output
		if name, ok := row[1].(string); ok {
			cols[strings.ToLower(name)] = true
		}
	}
	if len(cols) == 0 {
		return nil, fmt.Errorf("table not found: %s", table)
	}
	s.columns = cols
	return cols, nil
}

// normalize maps driver values onto the cell types the host receives.
// SQLite REAL values are carried as decimals so ratios render without
// float drift.
func normalize(v interface{}) interface{} {
	switch x := v.(type) {
	case nil:
		return nil
	case []byte:
		return string(x)
	case float64:
		return decimal.NewFromFloat(x)
	default:
		return x
	}
}
