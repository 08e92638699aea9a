package store

import (
	"database/sql"
	"path/filepath"
	"strings"
	"testing"

	"github.com/itusdata/valuations-cli-go/internal/output"
)

// newTestDB creates a throwaway valuations file with a few rows.
func newTestDB(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "valuations.db")

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	stmts := []string{
		`CREATE TABLE valuations (
			accord_code INTEGER,
			date TEXT,
			sector TEXT,
			company_name TEXT,
			mcap_category TEXT,
			pe REAL
		)`,
		`INSERT INTO valuations VALUES (1001, '2024-01-15', 'Tech', 'Acme', 'Large', 18.5)`,
		`INSERT INTO valuations VALUES (1002, '2024-01-15', 'Tech', 'Globex', 'Large', 12.1)`,
		`INSERT INTO valuations VALUES (1001, '2024-01-16', 'Tech', 'Acme', 'Large', 19.0)`,
	}
	for _, s := range stmts {
		if _, err := db.Exec(s); err != nil {
			t.Fatal(err)
		}
	}
	return path
}

func TestQueryMissingFile(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "absent.db"))
	_, err := s.Query("SELECT 1")
	if err == nil {
		t.Fatal("Expected error for missing data file")
	}
	if !strings.Contains(err.Error(), "absent.db") {
		t.Errorf("Error should name the path, got %v", err)
	}
}

func TestQueryScansRows(t *testing.T) {
	s := New(newTestDB(t))

	table, err := s.Query("SELECT date, pe FROM valuations WHERE accord_code=? ORDER BY date", 1001)
	if err != nil {
		t.Fatal(err)
	}
	if len(table.Header) != 2 || table.Header[0] != "date" || table.Header[1] != "pe" {
		t.Errorf("Unexpected header: %v", table.Header)
	}
	if len(table.Rows) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(table.Rows))
	}
	if table.Rows[0][0] != "2024-01-15" {
		t.Errorf("Expected date text first, got %v", table.Rows[0][0])
	}
	if got := output.CellString(table.Rows[0][1]); got != "18.5" {
		t.Errorf("Expected pe 18.5, got %q", got)
	}
}

func TestQueryParameterizedFilter(t *testing.T) {
	s := New(newTestDB(t))

	table, err := s.Query("SELECT pe FROM valuations WHERE accord_code=? AND date=?", 1002, "2024-01-15")
	if err != nil {
		t.Fatal(err)
	}
	if len(table.Rows) != 1 {
		t.Fatalf("Expected 1 row, got %d", len(table.Rows))
	}
	if got := output.CellString(table.Rows[0][0]); got != "12.1" {
		t.Errorf("Expected 12.1, got %q", got)
	}
}

func TestColumns(t *testing.T) {
	s := New(newTestDB(t))

	cols, err := s.Columns("valuations")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"accord_code", "date", "sector", "company_name", "mcap_category", "pe"} {
		if !cols[want] {
			t.Errorf("Expected column %s in schema", want)
		}
	}
	if cols["dividend"] {
		t.Error("Unexpected column dividend")
	}
}

func TestColumnsUnknownTable(t *testing.T) {
	s := New(newTestDB(t))
	if _, err := s.Columns("nope"); err == nil {
		t.Error("Expected error for unknown table")
	}
}
