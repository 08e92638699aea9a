package store

import (
	"strings"
	"sync"

	"github.com/itusdata/valuations-cli-go/internal/output"
)

// Fake is an in-memory Querier for unit tests. It serves canned tables
// keyed by statement text and records every query it receives, so cache
// behaviour is observable from assertions.
type Fake struct {
	mu     sync.Mutex
	tables map[string]*output.Table
	cols   map[string]bool
	log    []FakeQuery
}

// FakeQuery records one query made against the fake.
type FakeQuery struct {
	SQL  string
	Args []interface{}
}

// NewFake creates an empty fake querier.
func NewFake() *Fake {
	return &Fake{
		tables: make(map[string]*output.Table),
		cols:   make(map[string]bool),
	}
}

// Seed registers the table returned for the exact statement text.
func (f *Fake) Seed(sqlText string, t *output.Table) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tables[sqlText] = t
}

// SeedColumns registers the schema served by Columns.
func (f *Fake) SeedColumns(names ...string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, n := range names {
		f.cols[strings.ToLower(n)] = true
	}
}

// QueriesMade returns the number of queries received so far.
func (f *Fake) QueriesMade() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.log)
}

// Queries returns the recorded queries.
func (f *Fake) Queries() []FakeQuery {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]FakeQuery(nil), f.log...)
}

// Query records the call and returns a copy of the seeded table, or an
// empty table when nothing is seeded for the statement.
func (f *Fake) Query(sqlText string, args ...interface{}) (*output.Table, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.log = append(f.log, FakeQuery{SQL: sqlText, Args: append([]interface{}(nil), args...)})

	if t, ok := f.tables[sqlText]; ok {
		return t.Clone(), nil
	}
	return &output.Table{}, nil
}

// Columns returns the seeded schema.
func (f *Fake) Columns(string) (map[string]bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	cols := make(map[string]bool, len(f.cols))
	for k, v := range f.cols {
		cols[k] = v
	}
	return cols, nil
}
