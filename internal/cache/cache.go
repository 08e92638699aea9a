// Package cache memoizes query results for the process lifetime.
//
// # Overview
//
// Spreadsheet recalculation reissues identical lookups continually, so the
// executor memoizes each result under its exact statement text and bound
// parameter tuple. The memo is bounded to the most recently used statements;
// entries never expire on their own. Staleness after a data-file update is
// resolved by the explicit clear operation, not automatic invalidation.
//
// # Logging
//
// Every Execute call emits a per-query timing record, on hits as well as
// misses, so the log shows the full query stream regardless of where the
// result came from.
package cache

import (
	"container/list"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/itusdata/valuations-cli-go/internal/output"
	"github.com/itusdata/valuations-cli-go/internal/store"
)

// entry is one memoized result.
type entry struct {
	key     string
	table   *output.Table
	element *list.Element
}

// Memo is a bounded most-recently-used memo over a Querier.
type Memo struct {
	querier  store.Querier
	capacity int

	mu      sync.Mutex
	entries map[string]*entry
	lru     *list.List
	hits    int64
	misses  int64
}

// NewMemo creates a memo delegating misses to querier. capacity bounds the
// number of distinct statements retained.
func NewMemo(querier store.Querier, capacity int) *Memo {
	if capacity <= 0 {
		capacity = 128
	}
	return &Memo{
		querier:  querier,
		capacity: capacity,
		entries:  make(map[string]*entry),
		lru:      list.New(),
	}
}

// key renders the statement and its bound parameters into the memo key.
func key(sqlText string, params []interface{}) string {
	parts := make([]string, 0, len(params)+1)
	parts = append(parts, sqlText)
	for _, p := range params {
		parts = append(parts, fmt.Sprintf("%v", p))
	}
	return strings.Join(parts, "\x1f")
}

// Execute returns the memoized table for the statement, querying the data
// file only on a miss. The caller receives a copy it may reshape freely.
func (m *Memo) Execute(sqlText string, params ...interface{}) (*output.Table, error) {
	start := time.Now()
	k := key(sqlText, params)

	m.mu.Lock()
	if e, ok := m.entries[k]; ok {
		m.lru.MoveToFront(e.element)
		m.hits++
		table := e.table.Clone()
		m.mu.Unlock()
		logTiming(start, params, true)
		return table, nil
	}
	m.misses++
	m.mu.Unlock()

	table, err := m.querier.Query(sqlText, params...)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	if e, ok := m.entries[k]; ok {
		e.table = table.Clone()
		m.lru.MoveToFront(e.element)
	} else {
		e := &entry{key: k, table: table.Clone()}
		e.element = m.lru.PushFront(e)
		m.entries[k] = e
		for len(m.entries) > m.capacity {
			m.evictOldest()
		}
	}
	m.mu.Unlock()

	logTiming(start, params, false)
	return table, nil
}

// Clear empties the memo unconditionally and resets the hit counters.
func (m *Memo) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = make(map[string]*entry)
	m.lru = list.New()
	m.hits = 0
	m.misses = 0
}

// Stats holds memo counters.
type Stats struct {
	Hits    int64
	Misses  int64
	Entries int
}

// Stats returns the current counters.
func (m *Memo) Stats() Stats {
	m.mu.Lock()
	defer m.mu.Unlock()
	return Stats{Hits: m.hits, Misses: m.misses, Entries: len(m.entries)}
}

// evictOldest removes the least recently used entry (must hold lock).
func (m *Memo) evictOldest() {
	elem := m.lru.Back()
	if elem == nil {
		return
	}
	e := elem.Value.(*entry)
	delete(m.entries, e.key)
	m.lru.Remove(elem)
}

// logTiming emits the per-query record the log contract requires.
func logTiming(start time.Time, params []interface{}, hit bool) {
	log.Info().
		Float64("duration_ms", float64(time.Since(start).Microseconds())/1000.0).
		Str("params", fmt.Sprintf("%v", params)).
		Bool("cache_hit", hit).
		Msg("SQL executed")
}
