// Package udf implements the spreadsheet-facing query functions.
//
// Each public operation validates its inputs, normalizes date arguments,
// builds a statement with the configured table name and the requested field
// interpolated, executes through the process-local memo, and shapes the
// rows into a header-plus-rows table. An empty result becomes a single-cell
// message rather than an empty table. Requested field names are checked
// against the table schema before interpolation; identifier, date and
// category values are always bound as parameters.
package udf

import (
	"fmt"
	"strings"

	"github.com/itusdata/valuations-cli-go/internal/cache"
	"github.com/itusdata/valuations-cli-go/internal/config"
	"github.com/itusdata/valuations-cli-go/internal/core"
	"github.com/itusdata/valuations-cli-go/internal/store"
)

// UnknownFieldError reports a requested field that is not a column of the
// configured table.
type UnknownFieldError struct {
	Field string
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("unknown field: %s", e.Field)
}

// Service composes the settings, the query memo and the data file into the
// host-facing operations. Construct once per process.
type Service struct {
	settings config.Settings
	querier  store.Querier
	memo     *cache.Memo
}

// New builds a Service over the given querier. Pass nil to read the data
// file from the configured path.
func New(settings config.Settings, querier store.Querier) *Service {
	if querier == nil {
		querier = store.New(settings.DBPath)
	}
	return &Service{
		settings: settings,
		querier:  querier,
		memo:     cache.NewMemo(querier, core.CacheCapacity),
	}
}

// checkField lower-cases and verifies the requested field against the
// table schema. Field names end up interpolated into statement text, so
// anything outside the schema is rejected here.
func (s *Service) checkField(field string) (string, error) {
	f := strings.ToLower(strings.TrimSpace(field))
	cols, err := s.querier.Columns(s.settings.TableName)
	if err != nil {
		return "", err
	}
	if !cols[f] {
		return "", &UnknownFieldError{Field: strings.TrimSpace(field)}
	}
	return f, nil
}

// displayDate rewrites a stored date cell into the configured display form.
func (s *Service) displayDate(v interface{}) interface{} {
	if str, ok := v.(string); ok {
		return core.ToDisplayForm(str, s.settings.DateFormat)
	}
	return v
}

// CacheStats exposes the memo counters.
func (s *Service) CacheStats() cache.Stats {
	return s.memo.Stats()
}
