package core

import (
	"strings"
	"time"
)

// ToStorageForm normalizes a spreadsheet date string to the stored
// YYYY-MM-DD form. Input that does not parse is returned trimmed but
// otherwise untouched, leaving the query downstream to decide its fate.
func ToStorageForm(value string) string {
	s := strings.TrimSpace(value)
	t, err := time.Parse(StorageDateFmt, s)
	if err != nil {
		return s
	}
	return t.Format(StorageDateFmt)
}

// ToDisplayForm renders a stored YYYY-MM-DD date with the given display
// layout. Same fallback policy as ToStorageForm.
func ToDisplayForm(value, layout string) string {
	s := strings.TrimSpace(value)
	t, err := time.Parse(StorageDateFmt, s)
	if err != nil {
		return s
	}
	if layout == "" {
		layout = DefaultDateFmt
	}
	return t.Format(layout)
}
