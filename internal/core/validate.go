package core

import (
	"fmt"
	"strconv"
	"strings"
)

// MissingInputError reports a required argument that was absent or blank.
type MissingInputError struct {
	Field string
}

func (e *MissingInputError) Error() string {
	return fmt.Sprintf("missing required input: %s", e.Field)
}

// Input is one named argument to validate.
type Input struct {
	Name  string
	Value string
}

// ValidateInputs fails on the first input whose value is empty after
// trimming whitespace. Runs before any statement text is built.
func ValidateInputs(inputs ...Input) error {
	for _, in := range inputs {
		if strings.TrimSpace(in.Value) == "" {
			return &MissingInputError{Field: in.Name}
		}
	}
	return nil
}

// ParseAccordCode converts a company identifier as handed over by the host.
// Spreadsheets pass numbers through as floats, so "1001.0" is accepted
// alongside "1001".
func ParseAccordCode(value string) (int64, error) {
	s := strings.TrimSpace(value)
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid accord code '%s'", s)
	}
	return int64(f), nil
}
