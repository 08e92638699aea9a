package udf

import (
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/itusdata/valuations-cli-go/internal/output"
)

// logged wraps a public operation with its call-outcome record: function
// name, positional arguments, elapsed time and status. Errors are recorded
// and returned unchanged; the wrapper never swallows them.
func logged(name string, args []string, fn func() (*output.Table, error)) (*output.Table, error) {
	start := time.Now()
	table, err := fn()

	evt := log.Info()
	status := "SUCCESS"
	if err != nil {
		evt = log.Error().Str("error", err.Error())
		status = "FAILED"
	}
	evt.Str("fn", name).
		Str("params", strings.Join(args, ", ")).
		Float64("duration_ms", float64(time.Since(start).Microseconds())/1000.0).
		Str("status", status).
		Msg("call completed")

	return table, err
}
