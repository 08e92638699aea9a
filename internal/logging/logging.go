// Package logging configures the rotating call/query log.
package logging

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Rotation policy for the log file. lumberjack counts megabytes, so the
// 1,000,000-byte cap rounds to 1 MB.
const (
	maxSizeMB  = 1
	maxBackups = 3
)

// Setup points the global logger at a size-rotated file. With verbose set,
// records are mirrored to stderr in console form.
func Setup(path string, verbose bool) {
	fileWriter := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxSizeMB,
		MaxBackups: maxBackups,
	}

	var w io.Writer = fileWriter
	if verbose {
		console := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
		w = zerolog.MultiLevelWriter(fileWriter, console)
	}

	zerolog.TimeFieldFormat = "2006-01-02 15:04:05"
	log.Logger = zerolog.New(w).With().Timestamp().Logger()
}
