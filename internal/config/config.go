// Package config loads the valuations settings file.
package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"

	"github.com/itusdata/valuations-cli-go/internal/core"
)

// Settings holds the scalar settings the process reads once at startup.
// Immutable for the process lifetime.
type Settings struct {
	DBPath     string // path to the SQLite data file
	TableName  string // table the query functions read from
	DateFormat string // Go layout used to render dates back to the caller
	LogPath    string // destination of the rotating call/query log
}

// Defaults returns the hard-coded fallback settings.
func Defaults() Settings {
	return Settings{
		DBPath:     core.DefaultDBPath,
		TableName:  core.DefaultTableName,
		DateFormat: core.DefaultDateFmt,
		LogPath:    core.DefaultLogPath,
	}
}

// Load reads the INI settings file at path. A missing file is not an error:
// every key falls back to its hard-coded default.
func Load(path string) (Settings, error) {
	if path == "" {
		path = core.DefaultConfigFile
	}

	s := Defaults()
	if _, err := os.Stat(path); err != nil {
		return s, nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("ini")
	if err := v.ReadInConfig(); err != nil {
		return Settings{}, fmt.Errorf("read settings file %s: %w", path, err)
	}

	if val := v.GetString("database.db_path"); val != "" {
		s.DBPath = val
	}
	if val := v.GetString("database.table_name"); val != "" {
		s.TableName = val
	}
	if val := v.GetString("format.date_format"); val != "" {
		s.DateFormat = val
	}
	if val := v.GetString("log.path"); val != "" {
		s.LogPath = val
	}
	return s, nil
}
