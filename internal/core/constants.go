// Package core provides shared constants and helpers for the valuations CLI.
package core

// Date layouts
const (
	// StorageDateFmt is the layout dates are stored in, and the default
	// layout they are rendered back with.
	StorageDateFmt = "2006-01-02"
)

// Configuration defaults
const (
	DefaultConfigFile = "config.ini"
	DefaultDBPath     = "valuations.db"
	DefaultTableName  = "valuations"
	DefaultDateFmt    = StorageDateFmt
	DefaultLogPath    = "query_log.txt"
)

// CacheCapacity bounds the query memo to the most recently used statements.
const CacheCapacity = 128

// Version is the current CLI version.
const Version = "0.1.0"
