// Package main provides the entry point for the valuations CLI.
package main

import (
	"github.com/itusdata/valuations-cli-go/internal/cli"
)

func main() {
	cli.Execute()
}
