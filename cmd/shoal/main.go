// Package main is the shoal CLI entry point.
package main

import (
	"os"

	"github.com/coastline-labs/shoal-cli/internal/adapters/driving/cli"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	if err := cli.Execute(version); err != nil {
		os.Exit(1)
	}
}
