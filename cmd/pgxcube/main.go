// Package main provides the pgxcube command-line tool.
package main

import (
	"os"

	"github.com/leapstack-labs/pgxcube/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
