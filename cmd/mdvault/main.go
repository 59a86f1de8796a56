// Package main is the entry point for the mdvault CLI tool.
package main

import (
	"os"

	"github.com/blanzp/mdvault/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
