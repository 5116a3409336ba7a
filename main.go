// Copyright (c) 2026 Transferlist Team
// Transferlist - two-pane item transfer list
// This source code is licensed under the MIT license found in the LICENSE file.

// Command-line entrypoint for Transferlist.
//
// Usage:
//
//	go run . [flags]
//	./transferlist [flags]
//
// This launches the Transferlist CLI. See --help for options.
package main

import (
	"os"

	"github.com/toeirei/transferlist/ui/cli"
)

func main() {
	// cobra already printed the error
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
