// Package main is the entry point for the composekit CLI.
//
// The binary exposes docker compose lifecycle and port-resolution
// operations as subcommands for test automation. All functionality is
// delegated to the internal/cli package, which defines cobra commands
// on top of the compose library package.
package main

import (
	"github.com/mmr-tortoise/composekit/internal/cli"
)

// version, commit, and date are set at build time via ldflags.
// During development they default to "dev", "none", and "unknown".
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cli.Version = version
	cli.Commit = commit
	cli.Date = date

	rootCmd := cli.NewRootCommand()
	cli.Execute(rootCmd)
}
