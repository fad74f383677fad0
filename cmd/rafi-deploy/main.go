// Package main is the entry point for the rafi-deploy CLI.
//
// rafi-deploy provisions and manages per-client deployments of the Rafi
// personal assistant: it acquires a Twilio phone number, creates a
// Supabase project, starts the assistant container on the operations
// host, and emails the client a Google authorization link. Failed
// deployments roll back the resources they created.
//
// Commands: init, deploy, stop, restart, health, logs, teardown.
//
// For detailed usage information, run:
//
//	rafi-deploy --help
package main

import (
	"fmt"
	"os"

	"github.com/rafi-ai/rafi-deploy/cmd/rafi-deploy/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
