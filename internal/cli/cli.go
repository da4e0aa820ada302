// cli.go - Shared plumbing for premia CLI commands.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli implements the non-TUI command surface of premia.
package cli

import (
	"fmt"
	"os"

	"github.com/premialabs/premia-tui/internal/api"
	"github.com/premialabs/premia-tui/internal/config"
)

// Version information (set at build time).
var (
	Version   = "1.0.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// =============================================================================
// COMMAND ROUTING
// =============================================================================

// Command identifies a top-level CLI command.
type Command int

const (
	CmdTUI Command = iota
	CmdAsk
	CmdChat
	CmdEstimate
	CmdStatus
	CmdVersion
	CmdHelp
	CmdUnknown
)

// Parse splits os.Args into the command and its arguments. No arguments
// means the TUI.
func Parse() (Command, []string) {
	if len(os.Args) < 2 {
		return CmdTUI, nil
	}

	args := os.Args[2:]
	switch os.Args[1] {
	case "ask":
		return CmdAsk, args
	case "chat":
		return CmdChat, args
	case "estimate":
		return CmdEstimate, args
	case "status":
		return CmdStatus, args
	case "version", "--version", "-v":
		return CmdVersion, args
	case "help", "--help", "-h":
		return CmdHelp, args
	}
	return CmdUnknown, os.Args[1:]
}

// newClient builds the API client from the loaded configuration.
func newClient(cfg *config.Config) *api.Client {
	return api.NewClientWithConfig(&api.ClientConfig{
		BaseURL: cfg.API.BaseURL,
		Timeout: cfg.API.Timeout(),
	})
}

// loadConfig loads the configuration, falling back to defaults with a
// warning when the config file is unusable.
func loadConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v (using defaults)\n", err)
		return config.Default()
	}
	return cfg
}

// printError writes a command error to stderr.
func printError(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
}

// HandleVersion implements "premia version".
func HandleVersion() int {
	fmt.Printf("premia %s (commit %s, built %s)\n", Version, GitCommit, BuildDate)
	return 0
}

// HandleUnknown reports an unrecognized command.
func HandleUnknown(args []string) int {
	if len(args) > 0 {
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", args[0])
	}
	HandleHelp()
	return 1
}

// HandleHelp implements "premia help".
func HandleHelp() int {
	fmt.Print(`premia - health insurance assistant

Usage:
  premia                      Launch the interactive TUI
  premia ask <question>       Ask the assistant a single question
  premia chat                 Start an interactive chat session
  premia estimate [flags]     Estimate an insurance premium
  premia status               Check the assistant service
  premia version              Print the version
  premia help                 Show this help

Estimate flags:
  --age N         Age in years (default 29)
  --sex S         male or female (default male)
  --bmi N         Body mass index (default 26.5)
  --children N    Number of children (default 1)
  --smoker S      yes or no (default no)
  --region R      southeast, southwest, northeast, northwest (default southeast)
  --recommend     Also fetch plan recommendations

Environment:
  PREMIA_API_URL        Override the service URL
  PREMIA_TIMEOUT_SECS   Request timeout in seconds (0 = none)
`)
	return 0
}
