// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package cli implements the non-TUI command surface of premia.

Commands:

	ask       one question, one rendered answer (ask.go)
	chat      line-based REPL with persistent history (chat.go)
	estimate  one-shot premium estimate from flags (estimate.go)
	status    service health probe (status.go)
	version   print the release version (cli.go)
	help      usage text (cli.go)

All commands share the ArgParser (args.go) and the terminal helpers
(terminal.go). Each Handle* function returns a process exit code; main
passes it to os.Exit.

The chat and estimate commands drive the same chat.Session and
estimate.Workflow state machines as the TUI panels, so behavior (exact
greeting, fallback apology, error detail preference, field defaults)
matches the interactive application.
*/
package cli
