// terminal.go - Terminal detection and handling for the premia CLI.
//
// Provides TTY detection, terminal width lookup, and color control so
// commands behave in interactive terminals, piped output, and CI alike
// (NO_COLOR is respected).
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"os"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// =============================================================================
// TTY DETECTION
// =============================================================================

// IsTTY returns true if stdin is a terminal.
// Use this to determine if interactive prompts are possible.
func IsTTY() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// IsStdoutTTY returns true if stdout is a terminal.
// Use this to determine if colored output should be used.
func IsStdoutTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// =============================================================================
// TERMINAL WIDTH
// =============================================================================

const defaultTerminalWidth = 80

// TerminalWidth returns the current terminal width, or a default when
// stdout is not a terminal.
func TerminalWidth() int {
	if !IsStdoutTTY() {
		return defaultTerminalWidth
	}
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return defaultTerminalWidth
	}
	return width
}

// =============================================================================
// COLOR CONTROL
// =============================================================================

// ColorEnabled reports whether colored output should be produced:
// stdout must be a TTY and NO_COLOR must be unset.
func ColorEnabled() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return IsStdoutTTY() && termenv.ColorProfile() != termenv.Ascii
}
