// ask.go - Single question command for the premia CLI.
//
// Handles "premia ask", which sends one question to the assistant and
// prints the answer. Markdown in the answer is rendered when stdout is a
// terminal; piped output stays plain.
//
// Examples:
//   premia ask "What is a deductible?"
//   premia ask What does coinsurance mean
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
)

// =============================================================================
// MARKDOWN RENDERING
// =============================================================================

// markdownRenderer is the glamour renderer for terminal output.
var markdownRenderer *glamour.TermRenderer

func init() {
	var err error
	markdownRenderer, err = glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		// Fall back to plain text if renderer initialization fails
		markdownRenderer = nil
	}
}

// renderMarkdown renders markdown content for terminal display.
// Returns the original content if rendering fails.
func renderMarkdown(content string) string {
	if markdownRenderer == nil {
		return content
	}
	rendered, err := markdownRenderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}

// displayAnswer prints an answer, rendered only when stdout is a TTY so
// piped output is not corrupted.
func displayAnswer(answer string) {
	if IsStdoutTTY() {
		fmt.Print(renderMarkdown(answer))
		return
	}
	fmt.Println(answer)
}

// =============================================================================
// ASK COMMAND
// =============================================================================

// HandleAsk implements "premia ask <question>".
func HandleAsk(args []string) int {
	parser := NewArgParser(args)

	question := strings.TrimSpace(parser.PositionalJoined())
	if question == "" {
		fmt.Println("Usage: premia ask <question>")
		return 1
	}

	cfg := loadConfig()
	client := newClient(cfg)

	answer, err := client.AskChatbot(context.Background(), question)
	if err != nil {
		printError(err)
		return 1
	}

	displayAnswer(answer)
	return 0
}
