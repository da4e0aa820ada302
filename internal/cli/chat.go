// chat.go - Interactive chat REPL for the premia CLI.
//
// Handles "premia chat": a line-based conversation with the assistant
// for terminals where the full TUI is unwanted. Input history persists
// across sessions in ~/.premia/history.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	chatctl "github.com/premialabs/premia-tui/internal/chat"
	"github.com/premialabs/premia-tui/internal/config"
)

// =============================================================================
// CHAT REPL
// =============================================================================

// chatREPL wraps liner with history persistence.
type chatREPL struct {
	line        *liner.State
	historyFile string
}

// newChatREPL creates the REPL and loads prior history.
func newChatREPL() *chatREPL {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)

	historyFile, err := config.HistoryPath()
	if err != nil {
		historyFile = ""
	}

	repl := &chatREPL{
		line:        line,
		historyFile: historyFile,
	}
	repl.loadHistory()
	return repl
}

// loadHistory loads input history from file.
func (r *chatREPL) loadHistory() {
	if r.historyFile == "" {
		return
	}
	if f, err := os.Open(r.historyFile); err == nil {
		r.line.ReadHistory(f)
		f.Close()
	}
}

// close saves history and releases the terminal.
func (r *chatREPL) close() {
	if r.historyFile != "" {
		if err := os.MkdirAll(filepath.Dir(r.historyFile), 0700); err == nil {
			if f, err := os.Create(r.historyFile); err == nil {
				r.line.WriteHistory(f)
				f.Close()
			}
		}
	}
	r.line.Close()
}

// readInput reads one line, recording non-empty input in history.
func (r *chatREPL) readInput(prompt string) (string, error) {
	input, err := r.line.Prompt(prompt)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(input) != "" {
		r.line.AppendHistory(input)
	}
	return input, nil
}

// =============================================================================
// CHAT COMMAND
// =============================================================================

// HandleChat implements "premia chat".
func HandleChat(args []string) int {
	if !IsTTY() {
		fmt.Fprintln(os.Stderr, "premia chat requires an interactive terminal")
		return 1
	}

	cfg := loadConfig()
	client := newClient(cfg)
	session := chatctl.NewSession()

	repl := newChatREPL()
	defer repl.close()

	// The session opens with the assistant greeting.
	displayAnswer(session.LastMessage().Text)
	fmt.Println("Type your question, or /quit to exit.")

	for {
		input, err := repl.readInput("> ")
		if err != nil {
			// Ctrl+C or Ctrl+D ends the session.
			fmt.Println()
			return 0
		}

		switch strings.TrimSpace(input) {
		case "/quit", "/exit", "/q":
			return 0
		}

		query, ok := session.Submit(input)
		if !ok {
			continue
		}

		answer, err := client.AskChatbot(context.Background(), query)
		if err != nil {
			session.Fail()
		} else {
			session.Resolve(answer)
		}
		displayAnswer(session.LastMessage().Text)
	}
}
