// premia - A terminal client for the health insurance assistant.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/premialabs/premia-tui/internal/cli"
	"github.com/premialabs/premia-tui/internal/config"
	"github.com/premialabs/premia-tui/internal/ui/app"
)

func main() {
	cmd, args := cli.Parse()

	switch cmd {
	case cli.CmdTUI:
		os.Exit(runTUI())
	case cli.CmdAsk:
		os.Exit(cli.HandleAsk(args))
	case cli.CmdChat:
		os.Exit(cli.HandleChat(args))
	case cli.CmdEstimate:
		os.Exit(cli.HandleEstimate(args))
	case cli.CmdStatus:
		os.Exit(cli.HandleStatus())
	case cli.CmdVersion:
		os.Exit(cli.HandleVersion())
	case cli.CmdHelp:
		os.Exit(cli.HandleHelp())
	default:
		os.Exit(cli.HandleUnknown(args))
	}
}

// runTUI launches the full-screen application.
func runTUI() int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v (using defaults)\n", err)
		cfg = config.Default()
	}

	p := tea.NewProgram(app.New(cfg), tea.WithAltScreen())

	// Live-reload transport settings when the config file changes.
	if path, err := config.Path(); err == nil {
		watcher, err := config.NewWatcher(path, 500*time.Millisecond, func(cfg *config.Config, err error) {
			if err == nil {
				p.Send(app.ConfigReloadedMsg{Config: cfg})
			}
		})
		if err == nil && watcher.Watch() == nil {
			defer watcher.Close()
		}
	}

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	return 0
}
