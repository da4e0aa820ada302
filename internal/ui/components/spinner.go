// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides UI components for the premia TUI.
package components

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/premialabs/premia-tui/internal/ui/styles"
)

// =============================================================================
// SPINNER MODEL
// =============================================================================

// Spinner is a loading spinner shown while a request is in flight.
type Spinner struct {
	spinner spinner.Model

	message   string
	startTime time.Time
	showTimer bool

	isActive bool
}

// NewSpinner creates a new spinner with ASCII-compatible frames.
func NewSpinner(theme *styles.Theme) Spinner {
	s := spinner.New()
	s.Spinner = spinner.Spinner{
		Frames: []string{"|", "/", "-", "\\"},
		FPS:    time.Second / 10,
	}
	s.Style = theme.Spinner

	return Spinner{
		spinner:   s,
		message:   "Loading",
		showTimer: true,
	}
}

// =============================================================================
// STATE CONTROL
// =============================================================================

// Start activates the spinner with a message and returns the tick command
// that drives the animation.
func (s *Spinner) Start(message string) tea.Cmd {
	s.message = message
	s.startTime = time.Now()
	s.isActive = true
	return s.spinner.Tick
}

// Stop deactivates the spinner.
func (s *Spinner) Stop() {
	s.isActive = false
}

// Active reports whether the spinner is running.
func (s *Spinner) Active() bool {
	return s.isActive
}

// Update advances the animation. Tick messages are dropped when inactive
// so a stopped spinner stops scheduling frames.
func (s *Spinner) Update(msg tea.Msg) tea.Cmd {
	if !s.isActive {
		return nil
	}
	if _, ok := msg.(spinner.TickMsg); !ok {
		return nil
	}
	var cmd tea.Cmd
	s.spinner, cmd = s.spinner.Update(msg)
	return cmd
}

// =============================================================================
// RENDERING
// =============================================================================

// View renders the spinner line, or an empty string when inactive.
func (s *Spinner) View(theme *styles.Theme) string {
	if !s.isActive {
		return ""
	}

	line := s.spinner.View() + " " + theme.ThinkingText.Render(s.message)
	if s.showTimer {
		elapsed := time.Since(s.startTime).Round(time.Second)
		if elapsed >= time.Second {
			line += " " + theme.Timestamp.Render("("+elapsed.String()+")")
		}
	}
	return line
}
