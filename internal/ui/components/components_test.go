// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"testing"

	"github.com/premialabs/premia-tui/internal/ui/styles"
)

// =============================================================================
// SPINNER TESTS
// =============================================================================

func TestSpinner_StartStop(t *testing.T) {
	theme := styles.NewTheme()
	s := NewSpinner(theme)

	if s.Active() {
		t.Error("new spinner should be inactive")
	}

	cmd := s.Start("Thinking")
	if cmd == nil {
		t.Error("Start should return a tick command")
	}
	if !s.Active() {
		t.Error("spinner should be active after Start")
	}
	if !strings.Contains(s.View(theme), "Thinking") {
		t.Errorf("view should include the message: %q", s.View(theme))
	}

	s.Stop()
	if s.Active() {
		t.Error("spinner should be inactive after Stop")
	}
	if s.View(theme) != "" {
		t.Error("stopped spinner should render nothing")
	}
}

func TestSpinner_UpdateWhenStopped(t *testing.T) {
	theme := styles.NewTheme()
	s := NewSpinner(theme)

	if cmd := s.Update(nil); cmd != nil {
		t.Error("stopped spinner should not schedule ticks")
	}
}

// =============================================================================
// ERROR BOX TESTS
// =============================================================================

func TestErrorBox_ShowDismiss(t *testing.T) {
	theme := styles.NewTheme()
	e := NewErrorBox()

	if e.Visible() {
		t.Error("new error box should be hidden")
	}
	if e.View(theme) != "" {
		t.Error("hidden error box should render nothing")
	}

	e.Show("Age must be between 18 and 100")
	if !e.Visible() {
		t.Error("error box should be visible after Show")
	}
	if !strings.Contains(e.View(theme), "Age must be between 18 and 100") {
		t.Error("view should include the message")
	}

	e.Dismiss()
	if e.Visible() || e.Message() != "" {
		t.Error("error box should be hidden after Dismiss")
	}

	// Dismissing again is a no-op.
	e.Dismiss()
	if e.Visible() {
		t.Error("repeated Dismiss should stay hidden")
	}
}

func TestErrorBox_ShowReplaces(t *testing.T) {
	e := NewErrorBox()
	e.Show("first")
	e.Show("second")
	if e.Message() != "second" {
		t.Errorf("Message = %q, want second", e.Message())
	}
}

func TestErrorBox_EmptyMessageStaysHidden(t *testing.T) {
	e := NewErrorBox()
	e.Show("")
	if e.Visible() {
		t.Error("showing an empty message should not display the box")
	}
}
