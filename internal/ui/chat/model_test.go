// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/premialabs/premia-tui/internal/api"
	chatctl "github.com/premialabs/premia-tui/internal/chat"
	"github.com/premialabs/premia-tui/internal/ui/styles"
)

func newTestModel() Model {
	m := New(api.NewClient(), styles.NewTheme(), false)
	m, _ = m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return m
}

func typeText(m Model, text string) Model {
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
	return m
}

func pressEnter(m Model) (Model, tea.Cmd) {
	return m.Update(tea.KeyMsg{Type: tea.KeyEnter})
}

// =============================================================================
// SUBMISSION TESTS
// =============================================================================

func TestSubmit_AppendsUserMessageAndArmsGuard(t *testing.T) {
	m := newTestModel()
	m = typeText(m, "what is a deductible?")

	m, cmd := pressEnter(m)

	if cmd == nil {
		t.Fatal("submit should issue a request command")
	}
	if !m.Pending() {
		t.Error("session should be pending after submit")
	}
	if got := m.Session().MessageCount(); got != 2 {
		t.Fatalf("message count = %d, want 2 (greeting + user)", got)
	}
	last := m.Session().LastMessage()
	if !last.IsUser() || last.Text != "what is a deductible?" {
		t.Errorf("last message = %+v, want the user's question", last)
	}
	if m.input.Value() != "" {
		t.Error("input should clear after submit")
	}
}

func TestSubmit_EmptyInputIsNoOp(t *testing.T) {
	m := newTestModel()

	m, cmd := pressEnter(m)

	if cmd != nil {
		t.Error("empty submit should not issue a command")
	}
	if m.Pending() {
		t.Error("empty submit should not arm the guard")
	}
	if got := m.Session().MessageCount(); got != 1 {
		t.Errorf("message count = %d, want 1 (greeting only)", got)
	}
}

func TestSubmit_IgnoredWhilePending(t *testing.T) {
	m := newTestModel()
	m = typeText(m, "first")
	m, _ = pressEnter(m)

	m = typeText(m, "second")
	m, cmd := pressEnter(m)

	if cmd != nil {
		t.Error("submit while pending should not issue a command")
	}
	if got := m.Session().MessageCount(); got != 2 {
		t.Errorf("message count = %d, want 2", got)
	}
}

// =============================================================================
// ANSWER HANDLING TESTS
// =============================================================================

func TestAnswerMsg_ResolvesSession(t *testing.T) {
	m := newTestModel()
	m = typeText(m, "what is coinsurance?")
	m, _ = pressEnter(m)

	m, _ = m.Update(AnswerMsg{Answer: "Coinsurance is your share of costs."})

	if m.Pending() {
		t.Error("answer should clear the pending guard")
	}
	last := m.Session().LastMessage()
	if last.IsUser() || last.Text != "Coinsurance is your share of costs." {
		t.Errorf("last message = %+v, want the assistant answer", last)
	}
}

func TestAnswerMsg_ErrorAppendsFallback(t *testing.T) {
	m := newTestModel()
	m = typeText(m, "anything")
	m, _ = pressEnter(m)

	m, _ = m.Update(AnswerMsg{Err: errors.New("connection refused")})

	if m.Pending() {
		t.Error("failure should clear the pending guard")
	}
	last := m.Session().LastMessage()
	if last.Text != chatctl.FallbackAnswer {
		t.Errorf("last message = %q, want the fallback apology", last.Text)
	}
}

// =============================================================================
// RENDERING TESTS
// =============================================================================

func TestView_ShowsGreeting(t *testing.T) {
	m := newTestModel()

	view := m.View()
	if view == "" || view == "Initializing..." {
		t.Fatalf("sized panel should render the log, got %q", view)
	}
}
