// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/premialabs/premia-tui/internal/config"
)

func newTestApp() Model {
	m := New(config.Default())
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return updated.(Model)
}

// =============================================================================
// TAB SWITCHING TESTS
// =============================================================================

func TestNew_StartsOnEstimator(t *testing.T) {
	m := newTestApp()
	if m.ActiveTab() != TabEstimator {
		t.Errorf("active tab = %v, want estimator", m.ActiveTab())
	}
}

func TestCtrlT_TogglesTabs(t *testing.T) {
	m := newTestApp()

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlT})
	m = updated.(Model)
	if m.ActiveTab() != TabAssistant {
		t.Errorf("active tab = %v, want assistant", m.ActiveTab())
	}

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlT})
	m = updated.(Model)
	if m.ActiveTab() != TabEstimator {
		t.Errorf("active tab = %v, want estimator again", m.ActiveTab())
	}
}

func TestCtrlC_Quits(t *testing.T) {
	m := newTestApp()

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("ctrl+c should return the quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("ctrl+c command should produce tea.QuitMsg")
	}
}

// =============================================================================
// KEY ROUTING TESTS
// =============================================================================

func TestKeys_GoToActivePanelOnly(t *testing.T) {
	m := newTestApp()

	// Enter on the estimator tab starts an estimate, not a chat submit.
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)
	if cmd == nil {
		t.Fatal("enter should reach the estimator")
	}
	if !m.estimator.Workflow().Predicting {
		t.Error("estimator should be predicting")
	}
	if m.chat.Pending() {
		t.Error("chat session should be untouched")
	}
}

func TestConfigReloaded_RetargetsClient(t *testing.T) {
	m := newTestApp()

	cfg := config.Default()
	cfg.API.BaseURL = "http://10.1.2.3:9000"

	updated, _ := m.Update(ConfigReloadedMsg{Config: cfg})
	m = updated.(Model)

	if got := m.client.GetConfig().BaseURL; got != "http://10.1.2.3:9000" {
		t.Errorf("client base URL = %q, want the reloaded value", got)
	}
}

func TestView_ShowsBothTabTitles(t *testing.T) {
	m := newTestApp()

	view := m.View()
	if !strings.Contains(view, "Estimator") || !strings.Contains(view, "Assistant") {
		t.Error("view should render both tab titles")
	}
}
