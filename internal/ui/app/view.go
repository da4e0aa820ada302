// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// =============================================================================
// RENDERING
// =============================================================================

// View renders the header with tabs, the active panel, and a status bar.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.renderTabs())
	b.WriteString("\n")

	if m.active == TabAssistant {
		b.WriteString(m.chat.View())
	} else {
		b.WriteString(m.estimator.View())
	}

	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())
	return b.String()
}

// renderTabs renders the title and both tab labels.
func (m Model) renderTabs() string {
	title := m.theme.HeaderTitle.Render("premia")

	var tabs []string
	for _, tab := range []Tab{TabEstimator, TabAssistant} {
		style := m.theme.TabInactive
		if tab == m.active {
			style = m.theme.TabActive
		}
		tabs = append(tabs, style.Render(tab.Title()))
	}

	return lipgloss.JoinHorizontal(lipgloss.Bottom,
		title, "  ", strings.Join(tabs, " "))
}

// renderStatusBar renders the global key bindings.
func (m Model) renderStatusBar() string {
	parts := []string{
		m.theme.ShortcutKey.Render("ctrl+t") + " " + m.theme.ShortcutDesc.Render("switch tab"),
		m.theme.ShortcutKey.Render("ctrl+c") + " " + m.theme.ShortcutDesc.Render("quit"),
	}
	return m.theme.StatusBar.Render(strings.Join(parts, "  "))
}
