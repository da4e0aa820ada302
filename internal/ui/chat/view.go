// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/premialabs/premia-tui/internal/model"
)

// =============================================================================
// RENDERING
// =============================================================================

// View renders the chat panel: message log, spinner line, input row.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	var b strings.Builder
	b.WriteString(m.viewport.View())
	b.WriteString("\n")

	if m.spinner.Active() {
		b.WriteString(m.spinner.View(m.theme))
		b.WriteString("\n")
	}

	prompt := m.theme.InputPrompt.Render("> ")
	b.WriteString(m.theme.InputContainer.Render(prompt + m.input.View()))

	return b.String()
}

// refreshViewport re-renders the message log and scrolls to the bottom.
func (m *Model) refreshViewport() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.renderMessages())
	m.viewport.GotoBottom()
}

// renderMessages renders every session message as a styled bubble.
func (m *Model) renderMessages() string {
	var blocks []string
	for _, msg := range m.session.Messages {
		blocks = append(blocks, m.renderMessage(msg))
	}
	return strings.Join(blocks, "\n\n")
}

// renderMessage renders one message bubble, right-aligned for the user
// and left-aligned for the assistant.
func (m *Model) renderMessage(msg model.ChatMessage) string {
	maxWidth := m.theme.BubbleWidth()

	style := m.theme.AssistantBubble
	if msg.IsUser() {
		style = m.theme.UserBubble
	}
	// Width wraps long messages; short ones keep their natural width.
	if lipgloss.Width(msg.Text) > maxWidth {
		style = style.Width(maxWidth)
	}
	bubble := style.Render(msg.Text)

	if m.showTimestamps {
		stamp := m.theme.Timestamp.Render(msg.Sender.DisplayName() + " " + msg.FormatTime())
		bubble = lipgloss.JoinVertical(lipgloss.Left, bubble, stamp)
	}

	if msg.IsUser() && m.width > 0 {
		return lipgloss.PlaceHorizontal(m.width, lipgloss.Right, bubble)
	}
	return bubble
}
