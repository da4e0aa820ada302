// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/premialabs/premia-tui/internal/api"
)

// askCmd issues the chatbot request off the UI loop and reports the
// outcome as an AnswerMsg.
func askCmd(client *api.Client, query string) tea.Cmd {
	return func() tea.Msg {
		answer, err := client.AskChatbot(context.Background(), query)
		if err != nil {
			return AnswerMsg{Err: err}
		}
		return AnswerMsg{Answer: answer}
	}
}
