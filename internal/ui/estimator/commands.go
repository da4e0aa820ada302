// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package estimator

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/premialabs/premia-tui/internal/api"
	"github.com/premialabs/premia-tui/internal/model"
)

// predictCmd issues the estimate request off the UI loop.
func predictCmd(client *api.Client, profile model.ProfileDraft) tea.Cmd {
	return func() tea.Msg {
		pred, err := client.PredictPremium(context.Background(), profile)
		if err != nil {
			return PredictionMsg{Err: err}
		}
		return PredictionMsg{Prediction: pred}
	}
}

// recommendCmd issues the recommendations request off the UI loop.
func recommendCmd(client *api.Client, price float64) tea.Cmd {
	return func() tea.Msg {
		text, err := client.GetRecommendations(context.Background(), price)
		if err != nil {
			return RecommendationsMsg{Err: err}
		}
		return RecommendationsMsg{Text: text}
	}
}
