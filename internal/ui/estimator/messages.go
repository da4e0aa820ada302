// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package estimator provides the premium estimation panel for the TUI.
//
// This file defines the Bubble Tea message types used by the panel.
package estimator

import "github.com/premialabs/premia-tui/internal/model"

// PredictionMsg delivers the outcome of an estimate request.
type PredictionMsg struct {
	Prediction *model.Prediction
	Err        error
}

// RecommendationsMsg delivers the outcome of a recommendations request.
type RecommendationsMsg struct {
	Text string
	Err  error
}
