// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for chat messages and
// insurance profiles.
//
// This package defines the core domain types shared by the chat session,
// the estimation workflow, and the API client:
//
//   - ChatMessage: Single message in the assistant conversation
//   - Sender: Message sender enumeration (user, bot)
//   - ProfileDraft: Demographic/health profile submitted for estimation
//   - Prediction: Premium estimate returned by the service
//   - Recommendation: Plan recommendation text returned by the service
//
// # Usage
//
// Build a profile and inspect a prediction:
//
//	draft := model.DefaultProfile()
//	draft.Age = 42
//	pred := model.Prediction{EstimatedPrice: 15234.5}
//	fmt.Println(pred.EstimatedPrice)
package model
