// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the assistant chat panel for the TUI.
//
// This file defines the Bubble Tea message types used by the panel.
// All message types follow Bubble Tea conventions and are immutable.
package chat

// AnswerMsg delivers the outcome of a chatbot request.
type AnswerMsg struct {
	// Answer is the assistant's reply on success.
	Answer string
	// Err is non-nil when the request failed; the session then records
	// the fallback apology instead of an answer.
	Err error
}
