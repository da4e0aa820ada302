// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for chat messages and
// insurance profiles.
package model

import "time"

// =============================================================================
// SENDER TYPE
// =============================================================================

// Sender identifies who produced a chat message.
type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

// String returns the string representation of the sender.
func (s Sender) String() string {
	return string(s)
}

// DisplayName returns a human-readable name for the sender.
func (s Sender) DisplayName() string {
	switch s {
	case SenderUser:
		return "You"
	case SenderBot:
		return "Assistant"
	default:
		return string(s)
	}
}

// =============================================================================
// CHAT MESSAGE TYPE
// =============================================================================

// ChatMessage represents a single message in the assistant conversation.
// Messages are immutable once created; the ordinal ID is assigned by the
// owning session and exists for rendering/keying only.
type ChatMessage struct {
	ID        int       `json:"id"`
	Text      string    `json:"text"`
	Sender    Sender    `json:"sender"`
	CreatedAt time.Time `json:"created_at"`
}

// IsUser returns true if the message was sent by the user.
func (m ChatMessage) IsUser() bool {
	return m.Sender == SenderUser
}

// FormatTime returns the creation time as HH:MM for display.
func (m ChatMessage) FormatTime() string {
	return m.CreatedAt.Format("15:04")
}

// Preview returns a truncated preview of the message text.
// Uses rune-based truncation to handle Unicode correctly.
func (m ChatMessage) Preview(maxLen int) string {
	runes := []rune(m.Text)
	if len(runes) <= maxLen {
		return m.Text
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}
