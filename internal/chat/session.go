// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat implements the chat session state machine.
package chat

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/premialabs/premia-tui/internal/model"
)

// Greeting is the seeded bot message shown before the user says anything.
const Greeting = "Hello! I'm your insurance assistant. Ask me anything about health insurance terms, policies, or laws in India."

// FallbackAnswer is appended as a bot message when the transport call fails.
// Failures become part of the conversation rather than a separate error state.
const FallbackAnswer = "I'm sorry, I encountered an error while processing your question. Please try again."

// =============================================================================
// SESSION TYPE
// =============================================================================

// Session owns the ordered message log and the single-flight guard for the
// assistant conversation. It performs no I/O: Submit hands the query text to
// the caller, who runs the transport call and reports back through Resolve
// or Fail.
//
// The message log is append-only. Pending is true exactly between a user
// message being appended and its matching bot (or fallback) message being
// appended; at most one request is in flight at a time.
type Session struct {
	// ID identifies this session for rendering/export purposes only.
	ID string

	// Messages is the append-only conversation log in display order.
	Messages []model.ChatMessage

	// Pending is the single-flight guard: true while a chatbot request
	// is outstanding.
	Pending bool

	nextID int
}

// NewSession creates a session seeded with the assistant greeting.
func NewSession() *Session {
	s := &Session{
		ID: uuid.NewString(),
	}
	s.append(model.SenderBot, Greeting)
	return s
}

// =============================================================================
// TRANSITIONS
// =============================================================================

// Submit records the user's message and arms the single-flight guard.
// Returns the query text to send and ok=true when a request should be
// issued. Empty (after trimming) input and re-entrant calls while Pending
// are silent no-ops.
//
// The user message is appended synchronously, before any network activity,
// so it is always visible ahead of the matching bot message.
func (s *Session) Submit(text string) (query string, ok bool) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" || s.Pending {
		return "", false
	}

	s.append(model.SenderUser, trimmed)
	s.Pending = true
	return text, true
}

// Resolve appends the service's answer as a bot message and releases the
// single-flight guard.
func (s *Session) Resolve(answer string) {
	s.append(model.SenderBot, answer)
	s.Pending = false
}

// Fail appends the fixed fallback bot message and releases the single-flight
// guard. The underlying transport error is swallowed here: the conversation
// log is the sole channel for chat failures.
func (s *Session) Fail() {
	s.append(model.SenderBot, FallbackAnswer)
	s.Pending = false
}

// =============================================================================
// ACCESSORS
// =============================================================================

// LastMessage returns the most recent message, or a zero message if the
// log is somehow empty.
func (s *Session) LastMessage() model.ChatMessage {
	if len(s.Messages) == 0 {
		return model.ChatMessage{}
	}
	return s.Messages[len(s.Messages)-1]
}

// MessageCount returns the number of messages in the log.
func (s *Session) MessageCount() int {
	return len(s.Messages)
}

// append adds a message with the next ordinal ID. IDs strictly increase
// with each append; the log is never reordered.
func (s *Session) append(sender model.Sender, text string) {
	s.nextID++
	s.Messages = append(s.Messages, model.ChatMessage{
		ID:        s.nextID,
		Text:      text,
		Sender:    sender,
		CreatedAt: time.Now(),
	})
}
