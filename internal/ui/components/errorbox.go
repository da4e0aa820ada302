// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/premialabs/premia-tui/internal/ui/styles"
)

// =============================================================================
// ERROR BOX MODEL
// =============================================================================

// ErrorBox is a styled, dismissible error panel.
type ErrorBox struct {
	title   string
	message string
	visible bool
}

// NewErrorBox creates a hidden error box.
func NewErrorBox() ErrorBox {
	return ErrorBox{title: "Error"}
}

// Show displays the box with a message. Showing again replaces the
// previous message.
func (e *ErrorBox) Show(message string) {
	e.message = message
	e.visible = message != ""
}

// ShowTitled displays the box with a custom title.
func (e *ErrorBox) ShowTitled(title, message string) {
	e.title = title
	e.Show(message)
}

// Dismiss hides the box. Dismissing an already hidden box is a no-op.
func (e *ErrorBox) Dismiss() {
	e.visible = false
	e.message = ""
}

// Visible reports whether the box is showing.
func (e *ErrorBox) Visible() bool {
	return e.visible
}

// Message returns the current message, empty when hidden.
func (e *ErrorBox) Message() string {
	if !e.visible {
		return ""
	}
	return e.message
}

// =============================================================================
// RENDERING
// =============================================================================

// View renders the error box, or an empty string when hidden.
func (e *ErrorBox) View(theme *styles.Theme) string {
	if !e.visible {
		return ""
	}

	var b strings.Builder
	b.WriteString(theme.ErrorTitle.Render(e.title))
	b.WriteString("\n")
	b.WriteString(theme.ErrorMessage.Render(e.message))
	return theme.ErrorBox.Render(b.String())
}
