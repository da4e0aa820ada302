// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package chat provides the assistant chat panel for the premia TUI.

The panel is a thin Bubble Tea wrapper over chat.Session: Enter hands the
typed text to Session.Submit, which appends the user message and arms the
single-flight guard; the transport call runs in a tea.Cmd and comes back
as an AnswerMsg, which resolves or fails the session. While the guard is
armed further submissions are ignored and a spinner runs under the log.

Layout, top to bottom: scrollable message viewport, optional spinner
line, bordered input row.
*/
package chat
