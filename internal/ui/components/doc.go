// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package components provides shared UI components for the premia TUI.

# Spinner (spinner.go)

An ASCII-safe loading spinner wrapping bubbles/spinner, shown while a
chatbot or estimation request is in flight. Start returns the tick
command driving the animation; Stop freezes it without leaking ticks.

# ErrorBox (errorbox.go)

A dismissible error panel. The estimator shows service error details in
it; dismissing is idempotent and showing a new error replaces the old.
*/
package components
