// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package estimator provides the premium estimation panel for the premia TUI.

The panel is a thin Bubble Tea wrapper over estimate.Workflow. The form
edits one profile field at a time: numeric fields (age, BMI, children)
through a text input, enum fields (sex, smoker, region) by cycling with
the arrow keys. Enter submits the draft for estimation, Ctrl+R fetches
plan recommendations for the current estimate, and Esc clears results.

Both calls run in tea.Cmds and come back as PredictionMsg or
RecommendationsMsg; the workflow's single-flight guards make repeated
submissions while a call is in flight no-ops. Service error details are
surfaced in a dismissible error box, falling back to a generic message
when the service gives none.
*/
package estimator
