// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package estimate implements the premium estimation workflow state machine.
package estimate

import (
	"strconv"
	"strings"

	"github.com/premialabs/premia-tui/internal/api"
	"github.com/premialabs/premia-tui/internal/model"
)

// Generic user-facing messages substituted when the service reports no
// structured detail for a failure.
const (
	GenericPredictError   = "An error occurred while predicting insurance cost"
	GenericRecommendError = "An error occurred while getting recommendations"
)

// Profile field names accepted by SetField.
const (
	FieldAge      = "age"
	FieldSex      = "sex"
	FieldBMI      = "bmi"
	FieldChildren = "children"
	FieldSmoker   = "smoker"
	FieldRegion   = "region"
)

// =============================================================================
// WORKFLOW TYPE
// =============================================================================

// Workflow owns the estimator state: the editable profile draft, the
// current prediction and recommendation results, the two independent
// single-flight guards, and the last error message.
//
// Like chat.Session it performs no I/O. SubmitEstimate and
// RequestRecommendations return the payload for the transport call and
// whether one should be issued; the caller reports the outcome through the
// Complete*/Fail* methods.
//
// Invariant: a Recommendation can only exist while its originating
// Prediction exists. SubmitEstimate clears both before issuing a new call,
// so a stale recommendation can never outlive its price.
type Workflow struct {
	// Draft is the profile being edited. Always fully populated.
	Draft model.ProfileDraft

	// Predicting is the single-flight guard for the estimate call.
	Predicting bool

	// Prediction is the current estimate, or nil when absent.
	Prediction *model.Prediction

	// Recommending is the single-flight guard for the recommendations call.
	Recommending bool

	// Recommendation is the current recommendation, or nil when absent.
	Recommendation *model.Recommendation

	// LastError is the user-facing message from the most recent failure,
	// or "" when the last operation succeeded.
	LastError string
}

// NewWorkflow creates a workflow with the default profile draft.
func NewWorkflow() *Workflow {
	return &Workflow{
		Draft: model.DefaultProfile(),
	}
}

// =============================================================================
// FIELD EDITING
// =============================================================================

// SetField mutates exactly one field of the profile draft from raw input.
// Numeric fields parse as floats; a failed parse stores 0 rather than
// leaving the field undefined or raising. Unknown names and invalid enum
// values are ignored. No other workflow state is touched.
func (w *Workflow) SetField(name, raw string) {
	switch name {
	case FieldAge:
		w.Draft.Age = int(parseNumber(raw))
	case FieldBMI:
		w.Draft.BMI = parseNumber(raw)
	case FieldChildren:
		w.Draft.Children = int(parseNumber(raw))
	case FieldSex:
		switch model.Sex(raw) {
		case model.SexMale, model.SexFemale:
			w.Draft.Sex = model.Sex(raw)
		}
	case FieldSmoker:
		switch model.Smoker(raw) {
		case model.SmokerYes, model.SmokerNo:
			w.Draft.Smoker = model.Smoker(raw)
		}
	case FieldRegion:
		for _, r := range model.Regions {
			if model.Region(raw) == r {
				w.Draft.Region = r
				return
			}
		}
	}
}

// parseNumber parses raw as a float, returning 0 on failure.
func parseNumber(raw string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0
	}
	return v
}

// =============================================================================
// ESTIMATE TRANSITIONS
// =============================================================================

// SubmitEstimate starts a prediction request. Returns a snapshot of the
// current draft and ok=true when a call should be issued; a re-entrant
// call while Predicting is a no-op.
//
// Any prior prediction and recommendation are invalidated immediately,
// before the new result arrives, along with the last error.
func (w *Workflow) SubmitEstimate() (profile model.ProfileDraft, ok bool) {
	if w.Predicting {
		return model.ProfileDraft{}, false
	}

	w.Predicting = true
	w.LastError = ""
	w.Prediction = nil
	w.Recommendation = nil
	return w.Draft, true
}

// CompleteEstimate records a successful prediction.
func (w *Workflow) CompleteEstimate(pred *model.Prediction) {
	w.Prediction = pred
	w.Predicting = false
}

// FailEstimate records a failed prediction, preferring the service's
// detail message over the generic one.
func (w *Workflow) FailEstimate(err error) {
	w.LastError = errorMessage(err, GenericPredictError)
	w.Predicting = false
}

// =============================================================================
// RECOMMENDATION TRANSITIONS
// =============================================================================

// RequestRecommendations starts a recommendations request keyed to the
// current prediction. Returns the predicted price and ok=true when a call
// should be issued. A missing prediction or a re-entrant call while
// Recommending is a no-op.
func (w *Workflow) RequestRecommendations() (price float64, ok bool) {
	if w.Prediction == nil || w.Recommending {
		return 0, false
	}

	w.Recommending = true
	w.LastError = ""
	return w.Prediction.EstimatedPrice, true
}

// CompleteRecommendations records a successful recommendations result.
func (w *Workflow) CompleteRecommendations(text string) {
	w.Recommendation = &model.Recommendation{Text: text}
	w.Recommending = false
}

// FailRecommendations records a failed recommendations attempt. The
// still-valid prediction is untouched.
func (w *Workflow) FailRecommendations(err error) {
	w.LastError = errorMessage(err, GenericRecommendError)
	w.Recommending = false
}

// Dismiss discards the current recommendation. Idempotent; Prediction and
// LastError are untouched.
func (w *Workflow) Dismiss() {
	w.Recommendation = nil
}

// =============================================================================
// HELPERS
// =============================================================================

// Busy reports whether either workflow call is in flight.
func (w *Workflow) Busy() bool {
	return w.Predicting || w.Recommending
}

// errorMessage prefers the service-reported detail over the generic
// fallback.
func errorMessage(err error, generic string) string {
	if detail := api.ErrorDetail(err); detail != "" {
		return detail
	}
	return generic
}
