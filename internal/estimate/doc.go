// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package estimate implements the premium estimation workflow state machine.
//
// The workflow sequences two calls against the estimation service:
//
//	Idle --SubmitEstimate--> Predicting
//	Predicting --CompleteEstimate--> Estimated
//	Predicting --FailEstimate--> Idle (LastError set)
//	Estimated --SubmitEstimate--> Predicting (prediction+recommendation cleared first)
//	Estimated --RequestRecommendations--> Recommending
//	Recommending --CompleteRecommendations--> Estimated with recommendation
//	Recommending --FailRecommendations--> Estimated (LastError set)
//	... --Dismiss--> recommendation cleared
//
// There are no terminal states; the machine is re-entered indefinitely by
// the UI control loop. The Predicting/Recommending booleans are per-call
// single-flight guards; the chat session's traffic is fully independent.
package estimate
