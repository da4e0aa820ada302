// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package api provides the HTTP client for the insurance assistant service.
//
// The client is a thin request/response mapping over three JSON endpoints:
//
//   - POST /chatbot            {query} -> {answer}
//   - POST /predict-insurance  {age,sex,bmi,children,smoker,region} -> {estimated_price, ...}
//   - POST /get-recommendations {price} -> {recommendations}
//
// Each operation is a single round trip with no retry and no cancellation
// beyond the caller's context. Failures surface as *ClientError; when the
// service reported a structured {"detail": "..."} message, ErrorDetail
// recovers it for user-facing display.
//
// # Usage
//
//	client := api.NewClientWithConfig(&api.ClientConfig{BaseURL: cfg.API.BaseURL})
//	pred, err := client.PredictPremium(ctx, model.DefaultProfile())
//	if err != nil {
//	    msg := api.ErrorDetail(err) // "" when the service gave no detail
//	}
package api
