// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package api provides the HTTP client for the insurance assistant service.
package api

// =============================================================================
// REQUEST TYPES
// =============================================================================

// ChatbotRequest is the request body for the /chatbot endpoint.
type ChatbotRequest struct {
	Query string `json:"query"`
}

// RecommendationsRequest is the request body for the /get-recommendations
// endpoint. Price is the estimated premium a prior /predict-insurance call
// returned.
type RecommendationsRequest struct {
	Price float64 `json:"price"`
}

// =============================================================================
// RESPONSE TYPES
// =============================================================================

// ChatbotResponse is the response from the /chatbot endpoint.
type ChatbotResponse struct {
	Answer string `json:"answer"`
}

// RecommendationsResponse is the response from the /get-recommendations
// endpoint. Recommendations is free-form text; newlines separate plans.
type RecommendationsResponse struct {
	Recommendations string `json:"recommendations"`
}

// HealthResponse is the response from the service root endpoint.
type HealthResponse struct {
	Message string `json:"message"`
}

// ServiceError is the structured error body the service attaches to
// non-2xx responses.
type ServiceError struct {
	Detail string `json:"detail"`
}
