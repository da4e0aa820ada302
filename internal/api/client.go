// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package api provides the HTTP client for the insurance assistant service.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/premialabs/premia-tui/internal/model"
)

// =============================================================================
// ERROR TYPES
// =============================================================================

// ClientError represents an error from the insurance API client.
type ClientError struct {
	Type    ErrorType
	Message string
	// Detail is the user-facing message reported by the service in the
	// {"detail": "..."} error body, when one was present.
	Detail string
	Cause  error
}

func (e *ClientError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *ClientError) Unwrap() error {
	return e.Cause
}

// ErrorType categorizes client errors for handling.
type ErrorType int

const (
	ErrTypeUnknown ErrorType = iota
	ErrTypeUnreachable
	ErrTypeTimeout
	ErrTypeBadStatus
	ErrTypeInvalidResponse
)

// Sentinel errors for easy checking.
var (
	ErrUnreachable = &ClientError{Type: ErrTypeUnreachable, Message: "insurance service is unreachable"}
	ErrTimeout     = &ClientError{Type: ErrTypeTimeout, Message: "request timed out"}
)

// IsTimeout checks if an error is a timeout error.
func IsTimeout(err error) bool {
	var clientErr *ClientError
	if errors.As(err, &clientErr) {
		return clientErr.Type == ErrTypeTimeout
	}
	return errors.Is(err, ErrTimeout)
}

// IsUnreachable checks if an error indicates the service could not be reached.
func IsUnreachable(err error) bool {
	var clientErr *ClientError
	if errors.As(err, &clientErr) {
		return clientErr.Type == ErrTypeUnreachable
	}
	return errors.Is(err, ErrUnreachable)
}

// ErrorDetail extracts the service-reported detail message from an error.
// Returns "" when the error carries no detail (network failures, malformed
// bodies), in which case callers substitute their own generic message.
func ErrorDetail(err error) string {
	var clientErr *ClientError
	if errors.As(err, &clientErr) {
		return clientErr.Detail
	}
	return ""
}

// =============================================================================
// CLIENT CONFIGURATION
// =============================================================================

// ClientConfig holds configuration options for the insurance API client.
type ClientConfig struct {
	// BaseURL is the service base URL (default: http://127.0.0.1:8000)
	// Note: Uses explicit IPv4 address instead of localhost to avoid IPv6 resolution issues on Windows
	BaseURL string

	// Timeout bounds each request. Zero means no timeout, matching the
	// service's own semantics; set it to avoid a hung call pinning an
	// in-flight flag forever.
	Timeout time.Duration
}

// DefaultConfig returns the default client configuration.
func DefaultConfig() *ClientConfig {
	return &ClientConfig{
		BaseURL: "http://127.0.0.1:8000",
	}
}

// =============================================================================
// CLIENT
// =============================================================================

// Client handles communication with the insurance assistant service.
// It is stateless request/response mapping: retry policy, if any, belongs
// to the caller.
//
// The Client is safe for concurrent use.
//
// Example:
//
//	client := api.NewClient()
//	answer, err := client.AskChatbot(ctx, "What is a deductible?")
type Client struct {
	mu         sync.RWMutex
	config     *ClientConfig
	httpClient *http.Client
}

// NewClient creates a new client with default configuration.
func NewClient() *Client {
	return NewClientWithConfig(DefaultConfig())
}

// NewClientWithConfig creates a new client with custom configuration.
func NewClientWithConfig(config *ClientConfig) *Client {
	if config == nil {
		config = DefaultConfig()
	}
	if config.BaseURL == "" {
		config.BaseURL = "http://127.0.0.1:8000"
	}

	return &Client{
		config: config,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
	}
}

// GetConfig returns the client configuration.
func (c *Client) GetConfig() *ClientConfig {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.config
}

// UpdateConfig swaps the client configuration. In-flight requests keep
// the settings they started with; subsequent requests use the new ones.
// Used when the config file is reloaded.
func (c *Client) UpdateConfig(config *ClientConfig) {
	if config == nil {
		return
	}
	if config.BaseURL == "" {
		config.BaseURL = "http://127.0.0.1:8000"
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.config = config
	c.httpClient = &http.Client{Timeout: config.Timeout}
}

// snapshot returns the base URL and HTTP client for one request.
func (c *Client) snapshot() (string, *http.Client) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.config.BaseURL, c.httpClient
}

// =============================================================================
// HEALTH CHECK
// =============================================================================

// CheckRunning verifies that the insurance service is reachable.
func (c *Client) CheckRunning(ctx context.Context) error {
	baseURL, httpClient := c.snapshot()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+"/", nil)
	if err != nil {
		return &ClientError{Type: ErrTypeUnreachable, Message: "failed to create request", Cause: err}
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return ErrTimeout
		}
		return ErrUnreachable
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &ClientError{
			Type:    ErrTypeBadStatus,
			Message: "unexpected status from service: " + resp.Status,
		}
	}

	return nil
}

// =============================================================================
// CHATBOT
// =============================================================================

// AskChatbot sends a question to the Q&A service and returns the answer.
func (c *Client) AskChatbot(ctx context.Context, query string) (string, error) {
	var result ChatbotResponse
	if err := c.post(ctx, "/chatbot", ChatbotRequest{Query: query}, &result); err != nil {
		return "", err
	}
	return result.Answer, nil
}

// =============================================================================
// ESTIMATION
// =============================================================================

// PredictPremium submits a profile to the estimation service and returns
// the premium prediction. Fields beyond estimated_price are passed through
// opaquely on the Prediction.
func (c *Client) PredictPremium(ctx context.Context, profile model.ProfileDraft) (*model.Prediction, error) {
	var result model.Prediction
	if err := c.post(ctx, "/predict-insurance", profile, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetRecommendations requests plan recommendations priced against a
// previously predicted premium.
func (c *Client) GetRecommendations(ctx context.Context, price float64) (string, error) {
	var result RecommendationsResponse
	if err := c.post(ctx, "/get-recommendations", RecommendationsRequest{Price: price}, &result); err != nil {
		return "", err
	}
	return result.Recommendations, nil
}

// =============================================================================
// REQUEST PLUMBING
// =============================================================================

// post performs one JSON request/response round trip. No retries.
func (c *Client) post(ctx context.Context, path string, reqBody any, out any) error {
	body, err := json.Marshal(reqBody)
	if err != nil {
		return &ClientError{Type: ErrTypeInvalidResponse, Message: "failed to marshal request", Cause: err}
	}

	baseURL, httpClient := c.snapshot()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, baseURL+path, bytes.NewReader(body))
	if err != nil {
		return &ClientError{Type: ErrTypeUnreachable, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return ErrTimeout
		}
		return ErrUnreachable
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// The service reports user-facing failures as {"detail": "..."}.
		var svcErr ServiceError
		if err := json.NewDecoder(resp.Body).Decode(&svcErr); err == nil && svcErr.Detail != "" {
			return &ClientError{
				Type:    ErrTypeBadStatus,
				Message: svcErr.Detail,
				Detail:  svcErr.Detail,
			}
		}
		return &ClientError{
			Type:    ErrTypeBadStatus,
			Message: "request failed: " + resp.Status,
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &ClientError{Type: ErrTypeInvalidResponse, Message: "failed to decode response", Cause: err}
	}

	return nil
}
