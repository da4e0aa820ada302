// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides utility functions for the premia client.
//
// # Contents
//
//   - Rune- and width-aware string truncation for terminal rendering
//   - INR currency formatting for premium amounts
//   - Numeric-to-string conversion helpers for form fields
//   - Atomic file writes used by configuration saving
package util
