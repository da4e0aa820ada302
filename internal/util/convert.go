// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides utility functions for the premia client.
package util

import "strconv"

// IntToString converts an int to string.
// Uses strconv.Itoa for optimal performance.
func IntToString(i int) string {
	return strconv.Itoa(i)
}

// FloatToString converts a float64 to its shortest exact representation.
// Trailing zeroes are dropped (26.50 -> "26.5"), matching what a user
// would type into a form field.
func FloatToString(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// FloatToStringPrec converts a float64 to string with fixed decimal precision.
func FloatToStringPrec(f float64, prec int) string {
	return strconv.FormatFloat(f, 'f', prec, 64)
}
