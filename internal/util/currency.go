// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides utility functions for the premia client.
package util

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// inrPrinter formats numbers with Indian digit grouping (en-IN locale),
// e.g. 152345.67 -> 1,52,345.67.
var inrPrinter = message.NewPrinter(language.MustParse("en-IN"))

// FormatINR formats a premium amount as Indian rupees with exactly two
// fraction digits, e.g. 15234.5 -> "₹15,234.50".
func FormatINR(amount float64) string {
	return inrPrinter.Sprintf("₹%v", number.Decimal(amount,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))
}
