// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides utility functions for the premia client.
package util

import (
	"os"
	"path/filepath"
	"testing"
)

// =============================================================================
// TRUNCATION TESTS
// =============================================================================

func TestTruncateRunes(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxRunes int
		want     string
	}{
		{"no truncation needed", "hello", 10, "hello"},
		{"exact length", "hello", 5, "hello"},
		{"truncate with ellipsis", "hello world", 8, "hello..."},
		{"tiny max", "hello", 2, "he"},
		{"zero max", "hello", 0, ""},
		{"unicode not split", "नमस्ते दुनिया", 9, "नमस्ते..."},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := TruncateRunes(tc.input, tc.maxRunes); got != tc.want {
				t.Errorf("TruncateRunes(%q, %d) = %q, want %q", tc.input, tc.maxRunes, got, tc.want)
			}
		})
	}
}

func TestTruncateWidth_CJK(t *testing.T) {
	// Each CJK character is 2 columns wide.
	got := TruncateWidth("日本語テキスト", 9)
	if StringWidth(got) > 9 {
		t.Errorf("TruncateWidth produced width %d > 9: %q", StringWidth(got), got)
	}
}

func TestStringWidth(t *testing.T) {
	if got := StringWidth("abc"); got != 3 {
		t.Errorf("StringWidth(abc) = %d, want 3", got)
	}
	if got := StringWidth("日本"); got != 4 {
		t.Errorf("StringWidth(日本) = %d, want 4", got)
	}
}

// =============================================================================
// CURRENCY TESTS
// =============================================================================

func TestFormatINR(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{15234.5, "₹15,234.50"},
		{0, "₹0.00"},
		{999.999, "₹1,000.00"},
		// Indian grouping: lakhs take over past five digits.
		{152345.67, "₹1,52,345.67"},
	}

	for _, tc := range tests {
		if got := FormatINR(tc.amount); got != tc.want {
			t.Errorf("FormatINR(%v) = %q, want %q", tc.amount, got, tc.want)
		}
	}
}

// =============================================================================
// CONVERSION TESTS
// =============================================================================

func TestFloatToString(t *testing.T) {
	if got := FloatToString(26.5); got != "26.5" {
		t.Errorf("FloatToString(26.5) = %q", got)
	}
	if got := FloatToString(29); got != "29" {
		t.Errorf("FloatToString(29) = %q", got)
	}
}

func TestFloatToStringPrec(t *testing.T) {
	if got := FloatToStringPrec(15234.5, 2); got != "15234.50" {
		t.Errorf("FloatToStringPrec = %q", got)
	}
}

// =============================================================================
// ATOMIC WRITE TESTS
// =============================================================================

func TestAtomicWriteFile_Basic(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.toml")
	data := []byte("[api]\nbase_url = \"http://127.0.0.1:8000\"\n")

	if err := AtomicWriteFile(path, data, 0644); err != nil {
		t.Fatalf("AtomicWriteFile failed: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file: %v", err)
	}
	if string(content) != string(data) {
		t.Errorf("Content mismatch: got %q", string(content))
	}
}

func TestAtomicWriteFile_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.toml")

	if err := AtomicWriteFile(path, []byte("initial"), 0644); err != nil {
		t.Fatalf("First write failed: %v", err)
	}
	if err := AtomicWriteFile(path, []byte("updated"), 0644); err != nil {
		t.Fatalf("Second write failed: %v", err)
	}

	content, _ := os.ReadFile(path)
	if string(content) != "updated" {
		t.Errorf("Content = %q, want updated", string(content))
	}
}

func TestAtomicWriteFile_CreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "test.toml")

	if err := AtomicWriteFile(path, []byte("data"), 0600); err != nil {
		t.Fatalf("AtomicWriteFile failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("File not created: %v", err)
	}
}
