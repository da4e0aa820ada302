// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"testing"
)

// =============================================================================
// ARG PARSER TESTS
// =============================================================================

func TestArgParser_Flags(t *testing.T) {
	p := NewArgParser([]string{"--age", "35", "--smoker=yes", "--recommend"})

	if got := p.Flag("age"); got != "35" {
		t.Errorf("Flag(age) = %q, want 35", got)
	}
	if got := p.Flag("smoker"); got != "yes" {
		t.Errorf("Flag(smoker) = %q, want yes", got)
	}
	if !p.BoolFlag("recommend") {
		t.Error("BoolFlag(recommend) should be true")
	}
	if p.BoolFlag("missing") {
		t.Error("BoolFlag(missing) should be false")
	}
}

func TestArgParser_ExplicitBool(t *testing.T) {
	p := NewArgParser([]string{"--recommend=false"})
	if p.BoolFlag("recommend") {
		t.Error("--recommend=false should parse as false")
	}
	if !p.HasFlag("recommend") {
		t.Error("HasFlag should still see the flag")
	}
}

func TestArgParser_Positional(t *testing.T) {
	p := NewArgParser([]string{"what", "is", "a", "deductible"})

	if got := p.PositionalJoined(); got != "what is a deductible" {
		t.Errorf("PositionalJoined() = %q", got)
	}
	if len(p.Positional()) != 4 {
		t.Errorf("Positional() = %v", p.Positional())
	}
}

func TestArgParser_MixedFlagsAndPositional(t *testing.T) {
	p := NewArgParser([]string{"--bmi", "31.2", "extra"})

	if got, err := p.FlagFloat("bmi"); err != nil || got != 31.2 {
		t.Errorf("FlagFloat(bmi) = %v, %v", got, err)
	}
	if got := p.Positional(); len(got) != 1 || got[0] != "extra" {
		t.Errorf("Positional() = %v", got)
	}
}

func TestArgParser_FlagInt(t *testing.T) {
	p := NewArgParser([]string{"--children", "3"})

	if got, err := p.FlagInt("children"); err != nil || got != 3 {
		t.Errorf("FlagInt(children) = %v, %v", got, err)
	}
	if _, err := p.FlagInt("absent"); err == nil {
		t.Error("FlagInt(absent) should error")
	}
}

func TestArgParser_FlagOrDefault(t *testing.T) {
	p := NewArgParser([]string{"--region", "northeast"})

	if got := p.FlagOrDefault("region", "southeast"); got != "northeast" {
		t.Errorf("FlagOrDefault = %q", got)
	}
	if got := p.FlagOrDefault("sex", "male"); got != "male" {
		t.Errorf("FlagOrDefault fallback = %q", got)
	}
}

// =============================================================================
// MARKDOWN RENDERING TESTS
// =============================================================================

func TestRenderMarkdown_NeverEmpty(t *testing.T) {
	got := renderMarkdown("A **deductible** is what you pay first.")
	if got == "" {
		t.Error("renderMarkdown should never return empty output")
	}
}

// =============================================================================
// TERMINAL TESTS
// =============================================================================

func TestTerminalWidth_NonTTYDefault(t *testing.T) {
	// Test binaries run without a TTY on stdout.
	if got := TerminalWidth(); got != defaultTerminalWidth && !IsStdoutTTY() {
		t.Errorf("TerminalWidth() = %d, want %d when piped", got, defaultTerminalWidth)
	}
}

func TestColorEnabled_RespectsNoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	if ColorEnabled() {
		t.Error("NO_COLOR should disable color")
	}
}
