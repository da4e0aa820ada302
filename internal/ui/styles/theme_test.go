// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

// =============================================================================
// THEME CREATION TESTS
// =============================================================================

func TestNewTheme(t *testing.T) {
	theme := NewTheme()

	if theme == nil {
		t.Fatal("NewTheme() returned nil")
	}

	// Verify styles are initialized by rendering a test string
	if theme.App.Render("test") == "" {
		t.Error("NewTheme() should initialize App style")
	}
}

func TestThemeInitStyles(t *testing.T) {
	theme := NewTheme()

	// An uninitialized style would just return the input unchanged;
	// render and check for non-empty output.
	styles := []struct {
		name  string
		style lipgloss.Style
	}{
		{"Header", theme.Header},
		{"TabActive", theme.TabActive},
		{"UserBubble", theme.UserBubble},
		{"AssistantBubble", theme.AssistantBubble},
		{"InputContainer", theme.InputContainer},
		{"FormBox", theme.FormBox},
		{"PriceBox", theme.PriceBox},
		{"RecommendationBox", theme.RecommendationBox},
		{"ErrorBox", theme.ErrorBox},
		{"StatusBar", theme.StatusBar},
	}

	for _, s := range styles {
		if s.style.Render("test") == "" {
			t.Errorf("%s style should be initialized", s.name)
		}
	}
}

func TestNewThemeForMode(t *testing.T) {
	dark := NewThemeForMode(true)
	if !dark.IsDark {
		t.Error("NewThemeForMode(true) should mark theme dark")
	}

	light := NewThemeForMode(false)
	if light.IsDark {
		t.Error("NewThemeForMode(false) should mark theme light")
	}
}

// =============================================================================
// LAYOUT TESTS
// =============================================================================

func TestBubbleWidth(t *testing.T) {
	theme := NewTheme()

	// Unknown size falls back to a sane default.
	if got := theme.BubbleWidth(); got != 60 {
		t.Errorf("BubbleWidth() with no size = %d, want 60", got)
	}

	theme.SetSize(100, 40)
	if got := theme.BubbleWidth(); got != 75 {
		t.Errorf("BubbleWidth() at width 100 = %d, want 75", got)
	}

	// Never collapses below the minimum.
	theme.SetSize(10, 10)
	if got := theme.BubbleWidth(); got != 20 {
		t.Errorf("BubbleWidth() at width 10 = %d, want 20", got)
	}
}
