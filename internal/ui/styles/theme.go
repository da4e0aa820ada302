// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme holds all the styled components for the application.
// It detects the terminal's color capability and adjusts accordingly.
type Theme struct {
	// Terminal capabilities
	IsDark       bool
	HasTrueColor bool
	ColorProfile termenv.Profile

	// Layout dimensions
	Width  int
	Height int

	// ==========================================================================
	// APPLICATION CONTAINER STYLES
	// ==========================================================================

	App       lipgloss.Style
	Container lipgloss.Style

	// ==========================================================================
	// HEADER AND TAB STYLES
	// ==========================================================================

	Header      lipgloss.Style
	HeaderTitle lipgloss.Style
	TabActive   lipgloss.Style
	TabInactive lipgloss.Style

	// ==========================================================================
	// MESSAGE BUBBLE STYLES
	// ==========================================================================

	UserBubble      lipgloss.Style
	AssistantBubble lipgloss.Style
	Timestamp       lipgloss.Style

	// ==========================================================================
	// INPUT AREA STYLES
	// ==========================================================================

	InputContainer   lipgloss.Style
	InputPrompt      lipgloss.Style
	InputText        lipgloss.Style
	InputPlaceholder lipgloss.Style

	// ==========================================================================
	// ESTIMATOR FORM STYLES
	// ==========================================================================

	FieldLabel       lipgloss.Style
	FieldLabelActive lipgloss.Style
	FieldValue       lipgloss.Style
	FieldValueActive lipgloss.Style
	FormBox          lipgloss.Style

	// ==========================================================================
	// RESULT PANEL STYLES
	// ==========================================================================

	PriceBox          lipgloss.Style
	PriceLabel        lipgloss.Style
	PriceValue        lipgloss.Style
	RecommendationBox lipgloss.Style
	RecommendationItem lipgloss.Style

	// ==========================================================================
	// ERROR BOX STYLES
	// ==========================================================================

	ErrorBox     lipgloss.Style
	ErrorTitle   lipgloss.Style
	ErrorMessage lipgloss.Style

	// ==========================================================================
	// SPINNER AND STATUS STYLES
	// ==========================================================================

	Spinner      lipgloss.Style
	ThinkingText lipgloss.Style
	StatusBar    lipgloss.Style
	ShortcutKey  lipgloss.Style
	ShortcutDesc lipgloss.Style
}

// NewTheme creates a new theme with all styles configured.
func NewTheme() *Theme {
	// Detect terminal capabilities
	colorProfile := termenv.ColorProfile()
	hasTrueColor := colorProfile == termenv.TrueColor
	isDark := termenv.HasDarkBackground()

	t := &Theme{
		IsDark:       isDark,
		HasTrueColor: hasTrueColor,
		ColorProfile: colorProfile,
	}

	t.initStyles()
	return t
}

// NewThemeForMode builds a theme with an explicit dark/light choice,
// bypassing terminal background detection. Used when ui.theme is set to
// "dark" or "light" in the config.
func NewThemeForMode(dark bool) *Theme {
	t := &Theme{
		IsDark:       dark,
		HasTrueColor: termenv.ColorProfile() == termenv.TrueColor,
		ColorProfile: termenv.ColorProfile(),
	}
	lipgloss.SetHasDarkBackground(dark)

	t.initStyles()
	return t
}

// initStyles initializes all the lip gloss styles.
func (t *Theme) initStyles() {
	// App container
	t.App = lipgloss.NewStyle()
	t.Container = lipgloss.NewStyle().Padding(0, 1)

	// Header and tabs
	t.Header = lipgloss.NewStyle().
		Bold(true).
		Foreground(Teal).
		Background(SurfaceDim).
		Padding(0, 2)

	t.HeaderTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(Teal)

	t.TabActive = lipgloss.NewStyle().
		Bold(true).
		Foreground(Teal).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(Teal).
		Padding(0, 2)

	t.TabInactive = lipgloss.NewStyle().
		Foreground(TextMuted).
		Padding(0, 2)

	// Message bubbles
	t.UserBubble = lipgloss.NewStyle().
		Foreground(UserBubbleFg).
		Background(UserBubbleBg).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(UserBubbleBorder).
		Padding(0, 2).
		MarginLeft(4)

	t.AssistantBubble = lipgloss.NewStyle().
		Foreground(AssistantBubbleFg).
		Background(AssistantBubbleBg).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(AssistantBubbleBorder).
		Padding(0, 2).
		MarginRight(4)

	t.Timestamp = lipgloss.NewStyle().
		Foreground(TextMuted)

	// Input area
	t.InputContainer = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderTop(true).
		BorderForeground(Overlay).
		Padding(0, 1)

	t.InputPrompt = lipgloss.NewStyle().
		Foreground(Teal).
		Bold(true)

	t.InputText = lipgloss.NewStyle().
		Foreground(TextPrimary)

	t.InputPlaceholder = lipgloss.NewStyle().
		Foreground(TextMuted).
		Italic(true)

	// Estimator form
	t.FieldLabel = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Width(10)

	t.FieldLabelActive = lipgloss.NewStyle().
		Foreground(Teal).
		Bold(true).
		Width(10)

	t.FieldValue = lipgloss.NewStyle().
		Foreground(TextPrimary)

	t.FieldValueActive = lipgloss.NewStyle().
		Foreground(TextPrimary).
		Background(Overlay)

	t.FormBox = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Overlay).
		Padding(1, 2)

	// Result panels
	t.PriceBox = lipgloss.NewStyle().
		Foreground(PriceFg).
		Background(PriceBg).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Emerald).
		Padding(0, 2)

	t.PriceLabel = lipgloss.NewStyle().
		Foreground(TextSecondary)

	t.PriceValue = lipgloss.NewStyle().
		Bold(true).
		Foreground(Emerald)

	t.RecommendationBox = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Indigo).
		Padding(0, 2)

	t.RecommendationItem = lipgloss.NewStyle().
		Foreground(TextPrimary)

	// Error box
	t.ErrorBox = lipgloss.NewStyle().
		Foreground(ErrorFg).
		Background(ErrorBg).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(Rose).
		BorderLeft(true).
		PaddingLeft(2)

	t.ErrorTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(Rose)

	t.ErrorMessage = lipgloss.NewStyle().
		Foreground(ErrorFg)

	// Spinner and status
	t.Spinner = lipgloss.NewStyle().
		Foreground(Teal)

	t.ThinkingText = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Italic(true)

	t.StatusBar = lipgloss.NewStyle().
		Background(SurfaceDim).
		Foreground(TextSecondary).
		Padding(0, 1)

	t.ShortcutKey = lipgloss.NewStyle().
		Foreground(Teal).
		Bold(true)

	t.ShortcutDesc = lipgloss.NewStyle().
		Foreground(TextMuted)
}

// SetSize updates the theme's layout dimensions on terminal resize.
func (t *Theme) SetSize(width, height int) {
	t.Width = width
	t.Height = height
}

// BubbleWidth returns the maximum message bubble width for the current
// terminal size. Bubbles take at most three quarters of the window.
func (t *Theme) BubbleWidth() int {
	if t.Width <= 0 {
		return 60
	}
	w := t.Width * 3 / 4
	if w < 20 {
		w = 20
	}
	return w
}
