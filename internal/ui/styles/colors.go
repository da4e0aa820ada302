// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the premia TUI.
// All colors use Lip Gloss AdaptiveColor for automatic light/dark detection.
package styles

import "github.com/charmbracelet/lipgloss"

// =============================================================================
// PRIMARY ACCENT COLORS
// =============================================================================

// Teal - Brand color, headers, active tab, user highlights
var Teal = lipgloss.AdaptiveColor{Light: "#0D9488", Dark: "#2DD4BF"}

// TealDeep - Darker teal for backgrounds
var TealDeep = lipgloss.AdaptiveColor{Light: "#0F766E", Dark: "#134E4A"}

// Indigo - Secondary accent, assistant messages, selections
var Indigo = lipgloss.AdaptiveColor{Light: "#4F46E5", Dark: "#818CF8"}

// Emerald - Success states, predicted premium highlight
var Emerald = lipgloss.AdaptiveColor{Light: "#059669", Dark: "#34D399"}

// =============================================================================
// SEMANTIC COLORS
// =============================================================================

// Rose - Errors, failed requests
var Rose = lipgloss.AdaptiveColor{Light: "#E11D48", Dark: "#FB7185"}

// RoseDeep - Darker rose for error backgrounds
var RoseDeep = lipgloss.AdaptiveColor{Light: "#BE123C", Dark: "#881337"}

// Amber - Warnings, pending requests
var Amber = lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#FBBF24"}

// =============================================================================
// SURFACE COLORS
// =============================================================================

// Surface - Main background
var Surface = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#1E1E2E"}

// SurfaceDim - Slightly darker/lighter surface for headers/footers
var SurfaceDim = lipgloss.AdaptiveColor{Light: "#F5F5F5", Dark: "#181825"}

// Overlay - Borders, separators, subtle backgrounds
var Overlay = lipgloss.AdaptiveColor{Light: "#E5E5E5", Dark: "#313244"}

// =============================================================================
// TEXT COLORS
// =============================================================================

// TextPrimary - Main body text
var TextPrimary = lipgloss.AdaptiveColor{Light: "#1F2937", Dark: "#CDD6F4"}

// TextSecondary - Labels, less prominent text
var TextSecondary = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#A6ADC8"}

// TextMuted - Hints, timestamps, very subtle text
var TextMuted = lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6C7086"}

// =============================================================================
// MESSAGE BUBBLE COLORS
// =============================================================================

// User message bubble - Blue tones
var UserBubbleBg = lipgloss.AdaptiveColor{Light: "#DBEAFE", Dark: "#1D4ED8"}
var UserBubbleFg = lipgloss.AdaptiveColor{Light: "#1E40AF", Dark: "#E0F2FE"}
var UserBubbleBorder = lipgloss.AdaptiveColor{Light: "#3B82F6", Dark: "#3B82F6"}

// Assistant message bubble - Soft indigo tones (muted, not saturated)
var AssistantBubbleBg = lipgloss.AdaptiveColor{Light: "#EEF2FF", Dark: "#34325A"}
var AssistantBubbleFg = lipgloss.AdaptiveColor{Light: "#3730A3", Dark: "#E0E7FF"}
var AssistantBubbleBorder = lipgloss.AdaptiveColor{Light: "#A5B4FC", Dark: "#818CF8"}

// =============================================================================
// RESULT PANEL COLORS
// =============================================================================

// Predicted premium panel - Emerald tones
var PriceBg = lipgloss.AdaptiveColor{Light: "#D1FAE5", Dark: "#064E3B"}
var PriceFg = lipgloss.AdaptiveColor{Light: "#065F46", Dark: "#A7F3D0"}

// Error panel - Rose tones
var ErrorBg = lipgloss.AdaptiveColor{Light: "#FEE2E2", Dark: "#881337"}
var ErrorFg = lipgloss.AdaptiveColor{Light: "#991B1B", Dark: "#FECACA"}
