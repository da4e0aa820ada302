// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package styles provides the visual styling system for the premia TUI.

This package defines the color palette and the Theme type used throughout
the application. All colors use Lip Gloss AdaptiveColor for automatic
light/dark terminal detection.

# Color System (colors.go)

  - Teal - Brand color for headers, the active tab, and user highlights
  - Indigo - Secondary accent for assistant messages and recommendations
  - Emerald - Success states and the predicted premium panel
  - Amber - Warnings and pending requests
  - Rose - Errors and failed requests

Message bubbles and result panels use semantic color tokens
(UserBubbleBg, AssistantBubbleFg, PriceBg, ErrorFg, ...) rather than raw
palette entries so a panel can be re-tinted in one place.

# Theme (theme.go)

Theme bundles every lipgloss.Style the UI renders with. NewTheme detects
the terminal's color profile and background; NewThemeForMode forces dark
or light when the config pins ui.theme. The theme also tracks the window
size for width-dependent styles such as message bubbles.
*/
package styles
