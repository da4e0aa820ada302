// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package app provides the root Bubble Tea model for the premia TUI.
package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/premialabs/premia-tui/internal/api"
	"github.com/premialabs/premia-tui/internal/config"
	"github.com/premialabs/premia-tui/internal/ui/chat"
	"github.com/premialabs/premia-tui/internal/ui/estimator"
	"github.com/premialabs/premia-tui/internal/ui/styles"
)

// =============================================================================
// TABS
// =============================================================================

// Tab identifies one of the two application panels.
type Tab int

const (
	TabEstimator Tab = iota
	TabAssistant
)

// Title returns the tab's display name.
func (t Tab) Title() string {
	switch t {
	case TabEstimator:
		return "Estimator"
	case TabAssistant:
		return "Assistant"
	}
	return "Unknown"
}

// =============================================================================
// ROOT MODEL
// =============================================================================

// Model is the root application model. It owns the two panels and routes
// messages: key presses go to the active panel, transport results go to
// the panel that issued them.
type Model struct {
	theme  *styles.Theme
	client *api.Client

	chat      chat.Model
	estimator estimator.Model
	active    Tab

	width  int
	height int
}

// New creates the root model from the loaded configuration.
func New(cfg *config.Config) Model {
	theme := themeFor(cfg)

	client := api.NewClientWithConfig(&api.ClientConfig{
		BaseURL: cfg.API.BaseURL,
		Timeout: cfg.API.Timeout(),
	})

	return Model{
		theme:     theme,
		client:    client,
		chat:      chat.New(client, theme, cfg.UI.ShowTimestamps),
		estimator: estimator.New(client, theme),
		active:    TabEstimator,
	}
}

// applyConfig points the shared client at the reloaded settings.
// Panels keep their state; only transport settings change live.
func (m *Model) applyConfig(cfg *config.Config) {
	if cfg == nil {
		return
	}
	m.client.UpdateConfig(&api.ClientConfig{
		BaseURL: cfg.API.BaseURL,
		Timeout: cfg.API.Timeout(),
	})
}

// themeFor builds the theme honoring the config's ui.theme pin.
func themeFor(cfg *config.Config) *styles.Theme {
	switch cfg.UI.Theme {
	case "dark":
		return styles.NewThemeForMode(true)
	case "light":
		return styles.NewThemeForMode(false)
	default:
		return styles.NewTheme()
	}
}

// Init returns the initial commands for both panels.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.chat.Init(), m.estimator.Init())
}

// ActiveTab returns the currently selected tab.
func (m Model) ActiveTab() Tab {
	return m.active
}

// =============================================================================
// UPDATE
// =============================================================================

// ConfigReloadedMsg is sent by the config watcher when the file changes
// on disk. The API client is rebuilt so URL/timeout edits apply to the
// next request without restarting.
type ConfigReloadedMsg struct {
	Config *config.Config
}

// Update routes messages to the panels.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ConfigReloadedMsg:
		m.applyConfig(msg.Config)
		return m, nil
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.theme.SetSize(msg.Width, msg.Height)

		// Header and status bar take three lines from each panel.
		panelSize := tea.WindowSizeMsg{Width: msg.Width, Height: msg.Height - 3}
		var chatCmd, estCmd tea.Cmd
		m.chat, chatCmd = m.chat.Update(panelSize)
		m.estimator, estCmd = m.estimator.Update(panelSize)
		return m, tea.Batch(chatCmd, estCmd)

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "ctrl+t":
			if m.active == TabEstimator {
				m.active = TabAssistant
			} else {
				m.active = TabEstimator
			}
			return m, nil
		}

		// Keys go to the active panel only.
		if m.active == TabAssistant {
			var cmd tea.Cmd
			m.chat, cmd = m.chat.Update(msg)
			return m, cmd
		}
		var cmd tea.Cmd
		m.estimator, cmd = m.estimator.Update(msg)
		return m, cmd

	case chat.AnswerMsg:
		var cmd tea.Cmd
		m.chat, cmd = m.chat.Update(msg)
		return m, cmd

	case estimator.PredictionMsg, estimator.RecommendationsMsg:
		var cmd tea.Cmd
		m.estimator, cmd = m.estimator.Update(msg)
		return m, cmd
	}

	// Everything else (spinner ticks, blinks) fans out to both panels.
	var chatCmd, estCmd tea.Cmd
	m.chat, chatCmd = m.chat.Update(msg)
	m.estimator, estCmd = m.estimator.Update(msg)
	return m, tea.Batch(chatCmd, estCmd)
}
