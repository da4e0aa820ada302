// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/premialabs/premia-tui/internal/api"
	chatctl "github.com/premialabs/premia-tui/internal/chat"
	"github.com/premialabs/premia-tui/internal/ui/components"
	"github.com/premialabs/premia-tui/internal/ui/styles"
)

// =============================================================================
// CHAT PANEL MODEL
// =============================================================================

// Model is the assistant chat panel. It owns the session state machine
// and the input/viewport widgets; all transport happens in commands.
type Model struct {
	session *chatctl.Session
	client  *api.Client
	theme   *styles.Theme

	input    textinput.Model
	viewport viewport.Model
	spinner  components.Spinner

	showTimestamps bool
	width          int
	height         int
	ready          bool
}

// New creates the chat panel with a fresh session (greeting included).
func New(client *api.Client, theme *styles.Theme, showTimestamps bool) Model {
	ti := textinput.New()
	ti.Placeholder = "Ask about health insurance..."
	ti.CharLimit = 2000
	ti.Focus()

	return Model{
		session:        chatctl.NewSession(),
		client:         client,
		theme:          theme,
		input:          ti,
		spinner:        components.NewSpinner(theme),
		showTimestamps: showTimestamps,
	}
}

// Init returns the initial command for the panel.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Session exposes the underlying session, used by tests and the app model.
func (m Model) Session() *chatctl.Session {
	return m.session
}

// Pending reports whether a chatbot request is in flight.
func (m Model) Pending() bool {
	return m.session.Pending
}

// =============================================================================
// UPDATE
// =============================================================================

// Update handles panel messages.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.setSize(msg.Width, msg.Height)
		m.refreshViewport()

	case tea.KeyMsg:
		if msg.Type == tea.KeyEnter {
			return m.submit()
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		cmds = append(cmds, cmd)

	case AnswerMsg:
		if msg.Err != nil {
			m.session.Fail()
		} else {
			m.session.Resolve(msg.Answer)
		}
		m.spinner.Stop()
		m.refreshViewport()

	default:
		if cmd := m.spinner.Update(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// submit hands the typed text to the session; if the session accepts it
// a request command is issued and the input is cleared.
func (m Model) submit() (Model, tea.Cmd) {
	query, ok := m.session.Submit(m.input.Value())
	if !ok {
		return m, nil
	}

	m.input.Reset()
	m.refreshViewport()

	return m, tea.Batch(
		askCmd(m.client, query),
		m.spinner.Start("Thinking"),
	)
}

// setSize resizes the panel and its widgets.
func (m *Model) setSize(width, height int) {
	m.width = width
	m.height = height

	// Input row plus its border eat three lines.
	vpHeight := height - 3
	if vpHeight < 1 {
		vpHeight = 1
	}

	if !m.ready {
		m.viewport = viewport.New(width, vpHeight)
		m.ready = true
	} else {
		m.viewport.Width = width
		m.viewport.Height = vpHeight
	}
	m.input.Width = width - 4
}
