// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package estimator

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/premialabs/premia-tui/internal/api"
	"github.com/premialabs/premia-tui/internal/estimate"
	"github.com/premialabs/premia-tui/internal/model"
	"github.com/premialabs/premia-tui/internal/ui/components"
	"github.com/premialabs/premia-tui/internal/ui/styles"
	"github.com/premialabs/premia-tui/internal/util"
)

// =============================================================================
// FIELD DEFINITIONS
// =============================================================================

type fieldKind int

const (
	fieldNumeric fieldKind = iota
	fieldEnum
)

// fieldSpec describes one form row: which workflow field it edits, how
// it is labeled, and how it is edited.
type fieldSpec struct {
	name    string
	label   string
	kind    fieldKind
	options []string
}

// fields lists the form rows in display order.
var fields = []fieldSpec{
	{estimate.FieldAge, "Age", fieldNumeric, nil},
	{estimate.FieldSex, "Sex", fieldEnum, []string{string(model.SexMale), string(model.SexFemale)}},
	{estimate.FieldBMI, "BMI", fieldNumeric, nil},
	{estimate.FieldChildren, "Children", fieldNumeric, nil},
	{estimate.FieldSmoker, "Smoker", fieldEnum, []string{string(model.SmokerNo), string(model.SmokerYes)}},
	{estimate.FieldRegion, "Region", fieldEnum, regionOptions()},
}

func regionOptions() []string {
	opts := make([]string, len(model.Regions))
	for i, r := range model.Regions {
		opts[i] = string(r)
	}
	return opts
}

// =============================================================================
// ESTIMATOR PANEL MODEL
// =============================================================================

// Model is the premium estimation panel. It owns the workflow state
// machine and the form widgets; all transport happens in commands.
type Model struct {
	workflow *estimate.Workflow
	client   *api.Client
	theme    *styles.Theme

	input    textinput.Model
	focus    int
	spinner  components.Spinner
	errorBox components.ErrorBox

	width  int
	height int
}

// New creates the estimator panel seeded with the default profile.
func New(client *api.Client, theme *styles.Theme) Model {
	wf := estimate.NewWorkflow()

	ti := textinput.New()
	ti.CharLimit = 10
	ti.Width = 12

	m := Model{
		workflow: wf,
		client:   client,
		theme:    theme,
		input:    ti,
		spinner:  components.NewSpinner(theme),
		errorBox: components.NewErrorBox(),
	}
	m.seedInput()
	return m
}

// Init returns the initial command for the panel.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Workflow exposes the underlying workflow, used by tests and the app model.
func (m Model) Workflow() *estimate.Workflow {
	return m.workflow
}

// Busy reports whether an estimate or recommendations call is in flight.
func (m Model) Busy() bool {
	return m.workflow.Busy()
}

// =============================================================================
// UPDATE
// =============================================================================

// Update handles panel messages.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case PredictionMsg:
		if msg.Err != nil {
			m.workflow.FailEstimate(msg.Err)
			m.errorBox.Show(m.workflow.LastError)
		} else {
			m.workflow.CompleteEstimate(msg.Prediction)
			m.errorBox.Dismiss()
		}
		m.spinner.Stop()
		return m, nil

	case RecommendationsMsg:
		if msg.Err != nil {
			m.workflow.FailRecommendations(msg.Err)
			m.errorBox.Show(m.workflow.LastError)
		} else {
			m.workflow.CompleteRecommendations(msg.Text)
			m.errorBox.Dismiss()
		}
		m.spinner.Stop()
		return m, nil
	}

	if cmd := m.spinner.Update(msg); cmd != nil {
		return m, cmd
	}
	return m, nil
}

// handleKey routes key presses to navigation, editing, or actions.
func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "up", "shift+tab":
		m.moveFocus(-1)
		return m, nil

	case "down", "tab":
		m.moveFocus(1)
		return m, nil

	case "left":
		if fields[m.focus].kind == fieldEnum {
			m.cycleEnum(-1)
			return m, nil
		}

	case "right":
		if fields[m.focus].kind == fieldEnum {
			m.cycleEnum(1)
			return m, nil
		}

	case "enter":
		return m.submitEstimate()

	case "ctrl+r":
		return m.requestRecommendations()

	case "esc":
		m.workflow.Dismiss()
		m.errorBox.Dismiss()
		return m, nil
	}

	if fields[m.focus].kind == fieldNumeric {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// =============================================================================
// FIELD EDITING
// =============================================================================

// moveFocus commits the focused field and moves the cursor by delta,
// wrapping around the form.
func (m *Model) moveFocus(delta int) {
	m.commitFocused()
	m.focus = (m.focus + delta + len(fields)) % len(fields)
	m.seedInput()
}

// commitFocused writes the numeric input back into the draft.
func (m *Model) commitFocused() {
	if fields[m.focus].kind == fieldNumeric {
		m.workflow.SetField(fields[m.focus].name, m.input.Value())
	}
}

// seedInput loads the focused field's draft value into the text input.
func (m *Model) seedInput() {
	if fields[m.focus].kind != fieldNumeric {
		m.input.Blur()
		return
	}
	m.input.SetValue(m.draftValue(fields[m.focus].name))
	m.input.CursorEnd()
	m.input.Focus()
}

// cycleEnum steps the focused enum field through its options.
func (m *Model) cycleEnum(delta int) {
	spec := fields[m.focus]
	current := m.draftValue(spec.name)

	idx := 0
	for i, opt := range spec.options {
		if opt == current {
			idx = i
			break
		}
	}
	next := spec.options[(idx+delta+len(spec.options))%len(spec.options)]
	m.workflow.SetField(spec.name, next)
}

// draftValue renders one draft field as the string shown in the form.
func (m *Model) draftValue(name string) string {
	d := m.workflow.Draft
	switch name {
	case estimate.FieldAge:
		return util.IntToString(d.Age)
	case estimate.FieldSex:
		return string(d.Sex)
	case estimate.FieldBMI:
		return util.FloatToString(d.BMI)
	case estimate.FieldChildren:
		return util.IntToString(d.Children)
	case estimate.FieldSmoker:
		return string(d.Smoker)
	case estimate.FieldRegion:
		return string(d.Region)
	}
	return ""
}

// =============================================================================
// ACTIONS
// =============================================================================

// submitEstimate commits the focused field and starts an estimate call
// if the workflow accepts one.
func (m Model) submitEstimate() (Model, tea.Cmd) {
	m.commitFocused()

	profile, ok := m.workflow.SubmitEstimate()
	if !ok {
		return m, nil
	}

	m.errorBox.Dismiss()
	return m, tea.Batch(
		predictCmd(m.client, profile),
		m.spinner.Start("Estimating premium"),
	)
}

// requestRecommendations starts a recommendations call for the current
// prediction, if one exists and none is in flight.
func (m Model) requestRecommendations() (Model, tea.Cmd) {
	price, ok := m.workflow.RequestRecommendations()
	if !ok {
		return m, nil
	}

	return m, tea.Batch(
		recommendCmd(m.client, price),
		m.spinner.Start("Fetching recommendations"),
	)
}
