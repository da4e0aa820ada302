// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package estimator

import (
	"strings"

	"github.com/premialabs/premia-tui/internal/util"
)

// =============================================================================
// RENDERING
// =============================================================================

// View renders the estimator panel: form, spinner, results, error box.
func (m Model) View() string {
	var sections []string

	sections = append(sections, m.renderForm())

	if m.spinner.Active() {
		sections = append(sections, m.spinner.View(m.theme))
	}

	if m.errorBox.Visible() {
		sections = append(sections, m.errorBox.View(m.theme))
	}

	if m.workflow.Prediction != nil {
		sections = append(sections, m.renderPrediction())
	}
	if m.workflow.Recommendation != nil {
		sections = append(sections, m.renderRecommendations())
	}

	sections = append(sections, m.renderHints())

	return strings.Join(sections, "\n\n")
}

// renderForm renders one row per profile field with the focused row
// highlighted.
func (m Model) renderForm() string {
	var rows []string
	for i, spec := range fields {
		label := m.theme.FieldLabel
		value := m.theme.FieldValue
		if i == m.focus {
			label = m.theme.FieldLabelActive
			value = m.theme.FieldValueActive
		}

		var rendered string
		if i == m.focus && spec.kind == fieldNumeric {
			rendered = m.input.View()
		} else if spec.kind == fieldEnum && i == m.focus {
			rendered = value.Render("< " + m.draftValue(spec.name) + " >")
		} else {
			rendered = value.Render(m.draftValue(spec.name))
		}

		rows = append(rows, label.Render(spec.label)+" "+rendered)
	}
	return m.theme.FormBox.Render(strings.Join(rows, "\n"))
}

// renderPrediction renders the estimated premium panel.
func (m Model) renderPrediction() string {
	price := util.FormatINR(m.workflow.Prediction.EstimatedPrice)
	content := m.theme.PriceLabel.Render("Estimated premium: ") +
		m.theme.PriceValue.Render(price)
	return m.theme.PriceBox.Render(content)
}

// renderRecommendations renders the plan recommendations, one bullet
// per line of service output.
func (m Model) renderRecommendations() string {
	var b strings.Builder
	b.WriteString(m.theme.HeaderTitle.Render("Recommended plans"))
	for _, line := range m.workflow.Recommendation.Lines() {
		b.WriteString("\n")
		b.WriteString(m.theme.RecommendationItem.Render("- " + line))
	}
	return m.theme.RecommendationBox.Render(b.String())
}

// renderHints renders the key binding line at the bottom of the panel.
func (m Model) renderHints() string {
	hints := []struct{ key, desc string }{
		{"tab", "next field"},
		{"←/→", "change option"},
		{"enter", "estimate"},
		{"ctrl+r", "recommendations"},
		{"esc", "clear results"},
	}

	var parts []string
	for _, h := range hints {
		parts = append(parts, m.theme.ShortcutKey.Render(h.key)+" "+m.theme.ShortcutDesc.Render(h.desc))
	}
	return m.theme.StatusBar.Render(strings.Join(parts, "  "))
}
