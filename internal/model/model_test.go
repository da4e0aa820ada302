// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for chat messages and
// insurance profiles.
package model

import (
	"encoding/json"
	"testing"
	"time"
)

// =============================================================================
// SENDER TESTS
// =============================================================================

func TestSender_DisplayName(t *testing.T) {
	tests := []struct {
		sender Sender
		want   string
	}{
		{SenderUser, "You"},
		{SenderBot, "Assistant"},
		{Sender("system"), "system"},
	}

	for _, tc := range tests {
		if got := tc.sender.DisplayName(); got != tc.want {
			t.Errorf("DisplayName(%q) = %q, want %q", tc.sender, got, tc.want)
		}
	}
}

// =============================================================================
// CHAT MESSAGE TESTS
// =============================================================================

func TestChatMessage_Preview(t *testing.T) {
	msg := ChatMessage{Text: "What does a deductible mean in health insurance?"}

	if got := msg.Preview(100); got != msg.Text {
		t.Errorf("Preview should not truncate short text, got %q", got)
	}

	short := msg.Preview(10)
	if len([]rune(short)) != 10 {
		t.Errorf("Preview(10) length = %d, want 10", len([]rune(short)))
	}

	// Multi-byte text must not be split mid-rune.
	hindi := ChatMessage{Text: "स्वास्थ्य बीमा के बारे में पूछें"}
	_ = hindi.Preview(5)
}

func TestChatMessage_FormatTime(t *testing.T) {
	msg := ChatMessage{CreatedAt: time.Date(2025, 6, 1, 9, 5, 0, 0, time.UTC)}
	if got := msg.FormatTime(); got != "09:05" {
		t.Errorf("FormatTime() = %q, want 09:05", got)
	}
}

// =============================================================================
// PROFILE TESTS
// =============================================================================

func TestDefaultProfile(t *testing.T) {
	p := DefaultProfile()

	if p.Age != 29 {
		t.Errorf("Age = %d, want 29", p.Age)
	}
	if p.Sex != SexMale {
		t.Errorf("Sex = %q, want male", p.Sex)
	}
	if p.BMI != 26.5 {
		t.Errorf("BMI = %v, want 26.5", p.BMI)
	}
	if p.Children != 1 {
		t.Errorf("Children = %d, want 1", p.Children)
	}
	if p.Smoker != SmokerNo {
		t.Errorf("Smoker = %q, want no", p.Smoker)
	}
	if p.Region != RegionSoutheast {
		t.Errorf("Region = %q, want southeast", p.Region)
	}
}

func TestProfileDraft_JSONShape(t *testing.T) {
	data, err := json.Marshal(DefaultProfile())
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var fields map[string]any
	if err := json.Unmarshal(data, &fields); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	for _, key := range []string{"age", "sex", "bmi", "children", "smoker", "region"} {
		if _, ok := fields[key]; !ok {
			t.Errorf("profile JSON missing %q field", key)
		}
	}
}

// =============================================================================
// PREDICTION TESTS
// =============================================================================

func TestPrediction_UnmarshalExtras(t *testing.T) {
	body := `{"estimated_price": 15234.5, "model_version": "v2", "confidence": 0.93}`

	var pred Prediction
	if err := json.Unmarshal([]byte(body), &pred); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	if pred.EstimatedPrice != 15234.5 {
		t.Errorf("EstimatedPrice = %v, want 15234.5", pred.EstimatedPrice)
	}
	if len(pred.Extra) != 2 {
		t.Fatalf("Extra has %d fields, want 2", len(pred.Extra))
	}
	if _, ok := pred.Extra["model_version"]; !ok {
		t.Error("Extra should retain model_version")
	}

	// Extras survive a round trip.
	out, err := json.Marshal(pred)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var again Prediction
	if err := json.Unmarshal(out, &again); err != nil {
		t.Fatalf("round trip Unmarshal: %v", err)
	}
	if again.EstimatedPrice != pred.EstimatedPrice {
		t.Error("round trip lost estimated_price")
	}
	if _, ok := again.Extra["confidence"]; !ok {
		t.Error("round trip lost confidence extra")
	}
}

// =============================================================================
// RECOMMENDATION TESTS
// =============================================================================

func TestRecommendation_Lines(t *testing.T) {
	rec := Recommendation{Text: "Plan A\nPlan B"}
	lines := rec.Lines()

	if len(lines) != 2 {
		t.Fatalf("Lines() returned %d lines, want 2", len(lines))
	}
	if lines[0] != "Plan A" || lines[1] != "Plan B" {
		t.Errorf("Lines() = %v", lines)
	}
}

func TestRecommendation_LinesCRLF(t *testing.T) {
	rec := Recommendation{Text: "Plan A\r\nPlan B"}
	lines := rec.Lines()

	if len(lines) != 2 || lines[0] != "Plan A" {
		t.Errorf("Lines() should normalize CRLF, got %v", lines)
	}
}
