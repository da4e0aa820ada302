// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for chat messages and
// insurance profiles.
package model

import (
	"encoding/json"
	"strings"
)

// =============================================================================
// PROFILE ENUMS
// =============================================================================

// Sex is the profile gender field accepted by the estimation service.
type Sex string

const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
)

// Smoker is the profile smoker field accepted by the estimation service.
type Smoker string

const (
	SmokerNo  Smoker = "no"
	SmokerYes Smoker = "yes"
)

// Region is the profile region field accepted by the estimation service.
type Region string

const (
	RegionSoutheast Region = "southeast"
	RegionSouthwest Region = "southwest"
	RegionNortheast Region = "northeast"
	RegionNorthwest Region = "northwest"
)

// Regions lists all valid regions in display order.
var Regions = []Region{RegionSoutheast, RegionSouthwest, RegionNortheast, RegionNorthwest}

// =============================================================================
// PROFILE DRAFT
// =============================================================================

// ProfileDraft is the demographic/health profile submitted to the
// estimation service. The struct is always fully populated; fields are
// edited one at a time by the estimation workflow.
type ProfileDraft struct {
	Age      int     `json:"age"`
	Sex      Sex     `json:"sex"`
	BMI      float64 `json:"bmi"`
	Children int     `json:"children"`
	Smoker   Smoker  `json:"smoker"`
	Region   Region  `json:"region"`
}

// DefaultProfile returns a profile draft seeded with the default values
// shown when the estimator is first opened.
func DefaultProfile() ProfileDraft {
	return ProfileDraft{
		Age:      29,
		Sex:      SexMale,
		BMI:      26.5,
		Children: 1,
		Smoker:   SmokerNo,
		Region:   RegionSoutheast,
	}
}

// =============================================================================
// PREDICTION RESULT
// =============================================================================

// Prediction is a premium estimate returned by the estimation service.
// Fields beyond estimated_price are passed through opaquely in Extra so
// that service-side additions survive a round trip.
type Prediction struct {
	EstimatedPrice float64
	Extra          map[string]json.RawMessage
}

// UnmarshalJSON decodes estimated_price and captures every other field
// verbatim.
func (p *Prediction) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	if raw, ok := fields["estimated_price"]; ok {
		if err := json.Unmarshal(raw, &p.EstimatedPrice); err != nil {
			return err
		}
		delete(fields, "estimated_price")
	}

	if len(fields) > 0 {
		p.Extra = fields
	}
	return nil
}

// MarshalJSON re-emits the prediction including any opaque extras.
func (p Prediction) MarshalJSON() ([]byte, error) {
	fields := make(map[string]json.RawMessage, len(p.Extra)+1)
	for k, v := range p.Extra {
		fields[k] = v
	}
	price, err := json.Marshal(p.EstimatedPrice)
	if err != nil {
		return nil, err
	}
	fields["estimated_price"] = price
	return json.Marshal(fields)
}

// =============================================================================
// RECOMMENDATION RESULT
// =============================================================================

// Recommendation is the free-form plan recommendation text returned by the
// service. Line breaks in Text are meant to render as separate lines.
type Recommendation struct {
	Text string
}

// Lines splits the recommendation text on newlines for display.
func (r Recommendation) Lines() []string {
	return strings.Split(strings.ReplaceAll(r.Text, "\r\n", "\n"), "\n")
}
