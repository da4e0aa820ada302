// estimate.go - One-shot premium estimation for the premia CLI.
//
// Handles "premia estimate", which submits a profile built from flags
// (unset fields keep the same defaults the TUI form shows) and prints
// the estimated premium, optionally followed by plan recommendations.
//
// Examples:
//   premia estimate
//   premia estimate --age 35 --smoker yes --region northeast
//   premia estimate --bmi 31.2 --recommend
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"context"
	"fmt"

	"github.com/premialabs/premia-tui/internal/api"
	"github.com/premialabs/premia-tui/internal/estimate"
	"github.com/premialabs/premia-tui/internal/model"
	"github.com/premialabs/premia-tui/internal/util"
)

// =============================================================================
// ESTIMATE COMMAND
// =============================================================================

// HandleEstimate implements "premia estimate [flags]".
func HandleEstimate(args []string) int {
	parser := NewArgParser(args)

	wf := estimate.NewWorkflow()
	for _, field := range []string{
		estimate.FieldAge,
		estimate.FieldSex,
		estimate.FieldBMI,
		estimate.FieldChildren,
		estimate.FieldSmoker,
		estimate.FieldRegion,
	} {
		if raw := parser.Flag(field); raw != "" {
			wf.SetField(field, raw)
		}
	}

	cfg := loadConfig()
	client := newClient(cfg)

	profile, ok := wf.SubmitEstimate()
	if !ok {
		return 1
	}

	pred, err := client.PredictPremium(context.Background(), profile)
	if err != nil {
		wf.FailEstimate(err)
		fmt.Println(wf.LastError)
		return 1
	}
	wf.CompleteEstimate(pred)

	printProfile(profile)
	fmt.Printf("Estimated premium: %s\n", util.FormatINR(pred.EstimatedPrice))

	if !parser.BoolFlag("recommend") {
		return 0
	}
	return fetchRecommendations(client, wf)
}

// fetchRecommendations runs the follow-up recommendations call.
func fetchRecommendations(client *api.Client, wf *estimate.Workflow) int {
	price, ok := wf.RequestRecommendations()
	if !ok {
		return 1
	}

	text, err := client.GetRecommendations(context.Background(), price)
	if err != nil {
		wf.FailRecommendations(err)
		fmt.Println(wf.LastError)
		return 1
	}
	wf.CompleteRecommendations(text)

	fmt.Println("\nRecommended plans:")
	for _, line := range wf.Recommendation.Lines() {
		fmt.Printf("  - %s\n", line)
	}
	return 0
}

// printProfile echoes the submitted profile so the estimate is
// self-describing in logs and pipes.
func printProfile(p model.ProfileDraft) {
	fmt.Printf("Profile: age=%d sex=%s bmi=%s children=%d smoker=%s region=%s\n",
		p.Age, p.Sex, util.FloatToString(p.BMI), p.Children, p.Smoker, p.Region)
}
