// status.go - Service health check for the premia CLI.
//
// Handles "premia status": probes the assistant service and reports
// whether it is reachable.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"context"
	"fmt"
	"time"
)

// statusProbeTimeout bounds the health check even when the configured
// request timeout is unlimited.
const statusProbeTimeout = 5 * time.Second

// HandleStatus implements "premia status".
func HandleStatus() int {
	cfg := loadConfig()
	client := newClient(cfg)

	ctx, cancel := context.WithTimeout(context.Background(), statusProbeTimeout)
	defer cancel()

	if err := client.CheckRunning(ctx); err != nil {
		fmt.Printf("service: unreachable (%s)\n", cfg.API.BaseURL)
		printError(err)
		return 1
	}

	fmt.Printf("service: ok (%s)\n", cfg.API.BaseURL)
	return 0
}
