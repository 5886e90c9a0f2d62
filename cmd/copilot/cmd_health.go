// Copyright (C) 2026 NZTC Labs (engineering@nztclabs.io)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/nztclabs/netzero-copilot/pkg/syncclient"
)

// runHealthCommand checks the service and its dependencies. Exits non-zero
// when a dependency is down so scripts can gate on it.
func runHealthCommand(cmd *cobra.Command, args []string) {
	client := syncclient.New(config.Server.URL)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	status, err := client.Health(ctx)
	if err != nil {
		log.Fatalf("Co-pilot service unreachable at %s: %v", config.Server.URL, err)
	}

	fmt.Printf("Service:    %s (%s)\n", config.Server.URL, status.Status)
	fmt.Printf("LLM:        %s\n", upDown(status.LLMAvailable))
	fmt.Printf("Catalog:    %s (%d technologies)\n", upDown(status.DatabaseLoaded), status.TechnologiesCount)

	if !status.LLMAvailable || !status.DatabaseLoaded {
		os.Exit(1)
	}
}

func upDown(ok bool) string {
	if ok {
		return "up"
	}
	return "DOWN"
}
