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

	"github.com/spf13/cobra"

	"github.com/nztclabs/netzero-copilot/pkg/syncclient"
)

// runIngestCommand streams a technology database CSV into the catalog.
// Embedding every row server-side takes a while for large exports.
func runIngestCommand(cmd *cobra.Command, args []string) {
	file, err := os.Open(args[0])
	if err != nil {
		log.Fatalf("Could not open CSV: %v", err)
	}
	defer file.Close()

	client := syncclient.New(config.Server.URL)
	fmt.Println("Ingesting technology catalog, embedding can take a few minutes...")

	result, err := client.IngestCSV(context.Background(), file)
	if err != nil {
		log.Fatalf("Ingestion failed: %v", err)
	}
	fmt.Printf("Parsed %d technologies, indexed %d\n", result.Parsed, result.Indexed)
}
