// Copyright (C) 2026 NZTC Labs (engineering@nztclabs.io)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nztclabs/netzero-copilot/pkg/syncclient"
	"github.com/nztclabs/netzero-copilot/services/copilot/datatypes"
)

// runSubmitCommand sends the challenge to the generation endpoint and prints
// the resulting pending submission. Generation with a local model takes a
// while; the command blocks until the server answers.
func runSubmitCommand(cmd *cobra.Command, args []string) {
	description := strings.Join(args, " ")
	if len(args) == 1 && strings.HasPrefix(args[0], "@") {
		loaded, err := readChallengeFile(args[0])
		if err != nil {
			log.Fatalf("Could not read challenge file: %v", err)
		}
		description = loaded
	}

	challenge := datatypes.ChallengeInput{
		ChallengeDescription: description,
		IndustrySector:       submitSector,
		BudgetRange:          submitBudget,
		Constraints:          submitConstraints,
	}
	if submitBaseline > 0 {
		challenge.EmissionsBaseline = &submitBaseline
	}
	if submitReduction > 0 {
		challenge.TargetReduction = &submitReduction
	}
	if submitTimeline > 0 {
		challenge.TimelineMonths = &submitTimeline
	}

	client := syncclient.New(config.Server.URL)
	fmt.Println("Generating solutions, this can take a few minutes...")

	resp, err := client.Generate(context.Background(), challenge)
	if err != nil {
		log.Fatalf("Generation failed: %v", err)
	}

	if submitJSONOutput {
		data, _ := json.MarshalIndent(resp, "", "  ")
		fmt.Println(string(data))
		return
	}

	sub := resp.Submission
	fmt.Printf("Submission %s created (%d technologies analyzed in %.1fs)\n\n",
		sub.SubmissionID, resp.TechnologiesAnalyzed, resp.ProcessingTimeSeconds)
	printSolutions(sub.Solutions)
	fmt.Printf("\nReview with: copilot review %s --approve|--reject\n", sub.SubmissionID)
}

func printSolutions(solutions []datatypes.Solution) {
	for _, sol := range solutions {
		fmt.Printf("[%d] %s (feasibility: %s)\n", sol.SolutionID, sol.Title, sol.Feasibility)
		if sol.Description != "" {
			fmt.Printf("    %s\n", sol.Description)
		}
		for _, tech := range sol.Technologies {
			fmt.Printf("    - %s (%s, TRL %d)\n", tech.Title, tech.Provider, tech.TRL)
		}
		if sol.TimelineEstimate != "" {
			fmt.Printf("    Timeline: %s", sol.TimelineEstimate)
			if sol.EstimatedCostRange != "" {
				fmt.Printf("  Cost: %s", sol.EstimatedCostRange)
			}
			fmt.Println()
		}
	}
}

// readChallengeFile is kept for scripting: "@file.txt" as the only argument
// loads the description from disk.
func readChallengeFile(path string) (string, error) {
	data, err := os.ReadFile(strings.TrimPrefix(path, "@"))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}
