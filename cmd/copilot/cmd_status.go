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
	"time"

	"github.com/spf13/cobra"

	"github.com/nztclabs/netzero-copilot/pkg/syncclient"
	"github.com/nztclabs/netzero-copilot/services/copilot/datatypes"
	"github.com/nztclabs/netzero-copilot/services/copilot/review"
)

// runStatusCommand shows one submission. With --watch it polls until the
// submission is approved or rejected.
func runStatusCommand(cmd *cobra.Command, args []string) {
	id := args[0]
	client := syncclient.New(config.Server.URL)
	ctx := context.Background()

	if !statusWatch {
		sub, err := client.Submission(ctx, id)
		if err != nil {
			log.Fatalf("Could not fetch submission: %v", err)
		}
		printSubmission(sub)
		return
	}

	interval := time.Duration(statusInterval) * time.Second
	lastStatus := review.Status("")
	sub, err := client.Watch(ctx, id, interval, func(s *datatypes.Submission) {
		if s.Status != lastStatus {
			fmt.Printf("%s  status: %s\n", time.Now().Format(time.TimeOnly), s.Status)
			lastStatus = s.Status
		}
	})
	if err != nil {
		log.Fatalf("Watch failed: %v", err)
	}
	fmt.Println()
	printSubmission(sub)
}

func printSubmission(sub *datatypes.Submission) {
	fmt.Printf("Submission %s\n", sub.SubmissionID)
	fmt.Printf("Status:    %s\n", sub.Status)
	fmt.Printf("Submitted: %s\n", sub.SubmittedAt.Local().Format(time.RFC822))
	if sub.ReviewedAt != nil {
		fmt.Printf("Reviewed:  %s\n", sub.ReviewedAt.Local().Format(time.RFC822))
	}
	if sub.Feedback != "" {
		fmt.Printf("Feedback:  %s\n", sub.Feedback)
	}
	fmt.Printf("Challenge: %s\n\n", sub.Challenge.ChallengeDescription)
	printSolutions(sub.Solutions)
}
