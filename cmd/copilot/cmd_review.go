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

	"github.com/spf13/cobra"

	"github.com/nztclabs/netzero-copilot/pkg/syncclient"
)

// runReviewCommand applies an approve or reject decision. Exactly one of
// --approve and --reject is required.
func runReviewCommand(cmd *cobra.Command, args []string) {
	if reviewApprove == reviewReject {
		log.Fatal("Specify exactly one of --approve or --reject")
	}
	action := "approve"
	if reviewReject {
		action = "reject"
	}

	client := syncclient.New(config.Server.URL)
	sub, err := client.Review(context.Background(), args[0], action, reviewFeedback)
	if err != nil {
		log.Fatalf("Review failed: %v", err)
	}

	fmt.Printf("Submission %s is now %s\n", sub.SubmissionID, sub.Status)
	if sub.Feedback != "" {
		fmt.Printf("Feedback: %s\n", sub.Feedback)
	}
}
