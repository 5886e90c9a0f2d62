// Copyright (C) 2026 NZTC Labs (engineering@nztclabs.io)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"github.com/spf13/cobra"
)

// --- Global Command Variables ---
var (
	serverURL string

	submitSector      string
	submitBaseline    float64
	submitReduction   float64
	submitTimeline    int
	submitBudget      string
	submitConstraints []string
	submitJSONOutput  bool

	statusWatch    bool
	statusInterval int

	reviewApprove  bool
	reviewReject   bool
	reviewFeedback string

	listPending    bool
	listJSONOutput bool

	rootCmd = &cobra.Command{
		Use:   "copilot",
		Short: "A cli for the NetZero co-pilot solution generation service",
		Long: `Copilot submits decarbonization challenges to the NetZero co-pilot
service, tracks the generated solution batches through review, and
manages the technology catalog behind them.`,
	}

	submitCmd = &cobra.Command{
		Use:   "submit [challenge description]",
		Short: "Submit a decarbonization challenge and generate solutions",
		Args:  cobra.MinimumNArgs(1),
		Run:   runSubmitCommand, // Defined in cmd_submit.go
	}

	statusCmd = &cobra.Command{
		Use:   "status [submission-id]",
		Short: "Show one submission, optionally waiting for its review decision",
		Args:  cobra.ExactArgs(1),
		Run:   runStatusCommand, // Defined in cmd_status.go
	}

	reviewCmd = &cobra.Command{
		Use:   "review [submission-id]",
		Short: "Approve or reject a pending submission",
		Args:  cobra.ExactArgs(1),
		Run:   runReviewCommand, // Defined in cmd_review.go
	}

	listCmd = &cobra.Command{
		Use:   "list",
		Short: "List submissions with their review status",
		Run:   runListCommand, // Defined in cmd_list.go
	}

	healthCmd = &cobra.Command{
		Use:   "health",
		Short: "Check the co-pilot service and its dependencies",
		Run:   runHealthCommand, // Defined in cmd_health.go
	}

	ingestCmd = &cobra.Command{
		Use:   "ingest [csv-file]",
		Short: "Load a technology database CSV into the catalog",
		Args:  cobra.ExactArgs(1),
		Run:   runIngestCommand, // Defined in cmd_ingest.go
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "",
		"Co-pilot server URL (overrides config.yaml)")

	submitCmd.Flags().StringVar(&submitSector, "sector", "", "Industry sector of the challenge")
	submitCmd.Flags().Float64Var(&submitBaseline, "baseline", 0, "Emissions baseline in tCO2e/year")
	submitCmd.Flags().Float64Var(&submitReduction, "reduction", 0, "Target reduction percentage (0-100]")
	submitCmd.Flags().IntVar(&submitTimeline, "timeline", 0, "Timeline in months")
	submitCmd.Flags().StringVar(&submitBudget, "budget", "", "Budget range, free text")
	submitCmd.Flags().StringArrayVar(&submitConstraints, "constraint", nil,
		"Operational constraint (repeatable)")
	submitCmd.Flags().BoolVar(&submitJSONOutput, "json", false, "Output the full submission as JSON")

	statusCmd.Flags().BoolVarP(&statusWatch, "watch", "w", false,
		"Poll until the submission is reviewed")
	statusCmd.Flags().IntVar(&statusInterval, "interval", 5, "Polling interval in seconds")

	reviewCmd.Flags().BoolVar(&reviewApprove, "approve", false, "Approve the submission")
	reviewCmd.Flags().BoolVar(&reviewReject, "reject", false, "Reject the submission")
	reviewCmd.Flags().StringVar(&reviewFeedback, "feedback", "", "Reviewer feedback")

	listCmd.Flags().BoolVar(&listPending, "pending", false, "Only submissions awaiting review")
	listCmd.Flags().BoolVar(&listJSONOutput, "json", false, "Output as JSON for scripting")

	rootCmd.AddCommand(submitCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(reviewCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(ingestCmd)
}
