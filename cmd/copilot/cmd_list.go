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
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/nztclabs/netzero-copilot/pkg/syncclient"
)

// runListCommand prints a submission table, most recent first.
func runListCommand(cmd *cobra.Command, args []string) {
	client := syncclient.New(config.Server.URL)
	list, err := client.Submissions(context.Background(), listPending)
	if err != nil {
		log.Fatalf("Could not list submissions: %v", err)
	}

	if listJSONOutput {
		data, _ := json.MarshalIndent(list, "", "  ")
		fmt.Println(string(data))
		return
	}

	fmt.Printf("%d submissions (%d pending, %d approved, %d rejected)\n\n",
		list.Total, list.Pending, list.Approved, list.Rejected)

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSTATUS\tSOLUTIONS\tSUBMITTED\tCHALLENGE")
	for _, sub := range list.Submissions {
		desc := sub.Challenge.ChallengeDescription
		if len(desc) > 60 {
			desc = desc[:57] + "..."
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\n",
			sub.SubmissionID, sub.Status, len(sub.Solutions),
			sub.SubmittedAt.Local().Format(time.DateTime), desc)
	}
	_ = w.Flush()
}
