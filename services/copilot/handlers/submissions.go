// Copyright (C) 2026 NZTC Labs (engineering@nztclabs.io)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"

	"github.com/nztclabs/netzero-copilot/services/copilot/datatypes"
	"github.com/nztclabs/netzero-copilot/services/copilot/observability"
	"github.com/nztclabs/netzero-copilot/services/copilot/review"
	"github.com/nztclabs/netzero-copilot/services/copilot/store"
	"github.com/nztclabs/netzero-copilot/services/copilot/submission"
)

// observeReview records a review outcome. Unrecognized actions are folded
// into one label value to keep metric cardinality bounded.
func observeReview(metrics *observability.Metrics, action, status string) {
	if _, err := review.ParseAction(action); err != nil {
		action = "unknown"
	}
	metrics.ReviewActionsTotal.WithLabelValues(action, status).Inc()
}

// buildSubmissionList sorts submissions most recent first and tallies them
// by status.
func buildSubmissionList(subs []*datatypes.Submission) datatypes.SubmissionList {
	sort.Slice(subs, func(i, j int) bool {
		return subs[i].SubmittedAt.After(subs[j].SubmittedAt)
	})

	list := datatypes.SubmissionList{
		Total:       len(subs),
		Submissions: make([]datatypes.Submission, 0, len(subs)),
	}
	for _, sub := range subs {
		switch sub.Status {
		case review.StatusPending:
			list.Pending++
		case review.StatusApproved:
			list.Approved++
		case review.StatusRejected:
			list.Rejected++
		}
		list.Submissions = append(list.Submissions, *sub)
	}
	return list
}

// ListSubmissions returns every submission with a tally by status, most
// recent first.
func ListSubmissions(svc *submission.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		subs, err := svc.List(c.Request.Context())
		if err != nil {
			slog.Error("Failed to list submissions", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list submissions"})
			return
		}
		c.JSON(http.StatusOK, buildSubmissionList(subs))
	}
}

// ListPendingSubmissions is the reviewer's work queue: only submissions
// still awaiting a decision.
func ListPendingSubmissions(svc *submission.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		subs, err := svc.List(c.Request.Context())
		if err != nil {
			slog.Error("Failed to list submissions", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list submissions"})
			return
		}

		pending := subs[:0]
		for _, sub := range subs {
			if sub.Status == review.StatusPending {
				pending = append(pending, sub)
			}
		}
		c.JSON(http.StatusOK, buildSubmissionList(pending))
	}
}

// GetSubmission returns one submission by ID, or 404.
func GetSubmission(svc *submission.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		sub, err := svc.Get(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Submission not found: " + id})
				return
			}
			slog.Error("Failed to load submission", "submission_id", id, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load submission"})
			return
		}
		c.JSON(http.StatusOK, sub)
	}
}

// ReviewSubmission applies an approve or reject decision to a pending
// submission.
//
// An unknown action is 400 and never touches the store. An unknown
// submission is 404. A submission already decided is 409 and is not
// modified.
func ReviewSubmission(svc *submission.Service, metrics *observability.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var req datatypes.ReviewRequest
		if err := c.BindJSON(&req); err != nil {
			observeReview(metrics, req.Action, "invalid_action")
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
			return
		}

		sub, err := svc.Review(c.Request.Context(), id, req.Action, req.Feedback)
		if err != nil {
			status, label := reviewErrorStatus(err)
			observeReview(metrics, req.Action, label)
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}

		observeReview(metrics, req.Action, "success")
		slog.Info("Review recorded", "submission_id", id, "status", sub.Status)
		c.JSON(http.StatusOK, sub)
	}
}

func reviewErrorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, review.ErrInvalidAction):
		return http.StatusBadRequest, "invalid_action"
	case errors.Is(err, review.ErrInvalidTransition):
		return http.StatusConflict, "invalid_transition"
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound, "not_found"
	default:
		return http.StatusInternalServerError, "error"
	}
}
