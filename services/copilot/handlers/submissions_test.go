// Copyright (C) 2026 NZTC Labs (engineering@nztclabs.io)
// Tests for the submission listing and review endpoints

package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nztclabs/netzero-copilot/services/copilot/datatypes"
	"github.com/nztclabs/netzero-copilot/services/copilot/review"
	"github.com/nztclabs/netzero-copilot/services/copilot/submission"
)

func seedSubmission(t *testing.T, svc *submission.Service, description string) *datatypes.Submission {
	t.Helper()
	sub, err := svc.CreateFromGeneration(context.Background(),
		datatypes.ChallengeInput{ChallengeDescription: description}, testSolutions())
	require.NoError(t, err)
	return sub
}

func submissionRoutes(svc *submission.Service) func(*gin.Engine) {
	return func(r *gin.Engine) {
		r.GET("/v1/submissions", ListSubmissions(svc))
		r.GET("/v1/submissions/pending", ListPendingSubmissions(svc))
		r.GET("/v1/submissions/:id", GetSubmission(svc))
		r.POST("/v1/submissions/:id/review", ReviewSubmission(svc, newTestMetrics()))
	}
}

func TestListSubmissions_TalliesAndOrder(t *testing.T) {
	svc := newTestService(t)
	first := seedSubmission(t, svc, "first challenge")
	second := seedSubmission(t, svc, "second challenge")
	_, err := svc.Review(context.Background(), first.SubmissionID, "approve", "solid")
	require.NoError(t, err)

	w := perform(http.MethodGet, "/v1/submissions", nil, submissionRoutes(svc))
	require.Equal(t, http.StatusOK, w.Code)

	list := decodeBody[datatypes.SubmissionList](t, w)
	assert.Equal(t, 2, list.Total)
	assert.Equal(t, 1, list.Pending)
	assert.Equal(t, 1, list.Approved)
	assert.Equal(t, 0, list.Rejected)
	require.Len(t, list.Submissions, 2)
	// Most recent first.
	assert.Equal(t, second.SubmissionID, list.Submissions[0].SubmissionID)
}

func TestListSubmissions_Empty(t *testing.T) {
	w := perform(http.MethodGet, "/v1/submissions", nil, submissionRoutes(newTestService(t)))
	require.Equal(t, http.StatusOK, w.Code)
	list := decodeBody[datatypes.SubmissionList](t, w)
	assert.Zero(t, list.Total)
	assert.Empty(t, list.Submissions)
}

func TestListPendingSubmissions_FiltersDecided(t *testing.T) {
	svc := newTestService(t)
	decided := seedSubmission(t, svc, "decided challenge")
	pending := seedSubmission(t, svc, "open challenge")
	_, err := svc.Review(context.Background(), decided.SubmissionID, "reject", "not viable")
	require.NoError(t, err)

	w := perform(http.MethodGet, "/v1/submissions/pending", nil, submissionRoutes(svc))
	require.Equal(t, http.StatusOK, w.Code)

	list := decodeBody[datatypes.SubmissionList](t, w)
	require.Len(t, list.Submissions, 1)
	assert.Equal(t, pending.SubmissionID, list.Submissions[0].SubmissionID)
	assert.Equal(t, 1, list.Total)
	assert.Equal(t, 1, list.Pending)
	assert.Zero(t, list.Rejected, "tally covers the filtered view only")
}

func TestGetSubmission(t *testing.T) {
	svc := newTestService(t)
	sub := seedSubmission(t, svc, "lookup challenge")

	w := perform(http.MethodGet, "/v1/submissions/"+sub.SubmissionID, nil, submissionRoutes(svc))
	require.Equal(t, http.StatusOK, w.Code)
	got := decodeBody[datatypes.Submission](t, w)
	assert.Equal(t, sub.SubmissionID, got.SubmissionID)
	assert.Equal(t, "lookup challenge", got.Challenge.ChallengeDescription)
}

func TestGetSubmission_NotFound(t *testing.T) {
	w := perform(http.MethodGet, "/v1/submissions/no-such-id", nil, submissionRoutes(newTestService(t)))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestReviewSubmission_Approve(t *testing.T) {
	svc := newTestService(t)
	sub := seedSubmission(t, svc, "review challenge")

	w := perform(http.MethodPost, "/v1/submissions/"+sub.SubmissionID+"/review",
		datatypes.ReviewRequest{Action: "approve", Feedback: "great fit"},
		submissionRoutes(svc))

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	got := decodeBody[datatypes.Submission](t, w)
	assert.Equal(t, review.StatusApproved, got.Status)
	assert.Equal(t, "great fit", got.Feedback)
	require.NotNil(t, got.ReviewedAt)
}

func TestReviewSubmission_InvalidAction(t *testing.T) {
	svc := newTestService(t)
	sub := seedSubmission(t, svc, "review challenge")

	w := perform(http.MethodPost, "/v1/submissions/"+sub.SubmissionID+"/review",
		datatypes.ReviewRequest{Action: "delete"}, submissionRoutes(svc))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	stored, err := svc.Get(context.Background(), sub.SubmissionID)
	require.NoError(t, err)
	assert.Equal(t, review.StatusPending, stored.Status)
}

func TestReviewSubmission_AlreadyDecided(t *testing.T) {
	svc := newTestService(t)
	sub := seedSubmission(t, svc, "review challenge")
	_, err := svc.Review(context.Background(), sub.SubmissionID, "approve", "")
	require.NoError(t, err)

	w := perform(http.MethodPost, "/v1/submissions/"+sub.SubmissionID+"/review",
		datatypes.ReviewRequest{Action: "reject", Feedback: "changed my mind"},
		submissionRoutes(svc))
	assert.Equal(t, http.StatusConflict, w.Code)

	stored, err := svc.Get(context.Background(), sub.SubmissionID)
	require.NoError(t, err)
	assert.Equal(t, review.StatusApproved, stored.Status)
	assert.Empty(t, stored.Feedback)
}

func TestReviewSubmission_UnknownID(t *testing.T) {
	w := perform(http.MethodPost, "/v1/submissions/ghost/review",
		datatypes.ReviewRequest{Action: "approve"}, submissionRoutes(newTestService(t)))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestReviewSubmission_MissingAction(t *testing.T) {
	svc := newTestService(t)
	sub := seedSubmission(t, svc, "review challenge")

	w := perform(http.MethodPost, "/v1/submissions/"+sub.SubmissionID+"/review",
		map[string]any{"feedback": "no action given"}, submissionRoutes(svc))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
