// Copyright (C) 2026 NZTC Labs (engineering@nztclabs.io)
// Tests for the solution generation endpoint

package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nztclabs/netzero-copilot/services/copilot/datatypes"
	"github.com/nztclabs/netzero-copilot/services/copilot/generation"
	"github.com/nztclabs/netzero-copilot/services/copilot/review"
)

func TestGenerateSolutions_Success(t *testing.T) {
	cat := &stubCatalog{ready: true, matches: testMatches()}
	gen := &stubGenerator{solutions: testSolutions()}
	svc := newTestService(t)

	w := perform(http.MethodPost, "/v1/solutions/generate",
		datatypes.ChallengeInput{ChallengeDescription: "Cut methane venting on offshore platforms"},
		func(r *gin.Engine) {
			r.POST("/v1/solutions/generate", GenerateSolutions(cat, gen, svc, newTestMetrics()))
		})

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	resp := decodeBody[datatypes.GenerateResponse](t, w)
	assert.Equal(t, 2, resp.TechnologiesAnalyzed)
	assert.Equal(t, review.StatusPending, resp.Submission.Status)
	assert.NotEmpty(t, resp.Submission.SubmissionID)
	require.Len(t, resp.Submission.Solutions, 1)
	assert.Equal(t, "Methane Capture Retrofit", resp.Submission.Solutions[0].Title)
	assert.Equal(t, "Cut methane venting on offshore platforms", cat.lastQuery)

	// The submission is persisted and retrievable.
	stored, err := svc.Get(context.Background(), resp.Submission.SubmissionID)
	require.NoError(t, err)
	assert.Equal(t, review.StatusPending, stored.Status)
}

func TestGenerateSolutions_MissingDescription(t *testing.T) {
	cat := &stubCatalog{ready: true}
	w := perform(http.MethodPost, "/v1/solutions/generate",
		map[string]any{"industry_sector": "Oil & Gas"},
		func(r *gin.Engine) {
			r.POST("/v1/solutions/generate", GenerateSolutions(cat, &stubGenerator{}, newTestService(t), newTestMetrics()))
		})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, cat.lastQuery, "catalog must not be searched for invalid input")
}

func TestGenerateSolutions_OutOfRangeContext(t *testing.T) {
	reduction := 150.0
	w := perform(http.MethodPost, "/v1/solutions/generate",
		datatypes.ChallengeInput{
			ChallengeDescription: "Cut flaring",
			TargetReduction:      &reduction,
		},
		func(r *gin.Engine) {
			r.POST("/v1/solutions/generate", GenerateSolutions(&stubCatalog{ready: true}, &stubGenerator{}, newTestService(t), newTestMetrics()))
		})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGenerateSolutions_CatalogNotReady(t *testing.T) {
	w := perform(http.MethodPost, "/v1/solutions/generate",
		datatypes.ChallengeInput{ChallengeDescription: "Cut flaring"},
		func(r *gin.Engine) {
			r.POST("/v1/solutions/generate", GenerateSolutions(&stubCatalog{ready: false}, &stubGenerator{}, newTestService(t), newTestMetrics()))
		})
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestGenerateSolutions_SearchFailure(t *testing.T) {
	cat := &stubCatalog{ready: true, searchErr: assert.AnError}
	w := perform(http.MethodPost, "/v1/solutions/generate",
		datatypes.ChallengeInput{ChallengeDescription: "Cut flaring"},
		func(r *gin.Engine) {
			r.POST("/v1/solutions/generate", GenerateSolutions(cat, &stubGenerator{}, newTestService(t), newTestMetrics()))
		})
	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestGenerateSolutions_GenerationErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"timeout", generation.ErrTimeout, http.StatusGatewayTimeout},
		{"unavailable", generation.ErrUnavailable, http.StatusBadGateway},
		{"empty result", generation.ErrEmptyResult, http.StatusUnprocessableEntity},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := newTestService(t)
			w := perform(http.MethodPost, "/v1/solutions/generate",
				datatypes.ChallengeInput{ChallengeDescription: "Cut flaring"},
				func(r *gin.Engine) {
					r.POST("/v1/solutions/generate", GenerateSolutions(
						&stubCatalog{ready: true, matches: testMatches()},
						&stubGenerator{err: tc.err}, svc, newTestMetrics()))
				})
			assert.Equal(t, tc.want, w.Code)

			// Failed generations leave nothing behind.
			subs, err := svc.List(context.Background())
			require.NoError(t, err)
			assert.Empty(t, subs)
		})
	}
}

func TestGenerateSolutions_InvalidJSONBody(t *testing.T) {
	w := perform(http.MethodPost, "/v1/solutions/generate", []byte("{not json"),
		func(r *gin.Engine) {
			r.POST("/v1/solutions/generate", GenerateSolutions(&stubCatalog{ready: true}, &stubGenerator{}, newTestService(t), newTestMetrics()))
		})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
