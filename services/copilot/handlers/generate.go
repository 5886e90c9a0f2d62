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
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nztclabs/netzero-copilot/services/copilot/catalog"
	"github.com/nztclabs/netzero-copilot/services/copilot/datatypes"
	"github.com/nztclabs/netzero-copilot/services/copilot/generation"
	"github.com/nztclabs/netzero-copilot/services/copilot/observability"
	"github.com/nztclabs/netzero-copilot/services/copilot/submission"
)

// GenerateSolutions runs the full generation pipeline: validate the
// challenge, search the catalog for relevant technologies, prompt the LLM,
// and persist the result as a pending submission.
//
// Error mapping: malformed or invalid input is 400; a catalog with no
// indexed technologies is 503; a failing catalog search is 502; generation
// timeout is 504; an unavailable or unparseable LLM is 502; a generation
// that yields no usable solutions is 422. Nothing is stored unless a
// submission is returned.
func GenerateSolutions(cat TechnologyCatalog, gen SolutionGenerator,
	svc *submission.Service, metrics *observability.Metrics) gin.HandlerFunc {

	return func(c *gin.Context) {
		ctx := c.Request.Context()
		start := time.Now()

		var challenge datatypes.ChallengeInput
		if err := c.BindJSON(&challenge); err != nil {
			metrics.GenerationRequestsTotal.WithLabelValues("validation_error").Inc()
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
			return
		}
		if err := svc.ValidateChallenge(challenge); err != nil {
			metrics.GenerationRequestsTotal.WithLabelValues("validation_error").Inc()
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if !cat.Ready(ctx) {
			metrics.GenerationRequestsTotal.WithLabelValues("error").Inc()
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error": "Technology database is not loaded. Ingest the technology catalog first.",
			})
			return
		}

		techs, err := cat.Search(ctx, challenge.ChallengeDescription, catalog.DefaultSearchLimit)
		if err != nil {
			slog.Error("Catalog search failed", "error", err)
			metrics.GenerationRequestsTotal.WithLabelValues("error").Inc()
			c.JSON(http.StatusBadGateway, gin.H{"error": "Technology search failed"})
			return
		}
		slog.Info("Retrieved technology shortlist", "count", len(techs))

		solutions, err := gen.Generate(ctx, challenge, techs)
		if err != nil {
			status, label := generationErrorStatus(err)
			metrics.GenerationRequestsTotal.WithLabelValues(label).Inc()
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}

		sub, err := svc.CreateFromGeneration(ctx, challenge, solutions)
		if err != nil {
			slog.Error("Failed to store submission", "error", err)
			metrics.GenerationRequestsTotal.WithLabelValues("error").Inc()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store submission"})
			return
		}

		elapsed := time.Since(start)
		metrics.GenerationRequestsTotal.WithLabelValues("success").Inc()
		metrics.GenerationDurationSeconds.Observe(elapsed.Seconds())
		metrics.SolutionsGeneratedTotal.Add(float64(len(sub.Solutions)))

		slog.Info("Generation request completed",
			"submission_id", sub.SubmissionID,
			"solutions", len(sub.Solutions),
			"duration", elapsed)

		c.JSON(http.StatusOK, datatypes.GenerateResponse{
			Submission:            *sub,
			TechnologiesAnalyzed:  len(techs),
			ProcessingTimeSeconds: elapsed.Seconds(),
		})
	}
}

func generationErrorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, generation.ErrTimeout):
		return http.StatusGatewayTimeout, "timeout"
	case errors.Is(err, generation.ErrEmptyResult):
		return http.StatusUnprocessableEntity, "empty_result"
	case errors.Is(err, generation.ErrUnavailable):
		return http.StatusBadGateway, "unavailable"
	default:
		return http.StatusInternalServerError, "error"
	}
}
