// Copyright (C) 2026 NZTC Labs (engineering@nztclabs.io)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/nztclabs/netzero-copilot/services/copilot/handlers"
	"github.com/nztclabs/netzero-copilot/services/copilot/observability"
	"github.com/nztclabs/netzero-copilot/services/copilot/submission"
	"github.com/nztclabs/netzero-copilot/services/llm"
)

// SetupRoutes registers the full co-pilot API surface on the router.
func SetupRoutes(router *gin.Engine, cat handlers.TechnologyCatalog, gen handlers.SolutionGenerator,
	svc *submission.Service, llmClient llm.LLMClient, metrics *observability.Metrics) {

	router.GET("/", handlers.Root())
	router.GET("/health", handlers.HealthCheck(cat, llmClient))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API version 1 group
	v1 := router.Group("/v1")
	{
		v1.GET("/database-status", handlers.DatabaseStatus(cat))
		v1.POST("/solutions/generate", handlers.GenerateSolutions(cat, gen, svc, metrics))
		v1.POST("/technologies/ingest", handlers.IngestTechnologies(cat))

		submissions := v1.Group("/submissions")
		{
			submissions.GET("", handlers.ListSubmissions(svc))
			submissions.GET("/pending", handlers.ListPendingSubmissions(svc))
			submissions.GET("/:id", handlers.GetSubmission(svc))
			submissions.POST("/:id/review", handlers.ReviewSubmission(svc, metrics))
		}
	}
}
