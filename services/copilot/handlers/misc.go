// Copyright (C) 2026 NZTC Labs (engineering@nztclabs.io)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nztclabs/netzero-copilot/services/llm"
)

// Root is a minimal liveness banner for humans poking the service.
func Root() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"service": "netzero-copilot",
			"status":  "running",
		})
	}
}

// HealthCheck reports whether the service's dependencies are reachable: the
// LLM backend (when it supports pinging) and the technology catalog.
//
// The endpoint itself always answers 200; degraded dependencies show up in
// the body so orchestration can decide what "healthy" means for it.
func HealthCheck(cat TechnologyCatalog, client llm.LLMClient) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		llmAvailable := false
		if pinger, ok := client.(llm.Pinger); ok {
			if err := pinger.Ping(ctx); err != nil {
				slog.Warn("LLM backend ping failed", "error", err)
			} else {
				llmAvailable = true
			}
		}

		var count int64
		databaseLoaded := false
		if n, err := cat.Count(ctx); err != nil {
			slog.Warn("Catalog count failed during health check", "error", err)
		} else {
			count = n
			databaseLoaded = n > 0
		}

		c.JSON(http.StatusOK, gin.H{
			"status":             "healthy",
			"llm_available":      llmAvailable,
			"database_loaded":    databaseLoaded,
			"technologies_count": count,
		})
	}
}

// DatabaseStatus reports the technology catalog's readiness in detail. A
// catalog that cannot be queried is a 502: the vector database is a hard
// dependency of generation.
func DatabaseStatus(cat TechnologyCatalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		count, err := cat.Count(c.Request.Context())
		if err != nil {
			slog.Error("Failed to query technology catalog", "error", err)
			c.JSON(http.StatusBadGateway, gin.H{"error": "Technology catalog is unreachable"})
			return
		}

		status := "ready"
		if count == 0 {
			status = "empty"
		}
		c.JSON(http.StatusOK, gin.H{
			"loaded":             count > 0,
			"technologies_count": count,
			"status":             status,
		})
	}
}
