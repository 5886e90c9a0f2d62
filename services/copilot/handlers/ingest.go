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

	"github.com/nztclabs/netzero-copilot/services/copilot/catalog"
)

// IngestTechnologies loads a CSV export of the technology database into the
// catalog. The request body is the raw CSV; rows for technologies that no
// longer exist are filtered out during parsing.
//
// Re-ingesting is safe: object IDs are derived from tech IDs, so an
// unchanged row overwrites itself rather than duplicating.
func IngestTechnologies(cat TechnologyCatalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		records, err := catalog.ParseTechnologyCSV(c.Request.Body)
		if err != nil {
			slog.Error("Failed to parse technology CSV", "error", err)
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid CSV: " + err.Error()})
			return
		}
		if len(records) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "CSV contains no usable technology rows"})
			return
		}

		indexed, err := cat.Ingest(c.Request.Context(), records)
		if err != nil {
			slog.Error("Technology ingestion failed", "error", err)
			c.JSON(http.StatusBadGateway, gin.H{"error": "Ingestion failed: " + err.Error()})
			return
		}

		slog.Info("Technology catalog ingested", "parsed", len(records), "indexed", indexed)
		c.JSON(http.StatusCreated, gin.H{
			"status":               "success",
			"technologies_parsed":  len(records),
			"technologies_indexed": indexed,
		})
	}
}
