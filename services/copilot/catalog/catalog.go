// Copyright (C) 2026 NZTC Labs (engineering@nztclabs.io)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package catalog fronts the Weaviate technology catalog: schema management,
// CSV ingestion with batch embedding, semantic search for a challenge, and
// the readiness signal that gates solution generation.
package catalog

import (
	"context"
	"crypto/sha256"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-openapi/strfmt"
	"github.com/google/uuid"
	"github.com/weaviate/weaviate-go-client/v5/weaviate"
	"github.com/weaviate/weaviate-go-client/v5/weaviate/graphql"
	"github.com/weaviate/weaviate/entities/models"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/nztclabs/netzero-copilot/services/copilot/datatypes"
)

var tracer = otel.Tracer("copilot.catalog")

// DefaultSearchLimit is how many technologies a generation request
// shortlists for the LLM.
const DefaultSearchLimit = 15

// Catalog is the technology catalog backed by Weaviate plus an embedding
// service. Safe for concurrent use; the Weaviate client pools connections.
type Catalog struct {
	client   *weaviate.Client
	embedder EmbeddingProvider
}

// New wires a catalog to a Weaviate client and an embedding provider.
func New(client *weaviate.Client, embedder EmbeddingProvider) *Catalog {
	return &Catalog{client: client, embedder: embedder}
}

// EnsureSchema creates the Technology class if missing. Fatal on failure,
// matching service startup semantics.
func (c *Catalog) EnsureSchema() {
	datatypes.EnsureWeaviateSchema(c.client)
}

// Ready reports whether the catalog can serve generation requests: Weaviate
// answers and at least one technology is indexed.
func (c *Catalog) Ready(ctx context.Context) bool {
	count, err := c.Count(ctx)
	return err == nil && count > 0
}

// Count returns the number of indexed technologies via an Aggregate
// meta-count.
func (c *Catalog) Count(ctx context.Context) (int64, error) {
	result, err := c.client.GraphQL().Aggregate().
		WithClassName(datatypes.TechnologyClassName).
		WithFields(graphql.Field{Name: "meta", Fields: []graphql.Field{{Name: "count"}}}).
		Do(ctx)
	if err != nil {
		return 0, fmt.Errorf("aggregate technology count: %w", err)
	}

	parsed, err := datatypes.ParseGraphQLResponse[datatypes.TechnologyAggregateResponse](result)
	if err != nil {
		return 0, fmt.Errorf("parse technology count: %w", err)
	}
	if len(parsed.Aggregate.Technology) == 0 {
		return 0, nil
	}
	return parsed.Aggregate.Technology[0].Meta.Count, nil
}

// Search returns the technologies most relevant to the challenge text,
// ranked by vector certainty.
func (c *Catalog) Search(ctx context.Context, query string, limit int) ([]datatypes.TechnologyMatch, error) {
	ctx, span := tracer.Start(ctx, "Catalog.Search")
	defer span.End()
	span.SetAttributes(attribute.Int("catalog.limit", limit))

	if limit <= 0 {
		limit = DefaultSearchLimit
	}

	vector, err := c.embedder.Embed(ctx, query)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("embed challenge text: %w", err)
	}

	nearVector := c.client.GraphQL().NearVectorArgBuilder().WithVector(vector)

	// Request certainty (always [0,1]) instead of distance, which varies
	// by metric.
	fields := []graphql.Field{
		{Name: "tech_id"},
		{Name: "title"},
		{Name: "provider"},
		{Name: "description"},
		{Name: "trl"},
		{Name: "category"},
		{Name: "sub_category"},
		{Name: "_additional", Fields: []graphql.Field{{Name: "certainty"}}},
	}

	result, err := c.client.GraphQL().Get().
		WithClassName(datatypes.TechnologyClassName).
		WithFields(fields...).
		WithNearVector(nearVector).
		WithLimit(limit).
		Do(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		slog.Error("Failed to search Technology class", "error", err)
		return nil, fmt.Errorf("weaviate search failed: %w", err)
	}

	parsed, err := datatypes.ParseGraphQLResponse[datatypes.TechnologyQueryResponse](result)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("parse search results: %w", err)
	}

	matches := technologyResultsToMatches(parsed.Get.Technology)
	span.SetAttributes(attribute.Int("catalog.matches", len(matches)))
	slog.Debug("Catalog search complete", "matches", len(matches))
	return matches, nil
}

// technologyResultsToMatches converts raw query rows to domain matches,
// mapping certainty to the relevance score.
func technologyResultsToMatches(rows []datatypes.TechnologyResult) []datatypes.TechnologyMatch {
	matches := make([]datatypes.TechnologyMatch, 0, len(rows))
	for _, row := range rows {
		matches = append(matches, datatypes.TechnologyMatch{
			TechID:         row.TechID,
			Title:          row.Title,
			Provider:       row.Provider,
			Description:    row.Description,
			TRL:            row.TRL,
			Category:       row.Category,
			SubCategory:    row.SubCategory,
			RelevanceScore: row.Additional.Certainty,
		})
	}
	return matches
}

// Ingest embeds and indexes technology records in one Weaviate batch,
// replacing records that share a tech_id (object IDs are derived from
// tech_id, so re-ingesting an updated catalog overwrites in place).
// Returns the number of records successfully indexed.
func (c *Catalog) Ingest(ctx context.Context, records []TechnologyRecord) (int, error) {
	ctx, span := tracer.Start(ctx, "Catalog.Ingest")
	defer span.End()
	span.SetAttributes(attribute.Int("catalog.records", len(records)))

	if len(records) == 0 {
		return 0, nil
	}

	texts := make([]string, len(records))
	for i, rec := range records {
		texts[i] = rec.DocumentText()
	}

	vectors, err := c.embedder.BatchEmbed(ctx, texts)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		slog.Error("Failed to get batch embeddings for catalog", "error", err)
		return 0, err
	}
	slog.Info("Generated catalog embeddings", "vector_count", len(vectors))

	now := time.Now().UnixMilli()
	objects := make([]*models.Object, len(records))
	for i, rec := range records {
		hash := sha256.Sum256([]byte(rec.TechID))
		objUUID, _ := uuid.FromBytes(hash[:16])

		objects[i] = &models.Object{
			Class:  datatypes.TechnologyClassName,
			ID:     strfmt.UUID(objUUID.String()),
			Vector: vectors[i],
			Properties: map[string]interface{}{
				"tech_id":      rec.TechID,
				"title":        rec.Title,
				"provider":     rec.Provider,
				"description":  rec.Description,
				"trl":          rec.TRL,
				"category":     rec.Category,
				"sub_category": rec.SubCategory,
				"ingested_at":  now,
			},
		}
	}

	resp, err := c.client.Batch().ObjectsBatcher().WithObjects(objects...).Do(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		slog.Error("Failed to perform batch import to Weaviate", "error", err)
		return 0, fmt.Errorf("failed to save technologies to Weaviate: %w", err)
	}

	indexed := 0
	for _, item := range resp {
		if item.Result != nil && item.Result.Status != nil && *item.Result.Status == "SUCCESS" {
			indexed++
			continue
		}
		if item.Result != nil && item.Result.Errors != nil && len(item.Result.Errors.Error) > 0 {
			for _, errItem := range item.Result.Errors.Error {
				slog.Warn("Error in Weaviate batch item", "error", errItem.Message)
			}
		} else {
			slog.Warn("Failed Weaviate batch item, no error provided")
		}
	}

	slog.Info("Catalog ingestion complete", "indexed", indexed, "submitted", len(records))
	return indexed, nil
}
