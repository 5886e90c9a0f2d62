// Copyright (C) 2026 NZTC Labs (engineering@nztclabs.io)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package datatypes

import (
	"context"
	"log"
	"log/slog"

	"github.com/weaviate/weaviate-go-client/v5/weaviate"
	"github.com/weaviate/weaviate/entities/models"
)

// TechnologyClassName is the Weaviate class holding the technology catalog.
const TechnologyClassName = "Technology"

// GetTechnologySchema returns the class definition for catalogued net-zero
// technologies. Vectors are supplied at ingest time by the embedding
// service, so the class itself has no vectorizer.
func GetTechnologySchema() *models.Class {
	indexFilterable := new(bool)
	*indexFilterable = true

	return &models.Class{
		Class:       TechnologyClassName,
		Description: "A catalogued net-zero technology with provider and readiness metadata.",
		Vectorizer:  "none",
		Properties: []*models.Property{
			{
				Name:            "tech_id",
				DataType:        []string{"text"},
				Description:     "Stable catalog identifier for the technology.",
				IndexFilterable: indexFilterable,
				Tokenization:    "field",
			},
			{
				Name:        "title",
				DataType:    []string{"text"},
				Description: "The technology's name.",
			},
			{
				Name:            "provider",
				DataType:        []string{"text"},
				Description:     "The company or institution offering the technology.",
				IndexFilterable: indexFilterable,
				Tokenization:    "field",
			},
			{
				Name:        "description",
				DataType:    []string{"text"},
				Description: "What the technology does and how.",
			},
			{
				Name:            "trl",
				DataType:        []string{"int"},
				Description:     "Technology readiness level, 1-9.",
				IndexFilterable: indexFilterable,
			},
			{
				Name:            "category",
				DataType:        []string{"text"},
				Description:     "Top-level catalog category.",
				IndexFilterable: indexFilterable,
				Tokenization:    "field",
			},
			{
				Name:            "sub_category",
				DataType:        []string{"text"},
				Description:     "Second-level catalog category.",
				IndexFilterable: indexFilterable,
				Tokenization:    "field",
			},
			{
				Name:            "ingested_at",
				DataType:        []string{"number"},
				Description:     "Timestamp (Unix ms) of when the record was ingested.",
				IndexFilterable: indexFilterable,
			},
		},
	}
}

// EnsureWeaviateSchema creates the catalog classes that do not exist yet.
// Failing to create a missing class is fatal: the service cannot serve
// generation requests without the catalog schema.
func EnsureWeaviateSchema(client *weaviate.Client) {
	schemaGetters := []func() *models.Class{
		GetTechnologySchema,
	}

	for _, getSchema := range schemaGetters {
		class := getSchema()
		slog.Info("Checking schema", "class", class.Class)

		_, err := client.Schema().ClassGetter().WithClassName(class.Class).Do(context.Background())
		if err != nil {
			slog.Info("Schema not found, creating it...", "class", class.Class)
			err := client.Schema().ClassCreator().WithClass(class).Do(context.Background())
			if err != nil {
				log.Fatalf("Failed to create schema for class %s: %v", class.Class, err)
			}
			slog.Info("Successfully created schema", "class", class.Class)
		} else {
			slog.Info("Schema already exists", "class", class.Class)
		}
	}
}
