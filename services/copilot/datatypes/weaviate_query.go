// Copyright (C) 2026 NZTC Labs (engineering@nztclabs.io)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package datatypes

import (
	"encoding/json"
	"fmt"

	"github.com/weaviate/weaviate/entities/models"
)

// ParseGraphQLResponse parses a Weaviate GraphQL response into the target
// type. It encapsulates the marshal/unmarshal pattern required to convert
// Weaviate's dynamic response (map[string]models.JSONObject) into a
// strongly-typed struct; T must carry json tags matching the response shape.
// Type mismatches yield zero values, not errors.
func ParseGraphQLResponse[T any](resp *models.GraphQLResponse) (*T, error) {
	if resp == nil {
		return nil, fmt.Errorf("nil GraphQL response")
	}

	respBytes, err := json.Marshal(resp.Data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal GraphQL response data: %w", err)
	}

	var result T
	if err := json.Unmarshal(respBytes, &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal into target type: %w", err)
	}

	return &result, nil
}

// TechnologyQueryResponse is the shape of a Get query against the
// Technology class.
type TechnologyQueryResponse struct {
	Get struct {
		Technology []TechnologyResult `json:"Technology"`
	} `json:"Get"`
}

// TechnologyResult is a single technology row from a catalog query.
// Certainty is only present on vector searches.
type TechnologyResult struct {
	TechID      string `json:"tech_id"`
	Title       string `json:"title"`
	Provider    string `json:"provider"`
	Description string `json:"description"`
	TRL         int    `json:"trl"`
	Category    string `json:"category"`
	SubCategory string `json:"sub_category"`
	Additional  struct {
		ID        string  `json:"id"`
		Certainty float64 `json:"certainty"`
	} `json:"_additional"`
}

// TechnologyAggregateResponse is the shape of an Aggregate meta-count query
// against the Technology class.
type TechnologyAggregateResponse struct {
	Aggregate struct {
		Technology []struct {
			Meta struct {
				Count int64 `json:"count"`
			} `json:"meta"`
		} `json:"Technology"`
	} `json:"Aggregate"`
}
