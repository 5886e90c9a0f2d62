// Copyright (C) 2026 NZTC Labs (engineering@nztclabs.io)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package routes

import (
	"context"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/nztclabs/netzero-copilot/services/copilot/catalog"
	"github.com/nztclabs/netzero-copilot/services/copilot/datatypes"
	"github.com/nztclabs/netzero-copilot/services/copilot/observability"
	"github.com/nztclabs/netzero-copilot/services/copilot/store"
	"github.com/nztclabs/netzero-copilot/services/copilot/submission"
	"github.com/nztclabs/netzero-copilot/services/llm"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type mockCatalog struct{}

func (m *mockCatalog) Ready(_ context.Context) bool            { return true }
func (m *mockCatalog) Count(_ context.Context) (int64, error)  { return 0, nil }
func (m *mockCatalog) Search(_ context.Context, _ string, _ int) ([]datatypes.TechnologyMatch, error) {
	return nil, nil
}
func (m *mockCatalog) Ingest(_ context.Context, _ []catalog.TechnologyRecord) (int, error) {
	return 0, nil
}

type mockGenerator struct{}

func (m *mockGenerator) Generate(_ context.Context, _ datatypes.ChallengeInput,
	_ []datatypes.TechnologyMatch) ([]datatypes.Solution, error) {
	return nil, nil
}

type mockLLMClient struct{}

func (m *mockLLMClient) Generate(_ context.Context, _ string, _ llm.GenerationParams) (string, error) {
	return "mock response", nil
}

func TestSetupRoutes_RegistersFullSurface(t *testing.T) {
	router := gin.New()
	st, err := store.Open(store.InMemoryConfig())
	require.NoError(t, err)
	defer st.Close()

	SetupRoutes(router, &mockCatalog{}, &mockGenerator{}, submission.NewService(st),
		&mockLLMClient{}, observability.NewMetrics(prometheus.NewRegistry()))

	expected := []struct {
		method string
		path   string
	}{
		{"GET", "/"},
		{"GET", "/health"},
		{"GET", "/metrics"},
		{"GET", "/v1/database-status"},
		{"POST", "/v1/solutions/generate"},
		{"POST", "/v1/technologies/ingest"},
		{"GET", "/v1/submissions"},
		{"GET", "/v1/submissions/pending"},
		{"GET", "/v1/submissions/:id"},
		{"POST", "/v1/submissions/:id/review"},
	}

	routes := router.Routes()
	for _, want := range expected {
		found := false
		for _, r := range routes {
			if r.Method == want.method && r.Path == want.path {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("Expected route %s %s not found", want.method, want.path)
		}
	}
}
