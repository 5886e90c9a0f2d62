// Copyright (C) 2026 NZTC Labs (engineering@nztclabs.io)
// Shared fixtures for handler tests

package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"os"
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

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// stubCatalog satisfies TechnologyCatalog without a Weaviate instance.
type stubCatalog struct {
	ready     bool
	count     int64
	countErr  error
	matches   []datatypes.TechnologyMatch
	searchErr error
	lastQuery string
	ingested  int
	ingestErr error
}

func (s *stubCatalog) Ready(ctx context.Context) bool { return s.ready }

func (s *stubCatalog) Count(ctx context.Context) (int64, error) {
	return s.count, s.countErr
}

func (s *stubCatalog) Search(ctx context.Context, query string, limit int) ([]datatypes.TechnologyMatch, error) {
	s.lastQuery = query
	return s.matches, s.searchErr
}

func (s *stubCatalog) Ingest(ctx context.Context, records []catalog.TechnologyRecord) (int, error) {
	if s.ingestErr != nil {
		return 0, s.ingestErr
	}
	s.ingested += len(records)
	return len(records), nil
}

// stubGenerator satisfies SolutionGenerator without an LLM backend.
type stubGenerator struct {
	solutions []datatypes.Solution
	err       error
}

func (s *stubGenerator) Generate(ctx context.Context, challenge datatypes.ChallengeInput,
	techs []datatypes.TechnologyMatch) ([]datatypes.Solution, error) {
	return s.solutions, s.err
}

// stubLLM implements llm.LLMClient and llm.Pinger for health checks.
type stubLLM struct {
	pingErr error
}

func (s *stubLLM) Generate(ctx context.Context, prompt string, params llm.GenerationParams) (string, error) {
	return "", nil
}

func (s *stubLLM) Ping(ctx context.Context) error { return s.pingErr }

func newTestService(t *testing.T) *submission.Service {
	t.Helper()
	st, err := store.Open(store.InMemoryConfig())
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	return submission.NewService(st)
}

func newTestMetrics() *observability.Metrics {
	return observability.NewMetrics(prometheus.NewRegistry())
}

func testMatches() []datatypes.TechnologyMatch {
	return []datatypes.TechnologyMatch{
		{TechID: "tech_0", Title: "Methane Capture Skid", Provider: "CapCo", TRL: 8, RelevanceScore: 0.91},
		{TechID: "tech_1", Title: "Electric Drilling Rig", Provider: "VoltDrill", TRL: 7, RelevanceScore: 0.84},
	}
}

func testSolutions() []datatypes.Solution {
	matches := testMatches()
	matches[0].Reasoning = "Captures vented methane at source"
	return []datatypes.Solution{
		{
			SolutionID:   1,
			Title:        "Methane Capture Retrofit",
			Technologies: matches[:1],
			Description:  "Retrofit capture skids on high-emitting wellheads",
			Feasibility:  datatypes.FeasibilityHigh,
		},
	}
}

// perform runs one request against a handler registered on a fresh router.
func perform(method, path string, body any, register func(*gin.Engine)) *httptest.ResponseRecorder {
	router := gin.New()
	register(router)

	var reader *bytes.Reader
	if raw, ok := body.([]byte); ok {
		reader = bytes.NewReader(raw)
	} else if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}
