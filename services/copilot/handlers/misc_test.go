// Copyright (C) 2026 NZTC Labs (engineering@nztclabs.io)
// Tests for health and catalog status endpoints

package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthCheck_AllUp(t *testing.T) {
	cat := &stubCatalog{ready: true, count: 42}
	w := perform(http.MethodGet, "/health", nil, func(r *gin.Engine) {
		r.GET("/health", HealthCheck(cat, &stubLLM{}))
	})

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody[map[string]any](t, w)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, true, body["llm_available"])
	assert.Equal(t, true, body["database_loaded"])
	assert.EqualValues(t, 42, body["technologies_count"])
}

func TestHealthCheck_DegradedDependencies(t *testing.T) {
	cat := &stubCatalog{countErr: assert.AnError}
	w := perform(http.MethodGet, "/health", nil, func(r *gin.Engine) {
		r.GET("/health", HealthCheck(cat, &stubLLM{pingErr: assert.AnError}))
	})

	// Degraded dependencies are reported in the body, not the status code.
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody[map[string]any](t, w)
	assert.Equal(t, false, body["llm_available"])
	assert.Equal(t, false, body["database_loaded"])
}

func TestDatabaseStatus_Ready(t *testing.T) {
	w := perform(http.MethodGet, "/v1/database-status", nil, func(r *gin.Engine) {
		r.GET("/v1/database-status", DatabaseStatus(&stubCatalog{count: 7}))
	})
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody[map[string]any](t, w)
	assert.Equal(t, "ready", body["status"])
	assert.Equal(t, true, body["loaded"])
}

func TestDatabaseStatus_Empty(t *testing.T) {
	w := perform(http.MethodGet, "/v1/database-status", nil, func(r *gin.Engine) {
		r.GET("/v1/database-status", DatabaseStatus(&stubCatalog{count: 0}))
	})
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody[map[string]any](t, w)
	assert.Equal(t, "empty", body["status"])
	assert.Equal(t, false, body["loaded"])
}

func TestDatabaseStatus_Unreachable(t *testing.T) {
	w := perform(http.MethodGet, "/v1/database-status", nil, func(r *gin.Engine) {
		r.GET("/v1/database-status", DatabaseStatus(&stubCatalog{countErr: assert.AnError}))
	})
	assert.Equal(t, http.StatusBadGateway, w.Code)
}
