// Copyright (C) 2026 NZTC Labs (engineering@nztclabs.io)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package syncclient is a Go client for the co-pilot HTTP API. It is used by
// the CLI and by anyone embedding the co-pilot in their own tooling.
package syncclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/nztclabs/netzero-copilot/services/copilot/datatypes"
	"github.com/nztclabs/netzero-copilot/services/copilot/review"
)

// APIError carries the status code and error message of a failed API call,
// so callers can distinguish "not found" from "already reviewed".
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("co-pilot API returned %d: %s", e.StatusCode, e.Message)
}

// HealthStatus is the service's self-reported dependency health.
type HealthStatus struct {
	Status            string `json:"status"`
	LLMAvailable      bool   `json:"llm_available"`
	DatabaseLoaded    bool   `json:"database_loaded"`
	TechnologiesCount int64  `json:"technologies_count"`
}

// Client talks to one co-pilot instance. Zero value is not usable; construct
// with New.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New builds a client for the service at baseURL. Generation can run for
// minutes, so the underlying HTTP client carries a generous timeout;
// per-call deadlines belong in the caller's context.
func New(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: 5 * time.Minute},
	}
}

func (c *Client) do(ctx context.Context, method, path string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("call %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response from %s: %w", path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: string(raw)}
		var wire struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(raw, &wire) == nil && wire.Error != "" {
			apiErr.Message = wire.Error
		}
		return apiErr
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("decode response from %s: %w", path, err)
		}
	}
	return nil
}

// Health fetches the service's dependency health.
func (c *Client) Health(ctx context.Context) (*HealthStatus, error) {
	var status HealthStatus
	if err := c.do(ctx, http.MethodGet, "/health", nil, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// Generate submits a challenge and blocks until the service returns a
// pending submission or an error. Expect this to take minutes with local
// models.
func (c *Client) Generate(ctx context.Context, challenge datatypes.ChallengeInput) (*datatypes.GenerateResponse, error) {
	var resp datatypes.GenerateResponse
	if err := c.do(ctx, http.MethodPost, "/v1/solutions/generate", challenge, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Submissions lists all submissions, or only pending ones.
func (c *Client) Submissions(ctx context.Context, pendingOnly bool) (*datatypes.SubmissionList, error) {
	path := "/v1/submissions"
	if pendingOnly {
		path += "/pending"
	}
	var list datatypes.SubmissionList
	if err := c.do(ctx, http.MethodGet, path, nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// Submission fetches one submission by ID.
func (c *Client) Submission(ctx context.Context, id string) (*datatypes.Submission, error) {
	var sub datatypes.Submission
	if err := c.do(ctx, http.MethodGet, "/v1/submissions/"+id, nil, &sub); err != nil {
		return nil, err
	}
	return &sub, nil
}

// Review applies an approve or reject decision to a submission.
func (c *Client) Review(ctx context.Context, id, action, feedback string) (*datatypes.Submission, error) {
	var sub datatypes.Submission
	req := datatypes.ReviewRequest{Action: action, Feedback: feedback}
	if err := c.do(ctx, http.MethodPost, "/v1/submissions/"+id+"/review", req, &sub); err != nil {
		return nil, err
	}
	return &sub, nil
}

// IngestResult summarizes a catalog ingestion.
type IngestResult struct {
	Status  string `json:"status"`
	Parsed  int    `json:"technologies_parsed"`
	Indexed int    `json:"technologies_indexed"`
}

// IngestCSV streams a technology database CSV into the catalog.
func (c *Client) IngestCSV(ctx context.Context, csv io.Reader) (*IngestResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/v1/technologies/ingest", csv)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "text/csv")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call ingest: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read ingest response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: string(raw)}
		var wire struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(raw, &wire) == nil && wire.Error != "" {
			apiErr.Message = wire.Error
		}
		return nil, apiErr
	}

	var result IngestResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("decode ingest response: %w", err)
	}
	return &result, nil
}

// Watch polls a submission until it leaves the pending state, then returns
// its final form. Each observed state is passed to fn (nil fn is allowed).
// Returns ctx.Err() if cancelled first.
func (c *Client) Watch(ctx context.Context, id string, interval time.Duration,
	fn func(*datatypes.Submission)) (*datatypes.Submission, error) {

	if interval <= 0 {
		interval = 5 * time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		sub, err := c.Submission(ctx, id)
		if err != nil {
			return nil, err
		}
		if fn != nil {
			fn(sub)
		}
		if sub.Status != review.StatusPending {
			return sub, nil
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}
}
