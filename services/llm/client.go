// Copyright (C) 2026 NZTC Labs (engineering@nztclabs.io)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package llm provides the pluggable LLM backends used by the solution
// generation engine. The backend is selected at startup via
// LLM_BACKEND_TYPE; all backends satisfy LLMClient.
package llm

import "context"

// GenerationParams are the sampling knobs passed through to a backend.
// Nil fields fall back to backend defaults.
type GenerationParams struct {
	Temperature *float32 `json:"temperature"`
	TopK        *int     `json:"top_k"`
	TopP        *float32 `json:"top_p"`
	MaxTokens   *int     `json:"max_tokens"`
	Stop        []string `json:"stop"`
}

// LLMClient defines the standard interface for any LLM backend.
//
// Generate is a single blocking request/response call; it must respect
// cancellation and deadlines on ctx since generation can take minutes.
type LLMClient interface {
	Generate(ctx context.Context, prompt string, params GenerationParams) (string, error)
}

// Pinger is implemented by backends that can cheaply report reachability.
// The health endpoint uses it when available.
type Pinger interface {
	Ping(ctx context.Context) error
}
