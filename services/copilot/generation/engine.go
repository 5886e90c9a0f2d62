// Copyright (C) 2026 NZTC Labs (engineering@nztclabs.io)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package generation turns a challenge plus a technology shortlist into
// candidate solutions by prompting an LLM backend and parsing its output.
//
// The engine is the only long-running call in the request path, so it owns
// the generation timeout: the caller sees ErrTimeout rather than blocking
// indefinitely, and a cancelled generation produces nothing to persist.
package generation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/nztclabs/netzero-copilot/services/copilot/datatypes"
	"github.com/nztclabs/netzero-copilot/services/llm"
)

var tracer = otel.Tracer("copilot.generation")

var (
	// ErrTimeout is returned when the LLM backend does not answer within
	// the engine's configured timeout.
	ErrTimeout = errors.New("solution generation timed out")

	// ErrUnavailable is returned when the LLM backend fails or returns
	// output the engine cannot parse. The caller may retry unchanged input.
	ErrUnavailable = errors.New("solution generation unavailable")

	// ErrEmptyResult is returned when generation completes but yields no
	// usable solutions. A batch with zero solutions is not a submission.
	ErrEmptyResult = errors.New("generation produced no solutions")
)

// DefaultTimeout bounds one generation call. Local models on modest
// hardware routinely take over a minute for three solutions.
const DefaultTimeout = 3 * time.Minute

// llmSolution mirrors the JSON shape the prompt instructs the model to emit.
type llmSolution struct {
	SolutionID                int               `json:"solution_id"`
	Title                     string            `json:"title"`
	TechnologyIDs             []string          `json:"technology_ids"`
	Description               string            `json:"description"`
	HowItWorks                string            `json:"how_it_works"`
	TechnologyRoles           map[string]string `json:"technology_roles"`
	Benefits                  []string          `json:"benefits"`
	IntegrationConsiderations []string          `json:"integration_considerations"`
	Feasibility               string            `json:"feasibility"`
	TimelineEstimate          string            `json:"timeline_estimate"`
	EstimatedCostRange        string            `json:"estimated_cost_range"`
}

type llmOutput struct {
	Solutions []llmSolution `json:"solutions"`
}

// Engine generates solution batches through an LLM backend.
type Engine struct {
	client  llm.LLMClient
	timeout time.Duration
}

// NewEngine wires an engine to a backend. A non-positive timeout falls back
// to DefaultTimeout.
func NewEngine(client llm.LLMClient, timeout time.Duration) *Engine {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Engine{client: client, timeout: timeout}
}

// Generate produces candidate solutions for the challenge from the retrieved
// technology shortlist.
//
// The call blocks until the backend answers, the engine timeout elapses
// (ErrTimeout), or ctx is cancelled. Solutions referencing unknown
// technology IDs keep only the resolvable ones; a solution with none is
// dropped. Zero surviving solutions is ErrEmptyResult.
func (e *Engine) Generate(ctx context.Context, challenge datatypes.ChallengeInput,
	techs []datatypes.TechnologyMatch) ([]datatypes.Solution, error) {

	ctx, span := tracer.Start(ctx, "Engine.Generate")
	defer span.End()
	span.SetAttributes(attribute.Int("generation.technologies", len(techs)))

	if len(techs) == 0 {
		span.SetStatus(codes.Error, "no technologies to combine")
		return nil, fmt.Errorf("%w: no relevant technologies found", ErrEmptyResult)
	}

	prompt, validIDs := buildPrompt(challenge, techs)
	slog.Debug("Built generation prompt", "prompt_chars", len(prompt), "valid_ids", len(validIDs))

	genCtx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	temperature := float32(0.7)
	topP := float32(0.9)
	maxTokens := 3072
	raw, err := e.client.Generate(genCtx, prompt, llm.GenerationParams{
		Temperature: &temperature,
		TopP:        &topP,
		MaxTokens:   &maxTokens,
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		if errors.Is(err, context.DeadlineExceeded) || genCtx.Err() == context.DeadlineExceeded {
			slog.Error("LLM generation timed out", "timeout", e.timeout)
			return nil, fmt.Errorf("%w after %s", ErrTimeout, e.timeout)
		}
		if errors.Is(err, context.Canceled) {
			return nil, err
		}
		slog.Error("LLM generation failed", "error", err)
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	slog.Debug("LLM response received", "response_chars", len(raw))

	solutions, err := parseSolutions(raw, techs)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("generation.solutions", len(solutions)))
	slog.Info("Generated solutions", "count", len(solutions))
	return solutions, nil
}

// parseSolutions extracts and validates the model output against the
// retrieved technology set.
func parseSolutions(raw string, techs []datatypes.TechnologyMatch) ([]datatypes.Solution, error) {
	jsonStr, err := ExtractJSON(raw)
	if err != nil {
		slog.Error("Could not locate JSON in LLM response", "error", err, "response_chars", len(raw))
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	var out llmOutput
	if err := json.Unmarshal([]byte(jsonStr), &out); err != nil {
		slog.Error("LLM returned invalid JSON", "error", err)
		return nil, fmt.Errorf("%w: invalid JSON from model: %v", ErrUnavailable, err)
	}

	byID := make(map[string]datatypes.TechnologyMatch, len(techs))
	for _, tech := range techs {
		byID[tech.TechID] = tech
	}

	solutions := make([]datatypes.Solution, 0, len(out.Solutions))
	for _, sol := range out.Solutions {
		matches := make([]datatypes.TechnologyMatch, 0, len(sol.TechnologyIDs))
		for _, id := range sol.TechnologyIDs {
			tech, ok := byID[id]
			if !ok {
				slog.Warn("Model referenced unknown technology ID, skipping", "tech_id", id)
				continue
			}
			if reasoning, ok := sol.TechnologyRoles[id]; ok && reasoning != "" {
				tech.Reasoning = reasoning
			} else {
				tech.Reasoning = "Key component"
			}
			matches = append(matches, tech)
		}
		if len(matches) == 0 {
			slog.Warn("Dropping solution with no resolvable technologies",
				"solution_id", sol.SolutionID, "title", sol.Title)
			continue
		}

		feasibility := datatypes.Feasibility(sol.Feasibility)
		if !feasibility.Valid() {
			slog.Warn("Model returned unrecognized feasibility, defaulting to Medium",
				"feasibility", sol.Feasibility)
			feasibility = datatypes.FeasibilityMedium
		}

		solutions = append(solutions, datatypes.Solution{
			SolutionID:                sol.SolutionID,
			Title:                     sol.Title,
			Technologies:              matches,
			Description:               sol.Description,
			HowItWorks:                sol.HowItWorks,
			Benefits:                  sol.Benefits,
			IntegrationConsiderations: sol.IntegrationConsiderations,
			Feasibility:               feasibility,
			TimelineEstimate:          sol.TimelineEstimate,
			EstimatedCostRange:        sol.EstimatedCostRange,
		})
	}

	if len(solutions) == 0 {
		return nil, ErrEmptyResult
	}
	return solutions, nil
}
