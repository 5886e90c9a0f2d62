// Copyright (C) 2026 NZTC Labs (engineering@nztclabs.io)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package datatypes holds the wire and storage types shared across the
// co-pilot service: challenge input, generated solutions, submissions and
// their review metadata, and the Weaviate schema for the technology catalog.
package datatypes

import (
	"time"

	"github.com/nztclabs/netzero-copilot/services/copilot/review"
)

// ChallengeInput is the requester's decarbonization challenge. Only the
// description is mandatory; the structured context fields refine the
// generated solutions when present. Numeric fields are pointers so that
// "not specified" is distinguishable from zero.
type ChallengeInput struct {
	ChallengeDescription string `json:"challenge_description" binding:"required"`

	IndustrySector    string   `json:"industry_sector,omitempty"`
	EmissionsBaseline *float64 `json:"emissions_baseline,omitempty" validate:"omitempty,gt=0"`
	TargetReduction   *float64 `json:"target_reduction,omitempty" validate:"omitempty,gt=0,lte=100"`
	TimelineMonths    *int     `json:"timeline_months,omitempty" validate:"omitempty,gte=1,lte=600"`
	BudgetRange       string   `json:"budget_range,omitempty"`
	Constraints       []string `json:"constraints,omitempty"`
}

// Feasibility is the qualitative rating the generation engine assigns to a
// solution.
type Feasibility string

const (
	FeasibilityHigh   Feasibility = "High"
	FeasibilityMedium Feasibility = "Medium"
	FeasibilityLow    Feasibility = "Low"
)

// Valid reports whether f is one of the three recognized ratings.
func (f Feasibility) Valid() bool {
	switch f {
	case FeasibilityHigh, FeasibilityMedium, FeasibilityLow:
		return true
	}
	return false
}

// TechnologyMatch is a catalog technology selected for a solution, annotated
// with how relevant the catalog search found it and why the engine picked it.
type TechnologyMatch struct {
	TechID         string  `json:"tech_id"`
	Title          string  `json:"title"`
	Provider       string  `json:"provider"`
	Description    string  `json:"description"`
	TRL            int     `json:"trl" validate:"gte=1,lte=9"`
	Category       string  `json:"category"`
	SubCategory    string  `json:"sub_category,omitempty"`
	RelevanceScore float64 `json:"relevance_score"`
	Reasoning      string  `json:"reasoning,omitempty"`
}

// Solution is one AI-proposed technology combination. Solutions are created
// once as part of a submission and never mutated afterwards.
type Solution struct {
	SolutionID                int               `json:"solution_id"`
	Title                     string            `json:"title"`
	Technologies              []TechnologyMatch `json:"technologies"`
	Description               string            `json:"description"`
	HowItWorks                string            `json:"how_it_works"`
	Benefits                  []string          `json:"benefits"`
	IntegrationConsiderations []string          `json:"integration_considerations"`
	Feasibility               Feasibility       `json:"feasibility"`
	TimelineEstimate          string            `json:"timeline_estimate"`
	EstimatedCostRange        string            `json:"estimated_cost_range"`
}

// Submission is one challenge plus the batch of solutions generated for it
// and its review state. Reviewing changes only Status, Feedback and
// ReviewedAt; the challenge and solutions are fixed at creation time.
//
// Invariant: ReviewedAt and Feedback are unset exactly while Status is
// pending.
type Submission struct {
	SubmissionID string         `json:"submission_id"`
	Challenge    ChallengeInput `json:"challenge"`
	Solutions    []Solution     `json:"solutions"`
	Status       review.Status  `json:"status"`
	Feedback     string         `json:"feedback,omitempty"`
	SubmittedAt  time.Time      `json:"submitted_at"`
	ReviewedAt   *time.Time     `json:"reviewed_at,omitempty"`
}

// ReviewRequest is the reviewer's decision payload for the review endpoint.
type ReviewRequest struct {
	Action   string `json:"action" binding:"required"`
	Feedback string `json:"feedback,omitempty"`
}

// GenerateResponse wraps a freshly created submission with generation
// metadata for the requester's view.
type GenerateResponse struct {
	Submission            Submission `json:"submission"`
	TechnologiesAnalyzed  int        `json:"technologies_analyzed"`
	ProcessingTimeSeconds float64    `json:"processing_time_seconds"`
}

// SubmissionList is the reviewer's list view: every submission plus a tally
// by status. Submissions are ordered most recent first.
type SubmissionList struct {
	Total       int          `json:"total"`
	Pending     int          `json:"pending"`
	Approved    int          `json:"approved"`
	Rejected    int          `json:"rejected"`
	Submissions []Submission `json:"submissions"`
}
