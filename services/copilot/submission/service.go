// Copyright (C) 2026 NZTC Labs (engineering@nztclabs.io)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package submission orchestrates the submission lifecycle: creating a
// submission from a generation result and applying review transitions
// against the store.
package submission

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/nztclabs/netzero-copilot/services/copilot/datatypes"
	"github.com/nztclabs/netzero-copilot/services/copilot/review"
	"github.com/nztclabs/netzero-copilot/services/copilot/store"
)

var (
	// ErrValidation is returned for missing or malformed challenge input.
	// It is raised before any collaborator call.
	ErrValidation = errors.New("invalid challenge input")

	// ErrEmptyResult is returned when a creation is attempted with zero
	// solutions. The store is left unchanged.
	ErrEmptyResult = errors.New("generation result contains no solutions")
)

// Service is the only writer of submissions. It enforces the review state
// machine on every status change and never mutates a stored submission's
// challenge or solutions.
//
// All methods are safe for concurrent use. Reviews of the same submission
// within one process are serialized by a per-ID lock; across processes the
// store's last-write-wins semantics apply and two racing reviewers can
// silently overwrite each other. That race is accepted: review is a
// human-paced workflow.
type Service struct {
	store    store.SubmissionStore
	validate *validator.Validate
	now      func() time.Time

	mu        sync.Mutex
	reviewing map[string]*sync.Mutex
}

// NewService builds a Service over the given store.
func NewService(st store.SubmissionStore) *Service {
	return &Service{
		store:     st,
		validate:  validator.New(),
		now:       time.Now,
		reviewing: make(map[string]*sync.Mutex),
	}
}

// reviewLock returns the per-submission mutex, creating it on first use.
// Locks are never removed; the set of reviewed IDs is small and bounded by
// the store's contents.
func (s *Service) reviewLock(id string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.reviewing[id]
	if !ok {
		lock = &sync.Mutex{}
		s.reviewing[id] = lock
	}
	return lock
}

// ValidateChallenge checks the challenge before any collaborator is
// called: the description must be non-empty and the structured context must
// pass its range checks. Returns ErrValidation on failure.
func (s *Service) ValidateChallenge(challenge datatypes.ChallengeInput) error {
	if strings.TrimSpace(challenge.ChallengeDescription) == "" {
		return fmt.Errorf("%w: challenge description is required", ErrValidation)
	}
	if err := s.validate.Struct(challenge); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	return nil
}

// CreateFromGeneration wraps a generation result into a new pending
// submission and persists it.
//
// The challenge must pass ValidateChallenge and the result must contain at
// least one solution (ErrEmptyResult). Nothing is written until both hold,
// so a failed or cancelled creation leaves no partial submission behind.
func (s *Service) CreateFromGeneration(ctx context.Context, challenge datatypes.ChallengeInput,
	solutions []datatypes.Solution) (*datatypes.Submission, error) {

	if err := s.ValidateChallenge(challenge); err != nil {
		return nil, err
	}
	if len(solutions) == 0 {
		return nil, ErrEmptyResult
	}

	sub := &datatypes.Submission{
		SubmissionID: uuid.NewString(),
		Challenge:    challenge,
		Solutions:    solutions,
		Status:       review.StatusPending,
		SubmittedAt:  s.now().UTC(),
	}
	if err := s.store.Put(ctx, sub); err != nil {
		return nil, fmt.Errorf("persist submission: %w", err)
	}

	slog.Info("Stored submission for review",
		"submission_id", sub.SubmissionID, "solutions", len(sub.Solutions))
	return sub, nil
}

// Get returns one submission, surfacing store.ErrNotFound.
func (s *Service) Get(ctx context.Context, id string) (*datatypes.Submission, error) {
	return s.store.Get(ctx, id)
}

// List returns all submissions in store order. Callers sort for
// presentation, typically by SubmittedAt descending.
func (s *Service) List(ctx context.Context) ([]*datatypes.Submission, error) {
	return s.store.List(ctx)
}

// Review applies a reviewer's decision to a pending submission and persists
// the outcome, returning the updated submission.
//
// The action is validated before the store is touched (review
// ErrInvalidAction). A submission that is no longer pending fails with
// review.ErrInvalidTransition and is not mutated. Status, feedback and
// reviewed-at land in one store write; no partial update is observable.
func (s *Service) Review(ctx context.Context, id, rawAction, feedback string) (*datatypes.Submission, error) {
	action, err := review.ParseAction(rawAction)
	if err != nil {
		return nil, err
	}

	lock := s.reviewLock(id)
	lock.Lock()
	defer lock.Unlock()

	sub, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	next, err := review.Transition(sub.Status, action)
	if err != nil {
		return nil, err
	}

	updated := *sub
	updated.Status = next
	updated.Feedback = feedback
	reviewedAt := s.now().UTC()
	updated.ReviewedAt = &reviewedAt

	if err := s.store.Put(ctx, &updated); err != nil {
		return nil, fmt.Errorf("persist review of %s: %w", id, err)
	}

	slog.Info("Submission reviewed",
		"submission_id", id, "action", action, "status", updated.Status)
	return &updated, nil
}
