// Copyright (C) 2026 NZTC Labs (engineering@nztclabs.io)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package review implements the submission review state machine.
//
// A submission starts in StatusPending. A reviewer moves it to
// StatusApproved or StatusRejected exactly once; both are terminal.
// "Rejected" means revision requested, not permanent rejection, but the
// state machine does not define a transition back out of it.
//
// The package is pure logic with no dependencies; callers are responsible
// for persisting the outcome of a transition atomically.
package review

import "errors"

// Status is the review state of a submission.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Valid reports whether s is a recognized status.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// Terminal reports whether no further transition is defined out of s.
func (s Status) Terminal() bool {
	return s == StatusApproved || s == StatusRejected
}

// Action is a reviewer's decision on a pending submission.
type Action string

const (
	ActionApprove Action = "approve"
	ActionReject  Action = "reject"
)

var (
	// ErrInvalidAction is returned for an action outside {approve, reject}.
	// Callers must surface it before touching any store.
	ErrInvalidAction = errors.New("invalid review action")

	// ErrInvalidTransition is returned when a review is attempted on a
	// submission that is no longer pending.
	ErrInvalidTransition = errors.New("invalid status transition")
)

// ParseAction validates a raw action string from a client.
func ParseAction(raw string) (Action, error) {
	switch Action(raw) {
	case ActionApprove, ActionReject:
		return Action(raw), nil
	}
	return "", ErrInvalidAction
}

// Transition returns the status that applying action to current yields.
//
// The only legal transitions are pending -> approved and pending -> rejected.
// Any other current status fails with ErrInvalidTransition and an
// unrecognized action fails with ErrInvalidAction; in both cases the
// returned status is the zero value and must not be persisted.
func Transition(current Status, action Action) (Status, error) {
	if current != StatusPending {
		return "", ErrInvalidTransition
	}
	switch action {
	case ActionApprove:
		return StatusApproved, nil
	case ActionReject:
		return StatusRejected, nil
	}
	return "", ErrInvalidAction
}
