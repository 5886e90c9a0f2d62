// Copyright (C) 2026 NZTC Labs (engineering@nztclabs.io)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package store provides durable keyed storage for submissions.
//
// The store is the single source of truth for submission state. Writes are
// full-value replaces keyed by submission ID (last write wins); there are no
// transactional semantics beyond the atomicity of a single keyed write, and
// listing is a full scan with no guaranteed order. Ordering is a
// presentation concern applied by callers.
package store

import (
	"context"
	"errors"

	"github.com/nztclabs/netzero-copilot/services/copilot/datatypes"
)

// ErrNotFound is returned by Get for an unknown submission ID.
var ErrNotFound = errors.New("submission not found")

// SubmissionStore is the persistence contract for submissions.
//
// Implementations must make Put atomic per key and safe for concurrent use;
// no finer-grained coordination is required by callers.
type SubmissionStore interface {
	// Put persists a new or updated submission keyed by its SubmissionID,
	// overwriting any prior version.
	Put(ctx context.Context, sub *datatypes.Submission) error

	// Get returns the submission for id, or ErrNotFound.
	Get(ctx context.Context, id string) (*datatypes.Submission, error)

	// List returns every stored submission in no particular order.
	List(ctx context.Context) ([]*datatypes.Submission, error)

	// Close releases the underlying storage.
	Close() error
}
