// Copyright (C) 2026 NZTC Labs (engineering@nztclabs.io)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/dgraph-io/badger/v4"

	"github.com/nztclabs/netzero-copilot/services/copilot/datatypes"
)

// submissionKeyPrefix namespaces submission records inside the database so
// other record types can share it later without key collisions.
const submissionKeyPrefix = "submission/"

// Config holds configuration for the BadgerDB-backed store.
type Config struct {
	// Path is the directory for BadgerDB files. Required unless InMemory.
	Path string

	// InMemory enables in-memory mode (no disk persistence). Used by tests.
	InMemory bool

	// SyncWrites enables synchronous writes for durability.
	SyncWrites bool

	// Logger receives BadgerDB's internal log output. If nil, BadgerDB
	// logging is disabled.
	Logger *slog.Logger
}

// DefaultConfig returns production defaults: durable synchronous writes at
// the given path.
func DefaultConfig(path string) Config {
	return Config{Path: path, SyncWrites: true}
}

// InMemoryConfig returns a configuration for tests: no disk I/O, no fsync.
func InMemoryConfig() Config {
	return Config{InMemory: true}
}

// badgerLogger adapts slog.Logger to BadgerDB's Logger interface.
type badgerLogger struct {
	logger *slog.Logger
}

func (l *badgerLogger) Errorf(format string, args ...interface{}) {
	l.logger.Error(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Warningf(format string, args ...interface{}) {
	l.logger.Warn(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Infof(format string, args ...interface{}) {
	l.logger.Info(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Debugf(format string, args ...interface{}) {
	l.logger.Debug(fmt.Sprintf(format, args...))
}

// BadgerStore is a SubmissionStore backed by an embedded BadgerDB.
//
// Each submission is stored as one JSON value under its keyed entry, so a
// Put replaces the whole record atomically. BadgerDB serializes writes per
// key, which is the only coordination the review workflow relies on.
type BadgerStore struct {
	db *badger.DB
}

var _ SubmissionStore = (*BadgerStore)(nil)

// Open creates and opens a BadgerDB-backed store with the given
// configuration. The caller must Close it when done.
func Open(cfg Config) (*BadgerStore, error) {
	if !cfg.InMemory && cfg.Path == "" {
		return nil, errors.New("path is required for persistent store")
	}

	var opts badger.Options
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if err := os.MkdirAll(cfg.Path, 0750); err != nil {
			return nil, fmt.Errorf("create store directory %s: %w", cfg.Path, err)
		}
		opts = badger.DefaultOptions(cfg.Path)
	}
	opts = opts.WithSyncWrites(cfg.SyncWrites)
	opts = opts.WithNumVersionsToKeep(1)

	if cfg.Logger != nil {
		opts = opts.WithLogger(&badgerLogger{logger: cfg.Logger})
	} else {
		opts = opts.WithLogger(nil)
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger database: %w", err)
	}
	return &BadgerStore{db: db}, nil
}

func submissionKey(id string) []byte {
	return []byte(submissionKeyPrefix + id)
}

// Put persists sub under its SubmissionID, replacing any prior version.
func (s *BadgerStore) Put(ctx context.Context, sub *datatypes.Submission) error {
	if sub == nil || sub.SubmissionID == "" {
		return errors.New("submission must have an ID")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	value, err := json.Marshal(sub)
	if err != nil {
		return fmt.Errorf("marshal submission %s: %w", sub.SubmissionID, err)
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(submissionKey(sub.SubmissionID), value)
	})
	if err != nil {
		return fmt.Errorf("write submission %s: %w", sub.SubmissionID, err)
	}
	return nil
}

// Get returns the submission stored under id, or ErrNotFound.
func (s *BadgerStore) Get(ctx context.Context, id string) (*datatypes.Submission, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var sub datatypes.Submission
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(submissionKey(id))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &sub)
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read submission %s: %w", id, err)
	}
	return &sub, nil
}

// List returns all stored submissions via a prefix scan. Order is whatever
// the key iterator yields; callers sort for presentation.
func (s *BadgerStore) List(ctx context.Context) ([]*datatypes.Submission, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var subs []*datatypes.Submission
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(submissionKeyPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			var sub datatypes.Submission
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &sub)
			})
			if err != nil {
				slog.Warn("Skipping undecodable submission record",
					"key", string(it.Item().Key()), "error", err)
				continue
			}
			subs = append(subs, &sub)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list submissions: %w", err)
	}
	return subs, nil
}

// Close closes the underlying BadgerDB.
func (s *BadgerStore) Close() error {
	return s.db.Close()
}
