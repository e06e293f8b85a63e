// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package kv provides the byte-oriented key/value engines the content
// addressed storage layer is built on: an in-process map, BadgerDB, SQL
// (PostgreSQL or SQLite) and Redis.
package kv

import (
	"context"
	"errors"
)

//go:generate mockgen -source=kv.go -destination=../../mock/kv_store_mock.go -package=mock

var (
	// ErrKeyNotFound is returned by Get when no value is stored under the key.
	ErrKeyNotFound = errors.New("key not found")

	// ErrClosed is returned by every operation after Close.
	ErrClosed = errors.New("store is closed")
)

// Store is a durable byte key to byte value map. Implementations must be
// safe for concurrent use.
type Store interface {
	// Get returns the value under key or [ErrKeyNotFound].
	Get(ctx context.Context, key []byte) ([]byte, error)

	// Put stores value under key, replacing any previous value.
	Put(ctx context.Context, key, value []byte) error

	// PutIfAbsent stores value only when key is not present yet and reports
	// whether it did. It is atomic with respect to concurrent callers.
	PutIfAbsent(ctx context.Context, key, value []byte) (bool, error)

	// Remove deletes key. Removing an absent key is not an error.
	Remove(ctx context.Context, key []byte) error

	// Close releases the underlying engine.
	Close() error
}
