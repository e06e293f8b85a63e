// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package kv

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync/atomic"

	"github.com/MKhiriev/go-privacy-node/internal/logger"
	"github.com/dgraph-io/badger/v4"
)

// conflictRetries bounds how often PutIfAbsent re-runs a transaction that
// lost an optimistic concurrency race.
const conflictRetries = 5

// BadgerStore is an embedded, on-disk [Store].
type BadgerStore struct {
	db     *badger.DB
	closed atomic.Bool
}

// NewBadgerStore opens (creating if needed) a badger database in path.
func NewBadgerStore(path string, log *logger.Logger) (*BadgerStore, error) {
	if err := os.MkdirAll(path, 0o700); err != nil {
		return nil, fmt.Errorf("create badger directory: %w", err)
	}

	db, err := badger.Open(badger.DefaultOptions(path).WithLogger(nil))
	if err != nil {
		log.Err(err).Str("func", "NewBadgerStore").Msg("error opening badger database")
		return nil, fmt.Errorf("open badger database: %w", err)
	}

	log.Info().Str("func", "NewBadgerStore").Str("path", path).Msg("badger store initialized")
	return &BadgerStore{db: db}, nil
}

// NewInMemoryBadgerStore opens a badger database that never touches disk.
func NewInMemoryBadgerStore() (*BadgerStore, error) {
	db, err := badger.Open(badger.DefaultOptions("").WithInMemory(true).WithLogger(nil))
	if err != nil {
		return nil, fmt.Errorf("open in-memory badger database: %w", err)
	}
	return &BadgerStore{db: db}, nil
}

func (b *BadgerStore) Get(_ context.Context, key []byte) ([]byte, error) {
	if b.closed.Load() {
		return nil, ErrClosed
	}

	var value []byte
	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("badger get: %w", err)
	}
	return value, nil
}

func (b *BadgerStore) Put(_ context.Context, key, value []byte) error {
	if b.closed.Load() {
		return ErrClosed
	}

	err := b.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, value)
	})
	if err != nil {
		return fmt.Errorf("badger put: %w", err)
	}
	return nil
}

func (b *BadgerStore) PutIfAbsent(_ context.Context, key, value []byte) (bool, error) {
	if b.closed.Load() {
		return false, ErrClosed
	}

	var (
		stored bool
		err    error
	)
	for range conflictRetries {
		stored = false
		err = b.db.Update(func(txn *badger.Txn) error {
			_, err := txn.Get(key)
			if err == nil {
				return nil
			}
			if !errors.Is(err, badger.ErrKeyNotFound) {
				return err
			}
			stored = true
			return txn.Set(key, value)
		})
		if !errors.Is(err, badger.ErrConflict) {
			break
		}
	}
	if err != nil {
		return false, fmt.Errorf("badger put if absent: %w", err)
	}
	return stored, nil
}

func (b *BadgerStore) Remove(_ context.Context, key []byte) error {
	if b.closed.Load() {
		return ErrClosed
	}

	err := b.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(key)
	})
	if err != nil {
		return fmt.Errorf("badger remove: %w", err)
	}
	return nil
}

func (b *BadgerStore) Close() error {
	if b.closed.Swap(true) {
		return nil
	}
	return b.db.Close()
}
