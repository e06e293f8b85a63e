// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-privacy-node/internal/store/kv"
)

// Key prefixes keep the record kinds apart inside one key/value namespace.
const (
	payloadPrefix = "payload/"
	groupPrefix   = "group/"
	queryPrefix   = "query/"
	recordPrefix  = "record/"
)

// jsonRecords moves JSON encoded values of type T in and out of a
// [kv.Store] under prefixed keys.
type jsonRecords[T any] struct {
	kv     kv.Store
	prefix string
}

func (r jsonRecords[T]) key(k string) []byte {
	return []byte(r.prefix + k)
}

func (r jsonRecords[T]) get(ctx context.Context, k string) (T, error) {
	var v T

	raw, err := r.kv.Get(ctx, r.key(k))
	if errors.Is(err, kv.ErrKeyNotFound) {
		return v, ErrNotFound
	}
	if err != nil {
		return v, fmt.Errorf("%w: %w", ErrStorage, err)
	}

	if err := json.Unmarshal(raw, &v); err != nil {
		return v, fmt.Errorf("%w: decode %s%s: %w", ErrStorage, r.prefix, k, err)
	}
	return v, nil
}

func (r jsonRecords[T]) put(ctx context.Context, k string, v T) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("%w: encode: %w", ErrStorage, err)
	}
	if err := r.kv.Put(ctx, r.key(k), raw); err != nil {
		return fmt.Errorf("%w: %w", ErrStorage, err)
	}
	return nil
}

func (r jsonRecords[T]) putIfAbsent(ctx context.Context, k string, v T) (bool, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return false, fmt.Errorf("%w: encode: %w", ErrStorage, err)
	}
	stored, err := r.kv.PutIfAbsent(ctx, r.key(k), raw)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrStorage, err)
	}
	return stored, nil
}

// recordStorage implements [RecordStorage].
type recordStorage struct {
	records jsonRecords[json.RawMessage]
}

func NewRecordStorage(store kv.Store) RecordStorage {
	return &recordStorage{records: jsonRecords[json.RawMessage]{kv: store, prefix: recordPrefix}}
}

func (s *recordStorage) Load(ctx context.Context, name string, v any) error {
	raw, err := s.records.get(ctx, name)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("%w: decode %s: %w", ErrStorage, name, err)
	}
	return nil
}

func (s *recordStorage) Save(ctx context.Context, name string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("%w: encode %s: %w", ErrStorage, name, err)
	}
	return s.records.put(ctx, name, raw)
}
