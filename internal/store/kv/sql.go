// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package kv

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-privacy-node/internal/logger"
)

const (
	tableName   = "kv_store"
	keyColumn   = "storage_key"
	valueColumn = "payload"

	retryAttempts = 3
	retryWait     = 50 * time.Millisecond
)

// SQLStore is a [Store] over a single two-column table. The same queries
// serve PostgreSQL and SQLite; only the placeholder format and the error
// classifier differ.
type SQLStore struct {
	db         *sql.DB
	builder    sq.StatementBuilderType
	classifier ErrorClassificator
	logger     *logger.Logger
	closed     atomic.Bool
}

func newSQLStore(db *sql.DB, placeholder sq.PlaceholderFormat, classifier ErrorClassificator, log *logger.Logger) *SQLStore {
	return &SQLStore{
		db:         db,
		builder:    sq.StatementBuilder.PlaceholderFormat(placeholder),
		classifier: classifier,
		logger:     log,
	}
}

func (s *SQLStore) Get(ctx context.Context, key []byte) ([]byte, error) {
	if s.closed.Load() {
		return nil, ErrClosed
	}

	query, args, err := s.builder.
		Select(valueColumn).
		From(tableName).
		Where(sq.Eq{keyColumn: key}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get query: %w", err)
	}

	var value []byte
	err = s.withRetry(ctx, func() error {
		return s.db.QueryRowContext(ctx, query, args...).Scan(&value)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*SQLStore.Get").Msg("error reading value")
		return nil, fmt.Errorf("sql get: %w", err)
	}
	return value, nil
}

func (s *SQLStore) Put(ctx context.Context, key, value []byte) error {
	if s.closed.Load() {
		return ErrClosed
	}

	query, args, err := s.builder.
		Insert(tableName).
		Columns(keyColumn, valueColumn).
		Values(key, value).
		Suffix(fmt.Sprintf("ON CONFLICT (%s) DO UPDATE SET %s = EXCLUDED.%s", keyColumn, valueColumn, valueColumn)).
		ToSql()
	if err != nil {
		return fmt.Errorf("build put query: %w", err)
	}

	err = s.withRetry(ctx, func() error {
		_, err := s.db.ExecContext(ctx, query, args...)
		return err
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*SQLStore.Put").Msg("error writing value")
		return fmt.Errorf("sql put: %w", err)
	}
	return nil
}

func (s *SQLStore) PutIfAbsent(ctx context.Context, key, value []byte) (bool, error) {
	if s.closed.Load() {
		return false, ErrClosed
	}

	query, args, err := s.builder.
		Insert(tableName).
		Columns(keyColumn, valueColumn).
		Values(key, value).
		Suffix(fmt.Sprintf("ON CONFLICT (%s) DO NOTHING", keyColumn)).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build put if absent query: %w", err)
	}

	var affected int64
	err = s.withRetry(ctx, func() error {
		res, err := s.db.ExecContext(ctx, query, args...)
		if err != nil {
			return err
		}
		affected, err = res.RowsAffected()
		return err
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*SQLStore.PutIfAbsent").Msg("error writing value")
		return false, fmt.Errorf("sql put if absent: %w", err)
	}
	return affected == 1, nil
}

func (s *SQLStore) Remove(ctx context.Context, key []byte) error {
	if s.closed.Load() {
		return ErrClosed
	}

	query, args, err := s.builder.
		Delete(tableName).
		Where(sq.Eq{keyColumn: key}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build remove query: %w", err)
	}

	err = s.withRetry(ctx, func() error {
		_, err := s.db.ExecContext(ctx, query, args...)
		return err
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*SQLStore.Remove").Msg("error removing value")
		return fmt.Errorf("sql remove: %w", err)
	}
	return nil
}

func (s *SQLStore) Close() error {
	if s.closed.Swap(true) {
		return nil
	}
	return s.db.Close()
}

// withRetry runs op again while the classifier reports a transient failure.
func (s *SQLStore) withRetry(ctx context.Context, op func() error) error {
	var err error
	for attempt := 1; attempt <= retryAttempts; attempt++ {
		err = op()
		if err == nil || s.classifier.Classify(err) != Retryable || attempt == retryAttempts {
			return err
		}

		s.logger.Warn().Err(err).Str("func", "*SQLStore.withRetry").Int("attempt", attempt).Msg("retrying transient database error")

		select {
		case <-ctx.Done():
			return errors.Join(err, ctx.Err())
		case <-time.After(retryWait * time.Duration(attempt)):
		}
	}
	return err
}
