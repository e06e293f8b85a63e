// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package kv

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-privacy-node/internal/logger"
	"github.com/redis/go-redis/v9"
)

const (
	redisKeyPrefix   = "privacy:"
	redisDialTimeout = 5 * time.Second
)

// redisCommands is the part of *redis.Client the store uses.
type redisCommands interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	SetNX(ctx context.Context, key string, value any, expiration time.Duration) *redis.BoolCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
	Close() error
}

// RedisStore is a [Store] over a Redis server. Values never expire.
type RedisStore struct {
	client redisCommands
	prefix string
	closed atomic.Bool
}

// NewRedisStore connects to the server at addr. addr may also be a
// redis:// URL carrying credentials and database number.
func NewRedisStore(ctx context.Context, addr string, log *logger.Logger) (*RedisStore, error) {
	opts, err := redis.ParseURL(addr)
	if err != nil {
		opts = &redis.Options{Addr: addr}
	}
	opts.DialTimeout = redisDialTimeout
	opts.MaxRetries = 3

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, redisDialTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		log.Err(err).Str("func", "NewRedisStore").Msg("error connecting redis")
		return nil, fmt.Errorf("connect redis: %w", err)
	}

	log.Info().Str("func", "NewRedisStore").Str("addr", opts.Addr).Int("db", opts.DB).Msg("redis store initialized")
	return newRedisStore(client), nil
}

func newRedisStore(client redisCommands) *RedisStore {
	return &RedisStore{client: client, prefix: redisKeyPrefix}
}

func (r *RedisStore) Get(ctx context.Context, key []byte) ([]byte, error) {
	if r.closed.Load() {
		return nil, ErrClosed
	}

	value, err := r.client.Get(ctx, r.prefix+string(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis get: %w", err)
	}
	return value, nil
}

func (r *RedisStore) Put(ctx context.Context, key, value []byte) error {
	if r.closed.Load() {
		return ErrClosed
	}

	if err := r.client.Set(ctx, r.prefix+string(key), value, 0).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

func (r *RedisStore) PutIfAbsent(ctx context.Context, key, value []byte) (bool, error) {
	if r.closed.Load() {
		return false, ErrClosed
	}

	stored, err := r.client.SetNX(ctx, r.prefix+string(key), value, 0).Result()
	if err != nil {
		return false, fmt.Errorf("redis setnx: %w", err)
	}
	return stored, nil
}

func (r *RedisStore) Remove(ctx context.Context, key []byte) error {
	if r.closed.Load() {
		return ErrClosed
	}

	if err := r.client.Del(ctx, r.prefix+string(key)).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}

func (r *RedisStore) Close() error {
	if r.closed.Swap(true) {
		return nil
	}
	return r.client.Close()
}
