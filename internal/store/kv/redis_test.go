package kv

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRedis is a map backed stand-in for *redis.Client.
type fakeRedis struct {
	mu     sync.Mutex
	data   map[string][]byte
	err    error
	closed bool
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{data: make(map[string][]byte)}
}

func (f *fakeRedis) Get(_ context.Context, key string) *redis.StringCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return redis.NewStringResult("", f.err)
	}
	v, ok := f.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(string(v), nil)
}

func (f *fakeRedis) Set(_ context.Context, key string, value any, _ time.Duration) *redis.StatusCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return redis.NewStatusResult("", f.err)
	}
	f.data[key] = append([]byte(nil), value.([]byte)...)
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeRedis) SetNX(_ context.Context, key string, value any, _ time.Duration) *redis.BoolCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return redis.NewBoolResult(false, f.err)
	}
	if _, ok := f.data[key]; ok {
		return redis.NewBoolResult(false, nil)
	}
	f.data[key] = append([]byte(nil), value.([]byte)...)
	return redis.NewBoolResult(true, nil)
}

func (f *fakeRedis) Del(_ context.Context, keys ...string) *redis.IntCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return redis.NewIntResult(0, f.err)
	}
	var n int64
	for _, k := range keys {
		if _, ok := f.data[k]; ok {
			delete(f.data, k)
			n++
		}
	}
	return redis.NewIntResult(n, nil)
}

func (f *fakeRedis) Close() error {
	f.closed = true
	return nil
}

func TestRedisStore(t *testing.T) {
	testStoreContract(t, func(t *testing.T) Store {
		return newRedisStore(newFakeRedis())
	})
}

func TestRedisStore_PrefixesKeys(t *testing.T) {
	fake := newFakeRedis()
	s := newRedisStore(fake)

	require.NoError(t, s.Put(context.Background(), []byte("abc"), []byte("v")))
	assert.Contains(t, fake.data, "privacy:abc")
}

func TestRedisStore_WrapsErrors(t *testing.T) {
	fake := newFakeRedis()
	fake.err = errors.New("connection reset")
	s := newRedisStore(fake)
	ctx := context.Background()

	_, err := s.Get(ctx, []byte("k"))
	assert.ErrorIs(t, err, fake.err)
	assert.NotErrorIs(t, err, ErrKeyNotFound)

	_, err = s.PutIfAbsent(ctx, []byte("k"), []byte("v"))
	assert.ErrorIs(t, err, fake.err)
	assert.ErrorIs(t, s.Put(ctx, []byte("k"), []byte("v")), fake.err)
	assert.ErrorIs(t, s.Remove(ctx, []byte("k")), fake.err)
}
