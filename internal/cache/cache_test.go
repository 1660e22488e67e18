package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOrFetch_SecondCallWithinTTLHitsCache(t *testing.T) {
	c := New(NewMemoryStore())
	ctx := context.Background()

	calls := 0
	fetch := func(ctx context.Context) (int, error) {
		calls++
		return 42, nil
	}

	v, err := GetOrFetch(ctx, c, "answer", time.Minute, fetch)
	require.NoError(t, err)
	assert.Equal(t, 42, v)

	v, err = GetOrFetch(ctx, c, "answer", time.Minute, fetch)
	require.NoError(t, err)
	assert.Equal(t, 42, v)
	assert.Equal(t, 1, calls, "fetch must run exactly once within the ttl")
}

func TestGetOrFetch_RefetchesAfterTTL(t *testing.T) {
	c := New(NewMemoryStore())
	ctx := context.Background()

	now := time.Now()
	c.now = func() time.Time { return now }

	calls := 0
	fetch := func(ctx context.Context) (string, error) {
		calls++
		return "fresh", nil
	}

	_, err := GetOrFetch(ctx, c, "k", time.Minute, fetch)
	require.NoError(t, err)

	now = now.Add(time.Minute + time.Second)

	_, err = GetOrFetch(ctx, c, "k", time.Minute, fetch)
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestGetOrFetch_KeysAreIndependent(t *testing.T) {
	c := New(NewMemoryStore())
	ctx := context.Background()

	fetchA := func(ctx context.Context) (string, error) { return "a", nil }
	fetchB := func(ctx context.Context) (string, error) { return "b", nil }

	a, _ := GetOrFetch(ctx, c, "user:1", time.Minute, fetchA)
	b, _ := GetOrFetch(ctx, c, "user:2", time.Minute, fetchB)
	assert.Equal(t, "a", a)
	assert.Equal(t, "b", b)
}

func TestInvalidate_ForcesRefetch(t *testing.T) {
	c := New(NewMemoryStore())
	ctx := context.Background()

	calls := 0
	fetch := func(ctx context.Context) (int, error) {
		calls++
		return calls, nil
	}

	v, _ := GetOrFetch(ctx, c, "k", time.Hour, fetch)
	assert.Equal(t, 1, v)

	c.Invalidate(ctx, "k")

	v, _ = GetOrFetch(ctx, c, "k", time.Hour, fetch)
	assert.Equal(t, 2, v)
}

func TestGetOrFetch_CorruptedEntryIsAMiss(t *testing.T) {
	store := NewMemoryStore()
	c := New(store)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "k", []byte("{not json")))

	v, err := GetOrFetch(ctx, c, "k", time.Minute, func(ctx context.Context) (string, error) {
		return "recovered", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "recovered", v)
}

type failingStore struct{}

func (failingStore) Get(context.Context, string) ([]byte, error) {
	return nil, errors.New("store down")
}
func (failingStore) Set(context.Context, string, []byte) error { return errors.New("store down") }
func (failingStore) Delete(context.Context, string) error      { return errors.New("store down") }

func TestGetOrFetch_StoreFailureNeverPropagates(t *testing.T) {
	c := New(failingStore{})
	ctx := context.Background()

	v, err := GetOrFetch(ctx, c, "k", time.Minute, func(ctx context.Context) (string, error) {
		return "still works", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "still works", v)

	c.Invalidate(ctx, "k") // must not panic or surface the error
}

func TestGetOrFetch_FetchErrorPropagates(t *testing.T) {
	c := New(NewMemoryStore())
	ctx := context.Background()

	wantErr := errors.New("upstream gone")
	_, err := GetOrFetch(ctx, c, "k", time.Minute, func(ctx context.Context) (int, error) {
		return 0, wantErr
	})
	assert.ErrorIs(t, err, wantErr)

	// The failure must not be cached.
	v, err := GetOrFetch(ctx, c, "k", time.Minute, func(ctx context.Context) (int, error) {
		return 7, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 7, v)
}
