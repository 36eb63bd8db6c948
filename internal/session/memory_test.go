package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMemStoreRoundTrip(t *testing.T) {
	s := NewMemStore(time.Hour)
	ctx := context.Background()

	token, err := s.Create(ctx, 42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := s.Get(ctx, token)
	require.NoError(t, err)
	require.Equal(t, int64(42), userID)
}

func TestMemStoreUnknownToken(t *testing.T) {
	s := NewMemStore(time.Hour)
	_, err := s.Get(context.Background(), "nope")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestMemStoreExpiry(t *testing.T) {
	s := NewMemStore(time.Hour)
	ctx := context.Background()

	token, err := s.Create(ctx, 1)
	require.NoError(t, err)

	now := time.Now()
	s.now = func() time.Time { return now.Add(2 * time.Hour) }

	_, err = s.Get(ctx, token)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestMemStoreDelete(t *testing.T) {
	s := NewMemStore(time.Hour)
	ctx := context.Background()

	token, err := s.Create(ctx, 1)
	require.NoError(t, err)
	require.NoError(t, s.Delete(ctx, token))

	_, err = s.Get(ctx, token)
	require.ErrorIs(t, err, ErrNotFound)

	// Deleting again is a no-op.
	require.NoError(t, s.Delete(ctx, token))
}

func TestMemStoreTokensAreUnique(t *testing.T) {
	s := NewMemStore(time.Hour)
	ctx := context.Background()

	a, err := s.Create(ctx, 1)
	require.NoError(t, err)
	b, err := s.Create(ctx, 1)
	require.NoError(t, err)
	require.NotEqual(t, a, b)
}
