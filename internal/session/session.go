// Package session holds the server-side association between an opaque cookie
// token and an authenticated user id. Like storage, it ships two
// interchangeable backends: in-memory for tests and single-node dev, Redis
// when sessions must survive restarts.
package session

import (
	"context"
	"errors"
)

// ErrNotFound is returned for unknown or expired tokens.
var ErrNotFound = errors.New("session not found")

type Store interface {
	// Create issues a new opaque token bound to userID.
	Create(ctx context.Context, userID int64) (string, error)
	// Get resolves a token to the user id it was issued for.
	Get(ctx context.Context, token string) (int64, error)
	// Delete invalidates a token. Deleting an unknown token is a no-op.
	Delete(ctx context.Context, token string) error
}
