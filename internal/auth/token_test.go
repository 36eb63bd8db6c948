package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestIssueAndParse(t *testing.T) {
	tokens := NewTokens("secret", time.Hour)

	raw, err := tokens.Issue(7)
	require.NoError(t, err)

	userID, err := tokens.Parse(raw)
	require.NoError(t, err)
	require.Equal(t, int64(7), userID)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	raw, err := NewTokens("secret-a", time.Hour).Issue(7)
	require.NoError(t, err)

	_, err = NewTokens("secret-b", time.Hour).Parse(raw)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsGarbage(t *testing.T) {
	_, err := NewTokens("secret", time.Hour).Parse("not.a.token")
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsExpired(t *testing.T) {
	raw, err := NewTokens("secret", -time.Minute).Issue(7)
	require.NoError(t, err)

	_, err = NewTokens("secret", time.Hour).Parse(raw)
	require.ErrorIs(t, err, ErrInvalidToken)
}
