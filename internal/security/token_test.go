package security

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTokenManager_RoundTrip(t *testing.T) {
	tm, err := NewTokenManager("test-secret", "HS256", time.Minute)
	require.NoError(t, err)

	token, err := tm.Issue("42")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	subject, ok := tm.Decode(token)
	require.True(t, ok)
	require.Equal(t, "42", subject)
}

func TestTokenManager_Expired(t *testing.T) {
	tm, err := NewTokenManager("test-secret", "HS256", -time.Minute)
	require.NoError(t, err)

	token, err := tm.Issue("42")
	require.NoError(t, err)

	_, ok := tm.Decode(token)
	require.False(t, ok)
}

func TestTokenManager_WrongSecret(t *testing.T) {
	issuer, err := NewTokenManager("secret-a", "HS256", time.Minute)
	require.NoError(t, err)
	verifier, err := NewTokenManager("secret-b", "HS256", time.Minute)
	require.NoError(t, err)

	token, err := issuer.Issue("42")
	require.NoError(t, err)

	_, ok := verifier.Decode(token)
	require.False(t, ok)
}

func TestTokenManager_Malformed(t *testing.T) {
	tm, err := NewTokenManager("test-secret", "HS256", time.Minute)
	require.NoError(t, err)

	for _, token := range []string{"", "not-a-token", "a.b.c"} {
		_, ok := tm.Decode(token)
		require.False(t, ok, "token %q should be rejected", token)
	}
}

func TestNewTokenManager_RejectsNonHMAC(t *testing.T) {
	_, err := NewTokenManager("test-secret", "RS256", time.Minute)
	require.Error(t, err)

	_, err = NewTokenManager("test-secret", "bogus", time.Minute)
	require.Error(t, err)
}

func TestTokenManager_AlternativeHMAC(t *testing.T) {
	tm, err := NewTokenManager("test-secret", "HS512", time.Minute)
	require.NoError(t, err)

	token, err := tm.Issue("7")
	require.NoError(t, err)

	subject, ok := tm.Decode(token)
	require.True(t, ok)
	require.Equal(t, "7", subject)
}
