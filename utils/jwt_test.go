package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken("user-1", "taro@example.com", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	id, err := ExtractIDFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", id)
}

func TestExpiredTokenRejected(t *testing.T) {
	token, err := GenerateToken("user-1", "taro@example.com", -time.Minute)
	require.NoError(t, err)

	_, err = ExtractIDFromToken(token)
	assert.Error(t, err)
}

func TestTamperedTokenRejected(t *testing.T) {
	token, err := GenerateToken("user-1", "taro@example.com", time.Hour)
	require.NoError(t, err)

	_, err = ExtractIDFromToken(token + "x")
	assert.Error(t, err)
}

func TestHashToken(t *testing.T) {
	assert.Equal(t, HashToken("abc"), HashToken("abc"))
	assert.NotEqual(t, HashToken("abc"), HashToken("abd"))
	assert.Len(t, HashToken("abc"), 64)
}
