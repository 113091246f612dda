package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	userID := uuid.New()

	token, err := GenerateToken(userID, "secret", time.Hour)
	require.NoError(t, err)

	parsed, err := ParseUserID(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, userID, parsed)
}

func TestParseUserID_wrongSecret(t *testing.T) {
	token, err := GenerateToken(uuid.New(), "secret", time.Hour)
	require.NoError(t, err)

	_, err = ParseUserID(token, "other-secret")
	assert.Error(t, err)
}

func TestParseUserID_expiredToken(t *testing.T) {
	token, err := GenerateToken(uuid.New(), "secret", -time.Minute)
	require.NoError(t, err)

	_, err = ParseUserID(token, "secret")
	assert.Error(t, err)
}

func TestParseUserID_garbage(t *testing.T) {
	_, err := ParseUserID("not.a.token", "secret")
	assert.Error(t, err)
}
