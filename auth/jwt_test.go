package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"embedpanel/models"
)

func TestGenerateAndParseToken(t *testing.T) {
	sess := &Session{Username: "ana", Role: models.RoleUser}

	token, err := GenerateToken(sess, "secret", time.Hour)
	require.NoError(t, err)

	parsed, err := ParseToken(token, "secret")
	require.NoError(t, err)
	require.Equal(t, "ana", parsed.Username)
	require.Equal(t, models.RoleUser, parsed.Role)
}

func TestParseToken_WrongSecret(t *testing.T) {
	token, err := GenerateToken(&Session{Username: "ana"}, "secret", time.Hour)
	require.NoError(t, err)

	_, err = ParseToken(token, "other-secret")
	require.Error(t, err)
}

func TestParseToken_Expired(t *testing.T) {
	token, err := GenerateToken(&Session{Username: "ana"}, "secret", -time.Minute)
	require.NoError(t, err)

	_, err = ParseToken(token, "secret")
	require.Error(t, err)
}

func TestParseToken_Garbage(t *testing.T) {
	_, err := ParseToken("not.a.token", "secret")
	require.Error(t, err)
}
