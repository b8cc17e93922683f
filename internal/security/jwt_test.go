package security

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"freelancehub/internal/common"
)

func TestJWTRoundTrip(t *testing.T) {
	provider := NewJWTProvider("test-secret")
	userID := common.NewUUID()

	token, expiresAt, err := provider.Generate(userID, "client", time.Hour)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, time.Minute)

	claims, err := provider.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims.UserID)
	assert.Equal(t, "client", claims.Role)
}

func TestJWTParseWrongSecret(t *testing.T) {
	token, _, err := NewJWTProvider("secret-a").Generate(common.NewUUID(), "client", time.Hour)
	require.NoError(t, err)

	_, err = NewJWTProvider("secret-b").Parse(token)
	assert.Error(t, err)
}

func TestJWTParseExpired(t *testing.T) {
	provider := NewJWTProvider("test-secret")
	token, _, err := provider.Generate(common.NewUUID(), "client", -time.Minute)
	require.NoError(t, err)

	_, err = provider.Parse(token)
	assert.Error(t, err)
}

func TestJWTParseGarbage(t *testing.T) {
	_, err := NewJWTProvider("test-secret").Parse("not-a-token")
	assert.Error(t, err)
}
