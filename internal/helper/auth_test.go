package helper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allinwom/storefront/internal/apperr"
)

func testAuth() Auth {
	return SetupAuth("access-secret", "refresh-secret", 15*time.Minute, 24*time.Hour)
}

func TestTokenRoundtrip(t *testing.T) {
	auth := testAuth()

	pair, err := auth.GenerateTokens(42, "user@example.com")
	require.NoError(t, err)

	claims, err := auth.VerifyAccessToken(pair.Token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "user@example.com", claims.Email)
	assert.Greater(t, claims.Exp, claims.Iat)

	// Bearer prefix is tolerated
	claims, err = auth.VerifyAccessToken("Bearer " + pair.Token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)

	refreshClaims, err := auth.VerifyRefreshToken(pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, uint(42), refreshClaims.UserID)
}

func TestTokensAreNotInterchangeable(t *testing.T) {
	auth := testAuth()
	pair, err := auth.GenerateTokens(1, "a@b.com")
	require.NoError(t, err)

	_, err = auth.VerifyAccessToken(pair.RefreshToken)
	require.Error(t, err)
	assert.Equal(t, apperr.CodeInvalidToken, apperr.From(err).Code)

	_, err = auth.VerifyRefreshToken(pair.Token)
	require.Error(t, err)
	assert.Equal(t, apperr.CodeInvalidToken, apperr.From(err).Code)
}

func TestExpiredTokenCode(t *testing.T) {
	auth := SetupAuth("access-secret", "refresh-secret", -time.Minute, -time.Minute)
	pair, err := auth.GenerateTokens(1, "a@b.com")
	require.NoError(t, err)

	_, err = auth.VerifyAccessToken(pair.Token)
	require.Error(t, err)
	ae := apperr.From(err)
	assert.Equal(t, apperr.KindUnauthorized, ae.Kind)
	assert.Equal(t, apperr.CodeTokenExpired, ae.Code)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	auth := testAuth()

	for _, token := range []string{"", "Bearer ", "not.a.jwt", "Bearer not.a.jwt"} {
		_, err := auth.VerifyAccessToken(token)
		require.Error(t, err, "token %q should be rejected", token)
		assert.Equal(t, apperr.KindUnauthorized, apperr.From(err).Kind)
	}
}

func TestGenerateTokensRequiresIdentity(t *testing.T) {
	auth := testAuth()

	_, err := auth.GenerateTokens(0, "a@b.com")
	require.Error(t, err)
	_, err = auth.GenerateTokens(1, "")
	require.Error(t, err)
}

func TestPasswordHashing(t *testing.T) {
	auth := testAuth()

	hashed, err := auth.HashPassword("secret1")
	require.NoError(t, err)
	assert.NotEqual(t, "secret1", hashed)

	require.NoError(t, auth.VerifyPassword("secret1", hashed))

	err = auth.VerifyPassword("wrong", hashed)
	require.Error(t, err)
	assert.Equal(t, apperr.KindUnauthorized, apperr.From(err).Kind)
}
