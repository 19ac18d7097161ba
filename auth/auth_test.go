package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenIssuer_RoundTrip(t *testing.T) {
	issuer := NewTokenIssuer("secret", time.Hour)

	token, err := issuer.Issue("user-123", "ana@example.com")
	require.NoError(t, err)

	sub, err := issuer.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", sub)
}

func TestTokenIssuer_Expired(t *testing.T) {
	issuer := NewTokenIssuer("secret", time.Hour)
	issuer.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	token, err := issuer.Issue("user-123", "ana@example.com")
	require.NoError(t, err)

	issuer.now = time.Now
	_, err = issuer.Parse(token)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestTokenIssuer_WrongSecret(t *testing.T) {
	token, err := NewTokenIssuer("one", time.Hour).Issue("user-123", "")
	require.NoError(t, err)

	_, err = NewTokenIssuer("two", time.Hour).Parse(token)
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
}

func TestTokenIssuer_RejectsNoneAlg(t *testing.T) {
	claims := jwt.RegisteredClaims{Subject: "user-123", ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = NewTokenIssuer("secret", time.Hour).Parse(token)
	assert.Error(t, err)
}

func TestTokenIssuer_RequiresSubject(t *testing.T) {
	token, err := NewTokenIssuer("secret", time.Hour).Issue("", "")
	require.NoError(t, err)

	_, err = NewTokenIssuer("secret", time.Hour).Parse(token)
	assert.ErrorContains(t, err, "subject")
}

func TestPassword(t *testing.T) {
	hash, err := HashPassword("hunter2")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter2", hash)
	assert.True(t, CheckPassword(hash, "hunter2"))
	assert.False(t, CheckPassword(hash, "hunter3"))
}

func TestPassword_LongerThanBcryptLimit(t *testing.T) {
	long := strings.Repeat("p", 80)
	hash, err := HashPassword(long)
	require.NoError(t, err)
	assert.True(t, CheckPassword(hash, long))
	// 超过 72 字节的部分不参与校验
	assert.True(t, CheckPassword(hash, strings.Repeat("p", 72)+"different"))
	assert.False(t, CheckPassword(hash, strings.Repeat("p", 71)))
}
