package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/usermgmt/internal/common"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenService_IssueAndVerify(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	s := NewTokenService("super-secret", time.Hour, WithClock(func() time.Time { return now }))

	tok, err := s.Issue("user-123")
	require.NoError(t, err)

	claims, err := s.Verify(tok)
	require.NoError(t, err)

	assert.Equal(t, "user-123", claims.SubjectID())
	assert.Equal(t, "user-123", claims.Subject)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, now.Unix(), claims.IssuedAt.Unix())
	assert.Equal(t, now.Add(time.Hour).Unix(), claims.ExpiresAt.Unix())
}

func TestTokenService_DefaultTTL(t *testing.T) {
	t.Parallel()

	s := NewTokenService("k", 0)
	assert.Equal(t, 48*time.Hour, s.TTL())
}

func TestTokenService_Expired(t *testing.T) {
	t.Parallel()

	issuedAt := time.Now()
	clock := issuedAt
	s := NewTokenService("secret", time.Minute, WithClock(func() time.Time { return clock }))

	tok, err := s.Issue("u1")
	require.NoError(t, err)

	clock = issuedAt.Add(2 * time.Minute)

	_, err = s.Verify(tok)
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrAuthentication))
	assert.True(t, IsExpired(err))
}

func TestTokenService_WrongKey(t *testing.T) {
	t.Parallel()

	tok, err := NewTokenService("right-secret", time.Hour).Issue("u2")
	require.NoError(t, err)

	_, err = NewTokenService("wrong-secret", time.Hour).Verify(tok)
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrAuthentication))
	assert.False(t, IsExpired(err))
}

func TestTokenService_MissingToken(t *testing.T) {
	t.Parallel()

	_, err := NewTokenService("k", time.Hour).Verify("")
	require.Error(t, err)

	var e *common.Error
	require.True(t, errors.As(err, &e))
	assert.Equal(t, common.KindAuthentication, e.Kind)
	assert.Equal(t, common.MsgMissingToken, e.Message)
}

func TestTokenService_MalformedString(t *testing.T) {
	t.Parallel()

	_, err := NewTokenService("k", time.Hour).Verify("not.a.jwt")
	require.Error(t, err)

	var e *common.Error
	require.True(t, errors.As(err, &e))
	assert.Equal(t, common.MsgInvalidToken, e.Message)
}

func TestTokenService_RejectsOtherAlgorithm(t *testing.T) {
	t.Parallel()

	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS512, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "u3",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString([]byte("k"))
	require.NoError(t, err)

	_, err = NewTokenService("k", time.Hour).Verify(tok)
	assert.True(t, errors.Is(err, common.ErrAuthentication))
}

func TestTokenService_RejectsTokenWithoutExpiry(t *testing.T) {
	t.Parallel()

	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "u4"},
	}).SignedString([]byte("k"))
	require.NoError(t, err)

	_, err = NewTokenService("k", time.Hour).Verify(tok)
	assert.True(t, errors.Is(err, common.ErrAuthentication))
}

func TestTokenService_AcceptsLegacyIDClaim(t *testing.T) {
	t.Parallel()

	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		UserID: "legacy-user",
	}).SignedString([]byte("k"))
	require.NoError(t, err)

	claims, err := NewTokenService("k", time.Hour).Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, "legacy-user", claims.SubjectID())
}

func TestTokenService_MissingKeyIsConfigurationError(t *testing.T) {
	t.Parallel()

	s := NewTokenService("", time.Hour)

	_, err := s.Issue("u")
	assert.True(t, errors.Is(err, common.ErrConfiguration))

	_, err = s.Verify("a.b.c")
	assert.True(t, errors.Is(err, common.ErrConfiguration))
}
