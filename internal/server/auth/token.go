// Package auth holds the authentication core: password hashing, bearer token
// issuance/verification and the allow/deny authorization guard.
package auth

import (
	"errors"
	"time"

	"github.com/dmitrijs2005/usermgmt/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// DefaultTokenTTL is the lifetime of an issued token: two days.
const DefaultTokenTTL = 172800 * time.Second

// Claims is the token payload. Subject (sub) carries the user id; UserID
// repeats it under the legacy "id" claim so older consumers keep working.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"id,omitempty"`
}

// SubjectID returns the identity the token was issued for.
func (c *Claims) SubjectID() string {
	if c.Subject != "" {
		return c.Subject
	}
	return c.UserID
}

// TokenService signs and verifies HS256 bearer tokens. It holds no mutable
// state and is safe for concurrent use.
type TokenService struct {
	secretKey []byte
	ttl       time.Duration
	now       func() time.Time
}

// TokenOption configures a TokenService.
type TokenOption func(*TokenService)

// WithClock replaces time.Now, mostly for expiry tests.
func WithClock(now func() time.Time) TokenOption {
	return func(s *TokenService) { s.now = now }
}

// NewTokenService builds a TokenService. A zero ttl means DefaultTokenTTL.
// An empty key is accepted here and reported on first use, so a missing key
// surfaces as a configuration error rather than a panic.
func NewTokenService(secretKey string, ttl time.Duration, opts ...TokenOption) *TokenService {
	if ttl == 0 {
		ttl = DefaultTokenTTL
	}
	s := &TokenService{secretKey: []byte(secretKey), ttl: ttl, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// TTL returns the configured token lifetime.
func (s *TokenService) TTL() time.Duration { return s.ttl }

// Issue returns a signed token for subjectID expiring TTL from now.
func (s *TokenService) Issue(subjectID string) (string, error) {
	if len(s.secretKey) == 0 {
		return "", common.NewConfigurationError("signing key is not configured")
	}

	now := s.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subjectID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
		UserID: subjectID,
	})

	tokenString, err := token.SignedString(s.secretKey)
	if err != nil {
		return "", common.NewSystemError(common.CodeTokenSigning, common.MsgTokenSigning, err)
	}

	return tokenString, nil
}

// Verify checks signature, algorithm and expiry and returns the claims.
// Every rejection is an authentication error; the cause is kept for logs.
func (s *TokenService) Verify(tokenString string) (*Claims, error) {
	if tokenString == "" {
		return nil, common.NewAuthenticationError(common.CodeNotAuthorized, common.MsgMissingToken, nil)
	}
	if len(s.secretKey) == 0 {
		return nil, common.NewConfigurationError("signing key is not configured")
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secretKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, common.NewAuthenticationError(common.CodeNotAuthorized, common.MsgInvalidToken, err)
	}

	if !token.Valid || claims.SubjectID() == "" {
		return nil, common.NewAuthenticationError(common.CodeNotAuthorized, common.MsgInvalidToken, errors.New("token has no subject"))
	}

	return claims, nil
}

// IsExpired reports whether err is a verification failure caused by expiry.
func IsExpired(err error) bool {
	return errors.Is(err, jwt.ErrTokenExpired)
}
