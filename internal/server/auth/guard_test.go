package auth

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/dmitrijs2005/usermgmt/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testArn = "arn:aws:execute-api:us-east-1:123456789012:api/dev/GET/users/u-1"

func newTestGuard(t *testing.T, tokens *TokenService) *Guard {
	t.Helper()
	return NewGuard(tokens, logging.Nop())
}

func TestGuard_AllowsValidToken(t *testing.T) {
	t.Parallel()
	tokens := NewTokenService("secret", time.Hour)
	g := newTestGuard(t, tokens)

	tok, err := tokens.Issue("subject-1")
	require.NoError(t, err)

	d := g.Authorize(context.Background(), "Bearer "+tok, testArn)
	assert.Equal(t, Decision{PrincipalID: "subject-1", Effect: EffectAllow, Resource: testArn}, d)
	assert.True(t, d.Allowed())
}

func TestGuard_DeniesEveryFailure(t *testing.T) {
	t.Parallel()

	now := time.Now()
	clock := now
	tokens := NewTokenService("secret", time.Minute, WithClock(func() time.Time { return clock }))
	expired, err := tokens.Issue("subject-1")
	require.NoError(t, err)
	clock = now.Add(time.Hour)

	forged, err := NewTokenService("other", time.Hour).Issue("subject-1")
	require.NoError(t, err)

	g := newTestGuard(t, tokens)

	cases := map[string]string{
		"absent":        "",
		"scheme only":   "Bearer ",
		"garbage":       "Bearer garbage",
		"expired":       "Bearer " + expired,
		"forged":        "Bearer " + forged,
		"wrong scheme":  "Basic dXNlcjpwYXNz",
		"no scheme":     forged,
		"short garbage": "Bear",
	}

	for name, header := range cases {
		t.Run(name, func(t *testing.T) {
			d := g.Authorize(context.Background(), header, testArn)
			assert.Equal(t, Decision{Effect: EffectDeny, Resource: testArn}, d)
		})
	}
}

func TestExtractBearerToken(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "abc", ExtractBearerToken("Bearer abc"))
	assert.Equal(t, "abc", ExtractBearerToken("bearer abc"))
	assert.Equal(t, "", ExtractBearerToken("Bearer "))
	assert.Equal(t, "", ExtractBearerToken("Token abcdef"))
	assert.Equal(t, "", ExtractBearerToken(""))
}

func TestDecision_ResponseAllow(t *testing.T) {
	t.Parallel()

	resp := Decision{PrincipalID: "u-1", Effect: EffectAllow, Resource: testArn}.Response()

	raw, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"principalId": "u-1",
		"policyDocument": {
			"Version": "2012-10-17",
			"Statement": [{"Action": "execute-api:Invoke", "Effect": "Allow", "Resource": "`+testArn+`"}]
		}
	}`, string(raw))
}

func TestDecision_ResponseDenyOmitsPolicy(t *testing.T) {
	t.Parallel()

	resp := Decision{Effect: EffectDeny, Resource: testArn}.Response()
	assert.Nil(t, resp.PolicyDocument)
	assert.Nil(t, resp.PrincipalID)

	raw, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.JSONEq(t, `{"principalId": null}`, string(raw))
}
