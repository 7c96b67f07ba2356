package auth

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/usermgmt/internal/common"
	"github.com/dmitrijs2005/usermgmt/internal/logging"
)

// Effect is the verdict of an authorization check.
type Effect string

const (
	EffectAllow Effect = "Allow"
	EffectDeny  Effect = "Deny"
)

const (
	PolicyVersion   = "2012-10-17"
	PolicyAction    = "execute-api:Invoke"
	bearerPrefixLen = len(common.BearerPrefix)
)

// Decision is the outcome of one authorization check. PrincipalID is empty
// whenever Effect is Deny.
type Decision struct {
	PrincipalID string
	Effect      Effect
	Resource    string
}

// Allowed reports whether the decision grants access.
func (d Decision) Allowed() bool { return d.Effect == EffectAllow }

// PolicyStatement grants or denies one action on one resource.
type PolicyStatement struct {
	Action   string `json:"Action"`
	Effect   Effect `json:"Effect"`
	Resource string `json:"Resource"`
}

// PolicyDocument is the IAM-style policy returned to a gateway.
type PolicyDocument struct {
	Version   string            `json:"Version"`
	Statement []PolicyStatement `json:"Statement"`
}

// AuthResponse is the gateway authorizer response. A nil PolicyDocument is
// an implicit deny with no permitted actions.
type AuthResponse struct {
	PrincipalID    *string         `json:"principalId"`
	PolicyDocument *PolicyDocument `json:"policyDocument,omitempty"`
}

// Response renders d in the gateway shape: principal plus a single invoke
// statement when allowed, principal alone (null) when denied.
func (d Decision) Response() AuthResponse {
	if !d.Allowed() {
		return AuthResponse{}
	}
	principal := d.PrincipalID
	return AuthResponse{
		PrincipalID: &principal,
		PolicyDocument: &PolicyDocument{
			Version: PolicyVersion,
			Statement: []PolicyStatement{
				{Action: PolicyAction, Effect: EffectAllow, Resource: d.Resource},
			},
		},
	}
}

// TokenVerifier is the part of TokenService the guard depends on.
type TokenVerifier interface {
	Verify(token string) (*Claims, error)
}

// Guard turns an authorization header value into an allow/deny decision.
// It never returns an error: every verification failure becomes Deny and the
// reason is written only to the log.
type Guard struct {
	tokens TokenVerifier
	logger logging.Logger
}

// NewGuard builds a Guard over the given verifier.
func NewGuard(tokens TokenVerifier, l logging.Logger) *Guard {
	return &Guard{tokens: tokens, logger: l.With("module", "auth_guard")}
}

// Authorize verifies the bearer token in authorization and decides access to
// resource.
func (g *Guard) Authorize(ctx context.Context, authorization, resource string) Decision {
	token := ExtractBearerToken(authorization)

	claims, err := g.tokens.Verify(token)
	if err != nil {
		g.logger.Warn(ctx, "authorization denied", "resource", resource, "reason", denyReason(err))
		return Decision{Effect: EffectDeny, Resource: resource}
	}

	return Decision{PrincipalID: claims.SubjectID(), Effect: EffectAllow, Resource: resource}
}

// ExtractBearerToken returns everything after the "Bearer " scheme prefix,
// or "" when the prefix is missing.
func ExtractBearerToken(authorization string) string {
	if len(authorization) <= bearerPrefixLen {
		return ""
	}
	if !strings.EqualFold(authorization[:bearerPrefixLen], common.BearerPrefix) {
		return ""
	}
	return authorization[bearerPrefixLen:]
}

func denyReason(err error) string {
	switch {
	case IsExpired(err):
		return "expired token"
	case common.KindOf(err) == common.KindConfiguration:
		return "signing key is not configured"
	default:
		return err.Error()
	}
}
