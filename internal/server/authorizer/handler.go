// Package authorizer adapts the authorization guard to an API Gateway
// TOKEN custom authorizer Lambda.
package authorizer

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
	"github.com/dmitrijs2005/usermgmt/internal/server/auth"
)

// Guard is satisfied by *auth.Guard.
type Guard interface {
	Authorize(ctx context.Context, authorization, resource string) auth.Decision
}

type Handler struct {
	guard Guard
}

func NewHandler(g Guard) *Handler {
	return &Handler{guard: g}
}

// Handle answers one authorizer invocation. It never fails: a rejected token
// yields a response with a null principal and no policy, which the gateway
// treats as deny.
func (h *Handler) Handle(ctx context.Context, req events.APIGatewayCustomAuthorizerRequest) (auth.AuthResponse, error) {
	return h.guard.Authorize(ctx, req.AuthorizationToken, req.MethodArn).Response(), nil
}
