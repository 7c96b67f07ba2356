package httpapi

import (
	"context"
	"time"

	"github.com/dmitrijs2005/usermgmt/internal/common"
	"github.com/dmitrijs2005/usermgmt/internal/logging"
	"github.com/dmitrijs2005/usermgmt/internal/server/auth"
	"github.com/gin-gonic/gin"
)

const principalKey = "principal_id"

// Authorizer is satisfied by *auth.Guard.
type Authorizer interface {
	Authorize(ctx context.Context, authorization, resource string) auth.Decision
}

// RequireAuthorization lets a request through only when the guard allows
// the Authorization header for "METHOD /route". The principal is stored in
// the gin context under principalKey.
func RequireAuthorization(guard Authorizer) gin.HandlerFunc {
	return func(c *gin.Context) {
		resource := c.Request.Method + " " + c.FullPath()

		d := guard.Authorize(c.Request.Context(), c.GetHeader(common.AuthorizationHeaderName), resource)
		if !d.Allowed() {
			respondError(c, common.NewAuthenticationError(common.CodeNotAuthorized, common.MsgNotAuthorized, nil))
			return
		}

		c.Set(principalKey, d.PrincipalID)
		c.Next()
	}
}

// RequestLogger logs one line per request. Headers and bodies are never
// logged.
func RequestLogger(l logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		l.Info(c.Request.Context(), "request",
			"method", c.Request.Method,
			"route", c.FullPath(),
			"status", c.Writer.Status(),
			"latency_ms", time.Since(start).Milliseconds(),
		)
	}
}
