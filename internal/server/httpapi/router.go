// Package httpapi exposes the user service over HTTP with gin.
package httpapi

import (
	"github.com/dmitrijs2005/usermgmt/internal/logging"
	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.ReleaseMode)
}

// NewRouter wires the public and guarded user routes.
func NewRouter(h *Handler, guard Authorizer, l logging.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestLogger(l.With("module", "http")))

	r.GET("/ping", ping)

	r.POST("/users", h.register)
	r.POST("/users/login", h.login)

	guarded := r.Group("/users", RequireAuthorization(guard))
	guarded.GET("/:id", h.get)
	guarded.PUT("/:id", h.update)
	guarded.DELETE("/:id", h.delete)

	return r
}
