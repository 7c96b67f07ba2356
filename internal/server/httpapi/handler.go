package httpapi

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/usermgmt/internal/common"
	"github.com/dmitrijs2005/usermgmt/internal/logging"
	"github.com/dmitrijs2005/usermgmt/internal/server/models"
	"github.com/dmitrijs2005/usermgmt/internal/server/services"
	"github.com/gin-gonic/gin"
)

// UserService is satisfied by *services.UserService.
type UserService interface {
	GetUser(ctx context.Context, id string) (*models.PublicUser, error)
	RegisterUser(ctx context.Context, req services.RegisterUserRequest) (*models.PublicUser, error)
	UpdateUser(ctx context.Context, req services.UpdateUserRequest) (*models.PublicUser, error)
	DeleteUser(ctx context.Context, id string) error
	LoginUser(ctx context.Context, req services.LoginUserRequest) (*services.LoginResult, error)
}

type Handler struct {
	users  UserService
	logger logging.Logger
}

func NewHandler(users UserService, l logging.Logger) *Handler {
	return &Handler{users: users, logger: l.With("module", "http_handler")}
}

func (h *Handler) fail(c *gin.Context, err error) {
	if common.KindOf(err) == common.KindSystem || common.KindOf(err) == common.KindConfiguration {
		h.logger.Error(c.Request.Context(), "request failed", "route", c.FullPath(), "error", err.Error())
	}
	respondError(c, err)
}

func badBody() error {
	return common.NewValidationError(common.CodeValidationFailed, common.MsgValidationFailed+" invalid request body")
}

func (h *Handler) register(c *gin.Context) {
	var req services.RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.fail(c, badBody())
		return
	}

	u, err := h.users.RegisterUser(c.Request.Context(), req)
	if err != nil {
		h.fail(c, err)
		return
	}
	respondCreated(c, u)
}

func (h *Handler) login(c *gin.Context) {
	var req services.LoginUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.fail(c, badBody())
		return
	}

	res, err := h.users.LoginUser(c.Request.Context(), req)
	if err != nil {
		h.fail(c, err)
		return
	}
	respondOK(c, res)
}

func (h *Handler) get(c *gin.Context) {
	u, err := h.users.GetUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	respondOK(c, u)
}

func (h *Handler) update(c *gin.Context) {
	var req services.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.fail(c, badBody())
		return
	}
	req.ID = c.Param("id")

	u, err := h.users.UpdateUser(c.Request.Context(), req)
	if err != nil {
		h.fail(c, err)
		return
	}
	respondOK(c, u)
}

func (h *Handler) delete(c *gin.Context) {
	id := c.Param("id")
	if err := h.users.DeleteUser(c.Request.Context(), id); err != nil {
		h.fail(c, err)
		return
	}
	respondOK(c, gin.H{"id": id})
}

func ping(c *gin.Context) {
	c.JSON(http.StatusOK, Envelope{Success: true, Result: "pong"})
}
