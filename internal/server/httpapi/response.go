package httpapi

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/usermgmt/internal/common"
	"github.com/gin-gonic/gin"
)

// Envelope is the body of every API response.
type Envelope struct {
	Success bool   `json:"success"`
	Result  any    `json:"result,omitempty"`
	Message string `json:"message,omitempty"`
}

func respondOK(c *gin.Context, result any) {
	c.JSON(http.StatusOK, Envelope{Success: true, Result: result})
}

func respondCreated(c *gin.Context, result any) {
	c.JSON(http.StatusCreated, Envelope{Success: true, Result: result})
}

// respondError maps err to a status by its kind. Only code and message of a
// *common.Error reach the client; wrapped causes stay in the log.
func respondError(c *gin.Context, err error) {
	c.AbortWithStatusJSON(StatusFor(err), Envelope{Success: false, Message: publicMessage(err)})
}

// StatusFor returns the HTTP status for err.
func StatusFor(err error) int {
	switch common.KindOf(err) {
	case common.KindValidation:
		return http.StatusBadRequest
	case common.KindAuthentication:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

func publicMessage(err error) string {
	var e *common.Error
	if errors.As(err, &e) {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return http.StatusText(http.StatusInternalServerError)
}
