package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"gemchat-backend/internal/utils"
)

type APIError struct {
	Code    utils.Code `json:"code"`
	Message string     `json:"message"`
}

func writeError(c *gin.Context, err error) {
	status := utils.HTTPStatus(err)

	var ae *utils.AppError
	if errors.As(err, &ae) {
		c.JSON(status, APIError{
			Code:    ae.Code,
			Message: ae.Message,
		})
		return
	}

	c.JSON(status, APIError{
		Code:    utils.CodeInternal,
		Message: http.StatusText(status),
	})
}

// requireUserID gates history and conversation endpoints; chat itself runs
// anonymously via currentUserID.
func requireUserID(c *gin.Context) (uint64, bool) {
	if id, ok := currentUserID(c); ok {
		return id, true
	}
	writeError(c, utils.E(utils.CodeUnauthorized, "Auth", "unauthorized", nil))
	return 0, false
}

func currentUserID(c *gin.Context) (uint64, bool) {
	if v, ok := c.Get("user_id"); ok {
		if id, ok := v.(uint64); ok && id != 0 {
			return id, true
		}
	}
	return 0, false
}
