// Package httpx holds the JSON error envelope shared by every HTTP handler.
package httpx

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/abnerteste26-bot/group-champs/internal/apperr"
	"github.com/abnerteste26-bot/group-champs/internal/identity"
)

// ErrorResponse is the error body returned by every endpoint.
type ErrorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// ErrorJSON writes an error body with the given code and status.
func ErrorJSON(c *gin.Context, code string, message string, statusCode int) {
	resp := ErrorResponse{}
	resp.Error.Code = code
	resp.Error.Message = message
	c.AbortWithStatusJSON(statusCode, resp)
}

// InvalidRequest writes a 400 INVALID_REQUEST body.
func InvalidRequest(c *gin.Context, message string) {
	ErrorJSON(c, string(apperr.KindInvalidRequest), message, apperr.HTTPStatus(apperr.KindInvalidRequest))
}

// RespondError maps err to its kind and status. Internal and transient
// failures are logged; their cause is not exposed.
func RespondError(c *gin.Context, logger *zap.SugaredLogger, err error) {
	kind := apperr.KindOf(err)
	status := apperr.HTTPStatus(kind)

	if status >= 500 {
		logger.Errorw("request failed",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"kind", kind,
			"error", err,
		)
	}

	message := apperr.MessageOf(err)
	if kind == apperr.KindInternal {
		message = "internal server error"
	}
	ErrorJSON(c, string(kind), message, status)
}

// Actor returns the caller resolved by the authentication middleware.
// Anonymous callers get the zero Identity, which has no role.
func Actor(c *gin.Context) identity.Identity {
	id, _ := identity.FromContext(c.Request.Context())
	return id
}
