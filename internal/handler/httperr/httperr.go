package httperr

import (
	"net/http"

	"restaurant-reservations/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const internalMessage = "Internal server error"

// Response is the body of every failed request: {"error": "<message>"}.
type Response struct {
	Status int    `json:"-"`
	Error  string `json:"error"`
}

// Internal is the body shown for storage failures and panics.
func Internal() Response {
	return Response{Status: http.StatusInternalServerError, Error: internalMessage}
}

// StatusOf maps an error class to a status code. Conflicts are reported as
// 400 since clients of the reservation API only distinguish 400 and 404.
func StatusOf(err error) int {
	switch errs.Classify(err) {
	case errs.ErrValidation, errs.ErrConflict:
		return http.StatusBadRequest
	case errs.ErrNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Abort responds with msg and records cause on the context for the error renderer.
func Abort(c *gin.Context, status int, cause error, msg string) {
	if cause == nil {
		cause = errs.New(msg)
	}
	resp := Response{Status: status, Error: msg}
	_ = c.Error(cause).SetType(gin.ErrorTypePublic).SetMeta(resp)
	c.AbortWithStatusJSON(status, resp)
}

// AbortClassified responds according to the class attached to err. Only
// client-facing classes expose their message.
func AbortClassified(c *gin.Context, err error) {
	status := StatusOf(err)
	if status == http.StatusInternalServerError {
		Abort(c, status, err, internalMessage)
		return
	}
	Abort(c, status, err, err.Error())
}
