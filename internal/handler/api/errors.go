package api

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"restaurant-reservations/internal/handler/httperr"
	"restaurant-reservations/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

var errInvalidBody = errs.New("Request body must be valid JSON.")

// abortWithUsecaseError responds by error class. Storage failures are logged
// here and never shown to the caller.
func abortWithUsecaseError(c *gin.Context, err error) {
	if httperr.StatusOf(err) == http.StatusInternalServerError {
		slog.Error("request failed",
			"path", c.FullPath(),
			"error", err.Error(),
			"stack", errs.StackLines(err, 8))
	}
	httperr.AbortClassified(c, err)
}

// bindJSON decodes the body into req. An empty body leaves req untouched so
// that the usecase reports the missing data.
func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil && !errors.Is(err, io.EOF) {
		httperr.Abort(c, http.StatusBadRequest, err, errInvalidBody.Error())
		return false
	}
	return true
}

func parseIDParam(c *gin.Context, name, label string) (int64, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		httperr.Abort(c, http.StatusBadRequest, errs.Newf("invalid %s %q", name, raw), label+" id must be a positive integer.")
		return 0, false
	}
	return id, true
}
