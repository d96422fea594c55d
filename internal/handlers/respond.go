package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"maestro/internal/apperr"
	"maestro/internal/models"
	"maestro/internal/service"

	"github.com/gin-gonic/gin"
)

// respondError renders a service error into the uniform envelope.
// Validation, conflict and not-found failures map to 400 and auth failures
// to 401; anything else is a 500 with no internal detail leaked.
func respondError(c *gin.Context, err error) {
	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		status := http.StatusBadRequest
		if appErr.Kind == apperr.KindAuth {
			status = http.StatusUnauthorized
		}
		c.JSON(status, models.Fail(appErr.Msg))
		return
	}

	if errors.Is(err, service.ErrSearchUnavailable) {
		c.JSON(http.StatusServiceUnavailable, models.Fail(err.Error()))
		return
	}

	slog.Error("Request failed", "error", err, "path", c.Request.URL.Path)
	c.JSON(http.StatusInternalServerError, models.Fail("internal server error"))
}

// respondBadRequest renders a request parsing failure.
func respondBadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, models.Fail(msg))
}
