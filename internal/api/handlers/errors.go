package handlers

import (
	"errors"
	"net/http"

	"github.com/crewtrack/crewtime/internal/application"
	"github.com/crewtrack/crewtime/pkg/response"
	"github.com/gin-gonic/gin"
)

// writeError maps service errors onto HTTP statuses. Unrecognized errors
// become 500s without leaking internals.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, application.ErrNotFound):
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
	case errors.Is(err, application.ErrForbidden):
		c.JSON(http.StatusForbidden, response.ErrorResponse{Error: err.Error()})
	case errors.Is(err, application.ErrConcurrentModification):
		c.JSON(http.StatusConflict, response.ErrorResponse{Error: err.Error()})
	case errors.Is(err, application.ErrInvalidState),
		errors.Is(err, application.ErrEmptyTimesheet),
		errors.Is(err, application.ErrValidation):
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "internal error"})
	}
}
