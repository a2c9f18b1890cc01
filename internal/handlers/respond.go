package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/pocket_finance_app/internal/apperrors"
	"github.com/SscSPs/pocket_finance_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// statusForError maps service errors to HTTP statuses. Unknown errors are
// reported as 500 with a generic message so internals never leak.
func statusForError(err error) (int, string) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, apperrors.ErrState):
		return http.StatusConflict, err.Error()
	case errors.Is(err, apperrors.ErrDuplicate):
		return http.StatusConflict, err.Error()
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// respondError logs and writes a failure envelope for a service error.
func respondError(c *gin.Context, logger *slog.Logger, action string, err error) {
	status, msg := statusForError(err)
	if status == http.StatusInternalServerError {
		logger.Error("Failed to "+action, slog.String("error", err.Error()))
	} else {
		logger.Warn("Rejected "+action, slog.String("error", err.Error()))
	}
	c.JSON(status, dto.Fail(msg))
}

// respondBindError writes a 400 for a malformed request body or query.
func respondBindError(c *gin.Context, logger *slog.Logger, err error) {
	logger.Warn("Failed to bind request", slog.String("error", err.Error()))
	c.JSON(http.StatusBadRequest, dto.Fail("invalid request format: "+err.Error()))
}
