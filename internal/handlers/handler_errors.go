package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/storefront_currency/internal/apperrors"
	"github.com/SscSPs/storefront_currency/internal/middleware"
	"github.com/gin-gonic/gin"
)

// respondWithServiceError maps a service error to a status code and writes it.
// A configuration error is the caller's fault on a write (409) and the operator's on a read (500).
func respondWithServiceError(c *gin.Context, logger *slog.Logger, err error, isWrite bool, fallbackMsg string) {
	status := http.StatusInternalServerError
	msg := fallbackMsg

	switch {
	case errors.Is(err, apperrors.ErrInvalidAmount), errors.Is(err, apperrors.ErrValidation):
		status, msg = http.StatusBadRequest, err.Error()
	case errors.Is(err, apperrors.ErrRateNotFound), errors.Is(err, apperrors.ErrUnknownCurrency), errors.Is(err, apperrors.ErrNotFound):
		status, msg = http.StatusNotFound, err.Error()
	case errors.Is(err, apperrors.ErrDuplicate):
		status, msg = http.StatusConflict, err.Error()
	case errors.Is(err, apperrors.ErrConfiguration):
		if isWrite {
			status, msg = http.StatusConflict, err.Error()
		}
	}

	if status >= http.StatusInternalServerError {
		logger.Error(fallbackMsg, slog.String("error", err.Error()))
	} else {
		logger.Warn(fallbackMsg, slog.String("error", err.Error()), slog.Int("status", status))
	}
	c.JSON(status, gin.H{"error": msg})
}

// requireUserID reads the authenticated caller and answers 401 when it is missing.
func requireUserID(c *gin.Context, logger *slog.Logger) (string, bool) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	return userID, true
}
