package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/SscSPs/ledger_core/internal/apperrors"
	"github.com/SscSPs/ledger_core/internal/core/domain"
	"github.com/SscSPs/ledger_core/internal/dto"
	"github.com/gin-gonic/gin"
)

const dateLayout = "2006-01-02"

// respondError maps err onto a status and renders the failure envelope.
// Internal failures are logged with their cause and answered with a generic message.
func respondError(c *gin.Context, logger *slog.Logger, err error, action string) {
	status := apperrors.StatusCode(err)

	var validationErr *apperrors.ValidationError
	if errors.As(err, &validationErr) {
		logger.Warn("Validation failed", slog.String("action", action), slog.Any("errors", validationErr.Errors))
		c.JSON(http.StatusBadRequest, dto.Fail(validationErr.Message, validationErr.Errors, validationErr.Warnings))
		return
	}

	if status >= http.StatusInternalServerError {
		logger.Error("Request failed", slog.String("action", action), slog.String("error", err.Error()))
		c.JSON(status, dto.Fail("Failed to "+action, nil, nil))
		return
	}

	logger.Warn("Request rejected", slog.String("action", action), slog.Int("status", status), slog.String("error", err.Error()))
	c.JSON(status, dto.Fail(errorMessage(err), nil, nil))
}

func errorMessage(err error) string {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}

func respondBindError(c *gin.Context, logger *slog.Logger, err error) {
	logger.Warn("Failed to bind request", slog.String("error", err.Error()))
	c.JSON(http.StatusBadRequest, dto.Fail("Invalid request format: "+err.Error(), nil, nil))
}

// parseTimeQuery reads an optional date (2006-01-02) or RFC3339 timestamp.
// A bare date used as an upper bound covers the whole day.
func parseTimeQuery(c *gin.Context, key string, upperBound bool) (*time.Time, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t, nil
	}
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be a date (YYYY-MM-DD) or RFC3339 timestamp", apperrors.ErrValidation, key)
	}
	if upperBound {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return &t, nil
}

func parseDateRange(c *gin.Context) (domain.DateRange, error) {
	from, err := parseTimeQuery(c, "from", false)
	if err != nil {
		return domain.DateRange{}, err
	}
	to, err := parseTimeQuery(c, "to", true)
	if err != nil {
		return domain.DateRange{}, err
	}
	return domain.DateRange{From: from, To: to}, nil
}

// parseIntQuery returns fallback when key is absent.
func parseIntQuery(c *gin.Context, key string, fallback int) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", apperrors.ErrValidation, key)
	}
	return n, nil
}
