// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainerror "github.com/finbook/backend/internal/domain/error"
	"github.com/finbook/backend/internal/integration/entrypoint/dto"
)

// respondError maps a use case error to an HTTP response. Categorized
// domain errors carry their own message and code; anything else is logged
// with the request that triggered it and becomes an opaque 500.
func respondError(ctx *gin.Context, err error) {
	var domainErr *domainerror.DomainError
	if errors.As(err, &domainErr) {
		ctx.JSON(statusForKind(domainErr.Kind), dto.ErrorResponse{
			Error: domainErr.Message,
			Code:  string(domainErr.Code),
		})
		return
	}

	slog.Error("unhandled error",
		"error", err,
		"method", ctx.Request.Method,
		"path", ctx.Request.URL.Path,
	)
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// statusForKind maps an error kind to an HTTP status code.
func statusForKind(kind domainerror.Kind) int {
	switch kind {
	case domainerror.KindInvalid:
		return http.StatusBadRequest
	case domainerror.KindNotFound:
		return http.StatusNotFound
	case domainerror.KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// parseUUIDParam parses a UUID path parameter, responding with 400 on
// failure.
func parseUUIDParam(ctx *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param(name))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid " + name + " format",
		})
		return uuid.UUID{}, false
	}
	return id, true
}

// parseDate parses a YYYY-MM-DD date string, responding with 400 on failure.
func parseDate(ctx *gin.Context, value string) (time.Time, bool) {
	date, err := time.Parse(dto.DateLayout, value)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid date format, expected YYYY-MM-DD",
		})
		return time.Time{}, false
	}
	return date, true
}
