package controller

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	domainerror "github.com/finbook/backend/internal/domain/error"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	previous := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(previous) })
	return &buf
}

func TestRespondError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newContext := func(recorder *httptest.ResponseRecorder) *gin.Context {
		ctx, _ := gin.CreateTestContext(recorder)
		ctx.Request = httptest.NewRequest(http.MethodGet, "/api/v1/goals/123", nil)
		return ctx
	}

	t.Run("maps a categorized error without logging", func(t *testing.T) {
		buf := captureLog(t)
		recorder := httptest.NewRecorder()

		respondError(newContext(recorder), domainerror.NotFound(
			domainerror.ErrCodeGoalNotFound,
			"goal not found",
			domainerror.ErrGoalNotFound,
		))

		if recorder.Code != http.StatusNotFound {
			t.Errorf("expected status 404, got %d", recorder.Code)
		}
		if buf.Len() != 0 {
			t.Errorf("expected no log output, got %q", buf.String())
		}
	})

	t.Run("logs an uncategorized error with the request", func(t *testing.T) {
		buf := captureLog(t)
		recorder := httptest.NewRecorder()

		respondError(newContext(recorder), errors.New("connection reset"))

		if recorder.Code != http.StatusInternalServerError {
			t.Errorf("expected status 500, got %d", recorder.Code)
		}
		if !strings.Contains(recorder.Body.String(), "An internal error occurred") {
			t.Errorf("expected opaque message, got %s", recorder.Body.String())
		}

		logged := buf.String()
		if !strings.Contains(logged, "connection reset") {
			t.Errorf("expected the error in the log, got %q", logged)
		}
		if !strings.Contains(logged, "GET") || !strings.Contains(logged, "/api/v1/goals/123") {
			t.Errorf("expected method and path in the log, got %q", logged)
		}
	})
}

func TestStatusForKind(t *testing.T) {
	cases := []struct {
		kind   domainerror.Kind
		status int
	}{
		{domainerror.KindInvalid, http.StatusBadRequest},
		{domainerror.KindNotFound, http.StatusNotFound},
		{domainerror.KindConflict, http.StatusConflict},
		{domainerror.KindInternal, http.StatusInternalServerError},
	}
	for _, c := range cases {
		if got := statusForKind(c.kind); got != c.status {
			t.Errorf("kind %s: expected %d, got %d", c.kind, c.status, got)
		}
	}
}
