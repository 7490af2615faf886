package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/deppfellow/exercise-tracker/internal/config"
	"github.com/deppfellow/exercise-tracker/internal/errs"
	"github.com/deppfellow/exercise-tracker/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer() *server.Server {
	logger := zerolog.Nop()
	return &server.Server{Config: config.Default(), Logger: &logger}
}

func TestRequestIDGeneratedAndEchoed(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seen string
	err := RequestID()(func(c echo.Context) error {
		seen = GetRequestID(c)
		return nil
	})(c)
	require.NoError(t, err)

	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, rec.Header().Get(RequestIDHeader))
}

func TestGlobalErrorHandler(t *testing.T) {
	global := NewGlobalMiddlewares(newTestServer())

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "validation",
			err:        errs.ValidationError([]string{"Invalid ID"}),
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"code":"BAD_REQUEST","message":"Validation failed","status":400,"errors":["Invalid ID"]}`,
		},
		{
			name:       "conflict",
			err:        errs.NewConflictError("User with this ID doesn't exist"),
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"code":"VALIDATION_CONFLICT","message":"User with this ID doesn't exist","status":400}`,
		},
		{
			name:       "route miss",
			err:        echo.ErrNotFound,
			wantStatus: http.StatusNotFound,
			wantBody:   `{"code":"NOT_FOUND","message":"Route not found","status":404}`,
		},
		{
			name:       "method not allowed",
			err:        echo.ErrMethodNotAllowed,
			wantStatus: http.StatusMethodNotAllowed,
			wantBody:   `{"code":"METHOD_NOT_ALLOWED","message":"Method Not Allowed","status":405}`,
		},
		{
			name:       "unknown error is hidden",
			err:        errors.New("connection reset by peer"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"code":"INTERNAL_SERVER_ERROR","message":"Internal Server Error","status":500}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			global.GlobalErrorHandler(tt.err, c)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestEnhanceContextStoresLogger(t *testing.T) {
	enhancer := NewContextEnhancer(newTestServer())

	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	fallback := zerolog.Nop()
	err := enhancer.EnhanceContext()(func(c echo.Context) error {
		fromEcho := GetLogger(c)
		fromCtx := LoggerFromContext(c.Request().Context(), &fallback)
		assert.Same(t, fromEcho, fromCtx)
		assert.NotSame(t, &fallback, fromCtx)
		return nil
	})(c)
	require.NoError(t, err)
}

func TestLoggerFromContextFallback(t *testing.T) {
	fallback := zerolog.Nop()
	assert.Same(t, &fallback, LoggerFromContext(context.Background(), &fallback))
}

func TestStatusFromError(t *testing.T) {
	assert.Equal(t, http.StatusOK, statusFromError(nil, http.StatusOK))
	assert.Equal(t, http.StatusBadRequest, statusFromError(errs.NewConflictError("x"), http.StatusOK))
	assert.Equal(t, http.StatusNotFound, statusFromError(echo.ErrNotFound, http.StatusOK))
	assert.Equal(t, http.StatusInternalServerError, statusFromError(errors.New("boom"), http.StatusOK))
}

func TestErrorBodyOmitsKind(t *testing.T) {
	body, err := json.Marshal(errs.NewInternalServerError())
	require.NoError(t, err)
	assert.NotContains(t, string(body), "kind")
}
