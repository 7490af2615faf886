package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/deppfellow/exercise-tracker/internal/middleware"
	"github.com/deppfellow/exercise-tracker/internal/server"
	"github.com/labstack/echo/v4"
)

// HealthHandler exposes the status endpoint used by load balancers and
// uptime monitors to verify the service and its store are reachable.
type HealthHandler struct {
	Handler
}

func NewHealthHandler(s *server.Server) *HealthHandler {
	return &HealthHandler{
		Handler: NewHandler(s),
	}
}

// CheckHealth returns system health status and dependency checks.
//
// It returns:
// - 200 OK if all checks pass
// - 503 Service Unavailable if any check fails
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	start := time.Now()

	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	checks := make(map[string]interface{})
	response := map[string]interface{}{
		"status":      "healthy",
		"timestamp":   time.Now().UTC(),
		"environment": h.server.Config.Primary.Env,
		"checks":      checks,
	}

	isHealthy := true

	healthCfg := h.server.Config.Observability.HealthChecks
	if healthCfg.Enabled {
		ctx, cancel := context.WithTimeout(c.Request().Context(), healthCfg.Timeout)
		defer cancel()

		dbStart := time.Now()

		if err := h.server.DB.Ping(ctx); err != nil {
			checks["database"] = map[string]interface{}{
				"status":        "unhealthy",
				"driver":        h.server.DB.Dialect.Name(),
				"response_time": time.Since(dbStart).String(),
				"error":         err.Error(),
			}

			isHealthy = false

			logger.Error().
				Err(err).
				Dur("response_time", time.Since(dbStart)).
				Msg("database health check failed")

			if app := h.server.LoggerService.GetApplication(); app != nil {
				app.RecordCustomEvent(
					"HealthCheckError",
					map[string]interface{}{
						"check_type":       "database",
						"operation":        "health_check",
						"error_type":       "database_unhealthy",
						"response_time_ms": time.Since(dbStart).Milliseconds(),
						"error_message":    err.Error(),
					},
				)
			}
		} else {
			checks["database"] = map[string]interface{}{
				"status":        "healthy",
				"driver":        h.server.DB.Dialect.Name(),
				"response_time": time.Since(dbStart).String(),
			}

			logger.Debug().
				Dur("response_time", time.Since(dbStart)).
				Msg("database health check passed")
		}
	}

	if !isHealthy {
		response["status"] = "unhealthy"

		logger.Warn().
			Dur("total_duration", time.Since(start)).
			Msg("health check failed")

		return c.JSON(http.StatusServiceUnavailable, response)
	}

	if err := c.JSON(http.StatusOK, response); err != nil {
		logger.Error().Err(err).Msg("failed to write JSON response")
		return fmt.Errorf("failed to write JSON response: %w", err)
	}

	return nil
}
