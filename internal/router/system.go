package router

import (
	"github.com/deppfellow/exercise-tracker/internal/handler"
	"github.com/deppfellow/exercise-tracker/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// registerSystemRoutes registers endpoints that are not part of the API:
// health, metrics, the landing page and its static assets.
func registerSystemRoutes(r *echo.Echo, s *server.Server, h *handler.Handlers) {
	r.GET("/status", h.Health.CheckHealth)
	r.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	r.GET("/", h.Index.ServeIndex)
	r.Static("/public", s.Config.Server.StaticDir)
}
