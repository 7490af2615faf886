// Package router initializes the HTTP router (using Echo).
//
// It registers the middlewares and defines the API route groups,
// mapping specific paths to their corresponding handlers
package router

import (
	"github.com/deppfellow/exercise-tracker/internal/handler"
	"github.com/deppfellow/exercise-tracker/internal/middleware"
	"github.com/deppfellow/exercise-tracker/internal/server"
	"github.com/labstack/echo/v4"
)

// NewRouter builds the Echo instance with the global middleware chain, the
// error handler and every route.
//
// Order matters: the request id and the New Relic transaction must exist
// before ContextEnhancer builds the request logger, and the request logger
// must see that logger.
func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	m := middleware.NewMiddlewares(s)

	r := echo.New()
	r.HideBanner = true
	r.HidePort = true

	r.HTTPErrorHandler = m.Global.GlobalErrorHandler

	r.Use(
		middleware.RequestID(),
		m.Tracing.NewRelicMiddleware(),
		m.Tracing.EnhanceTracing(),
		m.ContextEnhancer.EnhanceContext(),
		m.Global.RequestLogger(),
		m.Global.Recover(),
		m.Global.Secure(),
		m.Global.CORS(),
	)

	registerSystemRoutes(r, s, h)
	registerAPIRoutes(r.Group("/api"), h)

	return r
}
