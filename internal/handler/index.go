package handler

import (
	"errors"
	"net/http"
	"path/filepath"

	"github.com/deppfellow/exercise-tracker/internal/errs"
	"github.com/deppfellow/exercise-tracker/internal/server"
	"github.com/labstack/echo/v4"
)

// IndexHandler serves the landing page with the forms that exercise the API.
type IndexHandler struct {
	Handler
}

func NewIndexHandler(s *server.Server) *IndexHandler {
	return &IndexHandler{
		Handler: NewHandler(s),
	}
}

// ServeIndex writes views/index.html. Caching is disabled so edits show up
// immediately.
func (h *IndexHandler) ServeIndex(c echo.Context) error {
	c.Response().Header().Set("Cache-Control", "no-cache")

	page := filepath.Join(h.server.Config.Server.ViewsDir, "index.html")
	if err := c.File(page); err != nil {
		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) && httpErr.Code == http.StatusNotFound {
			return errs.NewNotFoundError("Page not found", nil)
		}
		return err
	}

	return nil
}
