package router

import (
	"net/http"

	"github.com/deppfellow/exercise-tracker/internal/handler"
	"github.com/labstack/echo/v4"
)

func registerAPIRoutes(api *echo.Group, h *handler.Handlers) {
	users := api.Group("/users")

	users.POST("", handler.Handle(h.Users.Handler, h.Users.CreateUser, http.StatusOK, &handler.CreateUserRequest{}))
	users.GET("", handler.Handle(h.Users.Handler, h.Users.ListUsers, http.StatusOK, &handler.EmptyRequest{}))

	users.POST("/:id/exercises", handler.Handle(h.Exercises.Handler, h.Exercises.AddExercise, http.StatusOK, &handler.AddExerciseRequest{}))
	users.GET("/:id/exercises", handler.Handle(h.Exercises.Handler, h.Exercises.ListExercises, http.StatusOK, &handler.UserIDRequest{}))
	users.GET("/:id/logs", handler.Handle(h.Exercises.Handler, h.Exercises.GetLog, http.StatusOK, &handler.GetLogRequest{}))
}
