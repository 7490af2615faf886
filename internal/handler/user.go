package handler

import (
	"github.com/deppfellow/exercise-tracker/internal/server"
	"github.com/deppfellow/exercise-tracker/internal/service"
	"github.com/labstack/echo/v4"
)

type UserHandler struct {
	Handler
	userService *service.UserService
}

func NewUserHandler(s *server.Server, userService *service.UserService) *UserHandler {
	return &UserHandler{
		Handler:     NewHandler(s),
		userService: userService,
	}
}

func (h *UserHandler) CreateUser(c echo.Context, req *CreateUserRequest) (UserResponse, error) {
	user, err := h.userService.CreateUser(c.Request().Context(), req.Username)
	if err != nil {
		return UserResponse{}, err
	}
	return newUserResponse(*user), nil
}

func (h *UserHandler) ListUsers(c echo.Context, _ *EmptyRequest) ([]UserResponse, error) {
	users, err := h.userService.ListUsers(c.Request().Context())
	if err != nil {
		return nil, err
	}

	res := make([]UserResponse, 0, len(users))
	for _, u := range users {
		res = append(res, newUserResponse(u))
	}
	return res, nil
}
