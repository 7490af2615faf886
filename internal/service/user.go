package service

import (
	"context"

	"github.com/deppfellow/exercise-tracker/internal/middleware"
	"github.com/deppfellow/exercise-tracker/internal/model"
	"github.com/deppfellow/exercise-tracker/internal/observability"
	"github.com/deppfellow/exercise-tracker/internal/repository"
	"github.com/deppfellow/exercise-tracker/internal/server"
)

type UserService struct {
	server *server.Server
	users  *repository.UserRepository
}

func NewUserService(s *server.Server, users *repository.UserRepository) *UserService {
	return &UserService{server: s, users: users}
}

// CreateUser registers a new username.
func (s *UserService) CreateUser(ctx context.Context, username string) (*model.User, error) {
	user, err := s.users.CreateUser(ctx, username)
	if err != nil {
		return nil, err
	}

	observability.RecordUserCreated()
	middleware.LoggerFromContext(ctx, s.server.Logger).Info().
		Str("event", "user_created").
		Str("user_id", user.ID).
		Msg("user created")

	return user, nil
}

func (s *UserService) ListUsers(ctx context.Context) ([]model.User, error) {
	return s.users.ListUsers(ctx)
}
