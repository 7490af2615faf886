// Package service contains the business logic.
//
// It sits between the handler and repository layers.
// It receives validated data from the handler, performs
// business operations, and calls repository methods to interact
// with the data
package service

import (
	"github.com/deppfellow/exercise-tracker/internal/repository"
	"github.com/deppfellow/exercise-tracker/internal/server"
)

type Services struct {
	Users     *UserService
	Exercises *ExerciseService
}

func NewService(s *server.Server, repos *repository.Repositories) (*Services, error) {
	return &Services{
		Users:     NewUserService(s, repos.Users),
		Exercises: NewExerciseService(s, repos.Users, repos.Exercises),
	}, nil
}
