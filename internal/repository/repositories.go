package repository

import (
	"github.com/deppfellow/exercise-tracker/internal/server"
)

// Repositories is a container for all repository instances.
type Repositories struct {
	Users     *UserRepository
	Exercises *ExerciseRepository
}

// NewRepositories constructs the repositories on top of the server's
// database handle.
func NewRepositories(s *server.Server) *Repositories {
	users := NewUserRepository(s.DB, s.Logger)

	return &Repositories{
		Users:     users,
		Exercises: NewExerciseRepository(s.DB, users, s.Logger),
	}
}
