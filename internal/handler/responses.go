package handler

import (
	"github.com/deppfellow/exercise-tracker/internal/model"
)

type UserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

type ExerciseResponse struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        string `json:"date"`
}

type LogEntryResponse struct {
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        string `json:"date"`
}

type LogResponse struct {
	ID       string             `json:"id"`
	Username string             `json:"username"`
	Count    int                `json:"count"`
	Logs     []LogEntryResponse `json:"logs"`
}

func newUserResponse(u model.User) UserResponse {
	return UserResponse{ID: u.ID, Username: u.Username}
}

func newExerciseResponse(e model.Exercise) ExerciseResponse {
	return ExerciseResponse{
		ID:          e.ID,
		Description: e.Description,
		Duration:    e.Duration,
		Date:        e.Date.Format(model.DateLayout),
	}
}

func newLogResponse(l *model.Log) LogResponse {
	logs := make([]LogEntryResponse, 0, len(l.Entries))
	for _, e := range l.Entries {
		logs = append(logs, LogEntryResponse{
			Description: e.Description,
			Duration:    e.Duration,
			Date:        e.Date.Format(model.DateLayout),
		})
	}

	return LogResponse{
		ID:       l.User.ID,
		Username: l.User.Username,
		Count:    l.Count,
		Logs:     logs,
	}
}
