package handler

import (
	"testing"
	"time"

	"github.com/deppfellow/exercise-tracker/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestNewRequestAllocatesFreshPayload(t *testing.T) {
	prototype := &AddExerciseRequest{}

	first := newRequest(prototype)
	first.Description = "run"

	second := newRequest(prototype)
	assert.NotSame(t, first, second)
	assert.NotSame(t, prototype, first)
	assert.Empty(t, second.Description)
	assert.Empty(t, prototype.Description)
}

func TestNewLogResponse(t *testing.T) {
	log := &model.Log{
		User:  model.User{ID: "u1", Username: "alice"},
		Count: 3,
		Entries: []model.LogEntry{
			{Description: "run", Duration: 30, Date: time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)},
		},
	}

	res := newLogResponse(log)
	assert.Equal(t, LogResponse{
		ID:       "u1",
		Username: "alice",
		Count:    3,
		Logs:     []LogEntryResponse{{Description: "run", Duration: 30, Date: "Fri Jan 05 2024"}},
	}, res)
}

func TestNewLogResponseEmptyLogsIsArray(t *testing.T) {
	res := newLogResponse(&model.Log{User: model.User{ID: "u1", Username: "alice"}})
	assert.NotNil(t, res.Logs)
	assert.Empty(t, res.Logs)
}

func TestCreateUserRequestSanitize(t *testing.T) {
	req := &CreateUserRequest{Username: "a&b"}
	req.Sanitize()
	assert.Equal(t, "a&amp;b", req.Username)
}
