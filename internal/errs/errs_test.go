package errs

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationErrorShape(t *testing.T) {
	err := ValidationError([]string{"Invalid ID"})

	body, marshalErr := json.Marshal(err)
	require.NoError(t, marshalErr)
	assert.JSONEq(t, `{"code":"BAD_REQUEST","message":"Validation failed","status":400,"errors":["Invalid ID"]}`, string(body))
}

func TestConflictErrorShape(t *testing.T) {
	err := NewConflictError("User with this username already exists")

	body, marshalErr := json.Marshal(err)
	require.NoError(t, marshalErr)
	assert.JSONEq(t, `{"code":"VALIDATION_CONFLICT","message":"User with this username already exists","status":400}`, string(body))
	assert.Equal(t, "User with this username already exists", err.Error())
}

func TestErrorsIsComparesKind(t *testing.T) {
	conflict := fmt.Errorf("create user: %w", NewConflictError("taken"))

	assert.ErrorIs(t, conflict, ErrConflict)
	assert.NotErrorIs(t, conflict, ErrInternal)
	assert.ErrorIs(t, NewInternalServerError(), ErrInternal)
	assert.False(t, errors.Is(NewBadRequestError("bad", nil, nil), ErrConflict))
}

func TestConstructorsDefaults(t *testing.T) {
	internal := NewInternalServerError()
	assert.Equal(t, http.StatusInternalServerError, internal.Status)
	assert.Equal(t, "INTERNAL_SERVER_ERROR", internal.Code)
	assert.Equal(t, KindInternal, internal.Kind)

	notFound := NewNotFoundError("Route not found", nil)
	assert.Equal(t, http.StatusNotFound, notFound.Status)
	assert.Equal(t, "NOT_FOUND", notFound.Code)

	code := "USER_REQUIRED"
	badRequest := NewBadRequestError("The user is required", &code, nil)
	assert.Equal(t, "USER_REQUIRED", badRequest.Code)
	assert.Equal(t, KindInputValidation, badRequest.Kind)
}

func TestWithMessageCopies(t *testing.T) {
	original := NewConflictError("first")
	copied := original.WithMessage("second")

	assert.Equal(t, "first", original.Message)
	assert.Equal(t, "second", copied.Message)
	assert.Equal(t, original.Kind, copied.Kind)
}

func TestMakeUpperCaseWithUnderscores(t *testing.T) {
	assert.Equal(t, "BAD_REQUEST", MakeUpperCaseWithUnderscores("Bad Request"))
}
