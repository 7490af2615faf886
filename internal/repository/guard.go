package repository

import (
	"context"
	"fmt"

	"github.com/deppfellow/exercise-tracker/internal/errs"
	"github.com/deppfellow/exercise-tracker/internal/model"
	"github.com/deppfellow/exercise-tracker/internal/observability"
	"github.com/deppfellow/exercise-tracker/internal/sqlerr"
)

// presence is the polarity the existence guard enforces.
type presence bool

const (
	mustExist    presence = true
	mustNotExist presence = false
)

func fieldLabel(field model.UserField) string {
	if field == model.UserFieldID {
		return "ID"
	}
	return string(field)
}

// userConflict builds the rejection for a user that exists when it must
// not, or is missing when it must exist.
func userConflict(field model.UserField, exists bool) *errs.HTTPError {
	if exists {
		return errs.NewConflictError(fmt.Sprintf("User with this %s already exists", fieldLabel(field)))
	}
	return errs.NewConflictError(fmt.Sprintf("User with this %s doesn't exist", fieldLabel(field)))
}

// ensureUser is the existence guard run before every mutating or
// user-scoped read. A nil result means the caller may proceed.
//
// It fails with a conflict (400) when the lookup contradicts want and with
// an internal error (500) when the lookup itself fails.
func (r *UserRepository) ensureUser(ctx context.Context, field model.UserField, value string, want presence) error {
	user, err := r.GetUserByField(ctx, field, value)
	if err != nil {
		r.log.Error().Err(err).Str("field", string(field)).Msg("error while checking user existence")
		return sqlerr.HandleError(err)
	}

	exists := user != nil
	if exists != bool(want) {
		observability.RecordGuardRejection(string(field), exists)
		return userConflict(field, exists)
	}

	return nil
}
