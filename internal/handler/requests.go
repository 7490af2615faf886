package handler

import (
	"html"

	"github.com/deppfellow/exercise-tracker/internal/validation"
)

// EmptyRequest is the payload of endpoints that take no input.
type EmptyRequest struct{}

func (r *EmptyRequest) Validate() error { return nil }

type CreateUserRequest struct {
	Username string `json:"username" form:"username" validate:"required,username" messages:"required=Username shouldn't be empty;username=The username is invalid"`
}

func (r *CreateUserRequest) Validate() error { return validation.Struct(r) }

func (r *CreateUserRequest) Sanitize() {
	r.Username = html.EscapeString(r.Username)
}

// UserIDRequest carries the :id path parameter.
type UserIDRequest struct {
	ID string `param:"id" json:"-" validate:"required,uuid" messages:"*=Invalid ID"`
}

func (r *UserIDRequest) Validate() error { return validation.Struct(r) }

type AddExerciseRequest struct {
	ID          string             `param:"id" json:"-" validate:"required,uuid" messages:"*=Invalid ID"`
	Date        string             `json:"date" form:"date" validate:"omitempty,isodate" messages:"*=Date is invalid or has wrong format"`
	Description string             `json:"description" form:"description" validate:"required" messages:"*=Description is required"`
	Duration    validation.Numeric `json:"duration" form:"duration" validate:"required,numeric,posint,int32" messages:"required=Invalid duration;numeric=Invalid duration;posint=Duration must be a positive number;int32=Duration is too large"`
}

func (r *AddExerciseRequest) Validate() error { return validation.Struct(r) }

func (r *AddExerciseRequest) Sanitize() {
	r.Description = html.EscapeString(r.Description)
}

// GetLogRequest reads its filters from the query string. Form or JSON
// bodies are accepted too.
type GetLogRequest struct {
	ID    string             `param:"id" json:"-" validate:"required,uuid" messages:"*=Invalid ID"`
	From  string             `query:"from" json:"from" form:"from" validate:"omitempty,isodate" messages:"*=Date is invalid or has wrong format"`
	To    string             `query:"to" json:"to" form:"to" validate:"omitempty,isodate" messages:"*=Date is invalid or has wrong format"`
	Limit validation.Numeric `query:"limit" json:"limit" form:"limit" validate:"omitempty,numeric,posint,int32" messages:"numeric=Invalid limit;posint=Limit must be a positive number;int32=Limit is too large"`
}

func (r *GetLogRequest) Validate() error { return validation.Struct(r) }
