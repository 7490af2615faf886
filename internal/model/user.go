package model

// User is a registered person. It is never updated; deleting it cascades to
// its exercises.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// UserField names a unique column a user can be looked up by.
type UserField string

const (
	UserFieldID       UserField = "user_id"
	UserFieldUsername UserField = "username"
)

// Valid reports whether f is a column users can be looked up by.
func (f UserField) Valid() bool {
	return f == UserFieldID || f == UserFieldUsername
}
