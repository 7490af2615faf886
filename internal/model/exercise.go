package model

import "time"

// DateLayout is how exercise dates are rendered to clients.
const DateLayout = "Mon Jan 02 2006"

// Exercise is a single recorded activity belonging to a user.
// Duration is in minutes.
type Exercise struct {
	ID          string
	UserID      string
	Description string
	Duration    int
	Date        time.Time
}

// LogEntry is an exercise as it appears in a user's log: no identifiers.
type LogEntry struct {
	Description string
	Duration    int
	Date        time.Time
}

// Log is a user's identity joined with its (possibly truncated) exercises.
//
// Count is the number of entries that matched the date filter, which can be
// larger than len(Entries) when a limit was applied.
type Log struct {
	User    User
	Count   int
	Entries []LogEntry
}
