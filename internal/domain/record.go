package domain

import "time"

// DateLayout is the calendar rendering used in API responses,
// e.g. "Mon May 01 2023".
const DateLayout = "Mon Jan 02 2006"

// User is a registered account that exercises are logged against.
type User struct {
	ID        string
	Username  string
	CreatedAt time.Time
}

// Exercise is a single immutable log entry owned by a user.
type Exercise struct {
	ID          string
	UserID      string
	Description string
	Duration    int
	Date        time.Time
}

// DateString renders the exercise date as the fixed calendar string.
func (e Exercise) DateString() string {
	return e.Date.Format(DateLayout)
}

// LogFilter narrows an exercise listing. From and To are inclusive
// bounds on the exercise date; a nil bound is open. Limit caps the
// number of results when positive and is unbounded otherwise.
type LogFilter struct {
	UserID string
	From   *time.Time
	To     *time.Time
	Limit  int
}

// Matches reports whether the exercise falls inside the filter's
// date interval. Ownership and limit are not checked here.
func (f LogFilter) Matches(e Exercise) bool {
	if f.From != nil && e.Date.Before(*f.From) {
		return false
	}
	if f.To != nil && e.Date.After(*f.To) {
		return false
	}
	return true
}
