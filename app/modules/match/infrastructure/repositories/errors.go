package matchdb

import "errors"

// Sentinel errors for the repository layer. These signal database state; the
// service layer decides whether one is a business failure.
var (
	ErrMatchNotFound  = errors.New("match not found")
	ErrRoundNotFound  = errors.New("round not found")
	ErrCourseNotFound = errors.New("course not found")

	// ErrNoRowsAffected indicates an UPDATE matched no rows.
	ErrNoRowsAffected = errors.New("no rows affected")
)
