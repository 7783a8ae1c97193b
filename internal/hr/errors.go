package hr

import "errors"

// Sentinel errors for the data layer. Everything not listed here is a
// total operation: deletes are idempotent, assignments drop unresolvable
// team ids, and reads over missing data return empty results.
var (
	// ErrDuplicateUser is returned by Register when the email is taken.
	ErrDuplicateUser = errors.New("user already exists")

	// ErrInvalidCredentials is returned by Login when no user matches
	// both email and password.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrEmployeeNotFound is returned by employee Update for an unknown id.
	ErrEmployeeNotFound = errors.New("employee not found")

	// ErrTeamNotFound is returned by team Update for an unknown id.
	ErrTeamNotFound = errors.New("team not found")
)
