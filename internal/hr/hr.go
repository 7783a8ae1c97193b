// Package hr is the data and query layer of the HR record keeper. It
// models organizations, users, employees, teams, and team membership on
// top of a named-collection key-value store, and appends an immutable
// audit entry for every mutating operation.
//
// The package assumes a single logical actor mutating a given
// organization's data at a time. Operations are atomic
// read-modify-write sequences over whole collections; callers providing
// a shared store must serialize writes per organization.
package hr

import "github.com/google/uuid"

// Collection names in the store. Each is an independently serialized
// JSON array of records.
const (
	collectionUsers       = "users"
	collectionOrgs        = "orgs"
	collectionEmployees   = "employees"
	collectionTeams       = "teams"
	collectionTeamMembers = "team_members"
	collectionLogs        = "logs"
)

// newID returns a fresh opaque identifier. UUIDv7 keeps ids unique and
// roughly time-ordered.
func newID() string {
	return uuid.Must(uuid.NewV7()).String()
}
