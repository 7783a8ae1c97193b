package models

import "time"

// Audit actions. This is the closed set of operation kinds recorded in
// the audit log; every mutating service call uses exactly one of them.
const (
	ActionRegister       = "REGISTER"
	ActionLogin          = "LOGIN"
	ActionLogout         = "LOGOUT"
	ActionCreateEmployee = "CREATE_EMPLOYEE"
	ActionUpdateEmployee = "UPDATE_EMPLOYEE"
	ActionDeleteEmployee = "DELETE_EMPLOYEE"
	ActionCreateTeam     = "CREATE_TEAM"
	ActionUpdateTeam     = "UPDATE_TEAM"
	ActionDeleteTeam     = "DELETE_TEAM"
	ActionAssignTeams    = "ASSIGN_TEAMS"
)

// AuditEntry records one mutating action. Entries are append-only and
// stored newest-first. UserName is a snapshot of the actor's display
// name at write time and is deliberately never re-resolved, so renaming
// or deleting a user leaves historical entries untouched.
type AuditEntry struct {
	ID        string    `json:"id"`
	OrgID     string    `json:"orgId"`
	UserID    string    `json:"userId"`
	UserName  string    `json:"userName"`
	Action    string    `json:"action"`
	Details   string    `json:"details"`
	Timestamp time.Time `json:"timestamp"`
}
