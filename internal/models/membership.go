package models

// Membership is one row of the Employee<->Team many-to-many junction.
// It has no identity of its own; the (EmployeeID, TeamID) pair is the
// record, and duplicates of the same pair are never stored.
type Membership struct {
	EmployeeID string `json:"employeeId"`
	TeamID     string `json:"teamId"`
}
