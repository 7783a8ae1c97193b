package models

import "time"

// Employee is an HR record belonging to one organization.
// Employee emails are not required to be unique.
type Employee struct {
	ID        string    `json:"id"`
	OrgID     string    `json:"orgId"`
	Name      string    `json:"name"`
	JobTitle  string    `json:"jobTitle"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}
