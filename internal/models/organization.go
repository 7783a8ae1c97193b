package models

// Organization is the tenancy boundary. Every other entity belongs to
// exactly one organization, and no query crosses organizations.
type Organization struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
