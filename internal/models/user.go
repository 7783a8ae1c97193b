package models

// User is an authenticated actor within an organization. Users are
// created at registration and are immutable afterwards.
//
// The credential secret lives only in the storage record (see
// hr.userRecord); it is never attached to values handed to callers.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	OrgID string `json:"orgId"`
}
