package hr

import "github.com/nexushr/nexushr/internal/models"

// userRecord is the storage shape of a user: the public fields plus the
// credential secret. The secret is stored as supplied and compared
// byte-for-byte on login; this layer deliberately simulates
// authentication and does no hashing. Only the embedded User is ever
// returned to callers.
type userRecord struct {
	models.User
	PasswordHash string `json:"passwordHash"`
}
