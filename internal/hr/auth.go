package hr

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/nexushr/nexushr/internal/kvstore"
	"github.com/nexushr/nexushr/internal/models"
)

// Session is the result of a successful Register or Login: the
// authenticated user plus an opaque token the caller keeps for the
// lifetime of its session.
type Session struct {
	User  models.User
	Token string
}

// AuthService registers organizations with their first user,
// authenticates users, and records auth events in the audit log.
type AuthService struct {
	store  kvstore.Store
	audit  *AuditLog
	tokens *TokenIssuer
}

// NewAuthService creates an auth service.
func NewAuthService(store kvstore.Store, audit *AuditLog, tokens *TokenIssuer) *AuthService {
	return &AuthService{store: store, audit: audit, tokens: tokens}
}

// Register creates a new organization together with its first user.
// The pair is one atomic step from the caller's point of view: a
// failure before the final write leaves neither behind. Returns
// ErrDuplicateUser if the email is already registered anywhere in the
// system. On success one REGISTER audit entry is written, attributed to
// the new user.
func (s *AuthService) Register(ctx context.Context, name, email, password, orgName string) (*Session, error) {
	users, err := kvstore.Load[userRecord](ctx, s.store, collectionUsers)
	if err != nil {
		return nil, err
	}

	for _, u := range users {
		if u.Email == email {
			return nil, ErrDuplicateUser
		}
	}

	orgs, err := kvstore.Load[models.Organization](ctx, s.store, collectionOrgs)
	if err != nil {
		return nil, err
	}

	org := models.Organization{
		ID:   newID(),
		Name: orgName,
	}
	orgs = append(orgs, org)

	user := userRecord{
		User: models.User{
			ID:    newID(),
			Email: email,
			Name:  name,
			OrgID: org.ID,
		},
		PasswordHash: password,
	}
	users = append(users, user)

	if err := kvstore.Save(ctx, s.store, collectionOrgs, orgs); err != nil {
		return nil, err
	}
	if err := kvstore.Save(ctx, s.store, collectionUsers, users); err != nil {
		return nil, err
	}

	if err := s.audit.Append(ctx, org.ID, user.ID, models.ActionRegister,
		fmt.Sprintf("Organization '%s' created", orgName)); err != nil {
		return nil, err
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("org_id", org.ID).
		Str("user_id", user.ID).
		Msg("organization registered")

	return &Session{User: user.User, Token: token}, nil
}

// Login authenticates a user by exact email and password match. The
// credential comparison is plaintext on purpose; this layer simulates a
// backend rather than hardening one. A failed login writes no audit
// entry; a successful one writes LOGIN.
func (s *AuthService) Login(ctx context.Context, email, password string) (*Session, error) {
	users, err := kvstore.Load[userRecord](ctx, s.store, collectionUsers)
	if err != nil {
		return nil, err
	}

	var match *userRecord
	for i := range users {
		if users[i].Email == email && users[i].PasswordHash == password {
			match = &users[i]
			break
		}
	}

	if match == nil {
		return nil, ErrInvalidCredentials
	}

	if err := s.audit.Append(ctx, match.OrgID, match.ID, models.ActionLogin, "User logged in"); err != nil {
		return nil, err
	}

	token, err := s.tokens.Issue(match.ID)
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("org_id", match.OrgID).
		Str("user_id", match.ID).
		Msg("user logged in")

	return &Session{User: match.User, Token: token}, nil
}

// Logout records a LOGOUT audit entry. There is no server-side session
// state to tear down; the caller discards its token.
func (s *AuthService) Logout(ctx context.Context, userID, orgID string) error {
	return s.audit.Append(ctx, orgID, userID, models.ActionLogout, "User logged out")
}
