package hr

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/nexushr/nexushr/internal/kvstore"
	"github.com/nexushr/nexushr/internal/models"
)

// AuditLog appends and lists immutable audit entries. Entries are kept
// newest-first in storage, so List never sorts.
type AuditLog struct {
	store kvstore.Store
}

// NewAuditLog creates an audit log over the given store.
func NewAuditLog(store kvstore.Store) *AuditLog {
	return &AuditLog{store: store}
}

// Append writes one entry for a mutating action. The actor's display
// name is resolved at write time and frozen into the entry; if the user
// record cannot be found the entry carries the literal "Unknown". New
// entries are inserted at the head of the collection.
func (l *AuditLog) Append(ctx context.Context, orgID, userID, action, details string) error {
	entries, err := kvstore.Load[models.AuditEntry](ctx, l.store, collectionLogs)
	if err != nil {
		return err
	}

	userName := "Unknown"
	users, err := kvstore.Load[userRecord](ctx, l.store, collectionUsers)
	if err != nil {
		return err
	}
	for _, u := range users {
		if u.ID == userID {
			userName = u.Name
			break
		}
	}

	entry := models.AuditEntry{
		ID:        newID(),
		OrgID:     orgID,
		UserID:    userID,
		UserName:  userName,
		Action:    action,
		Details:   details,
		Timestamp: time.Now(),
	}

	entries = append([]models.AuditEntry{entry}, entries...)

	if err := kvstore.Save(ctx, l.store, collectionLogs, entries); err != nil {
		return err
	}

	log.Debug().
		Str("org_id", orgID).
		Str("action", action).
		Str("details", details).
		Msg("audit entry appended")

	return nil
}

// List returns all entries for an organization in storage order, which
// is newest-first by the append invariant.
func (l *AuditLog) List(ctx context.Context, orgID string) ([]models.AuditEntry, error) {
	entries, err := kvstore.Load[models.AuditEntry](ctx, l.store, collectionLogs)
	if err != nil {
		return nil, err
	}

	var result []models.AuditEntry
	for _, e := range entries {
		if e.OrgID == orgID {
			result = append(result, e)
		}
	}

	return result, nil
}
