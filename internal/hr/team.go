package hr

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/nexushr/nexushr/internal/kvstore"
	"github.com/nexushr/nexushr/internal/models"
)

// TeamInput carries the caller-supplied fields for a new team.
type TeamInput struct {
	Name        string
	Description string
}

// TeamUpdate is a partial update; nil fields are left unchanged.
type TeamUpdate struct {
	Name        *string
	Description *string
}

// TeamService is the CRUD repository for teams, symmetric to
// EmployeeService.
type TeamService struct {
	store kvstore.Store
	audit *AuditLog
}

// NewTeamService creates a team repository.
func NewTeamService(store kvstore.Store, audit *AuditLog) *TeamService {
	return &TeamService{store: store, audit: audit}
}

// List returns all teams of an organization in insertion order.
func (s *TeamService) List(ctx context.Context, orgID string) ([]models.Team, error) {
	teams, err := kvstore.Load[models.Team](ctx, s.store, collectionTeams)
	if err != nil {
		return nil, err
	}

	var result []models.Team
	for _, t := range teams {
		if t.OrgID == orgID {
			result = append(result, t)
		}
	}

	return result, nil
}

// Create adds a team to the actor's organization.
func (s *TeamService) Create(ctx context.Context, actor models.User, input TeamInput) (*models.Team, error) {
	teams, err := kvstore.Load[models.Team](ctx, s.store, collectionTeams)
	if err != nil {
		return nil, err
	}

	team := models.Team{
		ID:          newID(),
		OrgID:       actor.OrgID,
		Name:        input.Name,
		Description: input.Description,
		CreatedAt:   time.Now(),
	}
	teams = append(teams, team)

	if err := kvstore.Save(ctx, s.store, collectionTeams, teams); err != nil {
		return nil, err
	}

	if err := s.audit.Append(ctx, actor.OrgID, actor.ID, models.ActionCreateTeam,
		fmt.Sprintf("Created team: %s", input.Name)); err != nil {
		return nil, err
	}

	log.Debug().
		Str("org_id", actor.OrgID).
		Str("team_id", team.ID).
		Msg("team created")

	return &team, nil
}

// Update merges the non-nil fields of upd onto an existing team.
// Returns ErrTeamNotFound for an unknown id.
func (s *TeamService) Update(ctx context.Context, actor models.User, id string, upd TeamUpdate) (*models.Team, error) {
	teams, err := kvstore.Load[models.Team](ctx, s.store, collectionTeams)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range teams {
		if teams[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, ErrTeamNotFound
	}

	if upd.Name != nil {
		teams[idx].Name = *upd.Name
	}
	if upd.Description != nil {
		teams[idx].Description = *upd.Description
	}

	if err := kvstore.Save(ctx, s.store, collectionTeams, teams); err != nil {
		return nil, err
	}

	if err := s.audit.Append(ctx, actor.OrgID, actor.ID, models.ActionUpdateTeam,
		fmt.Sprintf("Updated team: %s", teams[idx].Name)); err != nil {
		return nil, err
	}

	updated := teams[idx]
	return &updated, nil
}

// Delete removes a team and cascades removal of every membership
// referencing it. Deleting an unknown id is a no-op.
func (s *TeamService) Delete(ctx context.Context, actor models.User, id string) error {
	teams, err := kvstore.Load[models.Team](ctx, s.store, collectionTeams)
	if err != nil {
		return err
	}

	name := "unknown"
	remaining := teams[:0:0]
	for _, t := range teams {
		if t.ID == id {
			name = t.Name
			continue
		}
		remaining = append(remaining, t)
	}

	if err := kvstore.Save(ctx, s.store, collectionTeams, remaining); err != nil {
		return err
	}

	if err := removeMemberships(ctx, s.store, func(m models.Membership) bool {
		return m.TeamID == id
	}); err != nil {
		return err
	}

	if err := s.audit.Append(ctx, actor.OrgID, actor.ID, models.ActionDeleteTeam,
		fmt.Sprintf("Deleted team: %s", name)); err != nil {
		return err
	}

	log.Debug().
		Str("org_id", actor.OrgID).
		Str("team_id", id).
		Msg("team deleted")

	return nil
}
