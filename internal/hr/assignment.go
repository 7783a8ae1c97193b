package hr

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/nexushr/nexushr/internal/kvstore"
	"github.com/nexushr/nexushr/internal/models"
)

// AssignmentService maintains the Employee<->Team membership index.
// Wholesale replacement is the only mutation primitive: the caller
// submits the complete desired team set for one employee and it becomes
// the new truth. There is no add-one or remove-one operation, which
// keeps the multi-select assignment flow atomic.
type AssignmentService struct {
	store kvstore.Store
	audit *AuditLog
}

// NewAssignmentService creates an assignment service.
func NewAssignmentService(store kvstore.Store, audit *AuditLog) *AssignmentService {
	return &AssignmentService{store: store, audit: audit}
}

// AssignTeams replaces the employee's memberships with exactly the
// given team ids. Duplicate ids collapse to one membership; ids that do
// not resolve to an existing team are silently dropped. Memberships of
// other employees are untouched. One ASSIGN_TEAMS audit entry lists the
// resulting team names.
func (s *AssignmentService) AssignTeams(ctx context.Context, actor models.User, employeeID string, teamIDs []string) error {
	teams, err := kvstore.Load[models.Team](ctx, s.store, collectionTeams)
	if err != nil {
		return err
	}

	teamsByID := make(map[string]models.Team, len(teams))
	for _, t := range teams {
		teamsByID[t.ID] = t
	}

	memberships, err := kvstore.Load[models.Membership](ctx, s.store, collectionTeamMembers)
	if err != nil {
		return err
	}

	// Drop the employee's existing memberships
	remaining := memberships[:0:0]
	for _, m := range memberships {
		if m.EmployeeID == employeeID {
			continue
		}
		remaining = append(remaining, m)
	}

	// Insert one membership per unique, resolvable team id
	seen := make(map[string]bool, len(teamIDs))
	var teamNames []string
	for _, id := range teamIDs {
		if seen[id] {
			continue
		}
		seen[id] = true

		team, exists := teamsByID[id]
		if !exists {
			continue
		}

		remaining = append(remaining, models.Membership{EmployeeID: employeeID, TeamID: id})
		teamNames = append(teamNames, team.Name)
	}

	if err := kvstore.Save(ctx, s.store, collectionTeamMembers, remaining); err != nil {
		return err
	}

	if err := s.audit.Append(ctx, actor.OrgID, actor.ID, models.ActionAssignTeams,
		fmt.Sprintf("Updated assignments for employee %s. Now in: [%s]",
			employeeID, strings.Join(teamNames, ", "))); err != nil {
		return err
	}

	log.Debug().
		Str("org_id", actor.OrgID).
		Str("employee_id", employeeID).
		Int("teams", len(teamNames)).
		Msg("team assignments replaced")

	return nil
}
