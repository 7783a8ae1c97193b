package hr

import (
	"context"

	"github.com/nexushr/nexushr/internal/kvstore"
	"github.com/nexushr/nexushr/internal/models"
)

// recentLogLimit caps the dashboard's recent-activity list.
const recentLogLimit = 5

// EmployeeWithTeams is an employee joined with the teams it belongs to.
type EmployeeWithTeams struct {
	models.Employee
	Teams []models.Team `json:"teams"`
}

// TeamWithMembers is a team joined with its member employees.
type TeamWithMembers struct {
	models.Team
	Members []models.Employee `json:"members"`
}

// TeamMemberCount is one row of the dashboard's per-team breakdown.
type TeamMemberCount struct {
	TeamID      string `json:"teamId"`
	TeamName    string `json:"teamName"`
	MemberCount int    `json:"memberCount"`
}

// DashboardSummary is a read-only aggregation for the landing view.
type DashboardSummary struct {
	EmployeeCount int                 `json:"employeeCount"`
	TeamCount     int                 `json:"teamCount"`
	PerTeam       []TeamMemberCount   `json:"perTeam"`
	RecentLogs    []models.AuditEntry `json:"recentLogs"`
}

// QueryService composes the repositories and the membership index into
// joined read-side views. It never mutates anything and writes no audit
// entries.
type QueryService struct {
	store kvstore.Store
	audit *AuditLog
}

// NewQueryService creates a query composer.
func NewQueryService(store kvstore.Store, audit *AuditLog) *QueryService {
	return &QueryService{store: store, audit: audit}
}

// EmployeesWithTeams returns each employee of the org with its resolved
// teams attached. Memberships pointing at teams that no longer exist
// are simply absent from the result.
func (s *QueryService) EmployeesWithTeams(ctx context.Context, orgID string) ([]EmployeeWithTeams, error) {
	employees, err := kvstore.Load[models.Employee](ctx, s.store, collectionEmployees)
	if err != nil {
		return nil, err
	}
	teams, err := kvstore.Load[models.Team](ctx, s.store, collectionTeams)
	if err != nil {
		return nil, err
	}
	memberships, err := kvstore.Load[models.Membership](ctx, s.store, collectionTeamMembers)
	if err != nil {
		return nil, err
	}

	teamsByID := make(map[string]models.Team, len(teams))
	for _, t := range teams {
		teamsByID[t.ID] = t
	}

	teamIDsByEmployee := make(map[string][]string)
	for _, m := range memberships {
		teamIDsByEmployee[m.EmployeeID] = append(teamIDsByEmployee[m.EmployeeID], m.TeamID)
	}

	var result []EmployeeWithTeams
	for _, e := range employees {
		if e.OrgID != orgID {
			continue
		}

		joined := EmployeeWithTeams{Employee: e, Teams: []models.Team{}}
		for _, teamID := range teamIDsByEmployee[e.ID] {
			if team, exists := teamsByID[teamID]; exists {
				joined.Teams = append(joined.Teams, team)
			}
		}
		result = append(result, joined)
	}

	return result, nil
}

// TeamsWithMembers returns each team of the org with its resolved
// member employees attached, the mirror join of EmployeesWithTeams.
func (s *QueryService) TeamsWithMembers(ctx context.Context, orgID string) ([]TeamWithMembers, error) {
	teams, err := kvstore.Load[models.Team](ctx, s.store, collectionTeams)
	if err != nil {
		return nil, err
	}
	employees, err := kvstore.Load[models.Employee](ctx, s.store, collectionEmployees)
	if err != nil {
		return nil, err
	}
	memberships, err := kvstore.Load[models.Membership](ctx, s.store, collectionTeamMembers)
	if err != nil {
		return nil, err
	}

	employeesByID := make(map[string]models.Employee, len(employees))
	for _, e := range employees {
		employeesByID[e.ID] = e
	}

	employeeIDsByTeam := make(map[string][]string)
	for _, m := range memberships {
		employeeIDsByTeam[m.TeamID] = append(employeeIDsByTeam[m.TeamID], m.EmployeeID)
	}

	var result []TeamWithMembers
	for _, t := range teams {
		if t.OrgID != orgID {
			continue
		}

		joined := TeamWithMembers{Team: t, Members: []models.Employee{}}
		for _, employeeID := range employeeIDsByTeam[t.ID] {
			if employee, exists := employeesByID[employeeID]; exists {
				joined.Members = append(joined.Members, employee)
			}
		}
		result = append(result, joined)
	}

	return result, nil
}

// Dashboard aggregates counts, the per-team member breakdown, and the
// most recent audit entries into one summary. Purely derived; no side
// effects.
func (s *QueryService) Dashboard(ctx context.Context, orgID string) (*DashboardSummary, error) {
	employees, err := s.EmployeesWithTeams(ctx, orgID)
	if err != nil {
		return nil, err
	}

	teams, err := s.TeamsWithMembers(ctx, orgID)
	if err != nil {
		return nil, err
	}

	logs, err := s.audit.List(ctx, orgID)
	if err != nil {
		return nil, err
	}
	if len(logs) > recentLogLimit {
		logs = logs[:recentLogLimit]
	}

	summary := &DashboardSummary{
		EmployeeCount: len(employees),
		TeamCount:     len(teams),
		PerTeam:       []TeamMemberCount{},
		RecentLogs:    logs,
	}
	for _, t := range teams {
		summary.PerTeam = append(summary.PerTeam, TeamMemberCount{
			TeamID:      t.ID,
			TeamName:    t.Name,
			MemberCount: len(t.Members),
		})
	}

	return summary, nil
}
