package hr

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nexushr/nexushr/internal/models"
)

func TestAssignmentService_AssignTeams(t *testing.T) {
	t.Run("replacement supersedes prior memberships", func(t *testing.T) {
		f := newFixture(t)
		ctx := context.Background()
		ann := f.register(t, "Ann", "ann@x.com", "pw1", "Acme")

		bob, err := f.employees.Create(ctx, ann, EmployeeInput{Name: "Bob"})
		require.NoError(t, err)
		teamA, err := f.teams.Create(ctx, ann, TeamInput{Name: "A"})
		require.NoError(t, err)
		teamB, err := f.teams.Create(ctx, ann, TeamInput{Name: "B"})
		require.NoError(t, err)
		teamC, err := f.teams.Create(ctx, ann, TeamInput{Name: "C"})
		require.NoError(t, err)

		require.NoError(t, f.assignments.AssignTeams(ctx, ann, bob.ID, []string{teamA.ID, teamB.ID}))
		require.NoError(t, f.assignments.AssignTeams(ctx, ann, bob.ID, []string{teamB.ID, teamC.ID}))

		withTeams, err := f.queries.EmployeesWithTeams(ctx, ann.OrgID)
		require.NoError(t, err)
		require.Len(t, withTeams, 1)

		var names []string
		for _, team := range withTeams[0].Teams {
			names = append(names, team.Name)
		}
		require.ElementsMatch(t, []string{"B", "C"}, names)
	})

	t.Run("duplicate team ids collapse to one membership", func(t *testing.T) {
		f := newFixture(t)
		ctx := context.Background()
		ann := f.register(t, "Ann", "ann@x.com", "pw1", "Acme")

		bob, err := f.employees.Create(ctx, ann, EmployeeInput{Name: "Bob"})
		require.NoError(t, err)
		core, err := f.teams.Create(ctx, ann, TeamInput{Name: "Core"})
		require.NoError(t, err)

		require.NoError(t, f.assignments.AssignTeams(ctx, ann, bob.ID, []string{core.ID, core.ID, core.ID}))

		withTeams, err := f.queries.EmployeesWithTeams(ctx, ann.OrgID)
		require.NoError(t, err)
		require.Len(t, withTeams[0].Teams, 1)
	})

	t.Run("unresolvable team ids are dropped without error", func(t *testing.T) {
		f := newFixture(t)
		ctx := context.Background()
		ann := f.register(t, "Ann", "ann@x.com", "pw1", "Acme")

		bob, err := f.employees.Create(ctx, ann, EmployeeInput{Name: "Bob"})
		require.NoError(t, err)
		core, err := f.teams.Create(ctx, ann, TeamInput{Name: "Core"})
		require.NoError(t, err)

		require.NoError(t, f.assignments.AssignTeams(ctx, ann, bob.ID, []string{core.ID, "missing"}))

		withTeams, err := f.queries.EmployeesWithTeams(ctx, ann.OrgID)
		require.NoError(t, err)
		require.Len(t, withTeams[0].Teams, 1)
		require.Equal(t, "Core", withTeams[0].Teams[0].Name)
	})

	t.Run("empty set clears all memberships", func(t *testing.T) {
		f := newFixture(t)
		ctx := context.Background()
		ann := f.register(t, "Ann", "ann@x.com", "pw1", "Acme")

		bob, err := f.employees.Create(ctx, ann, EmployeeInput{Name: "Bob"})
		require.NoError(t, err)
		core, err := f.teams.Create(ctx, ann, TeamInput{Name: "Core"})
		require.NoError(t, err)
		require.NoError(t, f.assignments.AssignTeams(ctx, ann, bob.ID, []string{core.ID}))

		require.NoError(t, f.assignments.AssignTeams(ctx, ann, bob.ID, nil))

		withTeams, err := f.queries.EmployeesWithTeams(ctx, ann.OrgID)
		require.NoError(t, err)
		require.Empty(t, withTeams[0].Teams)
	})

	t.Run("other employees keep their memberships", func(t *testing.T) {
		f := newFixture(t)
		ctx := context.Background()
		ann := f.register(t, "Ann", "ann@x.com", "pw1", "Acme")

		bob, err := f.employees.Create(ctx, ann, EmployeeInput{Name: "Bob"})
		require.NoError(t, err)
		carol, err := f.employees.Create(ctx, ann, EmployeeInput{Name: "Carol"})
		require.NoError(t, err)
		core, err := f.teams.Create(ctx, ann, TeamInput{Name: "Core"})
		require.NoError(t, err)

		require.NoError(t, f.assignments.AssignTeams(ctx, ann, bob.ID, []string{core.ID}))
		require.NoError(t, f.assignments.AssignTeams(ctx, ann, carol.ID, []string{core.ID}))
		require.NoError(t, f.assignments.AssignTeams(ctx, ann, bob.ID, nil))

		withMembers, err := f.queries.TeamsWithMembers(ctx, ann.OrgID)
		require.NoError(t, err)
		require.Len(t, withMembers[0].Members, 1)
		require.Equal(t, "Carol", withMembers[0].Members[0].Name)
	})

	t.Run("audit entry lists the resulting team names", func(t *testing.T) {
		f := newFixture(t)
		ctx := context.Background()
		ann := f.register(t, "Ann", "ann@x.com", "pw1", "Acme")

		bob, err := f.employees.Create(ctx, ann, EmployeeInput{Name: "Bob"})
		require.NoError(t, err)
		teamA, err := f.teams.Create(ctx, ann, TeamInput{Name: "A"})
		require.NoError(t, err)
		teamB, err := f.teams.Create(ctx, ann, TeamInput{Name: "B"})
		require.NoError(t, err)

		require.NoError(t, f.assignments.AssignTeams(ctx, ann, bob.ID, []string{teamA.ID, teamB.ID}))

		logs, err := f.audit.List(ctx, ann.OrgID)
		require.NoError(t, err)
		require.Equal(t, models.ActionAssignTeams, logs[0].Action)
		require.Contains(t, logs[0].Details, bob.ID)
		require.Contains(t, logs[0].Details, "[A, B]")
	})
}
