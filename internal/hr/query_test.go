package hr

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nexushr/nexushr/internal/models"
)

func TestQueryService_EmployeesWithTeams(t *testing.T) {
	t.Run("employee without memberships has empty team list", func(t *testing.T) {
		f := newFixture(t)
		ctx := context.Background()
		ann := f.register(t, "Ann", "ann@x.com", "pw1", "Acme")

		_, err := f.employees.Create(ctx, ann, EmployeeInput{Name: "Bob"})
		require.NoError(t, err)

		withTeams, err := f.queries.EmployeesWithTeams(ctx, ann.OrgID)
		require.NoError(t, err)
		require.Len(t, withTeams, 1)
		require.NotNil(t, withTeams[0].Teams)
		require.Empty(t, withTeams[0].Teams)
	})

	t.Run("cross-org employees are excluded", func(t *testing.T) {
		f := newFixture(t)
		ctx := context.Background()
		ann := f.register(t, "Ann", "ann@x.com", "pw1", "Acme")
		zoe := f.register(t, "Zoe", "zoe@y.com", "pw2", "Globex")

		_, err := f.employees.Create(ctx, zoe, EmployeeInput{Name: "Other"})
		require.NoError(t, err)

		withTeams, err := f.queries.EmployeesWithTeams(ctx, ann.OrgID)
		require.NoError(t, err)
		require.Empty(t, withTeams)
	})
}

func TestQueryService_TeamsWithMembers(t *testing.T) {
	t.Run("joins members through the membership index", func(t *testing.T) {
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

		withMembers, err := f.queries.TeamsWithMembers(ctx, ann.OrgID)
		require.NoError(t, err)
		require.Len(t, withMembers, 1)
		require.Len(t, withMembers[0].Members, 2)
	})

	t.Run("team without members has empty member list", func(t *testing.T) {
		f := newFixture(t)
		ctx := context.Background()
		ann := f.register(t, "Ann", "ann@x.com", "pw1", "Acme")

		_, err := f.teams.Create(ctx, ann, TeamInput{Name: "Core"})
		require.NoError(t, err)

		withMembers, err := f.queries.TeamsWithMembers(ctx, ann.OrgID)
		require.NoError(t, err)
		require.Len(t, withMembers, 1)
		require.Empty(t, withMembers[0].Members)
	})
}

func TestQueryService_Dashboard(t *testing.T) {
	t.Run("aggregates counts and per-team breakdown", func(t *testing.T) {
		f := newFixture(t)
		ctx := context.Background()
		ann := f.register(t, "Ann", "ann@x.com", "pw1", "Acme")

		bob, err := f.employees.Create(ctx, ann, EmployeeInput{Name: "Bob"})
		require.NoError(t, err)
		_, err = f.employees.Create(ctx, ann, EmployeeInput{Name: "Carol"})
		require.NoError(t, err)
		core, err := f.teams.Create(ctx, ann, TeamInput{Name: "Core"})
		require.NoError(t, err)
		require.NoError(t, f.assignments.AssignTeams(ctx, ann, bob.ID, []string{core.ID}))

		summary, err := f.queries.Dashboard(ctx, ann.OrgID)
		require.NoError(t, err)
		require.Equal(t, 2, summary.EmployeeCount)
		require.Equal(t, 1, summary.TeamCount)
		require.Len(t, summary.PerTeam, 1)
		require.Equal(t, "Core", summary.PerTeam[0].TeamName)
		require.Equal(t, 1, summary.PerTeam[0].MemberCount)
	})

	t.Run("recent logs are capped at five, newest first", func(t *testing.T) {
		f := newFixture(t)
		ctx := context.Background()
		ann := f.register(t, "Ann", "ann@x.com", "pw1", "Acme")

		for range 7 {
			_, err := f.teams.Create(ctx, ann, TeamInput{Name: "T"})
			require.NoError(t, err)
		}

		summary, err := f.queries.Dashboard(ctx, ann.OrgID)
		require.NoError(t, err)
		require.Len(t, summary.RecentLogs, 5)
		require.Equal(t, models.ActionCreateTeam, summary.RecentLogs[0].Action)
	})

	t.Run("produces no audit entries", func(t *testing.T) {
		f := newFixture(t)
		ctx := context.Background()
		ann := f.register(t, "Ann", "ann@x.com", "pw1", "Acme")

		before, err := f.audit.List(ctx, ann.OrgID)
		require.NoError(t, err)

		_, err = f.queries.Dashboard(ctx, ann.OrgID)
		require.NoError(t, err)
		_, err = f.queries.EmployeesWithTeams(ctx, ann.OrgID)
		require.NoError(t, err)
		_, err = f.queries.TeamsWithMembers(ctx, ann.OrgID)
		require.NoError(t, err)

		after, err := f.audit.List(ctx, ann.OrgID)
		require.NoError(t, err)
		require.Len(t, after, len(before))
	})
}
