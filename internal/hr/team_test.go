package hr

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nexushr/nexushr/internal/models"
)

func TestTeamService_Create(t *testing.T) {
	t.Run("assigns id, org, and creation time", func(t *testing.T) {
		f := newFixture(t)
		ctx := context.Background()
		ann := f.register(t, "Ann", "ann@x.com", "pw1", "Acme")

		team, err := f.teams.Create(ctx, ann, TeamInput{Name: "Core", Description: "Core team"})
		require.NoError(t, err)
		require.NotEmpty(t, team.ID)
		require.Equal(t, ann.OrgID, team.OrgID)
		require.Equal(t, "Core", team.Name)
		require.Equal(t, "Core team", team.Description)
		require.False(t, team.CreatedAt.IsZero())
	})

	t.Run("writes CREATE_TEAM entry", func(t *testing.T) {
		f := newFixture(t)
		ctx := context.Background()
		ann := f.register(t, "Ann", "ann@x.com", "pw1", "Acme")

		_, err := f.teams.Create(ctx, ann, TeamInput{Name: "Core"})
		require.NoError(t, err)

		logs, err := f.audit.List(ctx, ann.OrgID)
		require.NoError(t, err)
		require.Equal(t, models.ActionCreateTeam, logs[0].Action)
		require.Equal(t, "Created team: Core", logs[0].Details)
	})
}

func TestTeamService_List(t *testing.T) {
	t.Run("preserves insertion order", func(t *testing.T) {
		f := newFixture(t)
		ctx := context.Background()
		ann := f.register(t, "Ann", "ann@x.com", "pw1", "Acme")

		for _, name := range []string{"Core", "Platform", "Support"} {
			_, err := f.teams.Create(ctx, ann, TeamInput{Name: name})
			require.NoError(t, err)
		}

		teams, err := f.teams.List(ctx, ann.OrgID)
		require.NoError(t, err)
		require.Len(t, teams, 3)
		require.Equal(t, "Core", teams[0].Name)
		require.Equal(t, "Platform", teams[1].Name)
		require.Equal(t, "Support", teams[2].Name)
	})
}

func TestTeamService_Update(t *testing.T) {
	t.Run("merges only the provided fields", func(t *testing.T) {
		f := newFixture(t)
		ctx := context.Background()
		ann := f.register(t, "Ann", "ann@x.com", "pw1", "Acme")

		created, err := f.teams.Create(ctx, ann, TeamInput{Name: "Core", Description: "Core team"})
		require.NoError(t, err)

		desc := "Platform core team"
		updated, err := f.teams.Update(ctx, ann, created.ID, TeamUpdate{Description: &desc})
		require.NoError(t, err)
		require.Equal(t, "Core", updated.Name)
		require.Equal(t, "Platform core team", updated.Description)
	})

	t.Run("unknown id returns error", func(t *testing.T) {
		f := newFixture(t)
		ann := f.register(t, "Ann", "ann@x.com", "pw1", "Acme")

		name := "Nothing"
		_, err := f.teams.Update(context.Background(), ann, "missing", TeamUpdate{Name: &name})
		require.ErrorIs(t, err, ErrTeamNotFound)
	})
}

func TestTeamService_Delete(t *testing.T) {
	t.Run("is idempotent", func(t *testing.T) {
		f := newFixture(t)
		ctx := context.Background()
		ann := f.register(t, "Ann", "ann@x.com", "pw1", "Acme")

		created, err := f.teams.Create(ctx, ann, TeamInput{Name: "Core"})
		require.NoError(t, err)

		require.NoError(t, f.teams.Delete(ctx, ann, created.ID))
		require.NoError(t, f.teams.Delete(ctx, ann, created.ID))

		teams, err := f.teams.List(ctx, ann.OrgID)
		require.NoError(t, err)
		require.Empty(t, teams)
	})

	t.Run("cascades membership removal", func(t *testing.T) {
		f := newFixture(t)
		ctx := context.Background()
		ann := f.register(t, "Ann", "ann@x.com", "pw1", "Acme")

		bob, err := f.employees.Create(ctx, ann, EmployeeInput{Name: "Bob"})
		require.NoError(t, err)
		core, err := f.teams.Create(ctx, ann, TeamInput{Name: "Core"})
		require.NoError(t, err)
		require.NoError(t, f.assignments.AssignTeams(ctx, ann, bob.ID, []string{core.ID}))

		require.NoError(t, f.teams.Delete(ctx, ann, core.ID))

		withTeams, err := f.queries.EmployeesWithTeams(ctx, ann.OrgID)
		require.NoError(t, err)
		require.Len(t, withTeams, 1)
		require.Empty(t, withTeams[0].Teams)
	})

	t.Run("unknown id logs unknown placeholder", func(t *testing.T) {
		f := newFixture(t)
		ctx := context.Background()
		ann := f.register(t, "Ann", "ann@x.com", "pw1", "Acme")

		require.NoError(t, f.teams.Delete(ctx, ann, "missing"))

		logs, err := f.audit.List(ctx, ann.OrgID)
		require.NoError(t, err)
		require.Equal(t, models.ActionDeleteTeam, logs[0].Action)
		require.Equal(t, "Deleted team: unknown", logs[0].Details)
	})
}
