package commands

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/nexushr/nexushr/internal/hr"
)

// TeamCmd groups the team subcommands.
type TeamCmd struct {
	Add    TeamAddCmd    `cmd:"" help:"Create a team."`
	List   TeamListCmd   `cmd:"" help:"List teams with their members."`
	Update TeamUpdateCmd `cmd:"" help:"Update a team."`
	Delete TeamDeleteCmd `cmd:"" help:"Delete a team."`
}

type TeamAddCmd struct {
	Name        string `help:"Team name." required:""`
	Description string `help:"Team description."`
}

func (c *TeamAddCmd) Run(ctx context.Context, globals *Globals) error {
	app, err := openEnv(ctx, globals)
	if err != nil {
		return err
	}
	defer app.Close()

	sess, err := app.actor()
	if err != nil {
		return err
	}

	team, err := app.teams.Create(ctx, sess.User, hr.TeamInput{
		Name:        c.Name,
		Description: c.Description,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Created team %s (%s)\n", team.Name, team.ID)
	return nil
}

type TeamListCmd struct{}

func (c *TeamListCmd) Run(ctx context.Context, globals *Globals) error {
	app, err := openEnv(ctx, globals)
	if err != nil {
		return err
	}
	defer app.Close()

	sess, err := app.actor()
	if err != nil {
		return err
	}

	teams, err := app.queries.TeamsWithMembers(ctx, sess.User.OrgID)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tDESCRIPTION\tMEMBERS")
	for _, team := range teams {
		names := make([]string, 0, len(team.Members))
		for _, member := range team.Members {
			names = append(names, member.Name)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			team.ID, team.Name, team.Description, joinOrDash(names))
	}
	return w.Flush()
}

type TeamUpdateCmd struct {
	ID          string  `arg:"" help:"Team id."`
	Name        *string `help:"New name."`
	Description *string `help:"New description."`
}

func (c *TeamUpdateCmd) Run(ctx context.Context, globals *Globals) error {
	app, err := openEnv(ctx, globals)
	if err != nil {
		return err
	}
	defer app.Close()

	sess, err := app.actor()
	if err != nil {
		return err
	}

	team, err := app.teams.Update(ctx, sess.User, c.ID, hr.TeamUpdate{
		Name:        c.Name,
		Description: c.Description,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Updated team %s\n", team.Name)
	return nil
}

type TeamDeleteCmd struct {
	ID  string `arg:"" help:"Team id."`
	Yes bool   `help:"Skip the confirmation prompt."`
}

func (c *TeamDeleteCmd) Run(ctx context.Context, globals *Globals) error {
	app, err := openEnv(ctx, globals)
	if err != nil {
		return err
	}
	defer app.Close()

	sess, err := app.actor()
	if err != nil {
		return err
	}

	if !confirm(c.Yes, fmt.Sprintf("Delete team %s and its memberships?", c.ID)) {
		fmt.Println("Aborted")
		return nil
	}

	if err := app.teams.Delete(ctx, sess.User, c.ID); err != nil {
		return err
	}

	fmt.Printf("Deleted team %s\n", c.ID)
	return nil
}
