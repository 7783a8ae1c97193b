package commands

import (
	"context"
	"fmt"
)

// AssignCmd replaces an employee's full set of team memberships.
type AssignCmd struct {
	Employee string   `arg:"" help:"Employee id."`
	Teams    []string `help:"Team ids the employee should belong to. Omit to clear all memberships."`
}

func (c *AssignCmd) Run(ctx context.Context, globals *Globals) error {
	app, err := openEnv(ctx, globals)
	if err != nil {
		return err
	}
	defer app.Close()

	sess, err := app.actor()
	if err != nil {
		return err
	}

	if err := app.assignments.AssignTeams(ctx, sess.User, c.Employee, c.Teams); err != nil {
		return err
	}

	fmt.Printf("Updated assignments for employee %s\n", c.Employee)
	return nil
}
