package commands

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/nexushr/nexushr/internal/hr"
)

// EmployeeCmd groups the employee subcommands.
type EmployeeCmd struct {
	Add    EmployeeAddCmd    `cmd:"" help:"Add an employee."`
	List   EmployeeListCmd   `cmd:"" help:"List employees with their teams."`
	Update EmployeeUpdateCmd `cmd:"" help:"Update an employee."`
	Delete EmployeeDeleteCmd `cmd:"" help:"Delete an employee."`
}

type EmployeeAddCmd struct {
	Name     string `help:"Employee name." required:""`
	JobTitle string `help:"Job title." required:""`
	Email    string `help:"Contact email." required:""`
}

func (c *EmployeeAddCmd) Run(ctx context.Context, globals *Globals) error {
	app, err := openEnv(ctx, globals)
	if err != nil {
		return err
	}
	defer app.Close()

	sess, err := app.actor()
	if err != nil {
		return err
	}

	emp, err := app.employees.Create(ctx, sess.User, hr.EmployeeInput{
		Name:     c.Name,
		JobTitle: c.JobTitle,
		Email:    c.Email,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Added employee %s (%s)\n", emp.Name, emp.ID)
	return nil
}

type EmployeeListCmd struct{}

func (c *EmployeeListCmd) Run(ctx context.Context, globals *Globals) error {
	app, err := openEnv(ctx, globals)
	if err != nil {
		return err
	}
	defer app.Close()

	sess, err := app.actor()
	if err != nil {
		return err
	}

	employees, err := app.queries.EmployeesWithTeams(ctx, sess.User.OrgID)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tJOB TITLE\tEMAIL\tTEAMS")
	for _, emp := range employees {
		names := make([]string, 0, len(emp.Teams))
		for _, team := range emp.Teams {
			names = append(names, team.Name)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			emp.ID, emp.Name, emp.JobTitle, emp.Email, joinOrDash(names))
	}
	return w.Flush()
}

type EmployeeUpdateCmd struct {
	ID       string  `arg:"" help:"Employee id."`
	Name     *string `help:"New name."`
	JobTitle *string `help:"New job title."`
	Email    *string `help:"New contact email."`
}

func (c *EmployeeUpdateCmd) Run(ctx context.Context, globals *Globals) error {
	app, err := openEnv(ctx, globals)
	if err != nil {
		return err
	}
	defer app.Close()

	sess, err := app.actor()
	if err != nil {
		return err
	}

	emp, err := app.employees.Update(ctx, sess.User, c.ID, hr.EmployeeUpdate{
		Name:     c.Name,
		JobTitle: c.JobTitle,
		Email:    c.Email,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Updated employee %s\n", emp.Name)
	return nil
}

type EmployeeDeleteCmd struct {
	ID  string `arg:"" help:"Employee id."`
	Yes bool   `help:"Skip the confirmation prompt."`
}

func (c *EmployeeDeleteCmd) Run(ctx context.Context, globals *Globals) error {
	app, err := openEnv(ctx, globals)
	if err != nil {
		return err
	}
	defer app.Close()

	sess, err := app.actor()
	if err != nil {
		return err
	}

	if !confirm(c.Yes, fmt.Sprintf("Delete employee %s and their team memberships?", c.ID)) {
		fmt.Println("Aborted")
		return nil
	}

	if err := app.employees.Delete(ctx, sess.User, c.ID); err != nil {
		return err
	}

	fmt.Printf("Deleted employee %s\n", c.ID)
	return nil
}

func joinOrDash(names []string) string {
	if len(names) == 0 {
		return "-"
	}
	return strings.Join(names, ", ")
}
