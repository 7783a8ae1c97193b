package commands

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
)

// DashboardCmd prints the organization summary: record counts, per-team
// membership and the most recent audit entries.
type DashboardCmd struct{}

func (c *DashboardCmd) Run(ctx context.Context, globals *Globals) error {
	app, err := openEnv(ctx, globals)
	if err != nil {
		return err
	}
	defer app.Close()

	sess, err := app.actor()
	if err != nil {
		return err
	}

	summary, err := app.queries.Dashboard(ctx, sess.User.OrgID)
	if err != nil {
		return err
	}

	fmt.Printf("Employees: %d\n", summary.EmployeeCount)
	fmt.Printf("Teams:     %d\n", summary.TeamCount)

	if len(summary.PerTeam) > 0 {
		fmt.Println("\nMembers per team:")
		w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
		for _, row := range summary.PerTeam {
			fmt.Fprintf(w, "  %s\t%d\n", row.TeamName, row.MemberCount)
		}
		if err := w.Flush(); err != nil {
			return err
		}
	}

	if len(summary.RecentLogs) > 0 {
		fmt.Println("\nRecent activity:")
		w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
		for _, entry := range summary.RecentLogs {
			fmt.Fprintf(w, "  %s\t%s\t%s\n",
				formatTime(entry.Timestamp), entry.UserName, entry.Details)
		}
		if err := w.Flush(); err != nil {
			return err
		}
	}

	return nil
}
