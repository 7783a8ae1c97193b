package commands

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
)

// LogsCmd prints the organization's audit log, newest first.
type LogsCmd struct {
	Limit int `help:"Maximum number of entries to show. Zero shows all." default:"0"`
}

func (c *LogsCmd) Run(ctx context.Context, globals *Globals) error {
	app, err := openEnv(ctx, globals)
	if err != nil {
		return err
	}
	defer app.Close()

	sess, err := app.actor()
	if err != nil {
		return err
	}

	entries, err := app.audit.List(ctx, sess.User.OrgID)
	if err != nil {
		return err
	}

	if c.Limit > 0 && len(entries) > c.Limit {
		entries = entries[:c.Limit]
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "TIME\tUSER\tACTION\tDETAILS")
	for _, entry := range entries {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			formatTime(entry.Timestamp), entry.UserName, entry.Action, entry.Details)
	}
	return w.Flush()
}
