package main

import (
	"context"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog/log"

	"github.com/nexushr/nexushr/cmd/hrctl/internal/commands"
	"github.com/nexushr/nexushr/internal/logger"
)

var (
	version = "dev"
	cli     struct {
		Register  commands.RegisterCmd  `cmd:"" help:"Register an organization and its first user"`
		Login     commands.LoginCmd     `cmd:"" help:"Log in"`
		Logout    commands.LogoutCmd    `cmd:"" help:"Log out"`
		Whoami    commands.WhoamiCmd    `cmd:"" help:"Show the logged-in user"`
		Employee  commands.EmployeeCmd  `cmd:"" help:"Manage employees"`
		Team      commands.TeamCmd      `cmd:"" help:"Manage teams"`
		Assign    commands.AssignCmd    `cmd:"" help:"Set an employee's team memberships"`
		Logs      commands.LogsCmd      `cmd:"" help:"Show the audit log"`
		Dashboard commands.DashboardCmd `cmd:"" help:"Show the organization summary"`

		Config  string `help:"Path to the config file." type:"path"`
		Backend string `help:"Storage backend override (memory, file, sqlite, postgres)."`
		Latency int    `help:"Simulated store delay override in milliseconds." default:"-1"`
		Debug   bool   `help:"Enable debug mode."`
		Version kong.VersionFlag
	}
)

func main() {
	ctx := context.Background()
	cmd := kong.Parse(&cli,
		kong.Vars{
			"version": version,
		},
		kong.BindTo(ctx, (*context.Context)(nil)))

	log.Logger = logger.Setup(cli.Debug)

	err := cmd.Run(&commands.Globals{
		Debug:         cli.Debug,
		Version:       version,
		Config:        cli.Config,
		Backend:       cli.Backend,
		LatencyMillis: cli.Latency,
	})
	cmd.FatalIfErrorf(err)
}
