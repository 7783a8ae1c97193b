package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/nexushr/nexushr/cmd/hrctl/internal/session"
)

// RegisterCmd creates a new organization with its first user and logs in.
type RegisterCmd struct {
	Name     string `help:"Your full name." required:""`
	Email    string `help:"Login email." required:""`
	Password string `help:"Login password." required:""`
	Org      string `help:"Organization name." required:""`
}

func (c *RegisterCmd) Run(ctx context.Context, globals *Globals) error {
	app, err := openEnv(ctx, globals)
	if err != nil {
		return err
	}
	defer app.Close()

	sess, err := app.auth.Register(ctx, c.Name, c.Email, c.Password, c.Org)
	if err != nil {
		return err
	}

	if err := app.sessions.Save(&session.Session{
		User:      sess.User,
		Token:     sess.Token,
		CreatedAt: time.Now(),
	}); err != nil {
		return err
	}

	fmt.Printf("Registered %s and logged in as %s <%s>\n", c.Org, sess.User.Name, sess.User.Email)
	return nil
}

// LoginCmd authenticates an existing user and stores the session.
type LoginCmd struct {
	Email    string `help:"Login email." required:""`
	Password string `help:"Login password." required:""`
}

func (c *LoginCmd) Run(ctx context.Context, globals *Globals) error {
	app, err := openEnv(ctx, globals)
	if err != nil {
		return err
	}
	defer app.Close()

	sess, err := app.auth.Login(ctx, c.Email, c.Password)
	if err != nil {
		return err
	}

	if err := app.sessions.Save(&session.Session{
		User:      sess.User,
		Token:     sess.Token,
		CreatedAt: time.Now(),
	}); err != nil {
		return err
	}

	fmt.Printf("Logged in as %s <%s>\n", sess.User.Name, sess.User.Email)
	return nil
}

// LogoutCmd records the logout and clears the stored session.
type LogoutCmd struct{}

func (c *LogoutCmd) Run(ctx context.Context, globals *Globals) error {
	app, err := openEnv(ctx, globals)
	if err != nil {
		return err
	}
	defer app.Close()

	sess, err := app.sessions.Load()
	if err != nil {
		if errors.Is(err, session.ErrNotLoggedIn) {
			fmt.Println("Not logged in")
			return nil
		}
		return err
	}

	if err := app.auth.Logout(ctx, sess.User.ID, sess.User.OrgID); err != nil {
		return err
	}

	if err := app.sessions.Clear(); err != nil {
		return err
	}

	log.Debug().Str("token_fingerprint", sess.Fingerprint()).Msg("session cleared")

	fmt.Println("Logged out")
	return nil
}

// WhoamiCmd prints the logged-in user.
type WhoamiCmd struct{}

func (c *WhoamiCmd) Run(ctx context.Context, globals *Globals) error {
	app, err := openEnv(ctx, globals)
	if err != nil {
		return err
	}
	defer app.Close()

	sess, err := app.actor()
	if err != nil {
		return err
	}

	fmt.Printf("%s <%s> (org %s)\n", sess.User.Name, sess.User.Email, sess.User.OrgID)
	return nil
}
