package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/gophauth/internal/client/session"
	"github.com/dmitrijs2005/gophauth/internal/client/token"
	"github.com/dmitrijs2005/gophauth/internal/client/ui"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
)

var errLoggedIn = errors.New("already logged in")

type question struct {
	field  ui.Field
	label  string
	secret bool
}

// fill prompts for each field and types the answer into the surface.
func (a *App) fill(ctx context.Context, questions []question) error {
	for _, p := range questions {
		var (
			v   string
			err error
		)
		if p.secret {
			v, err = getPassword(a.reader, p.label, a.term.out)
		} else {
			v, err = getSimpleText(a.reader, p.label, a.term.out)
		}
		if err != nil {
			return err
		}
		a.term.Type(ctx, p.field, v)
	}
	return nil
}

// open switches to view unless it is already shown.
func (a *App) open(ctx context.Context, view ui.View, kind ui.EventKind) error {
	if a.isLoggedIn() {
		a.term.Println("Already logged in; logout first.")
		return errLoggedIn
	}
	if a.session.Snapshot().View != view {
		a.term.Emit(ctx, ui.Event{Kind: kind})
	}
	return nil
}

func (a *App) submit(ctx context.Context, form ui.Form) {
	if a.term.Submit(ctx, form) {
		return
	}
	a.term.Println(renderInvalid(a.term.Invalid(form), form.Fields()))
}

// Login prompts for credentials and submits the login form.
func (a *App) Login(ctx context.Context) error {
	if err := a.open(ctx, ui.LoginView, ui.EventShowLogin); err != nil {
		return err
	}
	err := a.fill(ctx, []question{
		{field: ui.LoginUsername, label: "Username"},
		{field: ui.LoginPassword, label: "Password", secret: true},
	})
	if err != nil {
		return err
	}
	a.submit(ctx, ui.LoginForm)
	return nil
}

// Register prompts for the registration form and submits it.
func (a *App) Register(ctx context.Context) error {
	if err := a.open(ctx, ui.RegisterView, ui.EventShowRegister); err != nil {
		return err
	}
	err := a.fill(ctx, []question{
		{field: ui.RegisterUsername, label: "Username"},
		{field: ui.RegisterEmail, label: "Email"},
		{field: ui.RegisterPassword, label: "Password", secret: true},
		{field: ui.RegisterConfirm, label: "Confirm password", secret: true},
	})
	if err != nil {
		return err
	}
	a.submit(ctx, ui.RegisterForm)
	return nil
}

// View switches between the login and register forms.
func (a *App) View(ctx context.Context, name string) error {
	switch name {
	case "login":
		return a.open(ctx, ui.LoginView, ui.EventShowLogin)
	case "register":
		return a.open(ctx, ui.RegisterView, ui.EventShowRegister)
	default:
		a.term.Println("Usage: view login|register")
		return fmt.Errorf("unknown view %q", name)
	}
}

// Profile prints the current view again.
func (a *App) Profile(context.Context) error {
	s := a.session.Snapshot()
	if s.View != ui.ProfileView {
		a.term.Println("Not logged in.")
		return nil
	}
	a.term.Println(renderProfile(s.User))
	return nil
}

// Status prints the session state and what the token says about itself.
func (a *App) Status(context.Context) error {
	s := a.session.Snapshot()
	a.term.Println(row("State", a.session.State().String()))
	a.term.Println(row("View", s.View.String()))
	a.term.Println(row("Server", a.config.ServerBaseURL))
	if s.Token == "" {
		return nil
	}

	info, err := token.Inspect(s.Token)
	if err != nil {
		a.term.Println(row("Token", "opaque"))
		return nil
	}
	if info.Username != "" {
		a.term.Println(row("Token user", info.Username))
	} else if info.Subject != "" {
		a.term.Println(row("Token user", info.Subject))
	}
	if info.UserID != 0 {
		a.term.Println(row("Token uid", fmt.Sprint(info.UserID)))
	}
	if !info.ExpiresAt.IsZero() {
		exp := info.ExpiresAt.Local().Format(timeLayout)
		if info.Expired(a.clock.Now()) {
			exp += " (expired)"
		} else {
			exp += fmt.Sprintf(" (in %s)", info.ExpiresAt.Sub(a.clock.Now()).Round(time.Second))
		}
		a.term.Println(row("Expires", exp))
	}
	return nil
}

// Logout ends the session.
func (a *App) Logout(ctx context.Context) error {
	if a.session.State() != session.Authenticated {
		a.term.Println("Not logged in.")
		return nil
	}
	a.term.Emit(ctx, ui.Event{Kind: ui.EventLogout})
	return nil
}
