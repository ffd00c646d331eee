package session

import (
	"context"
	"errors"
	"sync"

	"github.com/dmitrijs2005/gophauth/internal/client/client"
	"github.com/dmitrijs2005/gophauth/internal/client/models"
	"github.com/dmitrijs2005/gophauth/internal/client/store"
	"github.com/dmitrijs2005/gophauth/internal/client/ui"
	"github.com/dmitrijs2005/gophauth/internal/logging"
)

// Notifier surfaces feedback to the user.
type Notifier interface {
	Info(text string)
	Success(text string)
	Error(text string)
}

// Controller drives the Session. Network calls are made without holding
// the controller lock; results are applied under it together with the
// matching store write and render, so session, store and view never
// disagree.
type Controller struct {
	api     client.Client
	store   store.CredentialStore
	surface ui.Surface
	notes   Notifier
	log     logging.Logger

	mu    sync.Mutex
	state State
	sess  Session
	// epoch changes on every session transition; an in-flight token
	// validation applies its result only if the epoch it started with is
	// still current.
	epoch uint64
}

func NewController(api client.Client, st store.CredentialStore, surface ui.Surface, notes Notifier, log logging.Logger) *Controller {
	return &Controller{
		api:     api,
		store:   st,
		surface: surface,
		notes:   notes,
		log:     log.With("component", "session"),
		sess:    Session{View: ui.LoginView},
	}
}

// Start subscribes to the surface, presents the login view and then checks
// any stored token.
func (c *Controller) Start(ctx context.Context) {
	c.surface.On(ui.EventSubmit, func(ctx context.Context, ev ui.Event) {
		switch ev.Form {
		case ui.LoginForm:
			c.SubmitLogin(ctx)
		case ui.RegisterForm:
			c.SubmitRegister(ctx)
		}
	})
	c.surface.On(ui.EventShowLogin, func(ctx context.Context, _ ui.Event) { c.ShowLogin(ctx) })
	c.surface.On(ui.EventShowRegister, func(ctx context.Context, _ ui.Event) { c.ShowRegister(ctx) })
	c.surface.On(ui.EventLogout, func(ctx context.Context, _ ui.Event) { c.Logout(ctx) })

	c.mu.Lock()
	c.render()
	c.mu.Unlock()

	c.Restore(ctx)
}

// Restore validates the stored token, if any, by fetching the profile.
// Without a stored token nothing happens. Any failure purges the store and
// returns to the login view without a notification.
func (c *Controller) Restore(ctx context.Context) {
	creds, ok := c.store.Load(ctx)
	if !ok {
		c.log.Debug(ctx, "no stored credentials")
		return
	}

	c.mu.Lock()
	c.epoch++
	epoch := c.epoch
	c.state = Validating
	c.sess = Session{Token: creds.Token, View: c.sess.View}
	c.mu.Unlock()

	c.log.Info(ctx, "validating stored token", "user_id", creds.User.ID)
	user, err := c.api.FetchProfile(ctx, creds.Token)
	if err == nil && (user == nil || !user.Identified()) {
		err = client.ErrMalformedResponse
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.epoch != epoch {
		c.log.Info(ctx, "session changed during validation, result discarded")
		return
	}

	if err != nil {
		c.log.Warn(ctx, "stored token rejected", "error", err)
		c.store.Clear(ctx)
		c.resetLocked()
		c.surface.ResetForms()
		c.render()
		return
	}

	c.authenticateLocked(ctx, creds.Token, *user)
}

// SubmitLogin authenticates with the login form's fields.
func (c *Controller) SubmitLogin(ctx context.Context) {
	creds := models.LoginCredentials{
		Username: c.surface.Value(ui.LoginUsername),
		Password: c.surface.Value(ui.LoginPassword),
	}

	res, err := c.api.Login(ctx, creds)
	c.finishSubmit(ctx, "login", res, err, MsgLoginSucceeded, MsgLoginFailed)
}

// SubmitRegister creates an account with the register form's fields. The
// password confirmation is checked first; a mismatch never reaches the
// server.
func (c *Controller) SubmitRegister(ctx context.Context) {
	creds := models.RegisterCredentials{
		Username:        c.surface.Value(ui.RegisterUsername),
		Email:           c.surface.Value(ui.RegisterEmail),
		Password:        c.surface.Value(ui.RegisterPassword),
		ConfirmPassword: c.surface.Value(ui.RegisterConfirm),
	}
	if !creds.PasswordsMatch() {
		c.notes.Error(MsgPasswordMismatch)
		return
	}

	res, err := c.api.Register(ctx, creds)
	c.finishSubmit(ctx, "register", res, err, MsgRegisterSucceeded, MsgRegisterFailed)
}

func (c *Controller) finishSubmit(ctx context.Context, op string, res *models.AuthResult, err error, okMsg, fallback string) {
	if err == nil && (res == nil || !res.Complete()) {
		err = client.ErrMalformedResponse
	}
	if err != nil {
		var se *client.StatusError
		switch {
		case errors.As(err, &se):
			c.log.Info(ctx, op+" rejected", "status", se.Status, "detail", se.Detail)
			msg := se.Detail
			if msg == "" {
				msg = fallback
			}
			c.notes.Error(msg)
		default:
			c.log.Warn(ctx, op+" failed", "error", err)
			c.notes.Error(MsgNetworkError)
		}
		return
	}

	c.mu.Lock()
	c.authenticateLocked(ctx, res.AccessToken, res.User)
	c.mu.Unlock()

	c.notes.Success(okMsg)
}

// Logout forgets the session and returns to the login view.
func (c *Controller) Logout(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.store.Clear(ctx)
	c.resetLocked()
	c.surface.ResetForms()
	c.render()
	c.log.Info(ctx, "logged out")
	c.notes.Info(MsgLoggedOut)
}

// ShowLogin switches to the login form. Both forms are cleared. Ignored
// while authenticated.
func (c *Controller) ShowLogin(ctx context.Context) { c.toggle(ctx, ui.LoginView) }

// ShowRegister switches to the registration form. Both forms are cleared.
// Ignored while authenticated.
func (c *Controller) ShowRegister(ctx context.Context) { c.toggle(ctx, ui.RegisterView) }

func (c *Controller) toggle(ctx context.Context, view ui.View) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == Authenticated {
		c.log.Debug(ctx, "view toggle ignored while authenticated", "view", view.String())
		return
	}
	c.sess.View = view
	c.surface.ResetForms()
	c.render()
}

// State returns the current state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Snapshot returns a copy of the current session.
func (c *Controller) Snapshot() Session {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := c.sess
	if s.User != nil {
		u := *s.User
		s.User = &u
	}
	return s
}

func (c *Controller) authenticateLocked(ctx context.Context, token string, user models.User) {
	c.epoch++
	c.state = Authenticated
	c.sess = Session{Token: token, User: &user, View: ui.ProfileView}
	c.store.Save(ctx, token, user)
	c.render()
	c.log.Info(ctx, "authenticated", "user_id", user.ID, "username", user.Username)
}

func (c *Controller) resetLocked() {
	c.epoch++
	c.state = Unauthenticated
	c.sess = Session{View: ui.LoginView}
}

// render presents the current view. Callers hold c.mu.
func (c *Controller) render() {
	if c.sess.View != ui.ProfileView {
		c.surface.Render(c.sess.View, nil)
		return
	}
	u := *c.sess.User
	c.surface.Render(ui.ProfileView, &u)
}
