// Package ui describes the presentation layer as the session core sees it:
// named form fields it can read and annotate, events it can subscribe to,
// and views it can render. Concrete front ends (the terminal REPL, the
// in-memory Headless surface used in tests) implement these interfaces.
package ui

import (
	"context"

	"github.com/dmitrijs2005/gophauth/internal/client/models"
)

// View is one of the three mutually exclusive panels.
type View int

const (
	LoginView View = iota
	RegisterView
	ProfileView
)

func (v View) String() string {
	switch v {
	case LoginView:
		return "login"
	case RegisterView:
		return "register"
	case ProfileView:
		return "profile"
	default:
		return "unknown"
	}
}

// Field names an input.
type Field string

const (
	LoginUsername    Field = "login.username"
	LoginPassword    Field = "login.password"
	RegisterUsername Field = "register.username"
	RegisterEmail    Field = "register.email"
	RegisterPassword Field = "register.password"
	RegisterConfirm  Field = "register.confirm_password"
)

// Form names a group of fields submitted together.
type Form string

const (
	LoginForm    Form = "login"
	RegisterForm Form = "register"
)

// Fields lists the inputs belonging to f.
func (f Form) Fields() []Field {
	switch f {
	case LoginForm:
		return []Field{LoginUsername, LoginPassword}
	case RegisterForm:
		return []Field{RegisterUsername, RegisterEmail, RegisterPassword, RegisterConfirm}
	default:
		return nil
	}
}

// EventKind classifies user input.
type EventKind int

const (
	// EventInput fires on every edit of Event.Field.
	EventInput EventKind = iota
	// EventSubmit fires when Event.Form is submitted and passed field
	// validation.
	EventSubmit
	EventShowLogin
	EventShowRegister
	EventLogout
)

// Event is a discrete user action.
type Event struct {
	Kind  EventKind
	Field Field
	Form  Form
}

// Handler reacts to an event.
type Handler func(ctx context.Context, ev Event)

// Events is the subscription capability.
type Events interface {
	On(kind EventKind, h Handler)
}

// Inputs reads field values and sets per-field validity messages; an empty
// message marks the field valid.
type Inputs interface {
	Value(f Field) string
	SetValidity(f Field, msg string)
}

// Surface is everything the session controller needs from a front end.
type Surface interface {
	Events
	Inputs

	// ResetForms clears every field of both forms.
	ResetForms()
	// Render presents view; user is non-nil only for ProfileView.
	Render(view View, user *models.User)
}

// Display shows and hides the single notification slot.
type Display interface {
	Show(n models.Notification)
	Hide()
}
