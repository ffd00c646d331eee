// Package session implements the client's authentication state machine.
//
// A Controller owns the current Session. It turns surface events into API
// calls, mirrors the authenticated subset of the Session into a
// CredentialStore and selects which view the surface presents:
//
//	Unauthenticated --login/register ok--> Authenticated
//	start with stored token --> Validating --profile ok--> Authenticated
//	Validating --profile failed--> Unauthenticated (store purged)
//	Authenticated --logout--> Unauthenticated (store purged)
//
// Overlapping submissions are not rejected: whichever response arrives last
// determines the session and the stored credentials.
package session

import (
	"github.com/dmitrijs2005/gophauth/internal/client/models"
	"github.com/dmitrijs2005/gophauth/internal/client/ui"
)

type State int

const (
	Unauthenticated State = iota
	// Validating means a stored token is being checked against the server.
	Validating
	Authenticated
)

func (s State) String() string {
	switch s {
	case Unauthenticated:
		return "unauthenticated"
	case Validating:
		return "validating"
	case Authenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// Session is the client's belief about authentication. View is ProfileView
// exactly when Token and User are both set; a Token without a User only
// exists while Validating.
type Session struct {
	Token string
	User  *models.User
	View  ui.View
}

// Authenticated reports whether s carries a validated user.
func (s Session) Authenticated() bool {
	return s.Token != "" && s.User != nil
}
