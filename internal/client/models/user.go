// Package models defines the client-side data model of the auth session:
// the server-asserted user record, the credentials collected from forms,
// the login/register result and user-facing notifications.
package models

// User is the identity asserted by the server. It is replaced wholesale on
// every successful auth operation and never mutated in place.
type User struct {
	ID        int64      `json:"id" yaml:"id"`
	Username  string     `json:"username" yaml:"username"`
	Email     string     `json:"email" yaml:"email"`
	CreatedAt *Timestamp `json:"created_at,omitempty" yaml:"created_at,omitempty"`
}

// Identified reports whether u carries the identity fields the server
// always sets.
func (u User) Identified() bool {
	return u.ID != 0 && u.Username != ""
}

// AuthResult is the success body of login and register.
type AuthResult struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type,omitempty"`
	User        User   `json:"user"`
}

// Complete reports whether r holds both a token and an identified user.
func (r AuthResult) Complete() bool {
	return r.AccessToken != "" && r.User.Identified()
}
