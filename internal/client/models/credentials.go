package models

// LoginCredentials live only for one submit-to-response cycle.
type LoginCredentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegisterCredentials carries the registration form. ConfirmPassword is a
// client-side check only and is never sent.
type RegisterCredentials struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"-"`
}

// PasswordsMatch reports whether the confirmation equals the password.
func (c RegisterCredentials) PasswordsMatch() bool {
	return c.Password == c.ConfirmPassword
}
