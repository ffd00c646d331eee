// Package validator runs field-level checks on the registration form while
// the user types.
package validator

import (
	"context"
	"unicode/utf8"

	"github.com/dmitrijs2005/gophauth/internal/client/ui"
)

const MinPasswordLength = 6

const (
	MsgPasswordTooShort = "password must be at least 6 characters"
	MsgPasswordMismatch = "passwords do not match"
)

// CheckPassword returns the validity message for a registration password,
// empty when it is acceptable. Length is counted in characters.
func CheckPassword(password string) string {
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return MsgPasswordTooShort
	}
	return ""
}

// CheckConfirmation returns the validity message for the confirmation
// field. A mismatch is only reported once both fields hold something.
func CheckConfirmation(password, confirm string) string {
	if password != "" && confirm != "" && password != confirm {
		return MsgPasswordMismatch
	}
	return ""
}

// Validator annotates register form fields through ui.Inputs.
type Validator struct {
	inputs ui.Inputs
}

func New(inputs ui.Inputs) *Validator {
	return &Validator{inputs: inputs}
}

// Bind subscribes the validator to input events.
func (v *Validator) Bind(events ui.Events) {
	events.On(ui.EventInput, v.handleInput)
}

func (v *Validator) handleInput(_ context.Context, ev ui.Event) {
	switch ev.Field {
	case ui.RegisterPassword:
		v.inputs.SetValidity(ui.RegisterPassword, CheckPassword(v.inputs.Value(ui.RegisterPassword)))
		v.checkConfirmation()
	case ui.RegisterConfirm:
		v.checkConfirmation()
	}
}

func (v *Validator) checkConfirmation() {
	msg := CheckConfirmation(v.inputs.Value(ui.RegisterPassword), v.inputs.Value(ui.RegisterConfirm))
	v.inputs.SetValidity(ui.RegisterConfirm, msg)
}
