package ui

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/gophauth/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBus_DispatchesByKindInOrder(t *testing.T) {
	var b Bus
	var got []string
	b.On(EventLogout, func(context.Context, Event) { got = append(got, "first") })
	b.On(EventLogout, func(context.Context, Event) { got = append(got, "second") })
	b.On(EventShowLogin, func(context.Context, Event) { got = append(got, "other") })

	b.Emit(context.Background(), Event{Kind: EventLogout})
	assert.Equal(t, []string{"first", "second"}, got)

	b.Emit(context.Background(), Event{Kind: EventSubmit})
	assert.Len(t, got, 2, "no handlers for submit")
}

func TestBus_HandlerMayRegisterDuringEmit(t *testing.T) {
	var b Bus
	calls := 0
	b.On(EventInput, func(context.Context, Event) {
		calls++
		b.On(EventInput, func(context.Context, Event) { calls++ })
	})

	b.Emit(context.Background(), Event{Kind: EventInput})
	assert.Equal(t, 1, calls)
}

func TestHeadless_TypeFiresInputEvent(t *testing.T) {
	h := NewHeadless()
	var seen []Field
	h.On(EventInput, func(_ context.Context, ev Event) { seen = append(seen, ev.Field) })

	h.Type(context.Background(), RegisterPassword, "abc")

	assert.Equal(t, "abc", h.Value(RegisterPassword))
	assert.Equal(t, []Field{RegisterPassword}, seen)
}

func TestHeadless_SubmitSuppressedWhileInvalid(t *testing.T) {
	h := NewHeadless()
	submitted := 0
	h.On(EventSubmit, func(_ context.Context, ev Event) {
		require.Equal(t, RegisterForm, ev.Form)
		submitted++
	})
	ctx := context.Background()

	h.SetValidity(RegisterConfirm, "passwords do not match")
	assert.False(t, h.Submit(ctx, RegisterForm))
	assert.Equal(t, map[Field]string{RegisterConfirm: "passwords do not match"}, h.Invalid(RegisterForm))
	assert.Equal(t, 0, submitted)

	assert.Empty(t, h.Invalid(LoginForm), "login form is unaffected")

	h.SetValidity(RegisterConfirm, "")
	assert.True(t, h.Submit(ctx, RegisterForm))
	assert.Equal(t, 1, submitted)
}

func TestHeadless_ResetClearsValuesAndValidity(t *testing.T) {
	h := NewHeadless()
	ctx := context.Background()
	h.Type(ctx, LoginUsername, "alice")
	h.Type(ctx, RegisterEmail, "a@x")
	h.SetValidity(RegisterPassword, "too short")

	h.ResetForms()

	for _, f := range append(LoginForm.Fields(), RegisterForm.Fields()...) {
		assert.Empty(t, h.Value(f), f)
		assert.Empty(t, h.Validity(f), f)
	}
}

func TestHeadless_RenderAndNotification(t *testing.T) {
	h := NewHeadless()
	u := &models.User{ID: 1, Username: "alice"}

	h.Render(ProfileView, u)
	assert.Equal(t, ProfileView, h.View())
	assert.Same(t, u, h.User())
	assert.Equal(t, 1, h.Renders())

	_, ok := h.Notification()
	assert.False(t, ok)

	h.Show(models.Notification{Text: "hi", Severity: models.SeverityInfo})
	n, ok := h.Notification()
	require.True(t, ok)
	assert.Equal(t, "hi", n.Text)

	h.Hide()
	_, ok = h.Notification()
	assert.False(t, ok)
}

func TestViewString(t *testing.T) {
	assert.Equal(t, "login", LoginView.String())
	assert.Equal(t, "register", RegisterView.String())
	assert.Equal(t, "profile", ProfileView.String())
	assert.Equal(t, "unknown", View(42).String())
}
