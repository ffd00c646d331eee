package ui

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/gophauth/internal/client/models"
)

// Headless is an in-memory Surface and Display. It plays the platform's
// part: typing fires input events and submitting a form is suppressed
// while one of its fields reports a validity message.
type Headless struct {
	Bus

	mu       sync.Mutex
	values   map[Field]string
	validity map[Field]string
	view     View
	user     *models.User
	renders  int
	notice   *models.Notification
}

var (
	_ Surface = (*Headless)(nil)
	_ Display = (*Headless)(nil)
)

func NewHeadless() *Headless {
	return &Headless{
		values:   make(map[Field]string),
		validity: make(map[Field]string),
	}
}

// Type sets a field's value and fires its input event.
func (h *Headless) Type(ctx context.Context, f Field, value string) {
	h.mu.Lock()
	h.values[f] = value
	h.mu.Unlock()

	h.Emit(ctx, Event{Kind: EventInput, Field: f})
}

// Submit fires the form's submit event unless one of its fields is
// invalid; it reports whether the event was fired.
func (h *Headless) Submit(ctx context.Context, form Form) bool {
	if len(h.Invalid(form)) > 0 {
		return false
	}
	h.Emit(ctx, Event{Kind: EventSubmit, Form: form})
	return true
}

// Invalid returns the validity messages of form's failing fields.
func (h *Headless) Invalid(form Form) map[Field]string {
	h.mu.Lock()
	defer h.mu.Unlock()

	out := make(map[Field]string)
	for _, f := range form.Fields() {
		if msg := h.validity[f]; msg != "" {
			out[f] = msg
		}
	}
	return out
}

func (h *Headless) Value(f Field) string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.values[f]
}

func (h *Headless) SetValidity(f Field, msg string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if msg == "" {
		delete(h.validity, f)
		return
	}
	h.validity[f] = msg
}

// Validity returns the message currently set on f.
func (h *Headless) Validity(f Field) string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.validity[f]
}

func (h *Headless) ResetForms() {
	h.mu.Lock()
	defer h.mu.Unlock()
	clear(h.values)
	clear(h.validity)
}

func (h *Headless) Render(view View, user *models.User) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.view = view
	h.user = user
	h.renders++
}

// View returns the view rendered last.
func (h *Headless) View() View {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.view
}

// User returns the user shown by the last render, nil outside ProfileView.
func (h *Headless) User() *models.User {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.user
}

// Renders counts Render calls.
func (h *Headless) Renders() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.renders
}

func (h *Headless) Show(n models.Notification) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.notice = &n
}

func (h *Headless) Hide() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.notice = nil
}

// Notification returns the visible notification, if any.
func (h *Headless) Notification() (models.Notification, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.notice == nil {
		return models.Notification{}, false
	}
	return *h.notice, true
}
