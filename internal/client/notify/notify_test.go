package notify

import (
	"testing"
	"time"

	"github.com/dmitrijs2005/gophauth/internal/client/models"
	"github.com/dmitrijs2005/gophauth/internal/client/ui"
	"github.com/dmitrijs2005/gophauth/internal/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup() (*Notifier, *ui.Headless, *clock.FakeClock) {
	clk := clock.Fake(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	d := ui.NewHeadless()
	return New(clk, d), d, clk
}

func TestNotifier_HidesAfterWindow(t *testing.T) {
	n, d, clk := setup()

	n.Success("welcome")
	got, ok := d.Notification()
	require.True(t, ok)
	assert.Equal(t, models.Notification{Text: "welcome", Severity: models.SeveritySuccess}, got)

	clk.Advance(Window - time.Millisecond)
	_, ok = d.Notification()
	assert.True(t, ok, "still visible just before the window ends")

	clk.Advance(time.Millisecond)
	_, ok = d.Notification()
	assert.False(t, ok)
	assert.Equal(t, 0, clk.Pending())
}

func TestNotifier_NewerSupersedesPending(t *testing.T) {
	n, d, clk := setup()

	n.Error("first")
	clk.Advance(2 * time.Second)
	n.Info("second")

	assert.Equal(t, 1, clk.Pending(), "previous hide task cancelled")

	// The first task would have fired here.
	clk.Advance(2 * time.Second)
	got, ok := d.Notification()
	require.True(t, ok)
	assert.Equal(t, "second", got.Text)
	assert.Equal(t, models.SeverityInfo, got.Severity)

	clk.Advance(time.Second)
	_, ok = d.Notification()
	assert.False(t, ok)
}

func TestNotifier_StaleExpiryIgnored(t *testing.T) {
	n, d, _ := setup()

	n.Error("old")
	staleGen := n.gen
	n.Success("new")

	// A hide task that was already running when "new" arrived.
	n.expire(staleGen)

	got, ok := d.Notification()
	require.True(t, ok)
	assert.Equal(t, "new", got.Text)
}

func TestNotifier_CloseCancelsPending(t *testing.T) {
	n, d, clk := setup()

	n.Info("logged out")
	n.Close()
	assert.Equal(t, 0, clk.Pending())

	clk.Advance(time.Minute)
	_, ok := d.Notification()
	assert.True(t, ok, "close leaves the display untouched")

	n.Close()
}
