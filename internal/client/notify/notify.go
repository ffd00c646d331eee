// Package notify shows transient feedback messages that hide themselves
// after a fixed window.
package notify

import (
	"sync"
	"time"

	"github.com/dmitrijs2005/gophauth/internal/client/models"
	"github.com/dmitrijs2005/gophauth/internal/client/ui"
	"github.com/dmitrijs2005/gophauth/internal/clock"
)

// Window is how long a notification stays visible.
const Window = 3 * time.Second

// Notifier owns the single notification slot of a Display. At most one
// hide task is pending; a newer notification cancels it.
type Notifier struct {
	clk     clock.Clock
	display ui.Display
	window  time.Duration

	mu    sync.Mutex
	gen   uint64
	timer *clock.Timer
}

func New(clk clock.Clock, display ui.Display) *Notifier {
	return &Notifier{clk: clk, display: display, window: Window}
}

// Notify replaces whatever is shown with text and restarts the hide window.
func (n *Notifier) Notify(text string, sev models.Severity) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.timer.Stop()
	n.gen++
	gen := n.gen

	n.display.Show(models.Notification{Text: text, Severity: sev})
	n.timer = n.clk.AfterFunc(n.window, func() { n.expire(gen) })
}

func (n *Notifier) Info(text string)    { n.Notify(text, models.SeverityInfo) }
func (n *Notifier) Success(text string) { n.Notify(text, models.SeveritySuccess) }
func (n *Notifier) Error(text string)   { n.Notify(text, models.SeverityError) }

// expire hides the notification if nothing newer replaced it.
func (n *Notifier) expire(gen uint64) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if gen != n.gen {
		return
	}
	n.timer = nil
	n.display.Hide()
}

// Close cancels the pending hide task, leaving the display as is.
func (n *Notifier) Close() {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.timer.Stop()
	n.timer = nil
	n.gen++
}
