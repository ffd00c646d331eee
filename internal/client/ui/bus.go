package ui

import (
	"context"
	"sync"
)

// Bus registers handlers per event kind and dispatches events to them in
// registration order.
type Bus struct {
	mu       sync.RWMutex
	handlers map[EventKind][]Handler
}

func (b *Bus) On(kind EventKind, h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.handlers == nil {
		b.handlers = make(map[EventKind][]Handler)
	}
	b.handlers[kind] = append(b.handlers[kind], h)
}

// Emit calls every handler registered for ev.Kind. Handlers run on the
// caller's goroutine, without the bus lock held.
func (b *Bus) Emit(ctx context.Context, ev Event) {
	b.mu.RLock()
	hs := append([]Handler(nil), b.handlers[ev.Kind]...)
	b.mu.RUnlock()

	for _, h := range hs {
		h(ctx, ev)
	}
}
