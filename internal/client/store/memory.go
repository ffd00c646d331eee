package store

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/gophauth/internal/client/models"
)

// MemoryStore keeps credentials for the lifetime of the process only.
type MemoryStore struct {
	mu    sync.Mutex
	creds *Credentials
}

var _ CredentialStore = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Save(_ context.Context, token string, user models.User) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.creds = &Credentials{Token: token, User: user}
}

func (m *MemoryStore) Load(context.Context) (*Credentials, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.creds == nil {
		return nil, false
	}
	c := *m.creds
	return &c, true
}

func (m *MemoryStore) Clear(context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.creds = nil
}
