package repo

import (
	"sync"

	"example.com/authdemo/internal/core"
)

var (
	ErrNotFound = core.ErrNotFound
	ErrExists   = core.ErrExists
)

// UserMem keeps user records keyed by email for the lifetime of the process.
type UserMem struct {
	mu    sync.RWMutex
	users map[string]core.UserRecord
}

func NewUserMem() *UserMem {
	return &UserMem{users: make(map[string]core.UserRecord)}
}

// Create inserts u unless its email is already taken.
func (r *UserMem) Create(u core.UserRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[u.Email]; ok {
		return ErrExists
	}
	r.users[u.Email] = u
	return nil
}

func (r *UserMem) ByEmail(email string) (core.UserRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[email]
	if !ok {
		return core.UserRecord{}, ErrNotFound
	}
	return u, nil
}

func (r *UserMem) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.users)
}
