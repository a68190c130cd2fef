package auth

import (
	"fmt"
	"slices"
	"sync"
	"time"
)

// Demo account emails.
const (
	DemoEmail  = "demo@healthskill.com"
	AdminEmail = "admin@healthskill.com"
)

// Registry is the set of known users. It lives for one process: it starts
// with the demo accounts and grows through signup, and nothing of it is
// persisted.
type Registry struct {
	mu    sync.RWMutex
	users []User
}

// NewRegistry returns a registry seeded with the demo accounts.
func NewRegistry(now time.Time) *Registry {
	return &Registry{users: demoUsers(now)}
}

func demoUsers(now time.Time) []User {
	return []User{
		{
			ID:        "1",
			Email:     DemoEmail,
			Name:      "Demo User",
			Role:      RoleUser,
			CreatedAt: now,
			LastLogin: now,
		},
		{
			ID:               "admin",
			Email:            AdminEmail,
			Name:             "Admin User",
			Role:             RoleAdmin,
			ProfileCompleted: true,
			CreatedAt:        now,
			LastLogin:        now,
		},
	}
}

// Find returns the user with the given email. Emails match exactly.
func (r *Registry) Find(email string) (User, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := slices.IndexFunc(r.users, func(u User) bool { return u.Email == email })
	if i < 0 {
		return User{}, false
	}
	return r.users[i], true
}

// Add registers u. Returns ErrDuplicateUser if the email is taken.
func (r *Registry) Add(u User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if slices.ContainsFunc(r.users, func(x User) bool { return x.Email == u.Email }) {
		return fmt.Errorf("%w: %s", ErrDuplicateUser, u.Email)
	}
	r.users = append(r.users, u)
	return nil
}

// Update replaces the stored record with the same id, if any.
func (r *Registry) Update(u User) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if i := slices.IndexFunc(r.users, func(x User) bool { return x.ID == u.ID }); i >= 0 {
		r.users[i] = u
	}
}

// Users returns a copy of every known user.
func (r *Registry) Users() []User {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.users)
}
