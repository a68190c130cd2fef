// Package auth is a mock session layer: a process-lifetime registry of known
// users and a Session that tracks the signed-in user and their profile.
//
// It is NOT real authentication. Passwords are never stored or compared;
// the only rule is a minimum length.
package auth

import (
	"time"

	"github.com/abhisek/healthskill/internal/store"
)

// Role is a user's role.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// User is an account known to the registry.
type User struct {
	ID               string    `json:"id"`
	Email            string    `json:"email"`
	Name             string    `json:"name"`
	Role             Role      `json:"role"`
	ProfileCompleted bool      `json:"profileCompleted"`
	CreatedAt        time.Time `json:"createdAt"`
	LastLogin        time.Time `json:"lastLogin"`
}

// UserKind is the stored document kind for the current-user slot.
var UserKind = store.Kind{
	Name: "user",
	Schema: map[string]any{
		"type":     "object",
		"required": []any{"id", "email", "role"},
		"properties": map[string]any{
			"id":               map[string]any{"type": "string", "minLength": 1},
			"email":            map[string]any{"type": "string", "minLength": 1},
			"name":             map[string]any{"type": "string"},
			"role":             map[string]any{"enum": []any{string(RoleUser), string(RoleAdmin)}},
			"profileCompleted": map[string]any{"type": "boolean"},
		},
	},
}
