/*
types.go - Principals, roles, and the user directory contract

PURPOSE:
  Defines who a caller is (Principal), what the privileged role is, and
  the narrow directory interface identity resolution needs.

TRUST MODEL:
  A Principal is only trusted for privileged operations when its role is
  Director AND its session has not expired. Both checks live in
  guard.go; nothing else in the system re-derives them.

SEE ALSO:
  - verifier.go: Resolves Principals from credentials
  - session.go: Serializes Principals into session tokens
  - guard.go: RequireDirector
*/
package auth

import (
	"context"
	"time"
)

// Role is a directory role name.
type Role string

// RoleDirector is the sole privileged role; it alone may mutate leave
// status.
const RoleDirector Role = "Director"

// Principal is the resolved identity of a caller.
type Principal struct {
	UID       string    `json:"uid"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Expired reports whether the principal's session has lapsed.
func (p *Principal) Expired(now time.Time) bool {
	return !now.Before(p.ExpiresAt)
}

// User is a directory record.
type User struct {
	UID          string
	Email        string
	Name         string
	Role         Role
	PasswordHash string
	// TokenVersion invalidates outstanding session tokens when bumped.
	TokenVersion int
	CreatedAt    time.Time
}

// Directory is the external user directory consulted during
// authentication and session resolution.
type Directory interface {
	// FindByEmail returns nil, nil when no user has that email.
	FindByEmail(ctx context.Context, email string) (*User, error)

	// FindByUID returns nil, nil when the uid is unknown.
	FindByUID(ctx context.Context, uid string) (*User, error)

	// SaveUser creates or replaces a user record.
	SaveUser(ctx context.Context, u User) error

	// BumpTokenVersion increments the user's token version, revoking
	// every session token issued before the bump.
	BumpTokenVersion(ctx context.Context, uid string) error
}
