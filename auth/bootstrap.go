/*
bootstrap.go - Director account seeding

PURPOSE:
  Guarantees the single privileged account exists at startup. The
  directory-backed flow stays unchanged; only provisioning is special-
  cased for the single-admin deployment.

IDEMPOTENCE:
  - No user with the email: create one with a fresh uid and role Director.
  - User exists with another role: promote to Director.
  - User already a Director: no-op.
  The password hash is only (re)written when a user is created, so
  re-running with a different ADMIN_PASSWORD does not silently rotate
  credentials.
*/
package auth

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// EnsureDirector makes sure a Director with the given email exists in
// the directory, creating or promoting as needed. Returns the uid.
func EnsureDirector(ctx context.Context, dir Directory, email, password, name string) (string, error) {
	email = normalizeEmail(email)

	existing, err := dir.FindByEmail(ctx, email)
	if err != nil {
		return "", err
	}

	if existing != nil {
		if existing.Role == RoleDirector {
			return existing.UID, nil
		}
		promoted := *existing
		promoted.Role = RoleDirector
		if err := dir.SaveUser(ctx, promoted); err != nil {
			return "", err
		}
		return existing.UID, nil
	}

	if password == "" {
		return "", errors.New("a password is required to create the Director account")
	}
	hash, err := HashPassword(password)
	if err != nil {
		return "", err
	}
	user := User{
		UID:          uuid.NewString(),
		Email:        email,
		Name:         name,
		Role:         RoleDirector,
		PasswordHash: hash,
		CreatedAt:    time.Now(),
	}
	if err := dir.SaveUser(ctx, user); err != nil {
		return "", err
	}
	return user.UID, nil
}
