/*
guard.go - Authorization guard for privileged operations

PURPOSE:
  The single place that decides whether a principal may mutate leave
  status. Pure function of the principal; no side effects.

OUTCOMES:
  ErrUnauthorized  no principal, or session expired ("who are you?")
  ErrForbidden     valid session, role != Director ("you may not")
  These map to 401 vs 403 at the API boundary and must stay distinct.
*/
package auth

import "time"

// RequireDirector returns nil iff p is a Director with a live session.
func RequireDirector(p *Principal) error {
	if p == nil {
		return ErrUnauthorized
	}
	if !p.ExpiresAt.IsZero() && p.Expired(time.Now()) {
		return ErrUnauthorized
	}
	if p.Role != RoleDirector {
		return ErrForbidden
	}
	return nil
}
