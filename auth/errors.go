/*
errors.go - Error types for authentication and authorization

PURPOSE:
  Distinct, never-collapsed error kinds. The login flow reports three
  different failures (bad credentials, unknown user, wrong role) so the
  client can give role-specific guidance; the request path distinguishes
  "no valid session" from "valid session, wrong role".

SEE ALSO:
  - verifier.go: Login-time errors
  - guard.go: Request-time errors
  - api/handlers.go: Status mapping
*/
package auth

import "errors"

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrInvalidCredentials is returned when the supplied password or
	// federated token does not verify.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUserNotFound is returned when credentials verified but the
	// user has no record in the local directory.
	ErrUserNotFound = errors.New("user not found in directory")

	// ErrInsufficientPermissions is returned when authentication
	// succeeded but the directory role is not Director.
	ErrInsufficientPermissions = errors.New("insufficient permissions")

	// ErrUnauthorized is returned when a request carries no valid,
	// unexpired session.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden is returned when a valid session belongs to a
	// non-Director principal.
	ErrForbidden = errors.New("forbidden")

	// ErrMissingCredentials is returned when a login request carries
	// neither an email/password pair nor a federated token.
	ErrMissingCredentials = errors.New("missing credentials")
)

// IsAuthFailure returns true for login-time failures (as opposed to
// infrastructure errors from the directory).
func IsAuthFailure(err error) bool {
	return errors.Is(err, ErrInvalidCredentials) ||
		errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrInsufficientPermissions) ||
		errors.Is(err, ErrMissingCredentials)
}
