/*
verifier.go - Identity verification against the user directory

PURPOSE:
  Resolves a Principal from either an email/password pair or a
  pre-issued Google ID token, then enforces the Director role gate.

FAILURE SEMANTICS (distinct, never collapsed):
  ErrInvalidCredentials      password/token did not verify
  ErrUserNotFound            verified, but no local directory record
  ErrInsufficientPermissions verified and present, but role != Director

FEDERATED PATH:
  The ID token is verified against the configured OAuth client ID, then
  decoded for its email claim, which keys the directory lookup. The
  directory (not the token) is authoritative for the role.

SEE ALSO:
  - types.go: Directory contract
  - session.go: What happens after a successful resolve
*/
package auth

import (
	"context"
	"strings"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
)

// Credentials is a login request: either Email+Password or IDToken.
type Credentials struct {
	Email    string
	Password string
	IDToken  string
}

// Verifier authenticates credentials against the user directory.
type Verifier struct {
	dir      Directory
	google   googleAuthIDTokenVerifier.Verifier
	audience []string
}

// NewVerifier creates a verifier. audience lists the accepted OAuth
// client IDs for the federated path; empty disables it.
func NewVerifier(dir Directory, audience []string) *Verifier {
	return &Verifier{dir: dir, audience: audience}
}

// Authenticate resolves a Principal or fails with one of the distinct
// auth error kinds. Directory infrastructure errors pass through as-is.
func (v *Verifier) Authenticate(ctx context.Context, creds Credentials) (Principal, error) {
	var user *User
	var err error

	switch {
	case creds.IDToken != "":
		user, err = v.verifyIDToken(ctx, creds.IDToken)
	case creds.Email != "" && creds.Password != "":
		user, err = v.verifyPassword(ctx, creds.Email, creds.Password)
	default:
		return Principal{}, ErrMissingCredentials
	}
	if err != nil {
		return Principal{}, err
	}

	// Authentication succeeded; authorization gate is separate so the
	// client can distinguish "access denied" from "bad password".
	if user.Role != RoleDirector {
		return Principal{}, ErrInsufficientPermissions
	}

	return Principal{
		UID:   user.UID,
		Email: user.Email,
		Role:  user.Role,
	}, nil
}

func (v *Verifier) verifyPassword(ctx context.Context, email, password string) (*User, error) {
	user, err := v.dir.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	if !CheckPassword(user.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

func (v *Verifier) verifyIDToken(ctx context.Context, idToken string) (*User, error) {
	if len(v.audience) == 0 {
		return nil, ErrInvalidCredentials
	}
	if err := v.google.VerifyIDToken(idToken, v.audience); err != nil {
		return nil, ErrInvalidCredentials
	}
	claims, err := googleAuthIDTokenVerifier.Decode(idToken)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	user, err := v.dir.FindByEmail(ctx, normalizeEmail(claims.Email))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
