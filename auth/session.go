/*
session.go - Tamper-evident cookie sessions

PURPOSE:
  Serializes a Principal into a signed token carried by the `session`
  cookie, and reconstructs it on every request.

TOKEN:
  HS256 JWT carrying uid (sub), email, role, a token version, and the
  expiry. Fixed 5-day lifetime from issuance. The signature makes the
  cookie tamper-evident; the version claim makes it revocable.

REVOCATION:
  Logout bumps the directory's stored token version for the uid, so
  every outstanding token for that principal (any device, any browser)
  stops resolving at once.

RESOLUTION:
  Resolve returns nil - never an error - for missing, malformed,
  forged, expired, or revoked tokens. Callers treat nil as "no
  session".

SEE ALSO:
  - types.go: Directory.BumpTokenVersion
  - api/middleware.go: Cookie extraction per request
*/
package auth

import (
	"context"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// SessionCookieName is the cookie carrying the session token.
const SessionCookieName = "session"

// SessionTTL is the fixed session lifetime.
const SessionTTL = 5 * 24 * time.Hour

type sessionClaims struct {
	Email        string `json:"email"`
	Role         Role   `json:"role"`
	TokenVersion int    `json:"ver"`
	jwt.RegisteredClaims
}

// Sessions issues, resolves, and revokes session tokens.
type Sessions struct {
	secret []byte
	ttl    time.Duration
	dir    Directory
	now    func() time.Time
}

// NewSessions creates a session manager signing with secret.
func NewSessions(secret []byte, dir Directory) *Sessions {
	return &Sessions{secret: secret, ttl: SessionTTL, dir: dir, now: time.Now}
}

// NewSessionsAt creates a session manager with a fixed clock. Test seam.
func NewSessionsAt(secret []byte, dir Directory, now func() time.Time) *Sessions {
	return &Sessions{secret: secret, ttl: SessionTTL, dir: dir, now: now}
}

// Establish issues a signed token for p, valid for the fixed session
// lifetime. The token embeds the directory's current token version.
func (s *Sessions) Establish(ctx context.Context, p Principal) (string, time.Time, error) {
	user, err := s.dir.FindByUID(ctx, p.UID)
	if err != nil {
		return "", time.Time{}, err
	}
	version := 0
	if user != nil {
		version = user.TokenVersion
	}

	expiresAt := s.now().Add(s.ttl)
	claims := sessionClaims{
		Email:        p.Email,
		Role:         p.Role,
		TokenVersion: version,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   p.UID,
			IssuedAt:  jwt.NewNumericDate(s.now()),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return token, expiresAt, nil
}

// Resolve reconstructs the Principal from a token. Returns nil for any
// token that is missing, malformed, forged, expired, or revoked.
func (s *Sessions) Resolve(ctx context.Context, token string) *Principal {
	claims := s.parse(token)
	if claims == nil {
		return nil
	}

	// Revocation check: the embedded version must match the directory.
	user, err := s.dir.FindByUID(ctx, claims.Subject)
	if err != nil || user == nil || user.TokenVersion != claims.TokenVersion {
		return nil
	}

	return &Principal{
		UID:       claims.Subject,
		Email:     claims.Email,
		Role:      claims.Role,
		ExpiresAt: claims.ExpiresAt.Time,
	}
}

// Destroy revokes every outstanding token for the token's principal.
// A token that no longer parses is already dead; that is a success.
func (s *Sessions) Destroy(ctx context.Context, token string) error {
	claims := s.parse(token)
	if claims == nil {
		return nil
	}
	return s.dir.BumpTokenVersion(ctx, claims.Subject)
}

func (s *Sessions) parse(token string) *sessionClaims {
	if token == "" {
		return nil
	}
	claims := &sessionClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil
	}
	if claims.Subject == "" || claims.ExpiresAt == nil {
		return nil
	}
	return claims
}

// =============================================================================
// COOKIE HELPERS
// =============================================================================

// SetCookie attaches the session cookie. secure should be true in
// production environments.
func SetCookie(w http.ResponseWriter, token string, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(SessionTTL / time.Second),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearCookie expires the session cookie.
func ClearCookie(w http.ResponseWriter, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}
