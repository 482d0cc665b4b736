/*
middleware.go - Session authentication middleware

PURPOSE:
  Resolves the session cookie into a Principal once per request and
  stashes it in the request context. Requests without a valid session
  are rejected with 401 before any handler runs.

ROUTE PROTECTION:
  Everything under /leaves and /auth/logout sits behind this
  middleware; /auth/login is the only open route.

SEE ALSO:
  - auth/session.go: Token resolution
  - server.go: Which routes are protected
*/
package api

import (
	"context"
	"net/http"

	"github.com/srmorg/leave-engine/auth"
)

type contextKey int

const principalKey contextKey = iota

// PrincipalFromContext returns the authenticated principal, or nil.
func PrincipalFromContext(ctx context.Context) *auth.Principal {
	p, _ := ctx.Value(principalKey).(*auth.Principal)
	return p
}

// sessionAuth rejects requests without a valid session cookie.
func (h *Handler) sessionAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		principal := h.resolvePrincipal(r)
		if principal == nil {
			writeError(w, http.StatusUnauthorized, "Unauthorized", nil)
			return
		}
		ctx := context.WithValue(r.Context(), principalKey, principal)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (h *Handler) resolvePrincipal(r *http.Request) *auth.Principal {
	cookie, err := r.Cookie(auth.SessionCookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}
	return h.Sessions.Resolve(r.Context(), cookie.Value)
}
