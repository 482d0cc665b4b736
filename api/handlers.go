/*
handlers.go - HTTP API handlers for the Saturday leave engine

PURPOSE:
  Exposes the leave engine via REST API. Handles HTTP request/response,
  JSON serialization, and delegates to domain logic.

ENDPOINTS:
  Auth:
    POST   /auth/login    Establish a session (password or ID token)
    POST   /auth/logout   Revoke and clear the session

  Leaves:
    GET    /leaves        All overrides keyed by date
    GET    /leaves/month  Derived month projection (?year=&month=)
    POST   /leaves/toggle Set a Saturday's status (Director only)

REQUEST FLOW:
  1. Session middleware resolves the cookie (except /auth/login)
  2. Parse + validate HTTP request
  3. Call domain logic (verifier, engine, projection)
  4. Serialize response
  5. Map errors to statuses

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400: Invalid body, invalid date, past date
  - 401: No/expired session, invalid credentials
  - 403: Valid session but not Director; non-Director login
  - 404: Authenticated user absent from the directory
  - 500: Store/provider failures (surfaced, never retried)
  The three login failure kinds stay distinct so the client can give
  role-specific guidance.

SEE ALSO:
  - dto.go: Request/response data structures
  - middleware.go: Session resolution
  - server.go: Router setup and middleware
*/
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/srmorg/leave-engine/auth"
	"github.com/srmorg/leave-engine/leave"
)

var validate = validator.New()

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Verifier *auth.Verifier
	Sessions *auth.Sessions
	Engine   *leave.Engine

	// SecureCookies enables the Secure cookie attribute (production).
	SecureCookies bool
}

// NewHandler creates a new handler with the given dependencies.
func NewHandler(verifier *auth.Verifier, sessions *auth.Sessions, engine *leave.Engine) *Handler {
	return &Handler{
		Verifier: verifier,
		Sessions: sessions,
		Engine:   engine,
	}
}

// =============================================================================
// AUTH HANDLERS
// =============================================================================

// Login authenticates credentials and establishes a session.
// POST /auth/login
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if req.IDToken == "" && (req.Email == "" || req.Password == "") {
		writeError(w, http.StatusBadRequest, "Missing email or password", nil)
		return
	}

	principal, err := h.Verifier.Authenticate(r.Context(), auth.Credentials{
		Email:    req.Email,
		Password: req.Password,
		IDToken:  req.IDToken,
	})
	if err != nil {
		h.writeLoginError(w, err)
		return
	}

	token, _, err := h.Sessions.Establish(r.Context(), principal)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to establish session", err)
		return
	}

	auth.SetCookie(w, token, h.SecureCookies)
	writeJSON(w, http.StatusOK, SuccessResponse{Success: true, Message: "Logged in successfully"})
}

func (h *Handler) writeLoginError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, auth.ErrMissingCredentials):
		writeErrorCode(w, http.StatusBadRequest, "Missing email or password", "MISSING_CREDENTIALS", nil)
	case errors.Is(err, auth.ErrInvalidCredentials):
		writeErrorCode(w, http.StatusUnauthorized, "Invalid email or password.", "INVALID_CREDENTIALS", nil)
	case errors.Is(err, auth.ErrInsufficientPermissions):
		writeErrorCode(w, http.StatusForbidden, "Access denied. Contact your administrator.", "INSUFFICIENT_PERMISSIONS", nil)
	case errors.Is(err, auth.ErrUserNotFound):
		writeErrorCode(w, http.StatusNotFound, "User not found in directory.", "USER_NOT_FOUND", nil)
	default:
		writeError(w, http.StatusInternalServerError, "Login failed", err)
	}
}

// Logout revokes all outstanding sessions for the caller and clears the
// cookie.
// POST /auth/logout
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(auth.SessionCookieName); err == nil {
		if err := h.Sessions.Destroy(r.Context(), cookie.Value); err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to revoke session", err)
			return
		}
	}

	auth.ClearCookie(w, h.SecureCookies)
	writeJSON(w, http.StatusOK, SuccessResponse{Success: true, Message: "Logged out successfully"})
}

// =============================================================================
// LEAVE HANDLERS
// =============================================================================

// ListLeaves returns all overrides keyed by date.
// GET /leaves
func (h *Handler) ListLeaves(w http.ResponseWriter, r *http.Request) {
	overrides, err := h.Engine.ListOverrides(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch leaves", err)
		return
	}

	writeJSON(w, http.StatusOK, LeavesResponse{Success: true, Leaves: overrides})
}

// ToggleLeave sets a Saturday's status. Director only.
// POST /leaves/toggle
func (h *Handler) ToggleLeave(w http.ResponseWriter, r *http.Request) {
	principal := PrincipalFromContext(r.Context())

	// Authorization is checked before body validation so a non-Director
	// with a malformed body still gets 403, not 400.
	if err := auth.RequireDirector(principal); err != nil {
		h.writeToggleError(w, err)
		return
	}

	var req ToggleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request data", err)
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request data", err)
		return
	}

	result, err := h.Engine.SetSaturdayStatus(r.Context(), req.Date, *req.IsHoliday, principal)
	if err != nil {
		h.writeToggleError(w, err)
		return
	}

	message := "Saturday marked as working day"
	if result.Deleted {
		message = "Saturday marked as holiday (default state)"
	}
	writeJSON(w, http.StatusOK, ToggleResponse{Success: true, Message: message, Data: result})
}

func (h *Handler) writeToggleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, auth.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "Unauthorized", nil)
	case errors.Is(err, auth.ErrForbidden):
		writeError(w, http.StatusForbidden, "Only Directors can modify Saturday leave status", nil)
	case errors.Is(err, leave.ErrPastDateImmutable):
		writeError(w, http.StatusBadRequest, "Cannot modify past dates", err)
	case errors.Is(err, leave.ErrInvalidDate):
		writeError(w, http.StatusBadRequest, "Invalid request data", err)
	default:
		writeError(w, http.StatusInternalServerError, "Failed to toggle Saturday leave", err)
	}
}

// MonthView returns the derived projection for one month's Saturdays.
// GET /leaves/month?year=2025&month=6
func (h *Handler) MonthView(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	year, month := now.Year(), int(now.Month())

	if v := r.URL.Query().Get("year"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid year", err)
			return
		}
		year = parsed
	}
	if v := r.URL.Query().Get("month"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 1 || parsed > 12 {
			writeError(w, http.StatusBadRequest, "Invalid month", err)
			return
		}
		month = parsed
	}

	overrides, err := h.Engine.ListOverrides(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch leaves", err)
		return
	}

	view := leave.NewMonthView(year, time.Month(month), overrides)
	writeJSON(w, http.StatusOK, MonthResponse{Success: true, Data: view})
}

// =============================================================================
// RESPONSE HELPERS
// =============================================================================

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	writeErrorCode(w, status, message, "", err)
}

func writeErrorCode(w http.ResponseWriter, status int, message, code string, err error) {
	resp := ErrorResponse{Error: message, Code: code}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}
