/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. These types decouple
  the internal domain model from the external API contract.

NAMING CONVENTION:
  - *Request: Request body types from clients
  - *Response: Response wrappers returned to clients

VALIDATION:
  Request DTOs carry validator struct tags and are checked in handlers
  with go-playground/validator. IsHoliday is a *bool so "field absent"
  and "false" stay distinguishable under `required`.

SEE ALSO:
  - handlers.go: Uses these types
*/
package api

import "github.com/srmorg/leave-engine/leave"

// =============================================================================
// REQUEST TYPES
// =============================================================================

// LoginRequest carries either an email/password pair or a federated ID
// token.
type LoginRequest struct {
	Email    string `json:"email" validate:"omitempty,email"`
	Password string `json:"password"`
	IDToken  string `json:"idToken"`
}

// ToggleRequest is the request to set a Saturday's status.
type ToggleRequest struct {
	Date      string `json:"date" validate:"required,datetime=2006-01-02"`
	IsHoliday *bool  `json:"isHoliday" validate:"required"`
}

// =============================================================================
// RESPONSE TYPES
// =============================================================================

// SuccessResponse is the minimal success envelope.
type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// LeavesResponse wraps the override set keyed by date.
type LeavesResponse struct {
	Success bool                      `json:"success"`
	Leaves  map[string]leave.Override `json:"leaves"`
}

// ToggleResponse wraps the toggle outcome.
type ToggleResponse struct {
	Success bool               `json:"success"`
	Message string             `json:"message,omitempty"`
	Data    leave.ToggleResult `json:"data"`
}

// MonthResponse wraps the derived month projection.
type MonthResponse struct {
	Success bool            `json:"success"`
	Data    leave.MonthView `json:"data"`
}

// ErrorResponse is returned for all non-2xx statuses.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}
