package adapter

import (
	"errors"
	"fmt"
	"net/http"
)

// Status sentinels. A [*BackendError] unwraps to one of them.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrUnexpectedStatus    = errors.New("unexpected status")

	// ErrNoSession is returned without a network call when an operation needs
	// the session secret and ctx carries none. It unwraps to ErrUnauthorized.
	ErrNoSession = fmt.Errorf("%w: no session secret", ErrUnauthorized)
)

// Known backend error types.
const (
	TypeUserInvalidCredentials = "user_invalid_credentials"
	TypeUserAlreadyExists      = "user_already_exists"
	TypeUserNotFound           = "user_not_found"
	TypeUserSessionNotFound    = "user_session_not_found"
	TypeUserPasswordMismatch   = "user_password_mismatch"
	TypeGeneralUnauthorized    = "general_unauthorized_scope"
)

// BackendError is a non-2xx answer of the backend.
type BackendError struct {
	// Status is the HTTP status code.
	Status int `json:"-"`

	// Code, Type and Message come from the JSON error body when present.
	Code    int    `json:"code"`
	Type    string `json:"type"`
	Message string `json:"message"`
}

func (e *BackendError) Error() string {
	if e.Type != "" {
		return fmt.Sprintf("backend %d %s: %s", e.Status, e.Type, e.Message)
	}
	return fmt.Sprintf("backend %d: %s", e.Status, e.Message)
}

// Unwrap returns the status sentinel matching e.Status.
func (e *BackendError) Unwrap() error {
	switch e.Status {
	case http.StatusBadRequest:
		return ErrBadRequest
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusConflict:
		return ErrConflict
	case http.StatusTooManyRequests:
		return ErrTooManyRequests
	case http.StatusInternalServerError:
		return ErrInternalServerError
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return ErrBadGateway
	default:
		return ErrUnexpectedStatus
	}
}
