package service

import (
	"errors"

	"github.com/MKhiriev/go-helper-market/internal/app"
)

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrValidation   = errors.New("validation failed")
	ErrAccessDenied = errors.New("access denied")

	ErrJobPostingNotFound  = errors.New("job posting not found")
	ErrJobPostingConflict  = errors.New("job posting already exists")
	ErrReviewAlreadyExists = errors.New("review already exists")
	ErrFileNotFound        = errors.New("file not found")

	ErrFileTooLarge        = errors.New("file too large")
	ErrUnsupportedFileType = errors.New("unsupported file type")
)

// ErrorKind classifies an [AuthError].
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindInvalidCredentials
	KindUserAlreadyExists
	KindUserNotFound
	KindNoActiveSession
	KindPasswordMismatch
	KindValidation
)

func (k ErrorKind) String() string {
	switch k {
	case KindInvalidCredentials:
		return "invalid_credentials"
	case KindUserAlreadyExists:
		return "user_already_exists"
	case KindUserNotFound:
		return "user_not_found"
	case KindNoActiveSession:
		return "no_active_session"
	case KindPasswordMismatch:
		return "password_mismatch"
	case KindValidation:
		return "validation"
	default:
		return "unknown"
	}
}

// AuthError is the only error type returned by [AuthService].
// Message is never empty and can be shown to the user as is.
type AuthError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *AuthError) Error() string {
	return e.Message
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

func newAuthError(kind ErrorKind, message string, err error) *AuthError {
	if message == "" {
		message = app.MsgGenericFailure
	}
	return &AuthError{Kind: kind, Message: message, Err: err}
}
