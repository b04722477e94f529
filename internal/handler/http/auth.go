package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-helper-market/internal/app"
	"github.com/MKhiriev/go-helper-market/internal/authctx"
	"github.com/MKhiriev/go-helper-market/internal/logger"
	"github.com/MKhiriev/go-helper-market/internal/utils"
	"github.com/MKhiriev/go-helper-market/internal/validators"
	"github.com/MKhiriev/go-helper-market/models"
)

// authResponse is the body of every auth action. RedirectTo tells the page
// where to go after a successful login or signup.
type authResponse struct {
	models.AuthResult
	RedirectTo string `json:"redirectTo,omitempty"`
}

type signupForm struct {
	models.Credentials
	PasswordConfirm string `json:"passwordConfirm"`
}

type forgotPasswordForm struct {
	Email string `json:"email"`
}

type resetPasswordForm struct {
	UserID          string `json:"userId"`
	Secret          string `json:"secret"`
	Password        string `json:"password"`
	PasswordConfirm string `json:"passwordConfirm"`
}

func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return nil
}

// writeAuthResult stores or clears the session cookie and writes the result.
// Failures answer failureStatus.
func (h *Handler) writeAuthResult(w http.ResponseWriter, r *http.Request, action string, p *authctx.Provider, result models.AuthResult, failureStatus int, redirectTo string) {
	h.metrics.observeAuthAction(action, result.Success)

	if !result.Success {
		logger.FromRequest(r).Info().Str("action", action).Str("reason", result.Error).Msg("auth action failed")
		utils.WriteJSON(w, authResponse{AuthResult: result}, failureStatus)
		return
	}

	h.writeSessionCookie(w, p)
	utils.WriteJSON(w, authResponse{AuthResult: result, RedirectTo: redirectTo}, http.StatusOK)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := decodeJSON(r, &credentials); err != nil {
		log.Err(err).Msg("invalid login form")
		utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	p := h.provider(r)
	result := p.Login(r.Context(), credentials.Email, credentials.Password)
	h.writeAuthResult(w, r, "login", p, result, http.StatusUnauthorized, h.afterLoginPath(r))
}

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var form signupForm
	if err := decodeJSON(r, &form); err != nil {
		log.Err(err).Msg("invalid signup form")
		utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	if form.PasswordConfirm != "" && form.PasswordConfirm != form.Password {
		h.metrics.observeAuthAction("signup", false)
		utils.WriteJSON(w, authResponse{AuthResult: models.AuthFailure(app.MsgPasswordMismatch)}, http.StatusBadRequest)
		return
	}

	err := h.validator.Validate(r.Context(), form.Credentials,
		validators.FieldEmail, validators.FieldPassword, validators.FieldRole)
	if err != nil {
		h.metrics.observeAuthAction("signup", false)
		utils.WriteJSON(w, authResponse{AuthResult: models.AuthFailure(credentialsMessage(err))}, http.StatusBadRequest)
		return
	}

	p := h.provider(r)
	result := p.Signup(r.Context(), form.Credentials)
	h.writeAuthResult(w, r, "signup", p, result, http.StatusBadRequest, h.rules.DashboardPath)
}

func credentialsMessage(err error) string {
	switch {
	case errors.Is(err, validators.ErrInvalidEmail):
		return app.MsgInvalidEmail
	case errors.Is(err, validators.ErrInvalidPassword):
		return app.MsgPasswordTooShort
	case errors.Is(err, validators.ErrInvalidRole):
		return app.MsgInvalidRole
	default:
		return app.MsgInvalidDataProvided
	}
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	p := h.provider(r)
	result := p.Logout(r.Context())
	h.writeAuthResult(w, r, "logout", p, result, http.StatusBadRequest, "")
}

func (h *Handler) logoutAll(w http.ResponseWriter, r *http.Request) {
	p := h.provider(r)
	result := p.LogoutAll(r.Context())
	h.writeAuthResult(w, r, "logout_all", p, result, http.StatusBadRequest, "")
}

func (h *Handler) forgotPassword(w http.ResponseWriter, r *http.Request) {
	var form forgotPasswordForm
	if err := decodeJSON(r, &form); err != nil {
		logger.FromRequest(r).Err(err).Msg("invalid forgot password form")
		utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	p := h.provider(r)
	result := p.SendPasswordResetEmail(r.Context(), form.Email, h.origin(r))
	h.writeAuthResult(w, r, "send_password_reset", p, result, http.StatusBadRequest, "")
}

func (h *Handler) resetPassword(w http.ResponseWriter, r *http.Request) {
	var form resetPasswordForm
	if err := decodeJSON(r, &form); err != nil {
		logger.FromRequest(r).Err(err).Msg("invalid reset password form")
		utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	if form.Password != form.PasswordConfirm {
		h.metrics.observeAuthAction("confirm_password_reset", false)
		utils.WriteJSON(w, authResponse{AuthResult: models.AuthFailure(app.MsgPasswordMismatch)}, http.StatusBadRequest)
		return
	}

	p := h.provider(r)
	result := p.ConfirmPasswordReset(r.Context(), form.UserID, form.Secret, form.Password)
	h.writeAuthResult(w, r, "confirm_password_reset", p, result, http.StatusBadRequest, h.rules.LoginPath)
}

// afterLoginPath returns the "redirect" query parameter when it is a local
// path, the dashboard otherwise.
func (h *Handler) afterLoginPath(r *http.Request) string {
	target := r.URL.Query().Get("redirect")
	if isLocalPath(target) {
		return target
	}
	return h.rules.DashboardPath
}

func isLocalPath(path string) bool {
	return strings.HasPrefix(path, "/") && !strings.HasPrefix(path, "//") && !strings.HasPrefix(path, "/\\")
}

// origin is the configured public origin or the one of the request.
func (h *Handler) origin(r *http.Request) string {
	if h.publicOrigin != "" {
		return h.publicOrigin
	}

	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}
	return scheme + "://" + r.Host
}
