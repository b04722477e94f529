package service

import (
	"context"
	"errors"
	"strings"

	"github.com/MKhiriev/go-helper-market/internal/adapter"
	"github.com/MKhiriev/go-helper-market/internal/app"
	"github.com/MKhiriev/go-helper-market/internal/logger"
	"github.com/MKhiriev/go-helper-market/internal/utils"
	"github.com/MKhiriev/go-helper-market/models"
)

// ResetPasswordPath is appended to the site origin to build the link of the
// password recovery e-mail.
const ResetPasswordPath = "/reset-password"

// authService is the concrete implementation of AuthService on top of the
// identity backend. It keeps no state; the session secret travels in ctx.
type authService struct {
	identity adapter.IdentityAdapter
	logger   *logger.Logger
}

func NewAuthService(identity adapter.IdentityAdapter, logger *logger.Logger) AuthService {
	return &authService{
		identity: identity,
		logger:   logger,
	}
}

// GetCurrentUser never fails: a missing session, an expired one and a
// network error all read as "not logged in".
func (s *authService) GetCurrentUser(ctx context.Context) *models.User {
	if _, ok := utils.GetSessionSecretFromContext(ctx); !ok {
		return nil
	}

	user, err := s.identity.GetAccount(ctx)
	if err != nil {
		if !errors.Is(err, adapter.ErrUnauthorized) {
			logger.FromContext(ctx).Warn().Err(err).Str("func", "*authService.GetCurrentUser").Msg("account lookup failed")
		}
		return nil
	}

	return &user
}

func (s *authService) Login(ctx context.Context, email, password string) (models.Session, models.User, error) {
	session, err := s.identity.CreateEmailSession(ctx, strings.TrimSpace(email), password)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "*authService.Login").Msg("session creation failed")
		return models.Session{}, models.User{}, mapAuthError(err)
	}

	// the new session is not in the incoming request yet
	user := s.GetCurrentUser(utils.WithSessionSecret(ctx, session.Secret))
	if user == nil {
		return models.Session{}, models.User{}, newAuthError(KindUnknown, app.MsgLoginLookupFailed, nil)
	}

	return session, *user, nil
}

func (s *authService) Signup(ctx context.Context, email, password, name string) (models.Session, models.User, error) {
	if _, err := s.identity.CreateAccount(ctx, strings.TrimSpace(email), password, strings.TrimSpace(name)); err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "*authService.Signup").Msg("account creation failed")
		return models.Session{}, models.User{}, mapAuthError(err)
	}

	return s.Login(ctx, email, password)
}

func (s *authService) Logout(ctx context.Context) error {
	return mapAuthError(s.identity.DeleteSession(ctx, adapter.CurrentSession))
}

func (s *authService) LogoutAll(ctx context.Context) error {
	return mapAuthError(s.identity.DeleteSessions(ctx))
}

func (s *authService) SendPasswordResetEmail(ctx context.Context, email, origin string) error {
	url := strings.TrimRight(origin, "/") + ResetPasswordPath
	return mapAuthError(s.identity.CreateRecovery(ctx, strings.TrimSpace(email), url))
}

func (s *authService) ConfirmPasswordReset(ctx context.Context, userID, secret, password string) error {
	return mapAuthError(s.identity.UpdateRecovery(ctx, userID, secret, password))
}

func (s *authService) UpdatePassword(ctx context.Context, newPassword, oldPassword string) (models.User, error) {
	user, err := s.identity.UpdatePassword(ctx, newPassword, oldPassword)
	return user, mapAuthError(err)
}

// UpdateProfile validates before calling the backend: an e-mail change
// without the current password is rejected locally.
func (s *authService) UpdateProfile(ctx context.Context, update models.ProfileUpdate) (models.User, error) {
	email := strings.TrimSpace(update.Email)
	if email != "" && update.Password == "" {
		return models.User{}, newAuthError(KindValidation, app.MsgEmailChangeNeedsPassword, nil)
	}

	if _, err := s.identity.UpdateName(ctx, strings.TrimSpace(update.Name)); err != nil {
		return models.User{}, mapAuthError(err)
	}

	if email != "" {
		if _, err := s.identity.UpdateEmail(ctx, email, update.Password); err != nil {
			return models.User{}, mapAuthError(err)
		}
	}

	user, err := s.identity.GetAccount(ctx)
	if err != nil {
		return models.User{}, mapAuthError(err)
	}

	return user, nil
}

func (s *authService) UpdatePreferences(ctx context.Context, prefs map[string]any) (models.User, error) {
	user, err := s.identity.UpdatePrefs(ctx, prefs)
	return user, mapAuthError(err)
}

func (s *authService) AssignRole(ctx context.Context, userID string, labels []string) (models.User, error) {
	user, err := s.identity.UpdateLabels(ctx, userID, labels)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*authService.AssignRole").Msg("label update failed")
	}
	return user, mapAuthError(err)
}
