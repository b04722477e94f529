package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-helper-market/internal/adapter"
	"github.com/MKhiriev/go-helper-market/internal/app"
	"github.com/MKhiriev/go-helper-market/internal/logger"
	"github.com/MKhiriev/go-helper-market/internal/mock"
	"github.com/MKhiriev/go-helper-market/internal/utils"
	"github.com/MKhiriev/go-helper-market/models"
)

func newTestAuthService(t *testing.T) (AuthService, *mock.MockIdentityAdapter) {
	t.Helper()

	ctrl := gomock.NewController(t)
	identity := mock.NewMockIdentityAdapter(ctrl)
	return NewAuthService(identity, logger.Nop()), identity
}

func sessionCtx() context.Context {
	return utils.WithSessionSecret(context.Background(), "secret-1")
}

// secretMatcher matches a context carrying the given session secret.
type secretMatcher string

func (m secretMatcher) Matches(x any) bool {
	ctx, ok := x.(context.Context)
	if !ok {
		return false
	}
	got, ok := utils.GetSessionSecretFromContext(ctx)
	return ok && got == string(m)
}

func (m secretMatcher) String() string {
	return "context with session secret " + string(m)
}

func secretIs(secret string) gomock.Matcher {
	return secretMatcher(secret)
}

func requireAuthError(t *testing.T, err error) *AuthError {
	t.Helper()

	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)
	require.NotEmpty(t, authErr.Message)
	return authErr
}

func TestGetCurrentUser_NoSession_NoCall(t *testing.T) {
	svc, _ := newTestAuthService(t)

	assert.Nil(t, svc.GetCurrentUser(context.Background()))
}

func TestGetCurrentUser_Success(t *testing.T) {
	svc, identity := newTestAuthService(t)

	identity.EXPECT().GetAccount(secretIs("secret-1")).Return(models.User{ID: "u1", Name: "Sari"}, nil)

	user := svc.GetCurrentUser(sessionCtx())
	require.NotNil(t, user)
	assert.Equal(t, "u1", user.ID)
}

func TestGetCurrentUser_FailuresReadAsLoggedOut(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{name: "expired session", err: &adapter.BackendError{Status: 401, Type: adapter.TypeGeneralUnauthorized}},
		{name: "server error", err: &adapter.BackendError{Status: 500}},
		{name: "network error", err: errors.New("dial tcp: connection refused")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, identity := newTestAuthService(t)
			identity.EXPECT().GetAccount(gomock.Any()).Return(models.User{}, tt.err)

			assert.Nil(t, svc.GetCurrentUser(sessionCtx()))
		})
	}
}

func TestLogin_Success_ReadsAccountWithNewSession(t *testing.T) {
	svc, identity := newTestAuthService(t)
	ctx := context.Background()

	gomock.InOrder(
		identity.EXPECT().CreateEmailSession(ctx, "sari@example.com", "rahasia123").
			Return(models.Session{ID: "s1", UserID: "u1", Secret: "new-secret"}, nil),
		identity.EXPECT().GetAccount(secretIs("new-secret")).
			Return(models.User{ID: "u1", Email: "sari@example.com"}, nil),
	)

	session, user, err := svc.Login(ctx, " sari@example.com ", "rahasia123")
	require.NoError(t, err)
	assert.Equal(t, "new-secret", session.Secret)
	assert.Equal(t, "u1", user.ID)
}

func TestLogin_InvalidCredentials_UsesBackendMessage(t *testing.T) {
	svc, identity := newTestAuthService(t)

	identity.EXPECT().CreateEmailSession(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.Session{}, &adapter.BackendError{
			Status:  401,
			Type:    adapter.TypeUserInvalidCredentials,
			Message: "Invalid credentials. Please check the email and password.",
		})

	_, _, err := svc.Login(context.Background(), "sari@example.com", "wrong")
	authErr := requireAuthError(t, err)
	assert.Equal(t, KindInvalidCredentials, authErr.Kind)
	assert.Equal(t, "Invalid credentials. Please check the email and password.", authErr.Message)
	assert.ErrorIs(t, err, adapter.ErrUnauthorized)
}

func TestLogin_LookupFailsAfterSession(t *testing.T) {
	svc, identity := newTestAuthService(t)

	identity.EXPECT().CreateEmailSession(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.Session{Secret: "new-secret"}, nil)
	identity.EXPECT().GetAccount(gomock.Any()).Return(models.User{}, errors.New("timeout"))

	_, _, err := svc.Login(context.Background(), "sari@example.com", "rahasia123")
	authErr := requireAuthError(t, err)
	assert.Equal(t, app.MsgLoginLookupFailed, authErr.Message)
}

func TestSignup_CreatesAccountThenLogsIn(t *testing.T) {
	svc, identity := newTestAuthService(t)

	gomock.InOrder(
		identity.EXPECT().CreateAccount(gomock.Any(), "budi@example.com", "rahasia123", "Budi").
			Return(models.User{ID: "u2", Email: "budi@example.com", Name: "Budi"}, nil),
		identity.EXPECT().CreateEmailSession(gomock.Any(), "budi@example.com", "rahasia123").
			Return(models.Session{Secret: "s-2", UserID: "u2"}, nil),
		identity.EXPECT().GetAccount(secretIs("s-2")).
			Return(models.User{ID: "u2", Email: "budi@example.com", Name: "Budi"}, nil),
	)

	session, user, err := svc.Signup(context.Background(), "budi@example.com", "rahasia123", " Budi ")
	require.NoError(t, err)
	assert.Equal(t, "s-2", session.Secret)
	assert.Equal(t, "u2", user.ID)
	assert.Equal(t, "budi@example.com", user.Email)
	assert.Equal(t, "Budi", user.Name)
}

func TestSignup_UserExists_FriendlyMessageWhenBackendIsSilent(t *testing.T) {
	svc, identity := newTestAuthService(t)

	identity.EXPECT().CreateAccount(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.User{}, &adapter.BackendError{Status: 409, Type: adapter.TypeUserAlreadyExists})

	_, _, err := svc.Signup(context.Background(), "budi@example.com", "rahasia123", "Budi")
	authErr := requireAuthError(t, err)
	assert.Equal(t, KindUserAlreadyExists, authErr.Kind)
	assert.Equal(t, app.MsgUserAlreadyExists, authErr.Message)
}

func TestMapAuthError_IsTotal(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantKind ErrorKind
		wantMsg  string
	}{
		{name: "unknown type, no message", err: &adapter.BackendError{Status: 500, Type: "general_unknown"}, wantKind: KindUnknown, wantMsg: app.MsgGenericFailure},
		{name: "no type, blank message", err: &adapter.BackendError{Status: 400, Message: "  "}, wantKind: KindUnknown, wantMsg: app.MsgGenericFailure},
		{name: "session not found", err: &adapter.BackendError{Status: 401, Type: adapter.TypeUserSessionNotFound}, wantKind: KindNoActiveSession, wantMsg: app.MsgNoActiveSession},
		{name: "password mismatch", err: &adapter.BackendError{Status: 400, Type: adapter.TypeUserPasswordMismatch}, wantKind: KindPasswordMismatch, wantMsg: app.MsgPasswordMismatch},
		{name: "user not found", err: &adapter.BackendError{Status: 404, Type: adapter.TypeUserNotFound}, wantKind: KindUserNotFound, wantMsg: app.MsgUserNotFound},
		{name: "missing session secret", err: adapter.ErrNoSession, wantKind: KindNoActiveSession, wantMsg: app.MsgNoActiveSession},
		{name: "transport", err: errors.New("EOF"), wantKind: KindUnknown, wantMsg: app.MsgGenericFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authErr := requireAuthError(t, mapAuthError(tt.err))
			assert.Equal(t, tt.wantKind, authErr.Kind)
			assert.Equal(t, tt.wantMsg, authErr.Message)
		})
	}

	assert.NoError(t, mapAuthError(nil))
}

func TestLogout_DeletesCurrentSession(t *testing.T) {
	svc, identity := newTestAuthService(t)

	identity.EXPECT().DeleteSession(gomock.Any(), adapter.CurrentSession).Return(nil)
	identity.EXPECT().DeleteSessions(gomock.Any()).Return(nil)

	assert.NoError(t, svc.Logout(sessionCtx()))
	assert.NoError(t, svc.LogoutAll(sessionCtx()))
}

func TestSendPasswordResetEmail_BuildsRecoveryURL(t *testing.T) {
	svc, identity := newTestAuthService(t)

	identity.EXPECT().CreateRecovery(gomock.Any(), "sari@example.com", "https://pembantu.id/reset-password").Return(nil)

	assert.NoError(t, svc.SendPasswordResetEmail(context.Background(), "sari@example.com", "https://pembantu.id/"))
}

func TestConfirmPasswordReset(t *testing.T) {
	svc, identity := newTestAuthService(t)

	identity.EXPECT().UpdateRecovery(gomock.Any(), "u1", "recovery-secret", "baru12345").
		Return(&adapter.BackendError{Status: 401, Type: "user_invalid_token", Message: "Invalid token"})

	err := svc.ConfirmPasswordReset(context.Background(), "u1", "recovery-secret", "baru12345")
	assert.Equal(t, "Invalid token", requireAuthError(t, err).Message)
}

func TestUpdateProfile_EmailWithoutPassword_NoBackendCall(t *testing.T) {
	svc, _ := newTestAuthService(t)

	_, err := svc.UpdateProfile(sessionCtx(), models.ProfileUpdate{Name: "Sari", Email: "baru@example.com"})
	authErr := requireAuthError(t, err)
	assert.Equal(t, KindValidation, authErr.Kind)
	assert.Equal(t, app.MsgEmailChangeNeedsPassword, authErr.Message)
}

func TestUpdateProfile_NameAndEmail_ThenRefetch(t *testing.T) {
	svc, identity := newTestAuthService(t)

	gomock.InOrder(
		identity.EXPECT().UpdateName(gomock.Any(), "Sari W").Return(models.User{ID: "u1", Name: "Sari W"}, nil),
		identity.EXPECT().UpdateEmail(gomock.Any(), "baru@example.com", "rahasia123").Return(models.User{ID: "u1"}, nil),
		identity.EXPECT().GetAccount(gomock.Any()).Return(models.User{ID: "u1", Name: "Sari W", Email: "baru@example.com"}, nil),
	)

	user, err := svc.UpdateProfile(sessionCtx(), models.ProfileUpdate{Name: "Sari W", Email: "baru@example.com", Password: "rahasia123"})
	require.NoError(t, err)
	assert.Equal(t, "baru@example.com", user.Email)
}

func TestUpdateProfile_NameOnly(t *testing.T) {
	svc, identity := newTestAuthService(t)

	identity.EXPECT().UpdateName(gomock.Any(), "Sari").Return(models.User{ID: "u1", Name: "Sari"}, nil)
	identity.EXPECT().GetAccount(gomock.Any()).Return(models.User{ID: "u1", Name: "Sari"}, nil)

	user, err := svc.UpdateProfile(sessionCtx(), models.ProfileUpdate{Name: "Sari"})
	require.NoError(t, err)
	assert.Equal(t, "Sari", user.Name)
}

func TestUpdatePasswordPreferencesAndRole(t *testing.T) {
	svc, identity := newTestAuthService(t)

	identity.EXPECT().UpdatePassword(gomock.Any(), "baru12345", "lama12345").Return(models.User{ID: "u1"}, nil)
	identity.EXPECT().UpdatePrefs(gomock.Any(), map[string]any{"city": "Bogor"}).Return(models.User{ID: "u1"}, nil)
	identity.EXPECT().UpdateLabels(gomock.Any(), "u1", []string{"majikan"}).Return(models.User{ID: "u1", Labels: []string{"majikan"}}, nil)

	_, err := svc.UpdatePassword(sessionCtx(), "baru12345", "lama12345")
	require.NoError(t, err)

	_, err = svc.UpdatePreferences(sessionCtx(), map[string]any{"city": "Bogor"})
	require.NoError(t, err)

	user, err := svc.AssignRole(sessionCtx(), "u1", []string{"majikan"})
	require.NoError(t, err)
	assert.True(t, user.HasRole(models.RoleEmployer))
}
