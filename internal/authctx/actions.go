package authctx

import (
	"context"
	"slices"

	"github.com/MKhiriev/go-helper-market/internal/app"
	"github.com/MKhiriev/go-helper-market/models"
)

func (p *Provider) Login(ctx context.Context, email, password string) models.AuthResult {
	session, user, err := p.auth.Login(ctx, email, password)
	if err != nil {
		return failure(ctx, "login", err)
	}

	p.setSession(session, &user)
	return models.AuthSuccess(&user)
}

// Signup creates the account, logs in and, when credentials name a role,
// labels the new account with it. A failed role assignment keeps the user
// logged in; the role can be picked again on the dashboard.
func (p *Provider) Signup(ctx context.Context, credentials models.Credentials) models.AuthResult {
	session, user, err := p.auth.Signup(ctx, credentials.Email, credentials.Password, credentials.Name)
	if err != nil {
		return failure(ctx, "signup", err)
	}

	p.setSession(session, &user)

	if role, ok := models.ParseRole(credentials.Role); ok && role != models.RoleAdmin {
		if result := p.SetRole(ctx, role); !result.Success {
			return models.AuthSuccess(&user)
		}
	}

	return models.AuthSuccess(p.User())
}

func (p *Provider) Logout(ctx context.Context) models.AuthResult {
	if err := p.auth.Logout(p.sessionContext(ctx)); err != nil {
		return failure(ctx, "logout", err)
	}

	p.clearSession()
	return models.AuthSuccess(nil)
}

func (p *Provider) LogoutAll(ctx context.Context) models.AuthResult {
	if err := p.auth.LogoutAll(p.sessionContext(ctx)); err != nil {
		return failure(ctx, "logout_all", err)
	}

	p.clearSession()
	return models.AuthSuccess(nil)
}

func (p *Provider) SendPasswordResetEmail(ctx context.Context, email, origin string) models.AuthResult {
	if err := p.auth.SendPasswordResetEmail(ctx, email, origin); err != nil {
		return failure(ctx, "send_password_reset", err)
	}

	return models.AuthSuccess(p.User())
}

func (p *Provider) ConfirmPasswordReset(ctx context.Context, userID, secret, password string) models.AuthResult {
	if err := p.auth.ConfirmPasswordReset(ctx, userID, secret, password); err != nil {
		return failure(ctx, "confirm_password_reset", err)
	}

	return models.AuthSuccess(p.User())
}

func (p *Provider) UpdatePassword(ctx context.Context, newPassword, oldPassword string) models.AuthResult {
	if _, err := p.auth.UpdatePassword(p.sessionContext(ctx), newPassword, oldPassword); err != nil {
		return failure(ctx, "update_password", err)
	}

	p.refresh(ctx)
	return models.AuthSuccess(p.User())
}

func (p *Provider) UpdateProfile(ctx context.Context, update models.ProfileUpdate) models.AuthResult {
	user, err := p.auth.UpdateProfile(p.sessionContext(ctx), update)
	if err != nil {
		return failure(ctx, "update_profile", err)
	}

	p.setUser(&user)
	return models.AuthSuccess(&user)
}

func (p *Provider) UpdatePreferences(ctx context.Context, prefs map[string]any) models.AuthResult {
	if _, err := p.auth.UpdatePreferences(p.sessionContext(ctx), prefs); err != nil {
		return failure(ctx, "update_preferences", err)
	}

	p.refresh(ctx)
	return models.AuthSuccess(p.User())
}

// SetRole replaces the role label of the current user. Unknown labels are
// kept. The admin role cannot be self-assigned.
func (p *Provider) SetRole(ctx context.Context, role models.Role) models.AuthResult {
	user := p.User()
	if user == nil {
		user = p.Init(ctx).User
	}
	if user == nil {
		return models.AuthFailure(app.MsgNoActiveSession)
	}
	if _, ok := models.ParseRole(role.String()); !ok || role == models.RoleAdmin {
		return models.AuthFailure(app.MsgAccessDenied)
	}

	labels := make([]string, 0, len(user.Labels)+1)
	for _, label := range user.Labels {
		if _, known := models.ParseRole(label); !known {
			labels = append(labels, label)
		}
	}
	if slices.Contains(user.Labels, string(models.RoleAdmin)) {
		labels = append(labels, string(models.RoleAdmin))
	}
	labels = append(labels, role.String())

	if _, err := p.auth.AssignRole(p.sessionContext(ctx), user.ID, labels); err != nil {
		return failure(ctx, "set_role", err)
	}

	p.refresh(ctx)
	return models.AuthSuccess(p.User())
}
