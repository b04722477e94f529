package adapter

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-helper-market/models"
	"github.com/go-resty/resty/v2"
)

// uniqueID asks the backend to generate the identifier.
const uniqueID = "unique()"

type identityAdapter struct {
	client *Client
}

// NewIdentityAdapter constructs the account and session adapter.
func NewIdentityAdapter(client *Client) IdentityAdapter {
	return &identityAdapter{client: client}
}

func (a *identityAdapter) CreateAccount(ctx context.Context, email, password, name string) (models.User, error) {
	var user models.User
	resp, err := a.client.keyRequest(ctx).
		SetBody(map[string]string{
			"userId":   uniqueID,
			"email":    email,
			"password": password,
			"name":     name,
		}).
		SetResult(&user).
		Post("/account")
	if err != nil {
		return models.User{}, fmt.Errorf("create account request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return user, nil
}

func (a *identityAdapter) CreateEmailSession(ctx context.Context, email, password string) (models.Session, error) {
	var session models.Session
	resp, err := a.client.keyRequest(ctx).
		SetBody(map[string]string{"email": email, "password": password}).
		SetResult(&session).
		Post("/account/sessions/email")
	if err != nil {
		return models.Session{}, fmt.Errorf("create session request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Session{}, err
	}
	if session.Secret == "" {
		return models.Session{}, fmt.Errorf("create session: backend returned no secret, is the API key configured?")
	}

	return session, nil
}

func (a *identityAdapter) GetAccount(ctx context.Context) (models.User, error) {
	return a.sessionUserCall(ctx, "get account", func(req *resty.Request) (*resty.Response, error) {
		return req.Get("/account")
	})
}

func (a *identityAdapter) DeleteSession(ctx context.Context, sessionID string) error {
	req, err := a.client.sessionRequest(ctx)
	if err != nil {
		return err
	}

	resp, err := req.SetPathParam("sessionId", sessionID).Delete("/account/sessions/{sessionId}")
	if err != nil {
		return fmt.Errorf("delete session request: %w", err)
	}

	return mapHTTPError(resp)
}

func (a *identityAdapter) DeleteSessions(ctx context.Context) error {
	req, err := a.client.sessionRequest(ctx)
	if err != nil {
		return err
	}

	resp, err := req.Delete("/account/sessions")
	if err != nil {
		return fmt.Errorf("delete sessions request: %w", err)
	}

	return mapHTTPError(resp)
}

func (a *identityAdapter) CreateRecovery(ctx context.Context, email, url string) error {
	resp, err := a.client.request(ctx).
		SetBody(map[string]string{"email": email, "url": url}).
		Post("/account/recovery")
	if err != nil {
		return fmt.Errorf("create recovery request: %w", err)
	}

	return mapHTTPError(resp)
}

func (a *identityAdapter) UpdateRecovery(ctx context.Context, userID, secret, password string) error {
	resp, err := a.client.request(ctx).
		SetBody(map[string]string{"userId": userID, "secret": secret, "password": password}).
		Put("/account/recovery")
	if err != nil {
		return fmt.Errorf("update recovery request: %w", err)
	}

	return mapHTTPError(resp)
}

func (a *identityAdapter) UpdatePassword(ctx context.Context, password, oldPassword string) (models.User, error) {
	return a.sessionUserCall(ctx, "update password", func(req *resty.Request) (*resty.Response, error) {
		return req.SetBody(map[string]string{"password": password, "oldPassword": oldPassword}).
			Patch("/account/password")
	})
}

func (a *identityAdapter) UpdateName(ctx context.Context, name string) (models.User, error) {
	return a.sessionUserCall(ctx, "update name", func(req *resty.Request) (*resty.Response, error) {
		return req.SetBody(map[string]string{"name": name}).Patch("/account/name")
	})
}

func (a *identityAdapter) UpdateEmail(ctx context.Context, email, password string) (models.User, error) {
	return a.sessionUserCall(ctx, "update email", func(req *resty.Request) (*resty.Response, error) {
		return req.SetBody(map[string]string{"email": email, "password": password}).Patch("/account/email")
	})
}

func (a *identityAdapter) UpdatePrefs(ctx context.Context, prefs map[string]any) (models.User, error) {
	if prefs == nil {
		prefs = map[string]any{}
	}

	return a.sessionUserCall(ctx, "update prefs", func(req *resty.Request) (*resty.Response, error) {
		return req.SetBody(map[string]any{"prefs": prefs}).Patch("/account/prefs")
	})
}

func (a *identityAdapter) UpdateLabels(ctx context.Context, userID string, labels []string) (models.User, error) {
	if labels == nil {
		labels = []string{}
	}

	var user models.User
	resp, err := a.client.keyRequest(ctx).
		SetPathParam("userId", userID).
		SetBody(map[string]any{"labels": labels}).
		SetResult(&user).
		Put("/users/{userId}/labels")
	if err != nil {
		return models.User{}, fmt.Errorf("update labels request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return user, nil
}

// sessionUserCall runs a session-authenticated call that answers with the
// account document.
func (a *identityAdapter) sessionUserCall(ctx context.Context, op string, do func(*resty.Request) (*resty.Response, error)) (models.User, error) {
	req, err := a.client.sessionRequest(ctx)
	if err != nil {
		return models.User{}, err
	}

	var user models.User
	resp, err := do(req.SetResult(&user))
	if err != nil {
		return models.User{}, fmt.Errorf("%s request: %w", op, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return user, nil
}
