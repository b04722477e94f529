package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const accountJSON = `{"$id":"u1","email":"siti@example.id","name":"Siti","status":true,"labels":["majikan"],"prefs":{"city":"Bandung"}}`

func decodeBody(t *testing.T, r *http.Request) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
	return body
}

// ── CreateAccount ────────────────────────────────────────────────────────────

func TestCreateAccount_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/account", r.URL.Path)
		assert.Equal(t, testAPIKey, r.Header.Get(headerKey))

		body := decodeBody(t, r)
		assert.Equal(t, "unique()", body["userId"])
		assert.Equal(t, "siti@example.id", body["email"])
		assert.Equal(t, "rahasia123", body["password"])
		assert.Equal(t, "Siti", body["name"])

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(accountJSON))
	}))
	defer srv.Close()

	a := newTestAdapters(t, srv.URL)
	user, err := a.Identity.CreateAccount(context.Background(), "siti@example.id", "rahasia123", "Siti")

	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
	assert.Equal(t, []string{"majikan"}, user.Labels)
}

func TestCreateAccount_Conflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeBackendError(w, http.StatusConflict, TypeUserAlreadyExists, "A user with the same id, email, or phone already exists")
	}))
	defer srv.Close()

	a := newTestAdapters(t, srv.URL)
	_, err := a.Identity.CreateAccount(context.Background(), "siti@example.id", "rahasia123", "Siti")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConflict)
}

// ── CreateEmailSession ───────────────────────────────────────────────────────

func TestCreateEmailSession_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/account/sessions/email", r.URL.Path)
		assert.Equal(t, testAPIKey, r.Header.Get(headerKey))

		body := decodeBody(t, r)
		assert.Equal(t, "siti@example.id", body["email"])

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"$id":"s1","userId":"u1","secret":"abc","expire":"2026-12-01T00:00:00.000+00:00"}`))
	}))
	defer srv.Close()

	a := newTestAdapters(t, srv.URL)
	session, err := a.Identity.CreateEmailSession(context.Background(), "siti@example.id", "rahasia123")

	require.NoError(t, err)
	assert.Equal(t, "s1", session.ID)
	assert.Equal(t, "u1", session.UserID)
	assert.Equal(t, "abc", session.Secret)
	assert.False(t, session.Expire.IsZero())
}

func TestCreateEmailSession_NoSecret(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"$id":"s1","userId":"u1","secret":""}`))
	}))
	defer srv.Close()

	a := newTestAdapters(t, srv.URL)
	_, err := a.Identity.CreateEmailSession(context.Background(), "siti@example.id", "rahasia123")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no secret")
}

func TestCreateEmailSession_InvalidCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeBackendError(w, http.StatusUnauthorized, TypeUserInvalidCredentials, "Invalid credentials. Please check the email and password.")
	}))
	defer srv.Close()

	a := newTestAdapters(t, srv.URL)
	_, err := a.Identity.CreateEmailSession(context.Background(), "siti@example.id", "salah")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

// ── GetAccount ───────────────────────────────────────────────────────────────

func TestGetAccount_ForwardsSessionSecret(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/account", r.URL.Path)
		assert.Equal(t, testSecret, r.Header.Get(headerSession))
		assert.Empty(t, r.Header.Get(headerKey))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(accountJSON))
	}))
	defer srv.Close()

	a := newTestAdapters(t, srv.URL)
	user, err := a.Identity.GetAccount(sessionCtx())

	require.NoError(t, err)
	assert.Equal(t, "Siti", user.Name)
	assert.Equal(t, "Bandung", user.PrefString("city"))
}

func TestGetAccount_SessionExpired(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeBackendError(w, http.StatusUnauthorized, TypeGeneralUnauthorized, "User (role: guests) missing scope (account)")
	}))
	defer srv.Close()

	a := newTestAdapters(t, srv.URL)
	_, err := a.Identity.GetAccount(sessionCtx())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

// ── sessions ─────────────────────────────────────────────────────────────────

func TestDeleteSession_Current(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/account/sessions/current", r.URL.Path)
		assert.Equal(t, testSecret, r.Header.Get(headerSession))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	a := newTestAdapters(t, srv.URL)
	require.NoError(t, a.Identity.DeleteSession(sessionCtx(), CurrentSession))
}

func TestDeleteSessions_All(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/account/sessions", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	a := newTestAdapters(t, srv.URL)
	require.NoError(t, a.Identity.DeleteSessions(sessionCtx()))
}

func TestDeleteSessions_NoSession(t *testing.T) {
	a := newTestAdapters(t, "http://127.0.0.1:1")
	assert.ErrorIs(t, a.Identity.DeleteSessions(context.Background()), ErrNoSession)
	assert.ErrorIs(t, a.Identity.DeleteSession(context.Background(), CurrentSession), ErrNoSession)
}

// ── recovery ─────────────────────────────────────────────────────────────────

func TestCreateRecovery_Body(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/account/recovery", r.URL.Path)
		body := decodeBody(t, r)
		assert.Equal(t, "siti@example.id", body["email"])
		assert.Equal(t, "https://pembantu.example/reset-password", body["url"])
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	a := newTestAdapters(t, srv.URL)
	err := a.Identity.CreateRecovery(context.Background(), "siti@example.id", "https://pembantu.example/reset-password")
	require.NoError(t, err)
}

func TestCreateRecovery_UserNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeBackendError(w, http.StatusNotFound, TypeUserNotFound, "User with the requested ID could not be found.")
	}))
	defer srv.Close()

	a := newTestAdapters(t, srv.URL)
	err := a.Identity.CreateRecovery(context.Background(), "none@example.id", "http://x/reset-password")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateRecovery_Body(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/account/recovery", r.URL.Path)
		body := decodeBody(t, r)
		assert.Equal(t, "u1", body["userId"])
		assert.Equal(t, "tok", body["secret"])
		assert.Equal(t, "baru12345", body["password"])
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a := newTestAdapters(t, srv.URL)
	require.NoError(t, a.Identity.UpdateRecovery(context.Background(), "u1", "tok", "baru12345"))
}

// ── account updates ──────────────────────────────────────────────────────────

func TestAccountUpdates(t *testing.T) {
	tests := []struct {
		name     string
		method   string
		path     string
		wantBody map[string]any
		call     func(a *Adapters) error
	}{
		{
			name:     "password",
			method:   http.MethodPatch,
			path:     "/account/password",
			wantBody: map[string]any{"password": "baru12345", "oldPassword": "lama12345"},
			call: func(a *Adapters) error {
				_, err := a.Identity.UpdatePassword(sessionCtx(), "baru12345", "lama12345")
				return err
			},
		},
		{
			name:     "name",
			method:   http.MethodPatch,
			path:     "/account/name",
			wantBody: map[string]any{"name": "Siti Aminah"},
			call: func(a *Adapters) error {
				_, err := a.Identity.UpdateName(sessionCtx(), "Siti Aminah")
				return err
			},
		},
		{
			name:     "email",
			method:   http.MethodPatch,
			path:     "/account/email",
			wantBody: map[string]any{"email": "baru@example.id", "password": "rahasia123"},
			call: func(a *Adapters) error {
				_, err := a.Identity.UpdateEmail(sessionCtx(), "baru@example.id", "rahasia123")
				return err
			},
		},
		{
			name:     "prefs",
			method:   http.MethodPatch,
			path:     "/account/prefs",
			wantBody: map[string]any{"prefs": map[string]any{"city": "Depok"}},
			call: func(a *Adapters) error {
				_, err := a.Identity.UpdatePrefs(sessionCtx(), map[string]any{"city": "Depok"})
				return err
			},
		},
		{
			name:     "nil prefs become empty object",
			method:   http.MethodPatch,
			path:     "/account/prefs",
			wantBody: map[string]any{"prefs": map[string]any{}},
			call: func(a *Adapters) error {
				_, err := a.Identity.UpdatePrefs(sessionCtx(), nil)
				return err
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, tt.method, r.Method)
				assert.Equal(t, tt.path, r.URL.Path)
				assert.Equal(t, testSecret, r.Header.Get(headerSession))
				assert.Equal(t, tt.wantBody, decodeBody(t, r))

				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(accountJSON))
			}))
			defer srv.Close()

			require.NoError(t, tt.call(newTestAdapters(t, srv.URL)))
		})
	}
}

func TestUpdatePassword_Mismatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeBackendError(w, http.StatusUnauthorized, TypeUserPasswordMismatch, "")
	}))
	defer srv.Close()

	a := newTestAdapters(t, srv.URL)
	_, err := a.Identity.UpdatePassword(sessionCtx(), "baru12345", "salah")

	require.Error(t, err)
	var backendErr *BackendError
	require.ErrorAs(t, err, &backendErr)
	assert.Equal(t, TypeUserPasswordMismatch, backendErr.Type)
	assert.Empty(t, backendErr.Message)
}

func TestUpdateLabels_UsesAPIKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/users/u1/labels", r.URL.Path)
		assert.Equal(t, testAPIKey, r.Header.Get(headerKey))
		assert.Empty(t, r.Header.Get(headerSession))
		assert.Equal(t, map[string]any{"labels": []any{"pekerja"}}, decodeBody(t, r))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"$id":"u1","labels":["pekerja"],"status":true}`))
	}))
	defer srv.Close()

	a := newTestAdapters(t, srv.URL)
	user, err := a.Identity.UpdateLabels(sessionCtx(), "u1", []string{"pekerja"})

	require.NoError(t, err)
	assert.Equal(t, []string{"pekerja"}, user.Labels)
}
