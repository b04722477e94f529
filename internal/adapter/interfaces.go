// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer used to talk to the hosted
// backend that owns identity, document collections and file buckets.
//
// The backend speaks an Appwrite-compatible REST dialect. Every request is
// scoped to a project; calls made on behalf of the browser forward the opaque
// session secret found in the request context, privileged calls carry the
// server API key.
//
// Non-2xx responses are decoded into [*BackendError], which unwraps to the
// status sentinels defined in errors.go so that callers can use [errors.Is]
// for transport-agnostic handling (e.g. [ErrConflict] for 409,
// [ErrUnauthorized] for 401) and [errors.As] to read the backend error type.
package adapter

import (
	"context"
	"encoding/json"
	"io"

	"github.com/MKhiriev/go-helper-market/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/backend_adapter_mock.go -package=mock

// IdentityAdapter covers the account and session endpoints.
type IdentityAdapter interface {
	// CreateAccount registers a new account. It does not create a session.
	CreateAccount(ctx context.Context, email, password, name string) (models.User, error)

	// CreateEmailSession exchanges credentials for a session whose secret can
	// be stored in the session cookie.
	CreateEmailSession(ctx context.Context, email, password string) (models.Session, error)

	// GetAccount returns the account of the session found in ctx.
	GetAccount(ctx context.Context) (models.User, error)

	// DeleteSession removes one session of the current account. Pass
	// [CurrentSession] to end the session found in ctx.
	DeleteSession(ctx context.Context, sessionID string) error

	// DeleteSessions removes every session of the current account.
	DeleteSessions(ctx context.Context) error

	// CreateRecovery sends a password recovery e-mail whose link points to url.
	CreateRecovery(ctx context.Context, email, url string) error

	// UpdateRecovery completes a recovery started by CreateRecovery.
	UpdateRecovery(ctx context.Context, userID, secret, password string) error

	// UpdatePassword changes the password of the current account.
	UpdatePassword(ctx context.Context, password, oldPassword string) (models.User, error)

	// UpdateName changes the display name of the current account.
	UpdateName(ctx context.Context, name string) (models.User, error)

	// UpdateEmail changes the e-mail of the current account. The current
	// password is required.
	UpdateEmail(ctx context.Context, email, password string) (models.User, error)

	// UpdatePrefs replaces the preference bag of the current account.
	UpdatePrefs(ctx context.Context, prefs map[string]any) (models.User, error)

	// UpdateLabels replaces the labels of any account. Requires the API key.
	UpdateLabels(ctx context.Context, userID string, labels []string) (models.User, error)
}

// DocumentsAdapter covers the document endpoints of one database.
// Documents travel as raw JSON; decoding into domain types is left to the
// caller.
type DocumentsAdapter interface {
	CreateDocument(ctx context.Context, collectionID, documentID string, data any) (json.RawMessage, error)
	GetDocument(ctx context.Context, collectionID, documentID string) (json.RawMessage, error)
	ListDocuments(ctx context.Context, collectionID string, queries ...Query) (DocumentList, error)
	UpdateDocument(ctx context.Context, collectionID, documentID string, data any) (json.RawMessage, error)
	DeleteDocument(ctx context.Context, collectionID, documentID string) error
}

// FilesAdapter covers the file endpoints of one bucket.
type FilesAdapter interface {
	// CreateFile uploads r as a new file named name.
	CreateFile(ctx context.Context, fileID, name string, r io.Reader) (File, error)

	// DeleteFile removes a file from the bucket.
	DeleteFile(ctx context.Context, fileID string) error

	// FileViewURL returns the public view URL of a file. No request is made.
	FileViewURL(fileID string) string
}
