// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-helper-market/internal/adapter"
	"github.com/MKhiriev/go-helper-market/internal/app"
	"github.com/MKhiriev/go-helper-market/internal/store"
)

var kindsByType = map[string]ErrorKind{
	adapter.TypeUserInvalidCredentials: KindInvalidCredentials,
	adapter.TypeUserAlreadyExists:      KindUserAlreadyExists,
	adapter.TypeUserNotFound:           KindUserNotFound,
	adapter.TypeUserSessionNotFound:    KindNoActiveSession,
	adapter.TypeGeneralUnauthorized:    KindNoActiveSession,
	adapter.TypeUserPasswordMismatch:   KindPasswordMismatch,
}

var friendlyMessages = map[ErrorKind]string{
	KindInvalidCredentials: app.MsgInvalidCredentials,
	KindUserAlreadyExists:  app.MsgUserAlreadyExists,
	KindUserNotFound:       app.MsgUserNotFound,
	KindNoActiveSession:    app.MsgNoActiveSession,
	KindPasswordMismatch:   app.MsgPasswordMismatch,
}

// mapAuthError translates an adapter error into an [*AuthError].
// The message is the backend's own when present, a fixed friendly text for
// known error types, or the generic fallback.
func mapAuthError(err error) error {
	if err == nil {
		return nil
	}

	var authErr *AuthError
	if errors.As(err, &authErr) {
		return authErr
	}

	if errors.Is(err, adapter.ErrNoSession) {
		return newAuthError(KindNoActiveSession, app.MsgNoActiveSession, err)
	}

	var backendErr *adapter.BackendError
	if !errors.As(err, &backendErr) {
		// transport failure, nothing user-presentable in it
		return newAuthError(KindUnknown, app.MsgGenericFailure, err)
	}

	kind, ok := kindsByType[backendErr.Type]
	if !ok {
		kind = KindUnknown
	}

	message := strings.TrimSpace(backendErr.Message)
	if message == "" {
		message = friendlyMessages[kind]
	}

	return newAuthError(kind, message, err)
}

// mapStoreError translates repository sentinels into service errors.
func mapStoreError(err, notFound, conflict error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, store.ErrNotFound):
		return notFound
	case errors.Is(err, store.ErrAlreadyExists):
		return conflict
	default:
		return err
	}
}
