// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package authctx holds the per-request authentication state.
//
// A [Provider] is created for every browser request from the session cookie
// and travels in the request context. It resolves the current user once,
// lazily, and exposes auth actions that never return errors: each action
// yields a [models.AuthResult] whose Error field is a user-facing message.
//
// The provider is the only writer of its state. Readers take [State]
// snapshots, so a handler never observes a half-applied action.
package authctx
