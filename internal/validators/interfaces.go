// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks marketplace input before it reaches a store or
// the identity backend: job postings (lowongan) and their partial updates,
// worker reviews and signup credentials.
//
// Validation can be scoped to a subset of fields, so an update only checks
// what it changes:
//
//	v.Validate(ctx, update, validators.FieldTitle, validators.FieldSalary)
//
// Each rule violation is reported as one of the sentinel errors in this
// package, and callers map them to user-facing messages.
package validators

import "context"

// Validator validates a value, optionally restricted to named fields.
// Unsupported types yield ErrUnsupportedType.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
