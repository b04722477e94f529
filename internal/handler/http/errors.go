// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Request decoding errors. Callers can match against them with [errors.Is].
var (
	// ErrInvalidJSON is returned when the request body is not valid JSON for
	// the expected form.
	ErrInvalidJSON = errors.New("invalid JSON body")

	// ErrInvalidQuery is returned when a listing query parameter cannot be
	// parsed.
	ErrInvalidQuery = errors.New("invalid query parameter")

	// ErrMissingPhoto is returned when the upload form has no "photo" part.
	ErrMissingPhoto = errors.New("missing photo in multipart form")
)
