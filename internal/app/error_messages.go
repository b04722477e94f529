// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// helper-market services, handlers and middleware.
//
// All Msg* constants are user-facing strings, in Indonesian, written into
// HTTP response bodies. Keeping them in one place ensures consistent wording
// throughout the site.
package app

// Auth messages. They are used when the identity backend returns an error
// without a message of its own.
const (
	// MsgInvalidCredentials is shown when the e-mail/password pair is wrong.
	MsgInvalidCredentials = "Email atau kata sandi salah."

	// MsgUserAlreadyExists is shown when signing up with a taken e-mail.
	MsgUserAlreadyExists = "Email sudah terdaftar. Silakan masuk."

	// MsgUserNotFound is shown when no account matches the request.
	MsgUserNotFound = "Akun tidak ditemukan."

	// MsgNoActiveSession is shown when the session is missing or expired.
	MsgNoActiveSession = "Sesi Anda telah berakhir. Silakan masuk kembali."

	// MsgPasswordMismatch is shown when the two passwords do not match.
	MsgPasswordMismatch = "Kata sandi tidak cocok."

	// MsgInvalidEmail is shown when the e-mail address is malformed.
	MsgInvalidEmail = "Format email tidak valid."

	// MsgPasswordTooShort is shown when a new password is too short.
	MsgPasswordTooShort = "Kata sandi minimal 8 karakter."

	// MsgInvalidRole is shown when signup asks for an unknown role.
	MsgInvalidRole = "Peran tidak dikenal."

	// MsgEmailChangeNeedsPassword is shown when an e-mail change is
	// submitted without the current password.
	MsgEmailChangeNeedsPassword = "Masukkan kata sandi saat ini untuk mengubah email."

	// MsgLoginLookupFailed is shown when a session was created but the
	// account could not be read back.
	MsgLoginLookupFailed = "Gagal memuat akun setelah masuk. Silakan coba lagi."

	// MsgGenericFailure is the fallback for every unrecognised error.
	MsgGenericFailure = "Terjadi kesalahan. Silakan coba lagi."
)

// Request and marketplace messages.
const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails validation.
	MsgInvalidDataProvided = "Data yang dikirim tidak valid."

	// MsgInternalServerError is returned for unexpected server-side failures.
	MsgInternalServerError = "Terjadi kesalahan pada server."

	// MsgUnauthorized is returned by protected API routes without a user.
	MsgUnauthorized = "Silakan masuk terlebih dahulu."

	// MsgAccessDenied is returned when the user lacks the capability or does
	// not own the resource.
	MsgAccessDenied = "Anda tidak memiliki akses."

	// MsgJobPostingNotFound is returned for unknown job postings.
	MsgJobPostingNotFound = "Lowongan tidak ditemukan."

	// MsgReviewAlreadyExists is returned when the author already reviewed
	// the worker.
	MsgReviewAlreadyExists = "Anda sudah memberi ulasan untuk pekerja ini."

	// MsgFileNotFound is returned for unknown file ids.
	MsgFileNotFound = "Berkas tidak ditemukan."

	// MsgFileRejected is returned for oversized or non-image uploads.
	MsgFileRejected = "Foto harus berupa gambar dan maksimal 5 MB."

	// MsgTooManyRequests is returned by the rate limiter.
	MsgTooManyRequests = "Terlalu banyak percobaan. Coba lagi nanti."

	// MsgMethodNotAllowed is returned for unsupported HTTP methods.
	MsgMethodNotAllowed = "Metode tidak diizinkan."
)
