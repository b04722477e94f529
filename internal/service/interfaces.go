// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"io"

	"github.com/MKhiriev/go-helper-market/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService wraps the identity backend. Every failure is returned as
// [*AuthError] carrying a user-facing message.
type AuthService interface {
	// GetCurrentUser returns the account of the session found in ctx, or nil
	// when there is no session or the lookup fails for any reason.
	GetCurrentUser(ctx context.Context) *models.User

	// Login creates a session and returns it together with its account.
	Login(ctx context.Context, email, password string) (models.Session, models.User, error)

	// Signup creates an account and then logs in with the same credentials.
	Signup(ctx context.Context, email, password, name string) (models.Session, models.User, error)

	// Logout ends the session found in ctx.
	Logout(ctx context.Context) error

	// LogoutAll ends every session of the current account.
	LogoutAll(ctx context.Context) error

	// SendPasswordResetEmail starts the recovery flow. The e-mailed link
	// points to origin + "/reset-password".
	SendPasswordResetEmail(ctx context.Context, email, origin string) error

	// ConfirmPasswordReset completes the recovery flow.
	ConfirmPasswordReset(ctx context.Context, userID, secret, password string) error

	UpdatePassword(ctx context.Context, newPassword, oldPassword string) (models.User, error)

	// UpdateProfile changes the name and, when the current password is
	// given, the e-mail. The account is re-fetched afterwards.
	UpdateProfile(ctx context.Context, update models.ProfileUpdate) (models.User, error)

	UpdatePreferences(ctx context.Context, prefs map[string]any) (models.User, error)

	// AssignRole replaces the labels of userID.
	AssignRole(ctx context.Context, userID string, labels []string) (models.User, error)
}

// JobPostingService manages job postings ("lowongan").
type JobPostingService interface {
	Create(ctx context.Context, owner models.User, posting models.JobPosting) (models.JobPosting, error)
	Get(ctx context.Context, id string) (models.JobPosting, error)

	// List returns public postings. An empty status filter means open only.
	List(ctx context.Context, filter models.JobPostingFilter, page models.Page) (models.PageResult[models.JobPosting], error)
	ListByOwner(ctx context.Context, owner models.User, page models.Page) (models.PageResult[models.JobPosting], error)

	// Update and Delete are allowed for the owner and for users with
	// [models.CapManageAnyJob].
	Update(ctx context.Context, actor models.User, id string, update models.JobPostingUpdate) (models.JobPosting, error)
	Delete(ctx context.Context, actor models.User, id string) error

	// CloseExpired closes open postings whose expiry passed.
	CloseExpired(ctx context.Context) (int, error)
}

// JobPostingServiceWrapper defines middleware composition for
// JobPostingService, e.g. validation.
type JobPostingServiceWrapper interface {
	Wrap(JobPostingService) JobPostingService
}

// ReviewService manages worker reviews.
type ReviewService interface {
	Create(ctx context.Context, author models.User, review models.Review) (models.Review, error)
	ListByWorker(ctx context.Context, workerID string) (models.ReviewSummary, error)
}

// FileService stores profile and job photos.
type FileService interface {
	Upload(ctx context.Context, owner models.User, name, contentType string, size int64, r io.Reader) (string, error)
	ViewURL(ctx context.Context, fileID string) (string, error)
}

// AppInfoService reports what is deployed.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetAppInfo(ctx context.Context) models.AppInfo
}
