// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"io"
	"time"

	"github.com/MKhiriev/go-helper-market/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// JobPostingRepository persists job postings ("lowongan").
type JobPostingRepository interface {
	// Create stores p. p.ID must be set by the caller.
	Create(ctx context.Context, p models.JobPosting) (models.JobPosting, error)

	// Get returns the posting with the given id or [ErrNotFound].
	Get(ctx context.Context, id string) (models.JobPosting, error)

	// List returns one page of postings matching filter, newest first.
	List(ctx context.Context, filter models.JobPostingFilter, page models.Page) (models.PageResult[models.JobPosting], error)

	// Update overwrites the mutable fields of the stored posting.
	Update(ctx context.Context, p models.JobPosting) (models.JobPosting, error)

	// Delete removes the posting or returns [ErrNotFound].
	Delete(ctx context.Context, id string) error

	// CloseExpired closes every open posting whose expiry is before now
	// and returns how many were closed.
	CloseExpired(ctx context.Context, now time.Time) (int, error)
}

// ReviewRepository persists worker reviews.
type ReviewRepository interface {
	// Create stores r or returns [ErrAlreadyExists] when the author already
	// reviewed this worker.
	Create(ctx context.Context, r models.Review) (models.Review, error)

	// ListByWorker returns every review of a worker, newest first.
	ListByWorker(ctx context.Context, workerID string) ([]models.Review, error)
}

// FileStorage keeps uploaded photos.
type FileStorage interface {
	// Save stores the content of r under a new id and returns it.
	Save(ctx context.Context, name, contentType string, size int64, r io.Reader) (string, error)

	// URL returns a browser-usable URL of the file.
	URL(ctx context.Context, fileID string) (string, error)

	// Delete removes the file.
	Delete(ctx context.Context, fileID string) error
}

// IDGenerator produces identifiers of new records.
type IDGenerator interface {
	Generate() string
}
