package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-helper-market/internal/logger"
	"github.com/MKhiriev/go-helper-market/internal/store"
	"github.com/MKhiriev/go-helper-market/internal/validators"
	"github.com/MKhiriev/go-helper-market/models"
)

// DefaultJobPostingTTL is how long a posting stays open when the employer
// does not pick an expiry date.
const DefaultJobPostingTTL = 30 * 24 * time.Hour

type jobPostingService struct {
	repository store.JobPostingRepository
	ids        store.IDGenerator
	validator  validators.Validator
	now        func() time.Time

	logger *logger.Logger
}

func NewJobPostingService(repository store.JobPostingRepository, ids store.IDGenerator, logger *logger.Logger) JobPostingService {
	return &jobPostingService{
		repository: repository,
		ids:        ids,
		validator:  validators.NewMarketplaceValidator(),
		now:        time.Now,
		logger:     logger,
	}
}

func (s *jobPostingService) Create(ctx context.Context, owner models.User, posting models.JobPosting) (models.JobPosting, error) {
	if !owner.Can(models.CapPostJob) {
		return models.JobPosting{}, ErrAccessDenied
	}

	now := s.now().UTC()
	posting.ID = s.ids.Generate()
	posting.OwnerID = owner.ID
	posting.Status = models.JobStatusOpen
	posting.CreatedAt = now
	posting.UpdatedAt = now
	if posting.ExpiresAt.IsZero() {
		posting.ExpiresAt = now.Add(DefaultJobPostingTTL)
	}

	created, err := s.repository.Create(ctx, posting)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*jobPostingService.Create").Msg("error saving job posting")
		return models.JobPosting{}, mapStoreError(err, ErrJobPostingNotFound, ErrJobPostingConflict)
	}

	return created, nil
}

func (s *jobPostingService) Get(ctx context.Context, id string) (models.JobPosting, error) {
	posting, err := s.repository.Get(ctx, id)
	if err != nil {
		return models.JobPosting{}, mapStoreError(err, ErrJobPostingNotFound, ErrJobPostingConflict)
	}

	return posting, nil
}

func (s *jobPostingService) List(ctx context.Context, filter models.JobPostingFilter, page models.Page) (models.PageResult[models.JobPosting], error) {
	if filter.Status == "" {
		filter.Status = models.JobStatusOpen
	}

	return s.repository.List(ctx, filter, page.Normalize())
}

func (s *jobPostingService) ListByOwner(ctx context.Context, owner models.User, page models.Page) (models.PageResult[models.JobPosting], error) {
	return s.repository.List(ctx, models.JobPostingFilter{OwnerID: owner.ID}, page.Normalize())
}

func (s *jobPostingService) Update(ctx context.Context, actor models.User, id string, update models.JobPostingUpdate) (models.JobPosting, error) {
	posting, err := s.Get(ctx, id)
	if err != nil {
		return models.JobPosting{}, err
	}
	if !actor.CanManage(posting) {
		return models.JobPosting{}, ErrAccessDenied
	}

	update.Apply(&posting)
	if err = s.validator.Validate(ctx, posting, validators.FieldSalary); err != nil {
		return models.JobPosting{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}
	posting.UpdatedAt = s.now().UTC()

	updated, err := s.repository.Update(ctx, posting)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*jobPostingService.Update").Msg("error updating job posting")
		return models.JobPosting{}, mapStoreError(err, ErrJobPostingNotFound, ErrJobPostingConflict)
	}

	return updated, nil
}

func (s *jobPostingService) Delete(ctx context.Context, actor models.User, id string) error {
	posting, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if !actor.CanManage(posting) {
		return ErrAccessDenied
	}

	return mapStoreError(s.repository.Delete(ctx, id), ErrJobPostingNotFound, ErrJobPostingConflict)
}

func (s *jobPostingService) CloseExpired(ctx context.Context) (int, error) {
	closed, err := s.repository.CloseExpired(ctx, s.now())
	if err != nil {
		return closed, fmt.Errorf("error closing expired job postings: %w", err)
	}

	if closed > 0 {
		logger.FromContext(ctx).Info().Int("closed", closed).Msg("closed expired job postings")
	}

	return closed, nil
}
