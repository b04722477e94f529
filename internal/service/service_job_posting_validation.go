package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-helper-market/internal/validators"
	"github.com/MKhiriev/go-helper-market/models"
)

// JobPostingValidationService validates form input before it reaches the
// wrapped [JobPostingService].
type JobPostingValidationService struct {
	inner     JobPostingService
	validator validators.Validator
}

func NewJobPostingValidationService() JobPostingServiceWrapper {
	return &JobPostingValidationService{
		validator: validators.NewMarketplaceValidator(),
	}
}

func (v *JobPostingValidationService) Create(ctx context.Context, owner models.User, posting models.JobPosting) (models.JobPosting, error) {
	// owner, id and status are set by the inner service
	err := v.validator.Validate(ctx, posting,
		validators.FieldTitle,
		validators.FieldDescription,
		validators.FieldCategory,
		validators.FieldCity,
		validators.FieldSalary,
		validators.FieldArrangement,
		validators.FieldExpiresAt,
	)
	if err != nil {
		return models.JobPosting{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	return v.inner.Create(ctx, owner, posting)
}

func (v *JobPostingValidationService) Get(ctx context.Context, id string) (models.JobPosting, error) {
	if id == "" {
		return models.JobPosting{}, ErrJobPostingNotFound
	}

	return v.inner.Get(ctx, id)
}

func (v *JobPostingValidationService) List(ctx context.Context, filter models.JobPostingFilter, page models.Page) (models.PageResult[models.JobPosting], error) {
	if filter.Status != "" && filter.Status != models.JobStatusOpen && filter.Status != models.JobStatusClosed {
		return models.PageResult[models.JobPosting]{}, fmt.Errorf("%w: %w", ErrValidation, validators.ErrInvalidStatus)
	}

	return v.inner.List(ctx, filter, page)
}

func (v *JobPostingValidationService) ListByOwner(ctx context.Context, owner models.User, page models.Page) (models.PageResult[models.JobPosting], error) {
	return v.inner.ListByOwner(ctx, owner, page)
}

func (v *JobPostingValidationService) Update(ctx context.Context, actor models.User, id string, update models.JobPostingUpdate) (models.JobPosting, error) {
	if err := v.validator.Validate(ctx, update); err != nil {
		return models.JobPosting{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	return v.inner.Update(ctx, actor, id, update)
}

func (v *JobPostingValidationService) Delete(ctx context.Context, actor models.User, id string) error {
	if id == "" {
		return ErrJobPostingNotFound
	}

	return v.inner.Delete(ctx, actor, id)
}

func (v *JobPostingValidationService) CloseExpired(ctx context.Context) (int, error) {
	return v.inner.CloseExpired(ctx)
}

func (v *JobPostingValidationService) Wrap(wrapped JobPostingService) JobPostingService {
	v.inner = wrapped
	return v
}
