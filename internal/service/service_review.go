package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/MKhiriev/go-helper-market/internal/logger"
	"github.com/MKhiriev/go-helper-market/internal/store"
	"github.com/MKhiriev/go-helper-market/internal/validators"
	"github.com/MKhiriev/go-helper-market/models"
)

type reviewService struct {
	repository store.ReviewRepository
	ids        store.IDGenerator
	validator  validators.Validator
	now        func() time.Time

	logger *logger.Logger
}

func NewReviewService(repository store.ReviewRepository, ids store.IDGenerator, logger *logger.Logger) ReviewService {
	return &reviewService{
		repository: repository,
		ids:        ids,
		validator:  validators.NewMarketplaceValidator(),
		now:        time.Now,
		logger:     logger,
	}
}

// Create stores a review written by author. One review per worker and author.
func (s *reviewService) Create(ctx context.Context, author models.User, review models.Review) (models.Review, error) {
	if !author.Can(models.CapWriteReview) {
		return models.Review{}, ErrAccessDenied
	}

	review.ID = s.ids.Generate()
	review.AuthorID = author.ID
	review.AuthorName = author.Name
	review.CreatedAt = s.now().UTC()

	if err := s.validator.Validate(ctx, review); err != nil {
		return models.Review{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	created, err := s.repository.Create(ctx, review)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*reviewService.Create").Msg("error saving review")
		return models.Review{}, mapStoreError(err, ErrReviewAlreadyExists, ErrReviewAlreadyExists)
	}

	return created, nil
}

// ListByWorker returns the reviews of a worker with the average rating
// rounded to one decimal.
func (s *reviewService) ListByWorker(ctx context.Context, workerID string) (models.ReviewSummary, error) {
	reviews, err := s.repository.ListByWorker(ctx, workerID)
	if err != nil {
		return models.ReviewSummary{}, err
	}

	summary := models.ReviewSummary{
		WorkerID: workerID,
		Total:    len(reviews),
		Reviews:  reviews,
	}
	if len(reviews) == 0 {
		return summary, nil
	}

	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}
	summary.Average = math.Round(float64(sum)/float64(len(reviews))*10) / 10

	return summary, nil
}
