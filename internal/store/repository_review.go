package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-helper-market/internal/logger"
	"github.com/MKhiriev/go-helper-market/models"
)

// reviewRepository is the SQL implementation of [ReviewRepository].
type reviewRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewReviewRepository(db *DB, logger *logger.Logger) ReviewRepository {
	logger.Debug().Msg("creating review repository")
	return &reviewRepository{
		db:     db,
		logger: logger,
	}
}

// Create relies on the UNIQUE (worker_id, author_id) constraint.
func (r *reviewRepository) Create(ctx context.Context, review models.Review) (models.Review, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertReviewQuery(r.db.builder(), review)
	if err != nil {
		return models.Review{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*reviewRepository.Create").Msg("error inserting review")
		if r.db.isUniqueViolation(err) {
			return models.Review{}, ErrAlreadyExists
		}
		return models.Review{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return review, nil
}

func (r *reviewRepository) ListByWorker(ctx context.Context, workerID string) ([]models.Review, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListReviewsByWorkerQuery(r.db.builder(), workerID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*reviewRepository.ListByWorker").Msg("error listing reviews")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	reviews := make([]models.Review, 0)
	for rows.Next() {
		var review models.Review
		if err = rows.Scan(&review.ID, &review.WorkerID, &review.AuthorID, &review.AuthorName,
			&review.Rating, &review.Comment, &review.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		review.CreatedAt = review.CreatedAt.UTC()
		reviews = append(reviews, review)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return reviews, nil
}
