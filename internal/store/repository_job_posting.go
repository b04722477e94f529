package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-helper-market/internal/logger"
	"github.com/MKhiriev/go-helper-market/models"
)

// jobPostingRepository is the SQL implementation of [JobPostingRepository]
// working on the "job_postings" table.
type jobPostingRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewJobPostingRepository constructs a SQL-backed [JobPostingRepository].
func NewJobPostingRepository(db *DB, logger *logger.Logger) JobPostingRepository {
	logger.Debug().Msg("creating job posting repository")
	return &jobPostingRepository{
		db:     db,
		logger: logger,
	}
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanJobPosting(row rowScanner) (models.JobPosting, error) {
	var (
		p                             models.JobPosting
		category, arrangement, status string
	)

	err := row.Scan(
		&p.ID, &p.OwnerID, &p.Title, &p.Description, &category, &p.City,
		&p.SalaryMin, &p.SalaryMax, &arrangement, &status, &p.PhotoFileID,
		&p.ExpiresAt, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return models.JobPosting{}, err
	}

	p.Category = models.JobCategory(category)
	p.Arrangement = models.Arrangement(arrangement)
	p.Status = models.JobStatus(status)
	p.ExpiresAt = p.ExpiresAt.UTC()
	p.CreatedAt = p.CreatedAt.UTC()
	p.UpdatedAt = p.UpdatedAt.UTC()

	return p, nil
}

func (r *jobPostingRepository) Create(ctx context.Context, p models.JobPosting) (models.JobPosting, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertJobPostingQuery(r.db.builder(), p)
	if err != nil {
		log.Err(err).Str("func", "*jobPostingRepository.Create").Msg("error building query")
		return models.JobPosting{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*jobPostingRepository.Create").Msg("error inserting job posting")
		if r.db.isUniqueViolation(err) {
			return models.JobPosting{}, ErrAlreadyExists
		}
		return models.JobPosting{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return p, nil
}

func (r *jobPostingRepository) Get(ctx context.Context, id string) (models.JobPosting, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectJobPostingQuery(r.db.builder(), id)
	if err != nil {
		log.Err(err).Str("func", "*jobPostingRepository.Get").Msg("error building query")
		return models.JobPosting{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	p, err := scanJobPosting(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.JobPosting{}, ErrNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*jobPostingRepository.Get").Msg("error scanning job posting")
		return models.JobPosting{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return p, nil
}

func (r *jobPostingRepository) List(ctx context.Context, filter models.JobPostingFilter, page models.Page) (models.PageResult[models.JobPosting], error) {
	log := logger.FromContext(ctx)
	page = page.Normalize()
	result := models.PageResult[models.JobPosting]{Limit: page.Limit, Offset: page.Offset}

	countQuery, countArgs, err := buildCountJobPostingsQuery(r.db.builder(), filter)
	if err != nil {
		return result, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if err = r.db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&result.Total); err != nil {
		log.Err(err).Str("func", "*jobPostingRepository.List").Msg("error counting job postings")
		return result, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	query, args, err := buildListJobPostingsQuery(r.db.builder(), filter, page)
	if err != nil {
		return result, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*jobPostingRepository.List").Msg("error listing job postings")
		return result, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	result.Items = make([]models.JobPosting, 0, page.Limit)
	for rows.Next() {
		p, err := scanJobPosting(rows)
		if err != nil {
			log.Err(err).Str("func", "*jobPostingRepository.List").Msg("error scanning job posting")
			return result, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		result.Items = append(result.Items, p)
	}
	if err = rows.Err(); err != nil {
		return result, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return result, nil
}

func (r *jobPostingRepository) Update(ctx context.Context, p models.JobPosting) (models.JobPosting, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateJobPostingQuery(r.db.builder(), p)
	if err != nil {
		return models.JobPosting{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*jobPostingRepository.Update").Msg("error updating job posting")
		return models.JobPosting{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return models.JobPosting{}, ErrNotFound
	}

	return p, nil
}

func (r *jobPostingRepository) Delete(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteJobPostingQuery(r.db.builder(), id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*jobPostingRepository.Delete").Msg("error deleting job posting")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return ErrNotFound
	}

	return nil
}

// CloseExpired runs a single UPDATE and retries it on transient errors.
func (r *jobPostingRepository) CloseExpired(ctx context.Context, now time.Time) (int, error) {
	query, args, err := buildCloseExpiredQuery(r.db.builder(), now)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var closed int64
	err = r.db.execWithRetry(ctx, func(ctx context.Context) error {
		res, err := r.db.ExecContext(ctx, query, args...)
		if err != nil {
			return err
		}
		closed, err = res.RowsAffected()
		return err
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*jobPostingRepository.CloseExpired").Msg("error closing expired job postings")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return int(closed), nil
}
