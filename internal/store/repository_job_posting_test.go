package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-helper-market/internal/logger"
	"github.com/MKhiriev/go-helper-market/models"
)

func newTestDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return &DB{
		DB:                 db,
		dialect:            "pgx",
		placeholder:        sq.Dollar,
		errorClassificator: NewPostgresErrorClassifier(),
		logger:             logger.Nop(),
	}, mock
}

func newTestJobPostingRepo(t *testing.T) (*jobPostingRepository, sqlmock.Sqlmock) {
	db, mock := newTestDB(t)
	return &jobPostingRepository{db: db, logger: logger.Nop()}, mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func sampleJobPosting() models.JobPosting {
	created := time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)
	return models.JobPosting{
		ID:          "job-1",
		OwnerID:     "owner-1",
		Title:       "Pengasuh anak",
		Description: "Menjaga dua anak",
		Category:    models.CategoryNanny,
		City:        "Jakarta",
		SalaryMin:   3_000_000,
		SalaryMax:   4_500_000,
		Arrangement: models.ArrangementLiveIn,
		Status:      models.JobStatusOpen,
		ExpiresAt:   created.Add(30 * 24 * time.Hour),
		CreatedAt:   created,
		UpdatedAt:   created,
	}
}

func jobPostingRow(p models.JobPosting) []any {
	return []any{
		p.ID, p.OwnerID, p.Title, p.Description, string(p.Category), p.City,
		p.SalaryMin, p.SalaryMax, string(p.Arrangement), string(p.Status), p.PhotoFileID,
		p.ExpiresAt, p.CreatedAt, p.UpdatedAt,
	}
}

func TestJobPostingRepository_Create(t *testing.T) {
	repo, mock := newTestJobPostingRepo(t)
	p := sampleJobPosting()

	mock.ExpectExec("INSERT INTO job_postings").
		WillReturnResult(sqlmock.NewResult(0, 1))

	created, err := repo.Create(context.Background(), p)
	require.NoError(t, err)
	assert.Equal(t, p, created)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestJobPostingRepository_Create_UniqueViolation(t *testing.T) {
	repo, mock := newTestJobPostingRepo(t)

	mock.ExpectExec("INSERT INTO job_postings").
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.Create(context.Background(), sampleJobPosting())
	assert.ErrorIs(t, err, ErrAlreadyExists)
}

func TestJobPostingRepository_Create_DBError(t *testing.T) {
	repo, mock := newTestJobPostingRepo(t)

	mock.ExpectExec("INSERT INTO job_postings").
		WillReturnError(errors.New("boom"))

	_, err := repo.Create(context.Background(), sampleJobPosting())
	assert.ErrorIs(t, err, ErrExecutingStatement)
}

func TestJobPostingRepository_Get(t *testing.T) {
	repo, mock := newTestJobPostingRepo(t)
	p := sampleJobPosting()

	mock.ExpectQuery("SELECT (.+) FROM job_postings WHERE id = \\$1").
		WithArgs("job-1").
		WillReturnRows(sqlmock.NewRows(jobPostingColumns).AddRow(jobPostingRow(p)...))

	got, err := repo.Get(context.Background(), "job-1")
	require.NoError(t, err)
	assert.Equal(t, p, got)
}

func TestJobPostingRepository_Get_NotFound(t *testing.T) {
	repo, mock := newTestJobPostingRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM job_postings").
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestJobPostingRepository_List(t *testing.T) {
	repo, mock := newTestJobPostingRepo(t)
	p := sampleJobPosting()
	filter := models.JobPostingFilter{Status: models.JobStatusOpen}

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM job_postings").
		WithArgs("open").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery("SELECT (.+) FROM job_postings WHERE \\(status = \\$1\\) ORDER BY created_at DESC, id LIMIT 12 OFFSET 0").
		WithArgs("open").
		WillReturnRows(sqlmock.NewRows(jobPostingColumns).AddRow(jobPostingRow(p)...))

	page, err := repo.List(context.Background(), filter, models.Page{})
	require.NoError(t, err)
	assert.Equal(t, 1, page.Total)
	assert.Equal(t, models.DefaultPageLimit, page.Limit)
	require.Len(t, page.Items, 1)
	assert.Equal(t, p, page.Items[0])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestJobPostingRepository_Update_NotFound(t *testing.T) {
	repo, mock := newTestJobPostingRepo(t)

	mock.ExpectExec("UPDATE job_postings SET").
		WillReturnResult(sqlmock.NewResult(0, 0))

	_, err := repo.Update(context.Background(), sampleJobPosting())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestJobPostingRepository_Delete(t *testing.T) {
	repo, mock := newTestJobPostingRepo(t)

	mock.ExpectExec("DELETE FROM job_postings WHERE id = \\$1").
		WithArgs("job-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM job_postings WHERE id = \\$1").
		WithArgs("job-2").
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, repo.Delete(context.Background(), "job-1"))
	assert.ErrorIs(t, repo.Delete(context.Background(), "job-2"), ErrNotFound)
}

func TestJobPostingRepository_CloseExpired_RetriesTransientErrors(t *testing.T) {
	repo, mock := newTestJobPostingRepo(t)
	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectExec("UPDATE job_postings SET status").
		WillReturnError(pgError(pgerrcode.SerializationFailure))
	mock.ExpectExec("UPDATE job_postings SET status").
		WithArgs("closed", now, "open", now).
		WillReturnResult(sqlmock.NewResult(0, 3))

	closed, err := repo.CloseExpired(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, 3, closed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestJobPostingRepository_CloseExpired_PermanentError(t *testing.T) {
	repo, mock := newTestJobPostingRepo(t)

	mock.ExpectExec("UPDATE job_postings SET status").
		WillReturnError(pgError(pgerrcode.UndefinedTable))

	_, err := repo.CloseExpired(context.Background(), time.Now())
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NoError(t, mock.ExpectationsWereMet())
}
