package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-helper-market/models"
)

const (
	jobPostingsTable = "job_postings"
	reviewsTable     = "reviews"
)

var jobPostingColumns = []string{
	"id", "owner_id", "title", "description", "category", "city",
	"salary_min", "salary_max", "arrangement", "status", "photo_file_id",
	"expires_at", "created_at", "updated_at",
}

var reviewColumns = []string{
	"id", "worker_id", "author_id", "author_name", "rating", "comment", "created_at",
}

func buildInsertJobPostingQuery(b sq.StatementBuilderType, p models.JobPosting) (string, []any, error) {
	return b.Insert(jobPostingsTable).
		Columns(jobPostingColumns...).
		Values(
			p.ID, p.OwnerID, p.Title, p.Description, string(p.Category), p.City,
			p.SalaryMin, p.SalaryMax, string(p.Arrangement), string(p.Status), p.PhotoFileID,
			p.ExpiresAt.UTC(), p.CreatedAt.UTC(), p.UpdatedAt.UTC(),
		).
		ToSql()
}

func buildSelectJobPostingQuery(b sq.StatementBuilderType, id string) (string, []any, error) {
	return b.Select(jobPostingColumns...).
		From(jobPostingsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func jobPostingFilterCondition(filter models.JobPostingFilter) sq.And {
	cond := sq.And{}
	if filter.OwnerID != "" {
		cond = append(cond, sq.Eq{"owner_id": filter.OwnerID})
	}
	if filter.Category != "" {
		cond = append(cond, sq.Eq{"category": string(filter.Category)})
	}
	if filter.City != "" {
		cond = append(cond, sq.Eq{"city": filter.City})
	}
	if filter.Status != "" {
		cond = append(cond, sq.Eq{"status": string(filter.Status)})
	}

	return cond
}

func buildListJobPostingsQuery(b sq.StatementBuilderType, filter models.JobPostingFilter, page models.Page) (string, []any, error) {
	query := b.Select(jobPostingColumns...).From(jobPostingsTable)
	if cond := jobPostingFilterCondition(filter); len(cond) > 0 {
		query = query.Where(cond)
	}

	return query.
		OrderBy("created_at DESC", "id").
		Limit(uint64(page.Limit)).
		Offset(uint64(page.Offset)).
		ToSql()
}

func buildCountJobPostingsQuery(b sq.StatementBuilderType, filter models.JobPostingFilter) (string, []any, error) {
	query := b.Select("COUNT(*)").From(jobPostingsTable)
	if cond := jobPostingFilterCondition(filter); len(cond) > 0 {
		query = query.Where(cond)
	}

	return query.ToSql()
}

func buildUpdateJobPostingQuery(b sq.StatementBuilderType, p models.JobPosting) (string, []any, error) {
	return b.Update(jobPostingsTable).
		SetMap(map[string]any{
			"title":         p.Title,
			"description":   p.Description,
			"category":      string(p.Category),
			"city":          p.City,
			"salary_min":    p.SalaryMin,
			"salary_max":    p.SalaryMax,
			"arrangement":   string(p.Arrangement),
			"status":        string(p.Status),
			"photo_file_id": p.PhotoFileID,
			"expires_at":    p.ExpiresAt.UTC(),
			"updated_at":    p.UpdatedAt.UTC(),
		}).
		Where(sq.Eq{"id": p.ID}).
		ToSql()
}

func buildDeleteJobPostingQuery(b sq.StatementBuilderType, id string) (string, []any, error) {
	return b.Delete(jobPostingsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildCloseExpiredQuery(b sq.StatementBuilderType, now time.Time) (string, []any, error) {
	return b.Update(jobPostingsTable).
		Set("status", string(models.JobStatusClosed)).
		Set("updated_at", now.UTC()).
		Where(sq.Eq{"status": string(models.JobStatusOpen)}).
		Where(sq.Lt{"expires_at": now.UTC()}).
		ToSql()
}

func buildInsertReviewQuery(b sq.StatementBuilderType, r models.Review) (string, []any, error) {
	return b.Insert(reviewsTable).
		Columns(reviewColumns...).
		Values(r.ID, r.WorkerID, r.AuthorID, r.AuthorName, r.Rating, r.Comment, r.CreatedAt.UTC()).
		ToSql()
}

func buildListReviewsByWorkerQuery(b sq.StatementBuilderType, workerID string) (string, []any, error) {
	return b.Select(reviewColumns...).
		From(reviewsTable).
		Where(sq.Eq{"worker_id": workerID}).
		OrderBy("created_at DESC").
		ToSql()
}
