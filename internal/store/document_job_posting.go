package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-helper-market/internal/adapter"
	"github.com/MKhiriev/go-helper-market/internal/logger"
	"github.com/MKhiriev/go-helper-market/models"
)

// closeExpiredBatch is the page size used when closing expired postings
// stored in a document collection.
const closeExpiredBatch = 100

// closeExpiredMaxRounds bounds one CloseExpired call. Whatever is left is
// picked up by the next sweep.
const closeExpiredMaxRounds = 20

// jobPostingAttributes are the user-defined attributes of a job posting
// document.
type jobPostingAttributes struct {
	OwnerID     string    `json:"ownerId"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	City        string    `json:"city"`
	SalaryMin   int64     `json:"salaryMin"`
	SalaryMax   int64     `json:"salaryMax"`
	Arrangement string    `json:"arrangement"`
	Status      string    `json:"status"`
	PhotoFileID string    `json:"photoFileId"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

// jobPostingDocument is a job posting as returned by the document API.
type jobPostingDocument struct {
	ID        string    `json:"$id"`
	CreatedAt time.Time `json:"$createdAt"`
	UpdatedAt time.Time `json:"$updatedAt"`
	jobPostingAttributes
}

func newJobPostingAttributes(p models.JobPosting) jobPostingAttributes {
	return jobPostingAttributes{
		OwnerID:     p.OwnerID,
		Title:       p.Title,
		Description: p.Description,
		Category:    string(p.Category),
		City:        p.City,
		SalaryMin:   p.SalaryMin,
		SalaryMax:   p.SalaryMax,
		Arrangement: string(p.Arrangement),
		Status:      string(p.Status),
		PhotoFileID: p.PhotoFileID,
		ExpiresAt:   p.ExpiresAt.UTC(),
	}
}

func (d jobPostingDocument) toModel() models.JobPosting {
	return models.JobPosting{
		ID:          d.ID,
		OwnerID:     d.OwnerID,
		Title:       d.Title,
		Description: d.Description,
		Category:    models.JobCategory(d.Category),
		City:        d.City,
		SalaryMin:   d.SalaryMin,
		SalaryMax:   d.SalaryMax,
		Arrangement: models.Arrangement(d.Arrangement),
		Status:      models.JobStatus(d.Status),
		PhotoFileID: d.PhotoFileID,
		ExpiresAt:   d.ExpiresAt.UTC(),
		CreatedAt:   d.CreatedAt.UTC(),
		UpdatedAt:   d.UpdatedAt.UTC(),
	}
}

func decodeJobPosting(raw json.RawMessage) (models.JobPosting, error) {
	var doc jobPostingDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return models.JobPosting{}, fmt.Errorf("%w: %w", ErrDecodingDocument, err)
	}

	return doc.toModel(), nil
}

// mapDocumentError translates adapter errors into store sentinels.
func mapDocumentError(err error) error {
	switch {
	case errors.Is(err, adapter.ErrNotFound):
		return ErrNotFound
	case errors.Is(err, adapter.ErrConflict):
		return ErrAlreadyExists
	default:
		return err
	}
}

// documentJobPostingRepository stores job postings in a backend document
// collection.
type documentJobPostingRepository struct {
	documents    adapter.DocumentsAdapter
	collectionID string
	logger       *logger.Logger
}

// NewDocumentJobPostingRepository constructs a [JobPostingRepository] backed
// by the document collection collectionID.
func NewDocumentJobPostingRepository(documents adapter.DocumentsAdapter, collectionID string, logger *logger.Logger) JobPostingRepository {
	logger.Debug().Msg("creating document job posting repository")
	return &documentJobPostingRepository{
		documents:    documents,
		collectionID: collectionID,
		logger:       logger,
	}
}

func (r *documentJobPostingRepository) Create(ctx context.Context, p models.JobPosting) (models.JobPosting, error) {
	raw, err := r.documents.CreateDocument(ctx, r.collectionID, p.ID, newJobPostingAttributes(p))
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*documentJobPostingRepository.Create").Msg("error creating document")
		return models.JobPosting{}, mapDocumentError(err)
	}

	return decodeJobPosting(raw)
}

func (r *documentJobPostingRepository) Get(ctx context.Context, id string) (models.JobPosting, error) {
	raw, err := r.documents.GetDocument(ctx, r.collectionID, id)
	if err != nil {
		return models.JobPosting{}, mapDocumentError(err)
	}

	return decodeJobPosting(raw)
}

func filterQueries(filter models.JobPostingFilter) []adapter.Query {
	queries := make([]adapter.Query, 0, 4)
	if filter.OwnerID != "" {
		queries = append(queries, adapter.QueryEqual("ownerId", filter.OwnerID))
	}
	if filter.Category != "" {
		queries = append(queries, adapter.QueryEqual("category", string(filter.Category)))
	}
	if filter.City != "" {
		queries = append(queries, adapter.QueryEqual("city", filter.City))
	}
	if filter.Status != "" {
		queries = append(queries, adapter.QueryEqual("status", string(filter.Status)))
	}

	return queries
}

func (r *documentJobPostingRepository) List(ctx context.Context, filter models.JobPostingFilter, page models.Page) (models.PageResult[models.JobPosting], error) {
	page = page.Normalize()
	result := models.PageResult[models.JobPosting]{Limit: page.Limit, Offset: page.Offset}

	queries := append(filterQueries(filter),
		adapter.QueryOrderDesc("$createdAt"),
		adapter.QueryLimit(page.Limit),
		adapter.QueryOffset(page.Offset),
	)

	list, err := r.documents.ListDocuments(ctx, r.collectionID, queries...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*documentJobPostingRepository.List").Msg("error listing documents")
		return result, mapDocumentError(err)
	}

	result.Total = list.Total
	result.Items = make([]models.JobPosting, 0, len(list.Documents))
	for _, raw := range list.Documents {
		p, err := decodeJobPosting(raw)
		if err != nil {
			return result, err
		}
		result.Items = append(result.Items, p)
	}

	return result, nil
}

func (r *documentJobPostingRepository) Update(ctx context.Context, p models.JobPosting) (models.JobPosting, error) {
	raw, err := r.documents.UpdateDocument(ctx, r.collectionID, p.ID, newJobPostingAttributes(p))
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*documentJobPostingRepository.Update").Msg("error updating document")
		return models.JobPosting{}, mapDocumentError(err)
	}

	return decodeJobPosting(raw)
}

func (r *documentJobPostingRepository) Delete(ctx context.Context, id string) error {
	if err := r.documents.DeleteDocument(ctx, r.collectionID, id); err != nil {
		return mapDocumentError(err)
	}

	return nil
}

// CloseExpired pages through open postings expiring before now and closes
// them one by one. Closed documents drop out of the filter, so every round
// reads the first page again. Query results may lag behind the updates:
// postings already closed in this call are skipped, and a round that closes
// nothing new ends the sweep.
func (r *documentJobPostingRepository) CloseExpired(ctx context.Context, now time.Time) (int, error) {
	seen := make(map[string]struct{})
	for range closeExpiredMaxRounds {
		list, err := r.documents.ListDocuments(ctx, r.collectionID,
			adapter.QueryEqual("status", string(models.JobStatusOpen)),
			adapter.QueryLessThan("expiresAt", now.UTC().Format(time.RFC3339)),
			adapter.QueryLimit(closeExpiredBatch),
		)
		if err != nil {
			return len(seen), mapDocumentError(err)
		}

		closedInRound := 0
		for _, raw := range list.Documents {
			p, err := decodeJobPosting(raw)
			if err != nil {
				return len(seen), err
			}
			if _, ok := seen[p.ID]; ok {
				continue
			}

			update := map[string]any{"status": string(models.JobStatusClosed)}
			if _, err = r.documents.UpdateDocument(ctx, r.collectionID, p.ID, update); err != nil {
				return len(seen), mapDocumentError(err)
			}
			seen[p.ID] = struct{}{}
			closedInRound++
		}

		if len(list.Documents) < closeExpiredBatch || closedInRound == 0 {
			return len(seen), nil
		}
	}

	logger.FromContext(ctx).Warn().
		Int("closed", len(seen)).
		Int("rounds", closeExpiredMaxRounds).
		Msg("expired job postings left for the next sweep")
	return len(seen), nil
}
