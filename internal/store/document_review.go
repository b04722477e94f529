package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/MKhiriev/go-helper-market/internal/adapter"
	"github.com/MKhiriev/go-helper-market/internal/logger"
	"github.com/MKhiriev/go-helper-market/models"
)

// maxReviewsPerWorker bounds a single review listing.
const maxReviewsPerWorker = 100

type reviewAttributes struct {
	WorkerID   string `json:"workerId"`
	AuthorID   string `json:"authorId"`
	AuthorName string `json:"authorName"`
	Rating     int    `json:"rating"`
	Comment    string `json:"comment"`
}

type reviewDocument struct {
	ID        string    `json:"$id"`
	CreatedAt time.Time `json:"$createdAt"`
	reviewAttributes
}

func decodeReview(raw json.RawMessage) (models.Review, error) {
	var doc reviewDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return models.Review{}, fmt.Errorf("%w: %w", ErrDecodingDocument, err)
	}

	return models.Review{
		ID:         doc.ID,
		WorkerID:   doc.WorkerID,
		AuthorID:   doc.AuthorID,
		AuthorName: doc.AuthorName,
		Rating:     doc.Rating,
		Comment:    doc.Comment,
		CreatedAt:  doc.CreatedAt.UTC(),
	}, nil
}

// documentReviewRepository stores reviews in a backend document collection.
type documentReviewRepository struct {
	documents    adapter.DocumentsAdapter
	collectionID string
	logger       *logger.Logger
}

func NewDocumentReviewRepository(documents adapter.DocumentsAdapter, collectionID string, logger *logger.Logger) ReviewRepository {
	logger.Debug().Msg("creating document review repository")
	return &documentReviewRepository{
		documents:    documents,
		collectionID: collectionID,
		logger:       logger,
	}
}

// Create checks the (worker, author) pair first; document collections
// without a unique index would otherwise accept duplicates.
func (r *documentReviewRepository) Create(ctx context.Context, review models.Review) (models.Review, error) {
	existing, err := r.documents.ListDocuments(ctx, r.collectionID,
		adapter.QueryEqual("workerId", review.WorkerID),
		adapter.QueryEqual("authorId", review.AuthorID),
		adapter.QueryLimit(1),
	)
	if err != nil {
		return models.Review{}, mapDocumentError(err)
	}
	if existing.Total > 0 || len(existing.Documents) > 0 {
		return models.Review{}, ErrAlreadyExists
	}

	raw, err := r.documents.CreateDocument(ctx, r.collectionID, review.ID, reviewAttributes{
		WorkerID:   review.WorkerID,
		AuthorID:   review.AuthorID,
		AuthorName: review.AuthorName,
		Rating:     review.Rating,
		Comment:    review.Comment,
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*documentReviewRepository.Create").Msg("error creating document")
		return models.Review{}, mapDocumentError(err)
	}

	return decodeReview(raw)
}

func (r *documentReviewRepository) ListByWorker(ctx context.Context, workerID string) ([]models.Review, error) {
	list, err := r.documents.ListDocuments(ctx, r.collectionID,
		adapter.QueryEqual("workerId", workerID),
		adapter.QueryOrderDesc("$createdAt"),
		adapter.QueryLimit(maxReviewsPerWorker),
	)
	if err != nil {
		return nil, mapDocumentError(err)
	}

	reviews := make([]models.Review, 0, len(list.Documents))
	for _, raw := range list.Documents {
		review, err := decodeReview(raw)
		if err != nil {
			return nil, err
		}
		reviews = append(reviews, review)
	}

	return reviews, nil
}
