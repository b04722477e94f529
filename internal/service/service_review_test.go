package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-helper-market/internal/logger"
	"github.com/MKhiriev/go-helper-market/internal/mock"
	"github.com/MKhiriev/go-helper-market/internal/store"
	"github.com/MKhiriev/go-helper-market/internal/validators"
	"github.com/MKhiriev/go-helper-market/models"
)

func newTestReviewService(t *testing.T) (*reviewService, *mock.MockReviewRepository, *mock.MockIDGenerator) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := mock.NewMockReviewRepository(ctrl)
	ids := mock.NewMockIDGenerator(ctrl)

	svc := NewReviewService(repo, ids, logger.Nop()).(*reviewService)
	svc.now = func() time.Time { return fixedNow }

	return svc, repo, ids
}

func TestReviewService_Create(t *testing.T) {
	svc, repo, ids := newTestReviewService(t)

	ids.EXPECT().Generate().Return("r1")
	repo.EXPECT().Create(gomock.Any(), models.Review{
		ID:         "r1",
		WorkerID:   worker.ID,
		AuthorID:   employer.ID,
		AuthorName: employer.Name,
		Rating:     5,
		Comment:    "Sangat rajin",
		CreatedAt:  fixedNow,
	}).DoAndReturn(func(_ context.Context, r models.Review) (models.Review, error) {
		return r, nil
	})

	created, err := svc.Create(context.Background(), employer, models.Review{WorkerID: worker.ID, Rating: 5, Comment: "Sangat rajin"})
	require.NoError(t, err)
	assert.Equal(t, "r1", created.ID)
}

func TestReviewService_Create_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		author  models.User
		review  models.Review
		wantErr error
	}{
		{name: "worker cannot review", author: worker, review: models.Review{WorkerID: "wrk-2", Rating: 4}, wantErr: ErrAccessDenied},
		{name: "rating out of range", author: employer, review: models.Review{WorkerID: worker.ID, Rating: 6}, wantErr: validators.ErrInvalidRating},
		{name: "self review", author: admin, review: models.Review{WorkerID: admin.ID, Rating: 5}, wantErr: validators.ErrSelfReview},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, ids := newTestReviewService(t)
			ids.EXPECT().Generate().Return("r1").AnyTimes()

			_, err := svc.Create(context.Background(), tt.author, tt.review)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestReviewService_Create_Duplicate(t *testing.T) {
	svc, repo, ids := newTestReviewService(t)

	ids.EXPECT().Generate().Return("r2")
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(models.Review{}, store.ErrAlreadyExists)

	_, err := svc.Create(context.Background(), employer, models.Review{WorkerID: worker.ID, Rating: 3})
	assert.ErrorIs(t, err, ErrReviewAlreadyExists)
}

func TestReviewService_ListByWorker_Average(t *testing.T) {
	svc, repo, _ := newTestReviewService(t)

	repo.EXPECT().ListByWorker(gomock.Any(), worker.ID).Return([]models.Review{
		{Rating: 5}, {Rating: 4}, {Rating: 4},
	}, nil)

	summary, err := svc.ListByWorker(context.Background(), worker.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, summary.Total)
	assert.InDelta(t, 4.3, summary.Average, 0.0001)
}

func TestReviewService_ListByWorker_Empty(t *testing.T) {
	svc, repo, _ := newTestReviewService(t)

	repo.EXPECT().ListByWorker(gomock.Any(), worker.ID).Return([]models.Review{}, nil)

	summary, err := svc.ListByWorker(context.Background(), worker.ID)
	require.NoError(t, err)
	assert.Zero(t, summary.Average)
	assert.Zero(t, summary.Total)
}

func TestReviewService_ListByWorker_Error(t *testing.T) {
	svc, repo, _ := newTestReviewService(t)

	repo.EXPECT().ListByWorker(gomock.Any(), worker.ID).Return(nil, errors.New("db down"))

	_, err := svc.ListByWorker(context.Background(), worker.ID)
	assert.Error(t, err)
}
