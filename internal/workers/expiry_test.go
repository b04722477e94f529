package workers

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-helper-market/internal/logger"
	"github.com/MKhiriev/go-helper-market/internal/mock"
)

func TestExpiryWorker_SweepsUntilCancelled(t *testing.T) {
	ctrl := gomock.NewController(t)
	postings := mock.NewMockJobPostingService(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var calls atomic.Int32
	postings.EXPECT().CloseExpired(gomock.Any()).
		DoAndReturn(func(context.Context) (int, error) {
			if calls.Add(1) == 3 {
				cancel()
			}
			return 2, nil
		}).
		MinTimes(3)

	done := make(chan struct{})
	go func() {
		NewExpiryWorker(postings, 5*time.Millisecond, logger.Nop()).Run(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not stop")
	}
	assert.GreaterOrEqual(t, calls.Load(), int32(3))
}

func TestExpiryWorker_ErrorDoesNotStop(t *testing.T) {
	ctrl := gomock.NewController(t)
	postings := mock.NewMockJobPostingService(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	gomock.InOrder(
		postings.EXPECT().CloseExpired(gomock.Any()).Return(0, errors.New("backend down")),
		postings.EXPECT().CloseExpired(gomock.Any()).DoAndReturn(func(context.Context) (int, error) {
			cancel()
			return 0, nil
		}),
	)

	w := NewExpiryWorker(postings, time.Millisecond, logger.Nop())
	w.Run(ctx)
}

func TestExpiryWorker_CancelledBeforeStart(t *testing.T) {
	ctrl := gomock.NewController(t)
	postings := mock.NewMockJobPostingService(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// no CloseExpired call expected
	NewExpiryWorker(postings, time.Millisecond, logger.Nop()).Run(ctx)
}

func TestNewExpiryWorker_DefaultInterval(t *testing.T) {
	w := NewExpiryWorker(nil, 0, logger.Nop())
	assert.Equal(t, defaultExpiryInterval, w.interval)
}
