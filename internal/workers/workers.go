package workers

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-helper-market/internal/config"
	"github.com/MKhiriev/go-helper-market/internal/logger"
	"github.com/MKhiriev/go-helper-market/internal/service"
)

type Workers struct {
	workers []Worker
	logger  *logger.Logger
}

func NewWorkers(services *service.Services, cfg config.Workers, logger *logger.Logger) *Workers {
	return &Workers{
		workers: []Worker{
			NewExpiryWorker(services.JobPostingService, cfg.ExpiryInterval, logger),
		},
		logger: logger,
	}
}

// Run starts every worker in its own goroutine and blocks until all of them
// have returned.
func (w *Workers) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for _, worker := range w.workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker.Run(ctx)
		}()
	}
	wg.Wait()

	if w.logger != nil {
		w.logger.Info().Msg("workers stopped")
	}
}
