// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-helper-market/internal/logger"
	"github.com/MKhiriev/go-helper-market/internal/service"
)

const defaultExpiryInterval = time.Hour

// ExpiryWorker closes job postings whose expiry passed.
type ExpiryWorker struct {
	postings service.JobPostingService
	interval time.Duration
	logger   *logger.Logger
}

func NewExpiryWorker(postings service.JobPostingService, interval time.Duration, logger *logger.Logger) *ExpiryWorker {
	if interval <= 0 {
		interval = defaultExpiryInterval
	}
	return &ExpiryWorker{
		postings: postings,
		interval: interval,
		logger:   logger,
	}
}

// Run sweeps once at start and then on every tick until ctx is done.
func (w *ExpiryWorker) Run(ctx context.Context) {
	w.logger.Info().Dur("interval", w.interval).Msg("expiry worker started")

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		w.sweep(ctx)

		select {
		case <-ctx.Done():
			w.logger.Info().Msg("expiry worker stopped")
			return
		case <-ticker.C:
		}
	}
}

func (w *ExpiryWorker) sweep(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}

	closed, err := w.postings.CloseExpired(ctx)
	if err != nil {
		w.logger.Err(err).Msg("closing expired job postings failed")
		return
	}

	if closed > 0 {
		w.logger.Info().Int("closed", closed).Msg("expired job postings closed")
	}
}
