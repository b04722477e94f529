package service

import (
	"github.com/MKhiriev/go-helper-market/internal/adapter"
	"github.com/MKhiriev/go-helper-market/internal/config"
	"github.com/MKhiriev/go-helper-market/internal/logger"
	"github.com/MKhiriev/go-helper-market/internal/store"
)

type Services struct {
	AuthService       AuthService
	JobPostingService JobPostingService
	ReviewService     ReviewService
	FileService       FileService
	AppInfoService    AppInfoService
}

func NewServices(adapters *adapter.Adapters, storages *store.Storages, ids store.IDGenerator, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg, logger)
	if err != nil {
		return nil, err
	}

	jobPostings := NewJobPostingValidationService().Wrap(
		NewJobPostingService(storages.JobPostingRepository, ids, logger),
	)

	return &Services{
		AuthService:       NewAuthService(adapters.Identity, logger),
		JobPostingService: jobPostings,
		ReviewService:     NewReviewService(storages.ReviewRepository, ids, logger),
		FileService:       NewFileService(storages.FileStorage, logger),
		AppInfoService:    appInfo,
	}, nil
}
