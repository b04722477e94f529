package service

import (
	"context"

	"github.com/MKhiriev/go-helper-market/internal/config"
	"github.com/MKhiriev/go-helper-market/internal/logger"
	"github.com/MKhiriev/go-helper-market/models"
)

// appInfoService answers version and deployment questions from the loaded
// configuration. Nothing here changes after start-up.
type appInfoService struct {
	info models.AppInfo

	logger *logger.Logger
}

func NewAppInfoService(cfg config.StructuredConfig, logger *logger.Logger) (AppInfoService, error) {
	if cfg.App.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		info: models.AppInfo{
			Version:   cfg.App.Version,
			ProjectID: cfg.Backend.ProjectID,
			DataStore: cfg.Storage.Driver,
			FileStore: cfg.Storage.Files.Driver,
		},
		logger: logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.info.Version
}

func (s *appInfoService) GetAppInfo(ctx context.Context) models.AppInfo {
	return s.info
}
