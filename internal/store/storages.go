package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-helper-market/internal/adapter"
	"github.com/MKhiriev/go-helper-market/internal/config"
	"github.com/MKhiriev/go-helper-market/internal/logger"
)

// Storages bundles the repositories and file storage selected by
// configuration.
type Storages struct {
	JobPostingRepository JobPostingRepository
	ReviewRepository     ReviewRepository
	FileStorage          FileStorage

	db *DB
}

// NewStorages wires the stores chosen by cfg.Storage. SQL drivers open the
// database and apply migrations; the backend driver uses adapters.
func NewStorages(ctx context.Context, cfg config.StructuredConfig, adapters *adapter.Adapters, ids IDGenerator, log *logger.Logger) (*Storages, error) {
	storages := &Storages{}

	switch cfg.Storage.Driver {
	case config.DriverBackend, "":
		storages.JobPostingRepository = NewDocumentJobPostingRepository(adapters.Documents, cfg.Backend.JobsCollectionID, log)
		storages.ReviewRepository = NewDocumentReviewRepository(adapters.Documents, cfg.Backend.ReviewsCollectionID, log)
	case config.DriverPostgres, config.DriverSQLite:
		db, err := connect(ctx, cfg.Storage.Driver, cfg.Storage.DB, log)
		if err != nil {
			return nil, err
		}
		if err = db.Migrate(); err != nil {
			_ = db.Close()
			return nil, err
		}
		storages.db = db
		storages.JobPostingRepository = NewJobPostingRepository(db, log)
		storages.ReviewRepository = NewReviewRepository(db, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Storage.Driver)
	}

	switch cfg.Storage.Files.Driver {
	case config.DriverBackend, "":
		storages.FileStorage = NewBackendFileStorage(adapters.Files, ids, log)
	case config.DriverS3:
		files, err := NewS3FileStorage(ctx, cfg.Storage.Files.S3, ids, log)
		if err != nil {
			storages.Close()
			return nil, err
		}
		storages.FileStorage = files
	default:
		storages.Close()
		return nil, fmt.Errorf("%w: files %q", ErrUnknownDriver, cfg.Storage.Files.Driver)
	}

	return storages, nil
}

func connect(ctx context.Context, driver string, cfg config.DB, log *logger.Logger) (*DB, error) {
	if driver == config.DriverSQLite {
		return NewConnectSQLite(ctx, cfg, log)
	}

	return NewConnectPostgres(ctx, cfg, log)
}

// Close releases the database connection, if any.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}

	return s.db.Close()
}
