package service

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/MKhiriev/go-helper-market/internal/logger"
	"github.com/MKhiriev/go-helper-market/internal/store"
	"github.com/MKhiriev/go-helper-market/models"
)

// MaxPhotoSize is the upload limit of a photo, in bytes.
const MaxPhotoSize = 5 << 20

type fileService struct {
	storage store.FileStorage
	logger  *logger.Logger
}

func NewFileService(storage store.FileStorage, logger *logger.Logger) FileService {
	return &fileService{
		storage: storage,
		logger:  logger,
	}
}

// Upload accepts images up to [MaxPhotoSize] from users allowed to open the
// dashboard.
func (s *fileService) Upload(ctx context.Context, owner models.User, name, contentType string, size int64, r io.Reader) (string, error) {
	if !owner.Can(models.CapViewDashboard) {
		return "", ErrAccessDenied
	}
	if size > MaxPhotoSize {
		return "", ErrFileTooLarge
	}
	if !strings.HasPrefix(contentType, "image/") {
		return "", ErrUnsupportedFileType
	}

	// guards against a lying Content-Length
	id, err := s.storage.Save(ctx, name, contentType, size, io.LimitReader(r, MaxPhotoSize+1))
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*fileService.Upload").Msg("error saving file")
		return "", err
	}

	return id, nil
}

func (s *fileService) ViewURL(ctx context.Context, fileID string) (string, error) {
	if fileID == "" {
		return "", ErrFileNotFound
	}

	url, err := s.storage.URL(ctx, fileID)
	if errors.Is(err, store.ErrNotFound) {
		return "", ErrFileNotFound
	}

	return url, err
}
