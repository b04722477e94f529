package store

import (
	"context"
	"io"

	"github.com/MKhiriev/go-helper-market/internal/adapter"
	"github.com/MKhiriev/go-helper-market/internal/logger"
)

// backendFileStorage keeps files in the backend bucket.
type backendFileStorage struct {
	files  adapter.FilesAdapter
	ids    IDGenerator
	logger *logger.Logger
}

func NewBackendFileStorage(files adapter.FilesAdapter, ids IDGenerator, logger *logger.Logger) FileStorage {
	return &backendFileStorage{
		files:  files,
		ids:    ids,
		logger: logger,
	}
}

// Save uploads r; contentType and size are detected by the backend.
func (s *backendFileStorage) Save(ctx context.Context, name, _ string, _ int64, r io.Reader) (string, error) {
	file, err := s.files.CreateFile(ctx, s.ids.Generate(), name, r)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*backendFileStorage.Save").Msg("error uploading file")
		return "", mapDocumentError(err)
	}

	return file.ID, nil
}

func (s *backendFileStorage) URL(_ context.Context, fileID string) (string, error) {
	return s.files.FileViewURL(fileID), nil
}

func (s *backendFileStorage) Delete(ctx context.Context, fileID string) error {
	return mapDocumentError(s.files.DeleteFile(ctx, fileID))
}
