package adapter

import (
	"context"
	"fmt"
	"io"
	"net/url"
)

type filesAdapter struct {
	client   *Client
	bucketID string
}

// NewFilesAdapter constructs a files adapter bound to bucketID.
func NewFilesAdapter(client *Client, bucketID string) FilesAdapter {
	return &filesAdapter{client: client, bucketID: bucketID}
}

func (a *filesAdapter) CreateFile(ctx context.Context, fileID, name string, r io.Reader) (File, error) {
	if fileID == "" {
		fileID = uniqueID
	}

	var file File
	resp, err := a.client.keyRequest(ctx).
		SetPathParam("bucketId", a.bucketID).
		SetMultipartFormData(map[string]string{"fileId": fileID}).
		SetFileReader("file", name, r).
		SetResult(&file).
		Post("/storage/buckets/{bucketId}/files")
	if err != nil {
		return File{}, fmt.Errorf("create file request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return File{}, err
	}

	return file, nil
}

func (a *filesAdapter) DeleteFile(ctx context.Context, fileID string) error {
	resp, err := a.client.keyRequest(ctx).
		SetPathParam("bucketId", a.bucketID).
		SetPathParam("fileId", fileID).
		Delete("/storage/buckets/{bucketId}/files/{fileId}")
	if err != nil {
		return fmt.Errorf("delete file request: %w", err)
	}

	return mapHTTPError(resp)
}

func (a *filesAdapter) FileViewURL(fileID string) string {
	return fmt.Sprintf("%s/storage/buckets/%s/files/%s/view?project=%s",
		a.client.endpoint,
		url.PathEscape(a.bucketID),
		url.PathEscape(fileID),
		url.QueryEscape(a.client.projectID),
	)
}
