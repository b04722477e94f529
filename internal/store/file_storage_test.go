package store

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-helper-market/internal/adapter"
	"github.com/MKhiriev/go-helper-market/internal/logger"
	"github.com/MKhiriev/go-helper-market/internal/mock"
)

func TestBackendFileStorage_Save(t *testing.T) {
	ctrl := gomock.NewController(t)
	files := mock.NewMockFilesAdapter(ctrl)
	ids := mock.NewMockIDGenerator(ctrl)
	storage := NewBackendFileStorage(files, ids, logger.Nop())
	body := strings.NewReader("jpeg")

	ids.EXPECT().Generate().Return("file-1")
	files.EXPECT().CreateFile(gomock.Any(), "file-1", "photo.jpg", body).
		Return(adapter.File{ID: "file-1", Name: "photo.jpg"}, nil)

	id, err := storage.Save(context.Background(), "photo.jpg", "image/jpeg", 4, body)
	require.NoError(t, err)
	assert.Equal(t, "file-1", id)
}

func TestBackendFileStorage_URLAndDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	files := mock.NewMockFilesAdapter(ctrl)
	storage := NewBackendFileStorage(files, mock.NewMockIDGenerator(ctrl), logger.Nop())

	files.EXPECT().FileViewURL("file-1").Return("https://baas.test/v1/storage/buckets/b/files/file-1/view?project=p")
	files.EXPECT().DeleteFile(gomock.Any(), "file-2").Return(&adapter.BackendError{Status: 404})

	url, err := storage.URL(context.Background(), "file-1")
	require.NoError(t, err)
	assert.Contains(t, url, "/files/file-1/view")

	assert.ErrorIs(t, storage.Delete(context.Background(), "file-2"), ErrNotFound)
}

type fakeS3 struct {
	put     *s3.PutObjectInput
	deleted string
	err     error
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.put = in
	if f.err != nil {
		return nil, f.err
	}
	_, _ = io.ReadAll(in.Body)
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3) DeleteObject(_ context.Context, in *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	f.deleted = *in.Key
	return &s3.DeleteObjectOutput{}, f.err
}

type fakePresigner struct {
	expires time.Duration
}

func (f *fakePresigner) PresignGetObject(_ context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
	var opts s3.PresignOptions
	for _, fn := range optFns {
		fn(&opts)
	}
	f.expires = opts.Expires

	return &v4.PresignedHTTPRequest{URL: "https://s3.test/" + *in.Bucket + "/" + *in.Key + "?X-Amz-Signature=abc"}, nil
}

func TestS3FileStorage_Save(t *testing.T) {
	ctrl := gomock.NewController(t)
	ids := mock.NewMockIDGenerator(ctrl)
	objects := &fakeS3{}
	storage := newS3FileStorage(objects, &fakePresigner{}, "photos", 0, ids, logger.Nop())

	ids.EXPECT().Generate().Return("obj-1")

	id, err := storage.Save(context.Background(), "rumah.png", "image/png", 3, strings.NewReader("png"))
	require.NoError(t, err)
	assert.Equal(t, "obj-1", id)

	require.NotNil(t, objects.put)
	assert.Equal(t, "photos", *objects.put.Bucket)
	assert.Equal(t, "obj-1", *objects.put.Key)
	assert.Equal(t, "image/png", *objects.put.ContentType)
	assert.Equal(t, int64(3), *objects.put.ContentLength)
}

func TestS3FileStorage_Save_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	ids := mock.NewMockIDGenerator(ctrl)
	storage := newS3FileStorage(&fakeS3{err: errors.New("denied")}, &fakePresigner{}, "photos", 0, ids, logger.Nop())

	ids.EXPECT().Generate().Return("obj-1")

	_, err := storage.Save(context.Background(), "rumah.png", "", 0, strings.NewReader("png"))
	assert.ErrorContains(t, err, "denied")
}

func TestS3FileStorage_URL_UsesPresignTTL(t *testing.T) {
	presigner := &fakePresigner{}
	storage := newS3FileStorage(&fakeS3{}, presigner, "photos", 5*time.Minute, nil, logger.Nop())

	url, err := storage.URL(context.Background(), "obj-1")
	require.NoError(t, err)
	assert.Equal(t, "https://s3.test/photos/obj-1?X-Amz-Signature=abc", url)
	assert.Equal(t, 5*time.Minute, presigner.expires)
}

func TestS3FileStorage_Delete(t *testing.T) {
	objects := &fakeS3{}
	storage := newS3FileStorage(objects, &fakePresigner{}, "photos", 0, nil, logger.Nop())

	require.NoError(t, storage.Delete(context.Background(), "obj-9"))
	assert.Equal(t, "obj-9", objects.deleted)
}
