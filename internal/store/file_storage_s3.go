package store

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/MKhiriev/go-helper-market/internal/config"
	"github.com/MKhiriev/go-helper-market/internal/logger"
)

// s3ObjectAPI is the part of *s3.Client used by [s3FileStorage].
type s3ObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// s3Presigner is the part of *s3.PresignClient used by [s3FileStorage].
type s3Presigner interface {
	PresignGetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
}

// s3FileStorage keeps files in an S3-compatible bucket and hands out
// presigned GET URLs.
type s3FileStorage struct {
	objects    s3ObjectAPI
	presigner  s3Presigner
	bucket     string
	presignTTL time.Duration
	ids        IDGenerator
	logger     *logger.Logger
}

// NewS3FileStorage builds the S3 clients from static credentials.
func NewS3FileStorage(ctx context.Context, cfg config.S3, ids IDGenerator, log *logger.Logger) (FileStorage, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKey,
			cfg.SecretKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("error loading s3 config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.BaseEndpoint)
			o.UsePathStyle = true
		}
	})

	log.Debug().Str("bucket", cfg.Bucket).Msg("created s3 file storage")

	return newS3FileStorage(client, s3.NewPresignClient(client), cfg.Bucket, cfg.PresignTTL, ids, log), nil
}

func newS3FileStorage(objects s3ObjectAPI, presigner s3Presigner, bucket string, ttl time.Duration, ids IDGenerator, log *logger.Logger) *s3FileStorage {
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}

	return &s3FileStorage{
		objects:    objects,
		presigner:  presigner,
		bucket:     bucket,
		presignTTL: ttl,
		ids:        ids,
		logger:     log,
	}
}

func (s *s3FileStorage) Save(ctx context.Context, name, contentType string, size int64, r io.Reader) (string, error) {
	key := s.ids.Generate()

	input := &s3.PutObjectInput{
		Bucket:             aws.String(s.bucket),
		Key:                aws.String(key),
		Body:               r,
		ContentDisposition: aws.String(fmt.Sprintf("inline; filename=%q", name)),
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}
	if size > 0 {
		input.ContentLength = aws.Int64(size)
	}

	if _, err := s.objects.PutObject(ctx, input); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*s3FileStorage.Save").Msg("error uploading object")
		return "", fmt.Errorf("error uploading object: %w", err)
	}

	return key, nil
}

func (s *s3FileStorage) URL(ctx context.Context, fileID string) (string, error) {
	req, err := s.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(fileID),
	}, s3.WithPresignExpires(s.presignTTL))
	if err != nil {
		return "", fmt.Errorf("error presigning object url: %w", err)
	}

	return req.URL, nil
}

func (s *s3FileStorage) Delete(ctx context.Context, fileID string) error {
	_, err := s.objects.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(fileID),
	})
	if err != nil {
		return fmt.Errorf("error deleting object: %w", err)
	}

	return nil
}
