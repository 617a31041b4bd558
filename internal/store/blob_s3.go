package store

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/docvault/go-doc-share/internal/config"
	"github.com/docvault/go-doc-share/internal/logger"
)

// s3BlobStore is the S3 implementation of [BlobStore]. It works against AWS
// proper or any S3-compatible store (e.g. MinIO) via a custom base endpoint.
// Blob paths map directly to object keys.
type s3BlobStore struct {
	client *s3.Client
	bucket string
	logger *logger.Logger
}

// NewS3BlobStore constructs a [BlobStore] backed by the configured bucket.
// Static credentials are used when provided; otherwise the default AWS
// credential chain applies.
func NewS3BlobStore(ctx context.Context, cfg config.Blob, log *logger.Logger) (BlobStore, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKeyID != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		log.Err(err).Str("func", "NewS3BlobStore").Msg("failed to load aws config")
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	log.Debug().Str("bucket", cfg.Bucket).Msg("creating s3 blob store")

	return &s3BlobStore{
		client: client,
		bucket: cfg.Bucket,
		logger: log,
	}, nil
}

// Save uploads the blob under the given object key.
func (s *s3BlobStore) Save(ctx context.Context, path string, data io.Reader) error {
	log := logger.FromContext(ctx)

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(path),
		Body:   data,
	})
	if err != nil {
		log.Err(err).Str("func", "*s3BlobStore.Save").Str("path", path).Msg("failed to put object")
		return fmt.Errorf("failed to put object: %w", err)
	}

	return nil
}

// Open streams the blob stored under the given object key.
//
// Returns [ErrBlobNotFound] when the key does not exist.
func (s *s3BlobStore) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	log := logger.FromContext(ctx)

	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(path),
	})
	if err != nil {
		var noKey *types.NoSuchKey
		if errors.As(err, &noKey) {
			return nil, ErrBlobNotFound
		}
		log.Err(err).Str("func", "*s3BlobStore.Open").Str("path", path).Msg("failed to get object")
		return nil, fmt.Errorf("failed to get object: %w", err)
	}

	return out.Body, nil
}
