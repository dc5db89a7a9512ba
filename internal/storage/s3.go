package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/JaimeStill/gallery/internal/config"
	"github.com/JaimeStill/gallery/internal/lifecycle"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
)

// S3 implements System against an S3-compatible object store.
// Hosted backends expose their buckets through such an endpoint, so the same
// client serves AWS, MinIO and managed storage gateways.
type S3 struct {
	client    *s3.Client
	bucket    string
	publicURL string
	logger    *slog.Logger
}

// NewS3 creates an S3 storage system. The endpoint is addressed path-style and
// request checksums are only sent when an operation requires them, which keeps
// the client compatible with gateways that reject the newer checksum headers.
func NewS3(ctx context.Context, cfg *config.StorageConfig, secret string, logger *slog.Logger) (*S3, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.KeyID, secret, ""),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("load aws configuration: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(cfg.Endpoint)
		o.UsePathStyle = true
		o.RequestChecksumCalculation = aws.RequestChecksumCalculationWhenRequired
		o.ResponseChecksumValidation = aws.ResponseChecksumValidationWhenRequired
	})

	return &S3{
		client:    client,
		bucket:    cfg.Bucket,
		publicURL: strings.TrimSuffix(cfg.PublicURL, "/"),
		logger:    logger.With("system", "storage", "provider", "s3", "bucket", cfg.Bucket),
	}, nil
}

func (s *S3) Start(lc *lifecycle.Coordinator) error {
	s.logger.Info("starting storage system")

	lc.OnStartup(func() {
		_, err := s.client.HeadBucket(lc.Context(), &s3.HeadBucketInput{
			Bucket: aws.String(s.bucket),
		})
		if err != nil {
			s.logger.Warn("bucket check failed", "error", err)
			return
		}
		s.logger.Info("bucket reachable")
	})

	return nil
}

// Upload sends a conditional PutObject (If-None-Match: *), so the store
// rejects the write when the key already exists.
func (s *S3) Upload(ctx context.Context, key string, data []byte, opts UploadOptions) error {
	if err := ValidateKey(key); err != nil {
		return err
	}

	input := &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
		IfNoneMatch:   aws.String("*"),
	}
	if opts.ContentType != "" {
		input.ContentType = aws.String(opts.ContentType)
	}
	if opts.CacheControl != "" {
		input.CacheControl = aws.String(opts.CacheControl)
	}

	if _, err := s.client.PutObject(ctx, input); err != nil {
		return mapS3Error(err)
	}

	return nil
}

func (s *S3) PublicURL(key string) string {
	return publicURL(s.publicURL, key)
}

func (s *S3) Remove(ctx context.Context, key string) error {
	if err := ValidateKey(key); err != nil {
		return err
	}

	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		mapped := mapS3Error(err)
		if errors.Is(mapped, ErrNotFound) {
			return nil
		}
		return mapped
	}

	return nil
}

type httpStatusError interface {
	HTTPStatusCode() int
}

func mapS3Error(err error) error {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "PreconditionFailed", "ConditionalRequestConflict":
			return fmt.Errorf("%w: %w", ErrConflict, err)
		case "NoSuchKey", "NotFound":
			return fmt.Errorf("%w: %w", ErrNotFound, err)
		case "AccessDenied":
			return fmt.Errorf("%w: %w", ErrPermissionDenied, err)
		}
	}

	var statusErr httpStatusError
	if errors.As(err, &statusErr) {
		switch statusErr.HTTPStatusCode() {
		case http.StatusPreconditionFailed, http.StatusConflict:
			return fmt.Errorf("%w: %w", ErrConflict, err)
		case http.StatusNotFound:
			return fmt.Errorf("%w: %w", ErrNotFound, err)
		case http.StatusForbidden:
			return fmt.Errorf("%w: %w", ErrPermissionDenied, err)
		}
	}

	return fmt.Errorf("s3: %w", err)
}
