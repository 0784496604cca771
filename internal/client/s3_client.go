package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	appconfig "field-track-api/internal/config"
)

// BackupStore is the interface for off-site backup storage
type BackupStore interface {
	Upload(ctx context.Context, key string, payload []byte) error
	Download(ctx context.Context, key string) ([]byte, error)
	BackupKey(now time.Time) string
}

// S3BackupStore stores backup payloads in an S3 bucket
type S3BackupStore struct {
	client    *s3.Client
	bucket    string
	keyPrefix string
}

// NewS3BackupStore creates an S3-backed backup store. A custom endpoint
// switches to path-style addressing with static credentials, which is
// what MinIO expects in local setups.
func NewS3BackupStore(cfg *appconfig.S3Config) (*S3BackupStore, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("S3 bucket is required")
	}
	if cfg.Region == "" {
		return nil, fmt.Errorf("S3 region is required")
	}

	var awsCfg aws.Config
	var err error

	if cfg.Endpoint != "" {
		if cfg.AccessKey == "" || cfg.SecretKey == "" {
			return nil, fmt.Errorf("access key and secret key are required for a custom endpoint")
		}
		awsCfg, err = awsconfig.LoadDefaultConfig(context.TODO(),
			awsconfig.WithRegion(cfg.Region),
			awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
				cfg.AccessKey,
				cfg.SecretKey,
				"",
			)),
		)
	} else {
		// Default credential chain: IAM role on the host, local profile otherwise
		awsCfg, err = awsconfig.LoadDefaultConfig(context.TODO(),
			awsconfig.WithRegion(cfg.Region),
		)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	s3Client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	keyPrefix := cfg.KeyPrefix
	if keyPrefix == "" {
		keyPrefix = "backups"
	}

	return &S3BackupStore{
		client:    s3Client,
		bucket:    cfg.Bucket,
		keyPrefix: keyPrefix,
	}, nil
}

// BackupKey builds the object key for a backup taken at the given time
func (s *S3BackupStore) BackupKey(now time.Time) string {
	return fmt.Sprintf("%s/%s/field-track_%d.json",
		s.keyPrefix, now.Format("2006/01"), now.Unix())
}

// Upload writes a backup payload to the bucket
func (s *S3BackupStore) Upload(ctx context.Context, key string, payload []byte) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(payload),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return fmt.Errorf("failed to upload backup %s: %w", key, err)
	}
	return nil
}

// Download reads a backup payload from the bucket
func (s *S3BackupStore) Download(ctx context.Context, key string) ([]byte, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to download backup %s: %w", key, err)
	}
	defer out.Body.Close()

	payload, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read backup %s: %w", key, err)
	}
	return payload, nil
}
