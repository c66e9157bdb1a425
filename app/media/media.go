// Package media stores uploaded profile images on an S3-compatible host and
// hands back a public URL for the stored object.
package media

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// keyPrefix namespaces every object the app writes.
const keyPrefix = "twitter-clone"

type Uploader interface {
	Upload(ctx context.Context, filename string, contentType string, body io.Reader) (string, error)
}

type Config struct {
	Bucket    string
	Region    string
	Endpoint  string
	BaseURL   string
	AccessKey string
	SecretKey string
}

func (c Config) Configured() bool { return c.Bucket != "" && c.AccessKey != "" }

type S3Uploader struct {
	client  *s3.Client
	bucket  string
	baseURL string
}

func NewS3Uploader(ctx context.Context, cfg Config) (*S3Uploader, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKey,
			cfg.SecretKey,
			"",
		)))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, cfg.Region)
	}

	return &S3Uploader{client: client, bucket: cfg.Bucket, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

func StorageKey(filename string) string {
	return fmt.Sprintf("%s/%v-%s", keyPrefix, uuid.New(), path.Base(filename))
}

func (u *S3Uploader) Upload(ctx context.Context, filename string, contentType string, body io.Reader) (string, error) {
	key := StorageKey(filename)
	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      &u.bucket,
		Key:         &key,
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("put object: %w", err)
	}
	return u.baseURL + "/" + key, nil
}

// NoopUploader stands in when no media host is configured. Every upload
// reports failure so registration falls back to an imageless account.
type NoopUploader struct{}

func (NoopUploader) Upload(context.Context, string, string, io.Reader) (string, error) {
	return "", fmt.Errorf("media host not configured")
}
