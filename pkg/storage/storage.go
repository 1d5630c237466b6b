package storage

import (
	"context"
	"io"
	"time"
)

// Storage is the object store used for the downloadable CV.
type Storage interface {
	// Put uploads r under key. size is sent as Content-Length.
	Put(ctx context.Context, key string, r io.Reader, size int64, opts ...PutOption) (*FileInfo, error)

	// Head returns metadata for key, or ErrNotFound.
	Head(ctx context.Context, key string) (*FileInfo, error)

	// URL returns a presigned GET URL for key.
	URL(ctx context.Context, key string, opts ...URLOption) (string, error)
}

// Config holds S3-compatible storage configuration.
// Storage is disabled when Bucket is empty.
type Config struct {
	Bucket    string `env:"S3_BUCKET"`
	AccessKey string `env:"S3_ACCESS_KEY"`
	SecretKey string `env:"S3_SECRET_KEY"`
	// Endpoint is set for MinIO, R2 and other S3-compatible services.
	Endpoint  string `env:"S3_ENDPOINT"`
	Region    string `env:"S3_REGION" envDefault:"us-east-1"`
	PathStyle bool   `env:"S3_PATH_STYLE"`
}

// Enabled reports whether a bucket is configured.
func (c Config) Enabled() bool {
	return c.Bucket != ""
}

// FileInfo describes a stored object.
type FileInfo struct {
	LastModified time.Time
	Key          string
	ContentType  string
	Size         int64
}

const (
	DefaultRegion    = "us-east-1"
	DefaultURLExpiry = 15 * time.Minute
)

func (c *Config) applyDefaults() {
	if c.Region == "" {
		c.Region = DefaultRegion
	}
}

func (c *Config) validate() error {
	if c.Bucket == "" || c.AccessKey == "" || c.SecretKey == "" {
		return ErrInvalidConfig
	}
	return nil
}
