package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Storage implements Storage on S3-compatible object storage.
type S3Storage struct {
	client    *s3.Client
	presigner *s3.PresignClient
	cfg       Config
}

// S3Option tweaks the underlying SDK client.
type S3Option func(*s3.Options)

// WithHTTPClient replaces the SDK's HTTP client.
func WithHTTPClient(c *http.Client) S3Option {
	return func(o *s3.Options) {
		if c != nil {
			o.HTTPClient = c
		}
	}
}

// New creates an S3Storage. Bucket and both keys are required.
func New(cfg Config, opts ...S3Option) (*S3Storage, error) {
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	sdkOpts := []func(*s3.Options){
		func(o *s3.Options) {
			o.Region = cfg.Region
			o.Credentials = credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")
			if cfg.Endpoint != "" {
				o.BaseEndpoint = aws.String(cfg.Endpoint)
				o.UsePathStyle = cfg.PathStyle
			}
		},
	}
	for _, opt := range opts {
		sdkOpts = append(sdkOpts, opt)
	}

	client := s3.New(s3.Options{}, sdkOpts...)
	return &S3Storage{
		client:    client,
		presigner: s3.NewPresignClient(client),
		cfg:       cfg,
	}, nil
}

// Put uploads r to key. Non-seekable readers are buffered so the SDK can
// compute payload checksums.
func (s *S3Storage) Put(ctx context.Context, key string, r io.Reader, size int64, opts ...PutOption) (*FileInfo, error) {
	if key == "" {
		return nil, ErrEmptyKey
	}

	o := putOptions{contentType: "application/octet-stream"}
	for _, opt := range opts {
		opt(&o)
	}

	body, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("%w: read input: %w", ErrUploadFailed, err)
		}
		body = bytes.NewReader(data)
	}

	input := &s3.PutObjectInput{
		Bucket:        aws.String(s.cfg.Bucket),
		Key:           aws.String(key),
		Body:          body,
		ContentLength: aws.Int64(size),
		ContentType:   aws.String(o.contentType),
	}
	if o.cacheControl != "" {
		input.CacheControl = aws.String(o.cacheControl)
	}

	if _, err := s.client.PutObject(ctx, input); err != nil {
		return nil, wrapS3Error(err, ErrUploadFailed)
	}

	return &FileInfo{Key: key, Size: size, ContentType: o.contentType}, nil
}

// Head checks that key exists without downloading it.
func (s *S3Storage) Head(ctx context.Context, key string) (*FileInfo, error) {
	if key == "" {
		return nil, ErrEmptyKey
	}

	out, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.cfg.Bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, wrapS3Error(err, ErrHeadFailed)
	}

	return &FileInfo{
		Key:          key,
		Size:         aws.ToInt64(out.ContentLength),
		ContentType:  aws.ToString(out.ContentType),
		LastModified: aws.ToTime(out.LastModified),
	}, nil
}

// URL presigns a GET for key. No request is made to the storage service.
func (s *S3Storage) URL(ctx context.Context, key string, opts ...URLOption) (string, error) {
	if key == "" {
		return "", ErrEmptyKey
	}

	o := urlOptions{expiry: DefaultURLExpiry}
	for _, opt := range opts {
		opt(&o)
	}

	input := &s3.GetObjectInput{
		Bucket: aws.String(s.cfg.Bucket),
		Key:    aws.String(key),
	}
	if o.downloadName != "" {
		input.ResponseContentDisposition = aws.String(fmt.Sprintf("attachment; filename=%q", o.downloadName))
	}

	res, err := s.presigner.PresignGetObject(ctx, input, func(po *s3.PresignOptions) {
		po.Expires = o.expiry
	})
	if err != nil {
		return "", wrapS3Error(err, ErrPresignFailed)
	}
	return res.URL, nil
}

var _ Storage = (*S3Storage)(nil)
