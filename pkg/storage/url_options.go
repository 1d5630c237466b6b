package storage

import "time"

// URLOption configures presigned URL generation.
type URLOption func(*urlOptions)

type urlOptions struct {
	downloadName string
	expiry       time.Duration
}

// WithExpiry sets how long the URL stays valid. Default 15 minutes.
func WithExpiry(d time.Duration) URLOption {
	return func(o *urlOptions) {
		if d > 0 {
			o.expiry = d
		}
	}
}

// WithDownload makes the browser save the object as filename
// (Content-Disposition: attachment).
func WithDownload(filename string) URLOption {
	return func(o *urlOptions) {
		o.downloadName = filename
	}
}

// PutOption configures uploads.
type PutOption func(*putOptions)

type putOptions struct {
	contentType  string
	cacheControl string
}

// WithContentType sets the object's Content-Type. Default application/octet-stream.
func WithContentType(ct string) PutOption {
	return func(o *putOptions) {
		o.contentType = ct
	}
}

// WithCacheControl sets the object's Cache-Control header.
func WithCacheControl(v string) PutOption {
	return func(o *putOptions) {
		o.cacheControl = v
	}
}
