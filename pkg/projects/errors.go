package projects

import "errors"

var (
	ErrNoUser        = errors.New("projects: github user is required")
	ErrFetchFailed   = errors.New("projects: failed to fetch repositories")
	ErrRequestFailed = errors.New("projects: github request failed")
	ErrDecodeFailed  = errors.New("projects: failed to decode repositories")
	ErrInvalidCron   = errors.New("projects: invalid refresh schedule")
)
