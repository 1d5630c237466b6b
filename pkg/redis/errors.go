package redis

import "errors"

var (
	ErrNoURL            = errors.New("redis: REDIS_URL is empty")
	ErrInvalidURL       = errors.New("redis: invalid REDIS_URL")
	ErrConnectionFailed = errors.New("redis: server unreachable")
	ErrUnhealthy        = errors.New("redis: ping failed")
)
