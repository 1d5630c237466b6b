package geo

import (
	"context"
	"log/slog"
	"time"

	"github.com/dmitrymomot/folio/pkg/cache"
	"github.com/dmitrymomot/folio/pkg/logger"
)

// Lookuper resolves an IP to a Location.
type Lookuper interface {
	Lookup(ctx context.Context, ip string) (*Location, error)
}

// Service caches lookups per IP.
type Service struct {
	lookuper Lookuper
	cache    cache.Cache[Location]
	logger   *slog.Logger
	ttl      time.Duration
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithTTL sets how long a resolved location is kept. Default 24h.
func WithTTL(d time.Duration) ServiceOption {
	return func(s *Service) {
		if d > 0 {
			s.ttl = d
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) ServiceOption {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewService creates a Service.
func NewService(l Lookuper, c cache.Cache[Location], opts ...ServiceOption) *Service {
	s := &Service{
		lookuper: l,
		cache:    c,
		ttl:      24 * time.Hour,
		logger:   logger.NewNope(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = logger.Component(s.logger, "geo")
	return s
}

// Locate returns the location for ip, hitting the upstream API at most
// once per IP per TTL. Concurrent misses share one call. Failures are not
// cached.
func (s *Service) Locate(ctx context.Context, ip string) (Location, error) {
	addr, err := PublicAddr(ip)
	if err != nil {
		return Location{}, err
	}

	return cache.GetOrSet(ctx, s.cache, "geo:"+addr.String(), func(ctx context.Context) (Location, time.Duration, error) {
		loc, err := s.lookuper.Lookup(ctx, addr.String())
		if err != nil {
			s.logger.WarnContext(ctx, "ip lookup failed", slog.String("ip", addr.String()), slog.Any("error", err))
			return Location{}, 0, err
		}
		return *loc, s.ttl, nil
	})
}
