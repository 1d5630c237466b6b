package projects

import (
	"context"
	"log/slog"
	"time"

	"github.com/dmitrymomot/folio/pkg/cache"
	"github.com/dmitrymomot/folio/pkg/logger"
)

// Lister fetches repositories from the source of truth.
type Lister interface {
	List(ctx context.Context) ([]Repo, error)
}

// Service serves the repo list from cache, loading it on a miss.
type Service struct {
	lister Lister
	cache  cache.Cache[[]Repo]
	logger *slog.Logger
	key    string
	ttl    time.Duration
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithTTL sets how long a fetched list is served. Default 1h.
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

// NewService creates a Service for user's repositories.
func NewService(l Lister, c cache.Cache[[]Repo], user string, opts ...ServiceOption) *Service {
	s := &Service{
		lister: l,
		cache:  c,
		key:    "repos:" + user,
		ttl:    time.Hour,
		logger: logger.NewNope(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = logger.Component(s.logger, "projects")
	return s
}

// List returns the cached repositories. Concurrent misses share one fetch.
func (s *Service) List(ctx context.Context) ([]Repo, error) {
	return cache.GetOrSet(ctx, s.cache, s.key, func(ctx context.Context) ([]Repo, time.Duration, error) {
		repos, err := s.lister.List(ctx)
		if err != nil {
			return nil, 0, err
		}
		return repos, s.ttl, nil
	})
}

// Search lists and applies q.
func (s *Service) Search(ctx context.Context, q Query) ([]Repo, error) {
	repos, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	return q.Apply(repos), nil
}

// Refresh fetches unconditionally and replaces the cached list. On
// failure the previous entry stays in place.
func (s *Service) Refresh(ctx context.Context) error {
	repos, err := s.lister.List(ctx)
	if err != nil {
		return err
	}
	if err := s.cache.Set(ctx, s.key, repos, s.ttl); err != nil {
		return err
	}
	s.logger.DebugContext(ctx, "repositories refreshed", slog.Int("count", len(repos)))
	return nil
}
