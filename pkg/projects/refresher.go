package projects

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/dmitrymomot/folio/pkg/logger"
)

// DefaultSchedule refreshes every 30 minutes.
const DefaultSchedule = "*/30 * * * *"

// Refresher re-fetches repositories on a cron schedule so visitors rarely
// wait on GitHub. Start and Stop match the app's startup and shutdown
// hook signature.
type Refresher struct {
	service *Service
	cron    *cron.Cron
	logger  *slog.Logger
	ctx     context.Context
	cancel  context.CancelFunc
	timeout time.Duration
	mu      sync.Mutex
}

// NewRefresher parses schedule (standard 5-field cron) and prepares the job.
func NewRefresher(s *Service, schedule string, l *slog.Logger) (*Refresher, error) {
	if schedule == "" {
		schedule = DefaultSchedule
	}
	if l == nil {
		l = logger.NewNope()
	}

	r := &Refresher{
		service: s,
		logger:  logger.Component(l, "projects.refresher"),
		timeout: 30 * time.Second,
	}

	parser := cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)
	sched, err := parser.Parse(schedule)
	if err != nil {
		return nil, errors.Join(ErrInvalidCron, err)
	}

	r.cron = cron.New(cron.WithParser(parser), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)))
	r.cron.Schedule(sched, cron.FuncJob(r.run))
	return r, nil
}

// Start begins the schedule. ctx only bounds the call itself; jobs run
// until Stop.
func (r *Refresher) Start(context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.cancel != nil {
		return nil
	}
	ctx, cancel := context.WithCancel(context.Background())
	r.cancel = cancel
	r.ctx = ctx
	r.cron.Start()
	r.logger.Info("projects refresher started")
	return nil
}

// Stop halts the schedule and waits for a running refresh, or for ctx.
func (r *Refresher) Stop(ctx context.Context) error {
	r.mu.Lock()
	cancel := r.cancel
	r.cancel = nil
	r.mu.Unlock()

	if cancel == nil {
		return nil
	}
	cancel()

	select {
	case <-r.cron.Stop().Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// RunNow performs one refresh outside the schedule.
func (r *Refresher) RunNow(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()
	return r.service.Refresh(ctx)
}

func (r *Refresher) run() {
	r.mu.Lock()
	base := r.ctx
	r.mu.Unlock()
	if base == nil {
		return
	}

	if err := r.RunNow(base); err != nil && !errors.Is(err, context.Canceled) {
		r.logger.WarnContext(base, "scheduled refresh failed", slog.Any("error", err))
	}
}
