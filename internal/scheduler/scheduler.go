package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/adhocore/gronx"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/remonte/internal/timezone"
)

type JobFunc func(ctx context.Context) error

type job struct {
	name string
	expr string
	run  JobFunc
}

// Scheduler runs registered jobs on minute boundaries according to their
// cron expressions. A failing job is logged and does not affect the others.
type Scheduler struct {
	gron *gronx.Gronx
	log  *zap.Logger
	loc  *time.Location
	now  func() time.Time

	mu   sync.Mutex
	jobs []job
}

// New builds a scheduler whose cron expressions are read in loc.
func New(log *zap.Logger, loc *time.Location) *Scheduler {
	if loc == nil {
		loc = time.UTC
	}
	return &Scheduler{
		gron: gronx.New(),
		log:  log,
		loc:  loc,
		now:  func() time.Time { return timezone.NowIn(loc) },
	}
}

func (s *Scheduler) Register(name, expr string, fn JobFunc) error {
	if !s.gron.IsValid(expr) {
		return fmt.Errorf("job %s: invalid cron expression %q", name, expr)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, j := range s.jobs {
		if j.name == name {
			return fmt.Errorf("job %s already registered", name)
		}
	}
	s.jobs = append(s.jobs, job{name: name, expr: expr, run: fn})
	return nil
}

// RunDue runs every job due at the given minute and returns their names.
func (s *Scheduler) RunDue(ctx context.Context, at time.Time) []string {
	at = at.In(s.loc).Truncate(time.Minute)

	s.mu.Lock()
	jobs := append([]job(nil), s.jobs...)
	s.mu.Unlock()

	var ran []string
	for _, j := range jobs {
		due, err := s.gron.IsDue(j.expr, at)
		if err != nil {
			s.log.Error("cron check failed", zap.String("job", j.name), zap.Error(err))
			continue
		}
		if !due {
			continue
		}

		ran = append(ran, j.name)
		s.runOne(ctx, j)
	}
	return ran
}

func (s *Scheduler) runOne(ctx context.Context, j job) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Error("job panicked", zap.String("job", j.name), zap.Any("panic", r))
		}
	}()

	start := s.now()
	if err := j.run(ctx); err != nil {
		s.log.Error("job failed", zap.String("job", j.name), zap.Error(err))
		return
	}
	s.log.Info("job finished", zap.String("job", j.name), zap.Duration("took", s.now().Sub(start)))
}

// Run blocks until ctx is cancelled, waking at every minute boundary.
func (s *Scheduler) Run(ctx context.Context) error {
	for {
		now := s.now()
		next := now.Truncate(time.Minute).Add(time.Minute)

		timer := time.NewTimer(next.Sub(now))
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
			s.RunDue(ctx, next)
		}
	}
}
