package scheduler

import (
	"context"

	"go.uber.org/zap"
)

const (
	ReminderJob = "send-reminder-every-day"
	CleanupJob  = "cleanup-orders-every-night"
)

// Policy is the body of a maintenance job.
type Policy func(ctx context.Context) error

// LogPolicy only records that the job fired.
func LogPolicy(log *zap.Logger, name string) Policy {
	return func(context.Context) error {
		log.Info("maintenance job fired", zap.String("job", name))
		return nil
	}
}

type Maintenance struct {
	ReminderCron string
	CleanupCron  string
	Reminder     Policy
	Cleanup      Policy
}

func (s *Scheduler) RegisterMaintenance(m Maintenance) error {
	reminder := m.Reminder
	if reminder == nil {
		reminder = LogPolicy(s.log, ReminderJob)
	}
	cleanup := m.Cleanup
	if cleanup == nil {
		cleanup = LogPolicy(s.log, CleanupJob)
	}

	if err := s.Register(ReminderJob, m.ReminderCron, JobFunc(reminder)); err != nil {
		return err
	}
	return s.Register(CleanupJob, m.CleanupCron, JobFunc(cleanup))
}
