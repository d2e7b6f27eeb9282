package main

import (
	"context"
	"errors"
	"log"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/remonte/internal/config"
	"github.com/BruksfildServices01/remonte/internal/logger"
	"github.com/BruksfildServices01/remonte/internal/scheduler"
	"github.com/BruksfildServices01/remonte/internal/timezone"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	lg, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer lg.Sync()

	loc, err := timezone.Load(cfg.ScheduleTimezone)
	if err != nil {
		lg.Fatal("schedule timezone", zap.Error(err))
	}

	s := scheduler.New(lg, loc)
	if err := s.RegisterMaintenance(scheduler.Maintenance{
		ReminderCron: cfg.ReminderCron,
		CleanupCron:  cfg.CleanupCron,
	}); err != nil {
		lg.Fatal("register jobs", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	lg.Info("worker running",
		zap.String("reminder_cron", cfg.ReminderCron),
		zap.String("cleanup_cron", cfg.CleanupCron),
		zap.String("timezone", loc.String()),
	)

	if err := s.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		lg.Error("scheduler stopped", zap.Error(err))
	}
}
