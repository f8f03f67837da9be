package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Task is a unit of scheduled work.
type Task func(ctx context.Context) error

// Scheduler runs registered tasks on cron specs with a seconds field.
type Scheduler struct {
	cron    *cron.Cron
	logger  *zap.Logger
	timeout time.Duration
}

func NewScheduler(logger *zap.Logger) *Scheduler {
	return &Scheduler{
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger,
		timeout: 10 * time.Minute,
	}
}

// Register adds task under name. An invalid spec is reported here rather
// than at start.
func (s *Scheduler) Register(name, spec string, task Task) error {
	_, err := s.cron.AddFunc(spec, func() {
		s.run(name, task)
	})
	return err
}

func (s *Scheduler) run(name string, task Task) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	start := time.Now()
	if err := task(ctx); err != nil {
		s.logger.Error("scheduled task failed", zap.String("task", name), zap.Error(err))
		return
	}
	s.logger.Info("scheduled task finished", zap.String("task", name), zap.Duration("took", time.Since(start)))
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop stops the scheduler and waits for running tasks until ctx is done.
func (s *Scheduler) Stop(ctx context.Context) {
	done := s.cron.Stop()
	select {
	case <-done.Done():
	case <-ctx.Done():
	}
}

func (s *Scheduler) Entries() int {
	return len(s.cron.Entries())
}
