package backup

import (
	"context"
	"fmt"

	"github.com/Sathvik1533/Skillsync/internal/logging"
	"github.com/robfig/cron/v3"
)

// Runner performs one backup.
type Runner interface {
	Run(ctx context.Context) ([]string, error)
}

// Scheduler runs backups on a cron schedule while enabled reports true.
type Scheduler struct {
	cron    *cron.Cron
	runner  Runner
	enabled func(ctx context.Context) bool
	log     logging.Logger
}

// NewScheduler validates schedule (standard 5-field cron or a descriptor such as
// "@daily" or "@every 1h") and returns a stopped scheduler. enabled may be
// nil, meaning always.
func NewScheduler(schedule string, runner Runner, enabled func(ctx context.Context) bool, log logging.Logger) (*Scheduler, error) {
	if log == nil {
		log = logging.Nop()
	}
	if enabled == nil {
		enabled = func(context.Context) bool { return true }
	}

	sched, err := cron.ParseStandard(schedule)
	if err != nil {
		return nil, fmt.Errorf("invalid backup schedule %q: %w", schedule, err)
	}

	s := &Scheduler{
		cron:    cron.New(cron.WithLogger(cronLogger{log: log})),
		runner:  runner,
		enabled: enabled,
		log:     log,
	}
	s.cron.Schedule(sched, cron.NewChain(cron.SkipIfStillRunning(cronLogger{log: log})).Then(s))
	return s, nil
}

// Run implements cron.Job.
func (s *Scheduler) Run() {
	ctx := context.Background()
	if !s.enabled(ctx) {
		s.log.Debug(ctx, "scheduled backup skipped: not logged in")
		return
	}
	if _, err := s.runner.Run(ctx); err != nil {
		s.log.Warn(ctx, "scheduled backup failed", "error", err)
	}
}

// Start begins running the schedule in the background.
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop halts the schedule and waits for a running backup to finish or ctx to
// end.
func (s *Scheduler) Stop(ctx context.Context) {
	select {
	case <-s.cron.Stop().Done():
	case <-ctx.Done():
	}
}

// cronLogger adapts logging.Logger to cron.Logger.
type cronLogger struct {
	log logging.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.log.Debug(context.Background(), "cron: "+msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.log.Error(context.Background(), "cron: "+msg, append(keysAndValues, "error", err)...)
}
