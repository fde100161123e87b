package scheduler

import (
	"context"
	"fmt"
	"time"

	"posto-ledger/internal/report/service"
	"posto-ledger/pkg/logger"

	"github.com/robfig/cron/v3"
)

// DefaultDailySummarySpec sends the summary at 20:00 station time.
const DefaultDailySummarySpec = "0 20 * * *"

// CronScheduler runs the periodic report jobs.
type CronScheduler struct {
	cron    *cron.Cron
	summary service.SummaryService
	timeout time.Duration
	logger  *logger.Logger
}

// NewCronScheduler validates spec and registers the daily summary job.
func NewCronScheduler(spec string, loc *time.Location, summary service.SummaryService, log *logger.Logger) (*CronScheduler, error) {
	if spec == "" {
		spec = DefaultDailySummarySpec
	}
	if loc == nil {
		loc = time.UTC
	}

	parser := cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)
	s := &CronScheduler{
		cron:    cron.New(cron.WithLocation(loc), cron.WithParser(parser), cron.WithChain(cron.Recover(cronLogger{log}))),
		summary: summary,
		timeout: 2 * time.Minute,
		logger:  log,
	}

	if _, err := s.cron.AddFunc(spec, s.runDailySummary); err != nil {
		return nil, fmt.Errorf("invalid daily summary schedule %q: %w", spec, err)
	}
	return s, nil
}

// Start runs the scheduler in its own goroutine.
func (s *CronScheduler) Start() {
	s.cron.Start()
	for _, entry := range s.cron.Entries() {
		s.logger.Info("Report job scheduled", logger.Field("next_run", entry.Next))
	}
}

// Stop waits for running jobs to finish.
func (s *CronScheduler) Stop() {
	<-s.cron.Stop().Done()
}

func (s *CronScheduler) runDailySummary() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()
	s.summary.SendDailySummary(ctx)
}

// cronLogger adapts the application logger to cron.Logger.
type cronLogger struct {
	log *logger.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.log.Sugar().Debugw(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.log.Sugar().Errorw(msg, append(keysAndValues, "error", err)...)
}
