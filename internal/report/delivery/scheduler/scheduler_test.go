package scheduler

import (
	"context"
	"testing"
	"time"

	"posto-ledger/pkg/logger"
	"posto-ledger/pkg/telegram"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingSummary struct {
	calls int
}

func (c *countingSummary) BuildDailySummary(context.Context, time.Time) (*telegram.DailySummary, error) {
	return &telegram.DailySummary{}, nil
}

func (c *countingSummary) SendDailySummary(context.Context) {
	c.calls++
}

func TestNewCronScheduler(t *testing.T) {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)

	s, err := NewCronScheduler("", loc, &countingSummary{}, logger.NewNop())
	require.NoError(t, err)
	entries := s.cron.Entries()
	require.Len(t, entries, 1)

	next := entries[0].Schedule.Next(time.Date(2024, 5, 17, 12, 0, 0, 0, loc))
	assert.Equal(t, time.Date(2024, 5, 17, 20, 0, 0, 0, loc), next)

	_, err = NewCronScheduler("every day", loc, &countingSummary{}, logger.NewNop())
	assert.Error(t, err)
}

func TestCronScheduler_RunsSummary(t *testing.T) {
	summary := &countingSummary{}
	s, err := NewCronScheduler("@daily", time.UTC, summary, logger.NewNop())
	require.NoError(t, err)

	s.runDailySummary()
	assert.Equal(t, 1, summary.calls)
}
