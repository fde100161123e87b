package consumer

import (
	"context"
	"sync"
	"time"

	"posto-ledger/internal/report/config"
	"posto-ledger/internal/report/service"
	"posto-ledger/pkg/common"
	"posto-ledger/pkg/logger"
	"posto-ledger/pkg/utils"
)

// RedisConsumer drives the movement stream handlers of the report service.
type RedisConsumer struct {
	cfg          *config.Config
	alertService service.AlertService
	logger       *logger.Logger
	stopChan     chan struct{}
	stopOnce     sync.Once
	wg           sync.WaitGroup
}

// NewRedisConsumer creates a new RedisConsumer.
func NewRedisConsumer(cfg *config.Config, alertService service.AlertService, log *logger.Logger) *RedisConsumer {
	return &RedisConsumer{
		cfg:          cfg,
		alertService: alertService,
		logger:       log,
		stopChan:     make(chan struct{}),
	}
}

// Start begins reading the movement stream and retrying pending events.
func (c *RedisConsumer) Start(ctx context.Context) {
	c.logger.Info("Redis consumer started")
	c.RegisterStreamHandler(ctx, c.alertService.ProcessMovements, common.RedisStreamLedgerMovement, orDefault(c.cfg.Report.StreamReadTimeout, 10*time.Second))
	c.RegisterTickerHandler(ctx, c.alertService.ProcessRetries, orDefault(c.cfg.Report.StreamRetryInterval, 30*time.Second), orDefault(c.cfg.Report.StreamReadTimeout, 10*time.Second), common.RedisStreamLedgerMovement+"-retry")
}

// RegisterStreamHandler calls fn in a loop, each call bounded by timeout.
func (c *RedisConsumer) RegisterStreamHandler(ctx context.Context, fn func(ctx context.Context), streamName string, timeout time.Duration) {
	c.logger.Info("Registering stream handler", logger.Field("stream", streamName))
	c.wg.Add(1)
	utils.GoSafe(func() {
		defer c.wg.Done()
		for {
			select {
			case <-ctx.Done():
				c.logger.Info("Redis consumer stopping due to context cancellation")
				return
			case <-c.stopChan:
				c.logger.Info("Redis consumer stopping")
				return
			default:
				ctxTimeout, cancel := context.WithTimeout(ctx, timeout)
				fn(ctxTimeout)
				cancel()
			}
		}
	})
}

// RegisterTickerHandler calls fn every interval, each call bounded by timeout.
func (c *RedisConsumer) RegisterTickerHandler(ctx context.Context, fn func(ctx context.Context), interval time.Duration, timeout time.Duration, name string) {
	c.logger.Info("Registering ticker handler",
		logger.Field("name", name),
		logger.Field("interval", interval),
		logger.Field("timeout", timeout))
	c.wg.Add(1)
	utils.GoSafe(func() {
		defer c.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				ctxTimeout, cancel := context.WithTimeout(ctx, timeout)
				fn(ctxTimeout)
				cancel()
			case <-ctx.Done():
				c.logger.Info("Ticker handler stopping due to context cancellation", logger.Field("name", name))
				return
			case <-c.stopChan:
				c.logger.Info("Ticker handler stopping", logger.Field("name", name))
				return
			}
		}
	})
}

// Stop gracefully shuts down the consumer.
func (c *RedisConsumer) Stop() {
	c.stopOnce.Do(func() { close(c.stopChan) })
	c.wg.Wait()
	c.logger.Info("Redis consumer stopped")
}

func orDefault(d, def time.Duration) time.Duration {
	if d <= 0 {
		return def
	}
	return d
}
