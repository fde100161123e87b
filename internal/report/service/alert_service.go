package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"posto-ledger/internal/entity"
	"posto-ledger/pkg/common"
	"posto-ledger/pkg/logger"
	"posto-ledger/pkg/telegram"

	"github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

// maxDeliveries is how many times a movement is retried before it is dropped.
const maxDeliveries = 5

// AlertService turns ledger movement events into low stock alerts.
type AlertService interface {
	ProcessMovements(ctx context.Context)
	ProcessRetries(ctx context.Context)
	HandleMovement(ctx context.Context, event *entity.MovementEvent) (bool, error)
}

// AlertOptions configures NewAlertService.
type AlertOptions struct {
	Threshold   decimal.Decimal
	Window      time.Duration
	MaxIdle     time.Duration
	ReadBlock   time.Duration
	Location    *time.Location
	ConsumerTag string
}

// NewAlertService creates a new alert service.
func NewAlertService(redisClient *redis.Client, notifier telegram.Notifier, opts AlertOptions, log *logger.Logger) AlertService {
	if opts.Window <= 0 {
		opts.Window = 6 * time.Hour
	}
	if opts.MaxIdle <= 0 {
		opts.MaxIdle = time.Minute
	}
	if opts.ReadBlock <= 0 {
		opts.ReadBlock = 2 * time.Second
	}
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	if opts.ConsumerTag == "" {
		opts.ConsumerTag = common.RedisStreamConsumer
	}
	return &alertService{
		redisClient: redisClient,
		notifier:    notifier,
		opts:        opts,
		sent:        cache.New(opts.Window, opts.Window),
		log:         log,
	}
}

type alertService struct {
	redisClient *redis.Client
	notifier    telegram.Notifier
	opts        AlertOptions
	sent        *cache.Cache
	log         *logger.Logger
}

// ProcessMovements reads new movement events from the stream and acknowledges
// the ones handled. Failed events stay pending for ProcessRetries.
func (s *alertService) ProcessMovements(ctx context.Context) {
	streams, err := s.redisClient.XReadGroup(ctx, &redis.XReadGroupArgs{
		Group:    common.RedisStreamGroup,
		Consumer: s.opts.ConsumerTag,
		Streams:  []string{common.RedisStreamLedgerMovement, ">"},
		Count:    10,
		Block:    s.opts.ReadBlock,
	}).Result()
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) || errors.Is(err, redis.Nil) {
			return
		}
		s.log.Error("Failed to read movement stream", logger.ErrorField(err))
		select {
		case <-ctx.Done():
		case <-time.After(time.Second):
		}
		return
	}

	for _, stream := range streams {
		for _, msg := range stream.Messages {
			s.handleMessage(ctx, msg)
		}
	}
}

// ProcessRetries claims movement events that stayed pending too long.
func (s *alertService) ProcessRetries(ctx context.Context) {
	msgs, _, err := s.redisClient.XAutoClaim(ctx, &redis.XAutoClaimArgs{
		Stream:   common.RedisStreamLedgerMovement,
		Group:    common.RedisStreamGroup,
		Consumer: s.opts.ConsumerTag + "-retry",
		MinIdle:  s.opts.MaxIdle,
		Start:    "0",
		Count:    10,
	}).Result()
	if err != nil {
		if !errors.Is(err, context.Canceled) && !errors.Is(err, redis.Nil) {
			s.log.Error("Failed to claim pending movements", logger.ErrorField(err))
		}
		return
	}

	for _, msg := range msgs {
		pending, err := s.redisClient.XPendingExt(ctx, &redis.XPendingExtArgs{
			Stream: common.RedisStreamLedgerMovement,
			Group:  common.RedisStreamGroup,
			Start:  msg.ID,
			End:    msg.ID,
			Count:  1,
		}).Result()
		if err != nil {
			s.log.Error("Failed to get pending info", logger.ErrorField(err), logger.StringField("message_id", msg.ID))
			continue
		}
		if len(pending) > 0 && pending[0].RetryCount > maxDeliveries {
			s.log.Warn("Dropping movement after too many deliveries",
				logger.StringField("message_id", msg.ID),
				logger.Field("deliveries", pending[0].RetryCount))
			s.ack(ctx, msg.ID)
			continue
		}
		s.handleMessage(ctx, msg)
	}
}

func (s *alertService) handleMessage(ctx context.Context, msg redis.XMessage) {
	event, err := decodeMovement(msg)
	if err != nil {
		s.log.Error("Discarding malformed movement event", logger.ErrorField(err), logger.StringField("message_id", msg.ID))
		s.ack(ctx, msg.ID)
		return
	}

	if _, err := s.HandleMovement(ctx, event); err != nil {
		s.log.Error("Failed to handle movement event", logger.ErrorField(err), logger.StringField("message_id", msg.ID))
		return
	}
	s.ack(ctx, msg.ID)
}

func (s *alertService) ack(ctx context.Context, id string) {
	if err := s.redisClient.XAck(ctx, common.RedisStreamLedgerMovement, common.RedisStreamGroup, id).Err(); err != nil {
		s.log.Error("Failed to acknowledge movement event", logger.ErrorField(err), logger.StringField("message_id", id))
	}
}

// HandleMovement sends a low stock alert when an outgoing movement leaves the
// fuel under the threshold. One alert per fuel is sent per window; a refill
// back over the threshold opens a new window.
func (s *alertService) HandleMovement(ctx context.Context, event *entity.MovementEvent) (bool, error) {
	key := fmt.Sprintf("low-stock:%d", event.FuelStockID)

	if !event.QuantityAfter.LessThan(s.opts.Threshold) {
		if event.Direction == entity.DirectionIn {
			s.sent.Delete(key)
		}
		return false, nil
	}
	if event.Direction != entity.DirectionOut {
		return false, nil
	}
	if _, alerted := s.sent.Get(key); alerted {
		s.log.Debug("Low stock alert already sent", logger.Field("fuel_stock_id", event.FuelStockID))
		return false, nil
	}

	at := event.OccurredAt
	if at.IsZero() {
		at = time.Now()
	}
	msg := telegram.FormatLowStockAlert(telegram.LowStockAlert{
		Label:     event.FuelType.Label(),
		Remaining: event.QuantityAfter,
		Threshold: s.opts.Threshold,
		LastSale:  event.Quantity,
		At:        at.In(s.opts.Location),
	})
	if err := s.notifier.SendMessage(msg); err != nil {
		return false, fmt.Errorf("failed to send low stock alert: %w", err)
	}

	s.sent.SetDefault(key, true)
	s.log.Info("Low stock alert sent",
		logger.Field("fuel_stock_id", event.FuelStockID),
		logger.StringField("remaining", event.QuantityAfter.StringFixed(2)))
	return true, nil
}

func decodeMovement(msg redis.XMessage) (*entity.MovementEvent, error) {
	raw, ok := msg.Values["payload"]
	if !ok {
		return nil, errors.New("missing payload")
	}

	var data []byte
	switch v := raw.(type) {
	case string:
		data = []byte(v)
	case []byte:
		data = v
	default:
		return nil, fmt.Errorf("unexpected payload type %T", raw)
	}

	var event entity.MovementEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, err
	}
	return &event, nil
}
