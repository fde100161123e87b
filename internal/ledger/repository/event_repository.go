package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"posto-ledger/internal/entity"
	"posto-ledger/pkg/common"

	"github.com/redis/go-redis/v9"
)

// EventRepository publishes ledger events to other services.
type EventRepository interface {
	PublishMovement(ctx context.Context, event *entity.MovementEvent) error
}

// NewEventRepository creates an EventRepository writing to the ledger movement stream.
// maxLen caps the stream length approximately; zero keeps everything.
func NewEventRepository(redisClient *redis.Client, maxLen int64) EventRepository {
	return &eventRepository{
		redisClient: redisClient,
		maxLen:      maxLen,
	}
}

type eventRepository struct {
	redisClient *redis.Client
	maxLen      int64
}

func (r *eventRepository) PublishMovement(ctx context.Context, event *entity.MovementEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal movement event: %w", err)
	}

	args := &redis.XAddArgs{
		Stream: common.RedisStreamLedgerMovement,
		Values: map[string]interface{}{"payload": payload},
	}
	if r.maxLen > 0 {
		args.MaxLen = r.maxLen
		args.Approx = true
	}
	if err := r.redisClient.XAdd(ctx, args).Err(); err != nil {
		return fmt.Errorf("failed to publish movement event: %w", err)
	}
	return nil
}

// NewNopEventRepository returns an EventRepository that drops every event.
func NewNopEventRepository() EventRepository {
	return nopEventRepository{}
}

type nopEventRepository struct{}

func (nopEventRepository) PublishMovement(context.Context, *entity.MovementEvent) error {
	return nil
}
