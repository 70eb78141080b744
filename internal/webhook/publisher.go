package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/diyapatel028/Mangrove-sentinals/internal/models"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	alertQueueKey = "alert_events"
)

// Event kinds pushed to subscribers.
const (
	EventAlertCreated  = "alert.created"
	EventAlertResolved = "alert.resolved"
)

// AlertEvent is the payload delivered to webhook subscribers when an alert
// changes state.
type AlertEvent struct {
	EventID   uuid.UUID     `json:"event_id"`
	Kind      string        `json:"kind"`
	Timestamp time.Time     `json:"timestamp"`
	Alert     *models.Alert `json:"alert"`
}

// NewAlertEvent builds an event for the given alert state change.
func NewAlertEvent(kind string, alert *models.Alert) AlertEvent {
	return AlertEvent{
		EventID:   uuid.New(),
		Kind:      kind,
		Timestamp: time.Now().UTC(),
		Alert:     alert,
	}
}

// AlertPublisher is the interface for publishing alert events.
type AlertPublisher interface {
	Publish(ctx context.Context, event AlertEvent) error
}

// RedisAlertPublisher is an AlertPublisher backed by a Redis list.
type RedisAlertPublisher struct {
	redisClient *redis.Client
}

// NewRedisAlertPublisher creates a new RedisAlertPublisher.
func NewRedisAlertPublisher(client *redis.Client) *RedisAlertPublisher {
	return &RedisAlertPublisher{
		redisClient: client,
	}
}

// Publish pushes an alert event onto the Redis delivery queue.
func (p *RedisAlertPublisher) Publish(ctx context.Context, event AlertEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal alert event: %w", err)
	}

	// LPUSH pairs with the worker's BRPOP so events are delivered in order.
	if err := p.redisClient.LPush(ctx, alertQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish alert event to Redis: %w", err)
	}
	return nil
}
