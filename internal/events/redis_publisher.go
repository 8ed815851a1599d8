package events

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RedisPublisher mirrors dispatched events onto a Redis pub/sub channel so
// external consumers (dashboards, printers) can observe shop activity.
type RedisPublisher struct {
	client  *redis.Client
	channel string
	logger  *zap.Logger
}

// NewRedisPublisher creates a publisher for the given channel.
func NewRedisPublisher(client *redis.Client, channel string, logger *zap.Logger) *RedisPublisher {
	return &RedisPublisher{client: client, channel: channel, logger: logger}
}

// RegisterAll subscribes the publisher to every event type.
func (p *RedisPublisher) RegisterAll(dispatcher Dispatcher) {
	if dispatcher == nil {
		return
	}
	for _, eventType := range []EventType{
		EventTicketCreated,
		EventTicketStatusChanged,
		EventTicketDeleted,
		EventInvoiceCreated,
		EventInventoryLowStock,
	} {
		dispatcher.Subscribe(eventType, p.publish)
	}
}

// publish serializes the event and pushes it to the channel. Delivery is
// best-effort: a failed publish never fails the user action that emitted it.
func (p *RedisPublisher) publish(ctx context.Context, event Event) error {
	if p.client == nil {
		return nil
	}
	payload, err := json.Marshal(event)
	if err != nil {
		p.logger.Warn("marshal event", zap.Error(err), zap.String("type", string(event.Type)))
		return nil
	}
	if err := p.client.Publish(ctx, p.channel, payload).Err(); err != nil {
		p.logger.Warn("publish event to redis", zap.Error(err), zap.String("type", string(event.Type)))
	}
	return nil
}
