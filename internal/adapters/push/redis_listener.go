// Package push bridges the real-time event channel into the cache layer.
// Instead of mutating UI state directly, every push event is translated into
// an invalidation so that the next read observes live server state.
package push

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/collabzy/collabzy-go/internal/core"
)

// Event names delivered on the push channel.
const (
	EventNotificationNew    = "notification:new"
	EventMessageReceive     = "message:receive"
	EventApplicationUpdate  = "application:update"
	EventDealUpdate         = "deal:update"
	EventCampaignUpdate     = "campaign:update"
	EventCollaborationStart = "collaboration:start"
)

// KindsFor maps a push event to the resource kinds it makes stale. A
// notification payload names its kind explicitly; the other events have a
// fixed mapping. Unknown events map to nothing.
func KindsFor(event core.PushEvent) []core.ResourceKind {
	switch event.Event {
	case EventNotificationNew:
		kind := core.ResourceKind(event.Kind)
		if kind.Valid() {
			return []core.ResourceKind{kind}
		}
		return nil
	case EventMessageReceive:
		return []core.ResourceKind{core.KindConversations}
	case EventApplicationUpdate:
		return []core.ResourceKind{core.KindApplications}
	case EventDealUpdate:
		return []core.ResourceKind{core.KindDeals}
	case EventCampaignUpdate:
		return []core.ResourceKind{core.KindCampaigns}
	case EventCollaborationStart:
		return []core.ResourceKind{core.KindDeals, core.KindConversations}
	default:
		return nil
	}
}

// RedisListener subscribes to the push channel on redis pub/sub and routes
// each event through the invalidator.
type RedisListener struct {
	client      *redis.Client
	channel     string
	invalidator core.Invalidator
	logger      *zap.Logger
	cancel      context.CancelFunc
	done        chan struct{}
}

// NewRedisListener creates a listener for the given redis instance and
// channel.
func NewRedisListener(addr, password string, db int, channel string, invalidator core.Invalidator, logger *zap.Logger) *RedisListener {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	return &RedisListener{
		client:      client,
		channel:     channel,
		invalidator: invalidator,
		logger:      logger,
		done:        make(chan struct{}),
	}
}

// Start verifies the connection, subscribes, and consumes events in the
// background until Stop is called.
func (l *RedisListener) Start() error {
	ctx, cancel := context.WithCancel(context.Background())
	l.cancel = cancel

	if err := l.client.Ping(ctx).Err(); err != nil {
		cancel()
		return fmt.Errorf("failed to connect to redis: %w", err)
	}

	sub := l.client.Subscribe(ctx, l.channel)
	if _, err := sub.Receive(ctx); err != nil {
		cancel()
		return fmt.Errorf("failed to subscribe to %s: %w", l.channel, err)
	}

	l.logger.Info("Push listener started", zap.String("channel", l.channel))

	go func() {
		defer close(l.done)
		defer sub.Close()

		ch := sub.Channel()
		for {
			select {
			case msg, ok := <-ch:
				if !ok {
					return
				}
				l.handlePayload(msg.Payload)
			case <-ctx.Done():
				return
			}
		}
	}()

	return nil
}

// Stop shuts the listener down and closes the redis connection.
func (l *RedisListener) Stop() error {
	if l.cancel != nil {
		l.cancel()
		<-l.done
	}
	return l.client.Close()
}

func (l *RedisListener) handlePayload(payload string) {
	var event core.PushEvent
	if err := json.Unmarshal([]byte(payload), &event); err != nil {
		l.logger.Warn("Dropping malformed push event", zap.Error(err))
		return
	}

	kinds := KindsFor(event)
	if len(kinds) == 0 {
		l.logger.Debug("Push event affects no cached kind", zap.String("event", event.Event))
		return
	}

	for _, kind := range kinds {
		l.invalidator.Invalidate(kind)
	}
	l.logger.Debug("Invalidated caches for push event",
		zap.String("event", event.Event),
		zap.Int("kinds", len(kinds)))
}
