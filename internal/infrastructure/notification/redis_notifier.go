package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/bushboy/bookingswap-sub016/internal/domain/entities"
	"github.com/bushboy/bookingswap-sub016/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	channelPrefix = "auction_notifications:"
	inboxPrefix   = "auction_inbox:"

	// DefaultInboxSize bounds the per-user list of recent notifications.
	DefaultInboxSize = 50
	DefaultInboxTTL  = 30 * 24 * time.Hour
)

// redisPublisher is the subset of *redis.Client the notifier calls.
type redisPublisher interface {
	Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd
	LPush(ctx context.Context, key string, values ...interface{}) *redis.IntCmd
	LTrim(ctx context.Context, key string, start, stop int64) *redis.StatusCmd
	Expire(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd
}

// RedisNotifier fans notifications out on a per-recipient pub/sub channel and
// keeps a short inbox list so clients that were offline can catch up.
type RedisNotifier struct {
	client    redisPublisher
	inboxSize int64
	now       func() time.Time
}

var _ interfaces.INotificationService = (*RedisNotifier)(nil)

func NewRedisNotifier(client *redis.Client) *RedisNotifier {
	return newRedisNotifier(client)
}

func newRedisNotifier(client redisPublisher) *RedisNotifier {
	return &RedisNotifier{
		client:    client,
		inboxSize: DefaultInboxSize,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func ChannelFor(recipientID string) string { return channelPrefix + recipientID }

func InboxFor(recipientID string) string { return inboxPrefix + recipientID }

func (n *RedisNotifier) Send(ctx context.Context, msg entities.Notification) error {
	if msg.RecipientID == "" {
		return fmt.Errorf("notification %s has no recipient", msg.Type)
	}
	if msg.ID == "" {
		msg.ID = uuid.NewString()
	}
	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = n.now()
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	if err := n.client.Publish(ctx, ChannelFor(msg.RecipientID), payload).Err(); err != nil {
		return fmt.Errorf("failed to publish notification: %w", err)
	}

	inbox := InboxFor(msg.RecipientID)
	if err := n.client.LPush(ctx, inbox, payload).Err(); err != nil {
		// the live publish already went out
		log.Printf("[notification][redis] inbox push failed recipient=%s err=%v", msg.RecipientID, err)
		return nil
	}
	if err := n.client.LTrim(ctx, inbox, 0, n.inboxSize-1).Err(); err != nil {
		log.Printf("[notification][redis] inbox trim failed recipient=%s err=%v", msg.RecipientID, err)
	}
	if err := n.client.Expire(ctx, inbox, DefaultInboxTTL).Err(); err != nil {
		log.Printf("[notification][redis] inbox expire failed recipient=%s err=%v", msg.RecipientID, err)
	}
	return nil
}
