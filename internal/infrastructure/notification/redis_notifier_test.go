package notification

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/bushboy/bookingswap-sub016/internal/domain/entities"

	"github.com/peterldowns/testy/assert"
	"github.com/peterldowns/testy/check"
	"github.com/redis/go-redis/v9"
)

type fakeRedis struct {
	published  map[string][]string
	inbox      map[string][]string
	trimmed    map[string]int64
	publishErr error
	pushErr    error
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{
		published: map[string][]string{},
		inbox:     map[string][]string{},
		trimmed:   map[string]int64{},
	}
}

func (f *fakeRedis) Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd {
	cmd := redis.NewIntCmd(ctx)
	if f.publishErr != nil {
		cmd.SetErr(f.publishErr)
		return cmd
	}
	f.published[channel] = append(f.published[channel], string(message.([]byte)))
	cmd.SetVal(1)
	return cmd
}

func (f *fakeRedis) LPush(ctx context.Context, key string, values ...interface{}) *redis.IntCmd {
	cmd := redis.NewIntCmd(ctx)
	if f.pushErr != nil {
		cmd.SetErr(f.pushErr)
		return cmd
	}
	for _, v := range values {
		f.inbox[key] = append([]string{string(v.([]byte))}, f.inbox[key]...)
	}
	cmd.SetVal(int64(len(f.inbox[key])))
	return cmd
}

func (f *fakeRedis) LTrim(ctx context.Context, key string, start, stop int64) *redis.StatusCmd {
	f.trimmed[key] = stop
	if int64(len(f.inbox[key])) > stop+1 {
		f.inbox[key] = f.inbox[key][start : stop+1]
	}
	cmd := redis.NewStatusCmd(ctx)
	cmd.SetVal("OK")
	return cmd
}

func (f *fakeRedis) Expire(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd {
	cmd := redis.NewBoolCmd(ctx)
	cmd.SetVal(true)
	return cmd
}

func TestRedisNotifier_Send(t *testing.T) {
	ctx := context.Background()

	t.Run("publishes to the recipient channel and inbox", func(t *testing.T) {
		rdb := newFakeRedis()
		n := newRedisNotifier(rdb)

		err := n.Send(ctx, entities.Notification{
			Type: entities.NotificationProposalWon, RecipientID: "u1", AuctionID: "a1", ProposalID: "p1",
		})
		assert.NoError(t, err)

		msgs := rdb.published["auction_notifications:u1"]
		assert.Equal(t, 1, len(msgs))

		var got entities.Notification
		assert.NoError(t, json.Unmarshal([]byte(msgs[0]), &got))
		check.Equal(t, entities.NotificationProposalWon, got.Type)
		check.NotEqual(t, "", got.ID)
		check.False(t, got.CreatedAt.IsZero())
		check.Equal(t, 1, len(rdb.inbox["auction_inbox:u1"]))
	})

	t.Run("inbox is bounded", func(t *testing.T) {
		rdb := newFakeRedis()
		n := newRedisNotifier(rdb)
		n.inboxSize = 2

		for i := 0; i < 5; i++ {
			assert.NoError(t, n.Send(ctx, entities.Notification{Type: entities.NotificationAuctionEnded, RecipientID: "u1"}))
		}
		check.Equal(t, 2, len(rdb.inbox["auction_inbox:u1"]))
		check.Equal(t, int64(1), rdb.trimmed["auction_inbox:u1"])
	})

	t.Run("missing recipient", func(t *testing.T) {
		n := newRedisNotifier(newFakeRedis())
		check.Error(t, n.Send(ctx, entities.Notification{Type: entities.NotificationAuctionEnded}))
	})

	t.Run("publish failure is returned", func(t *testing.T) {
		rdb := newFakeRedis()
		rdb.publishErr = errors.New("connection refused")
		n := newRedisNotifier(rdb)
		check.Error(t, n.Send(ctx, entities.Notification{Type: entities.NotificationAuctionEnded, RecipientID: "u1"}))
	})

	t.Run("inbox failure after publish is tolerated", func(t *testing.T) {
		rdb := newFakeRedis()
		rdb.pushErr = errors.New("OOM")
		n := newRedisNotifier(rdb)
		check.NoError(t, n.Send(ctx, entities.Notification{Type: entities.NotificationAuctionEnded, RecipientID: "u1"}))
		check.Equal(t, 1, len(rdb.published["auction_notifications:u1"]))
	})
}
