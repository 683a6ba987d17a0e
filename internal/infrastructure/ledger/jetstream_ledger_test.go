package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/bushboy/bookingswap-sub016/internal/domain/entities"

	"github.com/nats-io/nats.go/jetstream"
	"github.com/peterldowns/testy/assert"
	"github.com/peterldowns/testy/check"
	"github.com/shopspring/decimal"
)

type published struct {
	subject string
	data    []byte
	opts    int
}

type fakePublisher struct {
	msgs []published
	seq  uint64
	err  error
}

func (f *fakePublisher) Publish(_ context.Context, subject string, data []byte, opts ...jetstream.PublishOpt) (*jetstream.PubAck, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.seq++
	f.msgs = append(f.msgs, published{subject: subject, data: data, opts: len(opts)})
	return &jetstream.PubAck{Stream: DefaultStreamName, Sequence: f.seq}, nil
}

func TestJetStreamLedger(t *testing.T) {
	ctx := context.Background()
	auction := entities.Auction{ID: "a1", SwapID: "s1", OwnerID: "owner", Status: entities.AuctionStatusEnded}

	t.Run("confirmation is stream and sequence", func(t *testing.T) {
		pub := &fakePublisher{}
		l := newJetStreamLedger(pub)

		conf, err := l.RecordAuctionCreation(ctx, auction)
		assert.NoError(t, err)
		check.Equal(t, "AUCTION_LEDGER:1", conf)
		check.Equal(t, "auction.ledger.auction_created", pub.msgs[0].subject)
		check.Equal(t, 1, pub.msgs[0].opts)
	})

	t.Run("winner entry carries proposal and trigger", func(t *testing.T) {
		pub := &fakePublisher{}
		l := newJetStreamLedger(pub)
		l.now = func() time.Time { return time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC) }
		winner := entities.Proposal{
			ID: "p1", ProposerID: "u1", ProposalType: entities.ProposalTypeCash,
			Cash: &entities.CashOffer{Amount: decimal.RequireFromString("250.00"), Currency: "USD"},
		}

		_, err := l.RecordWinnerSelection(ctx, auction, winner, true)
		assert.NoError(t, err)

		var e Entry
		assert.NoError(t, json.Unmarshal(pub.msgs[0].data, &e))
		check.Equal(t, EntryWinnerSelected, e.Kind)
		check.Equal(t, "p1", e.ProposalID)
		check.Equal(t, "250", e.CashAmount)
		check.True(t, e.Automatic)
	})

	t.Run("completion records the reason", func(t *testing.T) {
		pub := &fakePublisher{}
		l := newJetStreamLedger(pub)

		_, err := l.RecordAuctionCompletion(ctx, auction, "event_deadline_approaching")
		assert.NoError(t, err)
		var e Entry
		assert.NoError(t, json.Unmarshal(pub.msgs[0].data, &e))
		check.Equal(t, "event_deadline_approaching", e.Reason)
	})

	t.Run("publish errors propagate", func(t *testing.T) {
		l := newJetStreamLedger(&fakePublisher{err: errors.New("no responders")})
		_, err := l.RecordAuctionCancellation(ctx, auction)
		check.Error(t, err)
	})
}

func TestLocalLedger(t *testing.T) {
	l := NewLocalLedger()
	auction := entities.Auction{ID: "a1"}

	first, err := l.RecordAuctionCreation(context.Background(), auction)
	assert.NoError(t, err)
	second, err := l.RecordAuctionCancellation(context.Background(), auction)
	assert.NoError(t, err)

	check.Equal(t, "LOCAL_LEDGER:1", first)
	check.Equal(t, "LOCAL_LEDGER:2", second)
}
