package ledger

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/bushboy/bookingswap-sub016/internal/domain/entities"
	"github.com/bushboy/bookingswap-sub016/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

const (
	DefaultStreamName = "AUCTION_LEDGER"
	subjectPrefix     = "auction.ledger."
)

// EntryKind names the transition an entry anchors.
type EntryKind string

const (
	EntryAuctionCreated   EntryKind = "auction_created"
	EntryProposalReceived EntryKind = "proposal_received"
	EntryAuctionCompleted EntryKind = "auction_completed"
	EntryAuctionCancelled EntryKind = "auction_cancelled"
	EntryWinnerSelected   EntryKind = "winner_selected"
)

// Entry is the JSON document appended to the stream.
type Entry struct {
	ID           string            `json:"id"`
	Kind         EntryKind         `json:"kind"`
	AuctionID    string            `json:"auction_id"`
	SwapID       string            `json:"swap_id"`
	OwnerID      string            `json:"owner_id"`
	Status       string            `json:"status"`
	ProposalID   string            `json:"proposal_id,omitempty"`
	ProposerID   string            `json:"proposer_id,omitempty"`
	ProposalType string            `json:"proposal_type,omitempty"`
	CashAmount   string            `json:"cash_amount,omitempty"`
	Currency     string            `json:"currency,omitempty"`
	Reason       string            `json:"reason,omitempty"`
	Automatic    bool              `json:"automatic,omitempty"`
	Metadata     map[string]string `json:"metadata,omitempty"`
	RecordedAt   time.Time         `json:"recorded_at"`
}

// publisher is the part of jetstream.JetStream the ledger needs.
type publisher interface {
	Publish(ctx context.Context, subject string, data []byte, opts ...jetstream.PublishOpt) (*jetstream.PubAck, error)
}

// JetStreamLedger anchors auction transitions on a JetStream stream. Entries
// carry a deterministic message id so a retried call within the stream's
// duplicate window is not appended twice.
type JetStreamLedger struct {
	js  publisher
	now func() time.Time
}

var _ interfaces.ILedgerService = (*JetStreamLedger)(nil)

// NewJetStreamLedger ensures the ledger stream exists and returns a ledger
// publishing to it.
func NewJetStreamLedger(ctx context.Context, nc *nats.Conn, streamName string) (*JetStreamLedger, error) {
	if streamName == "" {
		streamName = DefaultStreamName
	}
	js, err := jetstream.New(nc)
	if err != nil {
		return nil, fmt.Errorf("failed to create JetStream context: %w", err)
	}

	_, err = js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
		Name:        streamName,
		Description: "Append-only record of auction state transitions",
		Subjects:    []string{subjectPrefix + ">"},
		Storage:     jetstream.FileStorage,
		Retention:   jetstream.LimitsPolicy,
		Duplicates:  10 * time.Minute,
		Replicas:    1,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create/update stream: %w", err)
	}
	log.Printf("[ledger][jetstream] stream %q ready", streamName)

	return newJetStreamLedger(js), nil
}

func newJetStreamLedger(js publisher) *JetStreamLedger {
	return &JetStreamLedger{js: js, now: func() time.Time { return time.Now().UTC() }}
}

func (l *JetStreamLedger) RecordAuctionCreation(ctx context.Context, a entities.Auction) (string, error) {
	e := l.entry(EntryAuctionCreated, a)
	e.Metadata = map[string]string{
		"end_date":   a.Settings.EndDate.Format(time.RFC3339),
		"event_date": a.EventDate.Format(time.RFC3339),
	}
	return l.append(ctx, e, a.ID)
}

func (l *JetStreamLedger) RecordAuctionProposal(ctx context.Context, a entities.Auction, p entities.Proposal) (string, error) {
	e := l.entry(EntryProposalReceived, a)
	withProposal(&e, p)
	return l.append(ctx, e, p.ID)
}

func (l *JetStreamLedger) RecordAuctionCompletion(ctx context.Context, a entities.Auction, reason string) (string, error) {
	e := l.entry(EntryAuctionCompleted, a)
	e.Reason = reason
	return l.append(ctx, e, a.ID+":"+reason)
}

func (l *JetStreamLedger) RecordAuctionCancellation(ctx context.Context, a entities.Auction) (string, error) {
	return l.append(ctx, l.entry(EntryAuctionCancelled, a), a.ID)
}

func (l *JetStreamLedger) RecordWinnerSelection(ctx context.Context, a entities.Auction, winner entities.Proposal, automatic bool) (string, error) {
	e := l.entry(EntryWinnerSelected, a)
	withProposal(&e, winner)
	e.Automatic = automatic
	return l.append(ctx, e, a.ID)
}

func (l *JetStreamLedger) entry(kind EntryKind, a entities.Auction) Entry {
	return Entry{
		ID:         uuid.NewString(),
		Kind:       kind,
		AuctionID:  a.ID,
		SwapID:     a.SwapID,
		OwnerID:    a.OwnerID,
		Status:     string(a.Status),
		RecordedAt: l.now(),
	}
}

func withProposal(e *Entry, p entities.Proposal) {
	e.ProposalID = p.ID
	e.ProposerID = p.ProposerID
	e.ProposalType = string(p.ProposalType)
	if p.Cash != nil {
		e.CashAmount = p.Cash.Amount.String()
		e.Currency = p.Cash.Currency
	}
}

// append publishes e and returns "<stream>:<sequence>" as the confirmation id.
func (l *JetStreamLedger) append(ctx context.Context, e Entry, dedupeKey string) (string, error) {
	data, err := json.Marshal(e)
	if err != nil {
		return "", err
	}
	subject := subjectPrefix + string(e.Kind)
	msgID := string(e.Kind) + ":" + dedupeKey

	ack, err := l.js.Publish(ctx, subject, data, jetstream.WithMsgID(msgID))
	if err != nil {
		log.Printf("[ledger][jetstream] publish failed subject=%s auction_id=%s err=%v", subject, e.AuctionID, err)
		return "", fmt.Errorf("publish %s: %w", subject, err)
	}
	if ack.Duplicate {
		log.Printf("[ledger][jetstream] duplicate entry ignored msg_id=%s seq=%d", msgID, ack.Sequence)
	}
	return fmt.Sprintf("%s:%d", ack.Stream, ack.Sequence), nil
}
