package ledger

import (
	"context"
	"sync"

	"github.com/nats-io/nats.go/jetstream"
)

const localStreamName = "LOCAL_LEDGER"

// localStream is an in-process stand-in for a JetStream stream, used when no
// NATS server is configured (local development with the memory store).
// Message ids are not deduplicated.
type localStream struct {
	mu   sync.Mutex
	msgs [][]byte
}

func (s *localStream) Publish(_ context.Context, _ string, data []byte, _ ...jetstream.PublishOpt) (*jetstream.PubAck, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.msgs = append(s.msgs, append([]byte(nil), data...))
	return &jetstream.PubAck{Stream: localStreamName, Sequence: uint64(len(s.msgs))}, nil
}

// NewLocalLedger returns a ledger that keeps entries in memory only.
func NewLocalLedger() *JetStreamLedger {
	return newJetStreamLedger(&localStream{})
}
