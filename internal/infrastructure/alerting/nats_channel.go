package alerting

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/bushboy/bookingswap-sub016/internal/domain/entities"
	"github.com/bushboy/bookingswap-sub016/internal/usecase/interfaces"

	"github.com/nats-io/nats.go"
)

const DefaultAlertSubject = "auction.alerts.rollback"

type natsPublisher interface {
	Publish(subject string, data []byte) error
}

// NATSChannel publishes alerts on a core NATS subject for on-call tooling.
type NATSChannel struct {
	conn    natsPublisher
	subject string
}

var _ interfaces.IAlertChannel = (*NATSChannel)(nil)

func NewNATSChannel(nc *nats.Conn, subject string) *NATSChannel {
	return newNATSChannel(nc, subject)
}

func newNATSChannel(conn natsPublisher, subject string) *NATSChannel {
	if subject == "" {
		subject = DefaultAlertSubject
	}
	return &NATSChannel{conn: conn, subject: subject}
}

func (c *NATSChannel) Name() string { return "nats" }

func (c *NATSChannel) Send(_ context.Context, a entities.RollbackAlert) error {
	if c.conn == nil {
		return errors.New("nats connection not configured")
	}
	// deliveries are still being collected while channels run
	a.Deliveries = nil
	a.DeliveryState = ""

	data, err := json.Marshal(a)
	if err != nil {
		return fmt.Errorf("failed to marshal alert: %w", err)
	}
	if err := c.conn.Publish(c.subject, data); err != nil {
		return fmt.Errorf("failed to publish alert: %w", err)
	}
	return nil
}
