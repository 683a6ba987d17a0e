package database

import (
	"fmt"
	"log"
	"time"

	"github.com/nats-io/nats.go"
)

// ConnectNATS connects with unlimited reconnects; ledger publishes wait on
// JetStream acks, so a broker restart surfaces as publish errors, not a dead client.
func ConnectNATS(url string) (*nats.Conn, error) {
	nc, err := nats.Connect(url,
		nats.Name("auction-service"),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				log.Printf("[database][nats] disconnected err=%v", err)
			}
		}),
		nats.ReconnectHandler(func(c *nats.Conn) {
			log.Printf("[database][nats] reconnected url=%s", c.ConnectedUrl())
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}
	log.Printf("[database][nats] connected url=%s", url)
	return nc, nil
}
