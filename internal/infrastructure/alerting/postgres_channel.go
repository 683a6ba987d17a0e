package alerting

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/bushboy/bookingswap-sub016/internal/domain/entities"
	"github.com/bushboy/bookingswap-sub016/internal/usecase/interfaces"

	"github.com/lib/pq"
)

type execer interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

// PostgresAuditChannel keeps a durable audit trail of rollback alerts.
type PostgresAuditChannel struct {
	db execer
}

var _ interfaces.IAlertChannel = (*PostgresAuditChannel)(nil)

func NewPostgresAuditChannel(db *sql.DB) *PostgresAuditChannel {
	return &PostgresAuditChannel{db: db}
}

const schema = `
	CREATE TABLE IF NOT EXISTS rollback_alerts (
		id VARCHAR(255) PRIMARY KEY,
		transaction_id VARCHAR(255) NOT NULL,
		operation VARCHAR(64) NOT NULL,
		auction_id VARCHAR(255),
		severity VARCHAR(32) NOT NULL,
		failed_step VARCHAR(255) NOT NULL,
		completed_steps INTEGER NOT NULL,
		total_steps INTEGER NOT NULL,
		error TEXT NOT NULL,
		rollback_errors TEXT[] NOT NULL DEFAULT '{}',
		created_at TIMESTAMP NOT NULL,
		recorded_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_rollback_alerts_auction_id ON rollback_alerts(auction_id);
	CREATE INDEX IF NOT EXISTS idx_rollback_alerts_created_at ON rollback_alerts(created_at);
`

// InitSchema creates the audit table if it does not exist.
func (c *PostgresAuditChannel) InitSchema(ctx context.Context) error {
	if _, err := c.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	log.Println("[alerting][postgres] schema initialized")
	return nil
}

func (c *PostgresAuditChannel) Name() string { return "postgres" }

func (c *PostgresAuditChannel) Send(ctx context.Context, a entities.RollbackAlert) error {
	query := `
		INSERT INTO rollback_alerts (id, transaction_id, operation, auction_id, severity, failed_step,
			completed_steps, total_steps, error, rollback_errors, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (id) DO NOTHING
	`
	rollbackErrors := a.RollbackErrors
	if rollbackErrors == nil {
		rollbackErrors = []string{}
	}
	_, err := c.db.ExecContext(ctx, query,
		a.ID, a.TransactionID, a.Operation, a.AuctionID, a.Severity, a.FailedStep,
		a.CompletedSteps, a.TotalSteps, a.Error, pq.Array(rollbackErrors), a.CreatedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert alert: %w", err)
	}
	return nil
}
