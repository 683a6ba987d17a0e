package alerting

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"log"
	"strings"
	"testing"
	"time"

	"github.com/bushboy/bookingswap-sub016/internal/domain/entities"

	"github.com/peterldowns/testy/assert"
	"github.com/peterldowns/testy/check"
)

func sampleAlert() entities.RollbackAlert {
	return entities.RollbackAlert{
		ID:             "alert-1",
		TransactionID:  "tx-1",
		Operation:      "select_winner",
		AuctionID:      "a1",
		Severity:       "critical",
		FailedStep:     "accept_proposal:p1",
		CompletedSteps: 1,
		TotalSteps:     3,
		Error:          "storage unavailable",
		RollbackErrors: []string{"set_winning_proposal: timeout"},
		Deliveries:     []entities.ChannelDelivery{{Channel: "log", Success: true}},
		CreatedAt:      time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestLogChannel(t *testing.T) {
	var buf bytes.Buffer
	c := NewLogChannel(log.New(&buf, "", 0))

	assert.NoError(t, c.Send(context.Background(), sampleAlert()))
	out := buf.String()
	check.True(t, strings.Contains(out, "[alert][critical]"))
	check.True(t, strings.Contains(out, "failed_step=accept_proposal:p1"))
	check.True(t, strings.Contains(out, "set_winning_proposal: timeout"))
	check.Equal(t, "log", c.Name())
}

type fakeConn struct {
	subject string
	data    []byte
	err     error
}

func (f *fakeConn) Publish(subject string, data []byte) error {
	f.subject, f.data = subject, data
	return f.err
}

func TestNATSChannel(t *testing.T) {
	t.Run("publishes the alert without deliveries", func(t *testing.T) {
		conn := &fakeConn{}
		c := newNATSChannel(conn, "")

		assert.NoError(t, c.Send(context.Background(), sampleAlert()))
		check.Equal(t, DefaultAlertSubject, conn.subject)

		var got entities.RollbackAlert
		assert.NoError(t, json.Unmarshal(conn.data, &got))
		check.Equal(t, "alert-1", got.ID)
		check.Equal(t, 0, len(got.Deliveries))
	})

	t.Run("publish error", func(t *testing.T) {
		c := newNATSChannel(&fakeConn{err: errors.New("nats: connection closed")}, "ops.alerts")
		check.Error(t, c.Send(context.Background(), sampleAlert()))
	})
}

type execCall struct {
	query string
	args  []interface{}
}

type fakeExecer struct {
	calls []execCall
	err   error
}

func (f *fakeExecer) ExecContext(_ context.Context, query string, args ...interface{}) (sql.Result, error) {
	f.calls = append(f.calls, execCall{query: query, args: args})
	if f.err != nil {
		return nil, f.err
	}
	return driverResult(1), nil
}

type driverResult int64

func (r driverResult) LastInsertId() (int64, error) { return 0, nil }
func (r driverResult) RowsAffected() (int64, error) { return int64(r), nil }

func TestPostgresAuditChannel(t *testing.T) {
	ctx := context.Background()

	t.Run("schema", func(t *testing.T) {
		db := &fakeExecer{}
		c := &PostgresAuditChannel{db: db}
		assert.NoError(t, c.InitSchema(ctx))
		check.True(t, strings.Contains(db.calls[0].query, "CREATE TABLE IF NOT EXISTS rollback_alerts"))
	})

	t.Run("insert is idempotent on id", func(t *testing.T) {
		db := &fakeExecer{}
		c := &PostgresAuditChannel{db: db}
		assert.NoError(t, c.Send(ctx, sampleAlert()))

		call := db.calls[0]
		check.True(t, strings.Contains(call.query, "ON CONFLICT (id) DO NOTHING"))
		check.Equal(t, 11, len(call.args))
		check.Equal(t, "alert-1", call.args[0])
		check.Equal(t, "accept_proposal:p1", call.args[5])
	})

	t.Run("exec failure", func(t *testing.T) {
		c := &PostgresAuditChannel{db: &fakeExecer{err: errors.New("relation does not exist")}}
		check.Error(t, c.Send(ctx, sampleAlert()))
	})
}
