package usecase

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/bushboy/bookingswap-sub016/internal/domain/entities"
	"github.com/bushboy/bookingswap-sub016/internal/usecase/interfaces"

	"github.com/google/uuid"
)

const (
	DefaultAlertHistorySize = 100

	alertSeverityCritical = "critical"
)

// RollbackFailure describes a transition that failed partway and could not be undone.
type RollbackFailure struct {
	TransactionID  string
	Operation      string
	AuctionID      string
	FailedStep     string
	CompletedSteps int
	TotalSteps     int
	Cause          error
	RollbackErrs   []error
}

// AlertFilter narrows History. Zero values mean "any"; Limit <= 0 returns everything retained.
type AlertFilter struct {
	TransactionID string
	State         entities.AlertDeliveryState
	Limit         int
}

// IRollbackAlerter raises and retains critical rollback alerts.
type IRollbackAlerter interface {
	ReportRollbackFailure(ctx context.Context, f RollbackFailure) entities.RollbackAlert
	History(filter AlertFilter) []entities.RollbackAlert
}

// RollbackAlerter fans rollback alerts out to every configured channel and
// keeps a bounded in-memory history of what was sent and how it went.
type RollbackAlerter struct {
	channels   []interfaces.IAlertChannel
	maxHistory int
	now        func() time.Time

	mu      sync.Mutex
	history []entities.RollbackAlert
}

var _ IRollbackAlerter = (*RollbackAlerter)(nil)

func NewRollbackAlerter(maxHistory int, channels ...interfaces.IAlertChannel) *RollbackAlerter {
	if maxHistory <= 0 {
		maxHistory = DefaultAlertHistorySize
	}
	return &RollbackAlerter{
		channels:   channels,
		maxHistory: maxHistory,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// ReportRollbackFailure builds the alert, sends it through every channel and
// records it. A failing channel never stops delivery through the others.
func (a *RollbackAlerter) ReportRollbackFailure(ctx context.Context, f RollbackFailure) entities.RollbackAlert {
	alert := entities.RollbackAlert{
		ID:             uuid.NewString(),
		TransactionID:  f.TransactionID,
		Operation:      f.Operation,
		AuctionID:      f.AuctionID,
		Severity:       alertSeverityCritical,
		FailedStep:     f.FailedStep,
		CompletedSteps: f.CompletedSteps,
		TotalSteps:     f.TotalSteps,
		RollbackErrors: make([]string, 0, len(f.RollbackErrs)),
		Deliveries:     make([]entities.ChannelDelivery, 0, len(a.channels)),
		CreatedAt:      a.now(),
	}
	if f.Cause != nil {
		alert.Error = f.Cause.Error()
	}
	for _, err := range f.RollbackErrs {
		alert.RollbackErrors = append(alert.RollbackErrors, err.Error())
	}

	log.Printf("[alert][rollback] CRITICAL transaction_id=%s operation=%s auction_id=%s failed_step=%s completed_steps=%d/%d err=%v rollback_errs=%v",
		alert.TransactionID, alert.Operation, alert.AuctionID, alert.FailedStep, alert.CompletedSteps, alert.TotalSteps, alert.Error, alert.RollbackErrors)

	delivered := 0
	for _, ch := range a.channels {
		d := entities.ChannelDelivery{Channel: ch.Name(), AttemptedAt: a.now()}
		if err := ch.Send(ctx, alert); err != nil {
			d.Error = err.Error()
			log.Printf("[alert][rollback] channel delivery failed alert_id=%s channel=%s err=%v", alert.ID, d.Channel, err)
		} else {
			d.Success = true
			delivered++
		}
		alert.Deliveries = append(alert.Deliveries, d)
	}

	switch {
	case len(a.channels) == 0:
		alert.DeliveryState = entities.AlertUndelivered
		log.Printf("[alert][rollback] no alert channels configured alert_id=%s; alert retained for audit only", alert.ID)
	case delivered == len(a.channels):
		alert.DeliveryState = entities.AlertDelivered
	case delivered == 0:
		alert.DeliveryState = entities.AlertFailed
	default:
		alert.DeliveryState = entities.AlertPartiallyDelivered
	}

	a.record(alert)
	return alert
}

func (a *RollbackAlerter) record(alert entities.RollbackAlert) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.history = append(a.history, alert)
	if over := len(a.history) - a.maxHistory; over > 0 {
		a.history = append([]entities.RollbackAlert(nil), a.history[over:]...)
	}
}

// History returns retained alerts, newest first.
func (a *RollbackAlerter) History(filter AlertFilter) []entities.RollbackAlert {
	a.mu.Lock()
	defer a.mu.Unlock()

	out := make([]entities.RollbackAlert, 0, len(a.history))
	for i := len(a.history) - 1; i >= 0; i-- {
		alert := a.history[i]
		if filter.TransactionID != "" && alert.TransactionID != filter.TransactionID {
			continue
		}
		if filter.State != "" && alert.DeliveryState != filter.State {
			continue
		}
		out = append(out, alert)
		if filter.Limit > 0 && len(out) == filter.Limit {
			break
		}
	}
	return out
}
