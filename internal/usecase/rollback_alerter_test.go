package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/bushboy/bookingswap-sub016/internal/domain/entities"
	mock_interfaces "github.com/bushboy/bookingswap-sub016/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func failure(tx string) RollbackFailure {
	return RollbackFailure{
		TransactionID:  tx,
		Operation:      "select_winner",
		AuctionID:      "a1",
		FailedStep:     "reject_proposal:p2",
		CompletedSteps: 2,
		TotalSteps:     3,
		Cause:          errors.New("db"),
		RollbackErrs:   []error{errors.New("undo set_winning_proposal: store down")},
	}
}

func TestRollbackAlerter_ReportRollbackFailure(t *testing.T) {
	ctx := context.Background()

	t.Run("no channels is undelivered but retained", func(t *testing.T) {
		a := NewRollbackAlerter(0)
		alert := a.ReportRollbackFailure(ctx, failure("tx-1"))
		if alert.DeliveryState != entities.AlertUndelivered {
			t.Fatalf("expected undelivered, got %s", alert.DeliveryState)
		}
		if alert.Severity != "critical" || alert.Error != "db" || len(alert.RollbackErrors) != 1 {
			t.Fatalf("unexpected alert %+v", alert)
		}
		if got := a.History(AlertFilter{}); len(got) != 1 {
			t.Fatalf("expected alert retained, got %d", len(got))
		}
	})

	t.Run("every channel is attempted when all fail", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		first := mock_interfaces.NewMockIAlertChannel(ctrl)
		second := mock_interfaces.NewMockIAlertChannel(ctrl)
		first.EXPECT().Name().Return("nats").AnyTimes()
		first.EXPECT().Send(gomock.Any(), gomock.Any()).Return(errors.New("no responders"))
		second.EXPECT().Name().Return("postgres").AnyTimes()
		second.EXPECT().Send(gomock.Any(), gomock.Any()).Return(errors.New("connection refused"))

		a := NewRollbackAlerter(10, first, second)
		alert := a.ReportRollbackFailure(ctx, failure("tx-1"))
		if alert.DeliveryState != entities.AlertFailed {
			t.Fatalf("expected failed, got %s", alert.DeliveryState)
		}
		if len(alert.Deliveries) != 2 || alert.Deliveries[1].Channel != "postgres" || alert.Deliveries[1].Error == "" {
			t.Fatalf("unexpected deliveries %+v", alert.Deliveries)
		}
	})

	t.Run("all channels succeed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		ch := mock_interfaces.NewMockIAlertChannel(ctrl)
		ch.EXPECT().Name().Return("log").AnyTimes()
		ch.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil)

		alert := NewRollbackAlerter(10, ch).ReportRollbackFailure(ctx, failure("tx-1"))
		if alert.DeliveryState != entities.AlertDelivered || !alert.Deliveries[0].Success {
			t.Fatalf("expected delivered, got %+v", alert)
		}
	})
}

func TestRollbackAlerter_History(t *testing.T) {
	ctx := context.Background()
	a := NewRollbackAlerter(3)
	for i := 1; i <= 5; i++ {
		a.ReportRollbackFailure(ctx, failure(fmt.Sprintf("tx-%d", i)))
	}

	t.Run("bounded and newest first", func(t *testing.T) {
		got := a.History(AlertFilter{})
		if len(got) != 3 {
			t.Fatalf("expected 3 retained, got %d", len(got))
		}
		if got[0].TransactionID != "tx-5" || got[2].TransactionID != "tx-3" {
			t.Fatalf("unexpected order %s..%s", got[0].TransactionID, got[2].TransactionID)
		}
	})

	t.Run("filters", func(t *testing.T) {
		if got := a.History(AlertFilter{TransactionID: "tx-4"}); len(got) != 1 {
			t.Fatalf("expected one match, got %d", len(got))
		}
		if got := a.History(AlertFilter{TransactionID: "tx-1"}); len(got) != 0 {
			t.Fatalf("evicted alert still returned")
		}
		if got := a.History(AlertFilter{Limit: 2}); len(got) != 2 || got[0].TransactionID != "tx-5" {
			t.Fatalf("unexpected limited history %+v", got)
		}
		if got := a.History(AlertFilter{State: entities.AlertDelivered}); len(got) != 0 {
			t.Fatalf("expected no delivered alerts, got %d", len(got))
		}
	})
}
