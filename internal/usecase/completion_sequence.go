package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
)

// completionStep is one unit of a multi-entity transition together with the
// action that reverses it. undo may be nil for steps with nothing to reverse.
type completionStep struct {
	name string
	do   func(ctx context.Context) error
	undo func(ctx context.Context) error
}

// completionSequence runs steps in order. When a step fails the completed
// steps are undone in reverse order; if any undo fails the failure is escalated
// through the alerter and a RollbackError is returned.
type completionSequence struct {
	id        string
	operation string
	auctionID string
	steps     []completionStep
	alerter   IRollbackAlerter
}

func newCompletionSequence(operation, auctionID string, alerter IRollbackAlerter) *completionSequence {
	return &completionSequence{
		id:        uuid.NewString(),
		operation: operation,
		auctionID: auctionID,
		alerter:   alerter,
	}
}

func (s *completionSequence) add(name string, do, undo func(ctx context.Context) error) {
	s.steps = append(s.steps, completionStep{name: name, do: do, undo: undo})
}

func (s *completionSequence) run(ctx context.Context) error {
	for i, step := range s.steps {
		err := step.do(ctx)
		if err == nil {
			continue
		}
		log.Printf("[auction][completion] step failed transaction_id=%s operation=%s auction_id=%s step=%s completed=%d err=%v",
			s.id, s.operation, s.auctionID, step.name, i, err)

		rollbackErrs := s.rollback(ctx, i)
		if len(rollbackErrs) == 0 {
			log.Printf("[auction][completion] rolled back transaction_id=%s auction_id=%s", s.id, s.auctionID)
			return err
		}

		rbErr := &RollbackError{
			TransactionID:  s.id,
			FailedStep:     step.name,
			CompletedSteps: i,
			Cause:          err,
			RollbackErrs:   rollbackErrs,
		}
		if s.alerter != nil {
			alert := s.alerter.ReportRollbackFailure(ctx, RollbackFailure{
				TransactionID:  s.id,
				Operation:      s.operation,
				AuctionID:      s.auctionID,
				FailedStep:     step.name,
				CompletedSteps: i,
				TotalSteps:     len(s.steps),
				Cause:          err,
				RollbackErrs:   rollbackErrs,
			})
			rbErr.AlertID = alert.ID
		} else {
			log.Printf("[auction][completion] CRITICAL rollback failed without alerter transaction_id=%s err=%v", s.id, errors.Join(rollbackErrs...))
		}
		return rbErr
	}
	return nil
}

// rollback undoes steps [0, completed) in reverse order and collects every failure.
func (s *completionSequence) rollback(ctx context.Context, completed int) []error {
	var errs []error
	for i := completed - 1; i >= 0; i-- {
		step := s.steps[i]
		if step.undo == nil {
			continue
		}
		if err := step.undo(ctx); err != nil {
			log.Printf("[auction][completion] undo failed transaction_id=%s step=%s err=%v", s.id, step.name, err)
			errs = append(errs, fmt.Errorf("undo %s: %w", step.name, err))
		}
	}
	return errs
}
