package usecase

import (
	"errors"
	"fmt"

	"github.com/bushboy/bookingswap-sub016/internal/domain/validation"
)

var (
	ErrInvalidReferenceID = errors.New("invalid reference id")
	ErrInvalidAuctionID   = errors.New("invalid auction id")
	ErrInvalidProposalID  = errors.New("invalid proposal id")
	ErrInvalidCallerID    = errors.New("invalid caller id")
	ErrItemNotFound       = errors.New("referenced item not found")
	ErrNotAuctionOwner    = errors.New("caller is not the auction owner")
	ErrAuctionNotFound    = errors.New("auction not found")
	ErrProposalNotFound   = errors.New("proposal not found")
	ErrAuctionExists      = errors.New("auction already exists for swap")
	ErrInvalidStatus      = errors.New("auction status does not allow this operation")
	ErrAuctionClosed      = errors.New("auction end date has passed")
	ErrAlreadyDecided     = errors.New("auction winner already decided")
	ErrProposalNotPending = errors.New("proposal is not pending")
	ErrProposalMismatch   = errors.New("proposal does not belong to auction")
)

// ErrorKind is the closed set of failure classes surfaced by the engine.
type ErrorKind string

const (
	KindValidation    ErrorKind = "validation"
	KindStateConflict ErrorKind = "state_conflict"
	KindCollaborator  ErrorKind = "collaborator_failure"
	KindRollback      ErrorKind = "rollback_failure"
	KindUnknown       ErrorKind = "unknown"
)

// StateConflictError means the caller's view of the auction was stale.
// It wraps one of the state sentinels so errors.Is keeps working.
type StateConflictError struct {
	AuctionID string
	Status    string
	Err       error
}

func (e *StateConflictError) Error() string {
	if e.Status != "" {
		return fmt.Sprintf("auction %s (%s): %v", e.AuctionID, e.Status, e.Err)
	}
	return fmt.Sprintf("auction %s: %v", e.AuctionID, e.Err)
}

func (e *StateConflictError) Unwrap() error { return e.Err }

func conflict(auctionID, status string, err error) error {
	return &StateConflictError{AuctionID: auctionID, Status: status, Err: err}
}

// CollaboratorError wraps a failure of storage, ledger or another dependency.
type CollaboratorError struct {
	Collaborator string
	Operation    string
	Err          error
}

func (e *CollaboratorError) Error() string {
	return fmt.Sprintf("%s %s failed: %v", e.Collaborator, e.Operation, e.Err)
}

func (e *CollaboratorError) Unwrap() error { return e.Err }

func collaboratorFailure(collaborator, operation string, err error) error {
	return &CollaboratorError{Collaborator: collaborator, Operation: operation, Err: err}
}

// RollbackError is returned when a multi-step transition failed and at least
// one of its undo steps failed too. An alert has been raised for it.
type RollbackError struct {
	TransactionID  string
	FailedStep     string
	CompletedSteps int
	AlertID        string
	Cause          error
	RollbackErrs   []error
}

func (e *RollbackError) Error() string {
	return fmt.Sprintf("transaction %s failed at step %q after %d completed steps and could not be rolled back: %v",
		e.TransactionID, e.FailedStep, e.CompletedSteps, e.Cause)
}

func (e *RollbackError) Unwrap() error { return e.Cause }

// KindOf classifies err into one of the engine error kinds.
func KindOf(err error) ErrorKind {
	if err == nil {
		return ""
	}
	var (
		vErr     *validation.Error
		vErrs    validation.Errors
		stateErr *StateConflictError
		collab   *CollaboratorError
		rollback *RollbackError
	)
	switch {
	case errors.As(err, &rollback):
		return KindRollback
	case errors.As(err, &vErr), errors.As(err, &vErrs):
		return KindValidation
	case errors.As(err, &stateErr):
		return KindStateConflict
	case errors.As(err, &collab):
		return KindCollaborator
	case errors.Is(err, ErrInvalidReferenceID), errors.Is(err, ErrInvalidAuctionID),
		errors.Is(err, ErrInvalidProposalID), errors.Is(err, ErrInvalidCallerID),
		errors.Is(err, ErrProposalMismatch):
		return KindValidation
	case errors.Is(err, ErrAuctionNotFound), errors.Is(err, ErrProposalNotFound), errors.Is(err, ErrItemNotFound):
		return KindStateConflict
	}
	return KindUnknown
}

// IsBenign reports whether err only says the work was already done or is no
// longer applicable. Sweeper callers treat these as no-ops.
func IsBenign(err error) bool {
	return KindOf(err) == KindStateConflict
}
