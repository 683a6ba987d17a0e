package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/bushboy/bookingswap-sub016/internal/domain/validation"
	"github.com/bushboy/bookingswap-sub016/internal/usecase"
	"github.com/bushboy/bookingswap-sub016/pkg"

	"github.com/gin-gonic/gin"
)

const headerUserID = "X-User-ID"

var (
	errMissingCaller  = pkg.NewDomainErrorSimple("MISSING_CALLER", "X-User-ID header is required", http.StatusUnauthorized)
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_PAYLOAD", "Invalid request payload", http.StatusBadRequest)
)

// callerID returns the authenticated user id forwarded by the gateway.
func callerID(c *gin.Context) (string, bool) {
	id := strings.TrimSpace(c.GetHeader(headerUserID))
	return id, id != ""
}

func abortWith(c *gin.Context, appErr *pkg.AppError) {
	c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// mapAuctionError renders engine errors. Validation and state conflicts are
// shown as is; collaborator and rollback failures get a generic message and
// the detail stays in the logs and alert history.
func mapAuctionError(err error) *pkg.AppError {
	var (
		vErr     *validation.Error
		vErrs    validation.Errors
		rollback *usecase.RollbackError
	)

	switch {
	case errors.As(err, &rollback):
		log.Printf("[auction][handler] rollback failure transaction_id=%s alert_id=%s err=%v", rollback.TransactionID, rollback.AlertID, err)
		return pkg.NewDomainError("ROLLBACK_FAILED", "The operation could not be completed. Please contact support with the reference below", err, http.StatusInternalServerError).
			WithDetails(map[string]string{"reference": rollback.TransactionID})
	case errors.As(err, &vErr):
		return pkg.NewDomainError(vErr.Code, vErr.Message, err, http.StatusUnprocessableEntity).
			WithDetails([]*validation.Error{vErr})
	case errors.As(err, &vErrs):
		return pkg.NewDomainError("VALIDATION_FAILED", "Proposal validation failed", err, http.StatusUnprocessableEntity).
			WithDetails([]*validation.Error(vErrs))

	case errors.Is(err, usecase.ErrInvalidReferenceID), errors.Is(err, usecase.ErrInvalidAuctionID),
		errors.Is(err, usecase.ErrInvalidProposalID), errors.Is(err, usecase.ErrInvalidCallerID):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNotAuctionOwner):
		return pkg.NewDomainError("NOT_AUCTION_OWNER", "Only the auction owner can perform this action", err, http.StatusForbidden)

	case errors.Is(err, usecase.ErrAuctionNotFound):
		return pkg.NewDomainError("AUCTION_NOT_FOUND", "Auction not found", err, http.StatusNotFound)
	case errors.Is(err, usecase.ErrProposalNotFound):
		return pkg.NewDomainError("PROPOSAL_NOT_FOUND", "Proposal not found", err, http.StatusNotFound)
	case errors.Is(err, usecase.ErrItemNotFound):
		return pkg.NewDomainError("ITEM_NOT_FOUND", "Booking not found", err, http.StatusNotFound)
	case errors.Is(err, usecase.ErrAuctionExists):
		return pkg.NewDomainError("AUCTION_ALREADY_EXISTS", "An active auction already exists for this swap", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrAlreadyDecided):
		return pkg.NewDomainError("WINNER_ALREADY_SELECTED", "A winning proposal has already been selected", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrAuctionClosed):
		return pkg.NewDomainError("AUCTION_CLOSED", "The auction end date has passed", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidStatus):
		return pkg.NewDomainError("INVALID_AUCTION_STATUS", "The auction is not in a state that allows this action. Refresh and try again", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrProposalNotPending):
		return pkg.NewDomainError("PROPOSAL_NOT_PENDING", "The proposal is no longer pending", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrProposalMismatch):
		return pkg.NewDomainError("PROPOSAL_MISMATCH", "The proposal does not belong to this auction", err, http.StatusUnprocessableEntity)
	}

	if usecase.KindOf(err) == usecase.KindCollaborator {
		log.Printf("[auction][handler] collaborator failure err=%v", err)
		return pkg.NewDomainError("SERVICE_UNAVAILABLE", "The service is temporarily unavailable. Please try again", err, http.StatusServiceUnavailable)
	}
	log.Printf("[auction][handler] unexpected error err=%v", err)
	return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
}
