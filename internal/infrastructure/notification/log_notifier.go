package notification

import (
	"context"
	"log"

	"github.com/bushboy/bookingswap-sub016/internal/domain/entities"
	"github.com/bushboy/bookingswap-sub016/internal/usecase/interfaces"
)

// LogNotifier only logs notifications. It is used when Redis is not configured.
type LogNotifier struct{}

var _ interfaces.INotificationService = LogNotifier{}

func (LogNotifier) Send(_ context.Context, n entities.Notification) error {
	log.Printf("[notify][log] type=%s recipient=%s auction_id=%s proposal_id=%s", n.Type, n.RecipientID, n.AuctionID, n.ProposalID)
	return nil
}
