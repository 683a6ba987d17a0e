package response

import (
	"time"

	"github.com/bushboy/bookingswap-sub016/internal/domain/entities"
)

type AlertResponse struct {
	ID             string                     `json:"id"`
	TransactionID  string                     `json:"transaction_id"`
	Operation      string                     `json:"operation"`
	AuctionID      string                     `json:"auction_id,omitempty"`
	Severity       string                     `json:"severity"`
	FailedStep     string                     `json:"failed_step"`
	CompletedSteps int                        `json:"completed_steps"`
	TotalSteps     int                        `json:"total_steps"`
	Error          string                     `json:"error"`
	RollbackErrors []string                   `json:"rollback_errors"`
	DeliveryState  string                     `json:"delivery_state"`
	Deliveries     []entities.ChannelDelivery `json:"deliveries"`
	CreatedAt      time.Time                  `json:"created_at"`
}

type AlertListResponse struct {
	Alerts []AlertResponse `json:"alerts"`
	Count  int             `json:"count"`
}

func FromAlerts(alerts []entities.RollbackAlert) AlertListResponse {
	out := make([]AlertResponse, 0, len(alerts))
	for _, a := range alerts {
		out = append(out, AlertResponse{
			ID:             a.ID,
			TransactionID:  a.TransactionID,
			Operation:      a.Operation,
			AuctionID:      a.AuctionID,
			Severity:       a.Severity,
			FailedStep:     a.FailedStep,
			CompletedSteps: a.CompletedSteps,
			TotalSteps:     a.TotalSteps,
			Error:          a.Error,
			RollbackErrors: a.RollbackErrors,
			DeliveryState:  string(a.DeliveryState),
			Deliveries:     a.Deliveries,
			CreatedAt:      a.CreatedAt,
		})
	}
	return AlertListResponse{Alerts: out, Count: len(out)}
}
