package interfaces

import (
	"context"

	"github.com/bushboy/bookingswap-sub016/internal/domain/entities"
)

// INotificationService delivers user-facing notifications. Delivery is
// fire-and-forget: callers log errors and move on.
type INotificationService interface {
	Send(ctx context.Context, n entities.Notification) error
}
