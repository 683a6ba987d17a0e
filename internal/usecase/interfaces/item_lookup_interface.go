package interfaces

import (
	"context"

	"github.com/bushboy/bookingswap-sub016/internal/domain/entities"
)

// IItemLookup reads bookings owned by the booking service.
// A zero SwapItem means the booking does not exist.
type IItemLookup interface {
	GetItemByID(ctx context.Context, id string) (entities.SwapItem, error)
}
