package interfaces

import (
	"context"

	"github.com/bushboy/bookingswap-sub016/internal/domain/entities"
)

// IAlertChannel delivers critical rollback alerts to operators.
type IAlertChannel interface {
	Name() string
	Send(ctx context.Context, alert entities.RollbackAlert) error
}
