package interfaces

import "context"

// IPaymentMethodDirectory tells whether a payment method id is known to the
// payment provider. Payment capture itself is handled outside this service.
type IPaymentMethodDirectory interface {
	IsSupported(ctx context.Context, paymentMethodID string) (bool, error)
}
