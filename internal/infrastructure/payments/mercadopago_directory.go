package payments

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/bushboy/bookingswap-sub016/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/paymentmethod"
)

const DefaultDirectoryTTL = time.Hour

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoDirectoryNotConfigured = errors.New("mercado pago directory not configured")

// methodLister is the part of paymentmethod.Client the directory needs.
type methodLister interface {
	List(ctx context.Context) ([]paymentmethod.Response, error)
}

// MercadoPagoDirectory answers whether a payment method id is one Mercado Pago
// currently offers. The provider list is cached for ttl.
type MercadoPagoDirectory struct {
	client   methodLister
	mockMode bool
	ttl      time.Duration
	now      func() time.Time

	mu        sync.Mutex
	methods   map[string]bool
	fetchedAt time.Time
}

var _ interfaces.IPaymentMethodDirectory = (*MercadoPagoDirectory)(nil)

func NewMercadoPagoDirectory(accessToken string, mockMode bool) (*MercadoPagoDirectory, error) {
	if mockMode {
		log.Printf("[payment][directory] mock mode enabled")
		return &MercadoPagoDirectory{mockMode: true}, nil
	}

	if accessToken == "" {
		log.Printf("[payment][directory] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[payment][directory] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[payment][directory] Mercado Pago client initialized")

	return newMercadoPagoDirectory(paymentmethod.NewClient(cfg), DefaultDirectoryTTL), nil
}

func newMercadoPagoDirectory(client methodLister, ttl time.Duration) *MercadoPagoDirectory {
	return &MercadoPagoDirectory{
		client: client,
		ttl:    ttl,
		now:    time.Now,
	}
}

func (d *MercadoPagoDirectory) IsSupported(ctx context.Context, paymentMethodID string) (bool, error) {
	id := strings.ToLower(strings.TrimSpace(paymentMethodID))
	if d != nil && d.mockMode {
		return id != "", nil
	}
	if d == nil || d.client == nil {
		return false, ErrMercadoPagoDirectoryNotConfigured
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.methods == nil || d.now().Sub(d.fetchedAt) > d.ttl {
		list, err := d.client.List(ctx)
		if err != nil {
			log.Printf("[payment][directory] sdk list failed err=%v", err)
			return false, err
		}
		methods := make(map[string]bool, len(list))
		for _, m := range list {
			if m.Status != "" && m.Status != "active" {
				continue
			}
			methods[strings.ToLower(m.ID)] = true
		}
		d.methods = methods
		d.fetchedAt = d.now()
		log.Printf("[payment][directory] refreshed payment methods count=%d", len(methods))
	}
	return d.methods[id], nil
}
