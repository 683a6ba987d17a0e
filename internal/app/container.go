package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/bushboy/bookingswap-sub016/internal/adapter/persistence/memory"
	"github.com/bushboy/bookingswap-sub016/internal/adapter/persistence/repository"
	"github.com/bushboy/bookingswap-sub016/internal/config"
	"github.com/bushboy/bookingswap-sub016/internal/domain/entities"
	"github.com/bushboy/bookingswap-sub016/internal/infrastructure/alerting"
	"github.com/bushboy/bookingswap-sub016/internal/infrastructure/database"
	"github.com/bushboy/bookingswap-sub016/internal/infrastructure/ledger"
	"github.com/bushboy/bookingswap-sub016/internal/infrastructure/notification"
	"github.com/bushboy/bookingswap-sub016/internal/infrastructure/payments"
	"github.com/bushboy/bookingswap-sub016/internal/usecase"
	"github.com/bushboy/bookingswap-sub016/internal/usecase/interfaces"

	"github.com/nats-io/nats.go"
)

// Container holds the wired engine and the resources it owns.
type Container struct {
	Config    config.Config
	Auctions  interfaces.IAuctionRepository
	Proposals interfaces.IProposalRepository
	Items     interfaces.IItemLookup
	Engine    *usecase.AuctionUseCase
	Alerter   *usecase.RollbackAlerter
	Sweeper   *usecase.DeadlineSweeper

	closers []func() error
}

// Build connects every configured collaborator. Optional collaborators left
// unconfigured fall back to in-process implementations; a configured one that
// cannot be reached is an error.
func Build(ctx context.Context, cfg config.Config) (*Container, error) {
	c := &Container{Config: cfg}

	if err := c.wireStore(ctx); err != nil {
		c.Close()
		return nil, err
	}

	var nc *nats.Conn
	if cfg.NATSURL != "" {
		conn, err := database.ConnectNATS(cfg.NATSURL)
		if err != nil {
			c.Close()
			return nil, err
		}
		nc = conn
		c.closers = append(c.closers, func() error { nc.Close(); return nil })
	}

	ledgerSvc, err := buildLedger(ctx, cfg, nc)
	if err != nil {
		c.Close()
		return nil, err
	}

	notifier, err := c.buildNotifier(ctx)
	if err != nil {
		c.Close()
		return nil, err
	}

	channels, err := c.buildAlertChannels(ctx, nc)
	if err != nil {
		c.Close()
		return nil, err
	}
	c.Alerter = usecase.NewRollbackAlerter(cfg.AlertHistorySize, channels...)

	var opts []usecase.AuctionOption
	directory, err := payments.NewMercadoPagoDirectory(cfg.MercadoPagoAccessToken, cfg.PaymentGatewayMock)
	if err != nil {
		log.Printf("[app][wiring] payment method directory disabled: %v", err)
	} else {
		opts = append(opts, usecase.WithPaymentMethodDirectory(directory))
	}

	c.Engine = usecase.NewAuctionUseCase(c.Auctions, c.Proposals, c.Items, ledgerSvc, notifier, c.Alerter, opts...)
	c.Sweeper = usecase.NewDeadlineSweeper(c.Engine, c.Auctions, c.Items)
	return c, nil
}

func (c *Container) wireStore(ctx context.Context) error {
	switch c.Config.StoreDriver {
	case config.StoreMemory:
		log.Printf("[app][wiring] using in-memory store")
		c.Auctions = memory.NewAuctionMemoryRepository()
		c.Proposals = memory.NewProposalMemoryRepository()
		items, err := loadSeedItems(c.Config.ItemsSeedFile)
		if err != nil {
			return err
		}
		lookup := memory.NewItemMemoryLookup()
		for _, it := range items {
			lookup.Put(it)
		}
		log.Printf("[app][wiring] seeded %d items into memory store", len(items))
		c.Items = lookup
		return nil
	case config.StoreDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, c.Config)
		if err != nil {
			return err
		}
		c.Auctions = repository.NewAuctionDynamoRepository(ddb, c.Config.AuctionsTable)
		c.Proposals = repository.NewProposalDynamoRepository(ddb, c.Config.ProposalsTable)
		c.Items = repository.NewItemDynamoLookup(ddb, c.Config.ItemsTable)
		return nil
	}
	return fmt.Errorf("unsupported store driver %q", c.Config.StoreDriver)
}

// loadSeedItems reads a JSON array of swap items. An empty path seeds nothing.
func loadSeedItems(path string) ([]entities.SwapItem, error) {
	if path == "" {
		return nil, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read items seed file: %w", err)
	}
	var items []entities.SwapItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("parse items seed file %s: %w", path, err)
	}
	for i, it := range items {
		if it.ID == "" {
			return nil, fmt.Errorf("items seed file %s: entry %d has no id", path, i)
		}
	}
	return items, nil
}

func buildLedger(ctx context.Context, cfg config.Config, nc *nats.Conn) (interfaces.ILedgerService, error) {
	if nc == nil {
		log.Printf("[app][wiring] NATS_URL not set, ledger entries stay in process")
		return ledger.NewLocalLedger(), nil
	}
	return ledger.NewJetStreamLedger(ctx, nc, cfg.LedgerStream)
}

func (c *Container) buildNotifier(ctx context.Context) (interfaces.INotificationService, error) {
	if c.Config.RedisAddr == "" {
		log.Printf("[app][wiring] REDIS_ADDR not set, notifications are only logged")
		return notification.LogNotifier{}, nil
	}
	rdb, err := database.ConnectRedis(ctx, c.Config.RedisAddr, c.Config.RedisPassword, c.Config.RedisDB)
	if err != nil {
		return nil, err
	}
	c.closers = append(c.closers, rdb.Close)
	return notification.NewRedisNotifier(rdb), nil
}

func (c *Container) buildAlertChannels(ctx context.Context, nc *nats.Conn) ([]interfaces.IAlertChannel, error) {
	channels := []interfaces.IAlertChannel{alerting.NewLogChannel(nil)}
	if nc != nil {
		channels = append(channels, alerting.NewNATSChannel(nc, c.Config.AlertNATSSubject))
	}
	if c.Config.AlertPostgresDSN != "" {
		db, err := database.ConnectPostgres(ctx, c.Config.AlertPostgresDSN)
		if err != nil {
			return nil, err
		}
		c.closers = append(c.closers, db.Close)
		audit := alerting.NewPostgresAuditChannel(db)
		if err := audit.InitSchema(ctx); err != nil {
			return nil, err
		}
		channels = append(channels, audit)
	}
	return channels, nil
}

// Close releases connections in reverse order of creation.
func (c *Container) Close() error {
	var errs []error
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	c.closers = nil
	return errors.Join(errs...)
}
