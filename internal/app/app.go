// Package app wires configuration, storage, infrastructure and use cases. Both the
// HTTP server and the operator CLI build their dependencies through it.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"fluxo_propostas/internal/adapter/persistence/repository"
	"fluxo_propostas/internal/config"
	"fluxo_propostas/internal/domain/entities"
	"fluxo_propostas/internal/infrastructure/database"
	"fluxo_propostas/internal/infrastructure/locking"
	"fluxo_propostas/internal/infrastructure/notification"
	"fluxo_propostas/internal/usecase"
	"fluxo_propostas/internal/usecase/interfaces"
)

type Container struct {
	Config config.Config
	DB     *gorm.DB

	Proposals *repository.ProposalGormRepository
	Carriers  *repository.CarrierGormRepository
	Boxes     *repository.BoxGormRepository
	Sellers   *repository.SellerGormRepository

	Lifecycle   *usecase.LifecycleUseCase
	Importer    *usecase.ImportUseCase
	ProposalUC  *usecase.ProposalUseCase
	Simulations *usecase.SimulationUseCase
	Freight     *usecase.FreightQuoteUseCase
	Shipments   *usecase.ShipmentUseCase

	async *notification.AsyncNotifier
}

// New opens the configured database and builds the container on top of it.
func New(ctx context.Context, cfg config.Config) (*Container, error) {
	db, err := database.OpenGorm(cfg.Database.Driver, cfg.Database.DSN)
	if err != nil {
		return nil, err
	}
	c, err := NewWithDB(ctx, cfg, db)
	if err != nil {
		if sqlDB, dbErr := db.DB(); dbErr == nil {
			_ = sqlDB.Close()
		}
		return nil, err
	}
	return c, nil
}

// NewWithDB builds the container over an already opened database.
func NewWithDB(ctx context.Context, cfg config.Config, db *gorm.DB) (*Container, error) {
	locker, err := newLocker(ctx, cfg.Lock)
	if err != nil {
		return nil, err
	}

	c := &Container{Config: cfg, DB: db}
	notifier := c.newNotifier(cfg.Notification)

	uow := repository.NewGormUnitOfWork(db)
	c.Proposals = repository.NewProposalGormRepository(db)
	c.Carriers = repository.NewCarrierGormRepository(db)
	c.Boxes = repository.NewBoxGormRepository(db)
	c.Sellers = repository.NewSellerGormRepository(db)
	clients := repository.NewClientGormRepository(db)
	products := repository.NewProductGormRepository(db)
	simulations := repository.NewSimulationGormRepository(db)
	history := repository.NewHistoryGormRepository(db)

	c.Lifecycle = usecase.NewLifecycleUseCase(uow, c.Proposals, history, notifier)
	reconciler := usecase.NewSimulationReconciler(simulations, cfg.Import.CatalogFallback)
	c.Importer = usecase.NewImportUseCase(uow, c.Proposals, clients, products, c.Sellers,
		c.Lifecycle, usecase.NewReferenceMatcher(c.Proposals), reconciler, locker,
		usecase.ImportOptions{
			OverwriteClientFields: cfg.Import.OverwriteClientFields,
			LockTimeout:           cfg.Import.LockTimeout,
		})
	c.ProposalUC = usecase.NewProposalUseCase(uow, c.Proposals, history, clients, products)
	c.Simulations = usecase.NewSimulationUseCase(uow, c.Proposals, simulations, products, c.Boxes, c.Lifecycle)
	c.Freight = usecase.NewFreightQuoteUseCase(uow, c.Proposals, repository.NewFreightQuoteGormRepository(db), c.Carriers, c.Lifecycle)
	c.Shipments = usecase.NewShipmentUseCase(uow, c.Proposals, repository.NewShipmentGormRepository(db), c.Lifecycle)
	return c, nil
}

func newLocker(ctx context.Context, cfg config.LockConfig) (interfaces.IImportLocker, error) {
	if cfg.Backend != "dynamodb" {
		return locking.NewMemoryLocker(), nil
	}
	ddb, err := database.ConnectDynamoDB(ctx, database.DynamoDBOptions{Region: cfg.Region, Endpoint: cfg.Endpoint})
	if err != nil {
		return nil, fmt.Errorf("failed to connect lock table: %w", err)
	}
	slog.InfoContext(ctx, "[app] using dynamodb import locks", "table", cfg.Table)
	return locking.NewDynamoLocker(ddb, cfg.Table, cfg.TTL), nil
}

func (c *Container) newNotifier(cfg config.NotificationConfig) interfaces.INotifier {
	if strings.TrimSpace(cfg.WebhookURL) == "" {
		slog.Info("[app] notification webhook not configured")
		return notification.NopNotifier{}
	}
	c.async = notification.NewAsyncNotifier(
		notification.NewWebhookNotifier(cfg.WebhookURL, cfg.Timeout, cfg.Recipients),
		cfg.Timeout,
	)
	return c.async
}

func (c *Container) Migrate(ctx context.Context) error {
	return repository.Migrate(ctx, c.DB)
}

// Seed creates the configured carriers, boxes and sellers that do not exist yet.
func (c *Container) Seed(ctx context.Context) error {
	for _, name := range c.Config.Seed.Carriers {
		if strings.TrimSpace(name) == "" {
			continue
		}
		if _, err := c.Carriers.EnsureByName(ctx, strings.TrimSpace(name)); err != nil {
			return fmt.Errorf("seed carrier %q: %w", name, err)
		}
	}

	boxes, err := c.Boxes.List(ctx)
	if err != nil {
		return err
	}
	known := make(map[string]bool, len(boxes))
	for _, b := range boxes {
		known[b.Name] = true
	}
	for _, b := range c.Config.Seed.Boxes {
		if b.Name == "" || known[b.Name] {
			continue
		}
		_, err := c.Boxes.Create(ctx, entities.Box{
			Name:     b.Name,
			LengthCm: decimal.NewFromFloat(b.LengthCm),
			WidthCm:  decimal.NewFromFloat(b.WidthCm),
			HeightCm: decimal.NewFromFloat(b.HeightCm),
		})
		if err != nil {
			return fmt.Errorf("seed box %q: %w", b.Name, err)
		}
		known[b.Name] = true
	}

	for _, s := range c.Config.Seed.Sellers {
		existing, err := c.Sellers.GetByID(ctx, s.ID)
		if err != nil {
			return err
		}
		if existing.ID != 0 {
			continue
		}
		if _, err := c.Sellers.Create(ctx, entities.Seller{ID: s.ID, Name: s.Name, Phone: s.Phone}); err != nil {
			return fmt.Errorf("seed seller %d: %w", s.ID, err)
		}
	}
	return nil
}

// Close waits for queued notifications and releases the database.
func (c *Container) Close(ctx context.Context) error {
	if c.async != nil {
		if err := c.async.Wait(ctx); err != nil {
			slog.WarnContext(ctx, "[app] pending notifications abandoned", "err", err)
		}
	}
	sqlDB, err := c.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
