package usecase

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"fluxo_propostas/internal/adapter/persistence/repository"
	"fluxo_propostas/internal/domain/entities"
	"fluxo_propostas/internal/infrastructure/database"
	"fluxo_propostas/internal/infrastructure/locking"
)

type notification struct {
	ProposalID string
	Status     entities.ProposalStatus
}

type recordingNotifier struct {
	mu   sync.Mutex
	sent []notification
}

func (n *recordingNotifier) Notify(_ context.Context, snapshot entities.Proposal, status entities.ProposalStatus) (bool, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, notification{ProposalID: snapshot.ID, Status: status})
	return true, nil
}

func (n *recordingNotifier) For(proposalID string) []entities.ProposalStatus {
	n.mu.Lock()
	defer n.mu.Unlock()
	var out []entities.ProposalStatus
	for _, s := range n.sent {
		if s.ProposalID == proposalID {
			out = append(out, s.Status)
		}
	}
	return out
}

// testEnv wires every use case over an in-memory SQLite store.
type testEnv struct {
	proposals   *repository.ProposalGormRepository
	products    *repository.ProductGormRepository
	sellers     *repository.SellerGormRepository
	carriers    *repository.CarrierGormRepository
	boxes       *repository.BoxGormRepository
	history     *repository.HistoryGormRepository
	notifier    *recordingNotifier
	lifecycle   *LifecycleUseCase
	importer    *ImportUseCase
	proposalUC  *ProposalUseCase
	simulation  *SimulationUseCase
	freight     *FreightQuoteUseCase
	shipment    *ShipmentUseCase
	reconciler  *SimulationReconciler
	importOpts  ImportOptions
	catalogFall bool
}

type envOption func(*testEnv)

func withCatalogFallback() envOption {
	return func(e *testEnv) { e.catalogFall = true }
}

func withOverwriteClientFields() envOption {
	return func(e *testEnv) { e.importOpts.OverwriteClientFields = true }
}

func newTestEnv(t *testing.T, opts ...envOption) *testEnv {
	t.Helper()
	db, err := database.OpenSQLiteMemory(t.Name())
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, repository.Migrate(context.Background(), db))

	env := &testEnv{notifier: &recordingNotifier{}}
	for _, opt := range opts {
		opt(env)
	}

	uow := repository.NewGormUnitOfWork(db)
	env.proposals = repository.NewProposalGormRepository(db)
	env.products = repository.NewProductGormRepository(db)
	env.sellers = repository.NewSellerGormRepository(db)
	env.carriers = repository.NewCarrierGormRepository(db)
	env.boxes = repository.NewBoxGormRepository(db)
	env.history = repository.NewHistoryGormRepository(db)
	clients := repository.NewClientGormRepository(db)
	simulations := repository.NewSimulationGormRepository(db)

	env.lifecycle = NewLifecycleUseCase(uow, env.proposals, env.history, env.notifier)
	env.reconciler = NewSimulationReconciler(simulations, env.catalogFall)
	env.importer = NewImportUseCase(uow, env.proposals, clients, env.products, env.sellers,
		env.lifecycle, NewReferenceMatcher(env.proposals), env.reconciler, locking.NewMemoryLocker(), env.importOpts)
	env.proposalUC = NewProposalUseCase(uow, env.proposals, env.history, clients, env.products)
	env.simulation = NewSimulationUseCase(uow, env.proposals, simulations, env.products, env.boxes, env.lifecycle)
	env.freight = NewFreightQuoteUseCase(uow, env.proposals, repository.NewFreightQuoteGormRepository(db), env.carriers, env.lifecycle)
	env.shipment = NewShipmentUseCase(uow, env.proposals, repository.NewShipmentGormRepository(db), env.lifecycle)
	return env
}

func (e *testEnv) historyOf(t *testing.T, proposalID string) []entities.HistoryEntry {
	t.Helper()
	entries, err := e.history.ListByProposalID(context.Background(), proposalID)
	require.NoError(t, err)
	return entries
}

func payloadFor(externalID string, items ...ImportItem) ImportPayload {
	return ImportPayload{
		ExternalID: externalID,
		Client:     ImportClient{Name: "Madeireira Silva", Document: "12.345.678/0001-90"},
		Items:      items,
		SellerID:   1,
	}
}

func skuItem(sku string, qty int) ImportItem {
	return ImportItem{SKU: sku, Name: "Produto " + sku, Quantity: qty}
}
