package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"fluxo_propostas/internal/domain/entities"
	"fluxo_propostas/internal/infrastructure/database"
	"fluxo_propostas/internal/usecase/interfaces"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.OpenSQLiteMemory(t.Name())
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, Migrate(context.Background(), db))
	return db
}

func nd(s string) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.RequireFromString(s))
}

func seedProposal(t *testing.T, db *gorm.DB, p entities.Proposal, skus map[string]int) entities.Proposal {
	t.Helper()
	ctx := context.Background()
	products := NewProductGormRepository(db)
	proposals := NewProposalGormRepository(db)

	if p.Origin == "" {
		p.Origin = entities.ProposalOriginExternal
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	created, err := proposals.Create(ctx, p)
	require.NoError(t, err)

	var items []entities.ProposalItem
	for sku, qty := range skus {
		prod, err := products.UpsertBySKU(ctx, entities.Product{SKU: sku, Name: "Produto " + sku})
		require.NoError(t, err)
		items = append(items, entities.ProposalItem{ProductID: prod.ID, Quantity: qty})
	}
	_, err = proposals.ReplaceItems(ctx, created.ID, items)
	require.NoError(t, err)
	return created
}

func TestProposalGormRepository_UniqueExternalID(t *testing.T) {
	db := openTestDB(t)
	repo := NewProposalGormRepository(db)
	ctx := context.Background()

	_, err := repo.Create(ctx, entities.Proposal{Origin: entities.ProposalOriginExternal, ExternalID: "ext-1", Status: entities.ProposalStatusPendingSimulation})
	require.NoError(t, err)
	_, err = repo.Create(ctx, entities.Proposal{Origin: entities.ProposalOriginExternal, ExternalID: "ext-1", Status: entities.ProposalStatusPendingSimulation})
	assert.ErrorIs(t, err, interfaces.ErrDuplicateKey)

	// Manual proposals carry no external id and never collide.
	for i := 0; i < 2; i++ {
		_, err = repo.Create(ctx, entities.Proposal{Origin: entities.ProposalOriginManual, Status: entities.ProposalStatusPendingSimulation})
		require.NoError(t, err)
	}
}

func TestProposalGormRepository_NotFoundIsZeroValue(t *testing.T) {
	db := openTestDB(t)
	repo := NewProposalGormRepository(db)
	ctx := context.Background()

	got, err := repo.GetByID(ctx, "missing")
	require.NoError(t, err)
	assert.Empty(t, got.ID)

	got, err = repo.GetByExternalID(ctx, entities.ProposalOriginExternal, "missing")
	require.NoError(t, err)
	assert.Empty(t, got.ID)

	got, err = repo.Update(ctx, entities.Proposal{ID: "missing", Status: entities.ProposalStatusPendingQuote})
	require.NoError(t, err)
	assert.Empty(t, got.ID)
}

func TestProposalGormRepository_UpdateWritesNulls(t *testing.T) {
	db := openTestDB(t)
	repo := NewProposalGormRepository(db)
	ctx := context.Background()

	p, err := repo.Create(ctx, entities.Proposal{
		Origin: entities.ProposalOriginExternal, ExternalID: "ext-1", Status: entities.ProposalStatusPendingQuote,
		WeightTotalKg: nd("12.5"), VolumeManualM3: nd("1.2"), VolumeIsManual: true,
	})
	require.NoError(t, err)

	p.ClearMeasurements()
	p.Status = entities.ProposalStatusPendingSimulation
	_, err = repo.Update(ctx, p)
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.ProposalStatusPendingSimulation, got.Status)
	assert.False(t, got.WeightTotalKg.Valid)
	assert.False(t, got.VolumeManualM3.Valid)
	assert.False(t, got.VolumeIsManual)
	assert.Equal(t, "ext-1", got.ExternalID)
}

func TestProposalGormRepository_ReplaceItemsKeepsOrder(t *testing.T) {
	db := openTestDB(t)
	repo := NewProposalGormRepository(db)
	products := NewProductGormRepository(db)
	ctx := context.Background()

	p, err := repo.Create(ctx, entities.Proposal{Origin: entities.ProposalOriginManual, Status: entities.ProposalStatusPendingSimulation})
	require.NoError(t, err)

	var items []entities.ProposalItem
	for _, sku := range []string{"C", "A", "B"} {
		prod, err := products.UpsertBySKU(ctx, entities.Product{SKU: sku, Name: sku})
		require.NoError(t, err)
		items = append(items, entities.ProposalItem{ProductID: prod.ID, Quantity: 1, UnitPrice: nd("9.90")})
	}
	_, err = repo.ReplaceItems(ctx, p.ID, items)
	require.NoError(t, err)
	_, err = repo.ReplaceItems(ctx, p.ID, items[1:])
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, got.Items, 2)
	assert.Equal(t, "A", got.Items[0].SKU())
	assert.Equal(t, "B", got.Items[1].SKU())
	assert.True(t, decimal.RequireFromString("9.9").Equal(got.Items[0].UnitPrice.Decimal))
}

func TestProposalGormRepository_FindCandidatesWithSimulation(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	repo := NewProposalGormRepository(db)
	sims := NewSimulationGormRepository(db)

	target := seedProposal(t, db, entities.Proposal{ExternalID: "target", Status: entities.ProposalStatusPendingSimulation}, map[string]int{"A": 2})
	withSim := seedProposal(t, db, entities.Proposal{ExternalID: "with-sim", Status: entities.ProposalStatusPendingQuote}, map[string]int{"A": 2})
	initial := seedProposal(t, db, entities.Proposal{ExternalID: "initial", Status: entities.ProposalStatusPendingSimulation}, map[string]int{"A": 2})
	seedProposal(t, db, entities.Proposal{ExternalID: "no-sim", Status: entities.ProposalStatusPendingQuote}, map[string]int{"A": 2})
	otherSKU := seedProposal(t, db, entities.Proposal{ExternalID: "other", Status: entities.ProposalStatusCompleted}, map[string]int{"Z": 2})

	for _, id := range []string{target.ID, withSim.ID, initial.ID, otherSKU.ID} {
		_, err := sims.Replace(ctx, entities.Simulation{ProposalID: id, Type: entities.SimulationTypeManual, Description: "x"})
		require.NoError(t, err)
	}

	got, err := repo.FindCandidatesWithSimulation(ctx, target.ID, []string{"A"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, withSim.ID, got[0].ID)
	require.NotNil(t, got[0].Simulation)
	require.Len(t, got[0].Items, 1)
	assert.Equal(t, "A", got[0].Items[0].SKU())

	got, err = repo.FindCandidatesWithSimulation(ctx, target.ID, nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestProposalGormRepository_ListFilters(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	repo := NewProposalGormRepository(db)

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	seedProposal(t, db, entities.Proposal{ExternalID: "1", Status: entities.ProposalStatusPendingQuote, CreatedAt: base}, nil)
	seedProposal(t, db, entities.Proposal{ExternalID: "2", Status: entities.ProposalStatusPendingSimulation, CreatedAt: base.Add(time.Hour)}, nil)
	seedProposal(t, db, entities.Proposal{Origin: entities.ProposalOriginManual, Status: entities.ProposalStatusPendingQuote, CreatedAt: base.Add(2 * time.Hour)}, nil)

	all, err := repo.List(ctx, interfaces.ProposalFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, entities.ProposalOriginManual, all[0].Origin)

	quotes, err := repo.List(ctx, interfaces.ProposalFilter{Status: entities.ProposalStatusPendingQuote, Origin: entities.ProposalOriginExternal})
	require.NoError(t, err)
	require.Len(t, quotes, 1)
	assert.Equal(t, "1", quotes[0].ExternalID)
}

func TestProductGormRepository_UpsertNeverClearsMeasurements(t *testing.T) {
	db := openTestDB(t)
	repo := NewProductGormRepository(db)
	ctx := context.Background()

	first, err := repo.UpsertBySKU(ctx, entities.Product{SKU: "A", Name: "Porta", LengthCm: nd("210"), WidthCm: nd("80"), HeightCm: nd("4"), UnitWeightKg: nd("18")})
	require.NoError(t, err)

	second, err := repo.UpsertBySKU(ctx, entities.Product{SKU: "A", Name: "Porta lisa"})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "Porta lisa", second.Name)
	assert.True(t, second.HasCompleteMeasurements())

	third, err := repo.UpsertBySKU(ctx, entities.Product{SKU: "A", Name: "Porta lisa", WidthCm: nd("90")})
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(90).Equal(third.WidthCm.Decimal))

	stored, err := repo.GetBySKU(ctx, "A")
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(210).Equal(stored.LengthCm.Decimal))
	assert.True(t, decimal.NewFromInt(90).Equal(stored.WidthCm.Decimal))
}

func TestProductGormRepository_SkulessProducts(t *testing.T) {
	db := openTestDB(t)
	repo := NewProductGormRepository(db)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		_, err := repo.Create(ctx, entities.Product{Name: fmt.Sprintf("Item %d", i)})
		require.NoError(t, err)
	}
	got, err := repo.FindUnskuedByName(ctx, "Item 1")
	require.NoError(t, err)
	assert.NotEmpty(t, got.ID)
	assert.Empty(t, got.SKU)

	got, err = repo.FindUnskuedByName(ctx, "Item 9")
	require.NoError(t, err)
	assert.Empty(t, got.ID)
}

func TestClientGormRepository_FindByDocumentOrName(t *testing.T) {
	db := openTestDB(t)
	repo := NewClientGormRepository(db)
	ctx := context.Background()

	withDoc, err := repo.Create(ctx, entities.Client{Name: "Silva", Document: "123"})
	require.NoError(t, err)
	noDoc, err := repo.Create(ctx, entities.Client{Name: "Souza"})
	require.NoError(t, err)

	got, err := repo.FindByDocumentOrName(ctx, "123", "Outro nome")
	require.NoError(t, err)
	assert.Equal(t, withDoc.ID, got.ID)

	got, err = repo.FindByDocumentOrName(ctx, "", "Souza")
	require.NoError(t, err)
	assert.Equal(t, noDoc.ID, got.ID)

	// A new document for a name known without one adopts that client.
	got, err = repo.FindByDocumentOrName(ctx, "999", "Souza")
	require.NoError(t, err)
	assert.Equal(t, noDoc.ID, got.ID)

	got, err = repo.FindByDocumentOrName(ctx, "555", "Silva")
	require.NoError(t, err)
	assert.Empty(t, got.ID)
}

func TestHistoryGormRepository_AppendOnlyOrdered(t *testing.T) {
	db := openTestDB(t)
	repo := NewHistoryGormRepository(db)
	ctx := context.Background()

	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	statuses := []entities.ProposalStatus{
		entities.ProposalStatusPendingSimulation,
		entities.ProposalStatusPendingQuote,
		entities.ProposalStatusPendingQuote,
	}
	for _, s := range statuses {
		_, err := repo.Append(ctx, entities.HistoryEntry{ProposalID: "p-1", Status: s, CreatedAt: at})
		require.NoError(t, err)
	}
	_, err := repo.Append(ctx, entities.HistoryEntry{ProposalID: "p-2", Status: entities.ProposalStatusCancelled, CreatedAt: at})
	require.NoError(t, err)

	got, err := repo.ListByProposalID(ctx, "p-1")
	require.NoError(t, err)
	require.Len(t, got, 3)
	for i, s := range statuses {
		assert.Equal(t, s, got[i].Status)
	}
}

func TestFreightQuoteGormRepository_UpsertAndSelect(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	repo := NewFreightQuoteGormRepository(db)
	carriers := NewCarrierGormRepository(db)

	c1, err := carriers.EnsureByName(ctx, "Rapido Sul")
	require.NoError(t, err)
	again, err := carriers.EnsureByName(ctx, "Rapido Sul")
	require.NoError(t, err)
	assert.Equal(t, c1.ID, again.ID)
	c2, err := carriers.EnsureByName(ctx, "Economica")
	require.NoError(t, err)

	q1, err := repo.Upsert(ctx, entities.FreightQuote{ProposalID: "p-1", CarrierID: c1.ID, Price: decimal.NewFromInt(100)})
	require.NoError(t, err)
	q2, err := repo.Upsert(ctx, entities.FreightQuote{ProposalID: "p-1", CarrierID: c2.ID, Price: decimal.NewFromInt(80)})
	require.NoError(t, err)

	_, err = repo.Select(ctx, "p-1", q1.ID)
	require.NoError(t, err)
	updated, err := repo.Upsert(ctx, entities.FreightQuote{ProposalID: "p-1", CarrierID: c1.ID, Price: decimal.NewFromInt(95)})
	require.NoError(t, err)
	assert.Equal(t, q1.ID, updated.ID)
	assert.True(t, updated.Selected)

	sel, err := repo.Select(ctx, "p-1", q2.ID)
	require.NoError(t, err)
	assert.True(t, sel.Selected)

	none, err := repo.Select(ctx, "p-2", q2.ID)
	require.NoError(t, err)
	assert.Empty(t, none.ID)

	quotes, err := repo.ListByProposalID(ctx, "p-1")
	require.NoError(t, err)
	require.Len(t, quotes, 2)
	selected := 0
	for _, q := range quotes {
		if q.Selected {
			selected++
			assert.Equal(t, q2.ID, q.ID)
		}
		if q.ID == q1.ID {
			assert.True(t, decimal.NewFromInt(95).Equal(q.Price))
		}
	}
	assert.Equal(t, 1, selected)
}

func TestGormUnitOfWork_RollsBack(t *testing.T) {
	db := openTestDB(t)
	uow := NewGormUnitOfWork(db)
	repo := NewProposalGormRepository(db)
	ctx := context.Background()

	var id string
	err := uow.WithinTransaction(ctx, func(ctx context.Context) error {
		p, err := repo.Create(ctx, entities.Proposal{Origin: entities.ProposalOriginManual, Status: entities.ProposalStatusPendingSimulation})
		if err != nil {
			return err
		}
		id = p.ID
		// Nested units join the outer transaction.
		return uow.WithinTransaction(ctx, func(ctx context.Context) error {
			return errors.New("abort")
		})
	})
	assert.EqualError(t, err, "abort")

	got, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Empty(t, got.ID)
}
