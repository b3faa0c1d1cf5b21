package usecase

import (
	"context"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fluxo_propostas/internal/domain/entities"
	"fluxo_propostas/internal/usecase/interfaces"
)

func assertDecimal(t *testing.T, want string, got decimal.NullDecimal) {
	t.Helper()
	if assert.True(t, got.Valid, "expected %s, got null", want) {
		assert.True(t, decimal.RequireFromString(want).Equal(got.Decimal), "expected %s, got %s", want, got.Decimal)
	}
}

// simulateManually imports externalID and has an operator enter a manual
// simulation on it, leaving it in PENDING_QUOTE.
func simulateManually(t *testing.T, env *testEnv, externalID string, items ...ImportItem) entities.Proposal {
	t.Helper()
	ctx := context.Background()
	p, err := env.importer.ImportProposal(ctx, payloadFor(externalID, items...))
	require.NoError(t, err)
	require.Equal(t, entities.ProposalStatusPendingSimulation, p.Status)

	p, err = env.simulation.SaveManualSimulation(ctx, p.ID, ManualSimulationInput{
		Description: "1 pallet 120x80x100 cm",
		VolumeM3:    dec("0.96"),
		WeightKg:    dec("35"),
		Complete:    true,
	})
	require.NoError(t, err)
	require.Equal(t, entities.ProposalStatusPendingQuote, p.Status)
	return p
}

func TestImportUseCase_InvalidExternalID(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.importer.ImportProposal(context.Background(), payloadFor("   ", skuItem("A", 1)))
	assert.ErrorIs(t, err, ErrInvalidExternalID)
}

func TestImportUseCase_NewProposalWithoutReferenceNeedsSimulation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	p, err := env.importer.ImportProposal(ctx, ImportPayload{
		ExternalID: "ext-1",
		Items: []ImportItem{
			{SKU: "A", Name: "Porta", Quantity: 0, UnitPrice: dec("50")},
			{Code: "B-01", Name: "Batente", Quantity: 3},
			{Name: "Frete especial", Quantity: 1},
		},
		SellerID: 7,
	})
	require.NoError(t, err)

	assert.Equal(t, entities.ProposalOriginExternal, p.Origin)
	assert.Equal(t, "ext-1", p.ExternalID)
	assert.Equal(t, entities.ProposalStatusPendingSimulation, p.Status)
	assert.Nil(t, p.Simulation)
	assert.False(t, p.WeightTotalKg.Valid)
	assert.False(t, p.FinalVolumeM3().Valid)
	assert.Equal(t, int64(7), p.SellerID)

	require.NotNil(t, p.Client)
	assert.Equal(t, DefaultClientName, p.Client.Name)

	require.Len(t, p.Items, 3)
	assert.Equal(t, 1, p.Items[0].Quantity)
	assert.Equal(t, "A", p.Items[0].SKU())
	assertDecimal(t, "50", p.Items[0].TotalPrice)
	assert.Equal(t, "B-01", p.Items[1].SKU())
	assert.Equal(t, "", p.Items[2].SKU())
	require.NotNil(t, p.Items[2].Product)
	assert.Equal(t, "Frete especial", p.Items[2].Product.Name)

	history := env.historyOf(t, p.ID)
	require.Len(t, history, 1)
	assert.Equal(t, entities.ProposalStatusPendingSimulation, history[0].Status)
	assert.Equal(t, []entities.ProposalStatus{entities.ProposalStatusPendingSimulation}, env.notifier.For(p.ID))
}

func TestImportUseCase_OrderMetaAndSellerResolution(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	seller, err := env.sellers.Create(ctx, entities.Seller{Name: "Ana Souza", Phone: "+55 11 99999-0000"})
	require.NoError(t, err)

	payload := payloadFor("ext-1", ImportItem{SKU: "A", Name: "Porta", Quantity: 2, UnitPrice: dec("50")})
	payload.Note = "entregar pela manha"
	payload.OrderMeta = &ImportOrderMeta{Number: "1234", SellerName: "ana souza", Discount: dec("10")}

	p, err := env.importer.ImportProposal(ctx, payload)
	require.NoError(t, err)

	assert.Equal(t, seller.ID, p.SellerID)
	assert.Equal(t, "Ana Souza", p.ResponsibleSellerName)
	assert.Equal(t, "+55 11 99999-0000", p.ResponsibleSellerPhone)
	assert.Equal(t, "1234", p.OrderNumber)
	assert.Equal(t, "1234", p.DisplayNumber())
	assert.Equal(t, "ana souza", p.ExternalSellerName)
	assert.Equal(t, "bling_vendedor:ana souza; bling_numero:1234; entregar pela manha", p.ImportNote)
	assert.Equal(t, "1234", entities.NoteTagValue(p.ImportNote, entities.NoteTagOrderNumber))
	assert.True(t, decimal.NewFromInt(90).Equal(p.Total()))
	assert.NotEmpty(t, p.ImportPayloadRaw)
}

func TestImportUseCase_UnknownSellerNameFallsBackToSellerID(t *testing.T) {
	env := newTestEnv(t)
	payload := payloadFor("ext-1", skuItem("A", 1))
	payload.SellerID = 3
	payload.OrderMeta = &ImportOrderMeta{SellerName: "Fulano"}

	p, err := env.importer.ImportProposal(context.Background(), payload)
	require.NoError(t, err)
	assert.Equal(t, int64(3), p.SellerID)
	assert.Equal(t, "Fulano", p.ResponsibleSellerName)
}

func TestImportUseCase_ReferenceWithManualSimulationIsCopied(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	p1 := simulateManually(t, env, "ext-1", skuItem("A", 2))

	// Same multiset, split over two lines.
	p2, err := env.importer.ImportProposal(ctx, payloadFor("ext-2", skuItem("A", 1), skuItem("A", 1)))
	require.NoError(t, err)

	assert.NotEqual(t, p1.ID, p2.ID)
	assert.Equal(t, entities.ProposalStatusPendingQuote, p2.Status)
	require.NotNil(t, p2.Simulation)
	assert.True(t, p2.Simulation.IsAutomatic)
	assert.Equal(t, entities.SimulationTypeManual, p2.Simulation.Type)
	assert.Equal(t, p1.Simulation.Description, p2.Simulation.Description)
	assertDecimal(t, "35", p2.WeightTotalKg)
	assertDecimal(t, "0.96", p2.FinalVolumeM3())
	assert.True(t, p2.VolumeIsManual)

	// The reference keeps its own human simulation.
	p1, err = env.proposalUC.GetByID(ctx, p1.ID)
	require.NoError(t, err)
	assert.False(t, p1.Simulation.IsAutomatic)
}

func TestImportUseCase_IdempotentReimport(t *testing.T) {
	t.Run("with reference", func(t *testing.T) {
		env := newTestEnv(t)
		ctx := context.Background()
		simulateManually(t, env, "ext-1", skuItem("A", 2))

		first, err := env.importer.ImportProposal(ctx, payloadFor("ext-2", skuItem("A", 2)))
		require.NoError(t, err)
		second, err := env.importer.ImportProposal(ctx, payloadFor("ext-2", skuItem("A", 2)))
		require.NoError(t, err)

		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, first.Status, second.Status)
		assert.Equal(t, first.Simulation.Description, second.Simulation.Description)
		assert.Equal(t, first.Simulation.IsAutomatic, second.Simulation.IsAutomatic)
		assert.True(t, first.WeightTotalKg.Decimal.Equal(second.WeightTotalKg.Decimal))
		assert.True(t, first.FinalVolumeM3().Decimal.Equal(second.FinalVolumeM3().Decimal))
		assert.Len(t, env.historyOf(t, second.ID), 2)
	})

	t.Run("without reference", func(t *testing.T) {
		env := newTestEnv(t)
		ctx := context.Background()

		first, err := env.importer.ImportProposal(ctx, payloadFor("ext-1", skuItem("Z", 4)))
		require.NoError(t, err)
		second, err := env.importer.ImportProposal(ctx, payloadFor("ext-1", skuItem("Z", 4)))
		require.NoError(t, err)

		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, entities.ProposalStatusPendingSimulation, second.Status)
		assert.Nil(t, second.Simulation)
		assert.Len(t, second.Items, 1)
		assert.Len(t, env.historyOf(t, second.ID), 2)
	})
}

func TestImportUseCase_UnchangedItemsKeepManualSimulation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	p1 := simulateManually(t, env, "ext-1", skuItem("A", 2), skuItem("B", 1))
	before := env.historyOf(t, p1.ID)

	// Another proposal with the same items and an automatic copy must not be picked.
	_, err := env.importer.ImportProposal(ctx, payloadFor("ext-2", skuItem("B", 1), skuItem("A", 2)))
	require.NoError(t, err)

	again, err := env.importer.ImportProposal(ctx, payloadFor("ext-1", skuItem("B", 1), skuItem("A", 1), skuItem("A", 1)))
	require.NoError(t, err)

	assert.Equal(t, entities.ProposalStatusPendingQuote, again.Status)
	require.NotNil(t, again.Simulation)
	assert.False(t, again.Simulation.IsAutomatic)
	assert.Equal(t, p1.Simulation.ID, again.Simulation.ID)
	assertDecimal(t, "0.96", again.FinalVolumeM3())

	after := env.historyOf(t, p1.ID)
	require.Len(t, after, len(before)+1)
	last := after[len(after)-1]
	assert.Equal(t, entities.ProposalStatusPendingQuote, last.Status)
	assert.Contains(t, last.Note, "manual simulation preserved")

	notified := env.notifier.For(p1.ID)
	assert.Equal(t, entities.ProposalStatusPendingQuote, notified[len(notified)-1])
}

func TestImportUseCase_ChangedItemsWithoutReferenceRevert(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	p1 := simulateManually(t, env, "ext-1", skuItem("A", 2))

	p1, err := env.importer.ImportProposal(ctx, payloadFor("ext-1", skuItem("A", 3)))
	require.NoError(t, err)

	assert.Equal(t, entities.ProposalStatusPendingSimulation, p1.Status)
	assert.Nil(t, p1.Simulation)
	assert.False(t, p1.WeightTotalKg.Valid)
	assert.False(t, p1.VolumeManualM3.Valid)
	assert.False(t, p1.VolumeIsManual)
}

func TestImportUseCase_TerminalProposalIsResynced(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	p, err := env.importer.ImportProposal(ctx, payloadFor("ext-1", skuItem("A", 2)))
	require.NoError(t, err)
	_, err = env.lifecycle.Cancel(ctx, p.ID, "")
	require.NoError(t, err)

	p, err = env.importer.ImportProposal(ctx, payloadFor("ext-1", skuItem("A", 5)))
	require.NoError(t, err)
	assert.Equal(t, entities.ProposalStatusPendingSimulation, p.Status)

	history := env.historyOf(t, p.ID)
	require.Len(t, history, 3)
	assert.Contains(t, history[2].Note, string(entities.ProposalStatusCancelled))
}

func TestImportUseCase_CatalogFallback(t *testing.T) {
	env := newTestEnv(t, withCatalogFallback())
	ctx := context.Background()
	_, err := env.products.UpsertBySKU(ctx, entities.Product{
		SKU: "A", Name: "Porta",
		LengthCm: dec("100"), WidthCm: dec("50"), HeightCm: dec("20"), UnitWeightKg: dec("2.5"),
	})
	require.NoError(t, err)

	p, err := env.importer.ImportProposal(ctx, payloadFor("ext-1", skuItem("A", 2)))
	require.NoError(t, err)

	assert.Equal(t, entities.ProposalStatusPendingQuote, p.Status)
	require.NotNil(t, p.Simulation)
	assert.True(t, p.Simulation.IsAutomatic)
	assert.Equal(t, entities.SimulationTypeVolumetric, p.Simulation.Type)
	assertDecimal(t, "0.2", p.VolumeAutomaticM3)
	assertDecimal(t, "5", p.WeightTotalKg)

	// The import never erases known dimensions.
	prod, err := env.products.GetBySKU(ctx, "A")
	require.NoError(t, err)
	assert.True(t, prod.HasCompleteMeasurements())
}

func TestImportUseCase_ClientEnrichment(t *testing.T) {
	t.Run("fills empty fields only", func(t *testing.T) {
		env := newTestEnv(t)
		ctx := context.Background()

		first := payloadFor("ext-1", skuItem("A", 1))
		first.Client.Phone = "11 1111-1111"
		p1, err := env.importer.ImportProposal(ctx, first)
		require.NoError(t, err)

		second := payloadFor("ext-2", skuItem("B", 1))
		second.Client.Phone = "22 2222-2222"
		second.Client.Email = "compras@silva.com.br"
		p2, err := env.importer.ImportProposal(ctx, second)
		require.NoError(t, err)

		assert.Equal(t, p1.ClientID, p2.ClientID)
		assert.Equal(t, "11 1111-1111", p2.Client.Phone)
		assert.Equal(t, "compras@silva.com.br", p2.Client.Email)
	})

	t.Run("overwrite mode", func(t *testing.T) {
		env := newTestEnv(t, withOverwriteClientFields())
		ctx := context.Background()

		first := payloadFor("ext-1", skuItem("A", 1))
		first.Client.Phone = "11 1111-1111"
		_, err := env.importer.ImportProposal(ctx, first)
		require.NoError(t, err)

		second := payloadFor("ext-2", skuItem("B", 1))
		second.Client.Phone = "22 2222-2222"
		p2, err := env.importer.ImportProposal(ctx, second)
		require.NoError(t, err)
		assert.Equal(t, "22 2222-2222", p2.Client.Phone)
	})
}

func TestImportUseCase_SkulessProductsAreReused(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	item := ImportItem{Name: "Frete especial", Quantity: 1}

	p1, err := env.importer.ImportProposal(ctx, payloadFor("ext-1", item))
	require.NoError(t, err)
	p2, err := env.importer.ImportProposal(ctx, payloadFor("ext-2", item))
	require.NoError(t, err)

	assert.Equal(t, p1.Items[0].ProductID, p2.Items[0].ProductID)
	// SKU-less items never match: both stay waiting for a simulation.
	assert.Equal(t, entities.ProposalStatusPendingSimulation, p2.Status)
}

func TestImportUseCase_ConcurrentImportsOfSameOrder(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	errs := make([]error, 4)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = env.importer.ImportProposal(ctx, payloadFor("ext-1", skuItem("A", 1)))
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		require.NoError(t, err)
	}
	all, err := env.proposalUC.List(ctx, interfaces.ProposalFilter{Origin: entities.ProposalOriginExternal})
	require.NoError(t, err)
	assert.Len(t, all, 1)
}
