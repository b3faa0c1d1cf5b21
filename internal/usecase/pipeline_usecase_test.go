package usecase

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fluxo_propostas/internal/domain/entities"
	"fluxo_propostas/internal/usecase/interfaces"
)

func productIDOf(t *testing.T, p entities.Proposal, sku string) string {
	t.Helper()
	for _, it := range p.Items {
		if it.SKU() == sku {
			return it.ProductID
		}
	}
	t.Fatalf("sku %s not in proposal %s", sku, p.ID)
	return ""
}

func TestSimulationUseCase_SimulateByMeasurements(t *testing.T) {
	t.Run("every product measured", func(t *testing.T) {
		env := newTestEnv(t)
		ctx := context.Background()
		p, err := env.importer.ImportProposal(ctx, payloadFor("ext-1", skuItem("A", 2)))
		require.NoError(t, err)

		p, err = env.simulation.SimulateByMeasurements(ctx, p.ID, []ProductMeasurement{{
			ProductID: productIDOf(t, p, "A"),
			LengthCm:  dec("100"), WidthCm: dec("50"), HeightCm: dec("20"), UnitWeightKg: dec("2.5"),
		}}, decimal.NullDecimal{})
		require.NoError(t, err)

		assert.Equal(t, entities.ProposalStatusPendingQuote, p.Status)
		require.NotNil(t, p.Simulation)
		assert.False(t, p.Simulation.IsAutomatic)
		assert.Equal(t, entities.SimulationTypeVolumetric, p.Simulation.Type)
		assertDecimal(t, "0.2", p.VolumeAutomaticM3)
		assertDecimal(t, "5", p.WeightTotalKg)

		prod, err := env.products.GetBySKU(ctx, "A")
		require.NoError(t, err)
		assert.True(t, prod.HasCompleteMeasurements())
	})

	t.Run("products still missing", func(t *testing.T) {
		env := newTestEnv(t)
		ctx := context.Background()
		p, err := env.importer.ImportProposal(ctx, payloadFor("ext-1", skuItem("A", 1), skuItem("B", 1)))
		require.NoError(t, err)

		p, err = env.simulation.SimulateByMeasurements(ctx, p.ID, []ProductMeasurement{{
			ProductID: productIDOf(t, p, "A"),
			LengthCm:  dec("10"), WidthCm: dec("10"), HeightCm: dec("10"),
		}}, dec("0.5"))
		require.NoError(t, err)

		assert.Equal(t, entities.ProposalStatusPendingSimulation, p.Status)
		assertDecimal(t, "0.001", p.VolumeAutomaticM3)
		assertDecimal(t, "0.5", p.FinalVolumeM3())
	})

	t.Run("product outside the proposal", func(t *testing.T) {
		env := newTestEnv(t)
		ctx := context.Background()
		p, err := env.importer.ImportProposal(ctx, payloadFor("ext-1", skuItem("A", 1)))
		require.NoError(t, err)

		_, err = env.simulation.SimulateByMeasurements(ctx, p.ID, []ProductMeasurement{{ProductID: "nope"}}, decimal.NullDecimal{})
		assert.ErrorIs(t, err, ErrProductNotInProposal)
	})
}

func TestSimulationUseCase_SimulateByVolumes(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	box, err := env.boxes.Create(ctx, entities.Box{
		Name: "Caixa P", LengthCm: decimal.NewFromInt(40), WidthCm: decimal.NewFromInt(30), HeightCm: decimal.NewFromInt(20),
	})
	require.NoError(t, err)
	p, err := env.importer.ImportProposal(ctx, payloadFor("ext-1", skuItem("A", 1)))
	require.NoError(t, err)

	_, err = env.simulation.SimulateByVolumes(ctx, p.ID, VolumesInput{Boxes: []BoxQuantity{{BoxID: "missing", Quantity: 1}}})
	assert.ErrorIs(t, err, ErrBoxNotFound)

	_, err = env.simulation.SimulateByVolumes(ctx, p.ID, VolumesInput{Volumes: []FreeVolume{{Quantity: 1}}})
	assert.ErrorIs(t, err, ErrNoUsableVolume)

	p, err = env.simulation.SimulateByVolumes(ctx, p.ID, VolumesInput{
		Boxes:    []BoxQuantity{{BoxID: box.ID, Quantity: 2}},
		Volumes:  []FreeVolume{{Quantity: 1, LengthCm: decimal.NewFromInt(100), WidthCm: decimal.NewFromInt(100), HeightCm: decimal.NewFromInt(100)}},
		WeightKg: dec("80"),
		Complete: true,
	})
	require.NoError(t, err)
	assert.Equal(t, entities.ProposalStatusPendingQuote, p.Status)
	assertDecimal(t, "1.048", p.FinalVolumeM3())
	assertDecimal(t, "80", p.WeightTotalKg)
	assert.Contains(t, p.Simulation.Description, "2x Caixa P")
}

func TestSimulationUseCase_AdjustMeasurements(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	p, err := env.importer.ImportProposal(ctx, payloadFor("ext-1", skuItem("A", 1)))
	require.NoError(t, err)

	_, err = env.simulation.AdjustMeasurements(ctx, p.ID, decimal.NullDecimal{}, decimal.NullDecimal{})
	assert.ErrorIs(t, err, ErrInvalidSimulation)

	p, err = env.simulation.AdjustMeasurements(ctx, p.ID, dec("1.5"), dec("12.3"))
	require.NoError(t, err)
	assert.True(t, p.VolumeIsManual)
	assertDecimal(t, "1.5", p.FinalVolumeM3())
	assertDecimal(t, "12.3", p.WeightTotalKg)
	assert.Equal(t, entities.ProposalStatusPendingSimulation, p.Status)
}

func TestSimulationUseCase_RecalculateRefreshesAutomaticSimulation(t *testing.T) {
	env := newTestEnv(t, withCatalogFallback())
	ctx := context.Background()
	_, err := env.products.UpsertBySKU(ctx, entities.Product{
		SKU: "A", Name: "Porta", LengthCm: dec("100"), WidthCm: dec("50"), HeightCm: dec("20"), UnitWeightKg: dec("2.5"),
	})
	require.NoError(t, err)
	p, err := env.importer.ImportProposal(ctx, payloadFor("ext-1", skuItem("A", 2)))
	require.NoError(t, err)
	before := p.Simulation.Description

	prod, err := env.products.GetBySKU(ctx, "A")
	require.NoError(t, err)
	prod.WidthCm = dec("100")
	_, err = env.products.Update(ctx, prod)
	require.NoError(t, err)

	p, err = env.simulation.Recalculate(ctx, p.ID)
	require.NoError(t, err)
	assertDecimal(t, "0.4", p.VolumeAutomaticM3)
	assert.True(t, p.Simulation.IsAutomatic)
	assert.NotEqual(t, before, p.Simulation.Description)
	assert.Equal(t, entities.ProposalStatusPendingQuote, p.Status)
}

func TestSimulationUseCase_TerminalProposalsAreRejected(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	p, err := env.importer.ImportProposal(ctx, payloadFor("ext-1", skuItem("A", 1)))
	require.NoError(t, err)
	_, err = env.lifecycle.Cancel(ctx, p.ID, "")
	require.NoError(t, err)

	_, err = env.simulation.SaveManualSimulation(ctx, p.ID, ManualSimulationInput{Description: "1 caixa"})
	assert.ErrorIs(t, err, ErrInvalidTransition)
	_, err = env.simulation.Recalculate(ctx, p.ID)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestFreightAndShipment_FullPipeline(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	fast, err := env.carriers.EnsureByName(ctx, "Rapido Sul")
	require.NoError(t, err)
	cheap, err := env.carriers.EnsureByName(ctx, "Economica")
	require.NoError(t, err)

	p, err := env.importer.ImportProposal(ctx, payloadFor("ext-1", skuItem("A", 2)))
	require.NoError(t, err)

	quotes := []QuoteInput{
		{CarrierID: fast.ID, QuoteNumber: "Q-1", Price: decimal.RequireFromString("350.00"), LeadTimeDays: 2},
		{CarrierID: cheap.ID, QuoteNumber: "Q-2", Price: decimal.RequireFromString("210.50"), LeadTimeDays: 6},
	}
	_, err = env.freight.RegisterQuotes(ctx, p.ID, quotes, false)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	_, err = env.shipment.RegisterShipment(ctx, p.ID, ShipmentInput{Summary: "Proposta enviada"})
	assert.ErrorIs(t, err, ErrInvalidTransition)

	_, err = env.simulation.SaveManualSimulation(ctx, p.ID, ManualSimulationInput{
		Description: "1 pallet", VolumeM3: dec("0.96"), WeightKg: dec("35"), Complete: true,
	})
	require.NoError(t, err)

	_, err = env.freight.RegisterQuotes(ctx, p.ID, []QuoteInput{{CarrierID: "unknown", Price: decimal.NewFromInt(1)}}, false)
	assert.ErrorIs(t, err, ErrCarrierNotFound)

	p, err = env.freight.RegisterQuotes(ctx, p.ID, quotes, false)
	require.NoError(t, err)
	require.Len(t, p.Quotes, 2)
	assert.Equal(t, entities.ProposalStatusPendingQuote, p.Status)

	// A carrier quoted again keeps one row.
	quotes[1].Price = decimal.RequireFromString("199.90")
	p, err = env.freight.RegisterQuotes(ctx, p.ID, quotes[1:], true)
	require.NoError(t, err)
	require.Len(t, p.Quotes, 2)
	assert.Equal(t, entities.ProposalStatusPendingShipment, p.Status)

	_, err = env.freight.SelectQuote(ctx, p.ID, "missing")
	assert.ErrorIs(t, err, ErrQuoteNotFound)

	var cheapQuote entities.FreightQuote
	for _, q := range p.Quotes {
		if q.CarrierID == cheap.ID {
			cheapQuote = q
		}
	}
	require.NotEmpty(t, cheapQuote.ID)
	assert.True(t, decimal.RequireFromString("199.90").Equal(cheapQuote.Price))

	p, err = env.freight.SelectQuote(ctx, p.ID, cheapQuote.ID)
	require.NoError(t, err)
	selected := p.SelectedQuote()
	require.NotNil(t, selected)
	assert.Equal(t, cheapQuote.ID, selected.ID)

	p, err = env.shipment.RegisterShipment(ctx, p.ID, ShipmentInput{Summary: "Proposta enviada", Link: "https://wa.me/5511999990000"})
	require.NoError(t, err)
	assert.Equal(t, entities.ProposalStatusCompleted, p.Status)
	require.NotNil(t, p.Shipment)
	assert.True(t, p.Shipment.Sent)
	assert.Equal(t, "whatsapp", p.Shipment.Channel)
	assert.Contains(t, p.Shipment.Summary, "https://wa.me/5511999990000")

	var statuses []entities.ProposalStatus
	for _, h := range env.historyOf(t, p.ID) {
		statuses = append(statuses, h.Status)
	}
	assert.Equal(t, []entities.ProposalStatus{
		entities.ProposalStatusPendingSimulation,
		entities.ProposalStatusPendingQuote,
		entities.ProposalStatusPendingShipment,
		entities.ProposalStatusCompleted,
	}, statuses)
	assert.Equal(t, statuses, env.notifier.For(p.ID))
}

func TestFreightQuoteUseCase_RequiresVolume(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	carrier, err := env.carriers.EnsureByName(ctx, "Rapido Sul")
	require.NoError(t, err)
	p, err := env.importer.ImportProposal(ctx, payloadFor("ext-1", skuItem("A", 1)))
	require.NoError(t, err)

	// Text without measurements leaves the proposal without a final volume.
	_, err = env.simulation.SaveManualSimulation(ctx, p.ID, ManualSimulationInput{Description: "ver com o cliente", Complete: true})
	require.NoError(t, err)

	_, err = env.freight.RegisterQuotes(ctx, p.ID, []QuoteInput{{CarrierID: carrier.ID, Price: decimal.NewFromInt(10)}}, true)
	assert.ErrorIs(t, err, ErrNoUsableVolume)
}

func TestProposalUseCase(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.proposalUC.CreateManual(ctx, CreateProposalInput{Client: ImportClient{Name: "Cliente"}})
	assert.ErrorIs(t, err, ErrInvalidProposalInput)

	manual, err := env.proposalUC.CreateManual(ctx, CreateProposalInput{
		Client:   ImportClient{Name: "Construtora Alfa"},
		SellerID: 2,
		Items:    []ImportItem{skuItem("A", 2)},
		Note:     "balcao",
	})
	require.NoError(t, err)
	assert.Equal(t, entities.ProposalOriginManual, manual.Origin)
	assert.Empty(t, manual.ExternalID)
	assert.Equal(t, entities.ProposalStatusPendingSimulation, manual.Status)
	assert.Len(t, manual.Items, 1)
	assert.Len(t, env.historyOf(t, manual.ID), 1)

	// Several manual proposals share the empty external id without conflicts.
	_, err = env.proposalUC.CreateManual(ctx, CreateProposalInput{Client: ImportClient{Name: "Construtora Alfa"}, Items: []ImportItem{skuItem("B", 1)}})
	require.NoError(t, err)

	_, err = env.importer.ImportProposal(ctx, payloadFor("ext-1", skuItem("C", 1)))
	require.NoError(t, err)

	all, err := env.proposalUC.List(ctx, interfaces.ProposalFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	manuals, err := env.proposalUC.List(ctx, interfaces.ProposalFilter{Origin: entities.ProposalOriginManual})
	require.NoError(t, err)
	assert.Len(t, manuals, 2)

	page, err := env.proposalUC.List(ctx, interfaces.ProposalFilter{Limit: 1, Offset: 1})
	require.NoError(t, err)
	assert.Len(t, page, 1)

	_, err = env.proposalUC.List(ctx, interfaces.ProposalFilter{Status: "aprovada"})
	assert.ErrorIs(t, err, ErrInvalidStatus)

	_, err = env.proposalUC.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, ErrProposalNotFound)
}
