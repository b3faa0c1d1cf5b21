package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"fluxo_propostas/internal/domain/entities"
	"fluxo_propostas/internal/domain/volumetric"
	"fluxo_propostas/internal/usecase/interfaces"
)

var (
	ErrInvalidSimulation    = errors.New("invalid simulation")
	ErrNoUsableVolume       = errors.New("no usable volume")
	ErrBoxNotFound          = errors.New("box not found")
	ErrProductNotInProposal = errors.New("product does not belong to the proposal")
)

type ManualSimulationInput struct {
	Description string
	// VolumeM3 and WeightKg override the values parsed from Description.
	VolumeM3 decimal.NullDecimal
	WeightKg decimal.NullDecimal
	Complete bool
}

type ProductMeasurement struct {
	ProductID    string
	LengthCm     decimal.NullDecimal
	WidthCm      decimal.NullDecimal
	HeightCm     decimal.NullDecimal
	UnitWeightKg decimal.NullDecimal
}

type BoxQuantity struct {
	BoxID    string
	Quantity int
}

type FreeVolume struct {
	Quantity int
	LengthCm decimal.Decimal
	WidthCm  decimal.Decimal
	HeightCm decimal.Decimal
}

type VolumesInput struct {
	Boxes    []BoxQuantity
	Volumes  []FreeVolume
	WeightKg decimal.NullDecimal
	Complete bool
}

// ISimulationUseCase covers the simulation work done by the warehouse on a single
// proposal. Every operation replaces the simulation instead of patching it.
type ISimulationUseCase interface {
	SaveManualSimulation(ctx context.Context, proposalID string, in ManualSimulationInput) (entities.Proposal, error)
	SimulateByMeasurements(ctx context.Context, proposalID string, measurements []ProductMeasurement, manualVolumeM3 decimal.NullDecimal) (entities.Proposal, error)
	SimulateByVolumes(ctx context.Context, proposalID string, in VolumesInput) (entities.Proposal, error)
	AdjustMeasurements(ctx context.Context, proposalID string, volumeManualM3, weightKg decimal.NullDecimal) (entities.Proposal, error)
	Recalculate(ctx context.Context, proposalID string) (entities.Proposal, error)
}

type SimulationUseCase struct {
	uow         interfaces.IUnitOfWork
	proposals   interfaces.IProposalRepository
	simulations interfaces.ISimulationRepository
	products    interfaces.IProductRepository
	boxes       interfaces.IBoxRepository
	lifecycle   ILifecycleUseCase
	now         func() time.Time
}

var _ ISimulationUseCase = (*SimulationUseCase)(nil)

func NewSimulationUseCase(
	uow interfaces.IUnitOfWork,
	proposals interfaces.IProposalRepository,
	simulations interfaces.ISimulationRepository,
	products interfaces.IProductRepository,
	boxes interfaces.IBoxRepository,
	lifecycle ILifecycleUseCase,
) *SimulationUseCase {
	return &SimulationUseCase{
		uow:         uow,
		proposals:   proposals,
		simulations: simulations,
		products:    products,
		boxes:       boxes,
		lifecycle:   lifecycle,
		now:         utcNow,
	}
}

func (u *SimulationUseCase) SaveManualSimulation(ctx context.Context, proposalID string, in ManualSimulationInput) (entities.Proposal, error) {
	text := strings.TrimSpace(in.Description)
	if text == "" {
		return entities.Proposal{}, fmt.Errorf("%w: description is required", ErrInvalidSimulation)
	}
	p, err := u.loadSimulatable(ctx, proposalID)
	if err != nil {
		return entities.Proposal{}, err
	}

	volume, weight := in.VolumeM3, in.WeightKg
	parsedCm3, parsedWeight := volumetric.ParseDescription(text)
	if !volume.Valid && parsedCm3.IsPositive() {
		volume = decimal.NewNullDecimal(volumetric.CubicCentimetersToCubicMeters(parsedCm3))
	}
	if !weight.Valid {
		weight = parsedWeight
	}

	err = withinTransaction(ctx, u.uow, func(ctx context.Context) error {
		if err := u.replaceSimulation(ctx, &p, entities.SimulationTypeManual, text, false); err != nil {
			return err
		}
		if volume.Valid {
			p.VolumeManualM3 = volume
			p.VolumeIsManual = true
		}
		if weight.Valid {
			p.WeightTotalKg = weight
		}
		target := p.Status
		if in.Complete {
			target = entities.ProposalStatusPendingQuote
		}
		return u.save(ctx, &p, target, "manual simulation registered")
	})
	if err != nil {
		return entities.Proposal{}, err
	}
	slog.InfoContext(ctx, "[simulation][usecase] manual simulation saved", "proposal_id", p.ID, "status", p.Status)
	return loadProposal(ctx, u.proposals, p.ID)
}

// SimulateByMeasurements stores the informed dimensions in the catalog and
// recomputes the proposal from it. The proposal only advances once every product
// is measured.
func (u *SimulationUseCase) SimulateByMeasurements(ctx context.Context, proposalID string, measurements []ProductMeasurement, manualVolumeM3 decimal.NullDecimal) (entities.Proposal, error) {
	p, err := u.loadSimulatable(ctx, proposalID)
	if err != nil {
		return entities.Proposal{}, err
	}

	err = withinTransaction(ctx, u.uow, func(ctx context.Context) error {
		for _, m := range measurements {
			if err := u.recordMeasurement(ctx, &p, m); err != nil {
				return err
			}
		}

		res := volumetric.Calculate(volumetric.FromItems(p.Items))
		if err := u.replaceSimulation(ctx, &p, entities.SimulationTypeVolumetric, res.Description(), false); err != nil {
			return err
		}
		p.WeightTotalKg = res.WeightKg
		p.VolumeAutomaticM3 = res.VolumeM3
		if manualVolumeM3.Valid {
			p.VolumeManualM3 = manualVolumeM3
			p.VolumeIsManual = true
		}

		target := entities.ProposalStatusPendingSimulation
		note := "measurements recorded, products still missing dimensions"
		if volumetric.AllMeasured(p.Items) {
			target = entities.ProposalStatusPendingQuote
			note = "simulation computed from product measurements"
		}
		return u.save(ctx, &p, target, note)
	})
	if err != nil {
		return entities.Proposal{}, err
	}
	slog.InfoContext(ctx, "[simulation][usecase] measurements simulated",
		"proposal_id", p.ID, "status", p.Status, "products", len(measurements))
	return loadProposal(ctx, u.proposals, p.ID)
}

func (u *SimulationUseCase) SimulateByVolumes(ctx context.Context, proposalID string, in VolumesInput) (entities.Proposal, error) {
	p, err := u.loadSimulatable(ctx, proposalID)
	if err != nil {
		return entities.Proposal{}, err
	}

	entries := make([]volumetric.Entry, 0, len(in.Boxes)+len(in.Volumes))
	for _, b := range in.Boxes {
		box, err := u.boxes.GetByID(ctx, b.BoxID)
		if err != nil {
			return entities.Proposal{}, err
		}
		if box.ID == "" {
			return entities.Proposal{}, fmt.Errorf("%w: %s", ErrBoxNotFound, b.BoxID)
		}
		entries = append(entries, volumetric.FromBox(box, b.Quantity))
	}
	for _, v := range in.Volumes {
		entries = append(entries, volumetric.ManualEntry(v.Quantity, v.LengthCm, v.WidthCm, v.HeightCm))
	}

	res := volumetric.Calculate(entries)
	if !res.HasVolume() {
		return entities.Proposal{}, ErrNoUsableVolume
	}

	err = withinTransaction(ctx, u.uow, func(ctx context.Context) error {
		if err := u.replaceSimulation(ctx, &p, entities.SimulationTypeVolumetric, res.Description(), false); err != nil {
			return err
		}
		p.VolumeAutomaticM3 = res.VolumeM3
		p.VolumeManualM3 = decimal.NullDecimal{}
		p.VolumeIsManual = false
		if in.WeightKg.Valid {
			p.WeightTotalKg = in.WeightKg
		}
		target := p.Status
		if in.Complete {
			target = entities.ProposalStatusPendingQuote
		}
		return u.save(ctx, &p, target, "simulation by volumes registered")
	})
	if err != nil {
		return entities.Proposal{}, err
	}
	slog.InfoContext(ctx, "[simulation][usecase] volumes simulated", "proposal_id", p.ID, "volume_m3", res.VolumeM3.Decimal.String())
	return loadProposal(ctx, u.proposals, p.ID)
}

// AdjustMeasurements applies an operator override of the final volume and/or the
// total weight. It does not touch the simulation.
func (u *SimulationUseCase) AdjustMeasurements(ctx context.Context, proposalID string, volumeManualM3, weightKg decimal.NullDecimal) (entities.Proposal, error) {
	if !volumeManualM3.Valid && !weightKg.Valid {
		return entities.Proposal{}, fmt.Errorf("%w: nothing to adjust", ErrInvalidSimulation)
	}
	if (volumeManualM3.Valid && volumeManualM3.Decimal.IsNegative()) || (weightKg.Valid && weightKg.Decimal.IsNegative()) {
		return entities.Proposal{}, fmt.Errorf("%w: negative value", ErrInvalidSimulation)
	}
	p, err := loadProposal(ctx, u.proposals, proposalID)
	if err != nil {
		return entities.Proposal{}, err
	}
	if p.Status.IsTerminal() {
		return entities.Proposal{}, fmt.Errorf("%w: proposal is %s", ErrInvalidTransition, p.Status)
	}

	if volumeManualM3.Valid {
		p.VolumeManualM3 = volumeManualM3
		p.VolumeIsManual = true
	}
	if weightKg.Valid {
		p.WeightTotalKg = weightKg
	}
	if err := u.save(ctx, &p, p.Status, ""); err != nil {
		return entities.Proposal{}, err
	}
	return loadProposal(ctx, u.proposals, p.ID)
}

// Recalculate recomputes the automatic weight and volume from the catalog. An
// automatic volumetric simulation is regenerated so its text matches the numbers.
func (u *SimulationUseCase) Recalculate(ctx context.Context, proposalID string) (entities.Proposal, error) {
	p, err := loadProposal(ctx, u.proposals, proposalID)
	if err != nil {
		return entities.Proposal{}, err
	}
	if p.Status.IsTerminal() {
		return entities.Proposal{}, fmt.Errorf("%w: proposal is %s", ErrInvalidTransition, p.Status)
	}

	res := volumetric.Calculate(volumetric.FromItems(p.Items))
	err = withinTransaction(ctx, u.uow, func(ctx context.Context) error {
		p.VolumeAutomaticM3 = res.VolumeM3
		if res.WeightKg.Valid {
			p.WeightTotalKg = res.WeightKg
		}
		sim := p.Simulation
		if sim != nil && sim.IsAutomatic && sim.Type == entities.SimulationTypeVolumetric && res.HasVolume() {
			if err := u.replaceSimulation(ctx, &p, entities.SimulationTypeVolumetric, res.Description(), true); err != nil {
				return err
			}
		}
		return u.save(ctx, &p, p.Status, "")
	})
	if err != nil {
		return entities.Proposal{}, err
	}
	return loadProposal(ctx, u.proposals, p.ID)
}

// loadSimulatable loads a proposal that may still receive a simulation.
func (u *SimulationUseCase) loadSimulatable(ctx context.Context, proposalID string) (entities.Proposal, error) {
	p, err := loadProposal(ctx, u.proposals, proposalID)
	if err != nil {
		return entities.Proposal{}, err
	}
	switch p.Status {
	case entities.ProposalStatusPendingSimulation, entities.ProposalStatusPendingQuote:
		return p, nil
	}
	return entities.Proposal{}, fmt.Errorf("%w: cannot simulate a proposal in %s", ErrInvalidTransition, p.Status)
}

func (u *SimulationUseCase) recordMeasurement(ctx context.Context, p *entities.Proposal, m ProductMeasurement) error {
	idx := -1
	for i, it := range p.Items {
		if it.ProductID == m.ProductID && it.Product != nil {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("%w: %s", ErrProductNotInProposal, m.ProductID)
	}

	product := *p.Items[idx].Product
	setPositive(&product.LengthCm, m.LengthCm)
	setPositive(&product.WidthCm, m.WidthCm)
	setPositive(&product.HeightCm, m.HeightCm)
	setPositive(&product.UnitWeightKg, m.UnitWeightKg)
	product.UpdatedAt = u.now()

	saved, err := u.products.Update(ctx, product)
	if err != nil {
		return err
	}
	for i := range p.Items {
		if p.Items[i].ProductID == saved.ID {
			prod := saved
			p.Items[i].Product = &prod
		}
	}
	return nil
}

func setPositive(dst *decimal.NullDecimal, v decimal.NullDecimal) {
	if v.Valid && v.Decimal.IsPositive() {
		*dst = v
	}
}

func (u *SimulationUseCase) replaceSimulation(ctx context.Context, p *entities.Proposal, typ entities.SimulationType, description string, automatic bool) error {
	sim, err := u.simulations.Replace(ctx, entities.Simulation{
		ProposalID:  p.ID,
		Type:        typ,
		Description: description,
		IsAutomatic: automatic,
		CreatedAt:   u.now(),
	})
	if err != nil {
		return err
	}
	p.Simulation = &sim
	return nil
}

// save persists p, going through the lifecycle when the status changes.
func (u *SimulationUseCase) save(ctx context.Context, p *entities.Proposal, target entities.ProposalStatus, note string) error {
	if target != p.Status {
		_, err := u.lifecycle.Transition(ctx, p, target, note, false)
		return err
	}
	p.UpdatedAt = u.now()
	saved, err := u.proposals.Update(ctx, *p)
	if err != nil {
		return err
	}
	if saved.ID == "" {
		return ErrProposalNotFound
	}
	return nil
}
