package usecase

import (
	"context"
	"fmt"
	"time"

	"fluxo_propostas/internal/domain/entities"
	"fluxo_propostas/internal/domain/volumetric"
	"fluxo_propostas/internal/usecase/interfaces"
)

type OutcomeKind string

const (
	// OutcomePromote forces the proposal to PENDING_QUOTE.
	OutcomePromote OutcomeKind = "PROMOTE"
	// OutcomeRevert forces the proposal to PENDING_SIMULATION.
	OutcomeRevert OutcomeKind = "REVERT"
	// OutcomeNone keeps the current status.
	OutcomeNone OutcomeKind = "NONE"
)

type Outcome struct {
	Kind OutcomeKind
	Note string
}

// TargetStatus is the status the outcome forces, given the current one.
func (o Outcome) TargetStatus(current entities.ProposalStatus) entities.ProposalStatus {
	switch o.Kind {
	case OutcomePromote:
		return entities.ProposalStatusPendingQuote
	case OutcomeRevert:
		return entities.ProposalStatusPendingSimulation
	}
	return current
}

// ISimulationReconciler decides the simulation state of target given the reference
// found by the matcher (nil when none). It updates target in place (simulation and
// measurements) and persists the simulation row; the proposal row itself is saved
// by the forced transition that applies the outcome.
type ISimulationReconciler interface {
	Reconcile(ctx context.Context, target *entities.Proposal, reference *entities.Proposal) (Outcome, error)
}

type SimulationReconciler struct {
	simulations     interfaces.ISimulationRepository
	catalogFallback bool
	now             func() time.Time
}

var _ ISimulationReconciler = (*SimulationReconciler)(nil)

// NewSimulationReconciler builds the reconciler. With catalogFallback, a target
// without reference is still promoted when its own catalog dimensions yield a volume.
func NewSimulationReconciler(simulations interfaces.ISimulationRepository, catalogFallback bool) *SimulationReconciler {
	return &SimulationReconciler{
		simulations:     simulations,
		catalogFallback: catalogFallback,
		now:             utcNow,
	}
}

func (r *SimulationReconciler) Reconcile(ctx context.Context, target *entities.Proposal, reference *entities.Proposal) (Outcome, error) {
	if target == nil || target.ID == "" {
		return Outcome{}, ErrInvalidProposalID
	}

	if reference == nil || reference.Simulation == nil {
		if r.catalogFallback {
			res := volumetric.Calculate(volumetric.FromItems(target.Items))
			if res.HasVolume() {
				if err := r.applyCalculation(ctx, target, res); err != nil {
					return Outcome{}, err
				}
				return Outcome{Kind: OutcomePromote, Note: "no proposal with the same items; simulation computed from catalog measurements"}, nil
			}
		}
		if err := r.simulations.DeleteByProposalID(ctx, target.ID); err != nil {
			return Outcome{}, err
		}
		target.Simulation = nil
		target.ClearMeasurements()
		return Outcome{Kind: OutcomeRevert, Note: "no proposal with the same items and a simulation was found; new simulation required"}, nil
	}

	if reference.Simulation.IsManual() {
		if err := r.copyFrom(ctx, target, *reference); err != nil {
			return Outcome{}, err
		}
		return Outcome{Kind: OutcomePromote, Note: fmt.Sprintf("simulation copied from proposal %s (same items)", reference.DisplayNumber())}, nil
	}

	res := volumetric.Calculate(volumetric.FromItems(target.Items))
	if res.HasVolume() {
		if err := r.applyCalculation(ctx, target, res); err != nil {
			return Outcome{}, err
		}
		return Outcome{Kind: OutcomePromote, Note: fmt.Sprintf("simulation recalculated from catalog measurements (same items as proposal %s)", reference.DisplayNumber())}, nil
	}

	if err := r.copyFrom(ctx, target, *reference); err != nil {
		return Outcome{}, err
	}
	return Outcome{Kind: OutcomePromote, Note: fmt.Sprintf("catalog measurements incomplete; automatic values copied from proposal %s", reference.DisplayNumber())}, nil
}

// copyFrom copies the reference simulation as a machine-selected one, plus its
// weight and volume values verbatim.
func (r *SimulationReconciler) copyFrom(ctx context.Context, target *entities.Proposal, reference entities.Proposal) error {
	sim, err := r.simulations.Replace(ctx, entities.Simulation{
		ProposalID:  target.ID,
		Type:        reference.Simulation.Type,
		Description: reference.Simulation.Description,
		IsAutomatic: true,
		CreatedAt:   r.now(),
	})
	if err != nil {
		return err
	}
	target.Simulation = &sim
	target.CopyMeasurementsFrom(reference)
	return nil
}

func (r *SimulationReconciler) applyCalculation(ctx context.Context, target *entities.Proposal, res volumetric.Result) error {
	sim, err := r.simulations.Replace(ctx, entities.Simulation{
		ProposalID:  target.ID,
		Type:        entities.SimulationTypeVolumetric,
		Description: res.Description(),
		IsAutomatic: true,
		CreatedAt:   r.now(),
	})
	if err != nil {
		return err
	}
	target.Simulation = &sim
	target.ClearMeasurements()
	target.WeightTotalKg = res.WeightKg
	target.VolumeAutomaticM3 = res.VolumeM3
	return nil
}
