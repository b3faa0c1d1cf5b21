package interfaces

//go:generate mockgen -source=pipeline_repository_interface.go -destination=mocks/pipeline_repository_interface_mock.go -package=mock_interfaces

import (
	"context"

	"fluxo_propostas/internal/domain/entities"
)

// ISimulationRepository keeps the one-to-one simulation of a proposal.
type ISimulationRepository interface {
	GetByProposalID(ctx context.Context, proposalID string) (entities.Simulation, error)
	// Replace deletes the current simulation of s.ProposalID, if any, and creates s.
	Replace(ctx context.Context, s entities.Simulation) (entities.Simulation, error)
	DeleteByProposalID(ctx context.Context, proposalID string) error
}

// IHistoryRepository is append-only.
type IHistoryRepository interface {
	Append(ctx context.Context, e entities.HistoryEntry) (entities.HistoryEntry, error)
	ListByProposalID(ctx context.Context, proposalID string) ([]entities.HistoryEntry, error)
}

type IFreightQuoteRepository interface {
	ListByProposalID(ctx context.Context, proposalID string) ([]entities.FreightQuote, error)
	// Upsert keeps one quote per (proposal, carrier).
	Upsert(ctx context.Context, q entities.FreightQuote) (entities.FreightQuote, error)
	// Select marks quoteID as the only selected quote of the proposal. A zero-value
	// quote means quoteID does not belong to the proposal.
	Select(ctx context.Context, proposalID, quoteID string) (entities.FreightQuote, error)
}

type IShipmentRepository interface {
	GetByProposalID(ctx context.Context, proposalID string) (entities.Shipment, error)
	// Save creates or replaces the shipment of s.ProposalID.
	Save(ctx context.Context, s entities.Shipment) (entities.Shipment, error)
}
