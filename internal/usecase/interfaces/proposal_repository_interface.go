package interfaces

//go:generate mockgen -source=proposal_repository_interface.go -destination=mocks/proposal_repository_interface_mock.go -package=mock_interfaces

import (
	"context"
	"errors"

	"fluxo_propostas/internal/domain/entities"
)

// ErrDuplicateKey is returned by repositories when a write hits a unique index,
// e.g. two concurrent imports creating the same (origin, external_id).
var ErrDuplicateKey = errors.New("duplicate key")

// ProposalFilter narrows List results. Zero values mean "any".
type ProposalFilter struct {
	Status entities.ProposalStatus
	Origin entities.ProposalOrigin
	Limit  int
	Offset int
}

// IProposalRepository abstracts persistence of the Proposal aggregate.
//
// Read methods return the aggregate hydrated with its client, items (with catalog
// products), simulation, quotes and shipment. A zero-value Proposal (ID == "") means
// not found.
type IProposalRepository interface {
	Create(ctx context.Context, p entities.Proposal) (entities.Proposal, error)
	Update(ctx context.Context, p entities.Proposal) (entities.Proposal, error)
	GetByID(ctx context.Context, id string) (entities.Proposal, error)
	GetByExternalID(ctx context.Context, origin entities.ProposalOrigin, externalID string) (entities.Proposal, error)
	List(ctx context.Context, filter ProposalFilter) ([]entities.Proposal, error)

	// FindCandidatesWithSimulation returns proposals other than excludeID that carry a
	// simulation, are past the initial status and share at least one of skus.
	FindCandidatesWithSimulation(ctx context.Context, excludeID string, skus []string) ([]entities.Proposal, error)

	// ReplaceItems deletes every item of the proposal and inserts items.
	ReplaceItems(ctx context.Context, proposalID string, items []entities.ProposalItem) ([]entities.ProposalItem, error)
}
