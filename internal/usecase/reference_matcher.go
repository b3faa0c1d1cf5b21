package usecase

import (
	"context"
	"fmt"

	"fluxo_propostas/internal/domain/entities"
	"fluxo_propostas/internal/domain/matching"
	"fluxo_propostas/internal/usecase/interfaces"
)

// IReferenceMatcher finds a prior proposal with the same item multiset. A nil
// proposal with a nil error means no match.
type IReferenceMatcher interface {
	FindReference(ctx context.Context, targetItems []entities.ProposalItem, excludeProposalID string) (*entities.Proposal, error)
}

type ReferenceMatcher struct {
	proposals interfaces.IProposalRepository
}

var _ IReferenceMatcher = (*ReferenceMatcher)(nil)

func NewReferenceMatcher(proposals interfaces.IProposalRepository) *ReferenceMatcher {
	return &ReferenceMatcher{proposals: proposals}
}

func (m *ReferenceMatcher) FindReference(ctx context.Context, targetItems []entities.ProposalItem, excludeProposalID string) (*entities.Proposal, error) {
	target := matching.FromItems(targetItems)
	if len(target) == 0 {
		return nil, nil
	}

	candidates, err := m.proposals.FindCandidatesWithSimulation(ctx, excludeProposalID, target.SKUs())
	if err != nil {
		return nil, fmt.Errorf("find reference candidates: %w", err)
	}
	eligible := candidates[:0]
	for _, c := range candidates {
		if c.ID != excludeProposalID {
			eligible = append(eligible, c)
		}
	}
	return matching.BestReference(target, eligible), nil
}
