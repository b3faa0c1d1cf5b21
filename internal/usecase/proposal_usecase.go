package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"fluxo_propostas/internal/domain/entities"
	"fluxo_propostas/internal/usecase/interfaces"
)

var ErrInvalidProposalInput = errors.New("invalid proposal input")

const maxListLimit = 200

type CreateProposalInput struct {
	Client   ImportClient
	SellerID int64
	Items    []ImportItem
	Note     string
}

type IProposalUseCase interface {
	GetByID(ctx context.Context, id string) (entities.Proposal, error)
	List(ctx context.Context, filter interfaces.ProposalFilter) ([]entities.Proposal, error)
	CreateManual(ctx context.Context, in CreateProposalInput) (entities.Proposal, error)
}

type ProposalUseCase struct {
	uow       interfaces.IUnitOfWork
	proposals interfaces.IProposalRepository
	history   interfaces.IHistoryRepository
	catalog   catalogResolver
	now       func() time.Time
}

var _ IProposalUseCase = (*ProposalUseCase)(nil)

func NewProposalUseCase(
	uow interfaces.IUnitOfWork,
	proposals interfaces.IProposalRepository,
	history interfaces.IHistoryRepository,
	clients interfaces.IClientRepository,
	products interfaces.IProductRepository,
) *ProposalUseCase {
	return &ProposalUseCase{
		uow:       uow,
		proposals: proposals,
		history:   history,
		catalog:   newCatalogResolver(clients, products, false),
		now:       utcNow,
	}
}

func (u *ProposalUseCase) GetByID(ctx context.Context, id string) (entities.Proposal, error) {
	return loadProposal(ctx, u.proposals, id)
}

func (u *ProposalUseCase) List(ctx context.Context, filter interfaces.ProposalFilter) ([]entities.Proposal, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, ErrInvalidStatus
	}
	if filter.Limit <= 0 || filter.Limit > maxListLimit {
		filter.Limit = maxListLimit
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	return u.proposals.List(ctx, filter)
}

// CreateManual registers a proposal typed in by a seller. It starts in
// PENDING_SIMULATION and is never matched against the catalog of references.
func (u *ProposalUseCase) CreateManual(ctx context.Context, in CreateProposalInput) (entities.Proposal, error) {
	if len(in.Items) == 0 {
		return entities.Proposal{}, ErrInvalidProposalInput
	}

	var id string
	err := withinTransaction(ctx, u.uow, func(ctx context.Context) error {
		client, err := u.catalog.upsertClient(ctx, in.Client)
		if err != nil {
			return err
		}
		items, err := u.catalog.buildItems(ctx, in.Items)
		if err != nil {
			return err
		}

		now := u.now()
		p, err := u.proposals.Create(ctx, entities.Proposal{
			ID:         uuid.NewString(),
			Origin:     entities.ProposalOriginManual,
			Status:     entities.ProposalStatusPendingSimulation,
			ClientID:   client.ID,
			SellerID:   in.SellerID,
			ImportNote: strings.TrimSpace(in.Note),
			CreatedAt:  now,
			UpdatedAt:  now,
		})
		if err != nil {
			return err
		}
		if _, err := u.proposals.ReplaceItems(ctx, p.ID, items); err != nil {
			return err
		}
		if _, err := u.history.Append(ctx, entities.HistoryEntry{
			ProposalID: p.ID,
			Status:     p.Status,
			Note:       "proposal created",
			CreatedAt:  now,
		}); err != nil {
			return err
		}
		id = p.ID
		return nil
	})
	if err != nil {
		return entities.Proposal{}, err
	}

	slog.InfoContext(ctx, "[proposal][usecase] manual proposal created", "proposal_id", id, "items", len(in.Items))
	return loadProposal(ctx, u.proposals, id)
}

func loadProposal(ctx context.Context, proposals interfaces.IProposalRepository, id string) (entities.Proposal, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Proposal{}, ErrInvalidProposalID
	}
	p, err := proposals.GetByID(ctx, id)
	if err != nil {
		return entities.Proposal{}, err
	}
	if p.ID == "" {
		return entities.Proposal{}, ErrProposalNotFound
	}
	return p, nil
}

func utcNow() time.Time {
	return time.Now().UTC()
}
