package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"fluxo_propostas/internal/domain/entities"
	"fluxo_propostas/internal/usecase/interfaces"
)

var ErrInvalidShipment = errors.New("invalid shipment")

type ShipmentInput struct {
	Summary string
	Channel string
	Link    string
}

type IShipmentUseCase interface {
	RegisterShipment(ctx context.Context, proposalID string, in ShipmentInput) (entities.Proposal, error)
}

type ShipmentUseCase struct {
	uow       interfaces.IUnitOfWork
	proposals interfaces.IProposalRepository
	shipments interfaces.IShipmentRepository
	lifecycle ILifecycleUseCase
	now       func() time.Time
}

var _ IShipmentUseCase = (*ShipmentUseCase)(nil)

func NewShipmentUseCase(uow interfaces.IUnitOfWork, proposals interfaces.IProposalRepository, shipments interfaces.IShipmentRepository, lifecycle ILifecycleUseCase) *ShipmentUseCase {
	return &ShipmentUseCase{
		uow:       uow,
		proposals: proposals,
		shipments: shipments,
		lifecycle: lifecycle,
		now:       utcNow,
	}
}

// RegisterShipment records that the proposal was sent to the client and completes it.
func (u *ShipmentUseCase) RegisterShipment(ctx context.Context, proposalID string, in ShipmentInput) (entities.Proposal, error) {
	summary := strings.TrimSpace(in.Summary)
	if link := strings.TrimSpace(in.Link); link != "" {
		summary = strings.TrimSpace(summary + "\n" + link)
	}
	if summary == "" {
		return entities.Proposal{}, fmt.Errorf("%w: summary is required", ErrInvalidShipment)
	}
	channel := strings.TrimSpace(in.Channel)
	if channel == "" {
		channel = "whatsapp"
	}

	p, err := loadProposal(ctx, u.proposals, proposalID)
	if err != nil {
		return entities.Proposal{}, err
	}
	if p.Status != entities.ProposalStatusPendingShipment {
		return entities.Proposal{}, fmt.Errorf("%w: cannot ship a proposal in %s", ErrInvalidTransition, p.Status)
	}

	err = withinTransaction(ctx, u.uow, func(ctx context.Context) error {
		sentAt := u.now()
		if _, err := u.shipments.Save(ctx, entities.Shipment{
			ProposalID: p.ID,
			Summary:    summary,
			Channel:    channel,
			Sent:       true,
			SentAt:     &sentAt,
		}); err != nil {
			return err
		}
		_, err := u.lifecycle.Transition(ctx, &p, entities.ProposalStatusCompleted, "proposal sent via "+channel, false)
		return err
	})
	if err != nil {
		return entities.Proposal{}, err
	}

	slog.InfoContext(ctx, "[shipment][usecase] proposal sent", "proposal_id", p.ID, "channel", channel)
	return loadProposal(ctx, u.proposals, p.ID)
}
