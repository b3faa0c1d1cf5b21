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
	"fluxo_propostas/internal/usecase/interfaces"
)

var (
	ErrInvalidQuote    = errors.New("invalid freight quote")
	ErrCarrierNotFound = errors.New("carrier not found")
	ErrQuoteNotFound   = errors.New("freight quote not found")
)

type QuoteInput struct {
	CarrierID    string
	QuoteNumber  string
	Price        decimal.Decimal
	LeadTimeDays int
}

type IFreightQuoteUseCase interface {
	RegisterQuotes(ctx context.Context, proposalID string, quotes []QuoteInput, complete bool) (entities.Proposal, error)
	SelectQuote(ctx context.Context, proposalID, quoteID string) (entities.Proposal, error)
}

type FreightQuoteUseCase struct {
	uow       interfaces.IUnitOfWork
	proposals interfaces.IProposalRepository
	quotes    interfaces.IFreightQuoteRepository
	carriers  interfaces.ICarrierRepository
	lifecycle ILifecycleUseCase
	now       func() time.Time
}

var _ IFreightQuoteUseCase = (*FreightQuoteUseCase)(nil)

func NewFreightQuoteUseCase(
	uow interfaces.IUnitOfWork,
	proposals interfaces.IProposalRepository,
	quotes interfaces.IFreightQuoteRepository,
	carriers interfaces.ICarrierRepository,
	lifecycle ILifecycleUseCase,
) *FreightQuoteUseCase {
	return &FreightQuoteUseCase{
		uow:       uow,
		proposals: proposals,
		quotes:    quotes,
		carriers:  carriers,
		lifecycle: lifecycle,
		now:       utcNow,
	}
}

// RegisterQuotes stores one quote per carrier; registering the same carrier again
// updates its quote. With complete, the proposal moves to PENDING_SHIPMENT.
func (u *FreightQuoteUseCase) RegisterQuotes(ctx context.Context, proposalID string, quotes []QuoteInput, complete bool) (entities.Proposal, error) {
	if len(quotes) == 0 {
		return entities.Proposal{}, fmt.Errorf("%w: no quotes informed", ErrInvalidQuote)
	}
	for _, q := range quotes {
		if strings.TrimSpace(q.CarrierID) == "" || q.Price.IsNegative() || q.LeadTimeDays < 0 {
			return entities.Proposal{}, fmt.Errorf("%w: carrier %q", ErrInvalidQuote, q.CarrierID)
		}
	}

	p, err := loadProposal(ctx, u.proposals, proposalID)
	if err != nil {
		return entities.Proposal{}, err
	}
	if p.Status != entities.ProposalStatusPendingQuote {
		return entities.Proposal{}, fmt.Errorf("%w: cannot quote a proposal in %s", ErrInvalidTransition, p.Status)
	}
	if vol := p.FinalVolumeM3(); !vol.Valid || !vol.Decimal.IsPositive() {
		return entities.Proposal{}, ErrNoUsableVolume
	}

	err = withinTransaction(ctx, u.uow, func(ctx context.Context) error {
		for _, in := range quotes {
			carrier, err := u.carriers.GetByID(ctx, in.CarrierID)
			if err != nil {
				return err
			}
			if carrier.ID == "" {
				return fmt.Errorf("%w: %s", ErrCarrierNotFound, in.CarrierID)
			}
			if _, err := u.quotes.Upsert(ctx, entities.FreightQuote{
				ProposalID:   p.ID,
				CarrierID:    carrier.ID,
				QuoteNumber:  strings.TrimSpace(in.QuoteNumber),
				Price:        in.Price,
				LeadTimeDays: in.LeadTimeDays,
				CreatedAt:    u.now(),
			}); err != nil {
				return err
			}
		}
		if !complete {
			return nil
		}
		_, err := u.lifecycle.Transition(ctx, &p, entities.ProposalStatusPendingShipment,
			fmt.Sprintf("%d freight quote(s) registered", len(quotes)), false)
		return err
	})
	if err != nil {
		return entities.Proposal{}, err
	}

	slog.InfoContext(ctx, "[freight][usecase] quotes registered", "proposal_id", p.ID, "quotes", len(quotes), "complete", complete)
	return loadProposal(ctx, u.proposals, p.ID)
}

func (u *FreightQuoteUseCase) SelectQuote(ctx context.Context, proposalID, quoteID string) (entities.Proposal, error) {
	if strings.TrimSpace(quoteID) == "" {
		return entities.Proposal{}, ErrQuoteNotFound
	}
	p, err := loadProposal(ctx, u.proposals, proposalID)
	if err != nil {
		return entities.Proposal{}, err
	}
	if p.Status.IsTerminal() {
		return entities.Proposal{}, fmt.Errorf("%w: proposal is %s", ErrInvalidTransition, p.Status)
	}

	err = withinTransaction(ctx, u.uow, func(ctx context.Context) error {
		selected, err := u.quotes.Select(ctx, p.ID, quoteID)
		if err != nil {
			return err
		}
		if selected.ID == "" {
			return ErrQuoteNotFound
		}
		return nil
	})
	if err != nil {
		return entities.Proposal{}, err
	}
	return loadProposal(ctx, u.proposals, p.ID)
}
