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

var (
	ErrProposalNotFound  = errors.New("proposal not found")
	ErrInvalidProposalID = errors.New("invalid proposal id")
	ErrInvalidStatus     = errors.New("invalid proposal status")
	ErrInvalidTransition = errors.New("invalid status transition")
)

// ILifecycleUseCase is the only place where a proposal changes status.
//
//   - Transition is a no-op when the status is unchanged and force is false.
//   - Otherwise it persists the proposal, appends one history entry and, after the
//     surrounding transaction commits, notifies the messaging collaborator.
//   - force skips the transition table; only the reimport engine uses it.
type ILifecycleUseCase interface {
	Transition(ctx context.Context, p *entities.Proposal, status entities.ProposalStatus, note string, force bool) (bool, error)
	Cancel(ctx context.Context, proposalID, note string) (entities.Proposal, error)
	History(ctx context.Context, proposalID string) ([]entities.HistoryEntry, error)
}

type LifecycleUseCase struct {
	uow       interfaces.IUnitOfWork
	proposals interfaces.IProposalRepository
	history   interfaces.IHistoryRepository
	notifier  interfaces.INotifier
	now       func() time.Time
}

var _ ILifecycleUseCase = (*LifecycleUseCase)(nil)

func NewLifecycleUseCase(uow interfaces.IUnitOfWork, proposals interfaces.IProposalRepository, history interfaces.IHistoryRepository, notifier interfaces.INotifier) *LifecycleUseCase {
	return &LifecycleUseCase{
		uow:       uow,
		proposals: proposals,
		history:   history,
		notifier:  notifier,
		now:       utcNow,
	}
}

func (u *LifecycleUseCase) Transition(ctx context.Context, p *entities.Proposal, status entities.ProposalStatus, note string, force bool) (bool, error) {
	if p == nil || strings.TrimSpace(p.ID) == "" {
		return false, ErrInvalidProposalID
	}
	if !status.Valid() {
		return false, ErrInvalidStatus
	}
	if status == p.Status && !force {
		return false, nil
	}
	if !force && !p.Status.CanTransitionTo(status) {
		return false, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, p.Status, status)
	}

	previous := p.Status
	updated := *p
	updated.Status = status
	updated.UpdatedAt = u.now()

	err := withinTransaction(ctx, u.uow, func(ctx context.Context) error {
		saved, err := u.proposals.Update(ctx, updated)
		if err != nil {
			return err
		}
		if saved.ID == "" {
			return ErrProposalNotFound
		}
		if _, err := u.history.Append(ctx, entities.HistoryEntry{
			ProposalID: updated.ID,
			Status:     status,
			Note:       note,
			CreatedAt:  updated.UpdatedAt,
		}); err != nil {
			return err
		}

		snapshot := updated
		afterCommit(ctx, func() { u.notify(ctx, snapshot, status) })
		return nil
	})
	if err != nil {
		return false, err
	}

	*p = updated
	slog.InfoContext(ctx, "[lifecycle][usecase] transition recorded",
		"proposal_id", p.ID, "from", previous, "to", status, "forced", force)
	return true, nil
}

// notify delivers best-effort: failures are logged and never surface.
func (u *LifecycleUseCase) notify(ctx context.Context, snapshot entities.Proposal, status entities.ProposalStatus) {
	if u.notifier == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			slog.ErrorContext(ctx, "[lifecycle][usecase] notifier panicked", "proposal_id", snapshot.ID, "panic", r)
		}
	}()

	delivered, err := u.notifier.Notify(ctx, snapshot, status)
	switch {
	case err != nil:
		slog.WarnContext(ctx, "[lifecycle][usecase] notification failed", "proposal_id", snapshot.ID, "status", status, "err", err)
	case !delivered:
		slog.InfoContext(ctx, "[lifecycle][usecase] notification not delivered", "proposal_id", snapshot.ID, "status", status)
	}
}

func (u *LifecycleUseCase) Cancel(ctx context.Context, proposalID, note string) (entities.Proposal, error) {
	p, err := u.load(ctx, proposalID)
	if err != nil {
		return entities.Proposal{}, err
	}
	if strings.TrimSpace(note) == "" {
		note = "proposal cancelled"
	}
	if _, err := u.Transition(ctx, &p, entities.ProposalStatusCancelled, note, false); err != nil {
		return entities.Proposal{}, err
	}
	return p, nil
}

func (u *LifecycleUseCase) History(ctx context.Context, proposalID string) ([]entities.HistoryEntry, error) {
	p, err := u.load(ctx, proposalID)
	if err != nil {
		return nil, err
	}
	return u.history.ListByProposalID(ctx, p.ID)
}

func (u *LifecycleUseCase) load(ctx context.Context, proposalID string) (entities.Proposal, error) {
	return loadProposal(ctx, u.proposals, proposalID)
}
