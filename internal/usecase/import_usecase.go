package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"fluxo_propostas/internal/domain/entities"
	"fluxo_propostas/internal/domain/matching"
	"fluxo_propostas/internal/usecase/interfaces"
)

var (
	ErrInvalidExternalID = errors.New("invalid external_id")
	ErrImportLock        = errors.New("could not acquire import lock")
)

// DefaultClientName replaces a missing client name on import.
const DefaultClientName = "Cliente Externo"

// ImportPayload is the structured order handed over by the document parser.
type ImportPayload struct {
	ExternalID string           `json:"external_id"`
	Client     ImportClient     `json:"client"`
	Items      []ImportItem     `json:"items"`
	SellerID   int64            `json:"seller_id"`
	Note       string           `json:"note,omitempty"`
	OrderMeta  *ImportOrderMeta `json:"order_meta,omitempty"`
}

type ImportClient struct {
	Name     string `json:"name"`
	Document string `json:"document,omitempty"`
	Address  string `json:"address,omitempty"`
	City     string `json:"city,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Email    string `json:"email,omitempty"`
}

type ImportItem struct {
	SKU        string              `json:"sku,omitempty"`
	Code       string              `json:"code,omitempty"`
	Name       string              `json:"name"`
	Quantity   int                 `json:"quantity"`
	UnitPrice  decimal.NullDecimal `json:"unit_price"`
	TotalPrice decimal.NullDecimal `json:"total_price"`
	TaxCode    string              `json:"tax_code,omitempty"`
	ImageRef   string              `json:"image_ref,omitempty"`
}

type ImportOrderMeta struct {
	Number     string              `json:"number,omitempty"`
	SellerName string              `json:"seller_name,omitempty"`
	Discount   decimal.NullDecimal `json:"discount"`
}

type ImportOptions struct {
	// OverwriteClientFields lets the payload replace non-empty client fields.
	OverwriteClientFields bool
	// LockTimeout bounds the wait for the per-external-id lock. Zero means no bound.
	LockTimeout time.Duration
}

// IImportUseCase merges an external order into the store.
//
// Importing the same payload twice converges to the same status, simulation,
// weight and volume.
type IImportUseCase interface {
	ImportProposal(ctx context.Context, payload ImportPayload) (entities.Proposal, error)
}

type ImportUseCase struct {
	uow        interfaces.IUnitOfWork
	proposals  interfaces.IProposalRepository
	catalog    catalogResolver
	sellers    interfaces.ISellerRepository
	lifecycle  ILifecycleUseCase
	matcher    IReferenceMatcher
	reconciler ISimulationReconciler
	locker     interfaces.IImportLocker
	opts       ImportOptions
	now        func() time.Time
}

var _ IImportUseCase = (*ImportUseCase)(nil)

func NewImportUseCase(
	uow interfaces.IUnitOfWork,
	proposals interfaces.IProposalRepository,
	clients interfaces.IClientRepository,
	products interfaces.IProductRepository,
	sellers interfaces.ISellerRepository,
	lifecycle ILifecycleUseCase,
	matcher IReferenceMatcher,
	reconciler ISimulationReconciler,
	locker interfaces.IImportLocker,
	opts ImportOptions,
) *ImportUseCase {
	return &ImportUseCase{
		uow:        uow,
		proposals:  proposals,
		catalog:    newCatalogResolver(clients, products, opts.OverwriteClientFields),
		sellers:    sellers,
		lifecycle:  lifecycle,
		matcher:    matcher,
		reconciler: reconciler,
		locker:     locker,
		opts:       opts,
		now:        utcNow,
	}
}

func (u *ImportUseCase) ImportProposal(ctx context.Context, payload ImportPayload) (entities.Proposal, error) {
	payload.ExternalID = strings.TrimSpace(payload.ExternalID)
	if payload.ExternalID == "" {
		return entities.Proposal{}, ErrInvalidExternalID
	}
	slog.InfoContext(ctx, "[import][usecase] start", "external_id", payload.ExternalID, "items", len(payload.Items))

	unlock, err := u.lock(ctx, payload.ExternalID)
	if err != nil {
		return entities.Proposal{}, err
	}
	defer unlock()

	raw, err := json.Marshal(payload)
	if err != nil {
		return entities.Proposal{}, fmt.Errorf("encode payload: %w", err)
	}

	p, err := u.importOnce(ctx, payload, raw)
	if errors.Is(err, interfaces.ErrDuplicateKey) {
		// Another writer created a conflicting row between our read and write.
		slog.WarnContext(ctx, "[import][usecase] unique conflict, retrying once", "external_id", payload.ExternalID, "err", err)
		p, err = u.importOnce(ctx, payload, raw)
	}
	if err != nil {
		slog.ErrorContext(ctx, "[import][usecase] failed", "external_id", payload.ExternalID, "err", err)
		return entities.Proposal{}, err
	}

	slog.InfoContext(ctx, "[import][usecase] done",
		"external_id", payload.ExternalID, "proposal_id", p.ID, "status", p.Status)
	return p, nil
}

func (u *ImportUseCase) lock(ctx context.Context, externalID string) (func(), error) {
	if u.locker == nil {
		return func() {}, nil
	}
	lockCtx := ctx
	if u.opts.LockTimeout > 0 {
		var cancel context.CancelFunc
		lockCtx, cancel = context.WithTimeout(ctx, u.opts.LockTimeout)
		defer cancel()
	}
	unlock, err := u.locker.Lock(lockCtx, "import:"+string(entities.ProposalOriginExternal)+":"+externalID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrImportLock, err)
	}
	return unlock, nil
}

func (u *ImportUseCase) importOnce(ctx context.Context, payload ImportPayload, raw []byte) (entities.Proposal, error) {
	var result entities.Proposal
	err := withinTransaction(ctx, u.uow, func(ctx context.Context) error {
		existing, err := u.proposals.GetByExternalID(ctx, entities.ProposalOriginExternal, payload.ExternalID)
		if err != nil {
			return err
		}
		isUpdate := existing.ID != ""

		client, err := u.catalog.upsertClient(ctx, payload.Client)
		if err != nil {
			return fmt.Errorf("upsert client: %w", err)
		}

		items, err := u.catalog.buildItems(ctx, payload.Items)
		if err != nil {
			return fmt.Errorf("upsert catalog: %w", err)
		}

		p := existing
		if !isUpdate {
			p = entities.Proposal{
				ID:         uuid.NewString(),
				Origin:     entities.ProposalOriginExternal,
				ExternalID: payload.ExternalID,
				Status:     entities.ProposalStatusPendingSimulation,
				CreatedAt:  u.now(),
			}
		}
		previousItems := matching.FromItems(existing.Items)
		manualBefore := isUpdate && existing.Simulation != nil && existing.Simulation.IsManual()

		if err := u.applyHeader(ctx, &p, payload, client, raw); err != nil {
			return err
		}
		if isUpdate {
			saved, err := u.proposals.Update(ctx, p)
			if err != nil {
				return err
			}
			if saved.ID == "" {
				return ErrProposalNotFound
			}
		} else if _, err := u.proposals.Create(ctx, p); err != nil {
			return err
		}

		p.Items, err = u.proposals.ReplaceItems(ctx, p.ID, items)
		if err != nil {
			return fmt.Errorf("replace items: %w", err)
		}

		if manualBefore && previousItems.Equal(matching.FromItems(p.Items)) {
			slog.InfoContext(ctx, "[import][usecase] items unchanged, manual simulation preserved",
				"external_id", payload.ExternalID, "proposal_id", p.ID)
			note := fmt.Sprintf("reimported from external order (status %s): items unchanged, manual simulation preserved", p.Status)
			if _, err := u.lifecycle.Transition(ctx, &p, p.Status, note, true); err != nil {
				return err
			}
		} else {
			previousStatus := p.Status
			reference, err := u.matcher.FindReference(ctx, p.Items, p.ID)
			if err != nil {
				return err
			}
			outcome, err := u.reconciler.Reconcile(ctx, &p, reference)
			if err != nil {
				return fmt.Errorf("reconcile simulation: %w", err)
			}
			note := outcome.Note
			if isUpdate {
				note = fmt.Sprintf("reimported from external order (previously %s): %s", previousStatus, outcome.Note)
			}
			slog.InfoContext(ctx, "[import][usecase] reconciled",
				"external_id", payload.ExternalID, "proposal_id", p.ID, "outcome", outcome.Kind, "reference_found", reference != nil)
			if _, err := u.lifecycle.Transition(ctx, &p, outcome.TargetStatus(p.Status), note, true); err != nil {
				return err
			}
		}

		result, err = u.proposals.GetByID(ctx, p.ID)
		return err
	})
	if err != nil {
		return entities.Proposal{}, err
	}
	return result, nil
}

// applyHeader copies the scalar fields of the payload onto p: client, owner seller,
// responsible contact, order metadata and the tagged import note.
func (u *ImportUseCase) applyHeader(ctx context.Context, p *entities.Proposal, payload ImportPayload, client entities.Client, raw []byte) error {
	p.ClientID = client.ID
	p.Client = &client
	p.SellerID = payload.SellerID
	p.UpdatedAt = u.now()
	p.ImportPayloadRaw = raw

	var orderNumber, sellerName string
	p.Discount = decimal.NullDecimal{}
	if meta := payload.OrderMeta; meta != nil {
		orderNumber = strings.TrimSpace(meta.Number)
		sellerName = strings.TrimSpace(meta.SellerName)
		p.Discount = meta.Discount
	}
	p.OrderNumber = orderNumber
	p.ExternalSellerName = sellerName
	p.ResponsibleSellerName = sellerName
	p.ResponsibleSellerPhone = ""

	if sellerName != "" && u.sellers != nil {
		seller, err := u.sellers.FindByName(ctx, sellerName)
		if err != nil {
			return fmt.Errorf("resolve seller: %w", err)
		}
		if seller.ID != 0 {
			p.SellerID = seller.ID
			p.ResponsibleSellerName = seller.Name
			p.ResponsibleSellerPhone = seller.Phone
		}
	}

	p.ImportNote = entities.ComposeImportNote(orderNumber, sellerName, payload.Note)
	return nil
}
