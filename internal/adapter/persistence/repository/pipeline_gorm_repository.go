package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"fluxo_propostas/internal/domain/entities"
	"fluxo_propostas/internal/usecase/interfaces"
)

// SimulationGormRepository keeps the one-to-one simulation row of a proposal.
type SimulationGormRepository struct {
	db *gorm.DB
}

var _ interfaces.ISimulationRepository = (*SimulationGormRepository)(nil)

func NewSimulationGormRepository(db *gorm.DB) *SimulationGormRepository {
	return &SimulationGormRepository{db: db}
}

func (r *SimulationGormRepository) GetByProposalID(ctx context.Context, proposalID string) (entities.Simulation, error) {
	var m simulationModel
	if err := conn(ctx, r.db).Where("proposal_id = ?", proposalID).Take(&m).Error; err != nil {
		if notFound(err) {
			return entities.Simulation{}, nil
		}
		return entities.Simulation{}, err
	}
	return fromSimulationModel(m), nil
}

func (r *SimulationGormRepository) Replace(ctx context.Context, s entities.Simulation) (entities.Simulation, error) {
	if err := r.DeleteByProposalID(ctx, s.ProposalID); err != nil {
		return entities.Simulation{}, err
	}
	s.ID = newID()
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now().UTC()
	}
	m := simulationModel{
		ID:          s.ID,
		ProposalID:  s.ProposalID,
		Type:        string(s.Type),
		Description: s.Description,
		IsAutomatic: s.IsAutomatic,
		CreatedAt:   s.CreatedAt,
	}
	if err := conn(ctx, r.db).Create(&m).Error; err != nil {
		return entities.Simulation{}, translateError(err)
	}
	return s, nil
}

func (r *SimulationGormRepository) DeleteByProposalID(ctx context.Context, proposalID string) error {
	return conn(ctx, r.db).Where("proposal_id = ?", proposalID).Delete(&simulationModel{}).Error
}

// HistoryGormRepository is append-only: it exposes no update or delete.
type HistoryGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IHistoryRepository = (*HistoryGormRepository)(nil)

func NewHistoryGormRepository(db *gorm.DB) *HistoryGormRepository {
	return &HistoryGormRepository{db: db}
}

func (r *HistoryGormRepository) Append(ctx context.Context, e entities.HistoryEntry) (entities.HistoryEntry, error) {
	e.ID = newID()
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
	m := historyModel{
		ID:         e.ID,
		ProposalID: e.ProposalID,
		Status:     string(e.Status),
		Note:       e.Note,
		CreatedAt:  e.CreatedAt,
	}
	if err := conn(ctx, r.db).Create(&m).Error; err != nil {
		return entities.HistoryEntry{}, err
	}
	return e, nil
}

func (r *HistoryGormRepository) ListByProposalID(ctx context.Context, proposalID string) ([]entities.HistoryEntry, error) {
	var rows []historyModel
	if err := conn(ctx, r.db).Where("proposal_id = ?", proposalID).Order("created_at, id").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entities.HistoryEntry, 0, len(rows))
	for _, m := range rows {
		out = append(out, fromHistoryModel(m))
	}
	return out, nil
}

// FreightQuoteGormRepository persists carrier quotes.
type FreightQuoteGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IFreightQuoteRepository = (*FreightQuoteGormRepository)(nil)

func NewFreightQuoteGormRepository(db *gorm.DB) *FreightQuoteGormRepository {
	return &FreightQuoteGormRepository{db: db}
}

func (r *FreightQuoteGormRepository) ListByProposalID(ctx context.Context, proposalID string) ([]entities.FreightQuote, error) {
	var rows []freightQuoteModel
	if err := conn(ctx, r.db).Where("proposal_id = ?", proposalID).Order("created_at, id").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entities.FreightQuote, 0, len(rows))
	for _, m := range rows {
		out = append(out, fromFreightQuoteModel(m))
	}
	return out, nil
}

func (r *FreightQuoteGormRepository) Upsert(ctx context.Context, q entities.FreightQuote) (entities.FreightQuote, error) {
	var existing freightQuoteModel
	err := conn(ctx, r.db).Where("proposal_id = ? AND carrier_id = ?", q.ProposalID, q.CarrierID).Take(&existing).Error
	if err != nil && !notFound(err) {
		return entities.FreightQuote{}, err
	}
	if err == nil {
		q.ID = existing.ID
		q.CreatedAt = existing.CreatedAt
		q.Selected = existing.Selected
	} else {
		q.ID = newID()
		if q.CreatedAt.IsZero() {
			q.CreatedAt = time.Now().UTC()
		}
	}

	m := freightQuoteModel{
		ID:           q.ID,
		ProposalID:   q.ProposalID,
		CarrierID:    q.CarrierID,
		QuoteNumber:  q.QuoteNumber,
		Price:        q.Price,
		LeadTimeDays: q.LeadTimeDays,
		Selected:     q.Selected,
		CreatedAt:    q.CreatedAt,
	}
	err = conn(ctx, r.db).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"quote_number", "price", "lead_time_days"}),
	}).Create(&m).Error
	if err != nil {
		return entities.FreightQuote{}, translateError(err)
	}
	return q, nil
}

func (r *FreightQuoteGormRepository) Select(ctx context.Context, proposalID, quoteID string) (entities.FreightQuote, error) {
	db := conn(ctx, r.db)
	var m freightQuoteModel
	if err := db.Where("id = ? AND proposal_id = ?", quoteID, proposalID).Take(&m).Error; err != nil {
		if notFound(err) {
			return entities.FreightQuote{}, nil
		}
		return entities.FreightQuote{}, err
	}
	if err := db.Model(&freightQuoteModel{}).Where("proposal_id = ?", proposalID).Update("selected", false).Error; err != nil {
		return entities.FreightQuote{}, err
	}
	if err := db.Model(&freightQuoteModel{}).Where("id = ?", quoteID).Update("selected", true).Error; err != nil {
		return entities.FreightQuote{}, err
	}
	m.Selected = true
	return fromFreightQuoteModel(m), nil
}

// ShipmentGormRepository keeps the one-to-one shipment row of a proposal.
type ShipmentGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IShipmentRepository = (*ShipmentGormRepository)(nil)

func NewShipmentGormRepository(db *gorm.DB) *ShipmentGormRepository {
	return &ShipmentGormRepository{db: db}
}

func (r *ShipmentGormRepository) GetByProposalID(ctx context.Context, proposalID string) (entities.Shipment, error) {
	var m shipmentModel
	if err := conn(ctx, r.db).Where("proposal_id = ?", proposalID).Take(&m).Error; err != nil {
		if notFound(err) {
			return entities.Shipment{}, nil
		}
		return entities.Shipment{}, err
	}
	return fromShipmentModel(m), nil
}

func (r *ShipmentGormRepository) Save(ctx context.Context, s entities.Shipment) (entities.Shipment, error) {
	existing, err := r.GetByProposalID(ctx, s.ProposalID)
	if err != nil {
		return entities.Shipment{}, err
	}
	if existing.ID != "" {
		s.ID = existing.ID
	} else {
		s.ID = newID()
	}
	m := shipmentModel{
		ID:         s.ID,
		ProposalID: s.ProposalID,
		Summary:    s.Summary,
		Channel:    s.Channel,
		Sent:       s.Sent,
		SentAt:     s.SentAt,
	}
	if err := conn(ctx, r.db).Save(&m).Error; err != nil {
		return entities.Shipment{}, translateError(err)
	}
	return s, nil
}
