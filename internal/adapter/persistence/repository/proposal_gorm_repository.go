package repository

import (
	"context"

	"gorm.io/gorm"

	"fluxo_propostas/internal/domain/entities"
	"fluxo_propostas/internal/usecase/interfaces"
)

// ProposalGormRepository persists the Proposal aggregate in a relational store.
//
// Child rows (items, simulation, quotes, shipment) are owned by their own
// repositories; this one only reads them back when hydrating the aggregate, except
// for items which are replaced here as a whole.
type ProposalGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IProposalRepository = (*ProposalGormRepository)(nil)

func NewProposalGormRepository(db *gorm.DB) *ProposalGormRepository {
	return &ProposalGormRepository{db: db}
}

func (r *ProposalGormRepository) Create(ctx context.Context, p entities.Proposal) (entities.Proposal, error) {
	p.ID = ensureID(p.ID)
	m := toProposalModel(p)
	if err := conn(ctx, r.db).Create(&m).Error; err != nil {
		return entities.Proposal{}, translateError(err)
	}
	return p, nil
}

func (r *ProposalGormRepository) Update(ctx context.Context, p entities.Proposal) (entities.Proposal, error) {
	m := toProposalModel(p)
	res := conn(ctx, r.db).Model(&proposalModel{}).
		Where("id = ?", p.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(&m)
	if res.Error != nil {
		return entities.Proposal{}, translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return entities.Proposal{}, nil
	}
	return p, nil
}

func (r *ProposalGormRepository) GetByID(ctx context.Context, id string) (entities.Proposal, error) {
	return r.first(ctx, conn(ctx, r.db).Where("id = ?", id))
}

func (r *ProposalGormRepository) GetByExternalID(ctx context.Context, origin entities.ProposalOrigin, externalID string) (entities.Proposal, error) {
	return r.first(ctx, conn(ctx, r.db).Where("origin = ? AND external_id = ?", string(origin), externalID))
}

func (r *ProposalGormRepository) List(ctx context.Context, filter interfaces.ProposalFilter) ([]entities.Proposal, error) {
	q := conn(ctx, r.db).Model(&proposalModel{})
	if filter.Status != "" {
		q = q.Where("status = ?", string(filter.Status))
	}
	if filter.Origin != "" {
		q = q.Where("origin = ?", string(filter.Origin))
	}
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		q = q.Offset(filter.Offset)
	}

	var rows []proposalModel
	if err := q.Order("created_at DESC, id DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return r.hydrateAll(ctx, rows)
}

func (r *ProposalGormRepository) FindCandidatesWithSimulation(ctx context.Context, excludeID string, skus []string) ([]entities.Proposal, error) {
	if len(skus) == 0 {
		return nil, nil
	}

	var ids []string
	err := conn(ctx, r.db).Model(&proposalModel{}).
		Joins("JOIN simulations ON simulations.proposal_id = proposals.id").
		Joins("JOIN proposal_items ON proposal_items.proposal_id = proposals.id").
		Joins("JOIN products ON products.id = proposal_items.product_id").
		Where("proposals.id <> ?", excludeID).
		Where("proposals.status <> ?", string(entities.ProposalStatusPendingSimulation)).
		Where("products.sku IN ?", skus).
		Distinct().
		Pluck("proposals.id", &ids).Error
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, nil
	}

	var rows []proposalModel
	if err := conn(ctx, r.db).Where("id IN ?", ids).Order("created_at, id").Find(&rows).Error; err != nil {
		return nil, err
	}
	return r.hydrateAll(ctx, rows)
}

func (r *ProposalGormRepository) ReplaceItems(ctx context.Context, proposalID string, items []entities.ProposalItem) ([]entities.ProposalItem, error) {
	db := conn(ctx, r.db)
	if err := db.Where("proposal_id = ?", proposalID).Delete(&proposalItemModel{}).Error; err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, nil
	}

	out := make([]entities.ProposalItem, len(items))
	rows := make([]proposalItemModel, len(items))
	for i, it := range items {
		it.ID = newID()
		it.ProposalID = proposalID
		if it.Product != nil && it.ProductID == "" {
			it.ProductID = it.Product.ID
		}
		out[i] = it
		rows[i] = toItemModel(it, i)
	}
	if err := db.Create(&rows).Error; err != nil {
		return nil, translateError(err)
	}
	return out, nil
}

func (r *ProposalGormRepository) first(ctx context.Context, q *gorm.DB) (entities.Proposal, error) {
	var m proposalModel
	if err := q.Take(&m).Error; err != nil {
		if notFound(err) {
			return entities.Proposal{}, nil
		}
		return entities.Proposal{}, err
	}
	return r.hydrate(ctx, m)
}

func (r *ProposalGormRepository) hydrateAll(ctx context.Context, rows []proposalModel) ([]entities.Proposal, error) {
	out := make([]entities.Proposal, 0, len(rows))
	for _, m := range rows {
		p, err := r.hydrate(ctx, m)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

// hydrate loads the client, items with their products, simulation, quotes with
// carriers and shipment of m.
func (r *ProposalGormRepository) hydrate(ctx context.Context, m proposalModel) (entities.Proposal, error) {
	db := conn(ctx, r.db)
	p := fromProposalModel(m)

	if m.ClientID != "" {
		var c clientModel
		err := db.Where("id = ?", m.ClientID).Take(&c).Error
		switch {
		case err == nil:
			client := fromClientModel(c)
			p.Client = &client
		case !notFound(err):
			return entities.Proposal{}, err
		}
	}

	var itemRows []proposalItemModel
	if err := db.Where("proposal_id = ?", p.ID).Order("position, id").Find(&itemRows).Error; err != nil {
		return entities.Proposal{}, err
	}
	productIDs := make([]string, 0, len(itemRows))
	for _, it := range itemRows {
		if it.ProductID != "" {
			productIDs = append(productIDs, it.ProductID)
		}
	}
	products := map[string]entities.Product{}
	if len(productIDs) > 0 {
		var productRows []productModel
		if err := db.Where("id IN ?", productIDs).Find(&productRows).Error; err != nil {
			return entities.Proposal{}, err
		}
		for _, pm := range productRows {
			products[pm.ID] = fromProductModel(pm)
		}
	}
	for _, row := range itemRows {
		it := fromItemModel(row)
		if prod, ok := products[row.ProductID]; ok {
			it.Product = &prod
		}
		p.Items = append(p.Items, it)
	}

	var sim simulationModel
	err := db.Where("proposal_id = ?", p.ID).Take(&sim).Error
	switch {
	case err == nil:
		s := fromSimulationModel(sim)
		p.Simulation = &s
	case !notFound(err):
		return entities.Proposal{}, err
	}

	var quoteRows []freightQuoteModel
	if err := db.Where("proposal_id = ?", p.ID).Order("created_at, id").Find(&quoteRows).Error; err != nil {
		return entities.Proposal{}, err
	}
	if len(quoteRows) > 0 {
		carrierIDs := make([]string, 0, len(quoteRows))
		for _, q := range quoteRows {
			carrierIDs = append(carrierIDs, q.CarrierID)
		}
		var carrierRows []carrierModel
		if err := db.Where("id IN ?", carrierIDs).Find(&carrierRows).Error; err != nil {
			return entities.Proposal{}, err
		}
		carriers := make(map[string]entities.Carrier, len(carrierRows))
		for _, c := range carrierRows {
			carriers[c.ID] = entities.Carrier{ID: c.ID, Name: c.Name}
		}
		for _, row := range quoteRows {
			q := fromFreightQuoteModel(row)
			if c, ok := carriers[row.CarrierID]; ok {
				q.Carrier = &c
			}
			p.Quotes = append(p.Quotes, q)
		}
	}

	var ship shipmentModel
	err = db.Where("proposal_id = ?", p.ID).Take(&ship).Error
	switch {
	case err == nil:
		s := fromShipmentModel(ship)
		p.Shipment = &s
	case !notFound(err):
		return entities.Proposal{}, err
	}

	return p, nil
}
