package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"fluxo_propostas/internal/domain/entities"
	"fluxo_propostas/internal/domain/matching"
	"fluxo_propostas/internal/usecase/interfaces"
)

// catalogResolver turns inbound client and item data into stored catalog rows.
type catalogResolver struct {
	clients               interfaces.IClientRepository
	products              interfaces.IProductRepository
	overwriteClientFields bool
	now                   func() time.Time
}

func newCatalogResolver(clients interfaces.IClientRepository, products interfaces.IProductRepository, overwriteClientFields bool) catalogResolver {
	return catalogResolver{
		clients:               clients,
		products:              products,
		overwriteClientFields: overwriteClientFields,
		now:                   utcNow,
	}
}

func (c catalogResolver) upsertClient(ctx context.Context, in ImportClient) (entities.Client, error) {
	incoming := entities.Client{
		Name:     strings.TrimSpace(in.Name),
		Document: strings.TrimSpace(in.Document),
		Address:  strings.TrimSpace(in.Address),
		City:     strings.TrimSpace(in.City),
		Phone:    strings.TrimSpace(in.Phone),
		Email:    strings.TrimSpace(in.Email),
	}
	if incoming.Name == "" {
		incoming.Name = DefaultClientName
	}

	found, err := c.clients.FindByDocumentOrName(ctx, incoming.Document, incoming.Name)
	if err != nil {
		return entities.Client{}, err
	}
	if found.ID == "" {
		incoming.ID = uuid.NewString()
		incoming.CreatedAt = c.now()
		return c.clients.Create(ctx, incoming)
	}
	if !found.Enrich(incoming, c.overwriteClientFields) {
		return found, nil
	}
	return c.clients.Update(ctx, found)
}

// buildItems upserts the catalog entry of every line and returns the new item list.
// Quantities below one are clamped to one.
func (c catalogResolver) buildItems(ctx context.Context, in []ImportItem) ([]entities.ProposalItem, error) {
	items := make([]entities.ProposalItem, 0, len(in))
	for _, it := range in {
		product, err := c.resolveProduct(ctx, it)
		if err != nil {
			return nil, err
		}

		qty := it.Quantity
		if qty <= 0 {
			qty = 1
		}
		total := it.TotalPrice
		if !total.Valid && it.UnitPrice.Valid {
			total = decimal.NewNullDecimal(it.UnitPrice.Decimal.Mul(decimal.NewFromInt(int64(qty))))
		}

		item := entities.ProposalItem{
			ProductID:  product.ID,
			Quantity:   qty,
			Code:       strings.TrimSpace(it.Code),
			TaxCode:    strings.TrimSpace(it.TaxCode),
			UnitPrice:  it.UnitPrice,
			TotalPrice: total,
			ImageRef:   strings.TrimSpace(it.ImageRef),
		}
		if product.ID != "" {
			prod := product
			item.Product = &prod
		}
		items = append(items, item)
	}
	return items, nil
}

// resolveProduct upserts by SKU (falling back to the item code). SKU-less lines
// reuse a SKU-less product with the same name.
func (c catalogResolver) resolveProduct(ctx context.Context, it ImportItem) (entities.Product, error) {
	sku := matching.NormalizeSKU(it.SKU)
	if sku == "" {
		sku = matching.NormalizeSKU(it.Code)
	}
	name := strings.TrimSpace(it.Name)

	if sku != "" {
		if name == "" {
			name = sku
		}
		return c.products.UpsertBySKU(ctx, entities.Product{ID: uuid.NewString(), SKU: sku, Name: name, UpdatedAt: c.now()})
	}
	if name == "" {
		return entities.Product{}, nil
	}

	found, err := c.products.FindUnskuedByName(ctx, name)
	if err != nil {
		return entities.Product{}, err
	}
	if found.ID != "" {
		return found, nil
	}
	return c.products.Create(ctx, entities.Product{ID: uuid.NewString(), Name: name, UpdatedAt: c.now()})
}
