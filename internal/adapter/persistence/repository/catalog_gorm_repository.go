package repository

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"fluxo_propostas/internal/domain/entities"
	"fluxo_propostas/internal/usecase/interfaces"
)

// ClientGormRepository persists clients.
type ClientGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IClientRepository = (*ClientGormRepository)(nil)

func NewClientGormRepository(db *gorm.DB) *ClientGormRepository {
	return &ClientGormRepository{db: db}
}

func (r *ClientGormRepository) Create(ctx context.Context, c entities.Client) (entities.Client, error) {
	c.ID = ensureID(c.ID)
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}
	m := toClientModel(c)
	if err := conn(ctx, r.db).Create(&m).Error; err != nil {
		return entities.Client{}, translateError(err)
	}
	return c, nil
}

func (r *ClientGormRepository) Update(ctx context.Context, c entities.Client) (entities.Client, error) {
	m := toClientModel(c)
	res := conn(ctx, r.db).Model(&clientModel{}).Where("id = ?", c.ID).Select("*").Omit("id", "created_at").Updates(&m)
	if res.Error != nil {
		return entities.Client{}, translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return entities.Client{}, nil
	}
	return c, nil
}

func (r *ClientGormRepository) GetByID(ctx context.Context, id string) (entities.Client, error) {
	return r.take(conn(ctx, r.db).Where("id = ?", id))
}

// FindByDocumentOrName resolves by document first. When the document is unknown it
// falls back to a client with the same name that has no document yet, so a client
// first seen without a tax id is enriched rather than duplicated.
func (r *ClientGormRepository) FindByDocumentOrName(ctx context.Context, document, name string) (entities.Client, error) {
	name = strings.TrimSpace(name)
	if document = strings.TrimSpace(document); document != "" {
		c, err := r.take(conn(ctx, r.db).Where("document = ?", document).Order("created_at, id"))
		if err != nil || c.ID != "" || name == "" {
			return c, err
		}
		return r.take(conn(ctx, r.db).Where("name = ? AND (document = '' OR document IS NULL)", name).Order("created_at, id"))
	}
	if name == "" {
		return entities.Client{}, nil
	}
	return r.take(conn(ctx, r.db).Where("name = ?", name).Order("created_at, id"))
}

func (r *ClientGormRepository) take(q *gorm.DB) (entities.Client, error) {
	var m clientModel
	if err := q.Take(&m).Error; err != nil {
		if notFound(err) {
			return entities.Client{}, nil
		}
		return entities.Client{}, err
	}
	return fromClientModel(m), nil
}

// ProductGormRepository persists the product catalog.
type ProductGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IProductRepository = (*ProductGormRepository)(nil)

func NewProductGormRepository(db *gorm.DB) *ProductGormRepository {
	return &ProductGormRepository{db: db}
}

func (r *ProductGormRepository) GetByID(ctx context.Context, id string) (entities.Product, error) {
	return r.take(conn(ctx, r.db).Where("id = ?", id))
}

func (r *ProductGormRepository) GetBySKU(ctx context.Context, sku string) (entities.Product, error) {
	if sku == "" {
		return entities.Product{}, nil
	}
	return r.take(conn(ctx, r.db).Where("sku = ?", sku))
}

func (r *ProductGormRepository) FindUnskuedByName(ctx context.Context, name string) (entities.Product, error) {
	if name == "" {
		return entities.Product{}, nil
	}
	return r.take(conn(ctx, r.db).Where("sku IS NULL AND name = ?", name).Order("id"))
}

func (r *ProductGormRepository) Create(ctx context.Context, p entities.Product) (entities.Product, error) {
	p.ID = ensureID(p.ID)
	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = time.Now().UTC()
	}
	m := toProductModel(p)
	if err := conn(ctx, r.db).Create(&m).Error; err != nil {
		return entities.Product{}, translateError(err)
	}
	return p, nil
}

func (r *ProductGormRepository) Update(ctx context.Context, p entities.Product) (entities.Product, error) {
	p.UpdatedAt = time.Now().UTC()
	m := toProductModel(p)
	res := conn(ctx, r.db).Model(&productModel{}).Where("id = ?", p.ID).Select("*").Omit("id").Updates(&m)
	if res.Error != nil {
		return entities.Product{}, translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return entities.Product{}, nil
	}
	return p, nil
}

func (r *ProductGormRepository) UpsertBySKU(ctx context.Context, p entities.Product) (entities.Product, error) {
	existing, err := r.GetBySKU(ctx, p.SKU)
	if err != nil {
		return entities.Product{}, err
	}
	if existing.ID == "" {
		return r.Create(ctx, p)
	}

	changed := false
	if name := strings.TrimSpace(p.Name); name != "" && name != existing.Name {
		existing.Name = name
		changed = true
	}
	if mergeMeasurements(&existing, p) {
		changed = true
	}
	if !changed {
		return existing, nil
	}
	return r.Update(ctx, existing)
}

// mergeMeasurements copies the dimensions and weight known by incoming into dst.
// Unknown incoming values never clear a stored one.
func mergeMeasurements(dst *entities.Product, incoming entities.Product) bool {
	changed := false
	merge := func(d *decimal.NullDecimal, s decimal.NullDecimal) {
		if s.Valid && (!d.Valid || !d.Decimal.Equal(s.Decimal)) {
			*d = s
			changed = true
		}
	}
	merge(&dst.LengthCm, incoming.LengthCm)
	merge(&dst.WidthCm, incoming.WidthCm)
	merge(&dst.HeightCm, incoming.HeightCm)
	merge(&dst.UnitWeightKg, incoming.UnitWeightKg)
	return changed
}

func (r *ProductGormRepository) take(q *gorm.DB) (entities.Product, error) {
	var m productModel
	if err := q.Take(&m).Error; err != nil {
		if notFound(err) {
			return entities.Product{}, nil
		}
		return entities.Product{}, err
	}
	return fromProductModel(m), nil
}

// SellerGormRepository reads the sellers owning proposals.
type SellerGormRepository struct {
	db *gorm.DB
}

var _ interfaces.ISellerRepository = (*SellerGormRepository)(nil)

func NewSellerGormRepository(db *gorm.DB) *SellerGormRepository {
	return &SellerGormRepository{db: db}
}

func (r *SellerGormRepository) GetByID(ctx context.Context, id int64) (entities.Seller, error) {
	return r.take(conn(ctx, r.db).Where("id = ?", id))
}

// FindByName matches case-insensitively on the trimmed name.
func (r *SellerGormRepository) FindByName(ctx context.Context, name string) (entities.Seller, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return entities.Seller{}, nil
	}
	return r.take(conn(ctx, r.db).Where("LOWER(name) = ?", strings.ToLower(name)).Order("id"))
}

// Create is used by seeding and tests.
func (r *SellerGormRepository) Create(ctx context.Context, s entities.Seller) (entities.Seller, error) {
	m := sellerModel{ID: s.ID, Name: s.Name, Phone: s.Phone}
	if err := conn(ctx, r.db).Create(&m).Error; err != nil {
		return entities.Seller{}, translateError(err)
	}
	return entities.Seller{ID: m.ID, Name: m.Name, Phone: m.Phone}, nil
}

func (r *SellerGormRepository) take(q *gorm.DB) (entities.Seller, error) {
	var m sellerModel
	if err := q.Take(&m).Error; err != nil {
		if notFound(err) {
			return entities.Seller{}, nil
		}
		return entities.Seller{}, err
	}
	return entities.Seller{ID: m.ID, Name: m.Name, Phone: m.Phone}, nil
}

// CarrierGormRepository reads the carrier catalog.
type CarrierGormRepository struct {
	db *gorm.DB
}

var _ interfaces.ICarrierRepository = (*CarrierGormRepository)(nil)

func NewCarrierGormRepository(db *gorm.DB) *CarrierGormRepository {
	return &CarrierGormRepository{db: db}
}

func (r *CarrierGormRepository) GetByID(ctx context.Context, id string) (entities.Carrier, error) {
	var m carrierModel
	if err := conn(ctx, r.db).Where("id = ?", id).Take(&m).Error; err != nil {
		if notFound(err) {
			return entities.Carrier{}, nil
		}
		return entities.Carrier{}, err
	}
	return entities.Carrier{ID: m.ID, Name: m.Name}, nil
}

func (r *CarrierGormRepository) List(ctx context.Context) ([]entities.Carrier, error) {
	var rows []carrierModel
	if err := conn(ctx, r.db).Order("name").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entities.Carrier, 0, len(rows))
	for _, m := range rows {
		out = append(out, entities.Carrier{ID: m.ID, Name: m.Name})
	}
	return out, nil
}

// EnsureByName returns the carrier called name, creating it when missing.
func (r *CarrierGormRepository) EnsureByName(ctx context.Context, name string) (entities.Carrier, error) {
	var m carrierModel
	err := conn(ctx, r.db).Where("name = ?", name).Take(&m).Error
	if err == nil {
		return entities.Carrier{ID: m.ID, Name: m.Name}, nil
	}
	if !notFound(err) {
		return entities.Carrier{}, err
	}
	m = carrierModel{ID: newID(), Name: name}
	if err := conn(ctx, r.db).Create(&m).Error; err != nil {
		return entities.Carrier{}, translateError(err)
	}
	return entities.Carrier{ID: m.ID, Name: m.Name}, nil
}

// BoxGormRepository reads the packaging catalog.
type BoxGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IBoxRepository = (*BoxGormRepository)(nil)

func NewBoxGormRepository(db *gorm.DB) *BoxGormRepository {
	return &BoxGormRepository{db: db}
}

func (r *BoxGormRepository) GetByID(ctx context.Context, id string) (entities.Box, error) {
	var m boxModel
	if err := conn(ctx, r.db).Where("id = ?", id).Take(&m).Error; err != nil {
		if notFound(err) {
			return entities.Box{}, nil
		}
		return entities.Box{}, err
	}
	return fromBoxModel(m), nil
}

func (r *BoxGormRepository) List(ctx context.Context) ([]entities.Box, error) {
	var rows []boxModel
	if err := conn(ctx, r.db).Order("name, id").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entities.Box, 0, len(rows))
	for _, m := range rows {
		out = append(out, fromBoxModel(m))
	}
	return out, nil
}

// Create is used by seeding and tests.
func (r *BoxGormRepository) Create(ctx context.Context, b entities.Box) (entities.Box, error) {
	b.ID = ensureID(b.ID)
	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now().UTC()
	}
	m := boxModel{ID: b.ID, Name: b.Name, LengthCm: b.LengthCm, WidthCm: b.WidthCm, HeightCm: b.HeightCm, CreatedAt: b.CreatedAt}
	if err := conn(ctx, r.db).Create(&m).Error; err != nil {
		return entities.Box{}, translateError(err)
	}
	return b, nil
}
