package repository

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	"fluxo_propostas/internal/domain/entities"
)

// Relational schema.
//
//   - proposals: UNIQUE (origin, external_id); external_id is NULL for manual proposals
//     so the index never collides on them.
//   - products: UNIQUE sku; sku is NULL for SKU-less catalog entries.
//   - simulations, shipments: UNIQUE proposal_id (one-to-one).
//   - freight_quotes: UNIQUE (proposal_id, carrier_id).

type proposalModel struct {
	ID         string  `gorm:"primaryKey;size:36"`
	Origin     string  `gorm:"size:16;not null;uniqueIndex:ux_proposals_origin_external,priority:1"`
	ExternalID *string `gorm:"size:64;uniqueIndex:ux_proposals_origin_external,priority:2"`
	Status     string  `gorm:"size:32;not null;index"`

	ClientID string `gorm:"size:36;index"`
	SellerID int64  `gorm:"index"`

	ResponsibleSellerName  string `gorm:"size:255"`
	ResponsibleSellerPhone string `gorm:"size:64"`
	OrderNumber            string `gorm:"size:64"`
	ExternalSellerName     string `gorm:"size:255"`

	Discount          decimal.NullDecimal `gorm:"type:decimal(14,2)"`
	WeightTotalKg     decimal.NullDecimal `gorm:"type:decimal(14,3)"`
	VolumeAutomaticM3 decimal.NullDecimal `gorm:"type:decimal(14,4)"`
	VolumeManualM3    decimal.NullDecimal `gorm:"type:decimal(14,4)"`
	VolumeIsManual    bool                `gorm:"not null;default:false"`

	ImportNote       string `gorm:"type:text"`
	ImportPayloadRaw datatypes.JSON

	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time
}

func (proposalModel) TableName() string { return "proposals" }

type clientModel struct {
	ID        string `gorm:"primaryKey;size:36"`
	Name      string `gorm:"size:255;not null;index"`
	Document  string `gorm:"size:32;index"`
	Address   string `gorm:"size:512"`
	City      string `gorm:"size:128"`
	Phone     string `gorm:"size:64"`
	Email     string `gorm:"size:255"`
	CreatedAt time.Time
}

func (clientModel) TableName() string { return "clients" }

type productModel struct {
	ID           string              `gorm:"primaryKey;size:36"`
	SKU          *string             `gorm:"size:64;uniqueIndex"`
	Name         string              `gorm:"size:512;index"`
	LengthCm     decimal.NullDecimal `gorm:"type:decimal(12,2)"`
	WidthCm      decimal.NullDecimal `gorm:"type:decimal(12,2)"`
	HeightCm     decimal.NullDecimal `gorm:"type:decimal(12,2)"`
	UnitWeightKg decimal.NullDecimal `gorm:"type:decimal(12,3)"`
	UpdatedAt    time.Time
}

func (productModel) TableName() string { return "products" }

type proposalItemModel struct {
	ID         string              `gorm:"primaryKey;size:36"`
	ProposalID string              `gorm:"size:36;not null;index"`
	ProductID  string              `gorm:"size:36;index"`
	Position   int                 `gorm:"not null;default:0"`
	Quantity   int                 `gorm:"not null"`
	Code       string              `gorm:"size:64"`
	TaxCode    string              `gorm:"size:32"`
	UnitPrice  decimal.NullDecimal `gorm:"type:decimal(14,2)"`
	TotalPrice decimal.NullDecimal `gorm:"type:decimal(14,2)"`
	ImageRef   string              `gorm:"size:512"`
}

func (proposalItemModel) TableName() string { return "proposal_items" }

type simulationModel struct {
	ID          string `gorm:"primaryKey;size:36"`
	ProposalID  string `gorm:"size:36;not null;uniqueIndex"`
	Type        string `gorm:"size:16;not null"`
	Description string `gorm:"type:text"`
	IsAutomatic bool   `gorm:"not null;default:false"`
	CreatedAt   time.Time
}

func (simulationModel) TableName() string { return "simulations" }

type historyModel struct {
	ID         string    `gorm:"primaryKey;size:36"`
	ProposalID string    `gorm:"size:36;not null;index"`
	Status     string    `gorm:"size:32;not null"`
	Note       string    `gorm:"type:text"`
	CreatedAt  time.Time `gorm:"index"`
}

func (historyModel) TableName() string { return "proposal_history" }

type freightQuoteModel struct {
	ID           string          `gorm:"primaryKey;size:36"`
	ProposalID   string          `gorm:"size:36;not null;uniqueIndex:ux_quotes_proposal_carrier,priority:1"`
	CarrierID    string          `gorm:"size:36;not null;uniqueIndex:ux_quotes_proposal_carrier,priority:2"`
	QuoteNumber  string          `gorm:"size:64"`
	Price        decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	LeadTimeDays int
	Selected     bool `gorm:"not null;default:false"`
	CreatedAt    time.Time
}

func (freightQuoteModel) TableName() string { return "freight_quotes" }

type shipmentModel struct {
	ID         string `gorm:"primaryKey;size:36"`
	ProposalID string `gorm:"size:36;not null;uniqueIndex"`
	Summary    string `gorm:"type:text"`
	Channel    string `gorm:"size:32"`
	Sent       bool   `gorm:"not null;default:false"`
	SentAt     *time.Time
}

func (shipmentModel) TableName() string { return "shipments" }

type sellerModel struct {
	ID    int64  `gorm:"primaryKey;autoIncrement"`
	Name  string `gorm:"size:255;not null;index"`
	Phone string `gorm:"size:64"`
}

func (sellerModel) TableName() string { return "sellers" }

type carrierModel struct {
	ID   string `gorm:"primaryKey;size:36"`
	Name string `gorm:"size:255;not null;uniqueIndex"`
}

func (carrierModel) TableName() string { return "carriers" }

type boxModel struct {
	ID        string          `gorm:"primaryKey;size:36"`
	Name      string          `gorm:"size:255;not null"`
	LengthCm  decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	WidthCm   decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	HeightCm  decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	CreatedAt time.Time
}

func (boxModel) TableName() string { return "boxes" }

// allModels is the automigration set, parents first.
func allModels() []any {
	return []any{
		&sellerModel{},
		&carrierModel{},
		&boxModel{},
		&clientModel{},
		&productModel{},
		&proposalModel{},
		&proposalItemModel{},
		&simulationModel{},
		&historyModel{},
		&freightQuoteModel{},
		&shipmentModel{},
	}
}

func toProposalModel(p entities.Proposal) proposalModel {
	var externalID *string
	if p.ExternalID != "" {
		id := p.ExternalID
		externalID = &id
	}
	var raw datatypes.JSON
	if len(p.ImportPayloadRaw) > 0 {
		raw = datatypes.JSON(p.ImportPayloadRaw)
	}
	return proposalModel{
		ID:                     p.ID,
		Origin:                 string(p.Origin),
		ExternalID:             externalID,
		Status:                 string(p.Status),
		ClientID:               p.ClientID,
		SellerID:               p.SellerID,
		ResponsibleSellerName:  p.ResponsibleSellerName,
		ResponsibleSellerPhone: p.ResponsibleSellerPhone,
		OrderNumber:            p.OrderNumber,
		ExternalSellerName:     p.ExternalSellerName,
		Discount:               p.Discount,
		WeightTotalKg:          p.WeightTotalKg,
		VolumeAutomaticM3:      p.VolumeAutomaticM3,
		VolumeManualM3:         p.VolumeManualM3,
		VolumeIsManual:         p.VolumeIsManual,
		ImportNote:             p.ImportNote,
		ImportPayloadRaw:       raw,
		CreatedAt:              p.CreatedAt,
		UpdatedAt:              p.UpdatedAt,
	}
}

func fromProposalModel(m proposalModel) entities.Proposal {
	p := entities.Proposal{
		ID:                     m.ID,
		Origin:                 entities.ProposalOrigin(m.Origin),
		Status:                 entities.ProposalStatus(m.Status),
		ClientID:               m.ClientID,
		SellerID:               m.SellerID,
		ResponsibleSellerName:  m.ResponsibleSellerName,
		ResponsibleSellerPhone: m.ResponsibleSellerPhone,
		OrderNumber:            m.OrderNumber,
		ExternalSellerName:     m.ExternalSellerName,
		Discount:               m.Discount,
		WeightTotalKg:          m.WeightTotalKg,
		VolumeAutomaticM3:      m.VolumeAutomaticM3,
		VolumeManualM3:         m.VolumeManualM3,
		VolumeIsManual:         m.VolumeIsManual,
		ImportNote:             m.ImportNote,
		CreatedAt:              m.CreatedAt,
		UpdatedAt:              m.UpdatedAt,
	}
	if m.ExternalID != nil {
		p.ExternalID = *m.ExternalID
	}
	if len(m.ImportPayloadRaw) > 0 {
		p.ImportPayloadRaw = json.RawMessage(m.ImportPayloadRaw)
	}
	return p
}

func toClientModel(c entities.Client) clientModel {
	return clientModel{
		ID:        c.ID,
		Name:      c.Name,
		Document:  c.Document,
		Address:   c.Address,
		City:      c.City,
		Phone:     c.Phone,
		Email:     c.Email,
		CreatedAt: c.CreatedAt,
	}
}

func fromClientModel(m clientModel) entities.Client {
	return entities.Client{
		ID:        m.ID,
		Name:      m.Name,
		Document:  m.Document,
		Address:   m.Address,
		City:      m.City,
		Phone:     m.Phone,
		Email:     m.Email,
		CreatedAt: m.CreatedAt,
	}
}

func toProductModel(p entities.Product) productModel {
	var sku *string
	if p.SKU != "" {
		s := p.SKU
		sku = &s
	}
	return productModel{
		ID:           p.ID,
		SKU:          sku,
		Name:         p.Name,
		LengthCm:     p.LengthCm,
		WidthCm:      p.WidthCm,
		HeightCm:     p.HeightCm,
		UnitWeightKg: p.UnitWeightKg,
		UpdatedAt:    p.UpdatedAt,
	}
}

func fromProductModel(m productModel) entities.Product {
	p := entities.Product{
		ID:           m.ID,
		Name:         m.Name,
		LengthCm:     m.LengthCm,
		WidthCm:      m.WidthCm,
		HeightCm:     m.HeightCm,
		UnitWeightKg: m.UnitWeightKg,
		UpdatedAt:    m.UpdatedAt,
	}
	if m.SKU != nil {
		p.SKU = *m.SKU
	}
	return p
}

func toItemModel(it entities.ProposalItem, position int) proposalItemModel {
	return proposalItemModel{
		ID:         it.ID,
		ProposalID: it.ProposalID,
		ProductID:  it.ProductID,
		Position:   position,
		Quantity:   it.Quantity,
		Code:       it.Code,
		TaxCode:    it.TaxCode,
		UnitPrice:  it.UnitPrice,
		TotalPrice: it.TotalPrice,
		ImageRef:   it.ImageRef,
	}
}

func fromItemModel(m proposalItemModel) entities.ProposalItem {
	return entities.ProposalItem{
		ID:         m.ID,
		ProposalID: m.ProposalID,
		ProductID:  m.ProductID,
		Quantity:   m.Quantity,
		Code:       m.Code,
		TaxCode:    m.TaxCode,
		UnitPrice:  m.UnitPrice,
		TotalPrice: m.TotalPrice,
		ImageRef:   m.ImageRef,
	}
}

func fromSimulationModel(m simulationModel) entities.Simulation {
	return entities.Simulation{
		ID:          m.ID,
		ProposalID:  m.ProposalID,
		Type:        entities.SimulationType(m.Type),
		Description: m.Description,
		IsAutomatic: m.IsAutomatic,
		CreatedAt:   m.CreatedAt,
	}
}

func fromHistoryModel(m historyModel) entities.HistoryEntry {
	return entities.HistoryEntry{
		ID:         m.ID,
		ProposalID: m.ProposalID,
		Status:     entities.ProposalStatus(m.Status),
		Note:       m.Note,
		CreatedAt:  m.CreatedAt,
	}
}

func fromFreightQuoteModel(m freightQuoteModel) entities.FreightQuote {
	return entities.FreightQuote{
		ID:           m.ID,
		ProposalID:   m.ProposalID,
		CarrierID:    m.CarrierID,
		QuoteNumber:  m.QuoteNumber,
		Price:        m.Price,
		LeadTimeDays: m.LeadTimeDays,
		Selected:     m.Selected,
		CreatedAt:    m.CreatedAt,
	}
}

func fromShipmentModel(m shipmentModel) entities.Shipment {
	return entities.Shipment{
		ID:         m.ID,
		ProposalID: m.ProposalID,
		Summary:    m.Summary,
		Channel:    m.Channel,
		Sent:       m.Sent,
		SentAt:     m.SentAt,
	}
}

func fromBoxModel(m boxModel) entities.Box {
	return entities.Box{
		ID:        m.ID,
		Name:      m.Name,
		LengthCm:  m.LengthCm,
		WidthCm:   m.WidthCm,
		HeightCm:  m.HeightCm,
		CreatedAt: m.CreatedAt,
	}
}
