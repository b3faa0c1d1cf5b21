package response

import (
	"time"

	"github.com/shopspring/decimal"

	"fluxo_propostas/internal/domain/entities"
)

type ClientResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Document string `json:"document,omitempty"`
	Address  string `json:"address,omitempty"`
	City     string `json:"city,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Email    string `json:"email,omitempty"`
}

type ItemResponse struct {
	ID        string              `json:"id"`
	ProductID string              `json:"product_id"`
	SKU       string              `json:"sku,omitempty"`
	Name      string              `json:"name"`
	Quantity  int                 `json:"quantity"`
	UnitPrice decimal.NullDecimal `json:"unit_price" swaggertype:"number"`
	LineTotal decimal.Decimal     `json:"line_total" swaggertype:"number"`
	TaxCode   string              `json:"tax_code,omitempty"`
	ImageRef  string              `json:"image_ref,omitempty"`
	Measured  bool                `json:"measured"`
}

type SimulationResponse struct {
	Type        string    `json:"type"`
	Automatic   bool      `json:"automatic"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

type QuoteResponse struct {
	ID           string          `json:"id"`
	CarrierID    string          `json:"carrier_id"`
	CarrierName  string          `json:"carrier_name,omitempty"`
	QuoteNumber  string          `json:"quote_number,omitempty"`
	Price        decimal.Decimal `json:"price" swaggertype:"number"`
	LeadTimeDays int             `json:"lead_time_days"`
	Selected     bool            `json:"selected"`
}

type ShipmentResponse struct {
	Summary string     `json:"summary"`
	Channel string     `json:"channel"`
	Sent    bool       `json:"sent"`
	SentAt  *time.Time `json:"sent_at,omitempty"`
}

type ProposalResponse struct {
	ID                     string              `json:"id"`
	Number                 string              `json:"number"`
	Origin                 string              `json:"origin"`
	ExternalID             string              `json:"external_id,omitempty"`
	Status                 string              `json:"status"`
	SellerID               int64               `json:"seller_id"`
	ResponsibleSellerName  string              `json:"responsible_seller_name,omitempty"`
	ResponsibleSellerPhone string              `json:"responsible_seller_phone,omitempty"`
	OrderNumber            string              `json:"order_number,omitempty"`
	Discount               decimal.NullDecimal `json:"discount" swaggertype:"number"`
	Total                  decimal.Decimal     `json:"total" swaggertype:"number"`
	WeightTotalKg          decimal.NullDecimal `json:"weight_total_kg" swaggertype:"number"`
	VolumeAutomaticM3      decimal.NullDecimal `json:"volume_automatic_m3" swaggertype:"number"`
	VolumeManualM3         decimal.NullDecimal `json:"volume_manual_m3" swaggertype:"number"`
	VolumeIsManual         bool                `json:"volume_is_manual"`
	FinalVolumeM3          decimal.NullDecimal `json:"final_volume_m3" swaggertype:"number"`
	ImportNote             string              `json:"import_note,omitempty"`
	Client                 *ClientResponse     `json:"client,omitempty"`
	Items                  []ItemResponse      `json:"items"`
	Simulation             *SimulationResponse `json:"simulation,omitempty"`
	Quotes                 []QuoteResponse     `json:"quotes"`
	Shipment               *ShipmentResponse   `json:"shipment,omitempty"`
	CreatedAt              time.Time           `json:"created_at"`
	UpdatedAt              time.Time           `json:"updated_at"`
}

func FromProposal(p entities.Proposal) ProposalResponse {
	res := ProposalResponse{
		ID:                     p.ID,
		Number:                 p.DisplayNumber(),
		Origin:                 string(p.Origin),
		ExternalID:             p.ExternalID,
		Status:                 string(p.Status),
		SellerID:               p.SellerID,
		ResponsibleSellerName:  p.ResponsibleSellerName,
		ResponsibleSellerPhone: p.ResponsibleSellerPhone,
		OrderNumber:            p.OrderNumber,
		Discount:               p.Discount,
		Total:                  p.Total(),
		WeightTotalKg:          p.WeightTotalKg,
		VolumeAutomaticM3:      p.VolumeAutomaticM3,
		VolumeManualM3:         p.VolumeManualM3,
		VolumeIsManual:         p.VolumeIsManual,
		FinalVolumeM3:          p.FinalVolumeM3(),
		ImportNote:             p.ImportNote,
		Items:                  make([]ItemResponse, 0, len(p.Items)),
		Quotes:                 make([]QuoteResponse, 0, len(p.Quotes)),
		CreatedAt:              p.CreatedAt,
		UpdatedAt:              p.UpdatedAt,
	}
	if c := p.Client; c != nil {
		res.Client = &ClientResponse{
			ID:       c.ID,
			Name:     c.Name,
			Document: c.Document,
			Address:  c.Address,
			City:     c.City,
			Phone:    c.Phone,
			Email:    c.Email,
		}
	}
	for _, it := range p.Items {
		item := ItemResponse{
			ID:        it.ID,
			ProductID: it.ProductID,
			SKU:       it.SKU(),
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
			LineTotal: it.LineTotal(),
			TaxCode:   it.TaxCode,
			ImageRef:  it.ImageRef,
		}
		if it.Product != nil {
			item.Name = it.Product.Name
			item.Measured = it.Product.HasCompleteMeasurements()
		}
		res.Items = append(res.Items, item)
	}
	if s := p.Simulation; s != nil {
		res.Simulation = &SimulationResponse{
			Type:        string(s.Type),
			Automatic:   s.IsAutomatic,
			Description: s.Description,
			CreatedAt:   s.CreatedAt,
		}
	}
	for _, q := range p.Quotes {
		quote := QuoteResponse{
			ID:           q.ID,
			CarrierID:    q.CarrierID,
			QuoteNumber:  q.QuoteNumber,
			Price:        q.Price,
			LeadTimeDays: q.LeadTimeDays,
			Selected:     q.Selected,
		}
		if q.Carrier != nil {
			quote.CarrierName = q.Carrier.Name
		}
		res.Quotes = append(res.Quotes, quote)
	}
	if s := p.Shipment; s != nil {
		res.Shipment = &ShipmentResponse{
			Summary: s.Summary,
			Channel: s.Channel,
			Sent:    s.Sent,
			SentAt:  s.SentAt,
		}
	}
	return res
}

func FromProposals(ps []entities.Proposal) []ProposalResponse {
	out := make([]ProposalResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromProposal(p))
	}
	return out
}
