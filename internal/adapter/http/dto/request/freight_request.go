package request

import (
	"github.com/shopspring/decimal"

	"fluxo_propostas/internal/usecase"
)

type QuoteRequest struct {
	CarrierID    string          `json:"carrier_id" binding:"required"`
	QuoteNumber  string          `json:"quote_number"`
	Price        decimal.Decimal `json:"price" swaggertype:"number"`
	LeadTimeDays int             `json:"lead_time_days"`
}

// RegisterQuotesRequest records the carriers' answers. Complete moves the proposal
// on to shipment.
type RegisterQuotesRequest struct {
	Quotes   []QuoteRequest `json:"quotes" binding:"required,min=1,dive"`
	Complete bool           `json:"complete"`
}

func (r RegisterQuotesRequest) ToInput() []usecase.QuoteInput {
	out := make([]usecase.QuoteInput, 0, len(r.Quotes))
	for _, q := range r.Quotes {
		out = append(out, usecase.QuoteInput{
			CarrierID:    q.CarrierID,
			QuoteNumber:  q.QuoteNumber,
			Price:        q.Price,
			LeadTimeDays: q.LeadTimeDays,
		})
	}
	return out
}

type ShipmentRequest struct {
	Summary string `json:"summary" binding:"required"`
	Channel string `json:"channel"`
	Link    string `json:"link"`
}

func (r ShipmentRequest) ToInput() usecase.ShipmentInput {
	return usecase.ShipmentInput{Summary: r.Summary, Channel: r.Channel, Link: r.Link}
}
