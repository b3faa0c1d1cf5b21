package request

import (
	"strings"

	"github.com/shopspring/decimal"

	"fluxo_propostas/internal/usecase"
)

type ClientRequest struct {
	Name     string `json:"name"`
	Document string `json:"document"`
	Address  string `json:"address"`
	City     string `json:"city"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
}

type ItemRequest struct {
	SKU        string              `json:"sku"`
	Code       string              `json:"code"`
	Name       string              `json:"name"`
	Quantity   int                 `json:"quantity"`
	UnitPrice  decimal.NullDecimal `json:"unit_price" swaggertype:"number"`
	TotalPrice decimal.NullDecimal `json:"total_price" swaggertype:"number"`
	TaxCode    string              `json:"tax_code"`
	ImageRef   string              `json:"image_ref"`
}

type OrderMetaRequest struct {
	Number     string              `json:"number"`
	SellerName string              `json:"seller_name"`
	Discount   decimal.NullDecimal `json:"discount" swaggertype:"number"`
}

// ImportRequest is the order payload pushed by the external sales platform.
type ImportRequest struct {
	ExternalID string            `json:"external_id" binding:"required"`
	Client     ClientRequest     `json:"client"`
	Items      []ItemRequest     `json:"items"`
	SellerID   int64             `json:"seller_id"`
	Note       string            `json:"note"`
	OrderMeta  *OrderMetaRequest `json:"order_meta"`
}

func (r ImportRequest) ToPayload() usecase.ImportPayload {
	payload := usecase.ImportPayload{
		ExternalID: strings.TrimSpace(r.ExternalID),
		Client:     r.Client.toImportClient(),
		Items:      toImportItems(r.Items),
		SellerID:   r.SellerID,
		Note:       r.Note,
	}
	if r.OrderMeta != nil {
		payload.OrderMeta = &usecase.ImportOrderMeta{
			Number:     strings.TrimSpace(r.OrderMeta.Number),
			SellerName: strings.TrimSpace(r.OrderMeta.SellerName),
			Discount:   r.OrderMeta.Discount,
		}
	}
	return payload
}

func (c ClientRequest) toImportClient() usecase.ImportClient {
	return usecase.ImportClient{
		Name:     c.Name,
		Document: c.Document,
		Address:  c.Address,
		City:     c.City,
		Phone:    c.Phone,
		Email:    c.Email,
	}
}

func toImportItems(items []ItemRequest) []usecase.ImportItem {
	out := make([]usecase.ImportItem, 0, len(items))
	for _, it := range items {
		out = append(out, usecase.ImportItem{
			SKU:        it.SKU,
			Code:       it.Code,
			Name:       it.Name,
			Quantity:   it.Quantity,
			UnitPrice:  it.UnitPrice,
			TotalPrice: it.TotalPrice,
			TaxCode:    it.TaxCode,
			ImageRef:   it.ImageRef,
		})
	}
	return out
}
