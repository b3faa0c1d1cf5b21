package entities

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Client is the customer a proposal is addressed to.
//
// Deduplication: by Document when present, else by exact Name.
type Client struct {
	ID        string
	Name      string
	Document  string
	Address   string
	City      string
	Phone     string
	Email     string
	CreatedAt time.Time
}

// Enrich fills fields of c from incoming. Non-empty fields are only replaced when
// overwrite is true; an empty incoming value never clears anything. It reports
// whether c changed.
func (c *Client) Enrich(incoming Client, overwrite bool) bool {
	changed := false
	merge := func(dst *string, src string) {
		src = strings.TrimSpace(src)
		if src == "" || *dst == src {
			return
		}
		if *dst == "" || overwrite {
			*dst = src
			changed = true
		}
	}
	merge(&c.Document, incoming.Document)
	merge(&c.Address, incoming.Address)
	merge(&c.City, incoming.City)
	merge(&c.Phone, incoming.Phone)
	merge(&c.Email, incoming.Email)
	if overwrite {
		merge(&c.Name, incoming.Name)
	}
	return changed
}

// Product is a catalog item. Once its physical dimensions are known every future
// proposal containing its SKU can be measured automatically.
type Product struct {
	ID           string
	SKU          string
	Name         string
	LengthCm     decimal.NullDecimal
	WidthCm      decimal.NullDecimal
	HeightCm     decimal.NullDecimal
	UnitWeightKg decimal.NullDecimal
	UpdatedAt    time.Time
}

func (p Product) HasCompleteMeasurements() bool {
	return p.LengthCm.Valid && p.WidthCm.Valid && p.HeightCm.Valid && p.UnitWeightKg.Valid
}

// ProposalItem is owned by exactly one proposal and replaced wholesale on reimport.
type ProposalItem struct {
	ID         string
	ProposalID string
	ProductID  string
	Quantity   int
	Code       string
	TaxCode    string
	UnitPrice  decimal.NullDecimal
	TotalPrice decimal.NullDecimal
	ImageRef   string

	Product *Product
}

// LineTotal prefers the informed total price and falls back to unit price * quantity.
func (i ProposalItem) LineTotal() decimal.Decimal {
	if i.TotalPrice.Valid {
		return i.TotalPrice.Decimal
	}
	if i.UnitPrice.Valid {
		return i.UnitPrice.Decimal.Mul(decimal.NewFromInt(int64(i.Quantity)))
	}
	return decimal.Zero
}

// SKU returns the catalog SKU of the item, empty when unknown.
func (i ProposalItem) SKU() string {
	if i.Product == nil {
		return ""
	}
	return i.Product.SKU
}

// Seller is an internal user that owns proposals.
type Seller struct {
	ID    int64
	Name  string
	Phone string
}

// Carrier is a freight company proposals are quoted against.
type Carrier struct {
	ID   string
	Name string
}

// Box is a packaging unit used by simulations by volumes.
type Box struct {
	ID        string
	Name      string
	LengthCm  decimal.Decimal
	WidthCm   decimal.Decimal
	HeightCm  decimal.Decimal
	CreatedAt time.Time
}
