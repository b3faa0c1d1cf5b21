package entities

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// ProposalStatus represents the lifecycle of a commercial proposal.
//
// Values are persisted as the legacy lowercase identifiers so existing rows and
// downstream consumers keep working.
type ProposalStatus string

const (
	ProposalStatusPendingSimulation ProposalStatus = "pendente_simulacao"
	ProposalStatusPendingQuote      ProposalStatus = "pendente_cotacao"
	ProposalStatusPendingShipment   ProposalStatus = "pendente_envio"
	ProposalStatusCompleted         ProposalStatus = "concluida"
	ProposalStatusCancelled         ProposalStatus = "cancelada"
)

// allowedTransitions lists the non-forced moves of the state machine.
// Cancellation is handled separately: any non-terminal status may be cancelled.
var allowedTransitions = map[ProposalStatus][]ProposalStatus{
	ProposalStatusPendingSimulation: {ProposalStatusPendingQuote},
	ProposalStatusPendingQuote:      {ProposalStatusPendingShipment, ProposalStatusPendingSimulation},
	ProposalStatusPendingShipment:   {ProposalStatusCompleted, ProposalStatusPendingQuote},
}

func (s ProposalStatus) Valid() bool {
	switch s {
	case ProposalStatusPendingSimulation, ProposalStatusPendingQuote, ProposalStatusPendingShipment,
		ProposalStatusCompleted, ProposalStatusCancelled:
		return true
	}
	return false
}

func (s ProposalStatus) IsTerminal() bool {
	return s == ProposalStatusCompleted || s == ProposalStatusCancelled
}

// CanTransitionTo reports whether a regular (non-forced) transition is allowed.
func (s ProposalStatus) CanTransitionTo(next ProposalStatus) bool {
	if s.IsTerminal() || !next.Valid() {
		return false
	}
	if next == ProposalStatusCancelled {
		return true
	}
	for _, allowed := range allowedTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type ProposalOrigin string

const (
	ProposalOriginManual   ProposalOrigin = "MANUAL"
	ProposalOriginExternal ProposalOrigin = "EXTERNAL"
)

// Proposal is the aggregate root of the pipeline.
//
// Storage model (relational):
//   - PK: id
//   - UNIQUE (origin, external_id)
//
// Numeric fields:
//   - weight and volumes are optional, decimal.NullDecimal.Valid=false means "unknown".
//   - the final volume used for quoting is FinalVolumeM3().
type Proposal struct {
	ID         string
	Origin     ProposalOrigin
	ExternalID string
	Status     ProposalStatus

	ClientID string
	SellerID int64

	ResponsibleSellerName  string
	ResponsibleSellerPhone string
	OrderNumber            string
	ExternalSellerName     string

	Discount          decimal.NullDecimal
	WeightTotalKg     decimal.NullDecimal
	VolumeAutomaticM3 decimal.NullDecimal
	VolumeManualM3    decimal.NullDecimal
	VolumeIsManual    bool

	ImportNote       string
	ImportPayloadRaw json.RawMessage

	CreatedAt time.Time
	UpdatedAt time.Time

	Client     *Client
	Items      []ProposalItem
	Simulation *Simulation
	Quotes     []FreightQuote
	Shipment   *Shipment
}

// FinalVolumeM3 returns the manual override when it takes precedence, else the
// automatic volume.
func (p Proposal) FinalVolumeM3() decimal.NullDecimal {
	if p.VolumeIsManual && p.VolumeManualM3.Valid {
		return p.VolumeManualM3
	}
	return p.VolumeAutomaticM3
}

// Total is the sum of item totals minus the discount. It is not floored at zero.
func (p Proposal) Total() decimal.Decimal {
	total := decimal.Zero
	for _, it := range p.Items {
		total = total.Add(it.LineTotal())
	}
	if p.Discount.Valid && p.Discount.Decimal.IsPositive() {
		total = total.Sub(p.Discount.Decimal)
	}
	return total
}

// DisplayNumber is the external order number when known, else the internal id.
func (p Proposal) DisplayNumber() string {
	if p.OrderNumber != "" {
		return p.OrderNumber
	}
	if n := NoteTagValue(p.ImportNote, NoteTagOrderNumber); n != "" {
		return n
	}
	return p.ID
}

func (p Proposal) HasSimulation() bool {
	return p.Simulation != nil
}

// ClearMeasurements drops every computed weight/volume value.
func (p *Proposal) ClearMeasurements() {
	p.WeightTotalKg = decimal.NullDecimal{}
	p.VolumeAutomaticM3 = decimal.NullDecimal{}
	p.VolumeManualM3 = decimal.NullDecimal{}
	p.VolumeIsManual = false
}

// CopyMeasurementsFrom copies weight and volume values verbatim.
func (p *Proposal) CopyMeasurementsFrom(src Proposal) {
	p.WeightTotalKg = src.WeightTotalKg
	p.VolumeAutomaticM3 = src.VolumeAutomaticM3
	p.VolumeManualM3 = src.VolumeManualM3
	p.VolumeIsManual = src.VolumeIsManual
}

// SelectedQuote returns the selected freight quote, if any.
func (p Proposal) SelectedQuote() *FreightQuote {
	for i := range p.Quotes {
		if p.Quotes[i].Selected {
			return &p.Quotes[i]
		}
	}
	return nil
}
