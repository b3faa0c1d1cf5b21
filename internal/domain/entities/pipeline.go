package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type SimulationType string

const (
	SimulationTypeManual     SimulationType = "manual"
	SimulationTypeVolumetric SimulationType = "volumes"
)

// Simulation is one-to-one with a proposal. It is replaced (delete + create) when its
// source data changes, never patched.
//
// IsAutomatic is true when the system produced it (catalog computation or a copy
// selected by the reference matcher) and false when a human entered it.
type Simulation struct {
	ID          string
	ProposalID  string
	Type        SimulationType
	Description string
	IsAutomatic bool
	CreatedAt   time.Time
}

// IsManual reports whether a human supplied this simulation.
func (s Simulation) IsManual() bool {
	return !s.IsAutomatic
}

type FreightQuote struct {
	ID           string
	ProposalID   string
	CarrierID    string
	QuoteNumber  string
	Price        decimal.Decimal
	LeadTimeDays int
	Selected     bool
	CreatedAt    time.Time

	Carrier *Carrier
}

// HistoryEntry is an append-only record of a status transition.
type HistoryEntry struct {
	ID         string
	ProposalID string
	Status     ProposalStatus
	Note       string
	CreatedAt  time.Time
}

type Shipment struct {
	ID         string
	ProposalID string
	Summary    string
	Channel    string
	Sent       bool
	SentAt     *time.Time
}
