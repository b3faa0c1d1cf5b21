// Package volumetric turns (quantity, dimensions, weight) tuples into aggregate
// weight and cubage for a proposal.
//
// All arithmetic is done with decimals so repeated reimports of the same data always
// produce the same stored values.
package volumetric

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"fluxo_propostas/internal/domain/entities"
)

const (
	volumeDecimals = 4
	weightDecimals = 3
)

var cm3PerM3 = decimal.NewFromInt(1_000_000)

// Entry is one line of the computation. Dimensions are centimetres, weight is the
// unit weight in kilograms. Missing values are represented by Valid=false.
type Entry struct {
	Label    string
	Quantity int
	LengthCm decimal.NullDecimal
	WidthCm  decimal.NullDecimal
	HeightCm decimal.NullDecimal
	WeightKg decimal.NullDecimal
}

// Result of Calculate.
//
// VolumeM3.Valid=false means there was no usable volumetric data, which is different
// from a zero weight. WeightKg.Valid=false means no entry carried a weight.
type Result struct {
	WeightKg decimal.NullDecimal
	VolumeM3 decimal.NullDecimal
	Lines    []string
}

// Description is the human-readable breakdown stored on simulations.
func (r Result) Description() string {
	return strings.Join(r.Lines, "\n")
}

// HasVolume reports whether the result carries a usable volume.
func (r Result) HasVolume() bool {
	return r.VolumeM3.Valid
}

// Calculate aggregates entries. It never fails on partial data: an entry without all
// three positive dimensions only contributes its weight.
func Calculate(entries []Entry) Result {
	weight := decimal.Zero
	weighed := false
	volumeCm3 := decimal.Zero
	lines := make([]string, 0, len(entries))

	for _, e := range entries {
		if e.Quantity <= 0 {
			continue
		}
		qty := decimal.NewFromInt(int64(e.Quantity))

		if e.WeightKg.Valid {
			weight = weight.Add(e.WeightKg.Decimal.Mul(qty))
			weighed = true
		}

		if !positive(e.LengthCm) || !positive(e.WidthCm) || !positive(e.HeightCm) {
			continue
		}
		unit := e.LengthCm.Decimal.Mul(e.WidthCm.Decimal).Mul(e.HeightCm.Decimal)
		volumeCm3 = volumeCm3.Add(unit.Mul(qty))
		lines = append(lines, fmt.Sprintf("%dx %s (%s)", e.Quantity, e.Label, FormatDimensions(e.LengthCm.Decimal, e.WidthCm.Decimal, e.HeightCm.Decimal)))
	}

	res := Result{Lines: lines}
	if weighed {
		res.WeightKg = decimal.NewNullDecimal(weight.Round(weightDecimals))
	}
	if volumeCm3.IsPositive() {
		res.VolumeM3 = decimal.NewNullDecimal(CubicCentimetersToCubicMeters(volumeCm3))
	}
	return res
}

// CubicCentimetersToCubicMeters converts and rounds to the stored precision.
func CubicCentimetersToCubicMeters(cm3 decimal.Decimal) decimal.Decimal {
	return cm3.Div(cm3PerM3).Round(volumeDecimals)
}

// FormatDimensions renders "LxWxH cm".
func FormatDimensions(l, w, h decimal.Decimal) string {
	return fmt.Sprintf("%sx%sx%s cm", l.String(), w.String(), h.String())
}

func positive(v decimal.NullDecimal) bool {
	return v.Valid && v.Decimal.IsPositive()
}

// FromItems builds entries from the catalog products of proposal items. Items whose
// product is not loaded are skipped.
func FromItems(items []entities.ProposalItem) []Entry {
	entries := make([]Entry, 0, len(items))
	for _, it := range items {
		if it.Product == nil {
			continue
		}
		entries = append(entries, Entry{
			Label:    productLabel(*it.Product),
			Quantity: it.Quantity,
			LengthCm: it.Product.LengthCm,
			WidthCm:  it.Product.WidthCm,
			HeightCm: it.Product.HeightCm,
			WeightKg: it.Product.UnitWeightKg,
		})
	}
	return entries
}

// FromBox builds an entry for a packaging box; boxes carry no weight of their own.
func FromBox(box entities.Box, quantity int) Entry {
	return Entry{
		Label:    box.Name,
		Quantity: quantity,
		LengthCm: decimal.NewNullDecimal(box.LengthCm),
		WidthCm:  decimal.NewNullDecimal(box.WidthCm),
		HeightCm: decimal.NewNullDecimal(box.HeightCm),
	}
}

// ManualEntry builds an entry for a free-form volume typed by an operator.
func ManualEntry(quantity int, l, w, h decimal.Decimal) Entry {
	return Entry{
		Label:    "Manual",
		Quantity: quantity,
		LengthCm: decimal.NewNullDecimal(l),
		WidthCm:  decimal.NewNullDecimal(w),
		HeightCm: decimal.NewNullDecimal(h),
	}
}

// AllMeasured reports whether every item has a product with complete measurements.
// An empty list is never considered measured.
func AllMeasured(items []entities.ProposalItem) bool {
	if len(items) == 0 {
		return false
	}
	for _, it := range items {
		if it.Product == nil || !it.Product.HasCompleteMeasurements() {
			return false
		}
	}
	return true
}

func productLabel(p entities.Product) string {
	if name := strings.TrimSpace(p.Name); name != "" {
		return name
	}
	if p.SKU != "" {
		return p.SKU
	}
	return "Produto"
}
