package request

import (
	"github.com/shopspring/decimal"

	"fluxo_propostas/internal/usecase"
)

type ManualSimulationRequest struct {
	Description string              `json:"description"`
	VolumeM3    decimal.NullDecimal `json:"volume_m3" swaggertype:"number"`
	WeightKg    decimal.NullDecimal `json:"weight_kg" swaggertype:"number"`
	Complete    bool                `json:"complete"`
}

func (r ManualSimulationRequest) ToInput() usecase.ManualSimulationInput {
	return usecase.ManualSimulationInput{
		Description: r.Description,
		VolumeM3:    r.VolumeM3,
		WeightKg:    r.WeightKg,
		Complete:    r.Complete,
	}
}

type ProductMeasurementRequest struct {
	ProductID    string              `json:"product_id" binding:"required"`
	LengthCm     decimal.NullDecimal `json:"length_cm" swaggertype:"number"`
	WidthCm      decimal.NullDecimal `json:"width_cm" swaggertype:"number"`
	HeightCm     decimal.NullDecimal `json:"height_cm" swaggertype:"number"`
	UnitWeightKg decimal.NullDecimal `json:"unit_weight_kg" swaggertype:"number"`
}

// MeasurementsRequest carries per-product dimensions. VolumeManualM3, when set,
// overrides the computed volume.
type MeasurementsRequest struct {
	Measurements   []ProductMeasurementRequest `json:"measurements" binding:"dive"`
	VolumeManualM3 decimal.NullDecimal         `json:"volume_manual_m3" swaggertype:"number"`
}

func (r MeasurementsRequest) ToInput() []usecase.ProductMeasurement {
	out := make([]usecase.ProductMeasurement, 0, len(r.Measurements))
	for _, m := range r.Measurements {
		out = append(out, usecase.ProductMeasurement{
			ProductID:    m.ProductID,
			LengthCm:     m.LengthCm,
			WidthCm:      m.WidthCm,
			HeightCm:     m.HeightCm,
			UnitWeightKg: m.UnitWeightKg,
		})
	}
	return out
}

type BoxQuantityRequest struct {
	BoxID    string `json:"box_id" binding:"required"`
	Quantity int    `json:"quantity"`
}

type FreeVolumeRequest struct {
	Quantity int             `json:"quantity"`
	LengthCm decimal.Decimal `json:"length_cm" swaggertype:"number"`
	WidthCm  decimal.Decimal `json:"width_cm" swaggertype:"number"`
	HeightCm decimal.Decimal `json:"height_cm" swaggertype:"number"`
}

type VolumesRequest struct {
	Boxes    []BoxQuantityRequest `json:"boxes" binding:"dive"`
	Volumes  []FreeVolumeRequest  `json:"volumes"`
	WeightKg decimal.NullDecimal  `json:"weight_kg" swaggertype:"number"`
	Complete bool                 `json:"complete"`
}

func (r VolumesRequest) ToInput() usecase.VolumesInput {
	in := usecase.VolumesInput{WeightKg: r.WeightKg, Complete: r.Complete}
	for _, b := range r.Boxes {
		in.Boxes = append(in.Boxes, usecase.BoxQuantity{BoxID: b.BoxID, Quantity: b.Quantity})
	}
	for _, v := range r.Volumes {
		in.Volumes = append(in.Volumes, usecase.FreeVolume{
			Quantity: v.Quantity,
			LengthCm: v.LengthCm,
			WidthCm:  v.WidthCm,
			HeightCm: v.HeightCm,
		})
	}
	return in
}

type AdjustMeasurementsRequest struct {
	VolumeManualM3 decimal.NullDecimal `json:"volume_manual_m3" swaggertype:"number"`
	WeightKg       decimal.NullDecimal `json:"weight_kg" swaggertype:"number"`
}
