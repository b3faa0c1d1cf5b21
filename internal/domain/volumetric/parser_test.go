package volumetric

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParseDescription_Volume(t *testing.T) {
	cases := []struct {
		name string
		text string
		want int64
	}{
		{name: "plain centimetres", text: "95x95x120", want: 1_083_000},
		{name: "metres with comma", text: "95 x 95 x 1,20", want: 1_083_000},
		{name: "quantity prefix", text: "4x95x95x1,20", want: 4_332_000},
		{name: "quantity in parentheses", text: "(4x)95x95x1,20", want: 4_332_000},
		{name: "multiplication sign", text: "2 × 50×40×30", want: 120_000},
		{name: "several lines", text: "1x 50x50x50\n2x20x20x20", want: 141_000},
		{name: "no dimensions", text: "pallet fechado", want: 0},
		{name: "empty", text: "   ", want: 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			vol, _ := ParseDescription(tc.text)
			assert.True(t, vol.Equal(decimal.NewFromInt(tc.want)), "got %s", vol)
		})
	}
}

func TestParseDescription_Weight(t *testing.T) {
	_, w := ParseDescription("95x95x120 peso: 52,18")
	assert.True(t, w.Valid)
	assert.Equal(t, "52.18", w.Decimal.String())

	_, w = ParseDescription("caixa 10kg, tubo 2,5 kg")
	assert.True(t, w.Valid)
	assert.Equal(t, "12.5", w.Decimal.String())

	_, w = ParseDescription("=peso 7 e mais 3kg")
	assert.Equal(t, "7", w.Decimal.String(), "explicit weight wins over kg sums")

	_, w = ParseDescription("95x95x120")
	assert.False(t, w.Valid)
}
