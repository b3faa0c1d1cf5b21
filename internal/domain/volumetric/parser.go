package volumetric

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	parenQuantityPattern = regexp.MustCompile(`(?i)\(\s*(\d+)\s*[x×]\s*\)\s*`)
	dimensionsPattern    = regexp.MustCompile(`(?i)(?:(\d+)\s*[x×]\s*)?(\d+(?:[.,]\d+)?)\s*[x×]\s*(\d+(?:[.,]\d+)?)\s*[x×]\s*(\d+(?:[.,]\d+)?)`)
	explicitWeightRegexp = regexp.MustCompile(`(?i)(?:=\s*peso|\bpeso\s*[:=])\s*(\d+(?:[.,]\d+)?)\s*(?:kg)?`)
	kgPattern            = regexp.MustCompile(`(?i)(\d+(?:[.,]\d+)?)\s*kg\b`)
)

// metreThreshold: dimensions up to this value are read as metres ("1,20" is 120 cm).
var metreThreshold = decimal.NewFromInt(10)

// ParseDescription extracts the total volume (cm³) and weight (kg) typed in a manual
// simulation. Supported forms:
//
//	95x95x120
//	95 x 95 x 1,20      (1,20 read as metres)
//	4x95x95x1,20        (quantity before the dimensions)
//	(4x)95x95x1,20      (quantity in parentheses)
//	peso: 52,18 | =peso 52,18 | 12kg + 3kg
//
// A text without dimensions yields a zero volume; without weight, an invalid weight.
func ParseDescription(text string) (volumeCm3 decimal.Decimal, weightKg decimal.NullDecimal) {
	text = strings.TrimSpace(text)
	if text == "" {
		return decimal.Zero, decimal.NullDecimal{}
	}
	return parseVolume(text), parseWeight(text)
}

func parseVolume(text string) decimal.Decimal {
	text = parenQuantityPattern.ReplaceAllString(text, "${1}x")

	total := decimal.Zero
	for _, m := range dimensionsPattern.FindAllStringSubmatch(text, -1) {
		qty := 1
		if m[1] != "" {
			n, err := strconv.Atoi(m[1])
			if err != nil || n <= 0 {
				continue
			}
			qty = n
		}
		l, okL := parseLocaleNumber(m[2])
		w, okW := parseLocaleNumber(m[3])
		h, okH := parseLocaleNumber(m[4])
		if !okL || !okW || !okH {
			continue
		}
		unit := toCentimetres(l).Mul(toCentimetres(w)).Mul(toCentimetres(h))
		total = total.Add(unit.Mul(decimal.NewFromInt(int64(qty))))
	}
	return total
}

func parseWeight(text string) decimal.NullDecimal {
	if m := explicitWeightRegexp.FindStringSubmatch(text); m != nil {
		if v, ok := parseLocaleNumber(m[1]); ok {
			return decimal.NewNullDecimal(v)
		}
		return decimal.NullDecimal{}
	}

	sum := decimal.Zero
	found := false
	for _, m := range kgPattern.FindAllStringSubmatch(text, -1) {
		v, ok := parseLocaleNumber(m[1])
		if !ok {
			continue
		}
		sum = sum.Add(v)
		found = true
	}
	if !found {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(sum)
}

// parseLocaleNumber accepts both "1,20" and "1.20".
func parseLocaleNumber(s string) (decimal.Decimal, bool) {
	s = strings.ReplaceAll(strings.TrimSpace(s), " ", "")
	if s == "" {
		return decimal.Zero, false
	}
	v, err := decimal.NewFromString(strings.ReplaceAll(s, ",", "."))
	if err != nil {
		return decimal.Zero, false
	}
	return v, true
}

func toCentimetres(v decimal.Decimal) decimal.Decimal {
	if v.LessThanOrEqual(metreThreshold) {
		return v.Mul(decimal.NewFromInt(100))
	}
	return v
}
