// Package matching decides whether two proposals carry structurally identical items
// and ranks reference candidates.
package matching

import (
	"sort"
	"strings"

	"golang.org/x/text/unicode/norm"

	"fluxo_propostas/internal/domain/entities"
)

// Multiset maps a SKU to the summed quantity of every line carrying it.
type Multiset map[string]int

// NormalizeSKU is the canonical key used for comparisons.
func NormalizeSKU(sku string) string {
	return norm.NFC.String(strings.TrimSpace(sku))
}

// FromItems builds the multiset of a proposal. Lines without SKU or with a
// non-positive quantity are ignored.
func FromItems(items []entities.ProposalItem) Multiset {
	m := make(Multiset, len(items))
	for _, it := range items {
		sku := NormalizeSKU(it.SKU())
		if sku == "" || it.Quantity <= 0 {
			continue
		}
		m[sku] += it.Quantity
	}
	return m
}

// Equal reports whether both multisets have the same keys with the same quantities.
func (m Multiset) Equal(other Multiset) bool {
	if len(m) != len(other) {
		return false
	}
	for sku, qty := range m {
		if other[sku] != qty {
			return false
		}
	}
	return true
}

// Matches is the reference predicate. An empty multiset never matches anything, so
// SKU-less proposals are not treated as identical to each other.
func Matches(a, b Multiset) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	return a.Equal(b)
}

// SKUs returns the keys in sorted order.
func (m Multiset) SKUs() []string {
	out := make([]string, 0, len(m))
	for sku := range m {
		out = append(out, sku)
	}
	sort.Strings(out)
	return out
}
