package matching

import (
	"math/rand"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fluxo_propostas/internal/domain/entities"
)

func item(sku string, qty int) entities.ProposalItem {
	return entities.ProposalItem{Quantity: qty, Product: &entities.Product{SKU: sku}}
}

func TestFromItems_IgnoresSKUlessLinesAndSumsSplits(t *testing.T) {
	m := FromItems([]entities.ProposalItem{
		item("A", 1),
		item(" A ", 1),
		item("", 7),
		{Quantity: 3},
		item("B", 0),
		item("C", 4),
	})
	assert.Equal(t, Multiset{"A": 2, "C": 4}, m)
	assert.Equal(t, []string{"A", "C"}, m.SKUs())
}

func TestNormalizeSKU_UnicodeForms(t *testing.T) {
	// "é" precomposed vs "e" + combining acute accent
	assert.Equal(t, NormalizeSKU("café"), NormalizeSKU("café"))
}

func TestMatches_SymmetricAndOrderInsensitive(t *testing.T) {
	base := []entities.ProposalItem{item("A", 2), item("B", 1), item("C", 5)}
	split := []entities.ProposalItem{item("C", 2), item("A", 1), item("C", 3), item("B", 1), item("A", 1)}
	other := []entities.ProposalItem{item("A", 2), item("B", 1)}
	moreQty := []entities.ProposalItem{item("A", 3), item("B", 1), item("C", 5)}

	sets := [][]entities.ProposalItem{base, split, other, moreQty, nil}
	for i := range sets {
		for j := range sets {
			a, b := FromItems(sets[i]), FromItems(sets[j])
			assert.Equal(t, Matches(a, b), Matches(b, a), "symmetry %d/%d", i, j)
		}
	}

	assert.True(t, Matches(FromItems(base), FromItems(split)))
	assert.False(t, Matches(FromItems(base), FromItems(other)))
	assert.False(t, Matches(FromItems(base), FromItems(moreQty)))
	assert.False(t, Matches(FromItems(nil), FromItems(nil)), "empty multisets never match")

	r := rand.New(rand.NewSource(42))
	for n := 0; n < 20; n++ {
		shuffled := append([]entities.ProposalItem(nil), split...)
		r.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })
		assert.True(t, Matches(FromItems(base), FromItems(shuffled)))
	}
}

func candidate(id string, created time.Time, sim *entities.Simulation, items ...entities.ProposalItem) entities.Proposal {
	return entities.Proposal{ID: id, CreatedAt: created, Simulation: sim, Items: items, Status: entities.ProposalStatusPendingQuote}
}

func TestBestReference_PrefersManualSimulationRegardlessOfOrder(t *testing.T) {
	t0 := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	manual := candidate("manual", t0, &entities.Simulation{IsAutomatic: false}, item("A", 2))
	auto := candidate("auto", t0.Add(time.Hour), &entities.Simulation{IsAutomatic: true}, item("A", 2))
	target := FromItems([]entities.ProposalItem{item("A", 2)})

	for _, order := range [][]entities.Proposal{{manual, auto}, {auto, manual}} {
		got := BestReference(target, order)
		require.NotNil(t, got)
		assert.Equal(t, "manual", got.ID)
	}
}

func TestBestReference_TieBreakPriority(t *testing.T) {
	t0 := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	weight := decimal.NewNullDecimal(decimal.NewFromInt(10))
	vol := decimal.NewNullDecimal(decimal.RequireFromString("0.5"))
	target := FromItems([]entities.ProposalItem{item("A", 1)})

	withWeight := candidate("weight", t0, &entities.Simulation{IsAutomatic: true}, item("A", 1))
	withWeight.WeightTotalKg = weight

	manualVolume := candidate("manual-volume", t0.Add(time.Hour), &entities.Simulation{}, item("A", 1))
	manualVolume.VolumeManualM3 = vol
	manualVolume.VolumeIsManual = true

	assert.Equal(t, "weight", BestReference(target, []entities.Proposal{manualVolume, withWeight}).ID, "weight outranks everything")

	anyVolume := candidate("any-volume", t0.Add(2*time.Hour), &entities.Simulation{}, item("A", 1))
	anyVolume.VolumeAutomaticM3 = vol
	assert.Equal(t, "manual-volume", BestReference(target, []entities.Proposal{anyVolume, manualVolume}).ID)

	autoWithVolume := candidate("auto-volume", t0.Add(3*time.Hour), &entities.Simulation{IsAutomatic: true}, item("A", 1))
	autoWithVolume.VolumeAutomaticM3 = vol
	bare := candidate("bare", t0.Add(4*time.Hour), &entities.Simulation{}, item("A", 1))
	assert.Equal(t, "auto-volume", BestReference(target, []entities.Proposal{bare, autoWithVolume}).ID, "volume outranks manual simulation")

	older := candidate("older", t0, &entities.Simulation{}, item("A", 1))
	newer := candidate("newer", t0.Add(time.Minute), &entities.Simulation{}, item("A", 1))
	assert.Equal(t, "newer", BestReference(target, []entities.Proposal{older, newer}).ID)

	twinB := candidate("b", t0, &entities.Simulation{}, item("A", 1))
	twinA := candidate("a", t0, &entities.Simulation{}, item("A", 1))
	assert.Equal(t, "a", BestReference(target, []entities.Proposal{twinB, twinA}).ID)
}

func TestBestReference_NoMatch(t *testing.T) {
	t0 := time.Now()
	target := FromItems([]entities.ProposalItem{item("A", 2)})
	noSim := candidate("no-sim", t0, nil, item("A", 2))
	different := candidate("different", t0, &entities.Simulation{}, item("A", 3))

	assert.Nil(t, BestReference(target, []entities.Proposal{noSim, different}))
	assert.Nil(t, BestReference(Multiset{}, []entities.Proposal{different}))
}
