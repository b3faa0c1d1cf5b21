package matching

import (
	"time"

	"fluxo_propostas/internal/domain/entities"
)

// Score orders reference candidates. Fields are compared in declaration order,
// favouring measurements produced or confirmed by a human.
type Score struct {
	HasWeight        bool
	HasManualVolume  bool
	HasVolume        bool
	ManualSimulation bool
	CreatedAt        time.Time
	ID               string
}

func ScoreOf(p entities.Proposal) Score {
	return Score{
		HasWeight:        p.WeightTotalKg.Valid,
		HasManualVolume:  p.VolumeIsManual && p.VolumeManualM3.Valid,
		HasVolume:        p.VolumeAutomaticM3.Valid || p.VolumeManualM3.Valid,
		ManualSimulation: p.Simulation != nil && p.Simulation.IsManual(),
		CreatedAt:        p.CreatedAt,
		ID:               p.ID,
	}
}

// Beats reports whether s ranks strictly above other. Equal scores fall back to the
// smaller ID so the choice never depends on query order.
func (s Score) Beats(other Score) bool {
	flags := [][2]bool{
		{s.HasWeight, other.HasWeight},
		{s.HasManualVolume, other.HasManualVolume},
		{s.HasVolume, other.HasVolume},
		{s.ManualSimulation, other.ManualSimulation},
	}
	for _, f := range flags {
		if f[0] != f[1] {
			return f[0]
		}
	}
	if !s.CreatedAt.Equal(other.CreatedAt) {
		return s.CreatedAt.After(other.CreatedAt)
	}
	return s.ID < other.ID
}

// BestReference returns the highest ranked candidate whose multiset matches target,
// or nil when none does. Candidates without a simulation, or still pending
// simulation, are never eligible.
func BestReference(target Multiset, candidates []entities.Proposal) *entities.Proposal {
	var (
		best      *entities.Proposal
		bestScore Score
	)
	for i := range candidates {
		c := &candidates[i]
		if c.Simulation == nil || c.Status == entities.ProposalStatusPendingSimulation {
			continue
		}
		if !Matches(target, FromItems(c.Items)) {
			continue
		}
		score := ScoreOf(*c)
		if best == nil || score.Beats(bestScore) {
			best, bestScore = c, score
		}
	}
	return best
}
