package usecase

import (
	"math"

	"github.com/scenic-tour/internal/domain"
	"github.com/scenic-tour/internal/pkg/utils"
)

// circuityFactor converts crow-fly distance to road distance when no route calibrates the estimate
const circuityFactor = 1.3

// SelectionInput - входные данные выбора точек
type SelectionInput struct {
	// Base is origin, stops in caller order, destination
	Base           []domain.Coordinate
	Candidates     []domain.Candidate
	FastestSeconds int
	BudgetSeconds  float64
	MaxPoints      int
	Mode           domain.TravelMode
}

// SequenceNode - one waypoint of the merged sequence. Candidate is nil for base points,
// BaseIndex is -1 for candidates.
type SequenceNode struct {
	BaseIndex int
	Candidate *domain.Candidate
	Location  domain.Coordinate
}

// Selection - result of waypoint selection
type Selection struct {
	// Sequence is the merged travel order, origin and destination included
	Sequence []SequenceNode
	// Inserted lists accepted candidates in acceptance order
	Inserted         []domain.Candidate
	ProjectedSeconds float64
}

// Candidates returns the selected candidates in travel order
func (s *Selection) Candidates() []domain.Candidate {
	return sequenceCandidates(s.Sequence)
}

// IsEmpty reports whether no candidate was selected
func (s *Selection) IsEmpty() bool {
	return len(s.Inserted) == 0
}

type insertion struct {
	candidate int
	slot      int
	detour    float64
}

// SelectWaypoints greedily inserts the most desirable candidates into the base sequence
// while the projected duration stays within budget. Base points are never removed or
// reordered. The result depends only on the input.
func SelectWaypoints(in SelectionInput) Selection {
	seq := make([]SequenceNode, len(in.Base))
	for i, c := range in.Base {
		seq[i] = SequenceNode{BaseIndex: i, Location: c}
	}

	selection := Selection{Sequence: seq, ProjectedSeconds: float64(in.FastestSeconds)}
	if len(in.Base) < 2 || len(in.Candidates) == 0 || in.MaxPoints <= 0 {
		return selection
	}

	spm := secondsPerMeter(in.Base, in.FastestSeconds, in.Mode)
	legTime := func(a, b domain.Coordinate) float64 {
		return utils.DistanceMeters(a, b) * spm
	}

	candidates := make([]domain.Candidate, len(in.Candidates))
	copy(candidates, in.Candidates)
	used := make([]bool, len(candidates))

	for len(selection.Inserted) < in.MaxPoints {
		var best *insertion
		for i := range candidates {
			if used[i] {
				continue
			}
			slot, detour := cheapestSlot(selection.Sequence, candidates[i].Location, legTime)
			if selection.ProjectedSeconds+detour > in.BudgetSeconds {
				continue
			}
			current := insertion{candidate: i, slot: slot, detour: detour}
			if best == nil || ranksBefore(candidates, current, *best) {
				best = &current
			}
		}
		if best == nil {
			break
		}

		used[best.candidate] = true
		chosen := &candidates[best.candidate]
		node := SequenceNode{BaseIndex: -1, Candidate: chosen, Location: chosen.Location}

		next := make([]SequenceNode, 0, len(selection.Sequence)+1)
		next = append(next, selection.Sequence[:best.slot+1]...)
		next = append(next, node)
		next = append(next, selection.Sequence[best.slot+1:]...)

		selection.Sequence = next
		selection.Inserted = append(selection.Inserted, *chosen)
		selection.ProjectedSeconds += best.detour
	}

	return selection
}

// cheapestSlot returns the index i such that inserting p between seq[i] and seq[i+1]
// adds the least time; ties keep the earliest slot
func cheapestSlot(seq []SequenceNode, p domain.Coordinate, legTime func(a, b domain.Coordinate) float64) (int, float64) {
	bestSlot, bestDetour := 0, math.Inf(1)
	for i := 0; i+1 < len(seq); i++ {
		a, b := seq[i].Location, seq[i+1].Location
		detour := legTime(a, p) + legTime(p, b) - legTime(a, b)
		if detour < bestDetour {
			bestSlot, bestDetour = i, detour
		}
	}
	return bestSlot, math.Max(0, bestDetour)
}

// ranksBefore: higher weight, then smaller detour, then earlier discovery
func ranksBefore(candidates []domain.Candidate, a, b insertion) bool {
	ca, cb := candidates[a.candidate], candidates[b.candidate]
	if ca.Weight != cb.Weight {
		return ca.Weight > cb.Weight
	}
	if a.detour != b.detour {
		return a.detour < b.detour
	}
	return ca.DiscoveryIndex < cb.DiscoveryIndex
}

// secondsPerMeter calibrates crow-fly distance against the real fastest duration
func secondsPerMeter(base []domain.Coordinate, fastestSeconds int, mode domain.TravelMode) float64 {
	length := utils.PathLength(base)
	if length > 0 && fastestSeconds > 0 {
		return float64(fastestSeconds) / length
	}
	return circuityFactor / mode.AverageSpeedMps()
}
