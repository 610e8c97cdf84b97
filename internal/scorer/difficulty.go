package scorer

import (
	"context"

	"svw.info/kiltergen/internal/board"
	"svw.info/kiltergen/internal/domain"
)

// Component weights of the composite difficulty score. All components are
// normalized to a 0-5 scale before weighting.
const (
	weightHolds    = 0.4
	weightDistance = 0.3
	weightAngle    = 0.2
	weightFlow     = 0.1
)

// Label thresholds on the composite score.
const (
	easyBelow         = 2.0
	intermediateBelow = 3.5
	hardBelow         = 4.8
)

// Difficulty grades routes from hold grades, move distances, wall angle and
// sequence flow. It is a pure read of the route and the hold set.
type Difficulty struct {
	Board *board.HoldSet
}

// NewDifficulty wires a difficulty scorer over the given hold set.
func NewDifficulty(b *board.HoldSet) *Difficulty {
	return &Difficulty{Board: b}
}

// Score computes the composite difficulty of a route. Routes with fewer
// than two climb-relevant holds grade trivially as (Easy, 0.0).
func (s *Difficulty) Score(ctx context.Context, r *domain.Route) (domain.Score, error) {
	climb := r.ClimbHolds()
	if len(climb) < 2 {
		return domain.Score{Label: domain.Easy, Value: 0}, nil
	}

	value := s.holdComponent(climb)*weightHolds +
		distanceComponent(climb)*weightDistance +
		angleComponent(climb)*weightAngle +
		flowPenalty(climb)*weightFlow

	return domain.Score{Label: labelFor(value), Value: value}, nil
}

func labelFor(value float64) domain.DifficultyLabel {
	switch {
	case value < easyBelow:
		return domain.Easy
	case value < intermediateBelow:
		return domain.Intermediate
	case value < hardBelow:
		return domain.Hard
	default:
		return domain.VeryHard
	}
}

// holdComponent averages the base difficulty (0-5) of every climb hold,
// substituting the neutral default for holds missing from the dataset.
func (s *Difficulty) holdComponent(climb []domain.PlacedHold) float64 {
	sum := 0.0
	for _, h := range climb {
		sum += float64(s.Board.BaseDifficulty(h.Col, h.Row))
	}
	return sum / float64(len(climb))
}

// distanceComponent averages the Euclidean distance between consecutive
// climb holds, normalizes the typical 2-15 range to 0-1, then scales to the
// shared 0-5 component scale.
func distanceComponent(climb []domain.PlacedHold) float64 {
	sum := 0.0
	for i := 0; i < len(climb)-1; i++ {
		sum += board.Distance(climb[i].Col, climb[i].Row, climb[i+1].Col, climb[i+1].Row)
	}
	avg := sum / float64(len(climb)-1)
	norm := clamp((avg-2)/13, 0, 1)
	return norm * 5
}

// angleComponent rewards time spent in the overhang rows (1-5) and
// discounts the slab rows (30-35). Raw range is about [-0.3, 0.5], shifted
// and scaled to 0-5.
func angleComponent(climb []domain.PlacedHold) float64 {
	overhang, slab := 0, 0
	for _, h := range climb {
		if h.Row >= 1 && h.Row <= 5 {
			overhang++
		}
		if h.Row >= 30 && h.Row <= 35 {
			slab++
		}
	}
	n := float64(len(climb))
	raw := 0.5*float64(overhang)/n - 0.3*float64(slab)/n
	return clamp((raw+0.3)*6.25, 0, 5)
}

// flowPenalty charges for direction reversals across consecutive triples
// and for non-upward moves across consecutive pairs; each contributes up to
// 2.5 points.
func flowPenalty(climb []domain.PlacedHold) float64 {
	n := len(climb)
	if n < 3 {
		return 0
	}
	reversals := countReversals(climb)
	nonUpward := 0
	for i := 0; i < n-1; i++ {
		if climb[i+1].Row <= climb[i].Row {
			nonUpward++
		}
	}
	penalty := float64(reversals)/float64(max(n-2, 1))*2.5 +
		float64(nonUpward)/float64(max(n-1, 1))*2.5
	if penalty > 5 {
		penalty = 5
	}
	return penalty
}

// countReversals counts triples whose two lateral moves point in opposite
// directions; moves with zero column delta never count.
func countReversals(climb []domain.PlacedHold) int {
	reversals := 0
	for i := 0; i < len(climb)-2; i++ {
		d1 := climb[i+1].Col - climb[i].Col
		d2 := climb[i+2].Col - climb[i+1].Col
		if d1 != 0 && d2 != 0 && (d1 > 0) != (d2 > 0) {
			reversals++
		}
	}
	return reversals
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
