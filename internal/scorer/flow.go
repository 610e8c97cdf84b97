package scorer

import (
	"context"

	"svw.info/kiltergen/internal/domain"
)

// goodFlowThreshold is the percentage at which a route earns the verdict.
const goodFlowThreshold = 70.0

// Flow judges movement smoothness: how often consecutive moves alternate
// lateral direction and how consistently the route climbs upward. It never
// influences generation.
type Flow struct{}

// NewFlow returns a flow scorer.
func NewFlow() *Flow { return &Flow{} }

// Flow returns domain.GoodFlow when the combined alternation and upward
// ratios reach the threshold, the empty string otherwise. Routes with fewer
// than three climb-relevant holds never qualify.
func (f *Flow) Flow(ctx context.Context, r *domain.Route) (string, error) {
	climb := r.ClimbHolds()
	if len(climb) < 3 {
		return "", nil
	}
	if 50*alternationRatio(climb)+50*upwardRatio(climb) >= goodFlowThreshold {
		return domain.GoodFlow, nil
	}
	return "", nil
}

// alternationRatio is the fraction of consecutive triples whose two lateral
// moves point in opposite directions.
func alternationRatio(climb []domain.PlacedHold) float64 {
	if len(climb) <= 2 {
		return 0
	}
	return float64(countReversals(climb)) / float64(len(climb)-2)
}

// upwardRatio is the fraction of consecutive pairs where the row strictly
// increases.
func upwardRatio(climb []domain.PlacedHold) float64 {
	if len(climb) <= 1 {
		return 0
	}
	up := 0
	for i := 0; i < len(climb)-1; i++ {
		if climb[i+1].Row > climb[i].Row {
			up++
		}
	}
	return float64(up) / float64(len(climb)-1)
}
