package generator

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"svw.info/kiltergen/internal/board"
	"svw.info/kiltergen/internal/domain"
	"svw.info/kiltergen/internal/ports"
)

const (
	// Progression stops once a candidate reaches the very top rows.
	topRowCutoff = 33

	// Column span searched for feet around the start span and around the
	// current hand position.
	startFeetSpan = 2
	moveFeetSpan  = 3

	// Chance of placing a foot after each hand move.
	footChance = 0.35

	// Chance that a progression step requires strictly upward movement
	// instead of allowing lateral moves.
	strictUpwardChance = 0.25

	// Finish selection is rejection sampling; the budget is a multiple of
	// the candidate pool so dense boards get proportionally more draws.
	finishRetryFactor = 4
	finishRetryFloor  = 16
)

// Generate runs the four phases in order: start selection, initial feet,
// progression, finish selection. The same seed with the same parameters and
// hold set yields the same route.
func (g *RouteGenerator) Generate(ctx context.Context, seed int64, p domain.GenerationParams) (*domain.Route, ports.Stats, error) {
	begin := time.Now()
	var st ports.Stats

	if p.MinReach > p.MaxReach {
		return nil, st, fmt.Errorf("%w: minReach %g > maxReach %g", ErrInvalidParams, p.MinReach, p.MaxReach)
	}
	if p.MinMoves > p.MaxMoves {
		return nil, st, fmt.Errorf("%w: minMoves %d > maxMoves %d", ErrInvalidParams, p.MinMoves, p.MaxMoves)
	}

	rng := rand.New(rand.NewSource(seed))
	route := &domain.Route{}

	// Phase 1: start holds.
	starts, err := g.pickStarts(rng, p)
	if err != nil {
		return nil, st, err
	}
	for _, s := range starts {
		route.Holds = append(route.Holds, domain.PlacedHold{Col: s.Col, Row: s.Row, Role: domain.RoleStart})
	}

	// Phase 2: initial feet below the start span.
	g.placeStartFeet(rng, route, starts)

	// Phase 3: progression. The anchor is the higher start hold, which
	// pickStarts orders last so the climb sequence stays pairwise reachable.
	current := starts[len(starts)-1]
	numMoves := p.MinMoves
	if p.MaxMoves > p.MinMoves {
		numMoves += rng.Intn(p.MaxMoves - p.MinMoves + 1)
	}
	for i := 0; i < numMoves; i++ {
		if err := ctx.Err(); err != nil {
			return nil, st, err
		}
		next, ok := g.nextHand(rng, current, p)
		if !ok || next.Row >= topRowCutoff {
			// Normal early termination: the route is simply shorter.
			break
		}
		route.Holds = append(route.Holds, domain.PlacedHold{Col: next.Col, Row: next.Row, Role: domain.RoleHand})
		current = next
		st.Moves++

		if rng.Float64() < footChance {
			pool := g.Board.FootCandidates(current.Row, current.Col-moveFeetSpan, current.Col+moveFeetSpan)
			if len(pool) > 0 {
				f := pool[rng.Intn(len(pool))]
				route.Holds = append(route.Holds, domain.PlacedHold{Col: f.Col, Row: f.Row, Role: domain.RoleFoot})
			}
		}
	}

	// Phase 4: finish holds.
	if err := g.placeFinishes(ctx, rng, route, current, p, &st); err != nil {
		return nil, st, err
	}

	st.Duration = time.Since(begin)
	return route, st, nil
}

// pickStarts scans shuffled start-zone pairs for the first mutually
// reachable one, mimicking a two-hand start. When no pair qualifies it
// falls back to a single uniformly random hold. The returned slice is
// ordered lower row first so the progression anchor sits adjacent to the
// first hand move.
func (g *RouteGenerator) pickStarts(rng *rand.Rand, p domain.GenerationParams) ([]domain.Hold, error) {
	cands := g.Board.StartCandidates()
	if len(cands) == 0 {
		return nil, fmt.Errorf("%w: rows %d-%d hold no hand holds", ErrNoStartCandidates, board.StartZoneLow, board.StartZoneHigh)
	}
	rng.Shuffle(len(cands), func(i, j int) { cands[i], cands[j] = cands[j], cands[i] })

	for i := 0; i < len(cands); i++ {
		for j := i + 1; j < len(cands); j++ {
			if board.Reachable(cands[i].Col, cands[i].Row, cands[j].Col, cands[j].Row, p.MinReach, p.MaxReach) {
				a, b := cands[i], cands[j]
				if a.Row > b.Row {
					a, b = b, a
				}
				return []domain.Hold{a, b}, nil
			}
		}
	}
	return []domain.Hold{cands[rng.Intn(len(cands))]}, nil
}

// placeStartFeet samples exactly two feet below the start span, or none
// when fewer than two candidates exist. Zero starting feet is a valid
// route shape, not a failure.
func (g *RouteGenerator) placeStartFeet(rng *rand.Rand, route *domain.Route, starts []domain.Hold) {
	maxRow, minCol, maxCol := starts[0].Row, starts[0].Col, starts[0].Col
	for _, s := range starts[1:] {
		if s.Row > maxRow {
			maxRow = s.Row
		}
		if s.Col < minCol {
			minCol = s.Col
		}
		if s.Col > maxCol {
			maxCol = s.Col
		}
	}
	pool := g.Board.FootCandidates(maxRow-1, minCol-startFeetSpan, maxCol+startFeetSpan)
	if len(pool) < 2 {
		return
	}
	rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
	for _, f := range pool[:2] {
		route.Holds = append(route.Holds, domain.PlacedHold{Col: f.Col, Row: f.Row, Role: domain.RoleFoot})
	}
}

// nextHand picks the next progression hold: hand holds filtered by the
// upward bias (unless free-direction mode is on), shuffled, first reachable
// wins.
func (g *RouteGenerator) nextHand(rng *rand.Rand, current domain.Hold, p domain.GenerationParams) (domain.Hold, bool) {
	cands := g.Board.Hands()
	if !p.FreeDirection {
		strict := rng.Float64() < strictUpwardChance
		filtered := cands[:0]
		for _, h := range cands {
			if strict && h.Row > current.Row {
				filtered = append(filtered, h)
			} else if !strict && h.Row >= current.Row {
				filtered = append(filtered, h)
			}
		}
		cands = filtered
	}
	rng.Shuffle(len(cands), func(i, j int) { cands[i], cands[j] = cands[j], cands[i] })
	for _, h := range cands {
		if board.Reachable(current.Col, current.Row, h.Col, h.Row, p.MinReach, p.MaxReach) {
			return h, true
		}
	}
	return domain.Hold{}, false
}

// placeFinishes appends one or two finish holds above the current position.
// Selection is bounded rejection sampling: exhausting the budget on the
// first finish is a typed failure, exhausting it on the optional second
// finish degrades to a single-finish route.
func (g *RouteGenerator) placeFinishes(ctx context.Context, rng *rand.Rand, route *domain.Route, current domain.Hold, p domain.GenerationParams, st *ports.Stats) error {
	pool := make([]domain.Hold, 0)
	for _, h := range g.Board.Hands() {
		if h.Row >= current.Row {
			pool = append(pool, h)
		}
	}
	if len(pool) == 0 {
		// Start selection already proved at least one hand hold exists.
		pool = g.Board.Hands()
	}

	finishCount := 1
	if p.AllowTwoFinishes {
		finishCount = 1 + rng.Intn(2)
	}

	budget := finishRetryFactor * len(pool)
	if budget < finishRetryFloor {
		budget = finishRetryFloor
	}

	first, ok := sampleReachable(ctx, rng, pool, current, p, budget, st)
	if !ok {
		return fmt.Errorf("%w: %d candidates rejected under reach [%g, %g]", ErrNoReachableFinish, budget, p.MinReach, p.MaxReach)
	}
	route.Holds = append(route.Holds, domain.PlacedHold{Col: first.Col, Row: first.Row, Role: domain.RoleFinish})

	if finishCount == 2 {
		// The second finish must be reachable from the first.
		if second, ok := sampleReachable(ctx, rng, pool, first, p, budget, st); ok {
			route.Holds = append(route.Holds, domain.PlacedHold{Col: second.Col, Row: second.Row, Role: domain.RoleFinish})
		}
	}
	return nil
}

func sampleReachable(ctx context.Context, rng *rand.Rand, pool []domain.Hold, from domain.Hold, p domain.GenerationParams, budget int, st *ports.Stats) (domain.Hold, bool) {
	for i := 0; i < budget; i++ {
		if ctx.Err() != nil {
			return domain.Hold{}, false
		}
		h := pool[rng.Intn(len(pool))]
		st.Attempts++
		if board.Reachable(from.Col, from.Row, h.Col, h.Row, p.MinReach, p.MaxReach) {
			return h, true
		}
	}
	return domain.Hold{}, false
}
