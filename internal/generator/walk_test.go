package generator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"svw.info/kiltergen/internal/board"
	"svw.info/kiltergen/internal/domain"
)

// denseBoard builds a synthetic grid with a hand hold on every position of
// the given column range plus dedicated foot holds between rows.
func denseBoard(t *testing.T, cols, rows int) *board.HoldSet {
	t.Helper()
	var holds []domain.Hold
	for c := 1; c <= cols; c++ {
		for r := 1; r <= rows; r++ {
			holds = append(holds, domain.Hold{Col: c, Row: r, Kind: domain.KindHand, BaseDifficulty: 2, HasDifficulty: true})
		}
	}
	return board.New(holds)
}

func defaultParams() domain.GenerationParams {
	return domain.GenerationParams{
		MinMoves: 2, MaxMoves: 8,
		MinReach: 2, MaxReach: 12,
		AllowTwoFinishes: true,
	}
}

func TestGenerateRejectsInvalidParams(t *testing.T) {
	g := New(denseBoard(t, 10, 35))

	p := defaultParams()
	p.MinReach, p.MaxReach = 10, 4
	_, _, err := g.Generate(context.Background(), 1, p)
	require.ErrorIs(t, err, ErrInvalidParams)

	p = defaultParams()
	p.MinMoves, p.MaxMoves = 9, 3
	_, _, err = g.Generate(context.Background(), 1, p)
	require.ErrorIs(t, err, ErrInvalidParams)
}

func TestGenerateFailsOnEmptyStartZone(t *testing.T) {
	// Hand holds exist, but none inside the start zone rows.
	var holds []domain.Hold
	for c := 1; c <= 10; c++ {
		holds = append(holds, domain.Hold{Col: c, Row: 20, Kind: domain.KindHand})
	}
	g := New(board.New(holds))
	_, _, err := g.Generate(context.Background(), 1, defaultParams())
	require.ErrorIs(t, err, ErrNoStartCandidates)
}

func TestGenerateDeterministicPerSeed(t *testing.T) {
	g := New(denseBoard(t, 12, 35))
	p := defaultParams()

	a, _, err := g.Generate(context.Background(), 42, p)
	require.NoError(t, err)
	b, _, err := g.Generate(context.Background(), 42, p)
	require.NoError(t, err)
	require.Equal(t, a.Holds, b.Holds)

	c, _, err := g.Generate(context.Background(), 43, p)
	require.NoError(t, err)
	// Different seeds on a dense grid produce different walks in practice.
	require.NotEqual(t, a.Holds, c.Holds)
}

func TestGenerateRouteInvariants(t *testing.T) {
	g := New(denseBoard(t, 12, 35))
	p := defaultParams()

	for seed := int64(1); seed <= 25; seed++ {
		route, st, err := g.Generate(context.Background(), seed, p)
		require.NoError(t, err, "seed %d", seed)

		starts := route.CountRole(domain.RoleStart)
		finishes := route.CountRole(domain.RoleFinish)
		require.GreaterOrEqual(t, starts, 1, "seed %d", seed)
		require.LessOrEqual(t, starts, 2, "seed %d", seed)
		require.GreaterOrEqual(t, finishes, 1, "seed %d", seed)
		require.LessOrEqual(t, finishes, 2, "seed %d", seed)
		require.LessOrEqual(t, st.Moves, p.MaxMoves, "seed %d", seed)

		// Every consecutive climb pair honors the reach bounds.
		climb := route.ClimbHolds()
		for i := 0; i < len(climb)-1; i++ {
			require.True(t,
				board.Reachable(climb[i].Col, climb[i].Row, climb[i+1].Col, climb[i+1].Row, p.MinReach, p.MaxReach),
				"seed %d: unreachable move %d: (%d,%d)->(%d,%d)",
				seed, i, climb[i].Col, climb[i].Row, climb[i+1].Col, climb[i+1].Row)
		}
	}
}

func TestGenerateSingleFinishWhenDisallowed(t *testing.T) {
	g := New(denseBoard(t, 12, 35))
	p := defaultParams()
	p.AllowTwoFinishes = false

	for seed := int64(1); seed <= 10; seed++ {
		route, _, err := g.Generate(context.Background(), seed, p)
		require.NoError(t, err)
		require.Equal(t, 1, route.CountRole(domain.RoleFinish), "seed %d", seed)
	}
}

func TestGenerateLoneStartZoneHold(t *testing.T) {
	// Exactly one hand hold in the start zone and no moves requested: the
	// route is one start plus one finish (the same hold, at distance zero).
	holds := []domain.Hold{{Col: 5, Row: 10, Kind: domain.KindHand}}
	g := New(board.New(holds))
	p := domain.GenerationParams{
		MinMoves: 0, MaxMoves: 0,
		MinReach: 0, MaxReach: 12,
		AllowTwoFinishes: false,
	}
	route, _, err := g.Generate(context.Background(), 7, p)
	require.NoError(t, err)
	require.Equal(t, 1, route.CountRole(domain.RoleStart))
	require.Equal(t, 0, route.CountRole(domain.RoleHand))
	require.Equal(t, 1, route.CountRole(domain.RoleFinish))
}

func TestGenerateExactMoveCountOnDenseGrid(t *testing.T) {
	// With reach [2,20] on a dense grid the walk cannot dead-end below the
	// top cutoff, so exactly the requested two hand moves are placed.
	g := New(denseBoard(t, 12, 35))
	p := domain.GenerationParams{
		MinMoves: 2, MaxMoves: 2,
		MinReach: 2, MaxReach: 20,
		AllowTwoFinishes: true,
	}
	for seed := int64(1); seed <= 10; seed++ {
		route, _, err := g.Generate(context.Background(), seed, p)
		require.NoError(t, err)
		require.Equal(t, 2, route.CountRole(domain.RoleHand), "seed %d", seed)
		climb := len(route.ClimbHolds())
		require.GreaterOrEqual(t, climb, 4, "seed %d", seed)
		require.LessOrEqual(t, climb, 6, "seed %d", seed)
	}
}

func TestGenerateNoReachableFinish(t *testing.T) {
	// One start-zone hold and a lone distant hand hold: with a tight reach
	// window nothing in the finish pool is ever reachable, so the bounded
	// rejection loop must fail instead of hanging.
	holds := []domain.Hold{
		{Col: 5, Row: 10, Kind: domain.KindHand},
		{Col: 30, Row: 34, Kind: domain.KindHand},
	}
	g := New(board.New(holds))
	p := domain.GenerationParams{
		MinMoves: 0, MaxMoves: 0,
		MinReach: 2, MaxReach: 3,
	}
	_, _, err := g.Generate(context.Background(), 7, p)
	require.ErrorIs(t, err, ErrNoReachableFinish)
}

func TestGenerateEarlyTerminationNearTop(t *testing.T) {
	// Starts at rows 7-13 with a huge move budget: progression must stop at
	// the top cutoff and still close with a valid finish.
	g := New(denseBoard(t, 12, 35))
	p := domain.GenerationParams{
		MinMoves: 40, MaxMoves: 40,
		MinReach: 2, MaxReach: 6,
		AllowTwoFinishes: true,
	}
	route, st, err := g.Generate(context.Background(), 3, p)
	require.NoError(t, err)
	require.Less(t, st.Moves, 40)
	require.GreaterOrEqual(t, route.CountRole(domain.RoleFinish), 1)
	for _, h := range route.Holds {
		if h.Role == domain.RoleHand {
			require.Less(t, h.Row, 33)
		}
	}
}

func TestGenerateFreeDirectionAllowsDescent(t *testing.T) {
	g := New(denseBoard(t, 12, 35))
	p := defaultParams()
	p.FreeDirection = true
	p.MinMoves, p.MaxMoves = 20, 20

	descending := false
	for seed := int64(1); seed <= 20 && !descending; seed++ {
		route, _, err := g.Generate(context.Background(), seed, p)
		require.NoError(t, err)
		climb := route.ClimbHolds()
		for i := 0; i < len(climb)-1; i++ {
			if climb[i+1].Row < climb[i].Row {
				descending = true
				break
			}
		}
	}
	require.True(t, descending, "free-direction walks should descend at least once across seeds")
}
