package generator

import (
	"errors"

	"svw.info/kiltergen/internal/board"
)

// Typed failures surfaced by Generate. ErrNoStartCandidates indicates a
// malformed dataset and should propagate; ErrNoReachableFinish means the
// bounded finish search exhausted its retry budget.
var (
	ErrInvalidParams     = errors.New("invalid generation parameters")
	ErrNoStartCandidates = errors.New("no hand holds in the start zone")
	ErrNoReachableFinish = errors.New("no reachable finish hold")
)

// RouteGenerator builds routes over an immutable hold set using a
// multi-phase constrained random walk.
type RouteGenerator struct {
	Board *board.HoldSet
}

// New wires a generator over the given hold set.
func New(b *board.HoldSet) *RouteGenerator {
	return &RouteGenerator{Board: b}
}
