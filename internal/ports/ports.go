package ports

import (
	"context"
	"time"

	"svw.info/kiltergen/internal/domain"
)

// Stats captures performance characteristics of a generation call.
type Stats struct {
	Moves    int // hand moves placed during the progression phase
	Attempts int // rejection samples drawn during finish selection
	Duration time.Duration
}

// Generator produces a route from a seed and caller parameters.
type Generator interface {
	Generate(ctx context.Context, seed int64, p domain.GenerationParams) (*domain.Route, Stats, error)
}

// DifficultyScorer grades a finished route.
type DifficultyScorer interface {
	Score(ctx context.Context, r *domain.Route) (domain.Score, error)
}

// FlowScorer judges movement smoothness; the verdict is domain.GoodFlow or
// the empty string.
type FlowScorer interface {
	Flow(ctx context.Context, r *domain.Route) (string, error)
}

// Validator performs route invariant checks against a hold set and the
// reach bounds the route was generated under.
type Validator interface {
	Validate(ctx context.Context, r *domain.Route, p domain.GenerationParams) (ok bool, conflicts []domain.Conflict, err error)
}

// Storage persists and retrieves routes as JSON.
type Storage interface {
	Save(ctx context.Context, sr *domain.SavedRoute) error
	Load(ctx context.Context, id string) (*domain.SavedRoute, error)
	List(ctx context.Context) ([]domain.RouteMeta, error)
}
