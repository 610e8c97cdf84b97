package usecase

import (
	"context"
	"errors"

	"svw.info/kiltergen/internal/domain"
	"svw.info/kiltergen/internal/ports"
)

type Service struct {
	Generator  ports.Generator
	Difficulty ports.DifficultyScorer
	Flow       ports.FlowScorer
	Validator  ports.Validator
	Storage    ports.Storage
}

func NewService(g ports.Generator, d ports.DifficultyScorer, f ports.FlowScorer, v ports.Validator, st ports.Storage) *Service {
	return &Service{Generator: g, Difficulty: d, Flow: f, Validator: v, Storage: st}
}

var errNotConfigured = errors.New("usecase dependency not configured")

func (u *Service) Generate(ctx context.Context, seed int64, p domain.GenerationParams) (*domain.Route, ports.Stats, error) {
	if u.Generator == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	return u.Generator.Generate(ctx, seed, p)
}

func (u *Service) Score(ctx context.Context, r *domain.Route) (domain.Score, error) {
	if u.Difficulty == nil {
		return domain.Score{}, errNotConfigured
	}
	return u.Difficulty.Score(ctx, r)
}

func (u *Service) FlowVerdict(ctx context.Context, r *domain.Route) (string, error) {
	if u.Flow == nil {
		return "", errNotConfigured
	}
	return u.Flow.Flow(ctx, r)
}

func (u *Service) Validate(ctx context.Context, r *domain.Route, p domain.GenerationParams) (bool, []domain.Conflict, error) {
	if u.Validator == nil {
		return false, nil, errNotConfigured
	}
	return u.Validator.Validate(ctx, r, p)
}

// Persistence
func (u *Service) Save(ctx context.Context, sr *domain.SavedRoute) error {
	if u.Storage == nil {
		return errNotConfigured
	}
	return u.Storage.Save(ctx, sr)
}
func (u *Service) Load(ctx context.Context, id string) (*domain.SavedRoute, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.Load(ctx, id)
}
func (u *Service) List(ctx context.Context) ([]domain.RouteMeta, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.List(ctx)
}
