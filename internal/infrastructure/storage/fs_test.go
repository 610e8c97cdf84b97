package storage

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"svw.info/kiltergen/internal/domain"
)

func sampleRoute(id string, label domain.DifficultyLabel) *domain.SavedRoute {
	return &domain.SavedRoute{
		ID:   id,
		Seed: 42,
		Score: domain.Score{
			Label: label,
			Value: 2.7,
		},
		Flow: domain.GoodFlow,
		Route: domain.Route{Holds: []domain.PlacedHold{
			{Col: 5, Row: 10, Role: domain.RoleStart},
			{Col: 7, Row: 14, Role: domain.RoleHand},
			{Col: 6, Row: 18, Role: domain.RoleFinish},
		}},
		CreatedAt: 1700000000,
		Name:      "warmup",
	}
}

func TestSaveLoadRoundtrip(t *testing.T) {
	s := NewFS(t.TempDir())
	in := sampleRoute("r1", domain.Intermediate)
	require.NoError(t, s.Save(context.Background(), in))

	out, err := s.Load(context.Background(), "r1")
	require.NoError(t, err)
	require.Equal(t, in, out)
}

func TestSaveRequiresID(t *testing.T) {
	s := NewFS(t.TempDir())
	err := s.Save(context.Background(), &domain.SavedRoute{})
	require.Error(t, err)
	require.ErrorContains(t, err, "missing ID")
}

func TestLoadMissingRoute(t *testing.T) {
	s := NewFS(t.TempDir())
	_, err := s.Load(context.Background(), "nope")
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestListAcrossLabelBuckets(t *testing.T) {
	s := NewFS(t.TempDir())
	require.NoError(t, s.Save(context.Background(), sampleRoute("a", domain.Easy)))
	require.NoError(t, s.Save(context.Background(), sampleRoute("b", domain.Hard)))
	require.NoError(t, s.Save(context.Background(), sampleRoute("c", domain.VeryHard)))

	metas, err := s.List(context.Background())
	require.NoError(t, err)
	require.Len(t, metas, 3)

	byID := map[string]domain.RouteMeta{}
	for _, m := range metas {
		byID[m.ID] = m
	}
	require.Equal(t, domain.Easy, byID["a"].Label)
	require.Equal(t, domain.Hard, byID["b"].Label)
	require.Equal(t, domain.VeryHard, byID["c"].Label)
	require.Equal(t, "warmup", byID["a"].Name)
}

func TestListEmptyStore(t *testing.T) {
	s := NewFS(t.TempDir())
	metas, err := s.List(context.Background())
	require.NoError(t, err)
	require.Empty(t, metas)
}
