package storage

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"svw.info/kiltergen/internal/domain"
)

// FS persists routes as indented JSON files bucketed by difficulty label.
type FS struct{ dir string }

func NewFS(dir string) *FS { return &FS{dir: dir} }

func labelDir(d domain.DifficultyLabel) string {
	switch d {
	case domain.Intermediate:
		return "intermediate"
	case domain.Hard:
		return "hard"
	case domain.VeryHard:
		return "veryhard"
	default:
		return "easy"
	}
}

func (s *FS) pathFor(id string, d domain.DifficultyLabel) string {
	return filepath.Join(s.dir, labelDir(d), strings.TrimSpace(id)+".json")
}

func (s *FS) Save(ctx context.Context, sr *domain.SavedRoute) error {
	if sr == nil || sr.ID == "" {
		return errors.New("invalid route: missing ID")
	}
	target := s.pathFor(sr.ID, sr.Score.Label)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}
	f, err := os.Create(target)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(sr)
}

func (s *FS) Load(ctx context.Context, id string) (*domain.SavedRoute, error) {
	var data []byte
	for _, label := range []domain.DifficultyLabel{domain.Easy, domain.Intermediate, domain.Hard, domain.VeryHard} {
		b, err := os.ReadFile(s.pathFor(id, label))
		if err == nil {
			data = b
			break
		}
	}
	if data == nil {
		return nil, os.ErrNotExist
	}
	var out domain.SavedRoute
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *FS) List(ctx context.Context) ([]domain.RouteMeta, error) {
	var out []domain.RouteMeta
	for _, label := range []domain.DifficultyLabel{domain.Easy, domain.Intermediate, domain.Hard, domain.VeryHard} {
		dir := filepath.Join(s.dir, labelDir(label))
		ents, err := os.ReadDir(dir)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, err
		}
		for _, e := range ents {
			if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
				continue
			}
			data, err := os.ReadFile(filepath.Join(dir, e.Name()))
			if err != nil {
				continue
			}
			var sr domain.SavedRoute
			if err := json.Unmarshal(data, &sr); err != nil || sr.ID == "" {
				continue
			}
			out = append(out, domain.RouteMeta{
				ID:        sr.ID,
				Name:      sr.Name,
				Label:     sr.Score.Label,
				CreatedAt: sr.CreatedAt,
			})
		}
	}
	return out, nil
}
