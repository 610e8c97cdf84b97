package validator

import (
	"context"

	"svw.info/kiltergen/internal/board"
	"svw.info/kiltergen/internal/domain"
)

// RouteValidator checks the structural invariants of a generated route
// against the hold set and the reach bounds it was generated under.
type RouteValidator struct {
	Board *board.HoldSet
}

// New wires a validator over the given hold set.
func New(b *board.HoldSet) *RouteValidator {
	return &RouteValidator{Board: b}
}

// Validate reports route invariant violations:
//   - at least one start and one finish entry, exactly one finish when two
//     finishes are disallowed
//   - every placed hold references a real hold of compatible kind
//   - every consecutive pair of climb-relevant holds is reachable under the
//     route's reach bounds (a single-start route has no start pair to check)
func (v *RouteValidator) Validate(ctx context.Context, r *domain.Route, p domain.GenerationParams) (bool, []domain.Conflict, error) {
	conf := make([]domain.Conflict, 0, 4)

	if r.CountRole(domain.RoleStart) < 1 {
		conf = append(conf, domain.Conflict{Index: -1, Reason: "route has no start hold"})
	}
	finishes := r.CountRole(domain.RoleFinish)
	if finishes < 1 {
		conf = append(conf, domain.Conflict{Index: -1, Reason: "route has no finish hold"})
	}
	if !p.AllowTwoFinishes && finishes > 1 {
		conf = append(conf, domain.Conflict{Index: -1, Reason: "two finish holds but two finishes are disallowed"})
	}

	for i, h := range r.Holds {
		switch h.Role {
		case domain.RoleFoot:
			if !v.Board.HasFootUsableAt(h.Col, h.Row) {
				conf = append(conf, domain.Conflict{Index: i, Col: h.Col, Row: h.Row, Reason: "foot placement on an empty board position"})
			}
		default:
			if !v.Board.HasHandAt(h.Col, h.Row) {
				conf = append(conf, domain.Conflict{Index: i, Col: h.Col, Row: h.Row, Reason: h.Role.String() + " placement without a hand hold"})
			}
		}
	}

	climb := r.ClimbHolds()
	for i := 0; i < len(climb)-1; i++ {
		a, b := climb[i], climb[i+1]
		if !board.Reachable(a.Col, a.Row, b.Col, b.Row, p.MinReach, p.MaxReach) {
			conf = append(conf, domain.Conflict{Index: i, Col: b.Col, Row: b.Row, Reason: "move exceeds reach bounds"})
		}
	}

	return len(conf) == 0, conf, nil
}
