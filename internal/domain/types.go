package domain

// Hold is one physical position on the 35x35 board, as loaded from the
// layout dataset. Orientation, Grip and BaseDifficulty are meaningful for
// hand holds only.
type Hold struct {
	Col            int         `json:"col"`
	Row            int         `json:"row"`
	Kind           HoldKind    `json:"kind"`
	Orientation    Orientation `json:"orientation,omitempty"`
	Grip           string      `json:"grip,omitempty"`
	BaseDifficulty int         `json:"baseDifficulty,omitempty"`
	HasDifficulty  bool        `json:"-"`
}

// PlacedHold is one entry of a generated route: a board position plus the
// role it plays in the climb.
type PlacedHold struct {
	Col  int  `json:"col"`
	Row  int  `json:"row"`
	Role Role `json:"role"`
}

// Route is the ordered climb progression, start to finish. Order is
// significant; entries are append-only during generation.
type Route struct {
	Holds []PlacedHold `json:"holds"`
}

// ClimbHolds returns the ordered sub-sequence of climb-relevant entries
// (start, hand, finish), excluding feet.
func (r *Route) ClimbHolds() []PlacedHold {
	out := make([]PlacedHold, 0, len(r.Holds))
	for _, h := range r.Holds {
		if h.Role.Climbing() {
			out = append(out, h)
		}
	}
	return out
}

// CountRole returns how many entries carry the given role.
func (r *Route) CountRole(role Role) int {
	n := 0
	for _, h := range r.Holds {
		if h.Role == role {
			n++
		}
	}
	return n
}

// Conflict pinpoints a route entry that violates an invariant.
type Conflict struct {
	Index  int    `json:"index"`
	Col    int    `json:"col"`
	Row    int    `json:"row"`
	Reason string `json:"reason"`
}

// GenerationParams are the caller-supplied knobs for one generation call.
// Moves exclude start and finish holds. The generator never mutates them.
type GenerationParams struct {
	MinMoves         int     `json:"minMoves" yaml:"min_moves"`
	MaxMoves         int     `json:"maxMoves" yaml:"max_moves"`
	MinReach         float64 `json:"minReach" yaml:"min_reach"`
	MaxReach         float64 `json:"maxReach" yaml:"max_reach"`
	AllowTwoFinishes bool    `json:"allowTwoFinishes" yaml:"allow_two_finishes"`
	FreeDirection    bool    `json:"freeDirection" yaml:"free_direction"`
}

// Score is the graded difficulty of a route.
type Score struct {
	Label DifficultyLabel `json:"label"`
	Value float64         `json:"value"`
}

// GoodFlow is the verdict returned for routes with smooth alternation and
// consistent upward progression; the absence verdict is the empty string.
const GoodFlow = "GoodFlow"

// SavedRoute is a persisted route with metadata.
type SavedRoute struct {
	ID        string `json:"id,omitempty"`
	Seed      int64  `json:"seed,omitempty"`
	Score     Score  `json:"score"`
	Flow      string `json:"flow,omitempty"`
	Route     Route  `json:"route"`
	CreatedAt int64  `json:"createdAt,omitempty"`
	// Optional user metadata
	Name string `json:"name,omitempty"`
}

// RouteMeta is a lightweight listing entry.
type RouteMeta struct {
	ID        string          `json:"id"`
	Name      string          `json:"name,omitempty"`
	Label     DifficultyLabel `json:"label"`
	CreatedAt int64           `json:"createdAt"`
}
