package domain

import "strings"

// HoldKind tags a physical position on the board.
type HoldKind int

const (
	KindNone HoldKind = iota // empty position, never climbable
	KindHand                 // usable by hands (and feet)
	KindFoot                 // foot-only hold
)

// ParseHoldKind maps the layout file tags (h/f/n) to a HoldKind.
func ParseHoldKind(s string) HoldKind {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "h":
		return KindHand
	case "f":
		return KindFoot
	default:
		return KindNone
	}
}

// Role is the function a hold plays within a generated route.
type Role int

const (
	RoleStart Role = iota
	RoleHand
	RoleFoot
	RoleFinish
)

func (r Role) String() string {
	switch r {
	case RoleStart:
		return "start"
	case RoleHand:
		return "hand"
	case RoleFoot:
		return "foot"
	case RoleFinish:
		return "finish"
	}
	return "unknown"
}

// MarshalJSON encodes the role as its lowercase name so exported routes
// keep the {col, row, role} shape of the original save format.
func (r Role) MarshalJSON() ([]byte, error) {
	return []byte(`"` + r.String() + `"`), nil
}

// UnmarshalJSON accepts the lowercase role names.
func (r *Role) UnmarshalJSON(b []byte) error {
	*r = ParseRole(strings.Trim(string(b), `"`))
	return nil
}

// ParseRole is the inverse of Role.String; unknown strings map to RoleHand.
func ParseRole(s string) Role {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "start":
		return RoleStart
	case "foot":
		return RoleFoot
	case "finish":
		return RoleFinish
	default:
		return RoleHand
	}
}

// Climbing reports whether the role counts toward difficulty and flow
// analysis (feet are excluded).
func (r Role) Climbing() bool {
	return r == RoleStart || r == RoleHand || r == RoleFinish
}

// Orientation is the facing direction of a hand hold.
type Orientation int

const (
	OrientNone Orientation = iota
	OrientUp
	OrientRight
	OrientDown
	OrientLeft
)

// ParseOrientation maps the layout file tags (u/r/d/l) to an Orientation.
func ParseOrientation(s string) Orientation {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "u":
		return OrientUp
	case "r":
		return OrientRight
	case "d":
		return OrientDown
	case "l":
		return OrientLeft
	}
	return OrientNone
}

// DifficultyLabel is the discrete grade derived from a composite score.
type DifficultyLabel int

const (
	Easy DifficultyLabel = iota
	Intermediate
	Hard
	VeryHard
)

func (d DifficultyLabel) String() string {
	switch d {
	case Easy:
		return "Easy"
	case Intermediate:
		return "Intermediate"
	case Hard:
		return "Hard"
	case VeryHard:
		return "VeryHard"
	}
	return "unknown"
}

// MarshalJSON encodes the label as its display name.
func (d DifficultyLabel) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON accepts label display names.
func (d *DifficultyLabel) UnmarshalJSON(b []byte) error {
	*d = ParseDifficultyLabel(strings.Trim(string(b), `"`))
	return nil
}

// ParseDifficultyLabel parses a label name; unknown strings map to Easy.
func ParseDifficultyLabel(s string) DifficultyLabel {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "intermediate":
		return Intermediate
	case "hard":
		return Hard
	case "veryhard", "very hard":
		return VeryHard
	default:
		return Easy
	}
}
