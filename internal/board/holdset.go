package board

import "svw.info/kiltergen/internal/domain"

// Board dimensions of the physical wall: a 35x35 grid of hold positions.
const (
	Rows = 35
	Cols = 35
)

// Start zone rows: route starts are placed at a comfortable mid-board
// height, matching real route-setting practice.
const (
	StartZoneLow  = 7
	StartZoneHigh = 13
)

type diffKey struct{ col, row int }

// HoldSet is the immutable collection of all holds on the board. It is
// built once at startup and read-only thereafter, so unsynchronized
// concurrent reads from parallel generation calls are safe.
type HoldSet struct {
	holds      []domain.Hold
	hands      []domain.Hold
	startZone  []domain.Hold
	difficulty map[diffKey]int
}

// New builds a HoldSet from an already-parsed hold list. The input slice is
// copied; callers may discard or reuse it.
func New(holds []domain.Hold) *HoldSet {
	s := &HoldSet{
		holds:      append([]domain.Hold(nil), holds...),
		difficulty: make(map[diffKey]int),
	}
	for _, h := range s.holds {
		if h.Kind != domain.KindHand {
			continue
		}
		s.hands = append(s.hands, h)
		if h.Row >= StartZoneLow && h.Row <= StartZoneHigh {
			s.startZone = append(s.startZone, h)
		}
		if h.HasDifficulty {
			s.difficulty[diffKey{h.Col, h.Row}] = h.BaseDifficulty
		}
	}
	return s
}

// Len returns the total number of holds on the board.
func (s *HoldSet) Len() int { return len(s.holds) }

// Hands returns a fresh slice of all hand-kind holds.
func (s *HoldSet) Hands() []domain.Hold {
	return append([]domain.Hold(nil), s.hands...)
}

// StartCandidates returns a fresh slice of hand holds inside the start zone.
func (s *HoldSet) StartCandidates() []domain.Hold {
	return append([]domain.Hold(nil), s.startZone...)
}

// FootCandidates returns holds usable by feet (foot holds plus hand holds,
// which climbers routinely smear on) strictly below belowRow and with
// column in [leftCol, rightCol].
func (s *HoldSet) FootCandidates(belowRow, leftCol, rightCol int) []domain.Hold {
	var out []domain.Hold
	for _, h := range s.holds {
		if h.Kind == domain.KindNone {
			continue
		}
		if h.Row < belowRow && h.Col >= leftCol && h.Col <= rightCol {
			out = append(out, h)
		}
	}
	return out
}

// HasHandAt reports whether a hand hold exists at the position.
func (s *HoldSet) HasHandAt(col, row int) bool {
	for _, h := range s.hands {
		if h.Col == col && h.Row == row {
			return true
		}
	}
	return false
}

// HasFootUsableAt reports whether any climbable hold (hand or foot kind)
// exists at the position.
func (s *HoldSet) HasFootUsableAt(col, row int) bool {
	for _, h := range s.holds {
		if h.Col == col && h.Row == row && h.Kind != domain.KindNone {
			return true
		}
	}
	return false
}

// neutralDifficulty substitutes for holds without a recorded grade.
const neutralDifficulty = 2

// BaseDifficulty returns the recorded base difficulty of the hand hold at
// the position, or the neutral default when the hold is unknown or carries
// no grade.
func (s *HoldSet) BaseDifficulty(col, row int) int {
	if d, ok := s.difficulty[diffKey{col, row}]; ok {
		return d
	}
	return neutralDifficulty
}
