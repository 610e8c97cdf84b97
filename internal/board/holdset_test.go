package board

import (
	"testing"

	"github.com/stretchr/testify/require"

	"svw.info/kiltergen/internal/domain"
)

func hand(col, row, diff int) domain.Hold {
	return domain.Hold{Col: col, Row: row, Kind: domain.KindHand, BaseDifficulty: diff, HasDifficulty: true}
}

func foot(col, row int) domain.Hold {
	return domain.Hold{Col: col, Row: row, Kind: domain.KindFoot}
}

func TestStartCandidatesRespectZone(t *testing.T) {
	s := New([]domain.Hold{
		hand(5, 6, 1),  // below the zone
		hand(5, 7, 1),  // low edge
		hand(5, 13, 1), // high edge
		hand(5, 14, 1), // above the zone
		foot(5, 10),    // feet never start
	})
	got := s.StartCandidates()
	require.Len(t, got, 2)
	for _, h := range got {
		require.Equal(t, domain.KindHand, h.Kind)
		require.GreaterOrEqual(t, h.Row, StartZoneLow)
		require.LessOrEqual(t, h.Row, StartZoneHigh)
	}
}

func TestFootCandidatesWindow(t *testing.T) {
	s := New([]domain.Hold{
		foot(10, 5),
		hand(11, 5, 2),                       // hands are foot-usable
		foot(10, 9),                          // not strictly below
		foot(20, 5),                          // outside the column window
		{Col: 12, Row: 5, Kind: domain.KindNone}, // empty positions never qualify
	})
	got := s.FootCandidates(9, 8, 14)
	require.Len(t, got, 2)
}

func TestBaseDifficultyFallsBackToNeutral(t *testing.T) {
	s := New([]domain.Hold{
		hand(3, 8, 4),
		{Col: 4, Row: 8, Kind: domain.KindHand}, // no recorded grade
	})
	require.Equal(t, 4, s.BaseDifficulty(3, 8))
	require.Equal(t, neutralDifficulty, s.BaseDifficulty(4, 8))
	require.Equal(t, neutralDifficulty, s.BaseDifficulty(30, 30))
}

func TestHasHandAt(t *testing.T) {
	s := New([]domain.Hold{hand(3, 8, 1), foot(4, 8)})
	require.True(t, s.HasHandAt(3, 8))
	require.False(t, s.HasHandAt(4, 8))
	require.True(t, s.HasFootUsableAt(4, 8))
	require.True(t, s.HasFootUsableAt(3, 8))
}
