package board

import "math"

// Distance is the Euclidean distance between two board positions. Columns
// and rows are treated as the same unit of board-cell pitch even though the
// physical row pitch varies; generation and scoring both rely on this
// simplification, so it must stay consistent across the module.
func Distance(aCol, aRow, bCol, bRow int) float64 {
	dx := float64(aCol - bCol)
	dy := float64(aRow - bRow)
	return math.Sqrt(dx*dx + dy*dy)
}

// Reachable reports whether a move between the two positions is permitted:
// minReach <= distance <= maxReach, both bounds inclusive. This is the sole
// notion of reach in the system; there is no path-finding or obstruction
// modeling.
func Reachable(aCol, aRow, bCol, bRow int, minReach, maxReach float64) bool {
	d := Distance(aCol, aRow, bCol, bRow)
	return d >= minReach && d <= maxReach
}
