// Package layout parses the board layout text format: one hold per line,
//
//	col row kind [orientation [grip baseDifficulty]]
//
// kind is h (hand), f (foot) or n (empty); orientation (u/r/d/l), grip and
// base difficulty (0-5) appear on hand holds only.
package layout

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"svw.info/kiltergen/internal/domain"
)

// Parse reads hold records from r. Blank lines are skipped; malformed lines
// fail with their line number.
func Parse(r io.Reader) ([]domain.Hold, error) {
	var holds []domain.Hold
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) < 3 {
			return nil, fmt.Errorf("layout line %d: want at least 3 fields, got %d", lineNo, len(fields))
		}
		col, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("layout line %d: column: %w", lineNo, err)
		}
		row, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("layout line %d: row: %w", lineNo, err)
		}
		h := domain.Hold{Col: col, Row: row, Kind: domain.ParseHoldKind(fields[2])}
		if len(fields) >= 4 {
			h.Orientation = domain.ParseOrientation(fields[3])
		}
		if h.Kind == domain.KindHand && len(fields) >= 6 {
			h.Grip = fields[4]
			d, err := strconv.Atoi(fields[5])
			if err != nil {
				return nil, fmt.Errorf("layout line %d: base difficulty: %w", lineNo, err)
			}
			h.BaseDifficulty = d
			h.HasDifficulty = true
		}
		holds = append(holds, h)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	return holds, nil
}

// Load parses the layout file at path.
func Load(path string) ([]domain.Hold, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("layout: open %s: %w", path, err)
	}
	defer f.Close()
	return Parse(f)
}
