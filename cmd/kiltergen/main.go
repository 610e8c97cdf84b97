// Command kiltergen generates and grades a single route from the command
// line: load a board layout, run the generator with a seed, print the board
// with the route overlaid, and optionally export the route as JSON.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"svw.info/kiltergen/internal/board"
	"svw.info/kiltergen/internal/domain"
	"svw.info/kiltergen/internal/generator"
	"svw.info/kiltergen/internal/infrastructure/layout"
	"svw.info/kiltergen/internal/scorer"
	"svw.info/kiltergen/internal/validator"
)

// Hold colors match the original board display palette.
var (
	startStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#00DD02")).Bold(true)
	handStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#03FFFF")).Bold(true)
	footStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFA500"))
	finishStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF00FF")).Bold(true)
	boardStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#3A3A3A"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#999999"))

	easyStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#00DD02")).Bold(true)
	interStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#007ACC")).Bold(true)
	hardStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFA500")).Bold(true)
	veryHardStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4D")).Bold(true)
)

func roleGlyph(r domain.Role) string {
	switch r {
	case domain.RoleStart:
		return startStyle.Render("S")
	case domain.RoleFoot:
		return footStyle.Render("f")
	case domain.RoleFinish:
		return finishStyle.Render("T")
	default:
		return handStyle.Render("o")
	}
}

func labelStyle(d domain.DifficultyLabel) lipgloss.Style {
	switch d {
	case domain.Intermediate:
		return interStyle
	case domain.Hard:
		return hardStyle
	case domain.VeryHard:
		return veryHardStyle
	default:
		return easyStyle
	}
}

// renderBoard draws the grid top row first with the route overlaid. Later
// route entries win a cell so finishes stay visible over earlier placements.
func renderBoard(holds *board.HoldSet, route *domain.Route) string {
	type cell struct{ col, row int }
	placed := make(map[cell]domain.Role, len(route.Holds))
	for _, h := range route.Holds {
		placed[cell{h.Col, h.Row}] = h.Role
	}

	var b strings.Builder
	for row := board.Rows; row >= 1; row-- {
		b.WriteString(dimStyle.Render(fmt.Sprintf("%2d ", row)))
		for col := 1; col <= board.Cols; col++ {
			if role, ok := placed[cell{col, row}]; ok {
				b.WriteString(roleGlyph(role))
			} else if holds.HasFootUsableAt(col, row) {
				b.WriteString(boardStyle.Render("."))
			} else {
				b.WriteString(" ")
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

func main() {
	layoutPath := flag.String("layout", "kilterBoardLayout.txt", "board layout file")
	seed := flag.Int64("seed", 0, "generation seed (0 = time-based)")
	minReach := flag.Float64("min-reach", 2, "minimum move distance")
	maxReach := flag.Float64("max-reach", 12, "maximum move distance")
	minMoves := flag.Int("min-moves", 2, "minimum hand moves")
	maxMoves := flag.Int("max-moves", 12, "maximum hand moves")
	twoFinishes := flag.Bool("two-finishes", true, "allow one or two finish holds")
	freeDirection := flag.Bool("free-direction", false, "allow downward and sideways moves")
	out := flag.String("o", "", "write the route as JSON to this path")
	name := flag.String("name", "", "route name stored in the export")
	flag.Parse()

	holds, err := layout.Load(*layoutPath)
	if err != nil {
		fatalf("kiltergen: %v", err)
	}
	holdSet := board.New(holds)

	params := domain.GenerationParams{
		MinMoves:         *minMoves,
		MaxMoves:         *maxMoves,
		MinReach:         *minReach,
		MaxReach:         *maxReach,
		AllowTwoFinishes: *twoFinishes,
		FreeDirection:    *freeDirection,
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	ctx := context.Background()
	route, st, err := generator.New(holdSet).Generate(ctx, *seed, params)
	if err != nil {
		fatalf("kiltergen: generate: %v", err)
	}

	score, err := scorer.NewDifficulty(holdSet).Score(ctx, route)
	if err != nil {
		fatalf("kiltergen: score: %v", err)
	}
	verdict, err := scorer.NewFlow().Flow(ctx, route)
	if err != nil {
		fatalf("kiltergen: flow: %v", err)
	}
	if ok, conflicts, _ := validator.New(holdSet).Validate(ctx, route, params); !ok {
		for _, c := range conflicts {
			fmt.Fprintf(os.Stderr, "kiltergen: invariant: %s (entry %d at %d,%d)\n", c.Reason, c.Index, c.Col, c.Row)
		}
		fatalf("kiltergen: generated route failed validation")
	}

	fmt.Print(renderBoard(holdSet, route))
	fmt.Printf("\n%s %s (score %.2f)\n",
		dimStyle.Render("difficulty:"),
		labelStyle(score.Label).Render(score.Label.String()),
		score.Value)
	if verdict != "" {
		fmt.Printf("%s %s\n", dimStyle.Render("flow:"), handStyle.Render(verdict))
	}
	fmt.Printf("%s seed=%d holds=%d moves=%d finish-attempts=%d in %v\n",
		dimStyle.Render("route:"),
		*seed, len(route.Holds), st.Moves, st.Attempts, st.Duration.Round(time.Microsecond))

	if *out != "" {
		sr := domain.SavedRoute{
			Seed:      *seed,
			Score:     score,
			Flow:      verdict,
			Route:     *route,
			CreatedAt: time.Now().UnixNano(),
			Name:      *name,
		}
		data, err := json.MarshalIndent(sr, "", "  ")
		if err != nil {
			fatalf("kiltergen: encode: %v", err)
		}
		if err := os.WriteFile(*out, data, 0o644); err != nil {
			fatalf("kiltergen: write %s: %v", *out, err)
		}
		fmt.Printf("%s %s\n", dimStyle.Render("saved:"), *out)
	}
}
