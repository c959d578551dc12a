package sudoku_test

import (
	"testing"

	"github.com/santidefelice/cspkit/sudoku"
)

func TestGenerateClueCount(t *testing.T) {
	gen := sudoku.NewGenerator(42)

	for _, clues := range []int{10, 20, 30} {
		grid, solvable := gen.Generate(clues)

		if !solvable {
			t.Fatalf("generator failed to produce a solvable board with %d clues", clues)
		}
		if got := grid.CountFilledCells(); got != clues {
			t.Fatalf("expecting %d clues, got %d", clues, got)
		}
		if !grid.IsValid() {
			t.Fatalf("generated board with %d clues violates constraints", clues)
		}
	}
}

func TestGenerateDeterministicWithSeed(t *testing.T) {
	first, _ := sudoku.NewGenerator(7).Generate(25)
	second, _ := sudoku.NewGenerator(7).Generate(25)

	if first != second {
		t.Fatalf("same seed should generate the same board")
	}
}

func TestGeneratedBoardIsSolvable(t *testing.T) {
	grid, solvable := sudoku.NewGenerator(99).Generate(20)
	if !solvable {
		t.Fatalf("generator reported unsolvable board")
	}

	solver := sudoku.New()
	solver.LoadPuzzle(grid)

	if solved, _ := solver.Solve(); !solved {
		t.Fatalf("solver can not complete a board the generator verified")
	}
}
