package sudoku

import (
	"math/rand"
	"time"
)

const (
	defaultGenerateTries = 200
	maxPlacementAttempts = 2000
)

// Generator produces random puzzles with a requested number of clues.
type Generator struct {
	rng      *rand.Rand
	maxTries int
}

// NewGenerator creates a generator. A zero seed picks one from the clock.
func NewGenerator(seed int64) *Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Generator{
		rng:      rand.New(rand.NewSource(seed)),
		maxTries: defaultGenerateTries,
	}
}

// Generate builds a puzzle with the given clue count by randomly placing
// values that respect local constraints, then verifying that at least one
// full solution exists. Placement rounds are retried until a solvable board
// comes out; if every round fails, the last locally valid board is returned
// with solvable=false.
func (g *Generator) Generate(clues int) (Grid, bool) {
	if clues < 0 {
		clues = 0
	}
	if clues > 81 {
		clues = 81
	}

	solver := New()
	var grid Grid

	for try := 0; try < g.maxTries; try++ {
		grid = Grid{}
		solver.LoadPuzzle(grid)

		filled := 0
		for attempt := 0; filled < clues && attempt < maxPlacementAttempts; attempt++ {
			row := g.rng.Intn(9)
			col := g.rng.Intn(9)
			value := g.rng.Intn(9) + 1

			if grid[row][col] == 0 && solver.isValidMove(row, col, value) {
				grid[row][col] = value
				solver.grid[row][col] = value
				filled++
			}
		}

		if filled < clues {
			// Ran out of placement attempts this round, start over.
			continue
		}

		solver.LoadPuzzle(grid)
		if solved, _ := solver.Solve(); solved {
			return grid, true
		}
	}

	return grid, false
}
