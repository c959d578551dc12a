package sudoku_test

import (
	"testing"
	"time"

	"github.com/santidefelice/cspkit/sudoku"
)

const knownPuzzle = `
	53. .7. ...
	6.. 195 ...
	.98 ... .6.
	8.. .6. ..3
	4.. 8.3 ..1
	7.. .2. ..6
	.6. ... 28.
	... 419 ..5
	... .8. .79
`

const knownSolution = "534678912672195348198342567859761423426853791713924856961537284287419635345286179"

func mustParse(t *testing.T, text string) sudoku.Grid {
	t.Helper()

	grid, err := sudoku.ParseGrid(text)
	if err != nil {
		t.Fatalf("failed to parse grid: %s", err)
	}

	return grid
}

func TestParseGridRoundTrip(t *testing.T) {
	grid := mustParse(t, knownPuzzle)

	if cnt := grid.CountFilledCells(); cnt != 30 {
		t.Fatalf("expecting 30 givens, got %d", cnt)
	}

	again := mustParse(t, grid.Compact())
	if again != grid {
		t.Fatalf("compact form does not round trip")
	}
}

func TestParseGridRejectsBadInput(t *testing.T) {
	cases := []string{
		"",
		"123",
		knownSolution + "1",
		"x" + knownSolution[1:],
	}

	for _, text := range cases {
		if _, err := sudoku.ParseGrid(text); err == nil {
			t.Errorf("expecting parse error for %q", text)
		}
	}
}

func TestSolveKnownPuzzleAllStrategies(t *testing.T) {
	puzzle := mustParse(t, knownPuzzle)
	want := mustParse(t, knownSolution)

	strategies := []sudoku.Strategy{
		sudoku.StrategyBasic,
		sudoku.StrategyConstraint,
		sudoku.StrategyHeuristic,
		sudoku.StrategyAdaptive,
	}

	for _, strategy := range strategies {
		solver := sudoku.New()
		solver.SetStrategy(strategy)
		solver.LoadPuzzle(puzzle)

		solved, _ := solver.Solve()
		if !solved {
			t.Fatalf("strategy %s failed to solve known puzzle", strategy)
		}

		got := solver.Grid()
		if !got.IsSolved() {
			t.Fatalf("strategy %s produced an invalid board", strategy)
		}
		if got != want {
			t.Fatalf("strategy %s found a different completion of a unique puzzle", strategy)
		}
	}
}

func TestSolvePreservesGivens(t *testing.T) {
	puzzle := mustParse(t, knownPuzzle)

	solver := sudoku.New()
	solver.LoadPuzzle(puzzle)

	solved, _ := solver.Solve()
	if !solved {
		t.Fatalf("failed to solve known puzzle")
	}

	got := solver.Grid()
	for i := 0; i < 9; i++ {
		for j := 0; j < 9; j++ {
			if puzzle[i][j] != 0 && got[i][j] != puzzle[i][j] {
				t.Fatalf("given at (%d, %d) changed from %d to %d", i, j, puzzle[i][j], got[i][j])
			}
		}
	}
}

func TestSolveRestoresGridOnFailure(t *testing.T) {
	// Cell (0, 8) sees 1-8 in its row and 9 in its column, leaving it without
	// any candidate. The givens themselves contain no duplicate.
	grid := sudoku.Grid{}
	for j := 0; j < 8; j++ {
		grid[0][j] = j + 1
	}
	grid[1][8] = 9

	if !grid.IsValid() {
		t.Fatalf("test board should contain no direct conflict")
	}

	for _, strategy := range []sudoku.Strategy{sudoku.StrategyBasic, sudoku.StrategyConstraint, sudoku.StrategyHeuristic} {
		solver := sudoku.New()
		solver.SetStrategy(strategy)
		solver.LoadPuzzle(grid)

		solved, _ := solver.Solve()
		if solved {
			t.Fatalf("strategy %s solved an unsolvable board", strategy)
		}
		if solver.Grid() != grid {
			t.Fatalf("strategy %s left the board modified after failed search", strategy)
		}
	}
}

func TestSolveRejectsContradictoryGivens(t *testing.T) {
	// A complete board with one value duplicated into its neighbor. Every
	// cell is filled, so only the givens check can catch the conflict.
	complete := mustParse(t, knownSolution)
	complete[0][0] = complete[0][1]

	// A sparse board with a duplicate in the first row.
	sparse := sudoku.Grid{}
	sparse[0][0] = 5
	sparse[0][8] = 5

	for _, grid := range []sudoku.Grid{complete, sparse} {
		for _, strategy := range []sudoku.Strategy{
			sudoku.StrategyBasic,
			sudoku.StrategyConstraint,
			sudoku.StrategyHeuristic,
			sudoku.StrategyAdaptive,
		} {
			solver := sudoku.New()
			solver.SetStrategy(strategy)
			solver.LoadPuzzle(grid)

			solved, _ := solver.Solve()
			if solved {
				t.Fatalf("strategy %s accepted contradictory givens", strategy)
			}
			if solver.Grid() != grid {
				t.Fatalf("strategy %s modified a rejected board", strategy)
			}
		}

		solver := sudoku.New()
		solver.LoadPuzzle(grid)
		if count := solver.CountSolutions(0); count != 0 {
			t.Fatalf("contradictory givens counted %d solutions", count)
		}
	}
}

func TestUnsolvableBoardFailsWithoutBranching(t *testing.T) {
	// Same dead cell as TestSolveRestoresGridOnFailure. Propagation has to
	// notice the empty candidate mask before the search places anything,
	// otherwise unsatisfiability is only proven by exhausting the board.
	grid := sudoku.Grid{}
	for j := 0; j < 8; j++ {
		grid[0][j] = j + 1
	}
	grid[1][8] = 9

	for _, strategy := range []sudoku.Strategy{sudoku.StrategyConstraint, sudoku.StrategyHeuristic, sudoku.StrategyAdaptive} {
		solver := sudoku.New()
		solver.SetStrategy(strategy)
		solver.LoadPuzzle(grid)

		if solved, _ := solver.Solve(); solved {
			t.Fatalf("strategy %s solved an unsolvable board", strategy)
		}
		if steps := solver.Stats().BacktrackSteps; steps != 0 {
			t.Fatalf("strategy %s branched %d times on a board propagation refutes", strategy, steps)
		}
	}
}

func TestSolveDurationMeasuresSolveOnly(t *testing.T) {
	solver := sudoku.New()
	solver.LoadPuzzle(mustParse(t, knownSolution))

	// Work done between load and solve must not be billed to the solve.
	time.Sleep(100 * time.Millisecond)

	solved, duration := solver.Solve()
	if !solved {
		t.Fatalf("failed to solve a complete board")
	}
	if duration >= 100*time.Millisecond {
		t.Fatalf("solve duration %s includes time spent before Solve", duration)
	}
}

func TestCountSolutionsUniquePuzzle(t *testing.T) {
	solver := sudoku.New()
	solver.LoadPuzzle(mustParse(t, knownPuzzle))

	if count := solver.CountSolutions(2); count != 1 {
		t.Fatalf("expecting exactly 1 solution, got %d", count)
	}
}

func TestCountSolutionsCap(t *testing.T) {
	// A near-empty board has a huge number of completions, the cap has to
	// stop the search early.
	grid := sudoku.Grid{}
	grid[0][0] = 1
	grid[4][4] = 5

	solver := sudoku.New()
	solver.LoadPuzzle(grid)

	if count := solver.CountSolutions(5); count != 5 {
		t.Fatalf("expecting capped count of 5, got %d", count)
	}

	if solver.Grid() != grid {
		t.Fatalf("counting modified the board")
	}
}

func TestCountSolutionsSolvedBoard(t *testing.T) {
	solver := sudoku.New()
	solver.LoadPuzzle(mustParse(t, knownSolution))

	if count := solver.CountSolutions(0); count != 1 {
		t.Fatalf("a complete board should count as its own single solution, got %d", count)
	}
}

func TestParseStrategy(t *testing.T) {
	for _, name := range []string{"basic", "constraint", "heuristic", "adaptive"} {
		strategy, err := sudoku.ParseStrategy(name)
		if err != nil {
			t.Fatalf("failed to parse strategy %q: %s", name, err)
		}
		if strategy.String() != name {
			t.Fatalf("strategy %q round trips to %q", name, strategy)
		}
	}

	if _, err := sudoku.ParseStrategy("bogus"); err == nil {
		t.Fatalf("expecting error for unknown strategy name")
	}
}
