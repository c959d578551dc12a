package sudoku

import "time"

// Solver is a backtracking Sudoku search engine. Candidate values per cell
// are tracked as bitmasks so constraint checks stay cheap during the search.
type Solver struct {
	grid     Grid
	original Grid

	// Bits 1-9 of each mask mark possible values for the cell.
	candidates [9][9]uint16

	// Values already used in each row, column and 3x3 box.
	rowMask [9]uint16
	colMask [9]uint16
	boxMask [9]uint16

	strategy     Strategy
	autoStrategy bool
	difficulty   Difficulty

	stats Stats
}

// New creates a solver with adaptive strategy selection enabled.
func New() *Solver {
	return &Solver{
		strategy:     StrategyAdaptive,
		autoStrategy: true,
	}
}

// LoadPuzzle resets the solver for a new puzzle.
func (s *Solver) LoadPuzzle(puzzle Grid) {
	s.grid = puzzle
	s.original = puzzle
	s.initializeCandidates()
	s.rebuildConstraintMasks()

	s.difficulty = s.detectDifficulty()
	if s.autoStrategy {
		s.strategy = s.selectStrategy()
	}

	s.stats = Stats{}
}

// Solve searches for a completion of the loaded puzzle with the active
// strategy. Contradictory givens fail without searching. When no solution
// exists the grid is restored to the loaded state.
func (s *Solver) Solve() (bool, time.Duration) {
	startTime := time.Now()

	if !s.original.IsValid() {
		return false, time.Since(startTime)
	}

	var solved bool

	switch s.strategy {
	case StrategyBasic:
		solved = s.solveBasic(0, 0)
	case StrategyConstraint:
		solved = s.solveWithConstraints()
	case StrategyHeuristic:
		solved = s.solveWithHeuristics()
	case StrategyAdaptive:
		solved = s.solveAdaptive()
	default:
		solved = s.solveBasic(0, 0)
	}

	if !solved {
		// Propagation may have partially filled the grid before the search
		// proved there is no solution.
		s.grid = s.original
		s.rebuildConstraintMasks()
	}

	return solved, time.Since(startTime)
}

// CountSolutions counts completions of the loaded puzzle, stopping once max
// solutions are found. A non-positive max counts every solution. The grid is
// left in its loaded state afterwards.
func (s *Solver) CountSolutions(max int) int {
	if !s.original.IsValid() {
		return 0
	}

	// The counter branches on candidate masks, so they have to match the
	// grid even when a prior basic-strategy solve wrote past them.
	s.rebuildConstraintMasks()

	count := 0

	var search func(row, col int) bool
	search = func(row, col int) bool {
		if col == 9 {
			row++
			col = 0
		}
		if row == 9 {
			count++
			return max > 0 && count >= max
		}

		if s.grid[row][col] != 0 {
			return search(row, col+1)
		}

		mask := s.candidates[row][col]
		for value := 1; value <= 9; value++ {
			if mask&(1<<value) == 0 {
				continue
			}

			s.makeMove(row, col, value)
			stop := search(row, col+1)
			s.unmakeMove(row, col, value)

			if stop {
				return true
			}
		}

		return false
	}

	search(0, 0)

	return count
}

// Grid returns the current board state.
func (s *Solver) Grid() Grid {
	return s.grid
}

// Stats returns effort counters for the last solve.
func (s *Solver) Stats() Stats {
	return s.stats
}

// Difficulty returns the classification detected on puzzle load.
func (s *Solver) Difficulty() Difficulty {
	return s.difficulty
}

// SetStrategy pins the solver to one strategy, disabling adaptive selection.
func (s *Solver) SetStrategy(strategy Strategy) {
	s.strategy = strategy
	s.autoStrategy = strategy == StrategyAdaptive
}
