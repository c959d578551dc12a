package sudoku

// solveBasic is plain backtracking over cells in row-major order, trying
// values 1-9 with a validity check before every placement.
func (s *Solver) solveBasic(row, col int) bool {
	if col == 9 {
		row++
		col = 0
	}
	if row == 9 {
		return true
	}

	if s.grid[row][col] != 0 {
		return s.solveBasic(row, col+1)
	}

	for value := 1; value <= 9; value++ {
		if !s.isValidMove(row, col, value) {
			continue
		}

		s.grid[row][col] = value
		s.stats.BacktrackSteps++

		if s.solveBasic(row, col+1) {
			return true
		}

		s.grid[row][col] = 0
	}

	return false
}

// solveWithConstraints interleaves constraint propagation with backtracking
// on whichever empty cell currently has the fewest candidates.
func (s *Solver) solveWithConstraints() bool {
	if !s.propagateConstraints() {
		return false
	}
	if s.isComplete() {
		return true
	}

	row, col := s.findMRVCell()
	if row == -1 {
		return false
	}

	mask := s.candidates[row][col]
	for value := 1; value <= 9; value++ {
		if mask&(1<<value) == 0 || !s.isValidMove(row, col, value) {
			continue
		}

		saved := s.snapshot()
		s.makeMove(row, col, value)
		s.stats.BacktrackSteps++

		if s.solveWithConstraints() {
			return true
		}

		s.restore(saved)
	}

	return false
}

// solveWithHeuristics is the constraint strategy with candidate values
// expanded up front, cheapest branch first.
func (s *Solver) solveWithHeuristics() bool {
	if !s.propagateConstraints() {
		return false
	}
	if s.isComplete() {
		return true
	}

	row, col := s.findMRVCell()
	if row == -1 {
		return false
	}

	for _, value := range s.candidateValues(row, col) {
		if !s.isValidMove(row, col, value) {
			continue
		}

		saved := s.snapshot()
		s.makeMove(row, col, value)
		s.stats.BacktrackSteps++

		if s.solveWithHeuristics() {
			return true
		}

		s.restore(saved)
	}

	return false
}

// solveAdaptive runs one propagation pass, then escalates strategy
// sophistication for the remaining search space.
func (s *Solver) solveAdaptive() bool {
	if !s.propagateConstraints() {
		return false
	}
	if s.isComplete() {
		return true
	}

	remaining := s.countEmptyCells()
	branching := s.averageCandidateCount()

	switch {
	case remaining <= 20 && branching <= 3.0:
		return s.solveBasic(0, 0)
	case remaining <= 45 && branching <= 5.0:
		return s.solveWithConstraints()
	default:
		return s.solveWithHeuristics()
	}
}

// searchState captures everything a propagation-based strategy mutates, so a
// failed branch can roll back placements made by propagation as well.
type searchState struct {
	grid       Grid
	candidates [9][9]uint16
	rowMask    [9]uint16
	colMask    [9]uint16
	boxMask    [9]uint16
}

func (s *Solver) snapshot() searchState {
	return searchState{
		grid:       s.grid,
		candidates: s.candidates,
		rowMask:    s.rowMask,
		colMask:    s.colMask,
		boxMask:    s.boxMask,
	}
}

func (s *Solver) restore(state searchState) {
	s.grid = state.grid
	s.candidates = state.candidates
	s.rowMask = state.rowMask
	s.colMask = state.colMask
	s.boxMask = state.boxMask
}
