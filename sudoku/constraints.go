package sudoku

import "math/bits"

const fullCandidateMask uint16 = 0x3FE // bits 1-9 set

// isValidMove checks whether value can be placed at (row, col) without
// breaking a row, column or box constraint.
func (s *Solver) isValidMove(row, col, value int) bool {
	if row < 0 || row >= 9 || col < 0 || col >= 9 || value < 1 || value > 9 {
		return false
	}
	if s.grid[row][col] != 0 {
		return false
	}

	for i := 0; i < 9; i++ {
		if s.grid[row][i] == value || s.grid[i][col] == value {
			return false
		}
	}

	startRow := (row / 3) * 3
	startCol := (col / 3) * 3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if s.grid[startRow+i][startCol+j] == value {
				return false
			}
		}
	}

	return true
}

// makeMove places value at (row, col) and strips it from the candidates of
// every peer cell.
func (s *Solver) makeMove(row, col, value int) {
	s.grid[row][col] = value
	s.candidates[row][col] = 0

	box := (row/3)*3 + col/3
	valueMask := uint16(1) << value

	s.rowMask[row] |= valueMask
	s.colMask[col] |= valueMask
	s.boxMask[box] |= valueMask

	for i := 0; i < 9; i++ {
		if s.grid[row][i] == 0 {
			s.candidates[row][i] &^= valueMask
		}
		if s.grid[i][col] == 0 {
			s.candidates[i][col] &^= valueMask
		}
	}

	startRow := (box / 3) * 3
	startCol := (box % 3) * 3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if s.grid[startRow+i][startCol+j] == 0 {
				s.candidates[startRow+i][startCol+j] &^= valueMask
			}
		}
	}
}

// unmakeMove clears (row, col) and recomputes candidates for all empty cells.
// Peers may regain the removed value, so a full recompute keeps masks exact.
func (s *Solver) unmakeMove(row, col, value int) {
	s.grid[row][col] = 0

	box := (row/3)*3 + col/3
	valueMask := uint16(1) << value

	s.rowMask[row] &^= valueMask
	s.colMask[col] &^= valueMask
	s.boxMask[box] &^= valueMask

	s.recomputeAllCandidates()
}

func (s *Solver) initializeCandidates() {
	for i := 0; i < 9; i++ {
		for j := 0; j < 9; j++ {
			if s.grid[i][j] == 0 {
				s.candidates[i][j] = fullCandidateMask
			} else {
				s.candidates[i][j] = 0
			}
		}
	}
}

// rebuildConstraintMasks derives row, column and box masks from the grid,
// then refreshes every candidate mask.
func (s *Solver) rebuildConstraintMasks() {
	for i := 0; i < 9; i++ {
		s.rowMask[i] = 0
		s.colMask[i] = 0
		s.boxMask[i] = 0
	}

	for i := 0; i < 9; i++ {
		for j := 0; j < 9; j++ {
			if value := s.grid[i][j]; value != 0 {
				s.rowMask[i] |= 1 << value
				s.colMask[j] |= 1 << value
				s.boxMask[(i/3)*3+j/3] |= 1 << value
			}
		}
	}

	s.recomputeAllCandidates()
}

func (s *Solver) recomputeAllCandidates() {
	for i := 0; i < 9; i++ {
		for j := 0; j < 9; j++ {
			if s.grid[i][j] != 0 {
				s.candidates[i][j] = 0
				continue
			}

			box := (i/3)*3 + j/3
			used := s.rowMask[i] | s.colMask[j] | s.boxMask[box]
			s.candidates[i][j] = fullCandidateMask &^ used
			s.stats.CandidateUpdates++
		}
	}
}

// propagateConstraints applies naked single and hidden single deductions
// until a fixpoint is reached. Returns false when an empty cell runs out of
// candidates, meaning the current state cannot be completed.
func (s *Solver) propagateConstraints() bool {
	for {
		progress := s.fillNakedSingles()
		progress = s.fillHiddenSingles() || progress

		if s.hasContradiction() {
			return false
		}
		if !progress {
			return true
		}

		s.stats.PropagationRounds++
	}
}

// hasContradiction reports whether any empty cell has no candidate left.
func (s *Solver) hasContradiction() bool {
	for i := 0; i < 9; i++ {
		for j := 0; j < 9; j++ {
			if s.grid[i][j] == 0 && s.candidates[i][j] == 0 {
				return true
			}
		}
	}
	return false
}

// fillNakedSingles places values in cells whose candidate mask has exactly
// one bit set.
func (s *Solver) fillNakedSingles() bool {
	progress := false

	for i := 0; i < 9; i++ {
		for j := 0; j < 9; j++ {
			if s.grid[i][j] != 0 || bits.OnesCount16(s.candidates[i][j]) != 1 {
				continue
			}

			value := bits.TrailingZeros16(s.candidates[i][j])
			s.makeMove(i, j, value)
			progress = true
		}
	}

	return progress
}

// fillHiddenSingles places values that have exactly one possible cell left
// within a row, column or box.
func (s *Solver) fillHiddenSingles() bool {
	progress := false

	for unit := 0; unit < 9; unit++ {
		progress = s.hiddenSinglesInUnit(rowCells(unit)) || progress
		progress = s.hiddenSinglesInUnit(colCells(unit)) || progress
		progress = s.hiddenSinglesInUnit(boxCells(unit)) || progress
	}

	return progress
}

func (s *Solver) hiddenSinglesInUnit(cells [9][2]int) bool {
	progress := false

	for value := 1; value <= 9; value++ {
		targetRow, targetCol := -1, -1
		count := 0

		for _, cell := range cells {
			row, col := cell[0], cell[1]
			if s.grid[row][col] == 0 && s.candidates[row][col]&(1<<value) != 0 {
				targetRow, targetCol = row, col
				count++
			}
		}

		if count == 1 {
			s.makeMove(targetRow, targetCol, value)
			progress = true
		}
	}

	return progress
}

func rowCells(row int) [9][2]int {
	var cells [9][2]int
	for j := 0; j < 9; j++ {
		cells[j] = [2]int{row, j}
	}
	return cells
}

func colCells(col int) [9][2]int {
	var cells [9][2]int
	for i := 0; i < 9; i++ {
		cells[i] = [2]int{i, col}
	}
	return cells
}

func boxCells(box int) [9][2]int {
	var cells [9][2]int
	startRow := (box / 3) * 3
	startCol := (box % 3) * 3

	index := 0
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			cells[index] = [2]int{startRow + i, startCol + j}
			index++
		}
	}
	return cells
}
