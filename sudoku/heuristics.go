package sudoku

import "math/bits"

// findMRVCell returns the empty cell with the fewest remaining candidate
// values, or (-1, -1) when the grid has no empty cell. A cell with zero
// candidates is returned right away: its branch is already dead, and the
// caller's value loop over the empty mask fails it immediately.
func (s *Solver) findMRVCell() (int, int) {
	minCandidates := 10
	bestRow, bestCol := -1, -1

	for i := 0; i < 9; i++ {
		for j := 0; j < 9; j++ {
			if s.grid[i][j] != 0 {
				continue
			}

			count := bits.OnesCount16(s.candidates[i][j])
			if count == 0 {
				return i, j
			}
			if count < minCandidates {
				minCandidates = count
				bestRow, bestCol = i, j
			}
		}
	}

	return bestRow, bestCol
}

// candidateValues expands the candidate mask of a cell into a value list.
func (s *Solver) candidateValues(row, col int) []int {
	var values []int

	mask := s.candidates[row][col]
	for value := 1; value <= 9; value++ {
		if mask&(1<<value) != 0 {
			values = append(values, value)
		}
	}

	return values
}

func (s *Solver) isComplete() bool {
	for i := 0; i < 9; i++ {
		for j := 0; j < 9; j++ {
			if s.grid[i][j] == 0 {
				return false
			}
		}
	}
	return true
}

func (s *Solver) countEmptyCells() int {
	count := 0
	for i := 0; i < 9; i++ {
		for j := 0; j < 9; j++ {
			if s.grid[i][j] == 0 {
				count++
			}
		}
	}
	return count
}

// averageCandidateCount measures how branchy the remaining search space is.
func (s *Solver) averageCandidateCount() float64 {
	total := 0
	empty := 0

	for i := 0; i < 9; i++ {
		for j := 0; j < 9; j++ {
			if s.grid[i][j] == 0 {
				total += bits.OnesCount16(s.candidates[i][j])
				empty++
			}
		}
	}

	if empty == 0 {
		return 0
	}
	return float64(total) / float64(empty)
}
