package sudoku

import "math/bits"

// detectDifficulty classifies the loaded puzzle from its clue count and the
// average candidate density of empty cells.
func (s *Solver) detectDifficulty() Difficulty {
	filled := 0
	totalCandidates := 0
	empty := 0

	for i := 0; i < 9; i++ {
		for j := 0; j < 9; j++ {
			if s.grid[i][j] != 0 {
				filled++
			} else {
				totalCandidates += bits.OnesCount16(s.candidates[i][j])
				empty++
			}
		}
	}

	if empty == 0 {
		return DifficultyEasy
	}

	average := float64(totalCandidates) / float64(empty)
	switch {
	case filled >= 50 && average <= 3.0:
		return DifficultyEasy
	case filled >= 35 && average <= 5.0:
		return DifficultyMedium
	case filled >= 25 && average <= 7.0:
		return DifficultyHard
	case filled >= 17:
		return DifficultyExtreme
	default:
		return DifficultyUnknown
	}
}

// selectStrategy picks a search strategy suited to the detected difficulty.
func (s *Solver) selectStrategy() Strategy {
	switch s.difficulty {
	case DifficultyEasy:
		return StrategyBasic
	case DifficultyMedium:
		return StrategyConstraint
	case DifficultyHard, DifficultyExtreme:
		return StrategyHeuristic
	default:
		return StrategyAdaptive
	}
}
