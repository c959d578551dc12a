package sudoku

import "fmt"

// Grid is a 9x9 Sudoku board. Zero means empty cell.
type Grid [9][9]int

// Strategy selects the search algorithm used by Solver.
type Strategy int

const (
	StrategyBasic      Strategy = iota // plain backtracking over cells in row-major order
	StrategyConstraint                 // constraint propagation before every branch
	StrategyHeuristic                  // propagation plus minimum-remaining-values cell ordering
	StrategyAdaptive                   // pick one of the above from detected difficulty
)

var strategyNames = []string{"basic", "constraint", "heuristic", "adaptive"}

func (s Strategy) String() string {
	if int(s) < len(strategyNames) {
		return strategyNames[s]
	}
	return "unknown"
}

// ParseStrategy maps a strategy name used on command line to its enum value.
func ParseStrategy(name string) (Strategy, error) {
	for i, candidate := range strategyNames {
		if candidate == name {
			return Strategy(i), nil
		}
	}
	return StrategyAdaptive, fmt.Errorf("unknown strategy name %q", name)
}

// Difficulty is a rough classification of how hard a puzzle is to search.
type Difficulty int

const (
	DifficultyEasy Difficulty = iota
	DifficultyMedium
	DifficultyHard
	DifficultyExtreme
	DifficultyUnknown
)

func (d Difficulty) String() string {
	names := []string{"easy", "medium", "hard", "extreme", "unknown"}
	if int(d) < len(names) {
		return names[d]
	}
	return "unknown"
}

// Stats collects counters describing the effort spent on the last solve.
type Stats struct {
	BacktrackSteps    uint64
	PropagationRounds uint64
	CandidateUpdates  uint64
}
