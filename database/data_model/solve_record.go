package data_model

import "gorm.io/gorm"

// SolveRecord is one solve attempt against a stored puzzle.
type SolveRecord struct {
	gorm.Model

	PuzzleName     string
	Strategy       string
	Solved         bool
	DurationMicros int64
	BacktrackSteps uint64
}
