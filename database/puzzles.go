package database

import (
	"fmt"
	"time"

	"github.com/santidefelice/cspkit/database/data_model"
	"github.com/santidefelice/cspkit/sudoku"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SavePuzzle stores a puzzle under the given name, replacing any previous
// entry with the same name.
func SavePuzzle(db *gorm.DB, name string, grid sudoku.Grid, difficulty, source string) error {
	entry := &data_model.PuzzleEntry{
		Name:       name,
		Grid:       grid.Compact(),
		ClueCount:  grid.CountFilledCells(),
		Difficulty: difficulty,
		Source:     source,
	}

	result := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		UpdateAll: true,
	}).Create(entry)
	if result.Error != nil {
		return fmt.Errorf("failed to save puzzle %q: %s", name, result.Error)
	}

	return nil
}

// FindPuzzle looks a stored puzzle up by name.
func FindPuzzle(db *gorm.DB, name string) (*data_model.PuzzleEntry, sudoku.Grid, error) {
	entry := &data_model.PuzzleEntry{}

	result := db.Limit(1).Find(entry, "name = ?", name)
	if result.Error != nil {
		return nil, sudoku.Grid{}, fmt.Errorf("failed to query puzzle %q: %s", name, result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, sudoku.Grid{}, fmt.Errorf("no puzzle named %q", name)
	}

	grid, err := sudoku.ParseGrid(entry.Grid)
	if err != nil {
		return nil, sudoku.Grid{}, fmt.Errorf("stored puzzle %q is corrupted: %s", name, err)
	}

	return entry, grid, nil
}

// ListPuzzles returns stored puzzles, newest first.
func ListPuzzles(db *gorm.DB) ([]data_model.PuzzleEntry, error) {
	var entries []data_model.PuzzleEntry

	result := db.Order("created_at DESC").Find(&entries)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list puzzles: %s", result.Error)
	}

	return entries, nil
}

// RecordSolve appends one solve attempt to the history of a puzzle.
func RecordSolve(db *gorm.DB, puzzleName string, strategy sudoku.Strategy, solved bool, duration time.Duration, stats sudoku.Stats) error {
	record := &data_model.SolveRecord{
		PuzzleName:     puzzleName,
		Strategy:       strategy.String(),
		Solved:         solved,
		DurationMicros: duration.Microseconds(),
		BacktrackSteps: stats.BacktrackSteps,
	}

	if result := db.Create(record); result.Error != nil {
		return fmt.Errorf("failed to record solve for %q: %s", puzzleName, result.Error)
	}

	return nil
}
