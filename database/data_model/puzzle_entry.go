package data_model

import "gorm.io/gorm"

// PuzzleEntry is one stored Sudoku puzzle. The grid is kept in its 81
// character compact form.
type PuzzleEntry struct {
	gorm.Model

	Name       string `gorm:"unique"`
	Grid       string
	ClueCount  int
	Difficulty string
	Source     string
}
