package database

import (
	"fmt"

	"github.com/glebarez/sqlite"
	"github.com/santidefelice/cspkit/database/data_model"

	"gorm.io/gorm"
)

func Open(filePath string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(filePath), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database %s: %s", filePath, err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(data_model.AllModels()...)
	if err != nil {
		return fmt.Errorf("database migration failed: %s", err)
	}

	return nil
}

func Close(db *gorm.DB) error {
	inner, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to close database, can't read inner data: %s", err)
	}

	err = inner.Close()
	if err != nil {
		return fmt.Errorf("failed to close inner database: %s", err)
	}

	return nil
}

// GetModel maps a table name used on command line to its model struct.
func GetModel(tableName string) any {
	switch tableName {
	case "puzzles", "puzzle_entries":
		return &data_model.PuzzleEntry{}
	case "solves", "solve_records":
		return &data_model.SolveRecord{}
	default:
		return nil
	}
}
