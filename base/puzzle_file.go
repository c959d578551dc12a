package base

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/santidefelice/cspkit/sudoku"
)

// Represents a Sudoku puzzle stored on disk.
type PuzzleFile struct {
	Name       string
	Difficulty string
	Grid       sudoku.Grid
}

type rawPuzzleFile struct {
	Name       string          `json:"name"`
	Difficulty string          `json:"difficulty,omitempty"`
	Grid       json.RawMessage `json:"grid"`
}

// Generates puzzle struct from JSON file. The grid field accepts either one
// 81 character string or an array of 9 row strings.
func ReadPuzzleFile(infoPath string) (*PuzzleFile, error) {
	data, err := os.ReadFile(infoPath)
	if err != nil {
		return nil, fmt.Errorf("can't read puzzle file %s: %s", infoPath, err)
	}

	raw := &rawPuzzleFile{}
	if err := json.Unmarshal(data, raw); err != nil {
		return nil, fmt.Errorf("unable to parse puzzle data in %s: %s", infoPath, err)
	}

	grid, err := decodeGridField(raw.Grid)
	if err != nil {
		return nil, fmt.Errorf("invalid grid in %s: %s", infoPath, err)
	}

	name := raw.Name
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(infoPath), filepath.Ext(infoPath))
	}

	return &PuzzleFile{
		Name:       name,
		Difficulty: raw.Difficulty,
		Grid:       grid,
	}, nil
}

// Save puzzle struct to file, grid is stored as 9 row strings for
// readability.
func (p *PuzzleFile) Save(fileName string) error {
	rows := make([]string, 9)
	compact := p.Grid.Compact()
	for i := 0; i < 9; i++ {
		rows[i] = compact[i*9 : i*9+9]
	}

	raw := struct {
		Name       string   `json:"name"`
		Difficulty string   `json:"difficulty,omitempty"`
		Grid       []string `json:"grid"`
	}{
		Name:       p.Name,
		Difficulty: p.Difficulty,
		Grid:       rows,
	}

	data, err := json.MarshalIndent(raw, "", "    ")
	if err != nil {
		return fmt.Errorf("JSON conversion failed: %s", err)
	}

	err = os.WriteFile(fileName, data, 0o644)
	if err != nil {
		return fmt.Errorf("failed to write puzzle file: %s", err)
	}

	return nil
}

func decodeGridField(raw json.RawMessage) (sudoku.Grid, error) {
	var asString string
	if err := json.Unmarshal(raw, &asString); err == nil {
		return sudoku.ParseGrid(asString)
	}

	var asRows []string
	if err := json.Unmarshal(raw, &asRows); err == nil {
		return sudoku.ParseGrid(strings.Join(asRows, "\n"))
	}

	return sudoku.Grid{}, fmt.Errorf("grid field must be a string or an array of row strings")
}
