package base_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/santidefelice/cspkit/base"
	"github.com/santidefelice/cspkit/sudoku"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write temp file: %s", err)
	}
	return path
}

func TestReadPuzzleFileRowForm(t *testing.T) {
	path := writeTempFile(t, "puzzle.json", `{
		"name": "sample",
		"difficulty": "medium",
		"grid": [
			"53..7....",
			"6..195...",
			".98....6.",
			"8...6...3",
			"4..8.3..1",
			"7...2...6",
			".6....28.",
			"...419..5",
			"....8..79"
		]
	}`)

	info, err := base.ReadPuzzleFile(path)
	if err != nil {
		t.Fatalf("failed to read puzzle file: %s", err)
	}

	if info.Name != "sample" || info.Difficulty != "medium" {
		t.Fatalf("metadata mismatch: %q / %q", info.Name, info.Difficulty)
	}
	if info.Grid.CountFilledCells() != 30 {
		t.Fatalf("expecting 30 givens, got %d", info.Grid.CountFilledCells())
	}
}

func TestReadPuzzleFileStringForm(t *testing.T) {
	grid, _ := sudoku.NewGenerator(3).Generate(25)

	path := writeTempFile(t, "compact.json", `{"grid": "`+grid.Compact()+`"}`)

	info, err := base.ReadPuzzleFile(path)
	if err != nil {
		t.Fatalf("failed to read puzzle file: %s", err)
	}

	if info.Grid != grid {
		t.Fatalf("grid mismatch after reading compact form")
	}
	// Name falls back to the file base name.
	if info.Name != "compact" {
		t.Fatalf("expecting default name %q, got %q", "compact", info.Name)
	}
}

func TestPuzzleFileSaveRoundTrip(t *testing.T) {
	grid, _ := sudoku.NewGenerator(11).Generate(30)

	info := &base.PuzzleFile{Name: "roundtrip", Difficulty: "hard", Grid: grid}

	path := filepath.Join(t.TempDir(), "out.json")
	if err := info.Save(path); err != nil {
		t.Fatalf("failed to save puzzle file: %s", err)
	}

	again, err := base.ReadPuzzleFile(path)
	if err != nil {
		t.Fatalf("failed to read saved puzzle file: %s", err)
	}

	if again.Name != info.Name || again.Difficulty != info.Difficulty || again.Grid != info.Grid {
		t.Fatalf("puzzle file does not round trip")
	}
}

func TestReadTaskSetFile(t *testing.T) {
	path := writeTempFile(t, "tasks.json", `{
		"name": "lab machines",
		"max_resources": 2,
		"tasks": [
			{"id": 1, "start": 0, "end": 3},
			{"id": 2, "start": 2, "end": 5},
			{"start": 4, "end": 7}
		]
	}`)

	info, err := base.ReadTaskSetFile(path)
	if err != nil {
		t.Fatalf("failed to read task set file: %s", err)
	}

	if info.MaxResources != 2 || len(info.Tasks) != 3 {
		t.Fatalf("task set mismatch: K=%d, %d tasks", info.MaxResources, len(info.Tasks))
	}
	// Tasks without an explicit ID get a positional one.
	if info.Tasks[2].ID != 3 {
		t.Fatalf("expecting default ID 3, got %d", info.Tasks[2].ID)
	}
}

func TestReadTaskSetFileRejectsEmptyInterval(t *testing.T) {
	path := writeTempFile(t, "bad.json", `{
		"max_resources": 1,
		"tasks": [{"id": 1, "start": 5, "end": 5}]
	}`)

	if _, err := base.ReadTaskSetFile(path); err == nil {
		t.Fatalf("expecting error for empty task interval")
	}
}

func TestReadCatalogFile(t *testing.T) {
	path := writeTempFile(t, "catalog.json", `{
		"name": "party",
		"budget": 30,
		"min_items": 5,
		"items": [
			{"name": "Soda", "price": 2.50},
			{"name": "Chips", "price": "3.00"},
			{"name": "Cake", "price": "$15", "max_quantity": 1}
		]
	}`)

	info, err := base.ReadCatalogFile(path)
	if err != nil {
		t.Fatalf("failed to read catalog file: %s", err)
	}

	if info.Budget != 3000 {
		t.Fatalf("expecting budget 3000 cents, got %d", info.Budget)
	}
	if len(info.Items) != 3 {
		t.Fatalf("expecting 3 items, got %d", len(info.Items))
	}
	if info.Items[0].Price != 250 || info.Items[1].Price != 300 || info.Items[2].Price != 1500 {
		t.Fatalf("price conversion mismatch: %+v", info.Items)
	}
	if info.Items[2].MaxQuantity != 1 {
		t.Fatalf("quantity limit lost for %q", info.Items[2].Name)
	}
}

func TestReadCatalogFileExponentPrice(t *testing.T) {
	// 2.5e1 and 3E2 are valid JSON numbers that json.Number hands over
	// verbatim.
	path := writeTempFile(t, "exponent.json", `{
		"budget": 3E2,
		"items": [{"name": "Soda", "price": 2.5e1}]
	}`)

	info, err := base.ReadCatalogFile(path)
	if err != nil {
		t.Fatalf("failed to read catalog file: %s", err)
	}

	if info.Budget != 30000 {
		t.Fatalf("expecting budget 30000 cents, got %d", info.Budget)
	}
	if info.Items[0].Price != 2500 {
		t.Fatalf("expecting price 2500 cents, got %d", info.Items[0].Price)
	}
}

func TestParsePrice(t *testing.T) {
	good := map[string]int64{
		"12.50":  1250,
		"$3":     300,
		"0.05":   5,
		"0.5":    50,
		"100":    10000,
		"-1.25":  -125,
		" $2.00": 200,
	}
	for text, want := range good {
		got, err := base.ParsePrice(text)
		if err != nil {
			t.Errorf("ParsePrice(%q) failed: %s", text, err)
			continue
		}
		if got != want {
			t.Errorf("ParsePrice(%q) = %d, expecting %d", text, got, want)
		}
	}

	for _, text := range []string{"", "abc", "1.234", "1.2x"} {
		if _, err := base.ParsePrice(text); err == nil {
			t.Errorf("expecting error for price %q", text)
		}
	}
}
