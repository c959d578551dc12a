package sheet_test

import (
	"path/filepath"
	"testing"

	"github.com/santidefelice/cspkit/sheet"
	"github.com/santidefelice/cspkit/sudoku"
)

func TestWriteRequiresFont(t *testing.T) {
	grid, _ := sudoku.NewGenerator(1).Generate(25)
	pages := []sheet.Page{{Title: "test", Grid: grid}}
	out := filepath.Join(t.TempDir(), "out.pdf")

	if err := sheet.Write(pages, out, sheet.Options{}); err == nil {
		t.Fatalf("expecting error when no font is given")
	}

	missing := filepath.Join(t.TempDir(), "missing.ttf")
	if err := sheet.Write(pages, out, sheet.Options{FontPath: missing}); err == nil {
		t.Fatalf("expecting error for missing font file")
	}
}

func TestWriteRequiresBoards(t *testing.T) {
	if err := sheet.Write(nil, "out.pdf", sheet.Options{}); err == nil {
		t.Fatalf("expecting error for empty page list")
	}
}
