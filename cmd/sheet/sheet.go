package sheet

import (
	"context"
	"fmt"

	"github.com/santidefelice/cspkit/base"
	"github.com/santidefelice/cspkit/database"
	"github.com/santidefelice/cspkit/dataset"
	"github.com/santidefelice/cspkit/sheet"
	"github.com/santidefelice/cspkit/sudoku"
	"github.com/urfave/cli/v3"
)

func Cmd() *cli.Command {
	return &cli.Command{
		Name:  "sheet",
		Usage: "render puzzles to a printable PDF",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "font",
				Usage:    "TTF font file used for titles and digits",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "output",
				Usage: "PDF file to write",
				Value: "puzzles.pdf",
			},
			&cli.StringFlag{
				Name:  "dataset",
				Usage: "take puzzles from this dataset file",
			},
			&cli.StringFlag{
				Name:  "db",
				Usage: "take all puzzles from this library",
			},
			&cli.IntFlag{
				Name:  "count",
				Usage: "generate this many fresh puzzles when no input is given",
			},
			&cli.IntFlag{
				Name:  "clues",
				Usage: "clue count for generated puzzles",
				Value: 30,
			},
			&cli.IntFlag{
				Name:  "seed",
				Usage: "random seed for generated puzzles, 0 picks one from the clock",
			},
			&cli.BoolFlag{
				Name:  "solutions",
				Usage: "append a solution page after each puzzle",
			},
		},
		ArgsUsage: "[puzzle files...]",
		Action:    runSheet,
	}
}

func runSheet(_ context.Context, cmd *cli.Command) error {
	var pages []sheet.Page

	for _, path := range cmd.Args().Slice() {
		info, err := base.ReadPuzzleFile(path)
		if err != nil {
			return err
		}

		pages = append(pages, sheet.Page{Title: info.Name, Grid: info.Grid})
	}

	if path := cmd.String("dataset"); path != "" {
		records, err := dataset.ReadAll(path)
		if err != nil {
			return err
		}

		for i, record := range records {
			grid, err := record.Parse()
			if err != nil {
				return fmt.Errorf("invalid record %d in %s: %s", i+1, path, err)
			}

			title := record.Name
			if title == "" {
				title = fmt.Sprintf("Puzzle %d", i+1)
			}

			pages = append(pages, sheet.Page{Title: title, Grid: grid})
		}
	}

	if dbPath := cmd.String("db"); dbPath != "" {
		db, err := database.Open(dbPath)
		if err != nil {
			return err
		}
		defer database.Close(db)

		entries, err := database.ListPuzzles(db)
		if err != nil {
			return err
		}

		for _, entry := range entries {
			grid, err := sudoku.ParseGrid(entry.Grid)
			if err != nil {
				return fmt.Errorf("stored puzzle %q is corrupted: %s", entry.Name, err)
			}

			pages = append(pages, sheet.Page{Title: entry.Name, Grid: grid})
		}
	}

	if count := int(cmd.Int("count")); count > 0 {
		generator := sudoku.NewGenerator(int64(cmd.Int("seed")))
		clues := int(cmd.Int("clues"))

		for i := 0; i < count; i++ {
			grid, _ := generator.Generate(clues)
			pages = append(pages, sheet.Page{
				Title: fmt.Sprintf("Puzzle %d", len(pages)+1),
				Grid:  grid,
			})
		}
	}

	if cmd.Bool("solutions") {
		pages = appendSolutions(pages)
	}

	return sheet.Write(pages, cmd.String("output"), sheet.Options{
		FontPath: cmd.String("font"),
	})
}

func appendSolutions(pages []sheet.Page) []sheet.Page {
	result := make([]sheet.Page, 0, len(pages)*2)
	solver := sudoku.New()

	for _, page := range pages {
		result = append(result, page)

		solver.LoadPuzzle(page.Grid)
		if solved, _ := solver.Solve(); solved {
			result = append(result, sheet.Page{
				Title: page.Title + " (solution)",
				Grid:  solver.Grid(),
			})
		}
	}

	return result
}
