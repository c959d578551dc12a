package sudoku

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/santidefelice/cspkit/base"
	"github.com/santidefelice/cspkit/common"
	"github.com/santidefelice/cspkit/database"
	"github.com/santidefelice/cspkit/dataset"
	"github.com/santidefelice/cspkit/sudoku"
	"github.com/schollz/progressbar/v3"
	"github.com/urfave/cli/v3"
)

const defaultLibraryPath = "library.db"

func dbFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:  "db",
		Usage: "puzzle library path",
		Value: defaultLibraryPath,
	}
}

func subCmdAdd() *cli.Command {
	var puzzlePath string

	return &cli.Command{
		Name:  "add",
		Usage: "add a puzzle file to the library",
		Arguments: []cli.Argument{
			&cli.StringArg{
				Name:        "puzzle",
				UsageText:   "<puzzle>",
				Destination: &puzzlePath,
				Min:         1,
				Max:         1,
			},
		},
		Flags: []cli.Flag{
			dbFlag(),
			&cli.StringFlag{
				Name:  "name",
				Usage: "store the puzzle under this name instead of the file's own",
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			info, err := base.ReadPuzzleFile(puzzlePath)
			if err != nil {
				return err
			}

			db, err := database.Open(cmd.String("db"))
			if err != nil {
				return err
			}
			defer database.Close(db)

			name := common.GetStrOr(cmd.String("name"), info.Name)
			difficulty := info.Difficulty
			if difficulty == "" {
				solver := sudoku.New()
				solver.LoadPuzzle(info.Grid)
				difficulty = solver.Difficulty().String()
			}

			if err := database.SavePuzzle(db, name, info.Grid, difficulty, "file"); err != nil {
				return err
			}

			log.Infof("puzzle %s added to library", name)

			return nil
		},
	}
}

func subCmdList() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "list puzzles stored in the library",
		Flags: []cli.Flag{
			dbFlag(),
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			db, err := database.Open(cmd.String("db"))
			if err != nil {
				return err
			}
			defer database.Close(db)

			entries, err := database.ListPuzzles(db)
			if err != nil {
				return err
			}

			if len(entries) == 0 {
				log.Info("library is empty")
				return nil
			}

			for _, entry := range entries {
				fmt.Printf("%-24s  %2d clues  %-8s  %s\n",
					entry.Name, entry.ClueCount, entry.Difficulty, entry.Source)
			}

			return nil
		},
	}
}

func subCmdImport() *cli.Command {
	var datasetPath string

	return &cli.Command{
		Name:  "import",
		Usage: "import a dataset file into the library",
		Arguments: []cli.Argument{
			&cli.StringArg{
				Name:        "dataset",
				UsageText:   "<dataset>",
				Destination: &datasetPath,
				Min:         1,
				Max:         1,
			},
		},
		Flags: []cli.Flag{
			dbFlag(),
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			records, err := dataset.ReadAll(datasetPath)
			if err != nil {
				return err
			}

			db, err := database.Open(cmd.String("db"))
			if err != nil {
				return err
			}
			defer database.Close(db)

			source := filepath.Base(datasetPath)
			bar := progressbar.Default(int64(len(records)), "importing")

			imported := 0
			for i, record := range records {
				bar.Add(1)

				grid, err := record.Parse()
				if err != nil {
					log.Warnf("skipping record %d: %s", i+1, err)
					continue
				}

				name := common.GetStrOr(record.Name, fmt.Sprintf("%s-%d", strings.TrimSuffix(source, filepath.Ext(source)), i+1))

				difficulty := record.Difficulty
				if difficulty == "" {
					solver := sudoku.New()
					solver.LoadPuzzle(grid)
					difficulty = solver.Difficulty().String()
				}

				if err := database.SavePuzzle(db, name, grid, difficulty, source); err != nil {
					return err
				}
				imported++
			}

			log.Infof("imported %d of %d records", imported, len(records))

			return nil
		},
	}
}

func subCmdExport() *cli.Command {
	var outputPath string

	return &cli.Command{
		Name:  "export",
		Usage: "export library puzzles to a dataset file",
		Arguments: []cli.Argument{
			&cli.StringArg{
				Name:        "output",
				UsageText:   "<output>",
				Destination: &outputPath,
				Min:         1,
				Max:         1,
			},
		},
		Flags: []cli.Flag{
			dbFlag(),
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			db, err := database.Open(cmd.String("db"))
			if err != nil {
				return err
			}
			defer database.Close(db)

			entries, err := database.ListPuzzles(db)
			if err != nil {
				return err
			}

			writer, err := dataset.CreateWriter(outputPath)
			if err != nil {
				return err
			}

			for _, entry := range entries {
				record := dataset.Record{
					Name:       entry.Name,
					Grid:       entry.Grid,
					Difficulty: entry.Difficulty,
				}
				if err := writer.Write(record); err != nil {
					writer.Close()
					return err
				}
			}

			if err := writer.Close(); err != nil {
				return err
			}

			log.Infof("exported %d puzzles to %s", len(entries), outputPath)

			return nil
		},
	}
}
