package sudoku

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/santidefelice/cspkit/base"
	"github.com/santidefelice/cspkit/common"
	"github.com/santidefelice/cspkit/database"
	"github.com/santidefelice/cspkit/sudoku"
	"github.com/urfave/cli/v3"
)

func Cmd() *cli.Command {
	return &cli.Command{
		Name:  "sudoku",
		Usage: "solve, generate and manage Sudoku puzzles",
		Commands: []*cli.Command{
			subCmdSolve(),
			subCmdGenerate(),
			subCmdCount(),
			subCmdRate(),
			subCmdAdd(),
			subCmdList(),
			subCmdImport(),
			subCmdExport(),
		},
	}
}

func subCmdSolve() *cli.Command {
	var puzzlePath string

	return &cli.Command{
		Name:  "solve",
		Usage: "solve a puzzle file and print the completed board",
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
			&cli.StringFlag{
				Name:  "strategy",
				Usage: "search strategy, one of basic, constraint, heuristic, adaptive",
				Value: "adaptive",
			},
			&cli.StringFlag{
				Name:  "db",
				Usage: "puzzle library path, solve attempt will be recorded when given",
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			strategy, err := sudoku.ParseStrategy(cmd.String("strategy"))
			if err != nil {
				return err
			}

			info, err := base.ReadPuzzleFile(puzzlePath)
			if err != nil {
				return err
			}

			solver := sudoku.New()
			solver.SetStrategy(strategy)
			solver.LoadPuzzle(info.Grid)

			log.Infof("puzzle %s, %d clues, difficulty %s", info.Name, info.Grid.CountFilledCells(), solver.Difficulty())
			fmt.Println(info.Grid)

			solved, duration := solver.Solve()

			if dbPath := cmd.String("db"); dbPath != "" {
				db, err := database.Open(dbPath)
				if err != nil {
					return err
				}
				defer database.Close(db)

				if err := database.RecordSolve(db, info.Name, strategy, solved, duration, solver.Stats()); err != nil {
					return err
				}
			}

			if !solved {
				return fmt.Errorf("no solution exists for %s", puzzlePath)
			}

			stats := solver.Stats()
			log.Infof("solved in %s, %d backtrack steps, %d propagation rounds",
				duration, stats.BacktrackSteps, stats.PropagationRounds)
			fmt.Println(solver.Grid())

			return nil
		},
	}
}

func subCmdGenerate() *cli.Command {
	return &cli.Command{
		Name:  "generate",
		Usage: "generate a random solvable puzzle",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "clues",
				Usage: "number of pre-filled cells",
				Value: 30,
			},
			&cli.IntFlag{
				Name:  "seed",
				Usage: "random seed, 0 picks one from the clock",
			},
			&cli.StringFlag{
				Name:  "output",
				Usage: "write the puzzle to this JSON file",
			},
			&cli.StringFlag{
				Name:  "name",
				Usage: "puzzle name used in output file and library",
			},
			&cli.StringFlag{
				Name:  "db",
				Usage: "puzzle library path, puzzle will be stored when given",
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			clues := int(cmd.Int("clues"))

			grid, solvable := sudoku.NewGenerator(int64(cmd.Int("seed"))).Generate(clues)
			if !solvable {
				log.Warnf("could not verify solvability within retry limit, board is only locally valid")
			}

			solver := sudoku.New()
			solver.LoadPuzzle(grid)
			difficulty := solver.Difficulty()

			name := common.GetStrOr(cmd.String("name"), fmt.Sprintf("generated-%d", clues))

			log.Infof("generated %s: %d clues, difficulty %s", name, clues, difficulty)
			fmt.Println(grid)

			if outputPath := cmd.String("output"); outputPath != "" {
				info := &base.PuzzleFile{
					Name:       name,
					Difficulty: difficulty.String(),
					Grid:       grid,
				}
				if err := info.Save(outputPath); err != nil {
					return err
				}
				log.Infof("puzzle saved to %s", outputPath)
			}

			if dbPath := cmd.String("db"); dbPath != "" {
				db, err := database.Open(dbPath)
				if err != nil {
					return err
				}
				defer database.Close(db)

				if err := database.SavePuzzle(db, name, grid, difficulty.String(), "generated"); err != nil {
					return err
				}
				log.Infof("puzzle stored in library %s", dbPath)
			}

			return nil
		},
	}
}

func subCmdCount() *cli.Command {
	var puzzlePath string

	return &cli.Command{
		Name:  "count",
		Usage: "count solutions of a puzzle, up to a cap",
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
			&cli.IntFlag{
				Name:  "max",
				Usage: "stop counting at this many solutions, 0 counts all",
				Value: 2,
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			info, err := base.ReadPuzzleFile(puzzlePath)
			if err != nil {
				return err
			}

			max := int(cmd.Int("max"))

			solver := sudoku.New()
			solver.LoadPuzzle(info.Grid)
			count := solver.CountSolutions(max)

			switch {
			case count == 0:
				log.Warnf("%s has no solution", info.Name)
			case max > 0 && count >= max:
				log.Infof("%s has at least %d solutions (count capped)", info.Name, count)
			case count == 1:
				log.Infof("%s has a unique solution", info.Name)
			default:
				log.Infof("%s has %d solutions", info.Name, count)
			}

			return nil
		},
	}
}

func subCmdRate() *cli.Command {
	var puzzlePath string

	return &cli.Command{
		Name:  "rate",
		Usage: "report clue count and detected difficulty of a puzzle",
		Arguments: []cli.Argument{
			&cli.StringArg{
				Name:        "puzzle",
				UsageText:   "<puzzle>",
				Destination: &puzzlePath,
				Min:         1,
				Max:         1,
			},
		},
		Action: func(_ context.Context, _ *cli.Command) error {
			info, err := base.ReadPuzzleFile(puzzlePath)
			if err != nil {
				return err
			}

			solver := sudoku.New()
			solver.LoadPuzzle(info.Grid)

			common.LogBannerMsg([]string{
				"puzzle:     " + info.Name,
				fmt.Sprintf("clues:      %d", info.Grid.CountFilledCells()),
				"difficulty: " + solver.Difficulty().String(),
			}, 2)

			return nil
		},
	}
}
