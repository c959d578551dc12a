package bench

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/santidefelice/cspkit/bench"
	"github.com/santidefelice/cspkit/database"
	"github.com/santidefelice/cspkit/dataset"
	"github.com/santidefelice/cspkit/sudoku"
	"github.com/urfave/cli/v3"
)

func Cmd() *cli.Command {
	return &cli.Command{
		Name:  "bench",
		Usage: "solve a batch of puzzles and report timing",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "dataset",
				Usage: "dataset file to benchmark",
			},
			&cli.StringFlag{
				Name:  "db",
				Usage: "benchmark all puzzles in this library",
			},
			&cli.IntFlag{
				Name:  "count",
				Usage: "generate this many random puzzles when no input is given",
				Value: 20,
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
			&cli.IntFlag{
				Name:  "jobs",
				Usage: "worker count, 0 uses all CPUs",
			},
			&cli.StringFlag{
				Name:  "strategy",
				Usage: "search strategy, one of basic, constraint, heuristic, adaptive",
				Value: "adaptive",
			},
			&cli.StringFlag{
				Name:  "record",
				Usage: "record every solve attempt into this library",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "print a line for every puzzle",
			},
		},
		Action: runBench,
	}
}

func runBench(_ context.Context, cmd *cli.Command) error {
	strategy, err := sudoku.ParseStrategy(cmd.String("strategy"))
	if err != nil {
		return err
	}

	records, err := collectRecords(cmd)
	if err != nil {
		return err
	}

	summary, results, err := bench.Run(records, bench.Options{
		Jobs:         int(cmd.Int("jobs")),
		Strategy:     strategy,
		ShowProgress: true,
	})
	if err != nil {
		return err
	}

	if recordPath := cmd.String("record"); recordPath != "" {
		if err := recordResults(recordPath, strategy, results); err != nil {
			return err
		}
	}

	if cmd.Bool("verbose") {
		for _, result := range results {
			name := result.Record.Name
			if name == "" {
				name = "(unnamed)"
			}

			switch {
			case result.Err != nil:
				log.Warnf("%s: %s", name, result.Err)
			case !result.Solved:
				log.Warnf("%s: no solution", name)
			default:
				fmt.Printf("%-24s %12s %8d steps\n", name, result.Duration, result.Stats.BacktrackSteps)
			}
		}
	}

	log.Infof("%d puzzles: %d solved, %d unsolvable, %d invalid",
		summary.Total, summary.Solved, summary.Failed, summary.Invalid)
	log.Infof("%d backtrack steps, %s solve time, %s wall time",
		summary.TotalSteps, summary.SolveTime, summary.WallTime)

	return nil
}

func recordResults(dbPath string, strategy sudoku.Strategy, results []bench.Result) error {
	db, err := database.Open(dbPath)
	if err != nil {
		return err
	}
	defer database.Close(db)

	for _, result := range results {
		if result.Err != nil {
			continue
		}

		err := database.RecordSolve(db, result.Record.Name, strategy, result.Solved, result.Duration, result.Stats)
		if err != nil {
			return err
		}
	}

	return nil
}

func collectRecords(cmd *cli.Command) ([]dataset.Record, error) {
	if path := cmd.String("dataset"); path != "" {
		return dataset.ReadAll(path)
	}

	if dbPath := cmd.String("db"); dbPath != "" {
		db, err := database.Open(dbPath)
		if err != nil {
			return nil, err
		}
		defer database.Close(db)

		entries, err := database.ListPuzzles(db)
		if err != nil {
			return nil, err
		}

		records := make([]dataset.Record, 0, len(entries))
		for _, entry := range entries {
			records = append(records, dataset.Record{
				Name:       entry.Name,
				Grid:       entry.Grid,
				Difficulty: entry.Difficulty,
			})
		}

		return records, nil
	}

	count := int(cmd.Int("count"))
	clues := int(cmd.Int("clues"))
	generator := sudoku.NewGenerator(int64(cmd.Int("seed")))

	log.Infof("generating %d puzzles with %d clues", count, clues)

	records := make([]dataset.Record, 0, count)
	for i := 0; i < count; i++ {
		grid, _ := generator.Generate(clues)
		records = append(records, dataset.Record{
			Name: fmt.Sprintf("generated-%d", i+1),
			Grid: grid.Compact(),
		})
	}

	return records, nil
}
