// Package bench runs batches of puzzles through the solver with a worker
// pool and aggregates the outcome.
package bench

import (
	"fmt"
	"runtime"
	"time"

	"github.com/santidefelice/cspkit/dataset"
	"github.com/santidefelice/cspkit/sudoku"
	"github.com/schollz/progressbar/v3"
)

type Options struct {
	Jobs         int             // worker count, defaults to CPU count
	Strategy     sudoku.Strategy // search strategy used by every worker
	ShowProgress bool            // draw a progress bar while solving
}

// Result is the outcome for one puzzle of the batch.
type Result struct {
	Record   dataset.Record
	Solved   bool
	Duration time.Duration
	Stats    sudoku.Stats
	Err      error
}

// Summary aggregates a whole batch run.
type Summary struct {
	Total      int
	Solved     int
	Failed     int
	Invalid    int
	TotalSteps uint64
	SolveTime  time.Duration // summed per-puzzle time across workers
	WallTime   time.Duration
}

// Run distributes records to worker goroutines and collects their results.
// Result order matches record order.
func Run(records []dataset.Record, options Options) (Summary, []Result, error) {
	if len(records) == 0 {
		return Summary{}, nil, fmt.Errorf("no puzzles to run")
	}

	jobCount := options.Jobs
	if jobCount <= 0 {
		jobCount = runtime.NumCPU()
	}
	if jobCount > len(records) {
		jobCount = len(records)
	}

	type workLoad struct {
		index  int
		record dataset.Record
	}

	type workResult struct {
		index  int
		result Result
	}

	workChan := make(chan workLoad, jobCount)
	resultChan := make(chan workResult, jobCount)

	for i := 0; i < jobCount; i++ {
		go func() {
			solver := sudoku.New()
			solver.SetStrategy(options.Strategy)

			for work := range workChan {
				resultChan <- workResult{
					index:  work.index,
					result: solveOne(solver, work.record),
				}
			}
		}()
	}

	go func() {
		for index, record := range records {
			workChan <- workLoad{index: index, record: record}
		}
		close(workChan)
	}()

	var bar *progressbar.ProgressBar
	if options.ShowProgress {
		bar = progressbar.Default(int64(len(records)))
	}

	startTime := time.Now()
	results := make([]Result, len(records))

	for recv := 0; recv < len(records); recv++ {
		work := <-resultChan
		results[work.index] = work.result

		if bar != nil {
			bar.Add(1)
		}
	}

	summary := Summary{
		Total:    len(records),
		WallTime: time.Since(startTime),
	}
	for _, result := range results {
		switch {
		case result.Err != nil:
			summary.Invalid++
		case result.Solved:
			summary.Solved++
		default:
			summary.Failed++
		}

		summary.TotalSteps += result.Stats.BacktrackSteps
		summary.SolveTime += result.Duration
	}

	return summary, results, nil
}

func solveOne(solver *sudoku.Solver, record dataset.Record) Result {
	result := Result{Record: record}

	grid, err := record.Parse()
	if err != nil {
		result.Err = fmt.Errorf("invalid puzzle %q: %s", record.Name, err)
		return result
	}

	solver.LoadPuzzle(grid)
	result.Solved, result.Duration = solver.Solve()
	result.Stats = solver.Stats()

	return result
}
