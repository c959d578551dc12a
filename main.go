package main

import (
	"context"
	"fmt"
	"os"

	"github.com/santidefelice/cspkit/cmd/bench"
	"github.com/santidefelice/cspkit/cmd/database"
	"github.com/santidefelice/cspkit/cmd/schedule"
	"github.com/santidefelice/cspkit/cmd/script"
	"github.com/santidefelice/cspkit/cmd/sheet"
	"github.com/santidefelice/cspkit/cmd/shop"
	"github.com/santidefelice/cspkit/cmd/sudoku"
	"github.com/urfave/cli/v3"
)

func main() {
	cmd := &cli.Command{
		Name:    "cspkit",
		Usage:   "backtracking search toolkit for Sudoku puzzles, interval scheduling and bounded shopping lists",
		Version: "0.1.0",
		Commands: []*cli.Command{
			sudoku.Cmd(),
			schedule.Cmd(),
			shop.Cmd(),
			bench.Cmd(),
			sheet.Cmd(),
			script.Cmd(),
			database.Cmd(),
		},
	}

	err := cmd.Run(context.Background(), os.Args)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
