package shop

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/santidefelice/cspkit/base"
	"github.com/santidefelice/cspkit/common"
	"github.com/santidefelice/cspkit/shopping"
	"github.com/urfave/cli/v3"
)

func Cmd() *cli.Command {
	return &cli.Command{
		Name:  "shop",
		Usage: "enumerate item combinations that fit a budget",
		Commands: []*cli.Command{
			subCmdAll(),
			subCmdFirst(),
		},
	}
}

func loadSolver(cmd *cli.Command, catalogPath string) (*shopping.Solver, error) {
	info, err := base.ReadCatalogFile(catalogPath)
	if err != nil {
		return nil, err
	}

	budget := info.Budget
	if text := cmd.String("budget"); text != "" {
		budget, err = base.ParsePrice(text)
		if err != nil {
			return nil, err
		}
	}

	minItems := common.GetIntOr(int(cmd.Int("min-items")), info.MinItems)

	solver, err := shopping.NewSolver(info.Items, budget, minItems)
	if err != nil {
		return nil, err
	}

	log.Infof("catalog %s: %d items, budget %s, at least %d item(s)",
		info.Name, len(info.Items), shopping.FormatPrice(budget), minItems)

	return solver, nil
}

func budgetFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "budget",
			Usage: "override catalog budget, e.g. 25.00 or $25",
		},
		&cli.IntFlag{
			Name:  "min-items",
			Usage: "override the catalog's minimum item count",
		},
	}
}

func subCmdAll() *cli.Command {
	var catalogPath string

	return &cli.Command{
		Name:  "all",
		Usage: "list every basket within budget",
		Arguments: []cli.Argument{
			&cli.StringArg{
				Name:        "catalog",
				UsageText:   "<catalog>",
				Destination: &catalogPath,
				Min:         1,
				Max:         1,
			},
		},
		Flags: budgetFlags(),
		Action: func(_ context.Context, cmd *cli.Command) error {
			solver, err := loadSolver(cmd, catalogPath)
			if err != nil {
				return err
			}

			baskets := solver.FindAll()
			if len(baskets) == 0 {
				log.Warn("no basket fits the budget")
				return nil
			}

			for i, basket := range baskets {
				fmt.Printf("#%d %s\n", i+1, basket)
			}
			log.Infof("%d basket(s) found", len(baskets))

			return nil
		},
	}
}

func subCmdFirst() *cli.Command {
	var catalogPath string

	return &cli.Command{
		Name:  "first",
		Usage: "print the first basket within budget",
		Arguments: []cli.Argument{
			&cli.StringArg{
				Name:        "catalog",
				UsageText:   "<catalog>",
				Destination: &catalogPath,
				Min:         1,
				Max:         1,
			},
		},
		Flags: budgetFlags(),
		Action: func(_ context.Context, cmd *cli.Command) error {
			solver, err := loadSolver(cmd, catalogPath)
			if err != nil {
				return err
			}

			basket, found := solver.FindFirst()
			if !found {
				return fmt.Errorf("no basket fits the budget")
			}

			fmt.Println(basket)

			return nil
		},
	}
}
