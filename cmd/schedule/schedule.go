package schedule

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/santidefelice/cspkit/base"
	"github.com/santidefelice/cspkit/common"
	"github.com/santidefelice/cspkit/schedule"
	"github.com/urfave/cli/v3"
)

func Cmd() *cli.Command {
	return &cli.Command{
		Name:  "schedule",
		Usage: "assign conflicting tasks to a limited set of resources",
		Commands: []*cli.Command{
			subCmdSolve(),
			subCmdConflicts(),
			subCmdMinResources(),
		},
	}
}

func subCmdSolve() *cli.Command {
	var taskPath string

	return &cli.Command{
		Name:  "solve",
		Usage: "find a conflict-free resource assignment for a task set",
		Arguments: []cli.Argument{
			&cli.StringArg{
				Name:        "tasks",
				UsageText:   "<tasks>",
				Destination: &taskPath,
				Min:         1,
				Max:         1,
			},
		},
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "resources",
				Usage: "resource count, overrides the value in the task file",
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			info, err := base.ReadTaskSetFile(taskPath)
			if err != nil {
				return err
			}

			maxResources := common.GetIntOr(int(cmd.Int("resources")), info.MaxResources)

			scheduler := schedule.NewScheduler(info.Tasks, maxResources)
			log.Infof("task set %s: %d tasks, %d resources", info.Name, len(info.Tasks), maxResources)

			if !scheduler.Assign() {
				return fmt.Errorf("no valid assignment exists with %d resources", maxResources)
			}

			for _, task := range scheduler.Tasks() {
				fmt.Printf("%s -> resource %d\n", task, task.Resource)
			}

			return nil
		},
	}
}

func subCmdConflicts() *cli.Command {
	var taskPath string

	return &cli.Command{
		Name:  "conflicts",
		Usage: "print the overlap conflicts of each task",
		Arguments: []cli.Argument{
			&cli.StringArg{
				Name:        "tasks",
				UsageText:   "<tasks>",
				Destination: &taskPath,
				Min:         1,
				Max:         1,
			},
		},
		Action: func(_ context.Context, _ *cli.Command) error {
			info, err := base.ReadTaskSetFile(taskPath)
			if err != nil {
				return err
			}

			scheduler := schedule.NewScheduler(info.Tasks, info.MaxResources)

			for i, task := range scheduler.Tasks() {
				conflicts := scheduler.ConflictsOf(i)
				if len(conflicts) == 0 {
					fmt.Printf("%s: no conflicts\n", task)
					continue
				}

				fmt.Printf("%s conflicts with:\n", task)
				for _, other := range conflicts {
					fmt.Printf("    %s\n", other)
				}
			}

			return nil
		},
	}
}

func subCmdMinResources() *cli.Command {
	var taskPath string

	return &cli.Command{
		Name:  "min-resources",
		Usage: "find the smallest resource count that admits an assignment",
		Arguments: []cli.Argument{
			&cli.StringArg{
				Name:        "tasks",
				UsageText:   "<tasks>",
				Destination: &taskPath,
				Min:         1,
				Max:         1,
			},
		},
		Action: func(_ context.Context, _ *cli.Command) error {
			info, err := base.ReadTaskSetFile(taskPath)
			if err != nil {
				return err
			}

			count, assigned := schedule.MinResources(info.Tasks)
			log.Infof("task set %s needs %d resource(s)", info.Name, count)

			for _, task := range assigned {
				fmt.Printf("%s -> resource %d\n", task, task.Resource)
			}

			return nil
		},
	}
}
