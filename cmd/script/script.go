package script

import (
	"context"

	luamodule "github.com/santidefelice/cspkit/lua_module"
	"github.com/urfave/cli/v3"
)

func Cmd() *cli.Command {
	return &cli.Command{
		Name:  "script",
		Usage: "Lua scripting over the puzzle engine",
		Commands: []*cli.Command{
			subCmdRun(),
		},
	}
}

func subCmdRun() *cli.Command {
	var scriptPath string

	return &cli.Command{
		Name:  "run",
		Usage: "run a Lua script with puzzle modules preloaded",
		Arguments: []cli.Argument{
			&cli.StringArg{
				Name:        "script",
				UsageText:   "<script>",
				Destination: &scriptPath,
				Min:         1,
				Max:         1,
			},
		},
		ArgsUsage: "[script args...]",
		Action: func(_ context.Context, cmd *cli.Command) error {
			return luamodule.RunScript(scriptPath, cmd.Args().Slice())
		},
	}
}
