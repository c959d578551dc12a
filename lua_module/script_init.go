package luamodule

import (
	"fmt"
	"os"
	"path/filepath"

	lua_grid "github.com/santidefelice/cspkit/lua_module/grid"
	lua "github.com/yuin/gopher-lua"
)

// RunScript executes a user script with the solver modules preloaded.
// Remaining command line arguments are exposed as the global `arg` table.
func RunScript(scriptPath string, args []string) error {
	if _, err := os.Stat(scriptPath); err != nil {
		return fmt.Errorf("failed to access script %s: %s", scriptPath, err)
	}

	L := lua.NewState()
	defer L.Close()

	// setup modules
	updateScriptImportPath(L, scriptPath)

	lua_grid.RegisterGridType(L)

	L.PreloadModule("grid", lua_grid.Loader)

	// setup global variables
	argTbl := L.NewTable()
	for _, value := range args {
		argTbl.Append(lua.LString(value))
	}
	L.SetGlobal("arg", argTbl)

	// executation
	if err := L.DoFile(scriptPath); err != nil {
		return fmt.Errorf("script executation error:\n%s", err)
	}

	return nil
}

func updateScriptImportPath(L *lua.LState, scriptPath string) error {
	pack, ok := L.GetGlobal("package").(*lua.LTable)
	if !ok {
		return fmt.Errorf("failed to retrive global variable `package`")
	}

	pathVal, ok := L.GetField(pack, "path").(lua.LString)
	if !ok {
		return fmt.Errorf("`path` field of `package` table is not a string")
	}

	path := string(pathVal)
	scriptDir := filepath.Dir(scriptPath)

	path += fmt.Sprintf(";%s/?.lua;%s/?/init.lua", scriptDir, scriptDir)
	L.SetField(pack, "path", lua.LString(path))

	return nil
}
