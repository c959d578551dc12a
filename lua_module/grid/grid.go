// Package grid exposes the Sudoku engine to Lua scripts.
package grid

import (
	"github.com/santidefelice/cspkit/sudoku"
	lua "github.com/yuin/gopher-lua"
)

const GridTypeName = "cspkit.Grid"

// Board wraps a grid for use as Lua userdata.
type Board struct {
	Grid sudoku.Grid
}

func Loader(L *lua.LState) int {
	mod := L.SetFuncs(L.NewTable(), exports)

	L.Push(mod)

	return 1
}

var exports = map[string]lua.LGFunction{
	"new":      newBoard,
	"parse":    parseBoard,
	"generate": generateBoard,
}

func RegisterGridType(L *lua.LState) *lua.LTable {
	mt := L.NewTypeMetatable(GridTypeName)

	L.SetFuncs(mt, boardStaticMethods)
	L.SetField(mt, "__index", L.SetFuncs(L.NewTable(), boardMethods))

	return mt
}

func CheckBoard(L *lua.LState, index int) *Board {
	ud := L.CheckUserData(index)
	if v, ok := ud.Value.(*Board); ok {
		return v
	}

	L.ArgError(index, "Grid expected")

	return nil
}

func WrapBoard(L *lua.LState, board *Board) *lua.LUserData {
	ud := L.NewUserData()
	ud.Value = board

	L.SetMetatable(ud, L.GetTypeMetatable(GridTypeName))

	return ud
}

var boardStaticMethods = map[string]lua.LGFunction{
	"__tostring": boardMetaTostring,
	"__eq":       boardMetaEqual,
}

var boardMethods = map[string]lua.LGFunction{
	"get":       boardGet,
	"set":       boardSet,
	"clues":     boardClues,
	"is_valid":  boardIsValid,
	"is_solved": boardIsSolved,
	"compact":   boardCompact,
	"clone":     boardClone,
	"solve":     boardSolve,
	"count":     boardCount,
}

// -----------------------------------------------------------------------------
// Module functions

func newBoard(L *lua.LState) int {
	L.Push(WrapBoard(L, &Board{}))
	return 1
}

func parseBoard(L *lua.LState) int {
	text := L.CheckString(1)

	grid, err := sudoku.ParseGrid(text)
	if err != nil {
		L.Push(lua.LNil)
		L.Push(lua.LString(err.Error()))
		return 2
	}

	L.Push(WrapBoard(L, &Board{Grid: grid}))
	return 1
}

func generateBoard(L *lua.LState) int {
	clues := L.CheckInt(1)
	seed := int64(L.OptInt(2, 0))

	grid, solvable := sudoku.NewGenerator(seed).Generate(clues)

	L.Push(WrapBoard(L, &Board{Grid: grid}))
	L.Push(lua.LBool(solvable))
	return 2
}

// -----------------------------------------------------------------------------
// Methods

func boardGet(L *lua.LState) int {
	board := CheckBoard(L, 1)
	row := L.CheckInt(2)
	col := L.CheckInt(3)

	if row < 1 || row > 9 || col < 1 || col > 9 {
		L.ArgError(2, "cell index out of range, expecting 1-9")
		return 0
	}

	L.Push(lua.LNumber(board.Grid[row-1][col-1]))
	return 1
}

func boardSet(L *lua.LState) int {
	board := CheckBoard(L, 1)
	row := L.CheckInt(2)
	col := L.CheckInt(3)
	value := L.CheckInt(4)

	if row < 1 || row > 9 || col < 1 || col > 9 {
		L.ArgError(2, "cell index out of range, expecting 1-9")
		return 0
	}
	if value < 0 || value > 9 {
		L.ArgError(4, "cell value out of range, expecting 0-9")
		return 0
	}

	board.Grid[row-1][col-1] = value
	return 0
}

func boardClues(L *lua.LState) int {
	board := CheckBoard(L, 1)
	L.Push(lua.LNumber(board.Grid.CountFilledCells()))
	return 1
}

func boardIsValid(L *lua.LState) int {
	board := CheckBoard(L, 1)
	L.Push(lua.LBool(board.Grid.IsValid()))
	return 1
}

func boardIsSolved(L *lua.LState) int {
	board := CheckBoard(L, 1)
	L.Push(lua.LBool(board.Grid.IsSolved()))
	return 1
}

func boardCompact(L *lua.LState) int {
	board := CheckBoard(L, 1)
	L.Push(lua.LString(board.Grid.Compact()))
	return 1
}

func boardClone(L *lua.LState) int {
	board := CheckBoard(L, 1)
	L.Push(WrapBoard(L, &Board{Grid: board.Grid}))
	return 1
}

// boardSolve runs the solver in place. An optional strategy name selects the
// algorithm, default is adaptive.
func boardSolve(L *lua.LState) int {
	board := CheckBoard(L, 1)
	strategyName := L.OptString(2, "adaptive")

	strategy, err := sudoku.ParseStrategy(strategyName)
	if err != nil {
		L.ArgError(2, err.Error())
		return 0
	}

	solver := sudoku.New()
	solver.SetStrategy(strategy)
	solver.LoadPuzzle(board.Grid)

	solved, _ := solver.Solve()
	if solved {
		board.Grid = solver.Grid()
	}

	L.Push(lua.LBool(solved))
	return 1
}

// boardCount counts completions up to an optional cap.
func boardCount(L *lua.LState) int {
	board := CheckBoard(L, 1)
	max := L.OptInt(2, 0)

	solver := sudoku.New()
	solver.LoadPuzzle(board.Grid)

	L.Push(lua.LNumber(solver.CountSolutions(max)))
	return 1
}

// -----------------------------------------------------------------------------
// Metamethods

func boardMetaTostring(L *lua.LState) int {
	board := CheckBoard(L, 1)
	L.Push(lua.LString(board.Grid.String()))
	return 1
}

func boardMetaEqual(L *lua.LState) int {
	a := CheckBoard(L, 1)
	b := CheckBoard(L, 2)
	L.Push(lua.LBool(a.Grid == b.Grid))
	return 1
}
