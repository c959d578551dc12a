package sudoku

import (
	"fmt"
	"strings"
)

// ParseGrid reads a grid from its compact text form, 81 cells in row-major
// order. Digits 1-9 are givens, '0' and '.' are empty cells, all whitespace
// is ignored.
func ParseGrid(text string) (Grid, error) {
	grid := Grid{}

	index := 0
	for _, r := range text {
		switch {
		case r == '.' || r == '0':
			if index >= 81 {
				return grid, fmt.Errorf("grid text contains more than 81 cells")
			}
			index++
		case r >= '1' && r <= '9':
			if index >= 81 {
				return grid, fmt.Errorf("grid text contains more than 81 cells")
			}
			grid[index/9][index%9] = int(r - '0')
			index++
		case r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '|' || r == '-' || r == '+':
			// board decorations and whitespace are allowed between cells
		default:
			return grid, fmt.Errorf("invalid character %q in grid text", r)
		}
	}

	if index != 81 {
		return grid, fmt.Errorf("grid text contains %d cells, expecting 81", index)
	}

	return grid, nil
}

// Compact returns the 81 character row-major form of the grid, with '.' for
// empty cells. This is the form stored in puzzle files and the database.
func (g Grid) Compact() string {
	var sb strings.Builder
	sb.Grow(81)

	for i := 0; i < 9; i++ {
		for j := 0; j < 9; j++ {
			if g[i][j] == 0 {
				sb.WriteByte('.')
			} else {
				sb.WriteByte(byte('0' + g[i][j]))
			}
		}
	}

	return sb.String()
}

// IsValid reports whether no filled cell violates a row, column or box
// constraint. Empty cells are ignored.
func (g Grid) IsValid() bool {
	for i := 0; i < 9; i++ {
		var rowSeen, colSeen uint16
		for j := 0; j < 9; j++ {
			if v := g[i][j]; v != 0 {
				if rowSeen&(1<<v) != 0 {
					return false
				}
				rowSeen |= 1 << v
			}
			if v := g[j][i]; v != 0 {
				if colSeen&(1<<v) != 0 {
					return false
				}
				colSeen |= 1 << v
			}
		}
	}

	for box := 0; box < 9; box++ {
		startRow := (box / 3) * 3
		startCol := (box % 3) * 3

		var seen uint16
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				v := g[startRow+i][startCol+j]
				if v == 0 {
					continue
				}
				if seen&(1<<v) != 0 {
					return false
				}
				seen |= 1 << v
			}
		}
	}

	return true
}

// IsSolved reports whether the grid is completely filled without conflicts.
func (g Grid) IsSolved() bool {
	if !g.IsValid() {
		return false
	}

	for i := 0; i < 9; i++ {
		for j := 0; j < 9; j++ {
			if g[i][j] == 0 {
				return false
			}
		}
	}

	return true
}

// CountFilledCells returns the number of given cells in the grid.
func (g Grid) CountFilledCells() int {
	count := 0
	for i := 0; i < 9; i++ {
		for j := 0; j < 9; j++ {
			if g[i][j] != 0 {
				count++
			}
		}
	}
	return count
}

// String renders the grid as a board with box separators, for terminal output.
func (g Grid) String() string {
	var sb strings.Builder

	border := "+" + strings.Repeat("---+", 9) + "\n"
	sb.WriteString(border)

	for i := 0; i < 9; i++ {
		sb.WriteString("|")
		for j := 0; j < 9; j++ {
			if g[i][j] == 0 {
				sb.WriteString(" . ")
			} else {
				fmt.Fprintf(&sb, " %d ", g[i][j])
			}

			if (j+1)%3 == 0 {
				sb.WriteString("|")
			} else {
				sb.WriteString(" ")
			}
		}
		sb.WriteString("\n")

		if (i+1)%3 == 0 {
			sb.WriteString(border)
		}
	}

	return sb.String()
}
