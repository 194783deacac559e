package domain

import (
	"fmt"
	"iter"
)

// Grid is an immutable snapshot of the 81 board cells in row-major order
// (index = row*9 + column). Grids are plain values: copying one copies its
// cells, and no two grids share storage.
type Grid struct {
	cells [81]Cell
}

// NewGrid builds a grid from 81 cells. No rule validation happens here;
// callers check IsValid when they need to.
func NewGrid(cells [81]Cell) Grid {
	return Grid{cells: cells}
}

// GridFromInts builds a grid from 81 raw values in [0,9] (0 = unset).
func GridFromInts(values []int) (Grid, error) {
	if len(values) != 81 {
		return Grid{}, fmt.Errorf("grid has %d cells, want 81", len(values))
	}
	var cells [81]Cell
	for i, v := range values {
		c, err := CellFromInt(v)
		if err != nil {
			return Grid{}, fmt.Errorf("cell %d: %w", i, err)
		}
		cells[i] = c
	}
	return NewGrid(cells), nil
}

// Cell returns the cell at index in [0,81).
func (g Grid) Cell(index int) Cell {
	checkIndex(index, 81)
	return g.cells[index]
}

// SetCell returns a copy of the grid with the cell at index replaced.
// The receiver is unchanged.
func (g Grid) SetCell(index int, c Cell) Grid {
	checkIndex(index, 81)
	g.cells[index] = c
	return g
}

// UnsetCells yields every unset cell with its index, in ascending index
// order. The sequence is recomputed on each call and can be ranged over
// any number of times.
func (g Grid) UnsetCells() iter.Seq2[int, Cell] {
	return func(yield func(int, Cell) bool) {
		for i, c := range g.cells {
			if c.IsSet() {
				continue
			}
			if !yield(i, c) {
				return
			}
		}
	}
}

// Row returns the nine cells of row i, for i in [0,9).
func (g Grid) Row(i int) [9]Cell {
	checkIndex(i, 9)
	var out [9]Cell
	copy(out[:], g.cells[9*i:9*i+9])
	return out
}

// Column returns the nine cells of column i, for i in [0,9).
func (g Grid) Column(i int) [9]Cell {
	checkIndex(i, 9)
	var out [9]Cell
	for r := 0; r < 9; r++ {
		out[r] = g.cells[i+9*r]
	}
	return out
}

// Block returns the nine cells of the i-th 3x3 block, for i in [0,9).
// Blocks tile the board row-major, so block 0 is the top-left and block 8
// the bottom-right.
func (g Grid) Block(i int) [9]Cell {
	checkIndex(i, 9)
	start := (i/3)*27 + (i%3)*3
	var out [9]Cell
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			out[3*r+c] = g.cells[start+9*r+c]
		}
	}
	return out
}

// Possibilities returns the digits still legal for the cell at index:
// {1..9} minus every digit set in the cell's row, column, and block. The
// three groups are scanned fresh on each call; nothing is cached.
func (g Grid) Possibilities(index int) CellSet {
	checkIndex(index, 81)
	row, col := index/9, index%9
	block := (row/3)*3 + col/3

	s := FullSet
	for _, group := range [3][9]Cell{g.Row(row), g.Column(col), g.Block(block)} {
		for _, c := range group {
			if c.IsSet() {
				s = s.Remove(c)
			}
		}
	}
	return s
}

// GroupValid reports whether a row, column, or block contains no duplicate
// digit. Unset cells are ignored.
func GroupValid(group [9]Cell) bool {
	var seen CellSet
	for _, c := range group {
		if !c.IsSet() {
			continue
		}
		if seen.Contains(c) {
			return false
		}
		seen = seen.Add(c)
	}
	return true
}

// IsValid reports whether every row, column, and block is free of
// duplicate digits.
func (g Grid) IsValid() bool {
	for i := 0; i < 9; i++ {
		if !GroupValid(g.Row(i)) || !GroupValid(g.Column(i)) || !GroupValid(g.Block(i)) {
			return false
		}
	}
	return true
}

// IsSolved reports whether the grid is valid and every cell is set.
func (g Grid) IsSolved() bool {
	if !g.IsValid() {
		return false
	}
	for _, c := range g.cells {
		if !c.IsSet() {
			return false
		}
	}
	return true
}

// GroupKind names one of the three group axes.
type GroupKind int

const (
	GroupRow GroupKind = iota
	GroupColumn
	GroupBlock
)

func (k GroupKind) String() string {
	switch k {
	case GroupRow:
		return "row"
	case GroupColumn:
		return "column"
	default:
		return "block"
	}
}

// GroupConflict identifies a row, column, or block holding a duplicate digit.
type GroupConflict struct {
	Kind  GroupKind
	Index int
}

func checkIndex(i, n int) {
	if i < 0 || i >= n {
		panic(fmt.Sprintf("index %d out of range [0,%d)", i, n))
	}
}
