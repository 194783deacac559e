package domain

import (
	"fmt"
	"math/bits"
)

// Cell is one position on the board: a digit 1-9, or Unset.
type Cell uint8

const (
	Unset Cell = iota
	One
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
)

// CellFromInt converts a raw value in [0,9] to a Cell. 0 maps to Unset,
// 1-9 map to the corresponding digit; anything else is rejected.
func CellFromInt(v int) (Cell, error) {
	if v < 0 || v > 9 {
		return Unset, fmt.Errorf("cell value %d out of range [0,9]", v)
	}
	return Cell(v), nil
}

// IsSet reports whether the cell holds a digit.
func (c Cell) IsSet() bool { return c != Unset }

// Int maps the cell back to its raw value; Unset maps to 0.
func (c Cell) Int() int { return int(c) }

func (c Cell) String() string {
	if c == Unset {
		return "."
	}
	return string(rune('0' + c))
}

// CellSet is a set of digit cells backed by a bitmask, bit n for digit n.
type CellSet uint16

// FullSet contains all nine digits.
const FullSet CellSet = 0b1111111110

func (s CellSet) Add(c Cell) CellSet    { return s | 1<<c }
func (s CellSet) Remove(c Cell) CellSet { return s &^ (1 << c) }

func (s CellSet) Contains(c Cell) bool { return s&(1<<c) != 0 }

// Len returns the number of digits in the set.
func (s CellSet) Len() int { return bits.OnesCount16(uint16(s)) }

// Cells returns the members in ascending digit order, so iteration over a
// candidate set is deterministic.
func (s CellSet) Cells() []Cell {
	out := make([]Cell, 0, s.Len())
	for c := One; c <= Nine; c++ {
		if s.Contains(c) {
			out = append(out, c)
		}
	}
	return out
}
