// Package parse converts textual boards into domain grids. It sits at the
// input boundary: out-of-range values never make it past here.
package parse

import (
	"fmt"
	"unicode"

	"svw.info/sudokusolve/internal/domain"
)

// Board parses 81 cell values from s, row-major. Digits 1-9 are givens;
// '0' and '.' mark unset cells; whitespace is ignored so boards may be
// laid out one row per line. Any other character, or a cell count other
// than 81, is an error.
func Board(s string) (domain.Grid, error) {
	values := make([]int, 0, 81)
	for _, r := range s {
		switch {
		case r == '.':
			values = append(values, 0)
		case r >= '0' && r <= '9':
			values = append(values, int(r-'0'))
		case unicode.IsSpace(r):
			// layout only
		default:
			return domain.Grid{}, fmt.Errorf("unexpected character %q in board", r)
		}
	}
	if len(values) != 81 {
		return domain.Grid{}, fmt.Errorf("board has %d cells, want 81", len(values))
	}
	return domain.GridFromInts(values)
}
