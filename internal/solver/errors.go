package solver

import (
	"errors"
	"fmt"

	"svw.info/sudokusolve/internal/domain"
)

// ErrNoSolution is reported when exhaustive search finds no way to
// complete the puzzle. Dead ends below the root never surface; only total
// exhaustion does, as this error.
var ErrNoSolution = errors.New("no solution exists for this puzzle")

// InvalidGroupError reports a duplicate digit in the starting puzzle. It
// is produced only by the pre-search validation; the search itself fills
// cells from candidate sets and cannot create one.
type InvalidGroupError struct {
	Kind  domain.GroupKind
	Index int
}

func (e *InvalidGroupError) Error() string {
	return fmt.Sprintf("%s %d of the puzzle is not valid", e.Kind, e.Index)
}

// DeadEndError marks a board state with no viable continuation. It is an
// internal backtracking signal; the one the caller may see is the root
// dead end, which matches ErrNoSolution under errors.Is.
type DeadEndError struct {
	Grid domain.Grid
}

func (e *DeadEndError) Error() string { return "solver reached a dead end" }

func (e *DeadEndError) Is(target error) bool { return target == ErrNoSolution }
