package solver

import (
	"context"
	"errors"
	"time"

	"svw.info/sudokusolve/internal/domain"
	"svw.info/sudokusolve/internal/mergesort"
	"svw.info/sudokusolve/internal/ports"
)

// Backtracking solves by recursive depth-first search over immutable grid
// snapshots, filling the most constrained cells first.
type Backtracking struct {
	check ports.Validator
}

// NewBacktracking returns a solver that pre-validates starting grids with
// check before searching. A nil check skips pre-validation.
func NewBacktracking(check ports.Validator) *Backtracking {
	return &Backtracking{check: check}
}

// Solve returns a completed grid, or an InvalidGroupError when the
// starting puzzle already breaks a rule, or ErrNoSolution when search
// exhausts every alternative. The context is consulted only on entry; the
// search itself is synchronous and bounded, one cell filled per recursion
// level, so depth never exceeds 81.
func (s *Backtracking) Solve(ctx context.Context, g domain.Grid) (domain.Grid, ports.Stats, error) {
	start := time.Now()
	if err := ctx.Err(); err != nil {
		return domain.Grid{}, ports.Stats{}, err
	}

	if s.check != nil {
		ok, conflicts, err := s.check.Validate(ctx, g)
		if err != nil {
			return domain.Grid{}, ports.Stats{Duration: time.Since(start)}, err
		}
		if !ok {
			c := conflicts[0]
			return domain.Grid{}, ports.Stats{Duration: time.Since(start)},
				&InvalidGroupError{Kind: c.Kind, Index: c.Index}
		}
	}

	nodes := 0
	solved, err := solve(g, &nodes)
	st := ports.Stats{Nodes: nodes, Duration: time.Since(start)}
	if err != nil {
		return domain.Grid{}, st, err
	}
	return solved, st, nil
}

// choice pairs an unset cell with its remaining legal digits.
type choice struct {
	index      int
	candidates domain.CellSet
}

// solve is one level of the search: pick among the unset cells in
// fewest-candidates-first order, try each candidate digit ascending, and
// recurse on the resulting snapshot. The first success wins; dead ends
// fall through to the next alternative.
func solve(g domain.Grid, nodes *int) (domain.Grid, error) {
	if g.IsSolved() {
		return g, nil
	}

	var open []choice
	for i := range g.UnsetCells() {
		open = append(open, choice{index: i, candidates: g.Possibilities(i)})
	}

	// Fewest legal digits first prunes the tree earliest.
	open = mergesort.Sort(open, func(a, b choice) bool {
		return a.candidates.Len() < b.candidates.Len()
	})

	for _, ch := range open {
		for _, c := range ch.candidates.Cells() {
			*nodes++
			next := g.SetCell(ch.index, c)

			solved, err := solve(next, nodes)
			if err == nil {
				return solved, nil
			}
			var dead *DeadEndError
			if !errors.As(err, &dead) {
				// Every recursive input is built from a pre-filtered
				// candidate, so nothing below can fail any other way.
				return domain.Grid{}, err
			}
		}
	}

	return domain.Grid{}, &DeadEndError{Grid: g}
}
