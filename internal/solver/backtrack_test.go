package solver

import (
	"context"
	"errors"
	"testing"
	"time"

	"svw.info/sudokusolve/internal/domain"
	"svw.info/sudokusolve/internal/validator"
)

// The classic solvable sample board (0 = empty) and its unique solution.
var sample = []int{
	5, 3, 0, 0, 7, 0, 0, 0, 0,
	6, 0, 0, 1, 9, 5, 0, 0, 0,
	0, 9, 8, 0, 0, 0, 0, 6, 0,
	8, 0, 0, 0, 6, 0, 0, 0, 3,
	4, 0, 0, 8, 0, 3, 0, 0, 1,
	7, 0, 0, 0, 2, 0, 0, 0, 6,
	0, 6, 0, 0, 0, 0, 2, 8, 0,
	0, 0, 0, 4, 1, 9, 0, 0, 5,
	0, 0, 0, 0, 8, 0, 0, 7, 9,
}

var sampleSolution = []int{
	5, 3, 4, 6, 7, 8, 9, 1, 2,
	6, 7, 2, 1, 9, 5, 3, 4, 8,
	1, 9, 8, 3, 4, 2, 5, 6, 7,
	8, 5, 9, 7, 6, 1, 4, 2, 3,
	4, 2, 6, 8, 5, 3, 7, 9, 1,
	7, 1, 3, 9, 2, 4, 8, 5, 6,
	9, 6, 1, 5, 3, 7, 2, 8, 4,
	2, 8, 7, 4, 1, 9, 6, 3, 5,
	3, 4, 5, 2, 8, 6, 1, 7, 9,
}

func mustGrid(t *testing.T, values []int) domain.Grid {
	t.Helper()
	g, err := domain.GridFromInts(values)
	if err != nil {
		t.Fatalf("GridFromInts: %v", err)
	}
	return g
}

func newSolver() *Backtracking {
	return NewBacktracking(validator.New())
}

func TestSolveClassicUnder1s(t *testing.T) {
	g := mustGrid(t, sample)
	want := mustGrid(t, sampleSolution)

	out, st, err := newSolver().Solve(context.Background(), g)
	if err != nil {
		t.Fatalf("Solve failed: %v (nodes=%d dur=%v)", err, st.Nodes, st.Duration)
	}
	if !out.IsSolved() {
		t.Fatal("result is not a solved grid")
	}
	// The puzzle has a unique solution, so the search must land on it.
	if out != want {
		t.Fatal("solution differs from the known unique solution")
	}
	if st.Duration > time.Second {
		t.Fatalf("took too long: %v (>1s)", st.Duration)
	}
	t.Logf("Solved in %v, nodes=%d", st.Duration, st.Nodes)
}

func TestSolveAlreadySolved(t *testing.T) {
	g := mustGrid(t, sampleSolution)

	out, st, err := newSolver().Solve(context.Background(), g)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if out != g {
		t.Fatal("solved input came back changed")
	}
	if st.Nodes != 0 {
		t.Fatalf("no search expected, visited %d nodes", st.Nodes)
	}
}

func TestSolveInvalidRow(t *testing.T) {
	bad := append([]int(nil), sample...)
	bad[2] = 5 // second 5 in row 0

	_, _, err := newSolver().Solve(context.Background(), mustGrid(t, bad))
	var ige *InvalidGroupError
	if !errors.As(err, &ige) {
		t.Fatalf("want InvalidGroupError, got %v", err)
	}
	if ige.Kind != domain.GroupRow || ige.Index != 0 {
		t.Fatalf("conflict reported at %s %d, want row 0", ige.Kind, ige.Index)
	}
}

func TestSolveInvalidColumn(t *testing.T) {
	bad := append([]int(nil), sample...)
	bad[18] = 4 // second 4 in column 0, row 2 and block 0 stay clean

	_, _, err := newSolver().Solve(context.Background(), mustGrid(t, bad))
	var ige *InvalidGroupError
	if !errors.As(err, &ige) {
		t.Fatalf("want InvalidGroupError, got %v", err)
	}
	if ige.Kind != domain.GroupColumn || ige.Index != 0 {
		t.Fatalf("conflict reported at %s %d, want column 0", ige.Kind, ige.Index)
	}
}

func TestSolveNoSolution(t *testing.T) {
	// Start from the solved grid, move the 3 from (8,0) up to (0,0) and
	// clear (0,1). Every group stays duplicate-free, but both empty cells
	// end up with zero candidates: no continuation exists anywhere.
	values := append([]int(nil), sampleSolution...)
	values[0] = 3
	values[1] = 0
	values[72] = 0
	g := mustGrid(t, values)

	out, st, err := newSolver().Solve(context.Background(), g)
	if err == nil {
		t.Fatalf("expected failure, got grid %v", out)
	}
	if !errors.Is(err, ErrNoSolution) {
		t.Fatalf("want ErrNoSolution, got %v", err)
	}
	var dead *DeadEndError
	if !errors.As(err, &dead) {
		t.Fatalf("want DeadEndError, got %v", err)
	}
	// The root dead end carries the state at which exhaustion occurred.
	if dead.Grid != g {
		t.Fatal("dead end does not carry the starting grid")
	}
	if st.Nodes != 0 {
		t.Fatalf("both cells have no candidates, visited %d nodes", st.Nodes)
	}
}
