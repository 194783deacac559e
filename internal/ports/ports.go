package ports

import (
	"context"
	"time"

	"svw.info/sudokusolve/internal/domain"
)

// Stats captures performance characteristics of an operation.
type Stats struct {
	Nodes    int
	Duration time.Duration
}

// Solver completes a partially filled grid or reports why it cannot.
type Solver interface {
	Solve(ctx context.Context, g domain.Grid) (domain.Grid, Stats, error)
}

// Validator performs fast constraint checks (row/column/block).
type Validator interface {
	Validate(ctx context.Context, g domain.Grid) (ok bool, conflicts []domain.GroupConflict, err error)
}
