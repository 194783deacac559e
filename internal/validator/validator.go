package validator

import (
	"context"

	"svw.info/sudokusolve/internal/domain"
)

type FastValidator struct{}

func New() *FastValidator { return &FastValidator{} }

// Validate scans all 27 groups and reports every row, column, or block
// holding a duplicate digit, rows first, then columns, then blocks.
func (v *FastValidator) Validate(ctx context.Context, g domain.Grid) (bool, []domain.GroupConflict, error) {
	conf := make([]domain.GroupConflict, 0, 4)
	for i := 0; i < 9; i++ {
		if !domain.GroupValid(g.Row(i)) {
			conf = append(conf, domain.GroupConflict{Kind: domain.GroupRow, Index: i})
		}
	}
	for i := 0; i < 9; i++ {
		if !domain.GroupValid(g.Column(i)) {
			conf = append(conf, domain.GroupConflict{Kind: domain.GroupColumn, Index: i})
		}
	}
	for i := 0; i < 9; i++ {
		if !domain.GroupValid(g.Block(i)) {
			conf = append(conf, domain.GroupConflict{Kind: domain.GroupBlock, Index: i})
		}
	}
	return len(conf) == 0, conf, nil
}
