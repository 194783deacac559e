package usecase

import (
	"context"
	"errors"

	"svw.info/sudokusolve/internal/domain"
	"svw.info/sudokusolve/internal/ports"
)

type Service struct {
	Solver    ports.Solver
	Validator ports.Validator
}

func NewService(s ports.Solver, v ports.Validator) *Service {
	return &Service{Solver: s, Validator: v}
}

var errNotConfigured = errors.New("usecase dependency not configured")

func (u *Service) Solve(ctx context.Context, g domain.Grid) (domain.Grid, ports.Stats, error) {
	if u.Solver == nil {
		return domain.Grid{}, ports.Stats{}, errNotConfigured
	}
	return u.Solver.Solve(ctx, g)
}

func (u *Service) Validate(ctx context.Context, g domain.Grid) (bool, []domain.GroupConflict, error) {
	if u.Validator == nil {
		return false, nil, errNotConfigured
	}
	return u.Validator.Validate(ctx, g)
}
