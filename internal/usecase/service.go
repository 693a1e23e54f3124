package usecase

import (
	"context"
	"errors"
	"strings"

	"svw.info/sudoku-engine/internal/domain"
	"svw.info/sudoku-engine/internal/ports"
	"svw.info/sudoku-engine/internal/sat"
	"svw.info/sudoku-engine/internal/validator"
)

// Service wires the solving strategies, generator, validator and
// storage behind one use-case surface.
type Service struct {
	Backtrack ports.Solver
	SAT       ports.Solver
	Generator ports.Generator
	Validator ports.Validator
	Storage   ports.Storage
}

func NewService(bt, satSolver ports.Solver, g ports.Generator, v ports.Validator, st ports.Storage) *Service {
	return &Service{Backtrack: bt, SAT: satSolver, Generator: g, Validator: v, Storage: st}
}

var errNotConfigured = errors.New("usecase dependency not configured")

func (u *Service) solver(s domain.Strategy) ports.Solver {
	if s == domain.StrategySAT {
		return u.SAT
	}
	return u.Backtrack
}

// Solve fills g in place with the chosen strategy.
func (u *Service) Solve(ctx context.Context, g domain.Grid, strat domain.Strategy) (ports.Stats, error) {
	s := u.solver(strat)
	if s == nil {
		return ports.Stats{}, errNotConfigured
	}
	return s.Solve(ctx, g)
}

// Fill seeds an existing grid in place with up to attempts random
// placements. An attempts value of 0 defaults to 2×size², the budget
// the interactive layer historically used.
func (u *Service) Fill(ctx context.Context, g domain.Grid, attempts int, seed int64) (ports.Stats, error) {
	if u.Generator == nil {
		return ports.Stats{}, errNotConfigured
	}
	if attempts <= 0 {
		size := g.Size()
		attempts = 2 * size * size
	}
	return u.Generator.Fill(ctx, g, attempts, seed)
}

// Generate builds a fresh grid of the requested block size and fills it.
func (u *Service) Generate(ctx context.Context, blockSize, attempts int, seed int64) (domain.Grid, ports.Stats, error) {
	if blockSize < 1 {
		return nil, ports.Stats{}, errors.New("block size must be positive")
	}
	g := domain.NewGrid(blockSize)
	st, err := u.Fill(ctx, g, attempts, seed)
	return g, st, err
}

func (u *Service) Validate(ctx context.Context, g domain.Grid) (validator.Report, error) {
	if u.Validator == nil {
		return validator.Report{}, errNotConfigured
	}
	return u.Validator.Validate(ctx, g)
}

// DIMACS returns the grid's CNF reduction in DIMACS text form.
func (u *Service) DIMACS(g domain.Grid) (string, error) {
	var b strings.Builder
	if err := sat.Encode(g).WriteDIMACS(&b); err != nil {
		return "", err
	}
	return b.String(), nil
}

// Persistence
func (u *Service) Save(ctx context.Context, p *domain.Puzzle) error {
	if u.Storage == nil {
		return errNotConfigured
	}
	return u.Storage.Save(ctx, p)
}
func (u *Service) Load(ctx context.Context, id string) (*domain.Puzzle, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.Load(ctx, id)
}
func (u *Service) List(ctx context.Context) ([]domain.PuzzleMeta, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.List(ctx)
}
