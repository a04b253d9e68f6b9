package usecase

import (
	"context"
	"errors"
	"fmt"

	"svw.info/cephalopod/internal/domain"
	"svw.info/cephalopod/internal/ports"
)

type Service struct {
	Engine    ports.Engine
	Generator ports.Generator
	Validator ports.Validator
	Explainer ports.Explainer
	Storage   ports.Storage
}

func NewService(e ports.Engine, g ports.Generator, v ports.Validator, x ports.Explainer, st ports.Storage) *Service {
	return &Service{Engine: e, Generator: g, Validator: v, Explainer: x, Storage: st}
}

var (
	errNotConfigured = errors.New("usecase dependency not configured")

	// ErrInvalidProblem is returned before any search starts when a cell is
	// out of range.
	ErrInvalidProblem = errors.New("invalid problem")
)

// check runs the validator, if any, and rejects boards with conflicts.
func (u *Service) check(ctx context.Context, p *domain.Problem) error {
	if p == nil {
		return fmt.Errorf("%w: missing problem", ErrInvalidProblem)
	}
	if u.Validator == nil {
		return nil
	}
	ok, conflicts, err := u.Validator.Validate(ctx, p)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: cells out of range at %v", ErrInvalidProblem, conflicts)
	}
	return nil
}

func (u *Service) Compute(ctx context.Context, p *domain.Problem) (uint32, ports.Stats, error) {
	if u.Engine == nil {
		return 0, ports.Stats{}, errNotConfigured
	}
	if err := u.check(ctx, p); err != nil {
		return 0, ports.Stats{}, err
	}
	return u.Engine.Compute(ctx, p)
}

func (u *Service) Breakdown(ctx context.Context, p *domain.Problem) (uint32, []domain.Branch, error) {
	if u.Explainer == nil {
		return 0, nil, errNotConfigured
	}
	if err := u.check(ctx, p); err != nil {
		return 0, nil, err
	}
	return u.Explainer.Breakdown(ctx, p)
}

func (u *Service) Generate(ctx context.Context, seed int64, d domain.Density, depth uint8) (*domain.Problem, ports.Stats, error) {
	if u.Generator == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	return u.Generator.Generate(ctx, seed, d, depth)
}

func (u *Service) Validate(ctx context.Context, p *domain.Problem) (bool, []domain.CellCoord, error) {
	if u.Validator == nil {
		return false, nil, errNotConfigured
	}
	return u.Validator.Validate(ctx, p)
}

// Persistence
func (u *Service) Save(ctx context.Context, r *domain.Record) error {
	if u.Storage == nil {
		return errNotConfigured
	}
	return u.Storage.Save(ctx, r)
}
func (u *Service) Load(ctx context.Context, id string) (*domain.Record, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.Load(ctx, id)
}
func (u *Service) List(ctx context.Context) ([]domain.RecordMeta, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.List(ctx)
}
