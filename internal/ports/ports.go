package ports

import (
	"context"
	"time"

	"svw.info/cephalopod/internal/domain"
)

// Stats captures performance characteristics of an operation.
type Stats struct {
	Nodes     int
	CacheHits int
	CacheSize int
	Duration  time.Duration
}

// Engine computes the aggregate of every move sequence from a problem.
type Engine interface {
	Compute(ctx context.Context, p *domain.Problem) (uint32, Stats, error)
}

// Generator creates random problems at a target density.
type Generator interface {
	Generate(ctx context.Context, seed int64, density domain.Density, depth uint8) (*domain.Problem, Stats, error)
}

// Validator performs range checks on the board.
type Validator interface {
	Validate(ctx context.Context, p *domain.Problem) (ok bool, conflicts []domain.CellCoord, err error)
}

// Explainer splits the aggregate by first move.
type Explainer interface {
	Breakdown(ctx context.Context, p *domain.Problem) (total uint32, branches []domain.Branch, err error)
}

// Storage persists and retrieves computed records as JSON.
type Storage interface {
	Save(ctx context.Context, r *domain.Record) error
	Load(ctx context.Context, id string) (*domain.Record, error)
	List(ctx context.Context) ([]domain.RecordMeta, error)
}
