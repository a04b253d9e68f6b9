package engine

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"svw.info/cephalopod/internal/domain"
	"svw.info/cephalopod/internal/game"
	"svw.info/cephalopod/internal/ports"
)

// Memo is the sequential depth-first engine. Every Compute call starts from
// an empty cache.
type Memo struct {
	table   *game.CombinationTable
	noCache bool
}

func NewMemo(table *game.CombinationTable) *Memo { return &Memo{table: table} }

// NewNoCache returns a Memo that recomputes every subtree. It is only useful
// for cross-checking the cache.
func NewNoCache(table *game.CombinationTable) *Memo { return &Memo{table: table, noCache: true} }

func (m *Memo) Compute(ctx context.Context, p *domain.Problem) (uint32, ports.Stats, error) {
	start := time.Now()
	var cache Cache = NewMapCache()
	if m.noCache {
		cache = NopCache{}
	}
	root := game.NewState(game.GridFromRows(p.Board))
	r, c, err := Compute(ctx, root, p.Depth, cache, m.table)
	st := ports.Stats{Nodes: c.Nodes, CacheHits: c.Hits, CacheSize: cache.Len(), Duration: time.Since(start)}
	if err != nil {
		return 0, st, err
	}
	return uint32(r), st, nil
}

// Parallel evaluates the root's moves concurrently over a shared
// ShardedCache. Siblings may briefly duplicate work on a common subtree;
// both writers store the same value.
type Parallel struct {
	table   *game.CombinationTable
	workers int
}

func NewParallel(table *game.CombinationTable, workers int) *Parallel {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Parallel{table: table, workers: workers}
}

func (e *Parallel) Compute(ctx context.Context, p *domain.Problem) (uint32, ports.Stats, error) {
	start := time.Now()
	cache := NewShardedCache(e.workers * 16)
	root := game.NewState(game.GridFromRows(p.Board))

	stats := func(c Counters) ports.Stats {
		return ports.Stats{Nodes: c.Nodes, CacheHits: c.Hits, CacheSize: cache.Len(), Duration: time.Since(start)}
	}

	if root.Depth == p.Depth || root.IsFinal() {
		return uint32(root.Result()), stats(Counters{Nodes: 1}), nil
	}

	var (
		mu    sync.Mutex
		total game.Result
		count = Counters{Nodes: 1}
	)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)
	for _, m := range root.Moves(e.table) {
		child := root.Apply(m)
		g.Go(func() error {
			r, c, err := Compute(gctx, child, p.Depth, cache, e.table)
			mu.Lock()
			defer mu.Unlock()
			count.add(c)
			if err != nil {
				return err
			}
			total = (total + r) % game.ResultModulus
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, stats(count), err
	}
	cache.Store(root.Hash(), total)
	return uint32(total), stats(count), nil
}

// New picks an engine by kind.
func New(kind domain.EngineKind, workers int) (ports.Engine, error) {
	table := game.NewCombinationTable()
	switch kind {
	case domain.EngineMemo, "":
		return NewMemo(table), nil
	case domain.EngineParallel:
		return NewParallel(table, workers), nil
	case domain.EngineNoCache:
		return NewNoCache(table), nil
	default:
		return nil, fmt.Errorf("unknown engine %q (want memo|parallel|nocache)", kind)
	}
}
