package engine

import (
	"context"

	"svw.info/cephalopod/internal/game"
)

// Counters tallies work done by one search.
type Counters struct {
	Nodes int
	Hits  int
}

func (c *Counters) add(o Counters) {
	c.Nodes += o.Nodes
	c.Hits += o.Hits
}

// ctx is polled once per pollInterval nodes.
const pollInterval = 1 << 10

type search struct {
	ctx      context.Context
	maxDepth uint8
	cache    Cache
	table    *game.CombinationTable
	counters Counters
	err      error
}

// Compute returns the sum, mod 2^30, of the result of every terminal or
// depth-capped state reachable from root. The search only stops early when
// ctx is cancelled.
func Compute(ctx context.Context, root game.State, maxDepth uint8, cache Cache, table *game.CombinationTable) (game.Result, Counters, error) {
	s := &search{ctx: ctx, maxDepth: maxDepth, cache: cache, table: table}
	r := s.compute(root)
	if s.err != nil {
		return 0, s.counters, s.err
	}
	return r, s.counters, nil
}

func (s *search) compute(state game.State) game.Result {
	if s.err != nil {
		return 0
	}
	s.counters.Nodes++
	if s.counters.Nodes%pollInterval == 0 {
		if err := s.ctx.Err(); err != nil {
			s.err = err
			return 0
		}
	}

	hash := state.Hash()
	if cached, ok := s.cache.Lookup(hash); ok {
		s.counters.Hits++
		return cached
	}

	if state.Depth == s.maxDepth || state.IsFinal() {
		result := state.Result()
		s.cache.Store(hash, result)
		return result
	}

	var result game.Result
	for _, p := range state.Grid.FreeCells() {
		for _, next := range state.Play(p, s.table) {
			result = (result + s.compute(next)) % game.ResultModulus
		}
	}
	if s.err != nil {
		// partial sums must never reach the cache
		return 0
	}
	s.cache.Store(hash, result)
	return result
}
