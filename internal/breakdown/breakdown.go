package breakdown

import (
	"context"

	"svw.info/cephalopod/internal/domain"
	"svw.info/cephalopod/internal/engine"
	"svw.info/cephalopod/internal/game"
)

// FirstMoves splits the aggregate of a problem by the first move played.
type FirstMoves struct {
	table *game.CombinationTable
}

func NewFirstMoves(table *game.CombinationTable) *FirstMoves { return &FirstMoves{table: table} }

// Breakdown returns the total aggregate and one branch per legal first move.
// A terminal root has no branches. Branch results add up to total mod 2^30.
func (f *FirstMoves) Breakdown(ctx context.Context, p *domain.Problem) (uint32, []domain.Branch, error) {
	root := game.NewState(game.GridFromRows(p.Board))
	if root.Depth == p.Depth || root.IsFinal() {
		return uint32(root.Result()), nil, nil
	}

	cache := engine.NewMapCache()
	var total game.Result
	var branches []domain.Branch
	for _, m := range root.Moves(f.table) {
		r, _, err := engine.Compute(ctx, root.Apply(m), p.Depth, cache, f.table)
		if err != nil {
			return 0, nil, err
		}
		total = (total + r) % game.ResultModulus
		branches = append(branches, branchOf(m, r))
	}
	return uint32(total), branches, nil
}

func branchOf(m game.Move, r game.Result) domain.Branch {
	b := domain.Branch{
		Cell:   coord(m.At),
		Value:  1,
		Result: uint32(r),
	}
	if m.Capture != nil {
		b.Value = m.Capture.Value
		for _, p := range m.Capture.Positions {
			b.Captured = append(b.Captured, coord(p))
		}
	}
	return b
}

func coord(p game.Position) domain.CellCoord {
	return domain.CellCoord{Row: p.Line, Col: p.Column}
}
