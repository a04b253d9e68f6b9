package validator

import (
	"context"

	"svw.info/cephalopod/internal/domain"
)

// MaxFace is the largest value a cell may start with.
const MaxFace = 6

type RangeValidator struct{}

func New() *RangeValidator { return &RangeValidator{} }

// Validate flags every cell holding something other than empty or a die face.
func (v *RangeValidator) Validate(ctx context.Context, p *domain.Problem) (bool, []domain.CellCoord, error) {
	conf := make([]domain.CellCoord, 0, 9)
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			if p.Board[r][c] > MaxFace {
				conf = append(conf, domain.CellCoord{Row: r, Col: c})
			}
		}
	}
	return len(conf) == 0, conf, nil
}
