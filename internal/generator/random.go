package generator

import (
	"context"
	"encoding/binary"
	"time"

	"lukechampine.com/frand"

	"svw.info/cephalopod/internal/domain"
	"svw.info/cephalopod/internal/ports"
)

const maxFace = 6

// Random creates problems from a seed. The same seed, density and depth
// always yield the same problem.
type Random struct{}

func NewRandom() *Random { return &Random{} }

func targetFilled(d domain.Density) int {
	switch d {
	case domain.Sparse:
		return 2
	case domain.Medium:
		return 4
	case domain.Dense:
		return 6
	default:
		return 9 // Full
	}
}

// newRNG expands seed into a 32-byte ChaCha key.
func newRNG(seed int64) *frand.RNG {
	var key [32]byte
	binary.LittleEndian.PutUint64(key[:8], uint64(seed))
	return frand.NewCustom(key[:], 64, 12)
}

// Generate places dice showing 1..6 on randomly chosen cells until the density
// target is reached.
func (g *Random) Generate(ctx context.Context, seed int64, density domain.Density, depth uint8) (*domain.Problem, ports.Stats, error) {
	start := time.Now()
	if err := ctx.Err(); err != nil {
		return nil, ports.Stats{}, err
	}
	rng := newRNG(seed)

	cells := make([]int, 9)
	for i := range cells {
		cells[i] = i
	}
	rng.Shuffle(len(cells), func(i, j int) { cells[i], cells[j] = cells[j], cells[i] })

	p := &domain.Problem{Depth: depth}
	n := targetFilled(density)
	for _, c := range cells[:n] {
		p.Board[c/3][c%3] = uint8(1 + rng.Intn(maxFace))
	}
	return p, ports.Stats{Nodes: n, Duration: time.Since(start)}, nil
}

// ParseDensity maps a name to a Density, defaulting to Medium.
func ParseDensity(s string) domain.Density {
	switch s {
	case "sparse":
		return domain.Sparse
	case "dense":
		return domain.Dense
	case "full":
		return domain.Full
	default:
		return domain.Medium
	}
}
