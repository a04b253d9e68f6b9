package game

const (
	Size  = 3
	Cells = Size * Size

	// MaxDiceValue bounds the sum a capture may produce.
	MaxDiceValue = 6
)

// Grid stores cell values row-major; 0 is empty. Grid is a value type, so an
// assignment is a full copy.
type Grid [Cells]uint8

// Capture is one way of merging neighbouring dice into a placed die.
type Capture struct {
	Value     uint8
	Positions []Position
}

// GridFromRows converts the row-oriented wire form.
func GridFromRows(rows [Size][Size]uint8) Grid {
	var g Grid
	for l := 0; l < Size; l++ {
		for c := 0; c < Size; c++ {
			g[Size*l+c] = rows[l][c]
		}
	}
	return g
}

func (g *Grid) Rows() [Size][Size]uint8 {
	var rows [Size][Size]uint8
	for i, v := range g {
		rows[i/Size][i%Size] = v
	}
	return rows
}

func (g *Grid) Get(p Position) uint8 { return g[p.Index()] }

// Set writes in place and returns g for chaining.
func (g *Grid) Set(p Position, v uint8) *Grid {
	g[p.Index()] = v
	return g
}

// Full reports whether no cell is empty.
func (g *Grid) Full() bool {
	for _, v := range g {
		if v == 0 {
			return false
		}
	}
	return true
}

// FreeCells returns empty cells in row-major order.
func (g *Grid) FreeCells() []Position {
	cells := make([]Position, 0, Cells)
	for i, v := range g {
		if v == 0 {
			cells = append(cells, PositionFromIndex(i))
		}
	}
	return cells
}

// NeighbourDice returns the occupied orthogonal neighbours of p, always in the
// order up, right, down, left. Capture subsets index into this slice.
func (g *Grid) NeighbourDice(p Position) []Position {
	neighbours := make([]Position, 0, maxNeighbours)
	for _, step := range [...]func(Position) (Position, bool){
		Position.Up, Position.Right, Position.Down, Position.Left,
	} {
		if n, ok := step(p); ok && g.Get(n) > 0 {
			neighbours = append(neighbours, n)
		}
	}
	return neighbours
}

// Captures lists every capture available when a die lands on p. A subset whose
// running sum goes above MaxDiceValue is dropped as a whole.
func (g *Grid) Captures(p Position, table *CombinationTable) []Capture {
	dice := g.NeighbourDice(p)
	if len(dice) < 2 {
		return nil
	}

	captures := make([]Capture, 0, 4)
next:
	for _, subset := range table.Subsets(len(dice)) {
		positions := make([]Position, 0, len(subset))
		var value uint8
		for _, idx := range subset {
			value += g.Get(dice[idx])
			if value > MaxDiceValue {
				continue next
			}
			positions = append(positions, dice[idx])
		}
		captures = append(captures, Capture{Value: value, Positions: positions})
	}
	return captures
}
