package game

// Result is an aggregate value, always below ResultModulus.
type Result uint32

// Hash is the canonical memoization key of a State.
type Hash uint64

// ResultModulus is the modulus applied to every aggregate addition.
const ResultModulus Result = 1 << 30

// State is an immutable snapshot: a board and the number of moves played to
// reach it.
type State struct {
	Grid  Grid
	Depth uint8
}

// Move is one placement choice. A nil Capture places a plain 1.
type Move struct {
	At      Position
	Capture *Capture
}

func NewState(g Grid) State { return State{Grid: g} }

// Next returns the state after placing a die on p.
func (s State) Next(p Position, capture *Capture) State {
	grid := s.Grid
	if capture == nil {
		grid.Set(p, 1)
	} else {
		grid.Set(p, capture.Value)
		for _, captured := range capture.Positions {
			grid.Set(captured, 0)
		}
	}
	return State{Grid: grid, Depth: s.Depth + 1}
}

// Play returns one successor per capture option on p, or the single plain
// placement when nothing can be captured.
func (s State) Play(p Position, table *CombinationTable) []State {
	captures := s.Grid.Captures(p, table)
	if len(captures) == 0 {
		return []State{s.Next(p, nil)}
	}
	next := make([]State, len(captures))
	for i := range captures {
		next[i] = s.Next(p, &captures[i])
	}
	return next
}

// Moves enumerates every (free cell, capture option) pair in the same order
// Play walks them.
func (s State) Moves(table *CombinationTable) []Move {
	var moves []Move
	for _, p := range s.Grid.FreeCells() {
		captures := s.Grid.Captures(p, table)
		if len(captures) == 0 {
			moves = append(moves, Move{At: p})
			continue
		}
		for i := range captures {
			moves = append(moves, Move{At: p, Capture: &captures[i]})
		}
	}
	return moves
}

func (s State) Apply(m Move) State { return s.Next(m.At, m.Capture) }

func (s State) IsFinal() bool { return s.Grid.Full() }

// Result reads the nine cells as a decimal number, cell 0 first.
func (s State) Result() Result {
	var r Result
	for _, v := range s.Grid {
		r = 10*r + Result(v)
	}
	return r
}

// Hash packs the depth above nine 4-bit cell nibbles.
func (s State) Hash() Hash {
	h := Hash(s.Depth)
	for _, v := range s.Grid {
		h = h<<4 | Hash(v)
	}
	return h
}
