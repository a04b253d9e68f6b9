package game

import "fmt"

// Position identifies a cell on the board.
type Position struct {
	Line   int
	Column int
}

// NewPosition panics when (line, column) is off the board; callers only
// build positions from indices they already know to be in range.
func NewPosition(line, column int) Position {
	if line < 0 || line >= Size || column < 0 || column >= Size {
		panic(fmt.Sprintf("game: position (%d,%d) off the %dx%d board", line, column, Size, Size))
	}
	return Position{Line: line, Column: column}
}

// PositionFromIndex maps a row-major flat index to a Position.
func PositionFromIndex(i int) Position {
	return NewPosition(i/Size, i%Size)
}

func (p Position) Index() int { return Size*p.Line + p.Column }

func (p Position) Up() (Position, bool) {
	if p.Line >= 1 {
		return Position{p.Line - 1, p.Column}, true
	}
	return Position{}, false
}

func (p Position) Right() (Position, bool) {
	if p.Column < Size-1 {
		return Position{p.Line, p.Column + 1}, true
	}
	return Position{}, false
}

func (p Position) Down() (Position, bool) {
	if p.Line < Size-1 {
		return Position{p.Line + 1, p.Column}, true
	}
	return Position{}, false
}

func (p Position) Left() (Position, bool) {
	if p.Column >= 1 {
		return Position{p.Line, p.Column - 1}, true
	}
	return Position{}, false
}

func (p Position) String() string { return fmt.Sprintf("(%d,%d)", p.Line, p.Column) }
