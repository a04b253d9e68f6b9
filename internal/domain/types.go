package domain

// Board is the row-major 3x3 grid; 0 marks an empty cell.
type Board [3][3]uint8

// CellCoord identifies a cell on the board.
type CellCoord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Problem is one search request: a starting board and the cumulative move
// count at which the search stops.
type Problem struct {
	Depth uint8 `json:"depth" yaml:"depth"`
	Board Board `json:"board" yaml:"board"`
}

// Branch is the share of the aggregate contributed by one first move.
type Branch struct {
	Cell     CellCoord   `json:"cell"`
	Value    uint8       `json:"value"`
	Captured []CellCoord `json:"captured,omitempty"`
	Result   uint32      `json:"result"`
}

// Record is a persisted problem with its computed aggregate.
type Record struct {
	ID         string     `json:"id,omitempty"`
	Problem    Problem    `json:"problem"`
	Result     uint32     `json:"result"`
	Engine     EngineKind `json:"engine,omitempty"`
	DurationMs int64      `json:"durationMs,omitempty"`
	CreatedAt  int64      `json:"createdAt,omitempty"`
	// Optional user metadata
	Name  string `json:"name,omitempty"`
	Notes string `json:"notes,omitempty"`
}

// RecordMeta is a lightweight listing entry.
type RecordMeta struct {
	ID        string `json:"id"`
	Name      string `json:"name,omitempty"`
	Depth     uint8  `json:"depth"`
	Result    uint32 `json:"result"`
	CreatedAt int64  `json:"createdAt"`
}
