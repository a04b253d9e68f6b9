package domain

// Density controls how many cells a generated problem starts with.
type Density int

const (
	Sparse Density = iota
	Medium
	Dense
	Full
)

// EngineKind names a search engine implementation.
type EngineKind string

const (
	EngineMemo     EngineKind = "memo"     // sequential, memoized
	EngineParallel EngineKind = "parallel" // root branches fanned out over workers
	EngineNoCache  EngineKind = "nocache"  // sequential, recomputes every subtree
)
