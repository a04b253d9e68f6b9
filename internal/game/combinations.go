package game

import (
	"fmt"

	"gonum.org/v1/gonum/stat/combin"
)

// CombinationTable lists, for each neighbour count n in 2..4, every subset of
// {0..n-1} holding at least two indices. Subsets are ordered by size, then
// lexicographically. The table is read-only once built.
type CombinationTable struct {
	subsets [maxNeighbours + 1][][]int
}

const maxNeighbours = 4

// NewCombinationTable builds the table. Build it once and share it.
func NewCombinationTable() *CombinationTable {
	t := &CombinationTable{}
	for n := 2; n <= maxNeighbours; n++ {
		var all [][]int
		for k := 2; k <= n; k++ {
			all = append(all, combin.Combinations(n, k)...)
		}
		t.subsets[n] = all
	}
	return t
}

// Subsets returns the index subsets for n neighbours. Only 2, 3 and 4 are
// meaningful; anything else is a caller bug.
func (t *CombinationTable) Subsets(n int) [][]int {
	if n < 2 || n > maxNeighbours {
		panic(fmt.Sprintf("game: no combinations for %d neighbours", n))
	}
	return t.subsets[n]
}
