package model

// Cycle is a governance period covering an inclusive block range.
type Cycle struct {
	FirstBlockHeight int
	LastBlockHeight  int
}

// Contains reports whether height falls inside the cycle.
func (c Cycle) Contains(height int) bool {
	return height >= c.FirstBlockHeight && height <= c.LastBlockHeight
}

// Cycles is the ordered list of all cycles. The position of a cycle is its index.
type Cycles []Cycle

// Find returns the cycle containing height and its index.
func (cs Cycles) Find(height int) (Cycle, int, bool) {
	for i, c := range cs {
		if c.Contains(height) {
			return c, i, true
		}
	}
	return Cycle{}, 0, false
}

// Index returns the index of the cycle containing height, or 0 when none does.
func (cs Cycles) Index(height int) int {
	_, idx, _ := cs.Find(height)
	return idx
}

// Past returns the cycle n positions before the cycle at index.
func (cs Cycles) Past(index, n int) (Cycle, bool) {
	past := index - n
	if past < 0 || past >= len(cs) {
		return Cycle{}, false
	}
	return cs[past], true
}
