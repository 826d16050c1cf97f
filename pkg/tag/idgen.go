package tag

import (
	"strconv"
	"sync"
)

// MaxID is the largest counter value before the generator wraps back to 1.
const MaxID = 1_000_000

// IDGenerator produces element ids of the form prefix+counter. Ids are unique
// per generator until the counter wraps.
type IDGenerator struct {
	mu sync.Mutex
	n  int
}

// DefaultIDs is the process-wide generator used when a node's context does not
// provide one.
var DefaultIDs = &IDGenerator{}

// NewIDGenerator returns a generator starting at 1.
func NewIDGenerator() *IDGenerator {
	return &IDGenerator{}
}

// Next returns the next id for prefix.
func (g *IDGenerator) Next(prefix string) string {
	g.mu.Lock()
	g.n++
	if g.n > MaxID {
		g.n = 1
	}
	n := g.n
	g.mu.Unlock()
	return prefix + strconv.Itoa(n)
}

// Reset restarts the counter.
func (g *IDGenerator) Reset() {
	g.mu.Lock()
	g.n = 0
	g.mu.Unlock()
}
