package rxkit

import (
	"strconv"
	"sync"
)

// DefaultNamePrefix is used when Next is called with an empty prefix
const DefaultNamePrefix = "rxname"

// SequenceGenerator produces names that are unique within the process for a fixed prefix.
// Create one with NewSequenceGenerator at startup and share the pointer.
//
// Uniqueness does not hold across prefixes: "rx1" followed by 1 and "rx" followed
// by 11 are the same name. Callers that vary the prefix must handle that.
type SequenceGenerator struct {
	mu      sync.Mutex
	counter int64
}

func NewSequenceGenerator() *SequenceGenerator {
	return &SequenceGenerator{counter: 1}
}

// Next returns prefix followed by the current counter value and increments the counter.
func (g *SequenceGenerator) Next(prefix string) string {
	if len(prefix) == 0 {
		prefix = DefaultNamePrefix
	}

	return prefix + strconv.FormatInt(g.next(), 10)
}

func (g *SequenceGenerator) next() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	// zero value generator
	if g.counter == 0 {
		g.counter = 1
	}

	v := g.counter
	g.counter++
	return v
}
