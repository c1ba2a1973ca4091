package mocks

import (
	"sync"

	"github.com/sgaunet/durfmt/pkg/buckets"
	"github.com/sgaunet/durfmt/pkg/durationfmt"
)

// RenderedBucket is a snapshot of one bucket handed to a renderer.
type RenderedBucket struct {
	Unit    string
	Value   int64
	Visible bool
}

// Renderer is a mock implementation of durationfmt.Renderer that records
// the chains it receives.
type Renderer struct {
	mu     sync.Mutex
	chains [][]RenderedBucket

	// Output is returned by every Render call.
	Output string
}

// NewRenderer creates a new mock renderer.
func NewRenderer(output string) *Renderer {
	return &Renderer{Output: output}
}

// Render implements durationfmt.Renderer.
func (m *Renderer) Render(c *buckets.Chain) string {
	snapshot := make([]RenderedBucket, 0, c.Len())
	for b := range c.All() {
		snapshot = append(snapshot, RenderedBucket{
			Unit:    b.Unit().String(),
			Value:   b.Value(),
			Visible: b.Visible(),
		})
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.chains = append(m.chains, snapshot)
	return m.Output
}

// GetCallCount returns the number of Render calls.
func (m *Renderer) GetCallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.chains)
}

// GetLastChain returns the buckets of the last rendered chain, or nil.
func (m *Renderer) GetLastChain() []RenderedBucket {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.chains) == 0 {
		return nil
	}
	return append([]RenderedBucket{}, m.chains[len(m.chains)-1]...)
}

// Reset clears all recorded calls.
func (m *Renderer) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.chains = nil
}

// Ensure Renderer implements durationfmt.Renderer interface.
var _ durationfmt.Renderer = (*Renderer)(nil)
