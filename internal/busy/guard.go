// Package busy provides a non-blocking single-flight guard. A caller either
// gets the slot immediately or domain.ErrBusy; requests never queue.
package busy

import (
	"fmt"

	"golang.org/x/sync/semaphore"

	"github.com/heartmarshall/huayu-backend/internal/domain"
)

// Guard admits one action at a time.
type Guard struct {
	name string
	sem  *semaphore.Weighted
}

// New creates a Guard. name appears in the busy error.
func New(name string) *Guard {
	return &Guard{name: name, sem: semaphore.NewWeighted(1)}
}

// Acquire takes the slot. The returned release must be called exactly once.
func (g *Guard) Acquire() (release func(), err error) {
	if !g.sem.TryAcquire(1) {
		return nil, fmt.Errorf("%s: %w", g.name, domain.ErrBusy)
	}
	return func() { g.sem.Release(1) }, nil
}
