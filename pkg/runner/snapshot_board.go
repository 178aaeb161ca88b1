package runner

import (
	"sync/atomic"

	"github.com/aretw0/cascade/pkg/domain"
)

// SnapshotBoard holds the most recent snapshot of a session.
// Publish is called from the runner goroutine; Latest is safe from any goroutine.
type SnapshotBoard struct {
	latest atomic.Pointer[domain.Snapshot]
}

// NewSnapshotBoard returns an empty board.
func NewSnapshotBoard() *SnapshotBoard {
	return &SnapshotBoard{}
}

// Publish replaces the current snapshot. The snapshot must not be modified
// afterwards.
func (b *SnapshotBoard) Publish(snap domain.Snapshot) {
	b.latest.Store(&snap)
}

// Latest returns the current snapshot, or false before the first Publish.
func (b *SnapshotBoard) Latest() (domain.Snapshot, bool) {
	p := b.latest.Load()
	if p == nil {
		return domain.Snapshot{}, false
	}
	return *p, true
}
