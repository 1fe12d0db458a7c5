// Package accumulator provides the deterministic incremental commitment
// the engine uses in slow mode. It folds every enqueued leaf into a
// running hash; the count is monotonic for the lifetime of the instance.
package accumulator

import (
	"crypto/sha256"
	"encoding/binary"
	"sync"

	"github.com/crossmesh/rootmanager/core/entity"
)

type Incremental struct {
	mu    sync.RWMutex
	root  entity.Root
	count uint64
}

func New() *Incremental {
	return &Incremental{}
}

// NewAt restores an accumulator to a previously persisted state.
func NewAt(root entity.Root, count uint64) *Incremental {
	return &Incremental{root: root, count: count}
}

// Enqueue folds leaf into the running root.
func (a *Incremental) Enqueue(leaf entity.Root) {
	a.mu.Lock()
	defer a.mu.Unlock()

	h := sha256.New()
	h.Write(a.root[:])
	h.Write(leaf[:])
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], a.count)
	h.Write(buf[:])
	copy(a.root[:], h.Sum(nil))
	a.count++
}

func (a *Incremental) Root() entity.Root {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.root
}

func (a *Incremental) Count() uint64 {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.count
}

func (a *Incremental) RootAndCount() (entity.Root, uint64) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.root, a.count
}
