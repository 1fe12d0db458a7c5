package rootmanager

import (
	"github.com/crossmesh/rootmanager/core/entity"
	"github.com/pkg/errors"
)

var ErrEmptyQueue = errors.New("inbound root queue is empty")

// inboundQueue is the FIFO of roots received from spoke connectors and
// not yet folded into the accumulator. Positions are global: next is the
// index the next enqueued root will get, first is the index of the
// current head. Indices survive restarts via the journal.
type inboundQueue struct {
	roots []entity.Root
	first uint64
	next  uint64
}

func newInboundQueue(first uint64) *inboundQueue {
	return &inboundQueue{first: first, next: first}
}

// enqueue appends root and returns its global queue position.
func (q *inboundQueue) enqueue(root entity.Root) uint64 {
	q.roots = append(q.roots, root)
	pos := q.next
	q.next++
	return pos
}

// dequeue pops the oldest root.
func (q *inboundQueue) dequeue() (entity.Root, error) {
	if len(q.roots) == 0 {
		return entity.ZeroRoot, ErrEmptyQueue
	}

	root := q.roots[0]
	q.roots = q.roots[1:]
	q.first++
	return root, nil
}

// count returns the number of pending roots.
func (q *inboundQueue) count() int {
	return len(q.roots)
}

// clear discards all pending roots, keeping the global position counter.
func (q *inboundQueue) clear() {
	q.roots = nil
	q.first = q.next
}
