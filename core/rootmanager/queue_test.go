package rootmanager

import (
	"testing"

	"github.com/crossmesh/rootmanager/core/entity"
	"github.com/stretchr/testify/require"
)

func queuedRoot(b byte) entity.Root {
	var r entity.Root
	r[0] = b
	return r
}

func TestInboundQueue(t *testing.T) {
	q := newInboundQueue(10)

	require.Equal(t, uint64(10), q.enqueue(queuedRoot(0x01)))
	require.Equal(t, uint64(11), q.enqueue(queuedRoot(0x02)))
	require.Equal(t, 2, q.count())

	root, err := q.dequeue()
	require.NoError(t, err)
	require.Equal(t, queuedRoot(0x01), root)

	// clear keeps the global position counter
	q.clear()
	require.Equal(t, 0, q.count())
	require.Equal(t, uint64(12), q.enqueue(queuedRoot(0x03)))

	q.clear()
	_, err = q.dequeue()
	require.ErrorIs(t, err, ErrEmptyQueue)
}
