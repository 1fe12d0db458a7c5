package accumulator

import (
	"testing"

	"github.com/crossmesh/rootmanager/core/entity"
	"github.com/stretchr/testify/require"
)

func leaf(b byte) entity.Root {
	var r entity.Root
	r[0] = b
	return r
}

func TestEnqueue(t *testing.T) {
	a := New()
	require.True(t, a.Root().IsZero())
	require.Equal(t, uint64(0), a.Count())

	a.Enqueue(leaf(0x01))
	require.False(t, a.Root().IsZero())
	require.Equal(t, uint64(1), a.Count())

	root, count := a.RootAndCount()
	require.Equal(t, a.Root(), root)
	require.Equal(t, uint64(1), count)
}

func TestDeterminism(t *testing.T) {
	a, b := New(), New()
	for i := byte(0); i < 10; i++ {
		a.Enqueue(leaf(i))
		b.Enqueue(leaf(i))
	}
	require.Equal(t, a.Root(), b.Root())

	// order matters
	c := New()
	for i := byte(9); ; i-- {
		c.Enqueue(leaf(i))
		if i == 0 {
			break
		}
	}
	require.NotEqual(t, a.Root(), c.Root())
}

func TestNewAt(t *testing.T) {
	a := New()
	a.Enqueue(leaf(0x01))
	a.Enqueue(leaf(0x02))

	// a restored accumulator continues the same sequence
	root, count := a.RootAndCount()
	restored := NewAt(root, count)
	a.Enqueue(leaf(0x03))
	restored.Enqueue(leaf(0x03))

	require.Equal(t, a.Root(), restored.Root())
	require.Equal(t, a.Count(), restored.Count())
}
