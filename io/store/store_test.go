package store

import (
	"testing"

	"github.com/crossmesh/rootmanager/core/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vadiminshakov/gowal"
)

func openWal(t *testing.T, dir string) *gowal.Wal {
	t.Helper()
	w, err := gowal.NewWAL(gowal.Config{
		Dir:              dir,
		Prefix:           "journal_",
		SegmentThreshold: 1024 * 1024,
		MaxSegments:      10,
	})
	require.NoError(t, err)
	return w
}

func root(b byte) entity.Root {
	var r entity.Root
	r[0] = b
	return r
}

func TestStore_Recovery(t *testing.T) {
	walDir := t.TempDir()
	dbDir := t.TempDir()

	w := openWal(t, walDir)
	s, rec, err := New(w, dbDir)
	require.NoError(t, err)

	// fresh store recovers to zero state
	assert.Empty(t, rec.PendingRoots)
	assert.Empty(t, rec.DrainedRoots)
	assert.Equal(t, uint64(0), rec.NextIndex)

	for i := byte(0); i < 4; i++ {
		require.NoError(t, s.AppendRoot(uint64(i), entity.Domain(i+1), root(i+1)))
	}
	require.NoError(t, s.SetDrainOffset(2))
	require.NoError(t, s.SaveMode("optimistic"))
	require.NoError(t, s.SaveWatermark(2))
	require.NoError(t, s.SaveLastPropagated(root(0xee)))

	require.NoError(t, s.Close())
	require.NoError(t, w.Close())

	w2 := openWal(t, walDir)
	defer w2.Close()

	s2, rec, err := New(w2, dbDir)
	require.NoError(t, err)
	defer s2.Close()

	// entries below the drain offset were consumed, the rest are pending
	assert.Equal(t, []entity.Root{root(1), root(2)}, rec.DrainedRoots)
	assert.Equal(t, []entity.Root{root(3), root(4)}, rec.PendingRoots)
	assert.Equal(t, uint64(4), rec.NextIndex)
	assert.Equal(t, "optimistic", rec.Mode)
	assert.Equal(t, uint64(2), rec.Watermark)
	assert.Equal(t, root(0xee), rec.LastPropagated)
}

func TestStore_Recovery_AllDrained(t *testing.T) {
	walDir := t.TempDir()
	dbDir := t.TempDir()

	w := openWal(t, walDir)
	s, _, err := New(w, dbDir)
	require.NoError(t, err)

	require.NoError(t, s.AppendRoot(0, 1, root(1)))
	require.NoError(t, s.AppendRoot(1, 1, root(2)))
	require.NoError(t, s.SetDrainOffset(2))

	require.NoError(t, s.Close())
	require.NoError(t, w.Close())

	w2 := openWal(t, walDir)
	defer w2.Close()

	s2, rec, err := New(w2, dbDir)
	require.NoError(t, err)
	defer s2.Close()

	assert.Empty(t, rec.PendingRoots)
	assert.Equal(t, []entity.Root{root(1), root(2)}, rec.DrainedRoots)

	// the next journal index continues past the consumed entries
	assert.Equal(t, uint64(2), rec.NextIndex)
}

func TestStore_Validation(t *testing.T) {
	_, _, err := New(nil, t.TempDir())
	require.Error(t, err)

	w := openWal(t, t.TempDir())
	defer w.Close()
	_, _, err = New(w, "")
	require.Error(t, err)
}

func TestInboundCodec(t *testing.T) {
	domain, r, err := decodeInbound(encodeInbound(7, root(0x42)))
	require.NoError(t, err)
	assert.Equal(t, entity.Domain(7), domain)
	assert.Equal(t, root(0x42), r)

	_, _, err = decodeInbound([]byte{0x01, 0x02})
	require.Error(t, err)
}
