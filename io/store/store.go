// Package store persists the aggregation engine's state: inbound roots
// are journaled to a write-ahead log, scalar state lives in BadgerDB,
// and startup recovery rebuilds the in-memory queue and accumulator
// from both.
package store

import (
	"encoding/binary"
	stdErrors "errors"
	"os"
	"sync"

	"github.com/crossmesh/rootmanager/core/entity"
	"github.com/dgraph-io/badger/v4"
	"github.com/pkg/errors"
	"github.com/vadiminshakov/gowal"
)

const (
	inboundKey = "inbound"

	modeKey           = "state/mode"
	watermarkKey      = "state/watermark"
	lastPropagatedKey = "state/lastPropagated"
	drainOffsetKey    = "state/drainOffset"
)

// Store is the engine's durable state. Journal entries below the drain
// offset have been folded into the accumulator; entries at or above it
// are still pending in the queue.
type Store struct {
	mu  sync.Mutex
	wal *gowal.Wal
	db  *badger.DB
}

// RecoveryState is what a restarted engine resumes from. DrainedRoots
// are replayed into a fresh accumulator in journal order; PendingRoots
// refill the queue.
type RecoveryState struct {
	DrainedRoots   []entity.Root
	PendingRoots   []entity.Root
	NextIndex      uint64
	Mode           string
	Watermark      uint64
	LastPropagated entity.Root
}

// New opens the store and reconstructs state from the journal.
func New(wal *gowal.Wal, dbPath string) (*Store, *RecoveryState, error) {
	if wal == nil {
		return nil, nil, errors.New("wal is nil")
	}
	if dbPath == "" {
		return nil, nil, errors.New("db path is empty")
	}

	if err := os.MkdirAll(dbPath, 0o755); err != nil {
		return nil, nil, errors.Wrap(err, "create badger directory")
	}

	db, err := badger.Open(badger.DefaultOptions(dbPath).WithLogger(nil))
	if err != nil {
		return nil, nil, errors.Wrap(err, "open badger db")
	}

	s := &Store{wal: wal, db: db}
	recovery, err := s.recover()
	if err != nil {
		_ = db.Close()
		return nil, nil, err
	}

	return s, recovery, nil
}

// AppendRoot journals one inbound root at its queue position.
func (s *Store) AppendRoot(index uint64, domain entity.Domain, root entity.Root) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return errors.Wrap(s.wal.Write(index, inboundKey, encodeInbound(domain, root)), "write wal")
}

// SetDrainOffset marks every journal entry below index as consumed.
func (s *Store) SetDrainOffset(index uint64) error {
	return s.putUint64(drainOffsetKey, index)
}

func (s *Store) SaveMode(mode string) error {
	return s.put(modeKey, []byte(mode))
}

func (s *Store) SaveWatermark(count uint64) error {
	return s.putUint64(watermarkKey, count)
}

func (s *Store) SaveLastPropagated(root entity.Root) error {
	return s.put(lastPropagatedKey, root[:])
}

// Close closes the underlying Badger database. The WAL is owned by the
// caller and closed separately.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) recover() (*RecoveryState, error) {
	rec := &RecoveryState{}

	drainOffset, err := s.getUint64(drainOffsetKey)
	if err != nil {
		return nil, err
	}

	if raw, err := s.get(modeKey); err == nil {
		rec.Mode = string(raw)
	} else if !stdErrors.Is(err, badger.ErrKeyNotFound) {
		return nil, err
	}

	rec.Watermark, err = s.getUint64(watermarkKey)
	if err != nil {
		return nil, err
	}

	if raw, err := s.get(lastPropagatedKey); err == nil {
		rec.LastPropagated, err = entity.RootFromBytes(raw)
		if err != nil {
			return nil, errors.Wrap(err, "corrupt last propagated root")
		}
	} else if !stdErrors.Is(err, badger.ErrKeyNotFound) {
		return nil, err
	}

	rec.NextIndex = drainOffset
	for msg := range s.wal.Iterator() {
		if msg.Key != inboundKey {
			continue
		}
		_, root, err := decodeInbound(msg.Value)
		if err != nil {
			return nil, errors.Wrapf(err, "corrupt wal entry %d", msg.Idx)
		}

		if msg.Idx >= drainOffset {
			rec.PendingRoots = append(rec.PendingRoots, root)
		} else {
			rec.DrainedRoots = append(rec.DrainedRoots, root)
		}
		if msg.Idx+1 > rec.NextIndex {
			rec.NextIndex = msg.Idx + 1
		}
	}

	return rec, nil
}

func (s *Store) put(key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), value)
	})
}

func (s *Store) get(key string) ([]byte, error) {
	var value []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})
	return value, err
}

func (s *Store) putUint64(key string, v uint64) error {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], v)
	return s.put(key, buf[:])
}

func (s *Store) getUint64(key string) (uint64, error) {
	raw, err := s.get(key)
	if err != nil {
		if stdErrors.Is(err, badger.ErrKeyNotFound) {
			return 0, nil
		}
		return 0, err
	}
	if len(raw) != 8 {
		return 0, errors.Errorf("corrupt value for %s", key)
	}
	return binary.BigEndian.Uint64(raw), nil
}

// encodeInbound packs a journal value: 4-byte domain, 32-byte root.
func encodeInbound(domain entity.Domain, root entity.Root) []byte {
	buf := make([]byte, 4+entity.RootSize)
	binary.BigEndian.PutUint32(buf[:4], uint32(domain))
	copy(buf[4:], root[:])
	return buf
}

func decodeInbound(b []byte) (entity.Domain, entity.Root, error) {
	if len(b) != 4+entity.RootSize {
		return 0, entity.ZeroRoot, errors.Errorf("inbound record must be %d bytes, got %d", 4+entity.RootSize, len(b))
	}
	domain := entity.Domain(binary.BigEndian.Uint32(b[:4]))
	var root entity.Root
	copy(root[:], b[4:])
	return domain, root, nil
}
