package rootmanager_test

import (
	"testing"
	"time"

	"github.com/crossmesh/rootmanager/accumulator"
	"github.com/crossmesh/rootmanager/core/entity"
	"github.com/crossmesh/rootmanager/core/events"
	"github.com/crossmesh/rootmanager/core/registry"
	"github.com/crossmesh/rootmanager/core/rootmanager"
	"github.com/crossmesh/rootmanager/mocks"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	owner    = entity.Address("owner")
	watcher  = entity.Address("watcher")
	proposer = entity.Address("proposer")
)

type engineEnv struct {
	manager *rootmanager.Manager
	reg     *registry.Registry
	acc     *accumulator.Incremental
	dialer  *mocks.MockConnectorDialer
	bus     *events.Bus
	now     time.Time
}

// advance moves the injected clock forward.
func (e *engineEnv) advance(d time.Duration) {
	e.now = e.now.Add(d)
}

func newEngineEnv(t *testing.T, mode rootmanager.Mode) *engineEnv {
	t.Helper()

	ctrl := gomock.NewController(t)
	store := mocks.NewMockStateStore(ctrl)
	store.EXPECT().AppendRoot(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	store.EXPECT().SetDrainOffset(gomock.Any()).Return(nil).AnyTimes()
	store.EXPECT().SaveMode(gomock.Any()).Return(nil).AnyTimes()
	store.EXPECT().SaveWatermark(gomock.Any()).Return(nil).AnyTimes()
	store.EXPECT().SaveLastPropagated(gomock.Any()).Return(nil).AnyTimes()

	dialer := mocks.NewMockConnectorDialer(ctrl)
	auth := registry.NewStaticAuth(owner, []entity.Address{watcher})
	bus := events.NewBus()
	reg := registry.New(auth, bus)
	acc := accumulator.New()

	cfg := rootmanager.Config{
		InitialMode:      mode,
		DisputeTime:      30 * time.Minute,
		SnapshotDuration: time.Hour,
	}
	m, err := rootmanager.New(cfg, reg, auth, acc, store, dialer, bus, nil)
	require.NoError(t, err)

	env := &engineEnv{
		manager: m,
		reg:     reg,
		acc:     acc,
		dialer:  dialer,
		bus:     bus,
		now:     time.Unix(1_700_000_000, 0),
	}
	rootmanager.SetClock(m, func() time.Time { return env.now })
	return env
}

func testRoot(b byte) entity.Root {
	var r entity.Root
	r[0] = b
	return r
}

// stubStore is a hand-rolled StateStore whose journal can be made to
// fail.
type stubStore struct {
	appendErr error
	appended  []uint64
}

func (s *stubStore) AppendRoot(index uint64, _ entity.Domain, _ entity.Root) error {
	if s.appendErr != nil {
		return s.appendErr
	}
	s.appended = append(s.appended, index)
	return nil
}

func (s *stubStore) SetDrainOffset(uint64) error          { return nil }
func (s *stubStore) SaveMode(string) error                { return nil }
func (s *stubStore) SaveWatermark(uint64) error           { return nil }
func (s *stubStore) SaveLastPropagated(entity.Root) error { return nil }

func TestNew_Validation(t *testing.T) {
	_, err := rootmanager.New(rootmanager.Config{DisputeTime: 0, SnapshotDuration: time.Hour},
		nil, nil, nil, nil, nil, nil, nil)
	require.Error(t, err)

	_, err = rootmanager.New(rootmanager.Config{DisputeTime: time.Minute, SnapshotDuration: 0},
		nil, nil, nil, nil, nil, nil, nil)
	require.Error(t, err)

	// sub-second windows would collapse the snapshot id divisor to zero
	_, err = rootmanager.New(rootmanager.Config{DisputeTime: time.Minute, SnapshotDuration: 500 * time.Millisecond},
		nil, nil, nil, nil, nil, nil, nil)
	require.Error(t, err)
}

func TestAggregate(t *testing.T) {
	env := newEngineEnv(t, rootmanager.SlowMode)
	require.NoError(t, env.reg.AddConnector(owner, 1, "conn-1"))

	received := env.bus.Subscribe()

	require.NoError(t, env.manager.Aggregate("conn-1", 1, testRoot(0xaa)))
	require.Equal(t, 1, env.manager.QueueCount())

	ev := <-received
	rr, ok := ev.(events.RootReceived)
	require.True(t, ok)
	require.Equal(t, entity.Domain(1), rr.Domain)
	require.Equal(t, testRoot(0xaa), rr.Root)
	require.Equal(t, uint64(0), rr.QueueIndex)

	// positions are assigned in arrival order
	require.NoError(t, env.manager.Aggregate("conn-1", 1, testRoot(0xbb)))
	ev = <-received
	require.Equal(t, uint64(1), ev.(events.RootReceived).QueueIndex)
}

func TestAggregate_Rejections(t *testing.T) {
	env := newEngineEnv(t, rootmanager.SlowMode)
	require.NoError(t, env.reg.AddConnector(owner, 1, "conn-1"))

	err := env.manager.Aggregate("conn-1", 42, testRoot(0x01))
	require.ErrorIs(t, err, registry.ErrUnsupportedDomain)

	// only the registered connector may submit for its domain
	err = env.manager.Aggregate("conn-2", 1, testRoot(0x01))
	require.ErrorIs(t, err, rootmanager.ErrNotConnector)

	require.Equal(t, 0, env.manager.QueueCount())
}

func TestAggregate_WrongMode(t *testing.T) {
	env := newEngineEnv(t, rootmanager.OptimisticMode)
	require.NoError(t, env.reg.AddConnector(owner, 1, "conn-1"))

	err := env.manager.Aggregate("conn-1", 1, testRoot(0x01))
	require.ErrorIs(t, err, rootmanager.ErrWrongMode)
}

func TestAggregate_JournalFailure(t *testing.T) {
	store := &stubStore{appendErr: errors.New("disk full")}
	auth := registry.NewStaticAuth(owner, nil)
	bus := events.NewBus()
	reg := registry.New(auth, bus)
	require.NoError(t, reg.AddConnector(owner, 1, "conn-1"))

	cfg := rootmanager.Config{InitialMode: rootmanager.SlowMode, DisputeTime: time.Minute, SnapshotDuration: time.Hour}
	m, err := rootmanager.New(cfg, reg, auth, accumulator.New(), store, nil, bus, nil)
	require.NoError(t, err)

	require.Error(t, m.Aggregate("conn-1", 1, testRoot(0x01)))

	// a root that never reached the journal must not linger in the queue
	require.Equal(t, 0, m.QueueCount())

	// and the failed attempt did not consume a position
	store.appendErr = nil
	require.NoError(t, m.Aggregate("conn-1", 1, testRoot(0x01)))
	require.Equal(t, 1, m.QueueCount())
	require.Equal(t, []uint64{0}, store.appended)
}

func TestActivateOptimisticMode(t *testing.T) {
	env := newEngineEnv(t, rootmanager.SlowMode)
	require.NoError(t, env.reg.AddConnector(owner, 1, "conn-1"))
	require.NoError(t, env.manager.Aggregate("conn-1", 1, testRoot(0x01)))
	require.NoError(t, env.manager.Aggregate("conn-1", 1, testRoot(0x02)))

	err := env.manager.ActivateOptimisticMode(watcher)
	require.ErrorIs(t, err, rootmanager.ErrNotOwner)

	require.NoError(t, env.manager.ActivateOptimisticMode(owner))
	require.Equal(t, rootmanager.OptimisticMode, env.manager.Mode())

	// pending roots are folded into the accumulator at the switch
	require.Equal(t, 0, env.manager.QueueCount())
	require.Equal(t, uint64(2), env.acc.Count())

	err = env.manager.ActivateOptimisticMode(owner)
	require.ErrorIs(t, err, rootmanager.ErrWrongMode)
}

func TestActivateSlowMode(t *testing.T) {
	env := newEngineEnv(t, rootmanager.OptimisticMode)
	require.NoError(t, env.reg.AddProposer(owner, proposer))

	require.NoError(t, env.manager.ProposeAggregateRoot(proposer, env.manager.SnapshotID(), testRoot(0x05), nil, nil))
	require.True(t, env.manager.Proposal().InProgress())

	err := env.manager.ActivateSlowMode(owner)
	require.ErrorIs(t, err, rootmanager.ErrNotWatcher, "fallback is a watcher action")

	require.NoError(t, env.manager.ActivateSlowMode(watcher))
	require.Equal(t, rootmanager.SlowMode, env.manager.Mode())

	// the outstanding proposal does not survive the fallback
	require.False(t, env.manager.Proposal().InProgress())

	err = env.manager.ActivateSlowMode(watcher)
	require.ErrorIs(t, err, rootmanager.ErrWrongMode)
}

func TestProposeAggregateRoot(t *testing.T) {
	env := newEngineEnv(t, rootmanager.OptimisticMode)
	require.NoError(t, env.reg.AddConnector(owner, 1, "conn-1"))
	require.NoError(t, env.reg.AddProposer(owner, proposer))

	domains := []entity.Domain{1}
	snapshot := env.manager.SnapshotID()

	err := env.manager.ProposeAggregateRoot("stranger", snapshot, testRoot(0x05), nil, domains)
	require.ErrorIs(t, err, rootmanager.ErrNotProposer)

	// the proposal must target the current domain set
	err = env.manager.ProposeAggregateRoot(proposer, snapshot, testRoot(0x05), nil, []entity.Domain{1, 2})
	require.ErrorIs(t, err, rootmanager.ErrInvalidDomains)

	err = env.manager.ProposeAggregateRoot(proposer, snapshot+1, testRoot(0x05), nil, domains)
	require.ErrorIs(t, err, rootmanager.ErrInvalidSnapshotID)

	require.NoError(t, env.manager.ProposeAggregateRoot(proposer, snapshot, testRoot(0x05), nil, domains))

	proposal := env.manager.Proposal()
	require.Equal(t, testRoot(0x05), proposal.AggregateRoot)
	require.Equal(t, env.now.Add(30*time.Minute).Unix(), proposal.EndOfDispute)

	// one proposal at a time
	err = env.manager.ProposeAggregateRoot(proposer, snapshot, testRoot(0x06), nil, domains)
	require.ErrorIs(t, err, rootmanager.ErrProposeInProgress)
}

func TestProposeAggregateRoot_SlowModeRejected(t *testing.T) {
	env := newEngineEnv(t, rootmanager.SlowMode)
	require.NoError(t, env.reg.AddProposer(owner, proposer))

	err := env.manager.ProposeAggregateRoot(proposer, env.manager.SnapshotID(), testRoot(0x05), nil, nil)
	require.ErrorIs(t, err, rootmanager.ErrWrongMode)
}

func TestFinalize_DisputeWindow(t *testing.T) {
	env := newEngineEnv(t, rootmanager.OptimisticMode)
	require.NoError(t, env.reg.AddProposer(owner, proposer))

	err := env.manager.Finalize(watcher)
	require.ErrorIs(t, err, rootmanager.ErrEmptyProposedRoot)

	require.NoError(t, env.manager.ProposeAggregateRoot(proposer, env.manager.SnapshotID(), testRoot(0x05), nil, nil))

	err = env.manager.Finalize(watcher)
	require.ErrorIs(t, err, rootmanager.ErrDisputeNotElapsed)

	// the boundary second still counts as in dispute
	env.advance(30 * time.Minute)
	err = env.manager.Finalize(watcher)
	require.ErrorIs(t, err, rootmanager.ErrDisputeNotElapsed)

	env.advance(time.Second)
	require.NoError(t, env.manager.Finalize(watcher))

	require.Equal(t, testRoot(0x05), env.manager.CandidateRoot())
	require.False(t, env.manager.Proposal().InProgress())

	// finalization consumes the proposal
	err = env.manager.Finalize(watcher)
	require.ErrorIs(t, err, rootmanager.ErrEmptyProposedRoot)
}

func TestProposal_ClearedOnConnectorRemoval(t *testing.T) {
	env := newEngineEnv(t, rootmanager.OptimisticMode)
	require.NoError(t, env.reg.AddConnector(owner, 1, "conn-1"))
	require.NoError(t, env.reg.AddProposer(owner, proposer))

	require.NoError(t, env.manager.ProposeAggregateRoot(proposer, env.manager.SnapshotID(),
		testRoot(0x05), nil, []entity.Domain{1}))
	require.True(t, env.manager.Proposal().InProgress())

	// the domain set the proposal was computed for is gone
	require.NoError(t, env.reg.RemoveConnector(watcher, 1))
	require.False(t, env.manager.Proposal().InProgress())
}

func TestSnapshotID(t *testing.T) {
	env := newEngineEnv(t, rootmanager.OptimisticMode)

	id := env.manager.SnapshotID()
	require.Equal(t, uint64(env.now.Unix())/3600, id)

	env.advance(time.Hour)
	require.Equal(t, id+1, env.manager.SnapshotID())
}

func TestCandidateRoot_SlowMode(t *testing.T) {
	env := newEngineEnv(t, rootmanager.SlowMode)
	require.NoError(t, env.reg.AddConnector(owner, 1, "conn-1"))

	// nothing aggregated yet, a propagation would be rejected
	require.True(t, env.manager.CandidateRoot().IsZero())

	// a queued root keeps the candidate alive before any drain
	require.NoError(t, env.manager.Aggregate("conn-1", 1, testRoot(0x01)))
	require.False(t, env.manager.CandidateRoot().IsZero())

	// a mode roundtrip leaves the accumulator at the watermark
	require.NoError(t, env.manager.ActivateOptimisticMode(owner))
	require.NoError(t, env.manager.ActivateSlowMode(watcher))
	require.True(t, env.manager.CandidateRoot().IsZero())

	require.NoError(t, env.manager.Aggregate("conn-1", 1, testRoot(0x02)))
	require.False(t, env.manager.CandidateRoot().IsZero())
}

func TestNew_Recovered(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStateStore(ctrl)
	store.EXPECT().AppendRoot(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	auth := registry.NewStaticAuth(owner, nil)
	bus := events.NewBus()
	reg := registry.New(auth, bus)
	require.NoError(t, reg.AddConnector(owner, 1, "conn-1"))

	rec := &rootmanager.Recovered{
		PendingRoots:   []entity.Root{testRoot(0x01), testRoot(0x02)},
		NextQueueIndex: 5,
		Watermark:      7,
		LastPropagated: testRoot(0xee),
		Mode:           rootmanager.SlowMode,
	}
	cfg := rootmanager.Config{InitialMode: rootmanager.OptimisticMode, DisputeTime: time.Minute, SnapshotDuration: time.Hour}
	m, err := rootmanager.New(cfg, reg, auth, accumulator.New(), store, nil, bus, rec)
	require.NoError(t, err)

	// the persisted mode wins over the configured initial mode
	require.Equal(t, rootmanager.SlowMode, m.Mode())
	require.Equal(t, 2, m.QueueCount())
	require.Equal(t, testRoot(0xee), m.LastPropagated())

	// queue positions continue from the journal
	received := bus.Subscribe()
	require.NoError(t, m.Aggregate("conn-1", 1, testRoot(0x03)))
	ev := <-received
	require.Equal(t, uint64(5), ev.(events.RootReceived).QueueIndex)
}
