// Package rootmanager implements the root aggregation engine: it collects
// inbound roots from spoke connectors, aggregates them into a single root
// in slow mode or accepts disputed off-chain proposals in optimistic mode,
// and broadcasts the finalized aggregate root to every registered hub
// connector.
//
// The engine is a single-writer state machine. Every operation takes the
// manager mutex for its whole duration, so no two state transitions are
// ever concurrent; competing callers lose races by rejection, never by
// blocking.
package rootmanager

import (
	"sync"
	"time"

	"github.com/crossmesh/rootmanager/core/entity"
	"github.com/crossmesh/rootmanager/core/events"
	"github.com/crossmesh/rootmanager/core/registry"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

var (
	ErrNotOwner          = errors.New("caller is not the owner")
	ErrNotWatcher        = errors.New("caller is not a watcher")
	ErrNotConnector      = errors.New("caller is not the connector for the domain")
	ErrNotProposer       = errors.New("caller is not an allowlisted proposer")
	ErrWrongMode         = errors.New("operation not allowed in current mode")
	ErrProposeInProgress = errors.New("propose in progress")
	ErrInvalidDomains    = errors.New("invalid domains")
	ErrInvalidSnapshotID = errors.New("invalid snapshot id")
	ErrDisputeNotElapsed = errors.New("dispute window not elapsed")
	ErrEmptyProposedRoot = errors.New("empty proposed root")
)

// Accumulator is the external Merkle service the engine folds inbound
// roots into. Count is monotonic between reinitializations.
//
//go:generate mockgen -destination=../../mocks/mock_accumulator.go -package=mocks . Accumulator
type Accumulator interface {
	Enqueue(leaf entity.Root)
	Root() entity.Root
	Count() uint64
	RootAndCount() (entity.Root, uint64)
}

// StateStore persists engine state so a restart resumes where the
// previous process stopped. Inbound roots are journaled on enqueue and
// marked consumed by advancing the drain offset.
//
//go:generate mockgen -destination=../../mocks/mock_statestore.go -package=mocks . StateStore
type StateStore interface {
	AppendRoot(index uint64, domain entity.Domain, root entity.Root) error
	SetDrainOffset(index uint64) error
	SaveMode(mode string) error
	SaveWatermark(count uint64) error
	SaveLastPropagated(root entity.Root) error
}

// Config carries the engine's fixed protocol parameters.
type Config struct {
	InitialMode      Mode
	DisputeTime      time.Duration
	SnapshotDuration time.Duration
}

// Recovered carries persisted state applied at construction.
type Recovered struct {
	PendingRoots   []entity.Root
	NextQueueIndex uint64
	Watermark      uint64
	LastPropagated entity.Root
	Mode           Mode
}

// Manager owns all mutable aggregation state: the mode machine, the
// inbound queue, the outstanding proposal, the finalized optimistic root,
// the last propagated root and the slow-mode watermark.
type Manager struct {
	mu sync.Mutex

	cfg      Config
	registry *registry.Registry
	auth     registry.Auth
	acc      Accumulator
	store    StateStore
	bus      *events.Bus
	dialer   ConnectorDialer

	fsm      *modeMachine
	queue    *inboundQueue
	proposal entity.Proposal

	finalizedOptimisticRoot entity.Root
	lastPropagated          entity.Root
	lastCountBeforeOpMode   uint64

	now func() time.Time
}

func New(cfg Config, reg *registry.Registry, auth registry.Auth, acc Accumulator,
	store StateStore, dialer ConnectorDialer, bus *events.Bus, rec *Recovered) (*Manager, error) {

	if cfg.DisputeTime <= 0 {
		return nil, errors.New("dispute time must be positive")
	}
	if cfg.SnapshotDuration < time.Second {
		return nil, errors.New("snapshot duration must be at least one second")
	}

	initial := cfg.InitialMode
	first := uint64(0)
	m := &Manager{
		cfg:      cfg,
		registry: reg,
		auth:     auth,
		acc:      acc,
		store:    store,
		bus:      bus,
		dialer:   dialer,
		now:      time.Now,
	}

	if rec != nil {
		if rec.Mode != "" {
			initial = rec.Mode
		}
		first = rec.NextQueueIndex - uint64(len(rec.PendingRoots))
		m.lastCountBeforeOpMode = rec.Watermark
		m.lastPropagated = rec.LastPropagated
	}

	fsm, err := newModeMachine(initial)
	if err != nil {
		return nil, err
	}
	m.fsm = fsm
	m.queue = newInboundQueue(first)
	if rec != nil {
		for _, root := range rec.PendingRoots {
			m.queue.enqueue(root)
		}
	}

	// an in-flight proposal does not survive a domain set change
	reg.OnConnectorRemoved(func(entity.Domain) {
		m.mu.Lock()
		defer m.mu.Unlock()
		m.proposal = entity.Proposal{}
	})

	return m, nil
}

// Mode returns the current operating mode.
func (m *Manager) Mode() Mode {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.fsm.Current()
}

// QueueCount returns the number of pending inbound roots.
func (m *Manager) QueueCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.queue.count()
}

// LastPropagated returns the most recently broadcast aggregate root.
func (m *Manager) LastPropagated() entity.Root {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastPropagated
}

// Proposal returns the outstanding optimistic proposal, if any.
func (m *Manager) Proposal() entity.Proposal {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.proposal
}

// Aggregate accepts an inbound root from the connector registered for
// domain. Slow mode only; the root joins the FIFO and is folded into the
// accumulator by the next drain.
func (m *Manager) Aggregate(caller entity.Address, domain entity.Domain, root entity.Root) error {
	connector, err := m.registry.ConnectorFor(domain)
	if err != nil {
		return err
	}
	if connector != caller {
		return errors.Wrapf(ErrNotConnector, "caller %s, registered %s for domain %d", caller, connector, domain)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.fsm.Current() != SlowMode {
		return errors.Wrap(ErrWrongMode, "aggregate requires slow mode")
	}

	// journal first, an enqueued root must never outlive its journal entry
	pos := m.queue.next
	if err := m.store.AppendRoot(pos, domain, root); err != nil {
		return errors.Wrap(err, "journal inbound root")
	}
	m.queue.enqueue(root)

	m.bus.Publish(events.RootReceived{Domain: domain, Root: root, QueueIndex: pos})
	return nil
}

// ActivateOptimisticMode switches the engine to optimistic mode. Owner
// only. Pending roots are drained into the accumulator and the resulting
// leaf count becomes the watermark that later rejects stale slow-mode
// aggregate roots.
func (m *Manager) ActivateOptimisticMode(caller entity.Address) error {
	if !m.auth.IsOwner(caller) {
		return errors.Wrapf(ErrNotOwner, "caller %s", caller)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.fsm.Transition(OptimisticMode); err != nil {
		return errors.Wrap(ErrWrongMode, "already in optimistic mode")
	}

	if err := m.drainQueue(); err != nil {
		return err
	}

	m.lastCountBeforeOpMode = m.acc.Count()
	if err := m.store.SaveWatermark(m.lastCountBeforeOpMode); err != nil {
		return errors.Wrap(err, "persist watermark")
	}
	if err := m.store.SaveMode(string(OptimisticMode)); err != nil {
		return errors.Wrap(err, "persist mode")
	}

	m.bus.Publish(events.OptimisticModeActivated{Caller: caller})
	return nil
}

// ActivateSlowMode falls the engine back to slow mode. Watcher only.
// Any outstanding proposal is cleared; the watermark is kept, so the
// next slow-mode propagation requires fresh aggregation.
func (m *Manager) ActivateSlowMode(caller entity.Address) error {
	if !m.auth.IsWatcher(caller) {
		return errors.Wrapf(ErrNotWatcher, "caller %s", caller)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.fsm.Transition(SlowMode); err != nil {
		return errors.Wrap(ErrWrongMode, "already in slow mode")
	}

	m.proposal = entity.Proposal{}
	m.finalizedOptimisticRoot = entity.ZeroRoot
	m.queue.clear()
	if err := m.store.SetDrainOffset(m.queue.next); err != nil {
		return errors.Wrap(err, "persist drain offset")
	}
	if err := m.store.SaveMode(string(SlowMode)); err != nil {
		return errors.Wrap(err, "persist mode")
	}

	m.bus.Publish(events.SlowModeActivated{Caller: caller})
	return nil
}

// ProposeAggregateRoot submits an off-chain-computed aggregate root for
// the current snapshot window. Allowlisted proposers, optimistic mode
// only. The proposal becomes finalizable once its dispute window closes.
func (m *Manager) ProposeAggregateRoot(caller entity.Address, snapshotID uint64,
	aggregateRoot entity.Root, snapshotRoots []entity.Root, domains []entity.Domain) error {

	if !m.registry.IsProposer(caller) {
		return errors.Wrapf(ErrNotProposer, "caller %s", caller)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.fsm.Current() != OptimisticMode {
		return errors.Wrap(ErrWrongMode, "propose requires optimistic mode")
	}

	if registry.HashDomains(domains) != m.registry.DomainsHash() {
		return errors.Wrapf(ErrInvalidDomains, "proposal domain set %v", domains)
	}

	current := m.snapshotID()
	if snapshotID != current {
		return errors.Wrapf(ErrInvalidSnapshotID, "got %d, current %d", snapshotID, current)
	}

	if m.proposal.InProgress() {
		return errors.Wrapf(ErrProposeInProgress, "dispute ends at %d", m.proposal.EndOfDispute)
	}

	endOfDispute := m.now().Add(m.cfg.DisputeTime).Unix()
	m.proposal = entity.Proposal{AggregateRoot: aggregateRoot, EndOfDispute: endOfDispute}

	log.Infof("proposed aggregate root %s for snapshot %d, dispute ends %d",
		aggregateRoot.Hex(), snapshotID, endOfDispute)

	m.bus.Publish(events.AggregateRootProposed{
		SnapshotID:    snapshotID,
		AggregateRoot: aggregateRoot,
		BaseRoot:      m.acc.Root(),
		Domains:       domains,
		EndOfDispute:  endOfDispute,
	})
	return nil
}

// Finalize promotes the proposed root to the finalized optimistic root
// once its dispute window has fully elapsed.
func (m *Manager) Finalize(caller entity.Address) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.finalizeLocked()
}

func (m *Manager) finalizeLocked() error {
	if m.fsm.Current() != OptimisticMode {
		return errors.Wrap(ErrWrongMode, "finalize requires optimistic mode")
	}

	if m.proposal.AggregateRoot.IsZero() {
		return ErrEmptyProposedRoot
	}

	now := m.now().Unix()
	if now <= m.proposal.EndOfDispute {
		return errors.Wrapf(ErrDisputeNotElapsed, "now %d, dispute ends %d", now, m.proposal.EndOfDispute)
	}

	m.finalizedOptimisticRoot = m.proposal.AggregateRoot
	m.proposal = entity.Proposal{}

	m.bus.Publish(events.ProposedRootFinalized{AggregateRoot: m.finalizedOptimisticRoot})
	return nil
}

// CandidateRoot returns the root the next propagation would broadcast:
// the finalized proposal in optimistic mode, the accumulator root in
// slow mode. A slow-mode root at or below the watermark is reported as
// zero because a propagation would reject it; pending queued roots keep
// the candidate alive since draining them moves the count past the
// watermark.
func (m *Manager) CandidateRoot() entity.Root {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.fsm.Current() == OptimisticMode {
		return m.finalizedOptimisticRoot
	}
	if m.queue.count() == 0 && m.acc.Count() <= m.lastCountBeforeOpMode {
		return entity.ZeroRoot
	}
	return m.acc.Root()
}

// SnapshotID returns the identifier of the current snapshot window.
func (m *Manager) SnapshotID() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshotID()
}

func (m *Manager) snapshotID() uint64 {
	return uint64(m.now().Unix()) / uint64(m.cfg.SnapshotDuration/time.Second)
}

// drainQueue folds every pending inbound root into the accumulator and
// advances the persisted drain offset. Caller holds the mutex.
func (m *Manager) drainQueue() error {
	for m.queue.count() > 0 {
		root, err := m.queue.dequeue()
		if err != nil {
			return err
		}
		m.acc.Enqueue(root)
	}

	return errors.Wrap(m.store.SetDrainOffset(m.queue.next), "persist drain offset")
}
