package rootmanager

import (
	"context"

	"github.com/crossmesh/rootmanager/core/entity"
	"github.com/crossmesh/rootmanager/core/events"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

var (
	ErrEmptyFinalizedRoot = errors.New("empty finalized root")
	ErrOldAggregateRoot   = errors.New("old aggregate root")
	ErrRedundantRoot      = errors.New("redundant root")
	ErrUnknownConnector   = errors.New("target connector does not match the registry")
)

// HubConnector delivers a propagated aggregate root to one domain. A
// failing connector never aborts the batch; its error is collected and
// reported per target.
//
//go:generate mockgen -destination=../../mocks/mock_connector.go -package=mocks . HubConnector,ConnectorDialer
type HubConnector interface {
	SendMessage(ctx context.Context, data []byte, fee uint64) error
}

// ConnectorDialer resolves the transport handle for a connector address.
type ConnectorDialer interface {
	Dial(addr entity.Address) (HubConnector, error)
}

// Propagate broadcasts the current aggregate root to the given targets.
// In optimistic mode the root is the finalized proposal, consumed by the
// send; in slow mode pending inbound roots are drained and the
// accumulator root is used, guarded by the mode-switch watermark.
func (m *Manager) Propagate(ctx context.Context, targets []entity.Target) (*entity.PropagationResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.propagateLocked(ctx, targets)
}

// FinalizeAndPropagate finalizes the outstanding proposal and broadcasts
// it in one critical section, so no competing caller can slip between
// the two steps.
func (m *Manager) FinalizeAndPropagate(ctx context.Context, caller entity.Address, targets []entity.Target) (*entity.PropagationResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.finalizeLocked(); err != nil {
		return nil, err
	}
	return m.propagateLocked(ctx, targets)
}

func (m *Manager) propagateLocked(ctx context.Context, targets []entity.Target) (*entity.PropagationResult, error) {
	if err := m.validateTargets(targets); err != nil {
		return nil, err
	}

	switch m.fsm.Current() {
	case OptimisticMode:
		if m.finalizedOptimisticRoot.IsZero() {
			return nil, ErrEmptyFinalizedRoot
		}

		root := m.finalizedOptimisticRoot
		result, err := m.sendRootToHubs(ctx, root, 0, targets)
		if err != nil {
			return nil, err
		}

		// one root, one propagation
		m.finalizedOptimisticRoot = entity.ZeroRoot
		m.bus.Publish(events.OptimisticRootPropagated{
			AggregateRoot: root,
			DomainsHash:   m.registry.DomainsHash(),
		})
		return result, nil

	default:
		if err := m.drainQueue(); err != nil {
			return nil, err
		}

		root, count := m.acc.RootAndCount()
		if count <= m.lastCountBeforeOpMode {
			return nil, errors.Wrapf(ErrOldAggregateRoot, "count %d, watermark %d", count, m.lastCountBeforeOpMode)
		}

		result, err := m.sendRootToHubs(ctx, root, count, targets)
		if err != nil {
			return nil, err
		}

		m.bus.Publish(events.RootPropagated{
			AggregateRoot: root,
			Count:         count,
			DomainsHash:   m.registry.DomainsHash(),
		})
		return result, nil
	}
}

// sendRootToHubs delivers root to every target, isolating per-target
// failure. lastPropagated is updated unconditionally after the loop.
func (m *Manager) sendRootToHubs(ctx context.Context, root entity.Root, count uint64, targets []entity.Target) (*entity.PropagationResult, error) {
	if root == m.lastPropagated {
		return nil, errors.Wrapf(ErrRedundantRoot, "root %s already propagated", root.Hex())
	}

	result := &entity.PropagationResult{AggregateRoot: root, Count: count}
	for _, t := range targets {
		err := m.sendToTarget(ctx, root, t)
		if err != nil {
			log.Warnf("propagate to domain %d via %s failed: %v", t.Domain, t.Connector, err)
			m.bus.Publish(events.PropagateFailed{Domain: t.Domain, Connector: t.Connector})
		}
		result.Targets = append(result.Targets, entity.TargetResult{
			Domain:    t.Domain,
			Connector: t.Connector,
			Err:       err,
		})
	}

	m.lastPropagated = root
	if err := m.store.SaveLastPropagated(root); err != nil {
		return nil, errors.Wrap(err, "persist last propagated root")
	}

	return result, nil
}

func (m *Manager) sendToTarget(ctx context.Context, root entity.Root, t entity.Target) error {
	hub, err := m.dialer.Dial(t.Connector)
	if err != nil {
		return errors.Wrapf(err, "dial connector %s", t.Connector)
	}

	data := make([]byte, 0, entity.RootSize+len(t.EncodedData))
	data = append(data, root[:]...)
	data = append(data, t.EncodedData...)
	return hub.SendMessage(ctx, data, t.Fee)
}

// validateTargets checks every target against the registry: the domain
// must be registered and the given connector must be its connector.
func (m *Manager) validateTargets(targets []entity.Target) error {
	for _, t := range targets {
		connector, err := m.registry.ConnectorFor(t.Domain)
		if err != nil {
			return err
		}
		if connector != t.Connector {
			return errors.Wrapf(ErrUnknownConnector, "domain %d: got %s, registered %s", t.Domain, t.Connector, connector)
		}
	}
	return nil
}
