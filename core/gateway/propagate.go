package gateway

import (
	"context"

	"github.com/crossmesh/rootmanager/core/entity"
	"github.com/crossmesh/rootmanager/core/rootmanager"
	log "github.com/sirupsen/logrus"
)

// Propagate performs a gated, fee-settled propagation on behalf of
// caller.
func (g *Gateway) Propagate(ctx context.Context, caller entity.Address, targets []entity.Target) (*entity.PropagationResult, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.gate(FnPropagate, caller); err != nil {
		return nil, err
	}
	if err := g.checkBalance(sumFees(targets)); err != nil {
		return nil, err
	}

	result, err := g.engine.Propagate(ctx, targets)
	if err != nil {
		return nil, err
	}

	g.afterPropagation(caller, targets, result)
	return result, nil
}

// Finalize promotes the outstanding proposal once its dispute window is
// over. Subject to the relayer priority window only; finalization has no
// cooldown of its own.
func (g *Gateway) Finalize(caller entity.Address) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.gate(FnFinalize, caller); err != nil {
		return err
	}
	return g.engine.Finalize(caller)
}

// FinalizeAndPropagate composes both steps atomically so the invoker
// cannot lose the propagation to a competing finalizer.
func (g *Gateway) FinalizeAndPropagate(ctx context.Context, caller entity.Address, targets []entity.Target) (*entity.PropagationResult, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.gate(FnPropagate, caller); err != nil {
		return nil, err
	}
	if err := g.checkBalance(sumFees(targets)); err != nil {
		return nil, err
	}

	result, err := g.engine.FinalizeAndPropagate(ctx, caller, targets)
	if err != nil {
		return nil, err
	}

	g.afterPropagation(caller, targets, result)
	return result, nil
}

// ProposeAggregateRoot submits a gated optimistic-mode proposal.
func (g *Gateway) ProposeAggregateRoot(caller entity.Address, snapshotID uint64,
	aggregateRoot entity.Root, snapshotRoots []entity.Root, domains []entity.Domain) error {

	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.gate(FnPropose, caller); err != nil {
		return err
	}

	if err := g.engine.ProposeAggregateRoot(caller, snapshotID, aggregateRoot, snapshotRoots, domains); err != nil {
		return err
	}

	g.markAction(FnPropose)
	return nil
}

// PropagateWorkable reports whether a propagate call for the given
// domains would currently pass the gate and deliver a new root. Intended
// to be polled off-chain before spending fees on the real call.
func (g *Gateway) PropagateWorkable(domains []entity.Domain) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.checkCooldown(FnPropagate); err != nil {
		return false
	}

	// queued inbound roots are drained by the real call, so their mere
	// presence guarantees a fresh slow-mode root
	if g.engine.Mode() == rootmanager.SlowMode && g.engine.QueueCount() > 0 {
		return true
	}

	candidate := g.engine.CandidateRoot()
	if candidate.IsZero() {
		return false
	}

	for _, d := range domains {
		if g.propagated[d] == candidate {
			return false
		}
	}
	return true
}

// ProposeWorkable reports whether a proposal would currently pass the
// gate: optimistic mode and the propose cooldown elapsed.
func (g *Gateway) ProposeWorkable() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.engine.Mode() != rootmanager.OptimisticMode {
		return false
	}
	return g.checkCooldown(FnPropose) == nil
}

// afterPropagation settles fees and records per-domain delivery for the
// workable helper. Failed targets are not recorded as delivered. Caller
// holds the mutex.
func (g *Gateway) afterPropagation(caller entity.Address, targets []entity.Target, result *entity.PropagationResult) {
	g.markAction(FnPropagate)

	for _, t := range result.Targets {
		if t.Err == nil {
			g.propagated[t.Domain] = result.AggregateRoot
		}
	}

	// settlement failure must not roll back a completed broadcast
	if err := g.settle(caller, sumFees(targets)); err != nil {
		log.Errorf("fee settlement for %s failed: %v", caller, err)
	}
}
