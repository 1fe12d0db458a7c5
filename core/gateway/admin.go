package gateway

import (
	"time"

	"github.com/crossmesh/rootmanager/core/entity"
	"github.com/crossmesh/rootmanager/core/events"
	"github.com/pkg/errors"
)

// Admin surface. Every change is owner-gated and emits a before/after
// event for off-chain audit.

// SetRelayer replaces the privileged caller address.
func (g *Gateway) SetRelayer(caller, relayer entity.Address) error {
	if !g.auth.IsOwner(caller) {
		return errors.Wrapf(ErrNotOwner, "caller %s", caller)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	previous := g.relayer
	g.relayer = relayer
	g.bus.Publish(events.RelayerChanged{Previous: previous, Current: relayer})
	return nil
}

// SetPriority sets the relayer's per-function priority in 0..10.
func (g *Gateway) SetPriority(caller entity.Address, fn string, priority uint8) error {
	if !g.auth.IsOwner(caller) {
		return errors.Wrapf(ErrNotOwner, "caller %s", caller)
	}
	if priority > 10 {
		return errors.Wrapf(ErrInvalidPriority, "got %d", priority)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	previous := g.priorities[fn]
	g.priorities[fn] = priority
	g.bus.Publish(events.PriorityChanged{Function: fn, Previous: previous, Current: priority})
	return nil
}

// SetCooldown sets the cooldown for one gated function.
func (g *Gateway) SetCooldown(caller entity.Address, fn string, cooldown time.Duration) error {
	if !g.auth.IsOwner(caller) {
		return errors.Wrapf(ErrNotOwner, "caller %s", caller)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	previous := g.cooldowns[fn]
	g.cooldowns[fn] = cooldown
	g.bus.Publish(events.CooldownChanged{
		Function: fn,
		Previous: int64(previous / time.Second),
		Current:  int64(cooldown / time.Second),
	})
	return nil
}

// SetHubConnector routes messages from domain to a chain family's
// verifier. Replacing an existing route is allowed.
func (g *Gateway) SetHubConnector(caller entity.Address, domain entity.Domain, hub Hub) error {
	if !g.auth.IsOwner(caller) {
		return errors.Wrapf(ErrNotOwner, "caller %s", caller)
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.hubs[domain] = hub
	return nil
}

// SettleKeeper pays out a keeper's accrued credit.
func (g *Gateway) SettleKeeper(caller entity.Address, keeper entity.Address) (uint64, error) {
	if !g.auth.IsOwner(caller) {
		return 0, errors.Wrapf(ErrNotOwner, "caller %s", caller)
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	return g.ledger.Settle(keeper)
}
