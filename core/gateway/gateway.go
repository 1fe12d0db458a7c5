// Package gateway wraps the aggregation engine for a population of
// competing keeper workers: cooldown throttling, a round-robin priority
// reservation for the privileged relayer, fee settlement for whoever
// performs a call, and the replay-guarded message demultiplexer.
//
// Gating is advisory liveness machinery. Safety always comes from the
// engine's own rejections; a keeper that slips past the gate in a race
// still loses cleanly inside the engine.
package gateway

import (
	"context"
	"sync"
	"time"

	"github.com/crossmesh/rootmanager/core/entity"
	"github.com/crossmesh/rootmanager/core/events"
	"github.com/crossmesh/rootmanager/core/gateway/chains"
	"github.com/crossmesh/rootmanager/core/registry"
	"github.com/crossmesh/rootmanager/core/rootmanager"
	"github.com/pkg/errors"
)

var (
	ErrNotCooledDown       = errors.New("not cooled down")
	ErrPriorityBlocked     = errors.New("blocked by relayer priority window")
	ErrNotOwner            = errors.New("caller is not the owner")
	ErrInvalidPriority     = errors.New("priority must be in 0..10")
	ErrInsufficientBalance = errors.New("gateway balance cannot cover fees")
)

// Gated function names, used as keys for cooldowns and priorities.
const (
	FnPropagate = "propagate"
	FnPropose   = "proposeAggregateRoot"
	FnFinalize  = "finalize"
	FnProcess   = "processFromRoot"
)

// Engine is the wrapped aggregation core.
//
//go:generate mockgen -destination=../../mocks/mock_engine.go -package=mocks . Engine,Ledger
type Engine interface {
	Mode() rootmanager.Mode
	ProposeAggregateRoot(caller entity.Address, snapshotID uint64, aggregateRoot entity.Root,
		snapshotRoots []entity.Root, domains []entity.Domain) error
	Finalize(caller entity.Address) error
	Propagate(ctx context.Context, targets []entity.Target) (*entity.PropagationResult, error)
	FinalizeAndPropagate(ctx context.Context, caller entity.Address, targets []entity.Target) (*entity.PropagationResult, error)
	CandidateRoot() entity.Root
	QueueCount() int
}

// Ledger settles fees. The relayer rail pays the invoker immediately;
// the keeper rail accrues credit settled later. Both rails debit the
// gateway balance by the same fee sum.
type Ledger interface {
	Balance() (uint64, error)
	Debit(amount uint64) error
	Credit(addr entity.Address, amount uint64) error
	Accrue(addr entity.Address, amount uint64) error
	Settle(addr entity.Address) (uint64, error)
}

// Hub describes the verification route for messages arriving from one
// domain: which chain family's decode shape and verifier to use.
type Hub struct {
	Family chains.Family
}

// Config carries the gateway's initial gating parameters.
type Config struct {
	Relayer           entity.Address
	Keepers           []entity.Address
	PropagateCooldown time.Duration
	ProposeCooldown   time.Duration
	Priorities        map[string]uint8
}

// Gateway is the privileged-caller scheduling wrapper around the engine.
type Gateway struct {
	mu sync.Mutex

	engine    Engine
	auth      registry.Auth
	ledger    Ledger
	bus       *events.Bus
	verifiers chains.Verifiers

	relayer    entity.Address
	keepers    map[entity.Address]struct{}
	hubs       map[entity.Domain]Hub
	priorities map[string]uint8
	cooldowns  map[string]time.Duration
	lastAction map[string]time.Time

	// last root propagated per domain, consulted by PropagateWorkable
	propagated map[entity.Domain]entity.Root

	processed processedSet

	now   func() time.Time
	block func() uint64
}

// processedSet is the durable (domain, hash) replay guard. Unmark
// releases a claim whose verification failed.
type processedSet interface {
	Seen(domain entity.Domain, hash entity.Root) (bool, error)
	Mark(domain entity.Domain, hash entity.Root) error
	Unmark(domain entity.Domain, hash entity.Root) error
}

func New(cfg Config, engine Engine, auth registry.Auth, ledger Ledger,
	processed processedSet, verifiers chains.Verifiers, bus *events.Bus) *Gateway {

	keepers := make(map[entity.Address]struct{}, len(cfg.Keepers))
	for _, k := range cfg.Keepers {
		keepers[k] = struct{}{}
	}

	priorities := make(map[string]uint8, len(cfg.Priorities))
	for fn, p := range cfg.Priorities {
		priorities[fn] = p
	}

	g := &Gateway{
		engine:     engine,
		auth:       auth,
		ledger:     ledger,
		bus:        bus,
		verifiers:  verifiers,
		relayer:    cfg.Relayer,
		keepers:    keepers,
		hubs:       make(map[entity.Domain]Hub),
		priorities: priorities,
		cooldowns: map[string]time.Duration{
			FnPropagate: cfg.PropagateCooldown,
			FnPropose:   cfg.ProposeCooldown,
		},
		lastAction: make(map[string]time.Time),
		propagated: make(map[entity.Domain]entity.Root),
		processed:  processed,
		now:        time.Now,
	}
	// off-chain stand-in for the block number: one slot per second
	g.block = func() uint64 { return uint64(g.now().Unix()) }

	return g
}

// gate enforces the cooldown and the relayer priority window for fn.
// Caller holds the mutex.
func (g *Gateway) gate(fn string, caller entity.Address) error {
	if err := g.checkCooldown(fn); err != nil {
		return err
	}
	return g.checkPriority(fn, caller)
}

func (g *Gateway) checkCooldown(fn string) error {
	cooldown, ok := g.cooldowns[fn]
	if !ok || cooldown == 0 {
		return nil
	}

	now := g.now()
	next := g.lastAction[fn].Add(cooldown)
	if !now.After(next) {
		return errors.Wrapf(ErrNotCooledDown, "%s: now %d, workable at %d", fn, now.Unix(), next.Unix())
	}
	return nil
}

// checkPriority blocks non-privileged callers on the fraction of slots
// reserved for the relayer: priority p reserves slots where
// block % 10 <= p-1. Priority 0 disables the reservation.
func (g *Gateway) checkPriority(fn string, caller entity.Address) error {
	p := g.priorities[fn]
	if p == 0 || caller == g.relayer {
		return nil
	}

	block := g.block()
	if block%10 <= uint64(p)-1 {
		return errors.Wrapf(ErrPriorityBlocked, "%s: block %d, priority %d", fn, block, p)
	}
	return nil
}

func (g *Gateway) markAction(fn string) {
	g.lastAction[fn] = g.now()
}

// checkBalance rejects a call pre-flight when the gateway cannot cover
// its fee sum, before any send is attempted.
func (g *Gateway) checkBalance(total uint64) error {
	if total == 0 {
		return nil
	}

	balance, err := g.ledger.Balance()
	if err != nil {
		return errors.Wrap(err, "read gateway balance")
	}
	if balance < total {
		return errors.Wrapf(ErrInsufficientBalance, "balance %d, fees %d", balance, total)
	}
	return nil
}

// settle pays the invoker for a performed call. The relayer rail debits
// the gateway and pays the invoker immediately; the keeper rail only
// accrues credit here, the matching debit happens at Ledger.Settle.
// Either way the gateway ends up lighter by exactly the fee sum.
func (g *Gateway) settle(caller entity.Address, total uint64) error {
	if total == 0 {
		return nil
	}

	if _, isKeeper := g.keepers[caller]; isKeeper && caller != g.relayer {
		return errors.Wrap(g.ledger.Accrue(caller, total), "accrue keeper credit")
	}

	if err := g.checkBalance(total); err != nil {
		return err
	}
	if err := g.ledger.Debit(total); err != nil {
		return errors.Wrap(err, "debit gateway")
	}
	return errors.Wrap(g.ledger.Credit(caller, total), "pay relayer fee")
}

func sumFees(targets []entity.Target) uint64 {
	var total uint64
	for _, t := range targets {
		total += t.Fee
	}
	return total
}
