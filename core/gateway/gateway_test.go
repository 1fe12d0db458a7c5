package gateway

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/crossmesh/rootmanager/core/entity"
	"github.com/crossmesh/rootmanager/core/events"
	"github.com/crossmesh/rootmanager/core/gateway/chains"
	"github.com/crossmesh/rootmanager/core/registry"
	"github.com/crossmesh/rootmanager/core/rootmanager"
	"github.com/crossmesh/rootmanager/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	owner   = entity.Address("owner")
	relayer = entity.Address("relayer")
	keeper  = entity.Address("keeper")
)

// memProcessed is an in-memory stand-in for the durable replay guard.
type memProcessed map[string]struct{}

func (m memProcessed) Seen(domain entity.Domain, hash entity.Root) (bool, error) {
	_, ok := m[fmt.Sprintf("%d/%s", domain, hash.Hex())]
	return ok, nil
}

func (m memProcessed) Mark(domain entity.Domain, hash entity.Root) error {
	m[fmt.Sprintf("%d/%s", domain, hash.Hex())] = struct{}{}
	return nil
}

func (m memProcessed) Unmark(domain entity.Domain, hash entity.Root) error {
	delete(m, fmt.Sprintf("%d/%s", domain, hash.Hex()))
	return nil
}

type gatewayEnv struct {
	gateway *Gateway
	engine  *mocks.MockEngine
	ledger  *mocks.MockLedger
	now     time.Time
	block   uint64
}

func newGatewayEnv(t *testing.T, verifiers chains.Verifiers) *gatewayEnv {
	t.Helper()

	ctrl := gomock.NewController(t)
	env := &gatewayEnv{
		engine: mocks.NewMockEngine(ctrl),
		ledger: mocks.NewMockLedger(ctrl),
		now:    time.Unix(1_700_000_000, 0),
		block:  9, // outside any reserved slot for priorities up to 9
	}

	cfg := Config{
		Relayer:           relayer,
		Keepers:           []entity.Address{keeper},
		PropagateCooldown: time.Minute,
		ProposeCooldown:   time.Minute,
		Priorities:        map[string]uint8{FnPropagate: 3},
	}
	auth := registry.NewStaticAuth(owner, nil)
	env.gateway = New(cfg, env.engine, auth, env.ledger, memProcessed{}, verifiers, events.NewBus())
	env.gateway.now = func() time.Time { return env.now }
	env.gateway.block = func() uint64 { return env.block }
	return env
}

func testRoot(b byte) entity.Root {
	var r entity.Root
	r[0] = b
	return r
}

func successResult(root entity.Root, targets []entity.Target) *entity.PropagationResult {
	result := &entity.PropagationResult{AggregateRoot: root}
	for _, t := range targets {
		result.Targets = append(result.Targets, entity.TargetResult{Domain: t.Domain, Connector: t.Connector})
	}
	return result
}

func TestPropagate_Cooldown(t *testing.T) {
	env := newGatewayEnv(t, chains.Verifiers{})
	targets := []entity.Target{{Domain: 1, Connector: "conn-1"}}

	env.engine.EXPECT().Propagate(gomock.Any(), targets).
		Return(successResult(testRoot(0x01), targets), nil).Times(2)

	_, err := env.gateway.Propagate(context.Background(), relayer, targets)
	require.NoError(t, err)

	_, err = env.gateway.Propagate(context.Background(), relayer, targets)
	require.ErrorIs(t, err, ErrNotCooledDown)

	env.now = env.now.Add(time.Minute + time.Second)
	_, err = env.gateway.Propagate(context.Background(), relayer, targets)
	require.NoError(t, err)
}

func TestPropagate_EngineErrorSkipsCooldown(t *testing.T) {
	env := newGatewayEnv(t, chains.Verifiers{})
	targets := []entity.Target{{Domain: 1, Connector: "conn-1"}}

	gomock.InOrder(
		env.engine.EXPECT().Propagate(gomock.Any(), targets).Return(nil, rootmanager.ErrRedundantRoot),
		env.engine.EXPECT().Propagate(gomock.Any(), targets).Return(successResult(testRoot(0x01), targets), nil),
	)

	_, err := env.gateway.Propagate(context.Background(), relayer, targets)
	require.ErrorIs(t, err, rootmanager.ErrRedundantRoot)

	// a rejected call does not burn the cooldown
	_, err = env.gateway.Propagate(context.Background(), relayer, targets)
	require.NoError(t, err)
}

func TestPropagate_PriorityWindow(t *testing.T) {
	env := newGatewayEnv(t, chains.Verifiers{})
	targets := []entity.Target{{Domain: 1, Connector: "conn-1"}}

	// priority 3 reserves slots 0..2 for the relayer
	env.block = 2
	_, err := env.gateway.Propagate(context.Background(), keeper, targets)
	require.ErrorIs(t, err, ErrPriorityBlocked)

	env.engine.EXPECT().Propagate(gomock.Any(), targets).
		Return(successResult(testRoot(0x01), targets), nil).Times(2)

	_, err = env.gateway.Propagate(context.Background(), relayer, targets)
	require.NoError(t, err)

	// priority 0 disables the reservation
	require.NoError(t, env.gateway.SetPriority(owner, FnPropagate, 0))
	env.now = env.now.Add(2 * time.Minute)
	_, err = env.gateway.Propagate(context.Background(), keeper, targets)
	require.NoError(t, err)
}

func TestPropagate_RelayerFees(t *testing.T) {
	env := newGatewayEnv(t, chains.Verifiers{})
	targets := []entity.Target{
		{Domain: 1, Connector: "conn-1", Fee: 5},
		{Domain: 2, Connector: "conn-2", Fee: 7},
	}

	env.engine.EXPECT().Propagate(gomock.Any(), targets).Return(successResult(testRoot(0x01), targets), nil)

	// pre-flight check plus the settlement check
	env.ledger.EXPECT().Balance().Return(uint64(100), nil).Times(2)
	env.ledger.EXPECT().Debit(uint64(12)).Return(nil)
	env.ledger.EXPECT().Credit(relayer, uint64(12)).Return(nil)

	_, err := env.gateway.Propagate(context.Background(), relayer, targets)
	require.NoError(t, err)
}

func TestPropagate_KeeperFeesAccrue(t *testing.T) {
	env := newGatewayEnv(t, chains.Verifiers{})
	targets := []entity.Target{{Domain: 1, Connector: "conn-1", Fee: 12}}

	env.engine.EXPECT().Propagate(gomock.Any(), targets).Return(successResult(testRoot(0x01), targets), nil)
	env.ledger.EXPECT().Balance().Return(uint64(100), nil)

	// the keeper rail accrues credit, the debit happens at settlement
	env.ledger.EXPECT().Accrue(keeper, uint64(12)).Return(nil)

	_, err := env.gateway.Propagate(context.Background(), keeper, targets)
	require.NoError(t, err)
}

func TestPropagate_InsufficientBalance(t *testing.T) {
	env := newGatewayEnv(t, chains.Verifiers{})
	targets := []entity.Target{{Domain: 1, Connector: "conn-1", Fee: 50}}

	env.ledger.EXPECT().Balance().Return(uint64(10), nil)

	// rejected pre-flight, the engine is never reached
	_, err := env.gateway.Propagate(context.Background(), relayer, targets)
	require.ErrorIs(t, err, ErrInsufficientBalance)
}

func TestFinalize(t *testing.T) {
	env := newGatewayEnv(t, chains.Verifiers{})

	env.engine.EXPECT().Finalize(keeper).Return(nil)
	require.NoError(t, env.gateway.Finalize(keeper))
}

func TestFinalizeAndPropagate(t *testing.T) {
	env := newGatewayEnv(t, chains.Verifiers{})
	targets := []entity.Target{{Domain: 1, Connector: "conn-1"}}

	env.engine.EXPECT().FinalizeAndPropagate(gomock.Any(), relayer, targets).
		Return(successResult(testRoot(0x02), targets), nil)

	_, err := env.gateway.FinalizeAndPropagate(context.Background(), relayer, targets)
	require.NoError(t, err)

	// shares the propagate cooldown
	_, err = env.gateway.Propagate(context.Background(), relayer, targets)
	require.ErrorIs(t, err, ErrNotCooledDown)
}

func TestProposeAggregateRoot(t *testing.T) {
	env := newGatewayEnv(t, chains.Verifiers{})

	env.engine.EXPECT().ProposeAggregateRoot(keeper, uint64(7), testRoot(0x03), nil, nil).Return(nil)
	require.NoError(t, env.gateway.ProposeAggregateRoot(keeper, 7, testRoot(0x03), nil, nil))

	err := env.gateway.ProposeAggregateRoot(keeper, 7, testRoot(0x03), nil, nil)
	require.ErrorIs(t, err, ErrNotCooledDown)
}

func TestPropagateWorkable(t *testing.T) {
	env := newGatewayEnv(t, chains.Verifiers{})
	targets := []entity.Target{{Domain: 1, Connector: "conn-1"}}

	env.engine.EXPECT().Mode().Return(rootmanager.SlowMode).AnyTimes()
	env.engine.EXPECT().QueueCount().Return(0).AnyTimes()

	env.engine.EXPECT().CandidateRoot().Return(entity.ZeroRoot)
	require.False(t, env.gateway.PropagateWorkable([]entity.Domain{1}), "no candidate root")

	env.engine.EXPECT().CandidateRoot().Return(testRoot(0x04)).AnyTimes()
	require.True(t, env.gateway.PropagateWorkable([]entity.Domain{1}))

	env.engine.EXPECT().Propagate(gomock.Any(), targets).Return(successResult(testRoot(0x04), targets), nil)
	_, err := env.gateway.Propagate(context.Background(), relayer, targets)
	require.NoError(t, err)

	// cooldown running
	require.False(t, env.gateway.PropagateWorkable([]entity.Domain{1}))

	env.now = env.now.Add(2 * time.Minute)

	// the candidate was already delivered to domain 1
	require.False(t, env.gateway.PropagateWorkable([]entity.Domain{1}))
	require.True(t, env.gateway.PropagateWorkable([]entity.Domain{2}))
}

func TestPropagateWorkable_FailedTargetStaysWorkable(t *testing.T) {
	env := newGatewayEnv(t, chains.Verifiers{})
	targets := []entity.Target{{Domain: 1, Connector: "conn-1"}}

	result := &entity.PropagationResult{
		AggregateRoot: testRoot(0x05),
		Targets: []entity.TargetResult{
			{Domain: 1, Connector: "conn-1", Err: rootmanager.ErrUnknownConnector},
		},
	}
	env.engine.EXPECT().Propagate(gomock.Any(), targets).Return(result, nil)
	env.engine.EXPECT().Mode().Return(rootmanager.SlowMode).AnyTimes()
	env.engine.EXPECT().QueueCount().Return(0).AnyTimes()
	env.engine.EXPECT().CandidateRoot().Return(testRoot(0x05)).AnyTimes()

	_, err := env.gateway.Propagate(context.Background(), relayer, targets)
	require.NoError(t, err)

	env.now = env.now.Add(2 * time.Minute)
	require.True(t, env.gateway.PropagateWorkable([]entity.Domain{1}), "failed delivery is not recorded")
}

func TestPropagateWorkable_QueuedRoots(t *testing.T) {
	env := newGatewayEnv(t, chains.Verifiers{})
	targets := []entity.Target{{Domain: 1, Connector: "conn-1"}}

	env.engine.EXPECT().Propagate(gomock.Any(), targets).Return(successResult(testRoot(0x06), targets), nil)
	_, err := env.gateway.Propagate(context.Background(), relayer, targets)
	require.NoError(t, err)

	env.now = env.now.Add(2 * time.Minute)
	env.engine.EXPECT().Mode().Return(rootmanager.SlowMode).AnyTimes()

	// the delivered root is still the candidate, nothing queued
	env.engine.EXPECT().QueueCount().Return(0)
	env.engine.EXPECT().CandidateRoot().Return(testRoot(0x06))
	require.False(t, env.gateway.PropagateWorkable([]entity.Domain{1}))

	// a queued inbound root means the real call would drain and deliver
	// a fresh root, even though the advisory candidate has not moved
	env.engine.EXPECT().QueueCount().Return(1)
	require.True(t, env.gateway.PropagateWorkable([]entity.Domain{1}))
}

func TestProposeWorkable(t *testing.T) {
	env := newGatewayEnv(t, chains.Verifiers{})

	env.engine.EXPECT().Mode().Return(rootmanager.SlowMode)
	require.False(t, env.gateway.ProposeWorkable())

	env.engine.EXPECT().Mode().Return(rootmanager.OptimisticMode).AnyTimes()
	require.True(t, env.gateway.ProposeWorkable())

	env.engine.EXPECT().ProposeAggregateRoot(keeper, uint64(1), testRoot(0x01), nil, nil).Return(nil)
	require.NoError(t, env.gateway.ProposeAggregateRoot(keeper, 1, testRoot(0x01), nil, nil))
	require.False(t, env.gateway.ProposeWorkable())
}

func TestAdmin(t *testing.T) {
	env := newGatewayEnv(t, chains.Verifiers{})

	require.ErrorIs(t, env.gateway.SetRelayer(keeper, "other"), ErrNotOwner)
	require.ErrorIs(t, env.gateway.SetPriority(keeper, FnPropagate, 1), ErrNotOwner)
	require.ErrorIs(t, env.gateway.SetCooldown(keeper, FnPropagate, time.Second), ErrNotOwner)
	require.ErrorIs(t, env.gateway.SetHubConnector(keeper, 1, Hub{Family: chains.Polygon}), ErrNotOwner)

	require.ErrorIs(t, env.gateway.SetPriority(owner, FnPropagate, 11), ErrInvalidPriority)

	require.NoError(t, env.gateway.SetRelayer(owner, "other"))
	require.NoError(t, env.gateway.SetPriority(owner, FnPropose, 5))
	require.NoError(t, env.gateway.SetCooldown(owner, FnPropagate, time.Hour))

	// the raised propose priority now reserves slot 4
	env.block = 4
	err := env.gateway.ProposeAggregateRoot(keeper, 1, testRoot(0x01), nil, nil)
	require.ErrorIs(t, err, ErrPriorityBlocked)
}

func TestSettleKeeper(t *testing.T) {
	env := newGatewayEnv(t, chains.Verifiers{})

	_, err := env.gateway.SettleKeeper(keeper, keeper)
	require.ErrorIs(t, err, ErrNotOwner)

	env.ledger.EXPECT().Settle(keeper).Return(uint64(42), nil)
	settled, err := env.gateway.SettleKeeper(owner, keeper)
	require.NoError(t, err)
	require.Equal(t, uint64(42), settled)
}
