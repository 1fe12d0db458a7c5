// Package events defines the audit events emitted by the aggregation core.
//
// Off-chain indexers consume these events to mirror engine state without
// re-reading it; every state transition and every absorbed partial failure
// produces exactly one event.
package events

import "github.com/crossmesh/rootmanager/core/entity"

type Event interface {
	IsEvent()
}

func (e ConnectorAdded) IsEvent()          {}
func (e ConnectorRemoved) IsEvent()        {}
func (e RootReceived) IsEvent()            {}
func (e AggregateRootProposed) IsEvent()   {}
func (e ProposedRootFinalized) IsEvent()   {}
func (e SlowModeActivated) IsEvent()       {}
func (e OptimisticModeActivated) IsEvent() {}
func (e RootPropagated) IsEvent()          {}
func (e OptimisticRootPropagated) IsEvent() {}
func (e PropagateFailed) IsEvent()         {}
func (e MessageProcessed) IsEvent()        {}
func (e RelayerChanged) IsEvent()          {}
func (e PriorityChanged) IsEvent()         {}
func (e CooldownChanged) IsEvent()         {}

// ConnectorAdded carries the full post-mutation lists so downstream
// services can resync without replaying history.
type ConnectorAdded struct {
	Domain     entity.Domain
	Connector  entity.Address
	Domains    []entity.Domain
	Connectors []entity.Address
}

type ConnectorRemoved struct {
	Domain     entity.Domain
	Connector  entity.Address
	Domains    []entity.Domain
	Connectors []entity.Address
	Caller     entity.Address
}

// RootReceived is emitted on every accepted inbound root. QueueIndex is
// the root's FIFO position, so observers can order roots without reading
// the queue.
type RootReceived struct {
	Domain     entity.Domain
	Root       entity.Root
	QueueIndex uint64
}

// AggregateRootProposed carries BaseRoot, the accumulator root before the
// proposal, for off-chain audit of the proposer's computation.
type AggregateRootProposed struct {
	SnapshotID    uint64
	AggregateRoot entity.Root
	BaseRoot      entity.Root
	Domains       []entity.Domain
	EndOfDispute  int64
}

type ProposedRootFinalized struct {
	AggregateRoot entity.Root
}

type SlowModeActivated struct {
	Caller entity.Address
}

type OptimisticModeActivated struct {
	Caller entity.Address
}

// RootPropagated reports a slow-mode broadcast: the root, the accumulator
// leaf count it covers, and the hash of the domain set it was sent to.
type RootPropagated struct {
	AggregateRoot entity.Root
	Count         uint64
	DomainsHash   entity.Root
}

type OptimisticRootPropagated struct {
	AggregateRoot entity.Root
	DomainsHash   entity.Root
}

// PropagateFailed marks one unreachable target inside an otherwise
// successful broadcast. The batch is never aborted for it.
type PropagateFailed struct {
	Domain    entity.Domain
	Connector entity.Address
}

type MessageProcessed struct {
	Domain      entity.Domain
	MessageHash entity.Root
	Caller      entity.Address
}

type RelayerChanged struct {
	Previous entity.Address
	Current  entity.Address
}

type PriorityChanged struct {
	Function string
	Previous uint8
	Current  uint8
}

type CooldownChanged struct {
	Function string
	Previous int64 // seconds
	Current  int64
}
