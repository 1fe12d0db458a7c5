// Package entity defines the domain types shared by the aggregation core
// and its gateways.
package entity

import (
	"encoding/hex"

	"github.com/pkg/errors"
)

// RootSize is the length of every root hash in bytes.
const RootSize = 32

// Root is a 32-byte commitment to a batch of outbound messages.
type Root [RootSize]byte

// ZeroRoot is the empty root; it is never a valid aggregate root.
var ZeroRoot Root

// RootFromBytes copies b into a Root, rejecting wrong-sized input.
func RootFromBytes(b []byte) (Root, error) {
	var r Root
	if len(b) != RootSize {
		return r, errors.Errorf("root must be %d bytes, got %d", RootSize, len(b))
	}
	copy(r[:], b)
	return r, nil
}

func (r Root) IsZero() bool {
	return r == ZeroRoot
}

func (r Root) Hex() string {
	return "0x" + hex.EncodeToString(r[:])
}

// Address identifies a caller, connector or proposer. The zero value is
// the null address and is rejected everywhere an address is registered.
type Address string

func (a Address) IsZero() bool {
	return a == ""
}

// Domain is the opaque numeric identifier of one connected chain.
type Domain uint32

// Proposal is the single outstanding optimistic-mode proposal.
// EndOfDispute is zero when no proposal is in flight.
type Proposal struct {
	AggregateRoot Root
	EndOfDispute  int64 // unix seconds
}

func (p Proposal) InProgress() bool {
	return p.EndOfDispute != 0
}

// Target is one propagation destination: the hub connector for a domain
// together with the fee and connector-specific payload for this send.
type Target struct {
	Domain      Domain
	Connector   Address
	Fee         uint64
	EncodedData []byte
}

// TargetResult is the per-target outcome of one propagation attempt.
// Err is nil for targets that accepted the root.
type TargetResult struct {
	Domain    Domain
	Connector Address
	Err       error
}

// PropagationResult reports one completed propagation: the root that was
// broadcast and the outcome for every target, failed ones included.
type PropagationResult struct {
	AggregateRoot Root
	Count         uint64
	Targets       []TargetResult
}

// Failed returns the subset of targets whose send was rejected.
func (p PropagationResult) Failed() []TargetResult {
	var failed []TargetResult
	for _, t := range p.Targets {
		if t.Err != nil {
			failed = append(failed, t)
		}
	}
	return failed
}
