// Package chains decodes hub-connector payloads and dispatches them to
// the verifier of the originating chain family. Each family has one
// fixed decode shape; anything that does not match it bit-exactly is
// rejected before any verifier is touched.
package chains

import (
	"context"

	"github.com/crossmesh/rootmanager/core/entity"
	"github.com/pkg/errors"
)

// Family names one supported chain family.
type Family string

const (
	Gnosis   Family = "gnosis"
	Arbitrum Family = "arbitrum"
	Optimism Family = "optimism"
	ZkSync   Family = "zksync"
	Polygon  Family = "polygon"
)

var ErrUnknownFamily = errors.New("unknown chain family")

// Verifier interfaces mirror the fixed call shapes of the per-family
// verification contracts. They are injected and mocked in tests.
//
//go:generate mockgen -destination=../../../mocks/mock_verifiers.go -package=mocks . GnosisVerifier,ArbitrumVerifier,OptimismVerifier,ZkSyncVerifier,PolygonVerifier

type GnosisVerifier interface {
	ExecuteSignatures(ctx context.Context, message, signatures []byte) error
}

type ArbitrumVerifier interface {
	ProcessMessageFromRoot(ctx context.Context, proof ArbitrumProof) error
}

type OptimismVerifier interface {
	ProveAndProcess(ctx context.Context, withdrawal OptimismWithdrawal) error
}

type ZkSyncVerifier interface {
	ConsumeMessageFromL2(ctx context.Context, msg ZkSyncMessage) error
}

type PolygonVerifier interface {
	ReceiveMessage(ctx context.Context, blob []byte) error
}

// Verifiers bundles one verifier per family. A nil entry means the
// family is not wired on this deployment.
type Verifiers struct {
	Gnosis   GnosisVerifier
	Arbitrum ArbitrumVerifier
	Optimism OptimismVerifier
	ZkSync   ZkSyncVerifier
	Polygon  PolygonVerifier
}

// GnosisEnvelope is the AMB message plus its collected signatures.
type GnosisEnvelope struct {
	Message    []byte
	Signatures []byte
}

// ArbitrumProof is the L2-to-L1 outbox proof.
type ArbitrumProof struct {
	Index     uint64
	L2Sender  []byte
	To        []byte
	L2Block   uint64
	L1Block   uint64
	Timestamp uint64
	Value     uint64
	Proof     []entity.Root
	Data      []byte
}

// OptimismWithdrawal is the withdrawal transaction together with the
// output-root proof it is verified against.
type OptimismWithdrawal struct {
	Nonce         uint64
	Sender        []byte
	Target        []byte
	Value         uint64
	GasLimit      uint64
	Data          []byte
	L2OutputIndex uint64
	OutputRoot    OutputRootProof
	Proof         [][]byte
}

type OutputRootProof struct {
	Version                  entity.Root
	StateRoot                entity.Root
	MessagePasserStorageRoot entity.Root
	LatestBlockhash          entity.Root
}

// ZkSyncMessage is an L2 log inclusion proof.
type ZkSyncMessage struct {
	L2Block      uint64
	MessageIndex uint64
	Sender       []byte
	Message      []byte
	Proof        []entity.Root
}

// Dispatch decodes encodedData for family and invokes that family's
// verifier.
func Dispatch(ctx context.Context, family Family, encodedData []byte, v Verifiers) error {
	switch family {
	case Gnosis:
		if v.Gnosis == nil {
			return errors.Wrapf(ErrUnknownFamily, "no gnosis verifier")
		}
		env, err := DecodeGnosis(encodedData)
		if err != nil {
			return err
		}
		return v.Gnosis.ExecuteSignatures(ctx, env.Message, env.Signatures)

	case Arbitrum:
		if v.Arbitrum == nil {
			return errors.Wrapf(ErrUnknownFamily, "no arbitrum verifier")
		}
		proof, err := DecodeArbitrum(encodedData)
		if err != nil {
			return err
		}
		return v.Arbitrum.ProcessMessageFromRoot(ctx, proof)

	case Optimism:
		if v.Optimism == nil {
			return errors.Wrapf(ErrUnknownFamily, "no optimism verifier")
		}
		w, err := DecodeOptimism(encodedData)
		if err != nil {
			return err
		}
		return v.Optimism.ProveAndProcess(ctx, w)

	case ZkSync:
		if v.ZkSync == nil {
			return errors.Wrapf(ErrUnknownFamily, "no zksync verifier")
		}
		msg, err := DecodeZkSync(encodedData)
		if err != nil {
			return err
		}
		return v.ZkSync.ConsumeMessageFromL2(ctx, msg)

	case Polygon:
		if v.Polygon == nil {
			return errors.Wrapf(ErrUnknownFamily, "no polygon verifier")
		}
		// polygon payloads are opaque, passed through unchanged
		return v.Polygon.ReceiveMessage(ctx, encodedData)
	}

	return errors.Wrapf(ErrUnknownFamily, "family %q", family)
}
