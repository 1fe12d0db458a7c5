package chains

import (
	"context"
	"testing"

	"github.com/crossmesh/rootmanager/core/entity"
	"github.com/stretchr/testify/require"
)

func root(b byte) entity.Root {
	var r entity.Root
	r[0] = b
	return r
}

func TestGnosisRoundtrip(t *testing.T) {
	env := GnosisEnvelope{
		Message:    []byte("amb message"),
		Signatures: []byte{0x1b, 0x1c},
	}

	decoded, err := DecodeGnosis(EncodeGnosis(env))
	require.NoError(t, err)
	require.Equal(t, env, decoded)
}

func TestArbitrumRoundtrip(t *testing.T) {
	p := ArbitrumProof{
		Index:     12,
		L2Sender:  []byte{0xaa},
		To:        []byte{0xbb},
		L2Block:   100,
		L1Block:   200,
		Timestamp: 1_700_000_000,
		Value:     5,
		Proof:     []entity.Root{root(0x01), root(0x02)},
		Data:      []byte("calldata"),
	}

	decoded, err := DecodeArbitrum(EncodeArbitrum(p))
	require.NoError(t, err)
	require.Equal(t, p, decoded)
}

func TestOptimismRoundtrip(t *testing.T) {
	w := OptimismWithdrawal{
		Nonce:         3,
		Sender:        []byte{0x01},
		Target:        []byte{0x02},
		Value:         7,
		GasLimit:      100_000,
		Data:          []byte{0x03},
		L2OutputIndex: 9,
		OutputRoot: OutputRootProof{
			Version:                  root(0x10),
			StateRoot:                root(0x11),
			MessagePasserStorageRoot: root(0x12),
			LatestBlockhash:          root(0x13),
		},
		Proof: [][]byte{{0x04}, {0x05, 0x06}},
	}

	decoded, err := DecodeOptimism(EncodeOptimism(w))
	require.NoError(t, err)
	require.Equal(t, w, decoded)
}

func TestZkSyncRoundtrip(t *testing.T) {
	m := ZkSyncMessage{
		L2Block:      55,
		MessageIndex: 2,
		Sender:       []byte{0x0a},
		Message:      []byte("l2 log"),
		Proof:        []entity.Root{root(0x21)},
	}

	decoded, err := DecodeZkSync(EncodeZkSync(m))
	require.NoError(t, err)
	require.Equal(t, m, decoded)
}

func TestDecode_ShortBuffer(t *testing.T) {
	_, err := DecodeGnosis([]byte{0x00, 0x00})
	require.ErrorIs(t, err, ErrMalformedPayload)

	_, err = DecodeArbitrum([]byte{0x01})
	require.ErrorIs(t, err, ErrMalformedPayload)

	// declared length exceeds the buffer
	_, err = DecodeGnosis([]byte{0x00, 0x00, 0x00, 0x10, 0xaa})
	require.ErrorIs(t, err, ErrMalformedPayload)
}

func TestDecode_TrailingBytes(t *testing.T) {
	encoded := EncodeGnosis(GnosisEnvelope{Message: []byte{0x01}, Signatures: []byte{0x02}})
	encoded = append(encoded, 0xff)

	_, err := DecodeGnosis(encoded)
	require.ErrorIs(t, err, ErrMalformedPayload)
}

func TestDispatch_UnknownFamily(t *testing.T) {
	err := Dispatch(context.Background(), Family("solana"), nil, Verifiers{})
	require.ErrorIs(t, err, ErrUnknownFamily)
}

func TestDispatch_MissingVerifier(t *testing.T) {
	// a known family with no wired verifier is refused, not skipped
	err := Dispatch(context.Background(), Gnosis, nil, Verifiers{})
	require.ErrorIs(t, err, ErrUnknownFamily)
}
