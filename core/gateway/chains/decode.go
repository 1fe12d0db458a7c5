package chains

import (
	"encoding/binary"

	"github.com/crossmesh/rootmanager/core/entity"
	"github.com/pkg/errors"
)

var ErrMalformedPayload = errors.New("malformed payload")

// Payloads are length-prefixed big-endian binary. Decoders are strict:
// short buffers and trailing bytes both fail.

// DecodeGnosis expects: message bytes, signatures bytes.
func DecodeGnosis(b []byte) (GnosisEnvelope, error) {
	r := reader{buf: b}
	var env GnosisEnvelope
	var err error
	if env.Message, err = r.bytes(); err != nil {
		return env, errors.Wrap(err, "gnosis message")
	}
	if env.Signatures, err = r.bytes(); err != nil {
		return env, errors.Wrap(err, "gnosis signatures")
	}
	return env, r.done()
}

// DecodeArbitrum expects: index, l2Sender, to, l2Block, l1Block,
// timestamp, value, proof hashes, data.
func DecodeArbitrum(b []byte) (ArbitrumProof, error) {
	r := reader{buf: b}
	var p ArbitrumProof
	var err error
	if p.Index, err = r.u64(); err != nil {
		return p, errors.Wrap(err, "arbitrum index")
	}
	if p.L2Sender, err = r.bytes(); err != nil {
		return p, errors.Wrap(err, "arbitrum l2 sender")
	}
	if p.To, err = r.bytes(); err != nil {
		return p, errors.Wrap(err, "arbitrum to")
	}
	if p.L2Block, err = r.u64(); err != nil {
		return p, errors.Wrap(err, "arbitrum l2 block")
	}
	if p.L1Block, err = r.u64(); err != nil {
		return p, errors.Wrap(err, "arbitrum l1 block")
	}
	if p.Timestamp, err = r.u64(); err != nil {
		return p, errors.Wrap(err, "arbitrum timestamp")
	}
	if p.Value, err = r.u64(); err != nil {
		return p, errors.Wrap(err, "arbitrum value")
	}
	if p.Proof, err = r.roots(); err != nil {
		return p, errors.Wrap(err, "arbitrum proof")
	}
	if p.Data, err = r.bytes(); err != nil {
		return p, errors.Wrap(err, "arbitrum data")
	}
	return p, r.done()
}

// DecodeOptimism expects: nonce, sender, target, value, gasLimit, data,
// l2OutputIndex, the four output-root proof hashes, withdrawal proof
// nodes.
func DecodeOptimism(b []byte) (OptimismWithdrawal, error) {
	r := reader{buf: b}
	var w OptimismWithdrawal
	var err error
	if w.Nonce, err = r.u64(); err != nil {
		return w, errors.Wrap(err, "optimism nonce")
	}
	if w.Sender, err = r.bytes(); err != nil {
		return w, errors.Wrap(err, "optimism sender")
	}
	if w.Target, err = r.bytes(); err != nil {
		return w, errors.Wrap(err, "optimism target")
	}
	if w.Value, err = r.u64(); err != nil {
		return w, errors.Wrap(err, "optimism value")
	}
	if w.GasLimit, err = r.u64(); err != nil {
		return w, errors.Wrap(err, "optimism gas limit")
	}
	if w.Data, err = r.bytes(); err != nil {
		return w, errors.Wrap(err, "optimism data")
	}
	if w.L2OutputIndex, err = r.u64(); err != nil {
		return w, errors.Wrap(err, "optimism l2 output index")
	}
	if w.OutputRoot.Version, err = r.root(); err != nil {
		return w, errors.Wrap(err, "optimism output version")
	}
	if w.OutputRoot.StateRoot, err = r.root(); err != nil {
		return w, errors.Wrap(err, "optimism state root")
	}
	if w.OutputRoot.MessagePasserStorageRoot, err = r.root(); err != nil {
		return w, errors.Wrap(err, "optimism storage root")
	}
	if w.OutputRoot.LatestBlockhash, err = r.root(); err != nil {
		return w, errors.Wrap(err, "optimism latest blockhash")
	}
	n, err := r.u32()
	if err != nil {
		return w, errors.Wrap(err, "optimism proof size")
	}
	w.Proof = make([][]byte, 0, n)
	for i := uint32(0); i < n; i++ {
		node, err := r.bytes()
		if err != nil {
			return w, errors.Wrapf(err, "optimism proof node %d", i)
		}
		w.Proof = append(w.Proof, node)
	}
	return w, r.done()
}

// DecodeZkSync expects: l2Block, messageIndex, sender, message, proof
// hashes.
func DecodeZkSync(b []byte) (ZkSyncMessage, error) {
	r := reader{buf: b}
	var m ZkSyncMessage
	var err error
	if m.L2Block, err = r.u64(); err != nil {
		return m, errors.Wrap(err, "zksync l2 block")
	}
	if m.MessageIndex, err = r.u64(); err != nil {
		return m, errors.Wrap(err, "zksync message index")
	}
	if m.Sender, err = r.bytes(); err != nil {
		return m, errors.Wrap(err, "zksync sender")
	}
	if m.Message, err = r.bytes(); err != nil {
		return m, errors.Wrap(err, "zksync message")
	}
	if m.Proof, err = r.roots(); err != nil {
		return m, errors.Wrap(err, "zksync proof")
	}
	return m, r.done()
}

type reader struct {
	buf []byte
	off int
}

func (r *reader) u32() (uint32, error) {
	if r.off+4 > len(r.buf) {
		return 0, errors.Wrap(ErrMalformedPayload, "short buffer")
	}
	v := binary.BigEndian.Uint32(r.buf[r.off:])
	r.off += 4
	return v, nil
}

func (r *reader) u64() (uint64, error) {
	if r.off+8 > len(r.buf) {
		return 0, errors.Wrap(ErrMalformedPayload, "short buffer")
	}
	v := binary.BigEndian.Uint64(r.buf[r.off:])
	r.off += 8
	return v, nil
}

func (r *reader) bytes() ([]byte, error) {
	n, err := r.u32()
	if err != nil {
		return nil, err
	}
	if r.off+int(n) > len(r.buf) {
		return nil, errors.Wrap(ErrMalformedPayload, "short buffer")
	}
	out := make([]byte, n)
	copy(out, r.buf[r.off:r.off+int(n)])
	r.off += int(n)
	return out, nil
}

func (r *reader) root() (entity.Root, error) {
	if r.off+entity.RootSize > len(r.buf) {
		return entity.ZeroRoot, errors.Wrap(ErrMalformedPayload, "short buffer")
	}
	var root entity.Root
	copy(root[:], r.buf[r.off:])
	r.off += entity.RootSize
	return root, nil
}

func (r *reader) roots() ([]entity.Root, error) {
	n, err := r.u32()
	if err != nil {
		return nil, err
	}
	out := make([]entity.Root, 0, n)
	for i := uint32(0); i < n; i++ {
		root, err := r.root()
		if err != nil {
			return nil, err
		}
		out = append(out, root)
	}
	return out, nil
}

func (r *reader) done() error {
	if r.off != len(r.buf) {
		return errors.Wrapf(ErrMalformedPayload, "%d trailing bytes", len(r.buf)-r.off)
	}
	return nil
}
