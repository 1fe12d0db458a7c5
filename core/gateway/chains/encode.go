package chains

import (
	"encoding/binary"

	"github.com/crossmesh/rootmanager/core/entity"
)

// Encoders produce the exact byte layout the decoders require. Keepers
// use them to build ProcessFromRoot payloads.

func EncodeGnosis(env GnosisEnvelope) []byte {
	var w writer
	w.bytes(env.Message)
	w.bytes(env.Signatures)
	return w.buf
}

func EncodeArbitrum(p ArbitrumProof) []byte {
	var w writer
	w.u64(p.Index)
	w.bytes(p.L2Sender)
	w.bytes(p.To)
	w.u64(p.L2Block)
	w.u64(p.L1Block)
	w.u64(p.Timestamp)
	w.u64(p.Value)
	w.roots(p.Proof)
	w.bytes(p.Data)
	return w.buf
}

func EncodeOptimism(wd OptimismWithdrawal) []byte {
	var w writer
	w.u64(wd.Nonce)
	w.bytes(wd.Sender)
	w.bytes(wd.Target)
	w.u64(wd.Value)
	w.u64(wd.GasLimit)
	w.bytes(wd.Data)
	w.u64(wd.L2OutputIndex)
	w.root(wd.OutputRoot.Version)
	w.root(wd.OutputRoot.StateRoot)
	w.root(wd.OutputRoot.MessagePasserStorageRoot)
	w.root(wd.OutputRoot.LatestBlockhash)
	w.u32(uint32(len(wd.Proof)))
	for _, node := range wd.Proof {
		w.bytes(node)
	}
	return w.buf
}

func EncodeZkSync(m ZkSyncMessage) []byte {
	var w writer
	w.u64(m.L2Block)
	w.u64(m.MessageIndex)
	w.bytes(m.Sender)
	w.bytes(m.Message)
	w.roots(m.Proof)
	return w.buf
}

type writer struct {
	buf []byte
}

func (w *writer) u32(v uint32) {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	w.buf = append(w.buf, b[:]...)
}

func (w *writer) u64(v uint64) {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	w.buf = append(w.buf, b[:]...)
}

func (w *writer) bytes(b []byte) {
	w.u32(uint32(len(b)))
	w.buf = append(w.buf, b...)
}

func (w *writer) root(r entity.Root) {
	w.buf = append(w.buf, r[:]...)
}

func (w *writer) roots(roots []entity.Root) {
	w.u32(uint32(len(roots)))
	for _, r := range roots {
		w.root(r)
	}
}
