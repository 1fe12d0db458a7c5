package server

import (
	"github.com/crossmesh/rootmanager/core/entity"
	"github.com/crossmesh/rootmanager/io/gateway/grpc/proto"
	"github.com/pkg/errors"
)

// ErrInvalidLengths rejects parallel arrays of mismatched size and
// wrong-sized root hashes at the wire boundary.
var ErrInvalidLengths = errors.New("invalid lengths")

// targetsFromPb assembles propagation targets from the request's
// parallel arrays. All four must be the same length.
func targetsFromPb(req *proto.PropagateRequest) ([]entity.Target, error) {
	n := len(req.Domains)
	if len(req.Connectors) != n || len(req.Fees) != n || len(req.EncodedData) != n {
		return nil, errors.Wrapf(ErrInvalidLengths,
			"domains %d, connectors %d, fees %d, payloads %d",
			n, len(req.Connectors), len(req.Fees), len(req.EncodedData))
	}

	targets := make([]entity.Target, 0, n)
	for i := 0; i < n; i++ {
		targets = append(targets, entity.Target{
			Domain:      entity.Domain(req.Domains[i]),
			Connector:   entity.Address(req.Connectors[i]),
			Fee:         req.Fees[i],
			EncodedData: req.EncodedData[i],
		})
	}
	return targets, nil
}

func resultToPb(result *entity.PropagationResult) *proto.PropagateResponse {
	if result == nil {
		return nil
	}

	resp := &proto.PropagateResponse{
		AggregateRoot: result.AggregateRoot[:],
		Count:         result.Count,
	}
	for _, t := range result.Targets {
		outcome := &proto.TargetOutcome{
			Domain:    uint32(t.Domain),
			Connector: string(t.Connector),
		}
		if t.Err != nil {
			outcome.Error = t.Err.Error()
		}
		resp.Targets = append(resp.Targets, outcome)
	}
	return resp
}

func domainsFromPb(domains []uint32) []entity.Domain {
	out := make([]entity.Domain, 0, len(domains))
	for _, d := range domains {
		out = append(out, entity.Domain(d))
	}
	return out
}

func rootsFromPb(roots [][]byte) ([]entity.Root, error) {
	out := make([]entity.Root, 0, len(roots))
	for i, raw := range roots {
		root, err := entity.RootFromBytes(raw)
		if err != nil {
			return nil, errors.Wrapf(ErrInvalidLengths, "snapshot root %d: %s", i, err)
		}
		out = append(out, root)
	}
	return out, nil
}
