// Package client provides the keeper-facing client for the RootManager
// service.
package client

import (
	"context"

	"github.com/crossmesh/rootmanager/core/entity"
	"github.com/crossmesh/rootmanager/io/gateway/grpc/proto"
)

// RootManagerClient wraps the generated client with entity types.
type RootManagerClient struct {
	Connection proto.RootManagerClient
	caller     entity.Address
}

// New creates an instance of the RootManager client.
// 'addr' - the network address of the node (host + port).
func New(addr string, caller entity.Address) (*RootManagerClient, error) {
	conn, err := createConnection(addr)
	if err != nil {
		return nil, err
	}
	return &RootManagerClient{Connection: proto.NewRootManagerClient(conn), caller: caller}, nil
}

func (c *RootManagerClient) Aggregate(ctx context.Context, domain entity.Domain, root entity.Root) error {
	_, err := c.Connection.Aggregate(ctx, &proto.AggregateRequest{
		Caller:      string(c.caller),
		Domain:      uint32(domain),
		InboundRoot: root[:],
	})
	return err
}

func (c *RootManagerClient) ProposeAggregateRoot(ctx context.Context, snapshotID uint64,
	aggregateRoot entity.Root, snapshotRoots []entity.Root, domains []entity.Domain) error {

	req := &proto.ProposeRequest{
		Caller:        string(c.caller),
		SnapshotId:    snapshotID,
		AggregateRoot: aggregateRoot[:],
	}
	for _, r := range snapshotRoots {
		req.SnapshotRoots = append(req.SnapshotRoots, append([]byte(nil), r[:]...))
	}
	for _, d := range domains {
		req.Domains = append(req.Domains, uint32(d))
	}

	_, err := c.Connection.ProposeAggregateRoot(ctx, req)
	return err
}

func (c *RootManagerClient) Finalize(ctx context.Context) error {
	_, err := c.Connection.Finalize(ctx, &proto.CallerRequest{Caller: string(c.caller)})
	return err
}

func (c *RootManagerClient) Propagate(ctx context.Context, targets []entity.Target) (*proto.PropagateResponse, error) {
	return c.Connection.Propagate(ctx, propagateRequest(c.caller, targets))
}

func (c *RootManagerClient) FinalizeAndPropagate(ctx context.Context, targets []entity.Target) (*proto.PropagateResponse, error) {
	return c.Connection.FinalizeAndPropagate(ctx, propagateRequest(c.caller, targets))
}

func (c *RootManagerClient) ActivateSlowMode(ctx context.Context) error {
	_, err := c.Connection.ActivateSlowMode(ctx, &proto.CallerRequest{Caller: string(c.caller)})
	return err
}

func (c *RootManagerClient) ActivateOptimisticMode(ctx context.Context) error {
	_, err := c.Connection.ActivateOptimisticMode(ctx, &proto.CallerRequest{Caller: string(c.caller)})
	return err
}

func (c *RootManagerClient) AddConnector(ctx context.Context, domain entity.Domain, connector entity.Address) error {
	_, err := c.Connection.AddConnector(ctx, &proto.AddConnectorRequest{
		Caller:    string(c.caller),
		Domain:    uint32(domain),
		Connector: string(connector),
	})
	return err
}

func (c *RootManagerClient) RemoveConnector(ctx context.Context, domain entity.Domain) error {
	_, err := c.Connection.RemoveConnector(ctx, &proto.RemoveConnectorRequest{
		Caller: string(c.caller),
		Domain: uint32(domain),
	})
	return err
}

func (c *RootManagerClient) AddProposer(ctx context.Context, proposer entity.Address) error {
	_, err := c.Connection.AddProposer(ctx, &proto.ProposerRequest{
		Caller:   string(c.caller),
		Proposer: string(proposer),
	})
	return err
}

func (c *RootManagerClient) RemoveProposer(ctx context.Context, proposer entity.Address) error {
	_, err := c.Connection.RemoveProposer(ctx, &proto.ProposerRequest{
		Caller:   string(c.caller),
		Proposer: string(proposer),
	})
	return err
}

func (c *RootManagerClient) PropagateWorkable(ctx context.Context, domains []entity.Domain) (bool, error) {
	req := &proto.WorkableRequest{}
	for _, d := range domains {
		req.Domains = append(req.Domains, uint32(d))
	}

	resp, err := c.Connection.PropagateWorkable(ctx, req)
	if err != nil {
		return false, err
	}
	return resp.Workable, nil
}

func (c *RootManagerClient) ProposeWorkable(ctx context.Context) (bool, error) {
	resp, err := c.Connection.ProposeWorkable(ctx, &proto.Empty{})
	if err != nil {
		return false, err
	}
	return resp.Workable, nil
}

func (c *RootManagerClient) ProcessFromRoot(ctx context.Context, fromDomain entity.Domain,
	messageHash entity.Root, encodedData []byte) error {

	_, err := c.Connection.ProcessFromRoot(ctx, &proto.ProcessRequest{
		Caller:      string(c.caller),
		FromDomain:  uint32(fromDomain),
		MessageHash: messageHash[:],
		EncodedData: encodedData,
	})
	return err
}

func (c *RootManagerClient) NodeInfo(ctx context.Context) (*proto.Info, error) {
	return c.Connection.NodeInfo(ctx, &proto.Empty{})
}

func propagateRequest(caller entity.Address, targets []entity.Target) *proto.PropagateRequest {
	req := &proto.PropagateRequest{Caller: string(caller)}
	for _, t := range targets {
		req.Domains = append(req.Domains, uint32(t.Domain))
		req.Connectors = append(req.Connectors, string(t.Connector))
		req.Fees = append(req.Fees, t.Fee)
		req.EncodedData = append(req.EncodedData, t.EncodedData)
	}
	return req
}
