// Package connector provides the gRPC transport to remote hub
// connectors. Connector addresses double as dial targets: host:port of
// the connector's endpoint.
package connector

import (
	"context"
	"sync"

	"github.com/crossmesh/rootmanager/core/entity"
	"github.com/crossmesh/rootmanager/core/rootmanager"
	"github.com/crossmesh/rootmanager/io/gateway/grpc/proto"
	"github.com/pkg/errors"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// Dialer resolves connector addresses to live transport handles,
// caching one connection per address.
type Dialer struct {
	mu    sync.Mutex
	conns map[entity.Address]*grpc.ClientConn
}

func NewDialer() *Dialer {
	return &Dialer{conns: make(map[entity.Address]*grpc.ClientConn)}
}

func (d *Dialer) Dial(addr entity.Address) (rootmanager.HubConnector, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	conn, ok := d.conns[addr]
	if !ok {
		var err error
		conn, err = grpc.Dial(string(addr), grpc.WithTransportCredentials(insecure.NewCredentials()))
		if err != nil {
			return nil, errors.Wrapf(err, "dial connector %s", addr)
		}
		d.conns[addr] = conn
	}

	return &hubConnector{client: proto.NewHubConnectorClient(conn)}, nil
}

// Close drops every cached connection.
func (d *Dialer) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	var firstErr error
	for addr, conn := range d.conns {
		if err := conn.Close(); err != nil && firstErr == nil {
			firstErr = errors.Wrapf(err, "close connection to %s", addr)
		}
		delete(d.conns, addr)
	}
	return firstErr
}

type hubConnector struct {
	client proto.HubConnectorClient
}

func (h *hubConnector) SendMessage(ctx context.Context, data []byte, fee uint64) error {
	_, err := h.client.SendMessage(ctx, &proto.SendMessageRequest{Data: data, Fee: fee})
	return err
}
