package gateway

import (
	"context"

	"github.com/crossmesh/rootmanager/core/entity"
	"github.com/crossmesh/rootmanager/core/events"
	"github.com/crossmesh/rootmanager/core/gateway/chains"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

var (
	ErrAlreadyProcessed = errors.New("message already processed")
	ErrNoHubConnector   = errors.New("no hub connector for domain")
)

// ProcessFromRoot verifies one inbound message against the propagated
// aggregate root on its origin family. The (domain, hash) pair is
// claimed in the processed set before the verifier runs, so of two
// concurrent calls for the same message exactly one reaches the
// verifier; the claim is released again if verification fails, keeping
// the message retryable.
func (g *Gateway) ProcessFromRoot(ctx context.Context, caller entity.Address,
	encodedData []byte, fromDomain entity.Domain, messageHash entity.Root) error {

	g.mu.Lock()
	hub, registered := g.hubs[fromDomain]
	if !registered {
		g.mu.Unlock()
		return errors.Wrapf(ErrNoHubConnector, "domain %d", fromDomain)
	}

	seen, err := g.processed.Seen(fromDomain, messageHash)
	if err != nil {
		g.mu.Unlock()
		return errors.Wrap(err, "read processed set")
	}
	if seen {
		g.mu.Unlock()
		return errors.Wrapf(ErrAlreadyProcessed, "domain %d, hash %s", fromDomain, messageHash.Hex())
	}

	if err := g.processed.Mark(fromDomain, messageHash); err != nil {
		g.mu.Unlock()
		return errors.Wrap(err, "mark message processed")
	}
	g.mu.Unlock()

	if err := chains.Dispatch(ctx, hub.Family, encodedData, g.verifiers); err != nil {
		if uerr := g.processed.Unmark(fromDomain, messageHash); uerr != nil {
			log.Errorf("unmark message %s from domain %d: %v", messageHash.Hex(), fromDomain, uerr)
		}
		return errors.Wrapf(err, "verify message from domain %d", fromDomain)
	}

	g.bus.Publish(events.MessageProcessed{Domain: fromDomain, MessageHash: messageHash, Caller: caller})
	return nil
}
