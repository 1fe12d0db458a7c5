package server

import (
	"github.com/crossmesh/rootmanager/core/gateway"
	"github.com/crossmesh/rootmanager/core/gateway/chains"
	"github.com/crossmesh/rootmanager/core/registry"
	"github.com/crossmesh/rootmanager/core/rootmanager"
	"github.com/pkg/errors"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// toStatus maps core errors onto gRPC codes so callers can tell
// authorization failures, losable races and throttling apart without
// string matching.
func toStatus(err error) error {
	if err == nil {
		return nil
	}

	code := codes.Internal
	switch {
	case errors.Is(err, registry.ErrNotOwner),
		errors.Is(err, registry.ErrNotWatcher),
		errors.Is(err, rootmanager.ErrNotOwner),
		errors.Is(err, rootmanager.ErrNotWatcher),
		errors.Is(err, rootmanager.ErrNotConnector),
		errors.Is(err, rootmanager.ErrNotProposer),
		errors.Is(err, gateway.ErrNotOwner):
		code = codes.PermissionDenied

	case errors.Is(err, gateway.ErrNotCooledDown),
		errors.Is(err, gateway.ErrPriorityBlocked):
		code = codes.ResourceExhausted

	case errors.Is(err, gateway.ErrAlreadyProcessed):
		code = codes.AlreadyExists

	case errors.Is(err, ErrInvalidLengths),
		errors.Is(err, chains.ErrMalformedPayload),
		errors.Is(err, chains.ErrUnknownFamily),
		errors.Is(err, gateway.ErrInvalidPriority):
		code = codes.InvalidArgument

	case errors.Is(err, registry.ErrUnsupportedDomain),
		errors.Is(err, registry.ErrDomainExists),
		errors.Is(err, registry.ErrConnectorExists),
		errors.Is(err, registry.ErrNullConnector),
		errors.Is(err, rootmanager.ErrWrongMode),
		errors.Is(err, rootmanager.ErrProposeInProgress),
		errors.Is(err, rootmanager.ErrInvalidDomains),
		errors.Is(err, rootmanager.ErrInvalidSnapshotID),
		errors.Is(err, rootmanager.ErrDisputeNotElapsed),
		errors.Is(err, rootmanager.ErrEmptyProposedRoot),
		errors.Is(err, rootmanager.ErrEmptyFinalizedRoot),
		errors.Is(err, rootmanager.ErrOldAggregateRoot),
		errors.Is(err, rootmanager.ErrRedundantRoot),
		errors.Is(err, rootmanager.ErrUnknownConnector),
		errors.Is(err, gateway.ErrNoHubConnector),
		errors.Is(err, gateway.ErrInsufficientBalance):
		code = codes.FailedPrecondition
	}

	return status.Error(code, err.Error())
}
