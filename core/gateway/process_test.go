package gateway

import (
	"context"
	"testing"

	"github.com/crossmesh/rootmanager/core/gateway/chains"
	"github.com/crossmesh/rootmanager/mocks"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestProcessFromRoot(t *testing.T) {
	ctrl := gomock.NewController(t)
	polygon := mocks.NewMockPolygonVerifier(ctrl)
	env := newGatewayEnv(t, chains.Verifiers{Polygon: polygon})

	require.NoError(t, env.gateway.SetHubConnector(owner, 7, Hub{Family: chains.Polygon}))

	blob := []byte{0x01, 0x02, 0x03}
	polygon.EXPECT().ReceiveMessage(gomock.Any(), blob).Return(nil)

	require.NoError(t, env.gateway.ProcessFromRoot(context.Background(), keeper, blob, 7, testRoot(0xaa)))

	// exact replay is rejected without touching the verifier
	err := env.gateway.ProcessFromRoot(context.Background(), keeper, blob, 7, testRoot(0xaa))
	require.ErrorIs(t, err, ErrAlreadyProcessed)

	// same hash from another domain is a different message
	polygon.EXPECT().ReceiveMessage(gomock.Any(), blob).Return(nil)
	require.NoError(t, env.gateway.SetHubConnector(owner, 8, Hub{Family: chains.Polygon}))
	require.NoError(t, env.gateway.ProcessFromRoot(context.Background(), keeper, blob, 8, testRoot(0xaa)))
}

func TestProcessFromRoot_ConcurrentDuplicate(t *testing.T) {
	ctrl := gomock.NewController(t)
	polygon := mocks.NewMockPolygonVerifier(ctrl)
	env := newGatewayEnv(t, chains.Verifiers{Polygon: polygon})

	require.NoError(t, env.gateway.SetHubConnector(owner, 7, Hub{Family: chains.Polygon}))

	blob := []byte{0x01, 0x02}
	entered := make(chan struct{})
	release := make(chan struct{})
	polygon.EXPECT().ReceiveMessage(gomock.Any(), blob).DoAndReturn(
		func(context.Context, []byte) error {
			close(entered)
			<-release
			return nil
		})

	done := make(chan error, 1)
	go func() {
		done <- env.gateway.ProcessFromRoot(context.Background(), keeper, blob, 7, testRoot(0xee))
	}()
	<-entered

	// the duplicate loses while the first call is still verifying
	err := env.gateway.ProcessFromRoot(context.Background(), keeper, blob, 7, testRoot(0xee))
	require.ErrorIs(t, err, ErrAlreadyProcessed)

	close(release)
	require.NoError(t, <-done)
}

func TestProcessFromRoot_UnroutedDomain(t *testing.T) {
	env := newGatewayEnv(t, chains.Verifiers{})

	err := env.gateway.ProcessFromRoot(context.Background(), keeper, []byte{0x01}, 99, testRoot(0xbb))
	require.ErrorIs(t, err, ErrNoHubConnector)
}

func TestProcessFromRoot_VerifierFailureNotMarked(t *testing.T) {
	ctrl := gomock.NewController(t)
	polygon := mocks.NewMockPolygonVerifier(ctrl)
	env := newGatewayEnv(t, chains.Verifiers{Polygon: polygon})

	require.NoError(t, env.gateway.SetHubConnector(owner, 7, Hub{Family: chains.Polygon}))

	blob := []byte{0x09}
	gomock.InOrder(
		polygon.EXPECT().ReceiveMessage(gomock.Any(), blob).Return(errors.New("proof rejected")),
		polygon.EXPECT().ReceiveMessage(gomock.Any(), blob).Return(nil),
	)

	err := env.gateway.ProcessFromRoot(context.Background(), keeper, blob, 7, testRoot(0xcc))
	require.Error(t, err)

	// a failed verification leaves the message retryable
	require.NoError(t, env.gateway.ProcessFromRoot(context.Background(), keeper, blob, 7, testRoot(0xcc)))
}

func TestProcessFromRoot_MalformedPayload(t *testing.T) {
	ctrl := gomock.NewController(t)
	gnosis := mocks.NewMockGnosisVerifier(ctrl)
	env := newGatewayEnv(t, chains.Verifiers{Gnosis: gnosis})

	require.NoError(t, env.gateway.SetHubConnector(owner, 3, Hub{Family: chains.Gnosis}))

	err := env.gateway.ProcessFromRoot(context.Background(), keeper, []byte{0xff}, 3, testRoot(0xdd))
	require.ErrorIs(t, err, chains.ErrMalformedPayload)
}
