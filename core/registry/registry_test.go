package registry

import (
	"testing"

	"github.com/crossmesh/rootmanager/core/entity"
	"github.com/crossmesh/rootmanager/core/events"
	"github.com/stretchr/testify/require"
)

const (
	owner   = entity.Address("owner")
	watcher = entity.Address("watcher")
)

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()
	auth := NewStaticAuth(owner, []entity.Address{watcher})
	return New(auth, events.NewBus())
}

func TestAddConnector(t *testing.T) {
	reg := newTestRegistry(t)

	require.NoError(t, reg.AddConnector(owner, 1, "conn-1"))
	require.NoError(t, reg.AddConnector(owner, 2, "conn-2"))

	conn, err := reg.ConnectorFor(1)
	require.NoError(t, err)
	require.Equal(t, entity.Address("conn-1"), conn)

	require.Equal(t, []entity.Domain{1, 2}, reg.Domains())
	require.Equal(t, []entity.Address{"conn-1", "conn-2"}, reg.Connectors())
}

func TestAddConnector_Rejections(t *testing.T) {
	reg := newTestRegistry(t)
	require.NoError(t, reg.AddConnector(owner, 1, "conn-1"))

	// only the owner may register
	err := reg.AddConnector("stranger", 2, "conn-2")
	require.ErrorIs(t, err, ErrNotOwner)

	err = reg.AddConnector(owner, 3, "")
	require.ErrorIs(t, err, ErrNullConnector)

	// one connector per domain
	err = reg.AddConnector(owner, 1, "conn-other")
	require.ErrorIs(t, err, ErrDomainExists)

	// one domain per connector
	err = reg.AddConnector(owner, 4, "conn-1")
	require.ErrorIs(t, err, ErrConnectorExists)
}

func TestRemoveConnector(t *testing.T) {
	reg := newTestRegistry(t)
	require.NoError(t, reg.AddConnector(owner, 1, "conn-1"))
	require.NoError(t, reg.AddConnector(owner, 2, "conn-2"))
	require.NoError(t, reg.AddConnector(owner, 3, "conn-3"))

	err := reg.RemoveConnector(owner, 1)
	require.ErrorIs(t, err, ErrNotWatcher, "removal is a watcher action")

	require.NoError(t, reg.RemoveConnector(watcher, 1))

	// swap-with-last: the tail domain takes the vacated slot
	require.Equal(t, []entity.Domain{3, 2}, reg.Domains())
	require.Equal(t, []entity.Address{"conn-3", "conn-2"}, reg.Connectors())

	_, err = reg.ConnectorFor(1)
	require.ErrorIs(t, err, ErrUnsupportedDomain)

	// the moved domain's index is updated
	i, err := reg.DomainIndex(3)
	require.NoError(t, err)
	require.Equal(t, 0, i)

	// the freed connector address can be registered again
	require.NoError(t, reg.AddConnector(owner, 10, "conn-1"))
}

func TestRemoveConnector_UnknownDomain(t *testing.T) {
	reg := newTestRegistry(t)
	err := reg.RemoveConnector(watcher, 42)
	require.ErrorIs(t, err, ErrUnsupportedDomain)
}

func TestRemoveConnector_Hook(t *testing.T) {
	reg := newTestRegistry(t)
	require.NoError(t, reg.AddConnector(owner, 1, "conn-1"))

	var removed []entity.Domain
	reg.OnConnectorRemoved(func(d entity.Domain) {
		removed = append(removed, d)
	})

	require.NoError(t, reg.RemoveConnector(watcher, 1))
	require.Equal(t, []entity.Domain{1}, removed)
}

func TestDomainsHash(t *testing.T) {
	reg := newTestRegistry(t)
	require.NoError(t, reg.AddConnector(owner, 1, "conn-1"))
	require.NoError(t, reg.AddConnector(owner, 2, "conn-2"))

	require.Equal(t, HashDomains([]entity.Domain{1, 2}), reg.DomainsHash())

	// hash is order sensitive
	require.NotEqual(t, HashDomains([]entity.Domain{2, 1}), reg.DomainsHash())

	// removal reorders via swap-with-last, so the hash moves too
	require.NoError(t, reg.AddConnector(owner, 3, "conn-3"))
	require.NoError(t, reg.RemoveConnector(watcher, 1))
	require.Equal(t, HashDomains([]entity.Domain{3, 2}), reg.DomainsHash())
}

func TestProposers(t *testing.T) {
	reg := newTestRegistry(t)

	err := reg.AddProposer(watcher, "prop-1")
	require.ErrorIs(t, err, ErrNotOwner)

	require.NoError(t, reg.AddProposer(owner, "prop-1"))
	require.True(t, reg.IsProposer("prop-1"))
	require.False(t, reg.IsProposer("prop-2"))

	require.NoError(t, reg.RemoveProposer(owner, "prop-1"))
	require.False(t, reg.IsProposer("prop-1"))
}
