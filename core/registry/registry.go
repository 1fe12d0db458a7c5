// Package registry maintains the domain/connector bijection and the
// proposer allowlist used by the aggregation engine.
package registry

import (
	"crypto/sha256"
	"encoding/binary"
	"sync"

	"github.com/crossmesh/rootmanager/core/entity"
	"github.com/crossmesh/rootmanager/core/events"
	"github.com/pkg/errors"
)

var (
	ErrNotOwner          = errors.New("caller is not the owner")
	ErrNotWatcher        = errors.New("caller is not a watcher")
	ErrNullConnector     = errors.New("connector is the null address")
	ErrDomainExists      = errors.New("domain already has a connector")
	ErrConnectorExists   = errors.New("connector already serves a domain")
	ErrUnsupportedDomain = errors.New("unsupported domain")
)

// Auth answers role questions for a caller address. The owner gates
// structural changes; watchers gate the safety fallbacks.
//
//go:generate mockgen -destination=../../mocks/mock_auth.go -package=mocks . Auth
type Auth interface {
	IsOwner(addr entity.Address) bool
	IsWatcher(addr entity.Address) bool
}

// Registry holds the ordered domain list, the connector registered for
// each domain, and the proposer allowlist. Domains and connectors form a
// bijection: one connector per domain, one domain per connector.
type Registry struct {
	mu          sync.RWMutex
	auth        Auth
	bus         *events.Bus
	domains     []entity.Domain
	connectors  []entity.Address
	index       map[entity.Domain]int
	byConnector map[entity.Address]entity.Domain
	proposers   map[entity.Address]struct{}
	onRemove    func(entity.Domain)
}

func New(auth Auth, bus *events.Bus) *Registry {
	return &Registry{
		auth:        auth,
		bus:         bus,
		index:       make(map[entity.Domain]int),
		byConnector: make(map[entity.Address]entity.Domain),
		proposers:   make(map[entity.Address]struct{}),
	}
}

// OnConnectorRemoved registers a hook invoked after a domain is removed,
// while the registry lock is held. The engine uses it to clear an
// in-flight proposal whose domain set just became stale.
func (r *Registry) OnConnectorRemoved(fn func(entity.Domain)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.onRemove = fn
}

// AddConnector registers connector for domain. Owner only.
func (r *Registry) AddConnector(caller entity.Address, domain entity.Domain, connector entity.Address) error {
	if !r.auth.IsOwner(caller) {
		return errors.Wrapf(ErrNotOwner, "caller %s", caller)
	}
	if connector.IsZero() {
		return ErrNullConnector
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.index[domain]; ok {
		return errors.Wrapf(ErrDomainExists, "domain %d", domain)
	}
	if _, ok := r.byConnector[connector]; ok {
		return errors.Wrapf(ErrConnectorExists, "connector %s", connector)
	}

	r.index[domain] = len(r.domains)
	r.byConnector[connector] = domain
	r.domains = append(r.domains, domain)
	r.connectors = append(r.connectors, connector)

	r.bus.Publish(events.ConnectorAdded{
		Domain:     domain,
		Connector:  connector,
		Domains:    r.domainsLocked(),
		Connectors: r.connectorsLocked(),
	})
	return nil
}

// RemoveConnector drops the domain and its connector. Watcher only.
// Removal is swap-with-last, so the order of remaining domains changes
// for the element that was moved; DomainsHash reflects that.
func (r *Registry) RemoveConnector(caller entity.Address, domain entity.Domain) error {
	if !r.auth.IsWatcher(caller) {
		return errors.Wrapf(ErrNotWatcher, "caller %s", caller)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[domain]
	if !ok {
		return errors.Wrapf(ErrUnsupportedDomain, "domain %d", domain)
	}

	connector := r.connectors[i]
	last := len(r.domains) - 1
	if i != last {
		r.domains[i] = r.domains[last]
		r.connectors[i] = r.connectors[last]
		r.index[r.domains[i]] = i
	}
	r.domains = r.domains[:last]
	r.connectors = r.connectors[:last]
	delete(r.index, domain)
	delete(r.byConnector, connector)

	if r.onRemove != nil {
		r.onRemove(domain)
	}

	r.bus.Publish(events.ConnectorRemoved{
		Domain:     domain,
		Connector:  connector,
		Domains:    r.domainsLocked(),
		Connectors: r.connectorsLocked(),
		Caller:     caller,
	})
	return nil
}

// DomainIndex returns the position of domain in the ordered list.
func (r *Registry) DomainIndex(domain entity.Domain) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.index[domain]
	if !ok {
		return 0, errors.Wrapf(ErrUnsupportedDomain, "domain %d", domain)
	}
	return i, nil
}

// ConnectorFor returns the connector registered for domain.
func (r *Registry) ConnectorFor(domain entity.Domain) (entity.Address, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.index[domain]
	if !ok {
		return "", errors.Wrapf(ErrUnsupportedDomain, "domain %d", domain)
	}
	return r.connectors[i], nil
}

// Domains returns a copy of the ordered domain list.
func (r *Registry) Domains() []entity.Domain {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.domainsLocked()
}

// Connectors returns a copy of the connector list, ordered as Domains.
func (r *Registry) Connectors() []entity.Address {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.connectorsLocked()
}

// DomainsHash is a content hash over the ordered domain list. Proposals
// carry the domain set they were computed for; comparing hashes rejects a
// proposal built against yesterday's set.
func (r *Registry) DomainsHash() entity.Root {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return HashDomains(r.domains)
}

// HashDomains hashes an arbitrary ordered domain list the same way
// DomainsHash hashes the registered one.
func HashDomains(domains []entity.Domain) entity.Root {
	h := sha256.New()
	var buf [4]byte
	for _, d := range domains {
		binary.BigEndian.PutUint32(buf[:], uint32(d))
		h.Write(buf[:])
	}
	var root entity.Root
	copy(root[:], h.Sum(nil))
	return root
}

func (r *Registry) domainsLocked() []entity.Domain {
	out := make([]entity.Domain, len(r.domains))
	copy(out, r.domains)
	return out
}

func (r *Registry) connectorsLocked() []entity.Address {
	out := make([]entity.Address, len(r.connectors))
	copy(out, r.connectors)
	return out
}
