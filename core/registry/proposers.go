package registry

import (
	"github.com/crossmesh/rootmanager/core/entity"
	"github.com/pkg/errors"
)

// AddProposer allowlists addr for optimistic-mode proposals. Owner only.
func (r *Registry) AddProposer(caller, addr entity.Address) error {
	if !r.auth.IsOwner(caller) {
		return errors.Wrapf(ErrNotOwner, "caller %s", caller)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.proposers[addr] = struct{}{}
	return nil
}

// RemoveProposer drops addr from the allowlist. Owner only.
func (r *Registry) RemoveProposer(caller, addr entity.Address) error {
	if !r.auth.IsOwner(caller) {
		return errors.Wrapf(ErrNotOwner, "caller %s", caller)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.proposers, addr)
	return nil
}

// IsProposer reports whether addr may submit proposals.
func (r *Registry) IsProposer(addr entity.Address) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.proposers[addr]
	return ok
}
