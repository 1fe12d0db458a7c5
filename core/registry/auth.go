package registry

import "github.com/crossmesh/rootmanager/core/entity"

// StaticAuth is the config-driven authorization oracle: one owner and a
// fixed watcher set.
type StaticAuth struct {
	Owner    entity.Address
	Watchers map[entity.Address]struct{}
}

func NewStaticAuth(owner entity.Address, watchers []entity.Address) *StaticAuth {
	set := make(map[entity.Address]struct{}, len(watchers))
	for _, w := range watchers {
		set[w] = struct{}{}
	}
	return &StaticAuth{Owner: owner, Watchers: set}
}

func (a *StaticAuth) IsOwner(addr entity.Address) bool {
	return !addr.IsZero() && addr == a.Owner
}

func (a *StaticAuth) IsWatcher(addr entity.Address) bool {
	_, ok := a.Watchers[addr]
	return ok
}
