package db

import (
	stdErrors "errors"
	"fmt"

	"github.com/crossmesh/rootmanager/core/entity"
)

// ProcessedSet is the durable (domain, hash) replay guard behind
// ProcessFromRoot.
type ProcessedSet struct {
	repo Repository
}

func NewProcessedSet(repo Repository) *ProcessedSet {
	return &ProcessedSet{repo: repo}
}

func (p *ProcessedSet) Seen(domain entity.Domain, hash entity.Root) (bool, error) {
	_, err := p.repo.Get(processedKey(domain, hash))
	if err != nil {
		if stdErrors.Is(err, ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (p *ProcessedSet) Mark(domain entity.Domain, hash entity.Root) error {
	return p.repo.Put(processedKey(domain, hash), []byte{1})
}

func (p *ProcessedSet) Unmark(domain entity.Domain, hash entity.Root) error {
	return p.repo.Delete(processedKey(domain, hash))
}

func processedKey(domain entity.Domain, hash entity.Root) string {
	return fmt.Sprintf("processed/%d/%s", domain, hash.Hex())
}
