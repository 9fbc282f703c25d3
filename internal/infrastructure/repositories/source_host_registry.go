package repositories

import (
	"fmt"
	"sort"

	"github.com/rios0rios0/corrigir/internal/domain/entities"
	domainRepos "github.com/rios0rios0/corrigir/internal/domain/repositories"
)

// SourceHostRegistry maps each HostKind to the client that serves it.
type SourceHostRegistry struct {
	hosts map[entities.HostKind]domainRepos.SourceHostRepository
}

// NewSourceHostRegistry creates an empty source-host registry.
func NewSourceHostRegistry() *SourceHostRegistry {
	return &SourceHostRegistry{
		hosts: make(map[entities.HostKind]domainRepos.SourceHostRepository),
	}
}

// Register adds a source host under its kind, replacing any previous one.
func (r *SourceHostRegistry) Register(host domainRepos.SourceHostRepository) {
	r.hosts[host.Kind()] = host
}

// Get returns the source host for the given kind.
func (r *SourceHostRegistry) Get(kind entities.HostKind) (domainRepos.SourceHostRepository, error) {
	host, ok := r.hosts[kind]
	if !ok {
		return nil, fmt.Errorf("%w: no source host registered for %q", entities.ErrInvalidReference, kind)
	}
	return host, nil
}

// Kinds returns the registered host kinds, sorted.
func (r *SourceHostRegistry) Kinds() []entities.HostKind {
	kinds := make([]entities.HostKind, 0, len(r.hosts))
	for kind := range r.hosts {
		kinds = append(kinds, kind)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}
