package seeder

import (
	"errors"
	"fmt"

	"github.com/Lumos-Labs-HQ/mockdata/internal/types"
)

var (
	ErrUnknownKeyDomain = errors.New("unknown key domain")
	ErrEmptyKeyDomain   = errors.New("empty key domain")
)

// KeyRegistry tracks the id range of every table generated so far, plus
// declared ranges for entities that have no table of their own.
// References drawn from it are best-effort: nothing checks that the
// referenced row exists.
type KeyRegistry struct {
	domains map[string]types.KeyDomain
}

func NewKeyRegistry() *KeyRegistry {
	return &KeyRegistry{
		domains: make(map[string]types.KeyDomain),
	}
}

func (r *KeyRegistry) Register(name string, domain types.KeyDomain) {
	r.domains[name] = domain
}

// RegisterTable records the 1..n key range of a finished table.
func (r *KeyRegistry) RegisterTable(table *types.Table) {
	r.Register(table.Name, types.KeyDomain{Min: 1, Max: table.Len()})
}

func (r *KeyRegistry) Domain(name string) (types.KeyDomain, bool) {
	d, ok := r.domains[name]
	return d, ok
}

// Pick draws a uniform id from the named domain.
func (r *KeyRegistry) Pick(g *DataGenerator, name string) (int, error) {
	d, ok := r.domains[name]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownKeyDomain, name)
	}
	if d.Size() == 0 {
		return 0, fmt.Errorf("%w: %s", ErrEmptyKeyDomain, name)
	}
	return g.IntRange(d.Min, d.Max), nil
}
