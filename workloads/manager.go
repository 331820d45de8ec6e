// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package workloads

import (
	"errors"
	"fmt"
	"math/rand"
	"slices"
	"sort"
	"time"

	"github.com/patrickmn/go-cache"
)

var ErrUnknownWorkload = errors.New("unknown workload")

const (
	// Generated inputs are kept long enough to cover every round of a run
	workloadCacheExpiration = 10 * time.Minute
	// Clean up expired entries every minute
	workloadCacheCleanup = time.Minute
)

// Manager keeps the registered generators and memoizes their output
type Manager struct {
	generators []Generator
	cache      *cache.Cache
}

// NewManager creates a manager with all built-in generators
func NewManager() *Manager {
	manager := &Manager{
		cache: cache.New(workloadCacheExpiration, workloadCacheCleanup),
	}

	manager.Register(NewRandomGenerator())
	manager.Register(NewSmallRangeGenerator())
	manager.Register(&SortedGenerator{})
	manager.Register(&ReverseGenerator{})
	manager.Register(&UniqueGenerator{})

	return manager
}

// Register adds a generator, replacing any generator with the same name
func (m *Manager) Register(g Generator) {
	m.generators = slices.DeleteFunc(m.generators, func(old Generator) bool {
		return old.Name() == g.Name()
	})
	m.generators = append(m.generators, g)
	sort.SliceStable(m.generators, func(i, j int) bool {
		return m.generators[i].Priority() < m.generators[j].Priority()
	})
}

// Get looks a generator up by name
func (m *Manager) Get(name string) (Generator, error) {
	for _, g := range m.generators {
		if g.Name() == name {
			return g, nil
		}
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownWorkload, name)
}

// Names lists the registered generators in priority order
func (m *Manager) Names() []string {
	names := make([]string, len(m.generators))
	for i, g := range m.generators {
		names[i] = g.Name()
	}
	return names
}

// Workload returns n values from the named generator seeded with seed.
// Identical requests get identical input, served from the cache.
func (m *Manager) Workload(name string, n int, seed int64) ([]int, error) {
	if n < 0 {
		return nil, fmt.Errorf("workload %q: negative size %d", name, n)
	}
	g, err := m.Get(name)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("%s:%d:%d", name, n, seed)
	if cached, ok := m.cache.Get(key); ok {
		return slices.Clone(cached.([]int)), nil
	}

	values := g.Generate(n, rand.New(rand.NewSource(seed)))
	m.cache.Set(key, values, workloadCacheExpiration)
	return slices.Clone(values), nil
}

// Cached reports how many generated inputs are currently memoized
func (m *Manager) Cached() int {
	return m.cache.ItemCount()
}
