// SPDX-License-Identifier: MIT
//
// api.go — thin public entry-point for the builder package.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pathfinder/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate parameters early and return sentinel
// errors; they must not panic.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph, resolves the builder configuration from
// opts, and applies all constructors in order. Any constructor error is wrapped
// with "BuildGraph: %w" and returned immediately.
//
// Complexity:
//   - Resolving options: O(len(opts)).
//   - Applying K constructors: Σ cost of each constructor.
func BuildGraph(opts []Option, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph()
	cfg := newBuilderConfig(opts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// addVertices registers n vertices named by cfg.idFn with coordinates from at.
func addVertices(g *core.Graph, cfg builderConfig, method string, n int, at func(i int) core.Point) error {
	for i := 0; i < n; i++ {
		id := cfg.idFn(i)
		p := at(i)
		p.X *= cfg.scale
		p.Y *= cfg.scale
		if err := g.AddVertex(id, p); err != nil {
			return wrapf(method, fmt.Sprintf("AddVertex(%s)", id), err)
		}
	}

	return nil
}

// connect adds one edge between the i-th and j-th generated vertices.
func connect(g *core.Graph, cfg builderConfig, method string, i, j int) error {
	u, v := cfg.idFn(i), cfg.idFn(j)
	w := cfg.weight()
	if _, err := g.AddEdge(u, v, w); err != nil {
		return wrapf(method, fmt.Sprintf("AddEdge(%s–%s, w=%g)", u, v, w), err)
	}

	return nil
}
