// SPDX-License-Identifier: MIT

// Package planner serves route queries over a replaceable delivery network.
//
// Concurrency: any number of Find calls may run while Reload swaps the
// network. A query sees either the old or the new network, never a mix.
package planner

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/pathfinder/bfs"
	"github.com/katalvlaran/pathfinder/core"
	"github.com/katalvlaran/pathfinder/dijkstra"
	"github.com/katalvlaran/pathfinder/internal/logging"
	"github.com/katalvlaran/pathfinder/network"
)

// ErrUnknownLocation is returned by Find for a location the network lacks.
// It also matches dijkstra.ErrVertexNotFound.
var ErrUnknownLocation = errors.New("planner: unknown location")

// Planner owns the current network and its graph.
type Planner struct {
	mu       sync.RWMutex
	net      *network.Network
	graph    *core.Graph
	islands  [][]string
	loadedAt time.Time

	frontier dijkstra.Frontier
	now      func() time.Time
}

// Option configures a Planner.
type Option func(*Planner)

// WithFrontier selects the frontier strategy for every query.
func WithFrontier(f dijkstra.Frontier) Option {
	return func(p *Planner) {
		p.frontier = f
	}
}

// New builds a planner over n.
func New(ctx context.Context, n *network.Network, opts ...Option) (*Planner, error) {
	p := &Planner{frontier: dijkstra.FrontierScan, now: time.Now}
	for _, opt := range opts {
		opt(p)
	}
	if err := p.Reload(ctx, n); err != nil {
		return nil, err
	}

	return p, nil
}

// Reload validates n, builds its graph and swaps it in. On error the
// previous network stays active.
func (p *Planner) Reload(ctx context.Context, n *network.Network) error {
	logger := logging.FromContext(ctx)
	if err := n.Validate(); err != nil {
		return fmt.Errorf("planner: reload: %w", err)
	}
	g, err := n.Graph()
	if err != nil {
		return fmt.Errorf("planner: reload: %w", err)
	}
	islands := network.Components(g)

	p.mu.Lock()
	p.net, p.graph = n, g
	p.islands = islands
	p.loadedAt = p.now()
	p.mu.Unlock()

	st := g.Stats()
	logger.Info("network loaded",
		"network", n.Name,
		"locations", st.VertexCount,
		"roads", st.EdgeCount,
		"frontier", p.frontier.String(),
	)
	if len(islands) > 1 {
		logger.Warn("network is disconnected; some routes will not be found",
			"network", n.Name, "components", len(islands))
	}

	return nil
}

// Find returns the shortest route between two named locations.
// An unreachable destination is a successful query with Found=false.
func (p *Planner) Find(ctx context.Context, from, to string) (dijkstra.Result, error) {
	if err := ctx.Err(); err != nil {
		return dijkstra.Result{}, err
	}

	p.mu.RLock()
	g, name := p.graph, p.net.Name
	p.mu.RUnlock()

	qid := uuid.NewString()
	logger := logging.FromContext(ctx).With(logging.QueryIDKey, qid)
	start := time.Now()

	res, err := dijkstra.ShortestPath(g, from, to, dijkstra.WithFrontier(p.frontier))
	if err != nil {
		logger.Debug("route query rejected", "from", from, "to", to, "error", err)
		if errors.Is(err, dijkstra.ErrVertexNotFound) {
			return dijkstra.Result{}, fmt.Errorf("%w: %w", ErrUnknownLocation, err)
		}
		return dijkstra.Result{}, err
	}

	logger.Debug("route query",
		"network", name,
		"from", from,
		"to", to,
		"found", res.Found,
		"km", res.Distance,
		"stops", len(res.Path),
		"elapsed", time.Since(start),
	)

	return res, nil
}

// FewestStops returns the route with the fewest intermediate stops, ignoring
// road lengths. found is false when the destination is unreachable.
func (p *Planner) FewestStops(ctx context.Context, from, to string) (stops []string, found bool, err error) {
	p.mu.RLock()
	g := p.graph
	p.mu.RUnlock()

	logger := logging.FromContext(ctx).With(logging.QueryIDKey, uuid.NewString())
	stops, err = bfs.Path(g, from, to, bfs.WithContext(ctx))
	switch {
	case errors.Is(err, bfs.ErrNoPath):
		logger.Debug("stops query", "from", from, "to", to, "found", false)
		return nil, false, nil
	case errors.Is(err, bfs.ErrStartVertexNotFound), errors.Is(err, bfs.ErrTargetVertexNotFound):
		return nil, false, fmt.Errorf("%w: %w", ErrUnknownLocation, err)
	case err != nil:
		return nil, false, err
	}
	logger.Debug("stops query", "from", from, "to", to, "found", true, "hops", len(stops)-1)

	return stops, true, nil
}

// Network returns the active network. Callers must not modify it.
func (p *Planner) Network() *network.Network {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.net
}

// Locations returns a copy of the active network's locations in order.
func (p *Planner) Locations() []network.Location {
	p.mu.RLock()
	defer p.mu.RUnlock()
	out := make([]network.Location, len(p.net.Locations))
	copy(out, p.net.Locations)

	return out
}

// Has reports whether name is a location of the active network.
func (p *Planner) Has(name string) bool {
	p.mu.RLock()
	g := p.graph
	p.mu.RUnlock()

	return g.HasVertex(name)
}

// Islands returns the connected components of the active network, largest first.
func (p *Planner) Islands() [][]string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.islands
}

// Status summarizes the active network.
type Status struct {
	Network   string
	Stats     core.GraphStats
	LoadedAt  time.Time
	Frontier  dijkstra.Frontier
	Connected bool
}

// Status reports the active network's size and shape.
func (p *Planner) Status() Status {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return Status{
		Network:   p.net.Name,
		Stats:     p.graph.Stats(),
		LoadedAt:  p.loadedAt,
		Frontier:  p.frontier,
		Connected: len(p.islands) <= 1,
	}
}
