// SPDX-License-Identifier: MIT
//
// network.go — Network model, validation and graph construction.

package network

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/pathfinder/core"
)

// ErrInvalidNetwork is returned for documents or values that do not describe
// a usable network: syntax errors, duplicate locations, roads to undeclared
// locations, negative or non-finite lengths.
var ErrInvalidNetwork = errors.New("network: invalid network")

// Location is a named point on the map.
type Location struct {
	Name string
	X, Y float64
}

// Road is a two-way connection between two locations, Km long.
type Road struct {
	From string
	To   string
	Km   float64
}

// Network is an ordered set of locations and the roads between them.
// Location order is the registration order of the resulting graph and
// therefore decides ties between equally short routes.
type Network struct {
	Name      string
	Locations []Location
	Roads     []Road
}

// Validate checks structural consistency without building a graph.
func (n *Network) Validate() error {
	if n == nil {
		return fmt.Errorf("%w: nil network", ErrInvalidNetwork)
	}
	if n.Name == "" {
		return fmt.Errorf("%w: network has no name", ErrInvalidNetwork)
	}
	seen := make(map[string]struct{}, len(n.Locations))
	for i, loc := range n.Locations {
		if loc.Name == "" {
			return fmt.Errorf("%w: location #%d has no name", ErrInvalidNetwork, i)
		}
		if _, dup := seen[loc.Name]; dup {
			return fmt.Errorf("%w: duplicate location %q", ErrInvalidNetwork, loc.Name)
		}
		seen[loc.Name] = struct{}{}
	}
	for i, r := range n.Roads {
		for _, end := range [2]string{r.From, r.To} {
			if _, ok := seen[end]; !ok {
				return fmt.Errorf("%w: road #%d (%s–%s): unknown location %q", ErrInvalidNetwork, i, r.From, r.To, end)
			}
		}
		if r.Km < 0 || math.IsNaN(r.Km) || math.IsInf(r.Km, 0) {
			return fmt.Errorf("%w: road #%d (%s–%s): length %v", ErrInvalidNetwork, i, r.From, r.To, r.Km)
		}
	}

	return nil
}

// Graph registers every location, then every road, on a fresh core.Graph.
// Core errors are returned unchanged (wrapped with the offending road), so
// callers can match core.ErrUnknownVertex or core.ErrInvalidWeight.
func (n *Network) Graph() (*core.Graph, error) {
	if n == nil {
		return nil, fmt.Errorf("%w: nil network", ErrInvalidNetwork)
	}
	g := core.NewGraph()
	for _, loc := range n.Locations {
		if err := g.AddVertex(loc.Name, core.Point{X: loc.X, Y: loc.Y}); err != nil {
			return nil, fmt.Errorf("network %q: location %q: %w", n.Name, loc.Name, err)
		}
	}
	for _, r := range n.Roads {
		if _, err := g.AddEdge(r.From, r.To, r.Km); err != nil {
			return nil, fmt.Errorf("network %q: road %s–%s: %w", n.Name, r.From, r.To, err)
		}
	}

	return g, nil
}

// Location returns the location called name.
func (n *Network) Location(name string) (Location, bool) {
	for _, loc := range n.Locations {
		if loc.Name == name {
			return loc, true
		}
	}

	return Location{}, false
}

// FromGraph captures g's current vertices and edges as a Network.
func FromGraph(name string, g *core.Graph) *Network {
	vs := g.VertexList()
	es := g.Edges()
	n := &Network{
		Name:      name,
		Locations: make([]Location, 0, len(vs)),
		Roads:     make([]Road, 0, len(es)),
	}
	for _, v := range vs {
		n.Locations = append(n.Locations, Location{Name: v.ID, X: v.At.X, Y: v.At.Y})
	}
	for _, e := range es {
		n.Roads = append(n.Roads, Road{From: e.From, To: e.To, Km: e.Weight})
	}

	return n
}
