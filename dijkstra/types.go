// SPDX-License-Identifier: MIT

package dijkstra

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrEmptySource indicates that Dijkstra was called without a source vertex ID.
	ErrEmptySource = errors.New("dijkstra: source vertex ID is empty")

	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the source or target does not exist in the graph.
	ErrVertexNotFound = errors.New("dijkstra: vertex not found in graph")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative or NaN value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero, a negative value or NaN.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Frontier selects how the next vertex to finalize is found.
type Frontier int

const (
	// FrontierScan scans all unfinalized vertices for the minimum distance: O(V²).
	FrontierScan Frontier = iota

	// FrontierHeap keeps candidates in a binary min-heap: O((V + E) log V).
	FrontierHeap
)

// String implements fmt.Stringer.
func (f Frontier) String() string {
	switch f {
	case FrontierScan:
		return "scan"
	case FrontierHeap:
		return "heap"
	default:
		return fmt.Sprintf("Frontier(%d)", int(f))
	}
}

// ParseFrontier maps "scan" / "heap" to a Frontier.
func ParseFrontier(s string) (Frontier, error) {
	switch s {
	case "scan", "":
		return FrontierScan, nil
	case "heap":
		return FrontierHeap, nil
	default:
		return FrontierScan, fmt.Errorf("dijkstra: unknown frontier %q (want scan or heap)", s)
	}
}

// Options configures the behavior of the Dijkstra algorithm.
//
// Source           – starting vertex ID for Dijkstra (must be non-empty and present).
// ReturnPath       – if true, Dijkstra returns the predecessor map; otherwise prev is nil.
// MaxDistance      – vertices whose distance would exceed this cap are not explored.
// InfEdgeThreshold – edges with weight ≥ this threshold are treated as impassable.
// Frontier         – minimum-selection strategy.
type Options struct {
	Source           string
	ReturnPath       bool
	MaxDistance      float64
	InfEdgeThreshold float64
	Frontier         Frontier
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting vertex ID for Dijkstra.
func Source(id string) Option {
	return func(o *Options) {
		o.Source = id
	}
}

// WithReturnPath enables generation of the predecessor map in Dijkstra's result.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Vertices whose shortest distance would exceed this value are not explored,
// and a target beyond it is reported as unreachable.
// Panics with ErrBadMaxDistance on a negative or NaN value.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if max < 0 || math.IsNaN(max) {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a weight at or above which edges are
// considered closed roads and skipped entirely.
// Panics with ErrBadInfThreshold on zero, negative or NaN values.
func WithInfEdgeThreshold(threshold float64) Option {
	return func(o *Options) {
		if threshold <= 0 || math.IsNaN(threshold) {
			panic(ErrBadInfThreshold.Error())
		}
		o.InfEdgeThreshold = threshold
	}
}

// WithFrontier selects the minimum-selection strategy.
func WithFrontier(f Frontier) Option {
	return func(o *Options) {
		o.Frontier = f
	}
}

// DefaultOptions returns Options initialized with defaults for the given source.
//
// Defaults:
//   - ReturnPath:       false.
//   - MaxDistance:      +Inf (explore everything reachable).
//   - InfEdgeThreshold: +Inf (no closed roads).
//   - Frontier:         FrontierScan.
func DefaultOptions(source string) Options {
	return Options{
		Source:           source,
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
		Frontier:         FrontierScan,
	}
}

// Hop is one leg of a route.
type Hop struct {
	From     string
	To       string
	Distance float64
}

// Result is the answer to a source→target query. It is a value snapshot and
// shares no state with the graph or with other results.
type Result struct {
	Source string
	Target string

	// Path lists the vertices from Source to Target inclusive; empty when !Found.
	Path []string

	// Hops are the legs between consecutive Path entries with their edge weights.
	Hops []Hop

	// Distance is the total route cost; +Inf when !Found.
	Distance float64

	// Found reports whether Target is reachable from Source.
	Found bool
}

// notFound builds the canonical unreachable result.
func notFound(source, target string) Result {
	return Result{Source: source, Target: target, Distance: math.Inf(1)}
}
