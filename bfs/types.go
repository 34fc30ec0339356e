// SPDX-License-Identifier: MIT

package bfs

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrGraphNil is returned for a nil *core.Graph.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStartVertexNotFound is returned when the search origin is not a location.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrTargetVertexNotFound is returned by Path when the destination is not a location.
	ErrTargetVertexNotFound = errors.New("bfs: target vertex not found")

	// ErrOptionViolation reports an Option argument out of range.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNoPath is returned by PathTo and Path when the destination was not reached.
	ErrNoPath = errors.New("bfs: no path")
)

// Options controls a single search. Build it through Option values.
type Options struct {
	Ctx context.Context

	// OnVisit runs as each location is dequeued; a non-nil error ends the search.
	OnVisit func(id string, hops int) error

	// MaxDepth caps the hop count; 0 is unlimited.
	MaxDepth int

	// FilterNeighbor reports whether the road curr→next may be followed.
	FilterNeighbor func(curr, next string) bool

	err error
}

// Option mutates Options. Range errors are deferred until BFS runs.
type Option func(*Options)

// DefaultOptions: background context, unlimited depth, every road allowed.
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		OnVisit:        func(string, int) error { return nil },
		FilterNeighbor: func(string, string) bool { return true },
	}
}

// WithContext makes the search stop with ctx.Err() once ctx is done. nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs a visit callback. nil is ignored.
func WithOnVisit(fn func(id string, hops int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops expanding past d hops. Negative d yields ErrOptionViolation.
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: max depth %d", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor skips roads for which fn returns false. nil is ignored.
func WithFilterNeighbor(fn func(curr, next string) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// Result is the search tree rooted at Start.
type Result struct {
	Start string

	// Order lists locations in the sequence they were dequeued.
	Order []string

	// Depth maps every reached location to its hop count.
	Depth map[string]int

	// Parent maps every reached location except Start to its predecessor.
	Parent map[string]string
}

// PathTo walks Parent links back from dest and returns the route Start→dest.
func (r *Result) PathTo(dest string) ([]string, error) {
	hops, ok := r.Depth[dest]
	if !ok {
		return nil, fmt.Errorf("%w: %q not reached from %q", ErrNoPath, dest, r.Start)
	}
	path := make([]string, hops+1)
	cur := dest
	for i := hops; i >= 0; i-- {
		path[i] = cur
		cur = r.Parent[cur]
	}

	return path, nil
}
