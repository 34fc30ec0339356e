// SPDX-License-Identifier: MIT

package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/pathfinder/core"
)

// errStop ends a Path search once the destination is visited.
var errStop = errors.New("bfs: stop")

// walker encapsulates mutable BFS state over one snapshot.
type walker struct {
	snap  *core.Snapshot
	opts  Options
	ctx   context.Context
	queue []int
	depth []int // -1 until enqueued
	res   *Result
}

// BFS runs breadth-first search on g from startID.
// Returns ErrGraphNil, ErrOptionViolation or ErrStartVertexNotFound for
// invalid input, the context error on cancellation, or an OnVisit error
// wrapped with the vertex ID.
func BFS(g *core.Graph, startID string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	snap := g.Snapshot()
	start, ok := snap.Index(startID)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, startID)
	}

	n := snap.Len()
	w := &walker{
		snap:  snap,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]int, 0, n),
		depth: make([]int, n),
		res: &Result{
			Start:  startID,
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}
	for i := range w.depth {
		w.depth[i] = -1
	}

	w.enqueue(start, 0, -1)
	return w.res, w.loop()
}

// Path returns the fewest-hop route from -> to, stopping as soon as to is visited.
// ErrNoPath reports an unreachable destination. Path installs its own OnVisit
// hook, so a WithOnVisit among opts has no effect.
func Path(g *core.Graph, from, to string, opts ...Option) ([]string, error) {
	if g != nil && !g.HasVertex(to) {
		return nil, fmt.Errorf("%w: %q", ErrTargetVertexNotFound, to)
	}
	stop := WithOnVisit(func(id string, _ int) error {
		if id == to {
			return errStop
		}
		return nil
	})
	res, err := BFS(g, from, append(opts[:len(opts):len(opts)], stop)...)
	if err != nil && !errors.Is(err, errStop) {
		return nil, err
	}

	return res.PathTo(to)
}

func (w *walker) enqueue(v, d, parent int) {
	w.depth[v] = d
	id := w.snap.ID(v)
	w.res.Depth[id] = d
	if parent >= 0 {
		w.res.Parent[id] = w.snap.ID(parent)
	}
	w.queue = append(w.queue, v)
}

func (w *walker) loop() error {
	for len(w.queue) > 0 {
		if err := w.ctx.Err(); err != nil {
			return err
		}
		u := w.queue[0]
		w.queue = w.queue[1:]

		id := w.snap.ID(u)
		w.res.Order = append(w.res.Order, id)
		if err := w.opts.OnVisit(id, w.depth[u]); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %q: %w", id, err)
		}

		next := w.depth[u] + 1
		if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
			continue
		}
		for _, a := range w.snap.Arcs(u) {
			if w.depth[a.To] >= 0 {
				continue
			}
			if !w.opts.FilterNeighbor(id, w.snap.ID(a.To)) {
				continue
			}
			w.enqueue(a.To, next, u)
		}
	}

	return nil
}
