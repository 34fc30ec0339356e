// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/pathfinder/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// GridID names the grid cell at (row, col) as "r,c".
func GridID(row, col int) string {
	return fmt.Sprintf("%d,%d", row, col)
}

// Grid returns a Constructor for a rows×cols 4-neighborhood street grid.
// Vertex IDs are "r,c" (GridID) and coordinates are (X=c, Y=r); the ID scheme
// option does not apply.
//
// Edges are added row-major: for each cell, first the east link then the
// south link.
//
// Errors: ErrTooFewVertices if rows < 1 or cols < 1.
// Complexity: O(rows·cols).
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (min %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				p := core.Point{X: float64(c) * cfg.scale, Y: float64(r) * cfg.scale}
				if err := g.AddVertex(GridID(r, c), p); err != nil {
					return wrapf(methodGrid, "AddVertex("+GridID(r, c)+")", err)
				}
			}
		}

		link := func(a, b string) error {
			w := cfg.weight()
			if _, err := g.AddEdge(a, b, w); err != nil {
				return wrapf(methodGrid, fmt.Sprintf("AddEdge(%s–%s, w=%g)", a, b, w), err)
			}
			return nil
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					if err := link(GridID(r, c), GridID(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := link(GridID(r, c), GridID(r+1, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
