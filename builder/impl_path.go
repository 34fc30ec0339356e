// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/pathfinder/core"
)

const (
	methodPath = "Path"
	minPathN   = 2
)

// Path returns a Constructor that lays n vertices along the X axis and links
// consecutive ones: 0–1–2–…–(n-1).
//
// Errors: ErrTooFewVertices if n < 2.
// Complexity: O(n).
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathN {
			return fmt.Errorf("%s: n=%d < %d: %w", methodPath, n, minPathN, ErrTooFewVertices)
		}
		if err := addVertices(g, cfg, methodPath, n, func(i int) core.Point {
			return core.Point{X: float64(i)}
		}); err != nil {
			return err
		}
		for i := 0; i < n-1; i++ {
			if err := connect(g, cfg, methodPath, i, i+1); err != nil {
				return err
			}
		}

		return nil
	}
}
