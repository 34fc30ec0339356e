// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/pathfinder/core"
)

const (
	methodCycle = "Cycle"
	minCycleN   = 3
)

// Cycle returns a Constructor that places n vertices on a circle and links
// them into a ring: 0–1–…–(n-1)–0.
//
// Errors: ErrTooFewVertices if n < 3.
// Complexity: O(n).
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleN {
			return fmt.Errorf("%s: n=%d < %d: %w", methodCycle, n, minCycleN, ErrTooFewVertices)
		}
		if err := addVertices(g, cfg, methodCycle, n, func(i int) core.Point {
			theta := 2 * math.Pi * float64(i) / float64(n)
			return core.Point{X: math.Cos(theta), Y: math.Sin(theta)}
		}); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := connect(g, cfg, methodCycle, i, (i+1)%n); err != nil {
				return err
			}
		}

		return nil
	}
}
