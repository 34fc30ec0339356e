// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/pathfinder/core"
)

const (
	methodComplete = "Complete"
	minCompleteN   = 1
)

// Complete returns a Constructor for K_n: every unordered pair of distinct
// vertices is linked exactly once, pairs visited in (i<j) lexicographic order.
//
// Errors: ErrTooFewVertices if n < 1.
// Complexity: O(n²).
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteN {
			return fmt.Errorf("%s: n=%d < %d: %w", methodComplete, n, minCompleteN, ErrTooFewVertices)
		}
		if err := addVertices(g, cfg, methodComplete, n, func(i int) core.Point {
			theta := 2 * math.Pi * float64(i) / float64(n)
			return core.Point{X: math.Cos(theta), Y: math.Sin(theta)}
		}); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := connect(g, cfg, methodComplete, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
