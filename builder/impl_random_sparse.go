// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/pathfinder/core"
)

const (
	methodRandomSparse = "RandomSparse"
	minRandomSparseN   = 1
)

// RandomSparse returns a Constructor for an Erdős–Rényi G(n, p) road graph.
// Each unordered pair (i<j) is linked independently with probability p.
// Vertices are scattered uniformly in the unit square.
//
// Determinism: all randomness comes from cfg.rng, consumed in a fixed order
// (coordinates first, then pair trials in lexicographic order, one weight draw
// right after each accepted trial).
//
// Errors:
//   - ErrTooFewVertices if n < 1.
//   - ErrInvalidProbability if p ∉ [0,1].
//   - ErrNeedRandSource if no RNG is configured.
//
// Complexity: O(n²).
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomSparseN {
			return fmt.Errorf("%s: n=%d < %d: %w", methodRandomSparse, n, minRandomSparseN, ErrTooFewVertices)
		}
		if !(p >= 0 && p <= 1) {
			return fmt.Errorf("%s: p=%g: %w", methodRandomSparse, p, ErrInvalidProbability)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		if err := addVertices(g, cfg, methodRandomSparse, n, func(int) core.Point {
			return core.Point{X: cfg.rng.Float64(), Y: cfg.rng.Float64()}
		}); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if cfg.rng.Float64() >= p {
					continue
				}
				if err := connect(g, cfg, methodRandomSparse, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
