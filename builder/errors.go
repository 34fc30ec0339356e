// SPDX-License-Identifier: MIT
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   - Only sentinel variables are exposed; callers branch with errors.Is.
//   - Implementations attach context with %w via wrapf.

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewVertices indicates that a size parameter (n, rows, cols) is below
// the constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a constructor could not be applied (nil
// constructor, or a core mutation failed).
var ErrConstructFailed = errors.New("builder: construction failed")

// wrapf attaches method and step context to err, keeping it matchable with errors.Is.
func wrapf(method, step string, err error) error {
	return fmt.Errorf("%s: %s: %w", method, step, err)
}
