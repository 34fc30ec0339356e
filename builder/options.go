// SPDX-License-Identifier: MIT
//
// options.go — functional options and the resolved builder configuration.

package builder

import (
	"math"
	"math/rand"
	"strconv"
)

// defaultWeight is used for every edge when no RNG is configured.
const defaultWeight = 1.0

// builderConfig is the immutable configuration seen by constructors.
type builderConfig struct {
	rng      *rand.Rand
	idFn     func(int) string
	weightLo float64
	weightHi float64
	// scale multiplies generated coordinates.
	scale float64
}

// Option customizes constructor behavior by mutating a builderConfig.
type Option func(*builderConfig)

// newBuilderConfig resolves defaults, then applies opts left to right.
func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{
		idFn:     DefaultIDFn,
		weightLo: defaultWeight,
		weightHi: defaultWeight,
		scale:    1,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// weight draws the next edge weight. Without an RNG, or with a degenerate
// range, it returns weightLo.
func (c builderConfig) weight() float64 {
	if c.rng == nil || c.weightHi == c.weightLo {
		return c.weightLo
	}
	w := c.weightLo + c.rng.Float64()*(c.weightHi-c.weightLo)
	// One decimal place keeps fixtures readable in failure output.
	return math.Round(w*10) / 10
}

// WithSeed creates a deterministic RNG for stochastic constructors and weights.
func WithSeed(seed int64) Option {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithIDScheme sets the vertex ID generator idx -> string. Panics on nil.
func WithIDScheme(fn func(int) string) Option {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithWeightRange draws edge weights uniformly from [lo, hi] (rounded to 0.1)
// when an RNG is configured. Panics if lo < 0 or hi < lo.
func WithWeightRange(lo, hi float64) Option {
	if lo < 0 || hi < lo || math.IsNaN(lo) || math.IsNaN(hi) {
		panic("builder: WithWeightRange(lo<0 || hi<lo)")
	}
	return func(c *builderConfig) {
		c.weightLo, c.weightHi = lo, hi
	}
}

// WithScale multiplies generated coordinates. Panics if s <= 0.
func WithScale(s float64) Option {
	if s <= 0 {
		panic("builder: WithScale(s<=0)")
	}
	return func(c *builderConfig) {
		c.scale = s
	}
}

// DefaultIDFn returns the decimal string of idx, e.g. 0→"0", 42→"42".
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// SymbolIDFn returns "A".."Z" for idx in [0,25] and "V<idx>" beyond.
func SymbolIDFn(idx int) string {
	if idx >= 0 && idx < 26 {
		return string(rune('A' + idx))
	}

	return "V" + strconv.Itoa(idx)
}
