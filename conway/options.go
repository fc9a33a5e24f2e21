// SPDX-License-Identifier: MIT
// Package: polyhedra/conway
//
// options.go — functional options for operators and Apply.
//
// Contract (strict):
//   • Option constructors VALIDATE and PANIC on meaningless inputs
//     (nil logger, non-positive worker count, non-finite distances).
//     Operators themselves never panic on well-formed input.
//   • Distance options set the defaults Apply uses; an operator called
//     directly with explicit parameters ignores them. Extrude has no distance
//     parameter and always reads WithExtrudeDist.

package conway

import (
	"context"
	"log"
	"math"

	"github.com/katalvlaran/polyhedra/flag"
)

// Option customizes an operator call by mutating its config before it runs.
type Option func(*config)

func mustFinite(name string, v float64) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		panic("conway: " + name + "(non-finite)")
	}
}

// WithApexDist sets the kis apex height used by Apply.
func WithApexDist(d float64) Option {
	mustFinite("WithApexDist", d)
	return func(c *config) { c.apexDist = d }
}

// WithChamferDist sets the chamfer distance used by Apply.
func WithChamferDist(d float64) Option {
	mustFinite("WithChamferDist", d)
	return func(c *config) { c.chamferDist = d }
}

// WithInsetDist sets the inset (and loft) fraction used by Apply.
func WithInsetDist(d float64) Option {
	mustFinite("WithInsetDist", d)
	return func(c *config) { c.insetDist = d }
}

// WithPopoutDist sets the inset pop-out distance used by Apply.
func WithPopoutDist(d float64) Option {
	mustFinite("WithPopoutDist", d)
	return func(c *config) { c.popoutDist = d }
}

// WithExtrudeDist sets how far Extrude pushes faces out along their normal.
func WithExtrudeDist(d float64) Option {
	mustFinite("WithExtrudeDist", d)
	return func(c *config) { c.extrudeDist = d }
}

// WithHollow sets the hollow inset fraction and wall thickness used by Apply.
func WithHollow(inset, thickness float64) Option {
	mustFinite("WithHollow", inset)
	mustFinite("WithHollow", thickness)
	return func(c *config) {
		c.hollowInset = inset
		c.hollowThickness = thickness
	}
}

// WithChunkSize sets how many faces each KisParallel worker handles.
// Panics if n <= 0.
func WithChunkSize(n int) Option {
	if n <= 0 {
		panic("conway: WithChunkSize(n<=0)")
	}
	return func(c *config) { c.chunkSize = n }
}

// WithWorkers bounds the number of concurrent KisParallel chunks.
// Panics if n <= 0.
func WithWorkers(n int) Option {
	if n <= 0 {
		panic("conway: WithWorkers(n<=0)")
	}
	return func(c *config) { c.workers = n }
}

// WithContext lets KisParallel stop scheduling chunks once ctx is done.
// Panics on nil.
func WithContext(ctx context.Context) Option {
	if ctx == nil {
		panic("conway: WithContext(nil)")
	}
	return func(c *config) { c.ctx = ctx }
}

// WithLogger enables diagnostics: degenerate faces, empty n-filters, chunk plans.
// Panics on nil; omit the option to stay silent.
func WithLogger(l *log.Logger) Option {
	if l == nil {
		panic("conway: WithLogger(nil)")
	}
	return func(c *config) { c.logger = l }
}

// WithDegenerateHandler receives every face the resolver had to replace with
// a placeholder. Panics on nil.
func WithDegenerateHandler(fn func(flag.Warning)) Option {
	if fn == nil {
		panic("conway: WithDegenerateHandler(nil)")
	}
	return func(c *config) { c.onDegenerate = fn }
}
