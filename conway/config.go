// SPDX-License-Identifier: MIT
// Package: polyhedra/conway
//
// config.go — internal configuration and deterministic defaults.
//
// Design:
//   • config is the single source of truth for all operator knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newConfig applies options in order (later overrides earlier).
//
// Deterministic defaults:
//   • apexDist        = 0.1   (Kis in Apply)
//   • chamferDist     = 0.05  (Chamfer in Apply)
//   • insetDist       = 0.3   (Inset and Loft in Apply)
//   • popoutDist      = -0.1  (Inset in Apply)
//   • extrudeDist     = 0.1   (Extrude)
//   • hollowInset     = 0.2   (Hollow in Apply)
//   • hollowThickness = 0.1   (Hollow in Apply)
//   • chunkSize       = 2048  (KisParallel)
//   • workers         = runtime.GOMAXPROCS(0)
//   • logger          = nil   (silent)
//   • onDegenerate    = nil
//   • ctx             = context.Background()

package conway

import (
	"context"
	"log"
	"runtime"

	"github.com/katalvlaran/polyhedra/flag"
)

// config aggregates all knobs used by operators.
// It is passed by VALUE (immutable to callers).
type config struct {
	apexDist        float64
	chamferDist     float64
	insetDist       float64
	popoutDist      float64
	extrudeDist     float64
	hollowInset     float64
	hollowThickness float64

	chunkSize int
	workers   int
	ctx       context.Context

	logger       *log.Logger
	onDegenerate func(flag.Warning)
}

const (
	defaultApexDist        = 0.1
	defaultChamferDist     = 0.05
	defaultInsetDist       = 0.3
	defaultPopoutDist      = -0.1
	defaultExtrudeDist     = 0.1
	defaultHollowInset     = 0.2
	defaultHollowThickness = 0.1
	defaultChunkSize       = 2048
)

// newConfig builds a config with deterministic defaults and applies opts in order.
// Complexity: O(len(opts)).
func newConfig(opts ...Option) config {
	cfg := config{
		apexDist:        defaultApexDist,
		chamferDist:     defaultChamferDist,
		insetDist:       defaultInsetDist,
		popoutDist:      defaultPopoutDist,
		extrudeDist:     defaultExtrudeDist,
		hollowInset:     defaultHollowInset,
		hollowThickness: defaultHollowThickness,
		chunkSize:       defaultChunkSize,
		workers:         runtime.GOMAXPROCS(0),
		ctx:             context.Background(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// logf writes to the configured logger, if any.
func (c config) logf(format string, args ...any) {
	if c.logger != nil {
		c.logger.Printf(format, args...)
	}
}

// report forwards degenerate-face warnings to the logger and the handler.
func (c config) report(method string, warnings []flag.Warning) {
	for _, w := range warnings {
		c.logf("%s: %v", method, w)
		if c.onDegenerate != nil {
			c.onDegenerate(w)
		}
	}
}
