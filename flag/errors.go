// SPDX-License-Identifier: MIT
// Package: polyhedra/flag
//
// errors.go — sentinel errors for the flag package.
//
// Error policy:
//   • Only sentinels are exposed; callers branch with errors.Is.
//   • Context (the offending key) is attached with %w at the failure site.
//   • Unclosable face chains are NOT errors; they surface as Warning values.

package flag

import "errors"

// ErrKeyNotFound indicates that a face referenced a vertex key that was never
// declared with AddVertex. Resolve fails fast on it.
var ErrKeyNotFound = errors.New("flag: vertex key not declared")

// ErrShortFace indicates an explicit face with fewer than 3 keys.
var ErrShortFace = errors.New("flag: face has fewer than 3 keys")

// ErrResolved indicates a Flag was used after Resolve consumed it.
var ErrResolved = errors.New("flag: already resolved")
