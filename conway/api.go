// SPDX-License-Identifier: MIT
// Package: polyhedra/conway
//
// api.go — shared entry checks and flag resolution for every operator.
//
// Design contract (strict):
//   - Operators never mutate their input; each builds a fresh flag.Flag and
//     resolves it into a new Polyhedron named prefix + input name.
//   - Input checks run first: nil → ErrNilPolyhedron, no faces →
//     ErrEmptyPolyhedron, a face with fewer than 3 vertices →
//     polyhedron.ErrFaceTooSmall. Face indices are trusted (see
//     Polyhedron.Validate).
//   - Resolution errors are wrapped "<Method>: %w"; degenerate-face warnings
//     go to the configured logger and handler, never to the error path.

package conway

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/polyhedra/flag"
	"github.com/katalvlaran/polyhedra/polyhedron"
)

// Method tags used in error wrapping and log lines.
const (
	MethodKis         = "Kis"
	MethodKisParallel = "KisParallel"
	MethodAmbo        = "Ambo"
	MethodGyro        = "Gyro"
	MethodPropellor   = "Propellor"
	MethodReflect     = "Reflect"
	MethodDual        = "Dual"
	MethodChamfer     = "Chamfer"
	MethodWhirl       = "Whirl"
	MethodQuinto      = "Quinto"
	MethodInset       = "Inset"
	MethodExtrude     = "Extrude"
	MethodLoft        = "Loft"
	MethodHollow      = "Hollow"
	MethodPerspectiva = "Perspectiva"
	MethodApply       = "Apply"
	MethodParse       = "Parse"
)

// checkInput rejects inputs no operator can walk.
func checkInput(method string, p *polyhedron.Polyhedron) error {
	if p == nil {
		return fmt.Errorf("%s: %w", method, ErrNilPolyhedron)
	}
	if len(p.Faces) == 0 {
		return fmt.Errorf("%s: %q: %w", method, p.Name, ErrEmptyPolyhedron)
	}
	for i, face := range p.Faces {
		if len(face) < 3 {
			return fmt.Errorf("%s: face %d: %w", method, i, polyhedron.ErrFaceTooSmall)
		}
	}
	return nil
}

// checkN validates a face-size filter (0 means every face).
func checkN(method string, n int) error {
	if n < 0 {
		return fmt.Errorf("%s: n=%d: %w", method, n, ErrNegativeN)
	}
	return nil
}

// build resolves f into a Polyhedron and reports its warnings.
func build(method, name string, f *flag.Flag, cfg config) (*polyhedron.Polyhedron, error) {
	m, err := f.Resolve()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	cfg.report(method, m.Warnings)
	return &polyhedron.Polyhedron{Name: name, Vertices: m.Vertices, Faces: m.Faces}, nil
}

// prefixN renders an operator prefix with its optional side filter: "k", "k4".
func prefixN(prefix string, n int) string {
	if n == 0 {
		return prefix
	}
	return prefix + strconv.Itoa(n)
}

// noMatch logs that an n-filtered operator left every face untouched.
func noMatch(cfg config, method string, n int) {
	cfg.logf("%s: %v", method, fmt.Errorf("n=%d: %w", n, ErrNoMatchingFaces))
}
