// SPDX-License-Identifier: MIT
// Package: polyhedra/conway
//
// notation.go — Conway recipe strings: Parse, Recipe.String and Apply.
//
// Grammar (read right to left when applying):
//
//	recipe := { op } seed
//	op     := 'a' | 'd' | 'g' | 'p' | 'r' | 'c' | 'w' | 'q' | 'H' | 'P'
//	        | ('k' | 'n' | 'x' | 'l') [ number ]
//	seed   := 'T' | 'C' | 'O' | 'D' | 'I'
//	        | ('Y' | 'R' | 'A' | 'U' | 'V') number
//	number := '1'..'9' { '0'..'9' }
//
// Every operator prefixes its own letter to the input name, so the name of an
// applied recipe is the recipe string itself.

package conway

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/polyhedra/polyhedron"
)

// Step is one operator of a recipe. N is the side filter of k, n, x and l
// (0 = every face).
type Step struct {
	Op byte
	N  int
}

// Seed is the starting solid of a recipe. N is the side count of the
// prismatic families and 0 for Platonic seeds.
type Seed struct {
	Symbol byte
	N      int
}

// Recipe is a parsed notation string: Steps in written order (outermost
// first) applied to Seed.
type Recipe struct {
	Steps []Step
	Seed  Seed
}

const (
	platonicSeeds   = "TCODI"
	familySeeds     = "YRAUV"
	plainOps        = "adgprcwqHP"
	numberedOps     = "knxl"
	maxRecipeNumber = 1 << 16
)

// Parse splits a recipe such as "dak4C" into steps and a seed.
//
// Errors: ErrBadRecipe, ErrUnknownOperator, ErrUnknownSeed.
func Parse(recipe string) (Recipe, error) {
	if recipe == "" {
		return Recipe{}, fmt.Errorf("%s: empty: %w", MethodParse, ErrBadRecipe)
	}

	// Seed: trailing letter plus optional digits.
	end := len(recipe)
	digits := end
	for digits > 0 && isDigit(recipe[digits-1]) {
		digits--
	}
	if digits == 0 {
		return Recipe{}, fmt.Errorf("%s: %q has no seed letter: %w", MethodParse, recipe, ErrBadRecipe)
	}
	seed, err := parseSeed(recipe[digits-1], recipe[digits:end])
	if err != nil {
		return Recipe{}, fmt.Errorf("%s: %q: %w", MethodParse, recipe, err)
	}

	var steps []Step
	body := recipe[:digits-1]
	for i := 0; i < len(body); {
		op := body[i]
		j := i + 1
		for j < len(body) && isDigit(body[j]) {
			j++
		}
		step, err := parseStep(op, body[i+1:j])
		if err != nil {
			return Recipe{}, fmt.Errorf("%s: %q at %d: %w", MethodParse, recipe, i, err)
		}
		steps = append(steps, step)
		i = j
	}
	return Recipe{Steps: steps, Seed: seed}, nil
}

func parseSeed(sym byte, num string) (Seed, error) {
	switch {
	case strings.IndexByte(platonicSeeds, sym) >= 0:
		if num != "" {
			return Seed{}, fmt.Errorf("seed %c takes no number: %w", sym, ErrBadRecipe)
		}
		return Seed{Symbol: sym}, nil
	case strings.IndexByte(familySeeds, sym) >= 0:
		if num == "" {
			return Seed{}, fmt.Errorf("seed %c needs a side count: %w", sym, ErrBadRecipe)
		}
		n, err := atoi(num)
		if err != nil {
			return Seed{}, err
		}
		return Seed{Symbol: sym, N: n}, nil
	default:
		return Seed{}, fmt.Errorf("%q: %w", sym, ErrUnknownSeed)
	}
}

func parseStep(op byte, num string) (Step, error) {
	switch {
	case strings.IndexByte(plainOps, op) >= 0:
		if num != "" {
			return Step{}, fmt.Errorf("operator %c takes no number: %w", op, ErrBadRecipe)
		}
		return Step{Op: op}, nil
	case strings.IndexByte(numberedOps, op) >= 0:
		if num == "" {
			return Step{Op: op}, nil
		}
		n, err := atoi(num)
		if err != nil {
			return Step{}, err
		}
		return Step{Op: op, N: n}, nil
	case isDigit(op):
		return Step{}, fmt.Errorf("stray number: %w", ErrBadRecipe)
	default:
		return Step{}, fmt.Errorf("%q: %w", op, ErrUnknownOperator)
	}
}

// atoi accepts only canonical positive numbers, so that Recipe.String
// reproduces the input: "k0" and "k04" are rejected.
func atoi(s string) (int, error) {
	if s[0] == '0' {
		return 0, fmt.Errorf("number %q is zero or zero-padded: %w", s, ErrBadRecipe)
	}
	n, err := strconv.Atoi(s)
	if err != nil || n > maxRecipeNumber {
		return 0, fmt.Errorf("number %q out of range: %w", s, ErrBadRecipe)
	}
	return n, nil
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// String renders r back into notation.
func (r Recipe) String() string {
	var sb strings.Builder
	for _, s := range r.Steps {
		sb.WriteByte(s.Op)
		if s.N != 0 {
			sb.WriteString(strconv.Itoa(s.N))
		}
	}
	sb.WriteByte(r.Seed.Symbol)
	if r.Seed.N != 0 {
		sb.WriteString(strconv.Itoa(r.Seed.N))
	}
	return sb.String()
}

// Apply parses recipe, builds its seed and applies the steps right to left
// using the configured default distances. opts are passed to every step.
func Apply(recipe string, opts ...Option) (*polyhedron.Polyhedron, error) {
	r, err := Parse(recipe)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", MethodApply, err)
	}
	return r.Apply(opts...)
}

// Apply builds r's seed and applies its steps right to left.
func (r Recipe) Apply(opts ...Option) (*polyhedron.Polyhedron, error) {
	p, err := r.Seed.Build()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", MethodApply, err)
	}
	cfg := newConfig(opts...)
	for i := len(r.Steps) - 1; i >= 0; i-- {
		p, err = applyStep(p, r.Steps[i], cfg, opts)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", MethodApply, err)
		}
		cfg.logf("%s: %v", MethodApply, p)
	}
	return p, nil
}

// Build constructs the seed polyhedron.
func (s Seed) Build() (*polyhedron.Polyhedron, error) {
	switch s.Symbol {
	case 'Y':
		return polyhedron.Pyramid(s.N)
	case 'R':
		return polyhedron.Prism(s.N)
	case 'A':
		return polyhedron.Antiprism(s.N)
	case 'U':
		return polyhedron.Cupola(s.N, 0, 0)
	case 'V':
		return polyhedron.Anticupola(s.N, 0, 0)
	}
	name, ok := polyhedron.PlatonicBySymbol(string(s.Symbol))
	if !ok {
		return nil, fmt.Errorf("%q: %w", s.Symbol, ErrUnknownSeed)
	}
	return polyhedron.Platonic(name)
}

func applyStep(p *polyhedron.Polyhedron, s Step, cfg config, opts []Option) (*polyhedron.Polyhedron, error) {
	switch s.Op {
	case 'k':
		return Kis(p, s.N, cfg.apexDist, opts...)
	case 'a':
		return Ambo(p, opts...)
	case 'g':
		return Gyro(p, opts...)
	case 'p':
		return Propellor(p, opts...)
	case 'r':
		return Reflect(p, opts...)
	case 'd':
		return Dual(p, opts...)
	case 'c':
		return Chamfer(p, cfg.chamferDist, opts...)
	case 'w':
		return Whirl(p, opts...)
	case 'q':
		return Quinto(p, opts...)
	case 'n':
		return Inset(p, s.N, cfg.insetDist, cfg.popoutDist, opts...)
	case 'x':
		return Extrude(p, s.N, opts...)
	case 'l':
		return Loft(p, s.N, cfg.insetDist, opts...)
	case 'H':
		return Hollow(p, cfg.hollowInset, cfg.hollowThickness, opts...)
	case 'P':
		return Perspectiva(p, opts...)
	default:
		return nil, fmt.Errorf("%q: %w", s.Op, ErrUnknownOperator)
	}
}
