// SPDX-License-Identifier: MIT
// Package: polyhedra/polyhedron
//
// colors.go — area-bucketed face colouring.
//
// Faces whose areas agree in their first six fractional digits land in the
// same bucket; each bucket is hashed with xxhash and mapped onto a palette of
// PaletteSize colours. Equal areas therefore always get equal colours.

package polyhedron

import (
	"encoding/binary"
	"fmt"
	"math"
	"math/rand"

	"github.com/cespare/xxhash/v2"
	"gonum.org/v1/gonum/spatial/r3"
)

const methodColors = "Colors"

// PaletteSize is the number of colours Colors draws from.
const PaletteSize = 16

// RGB is a colour with components in [0, 1].
type RGB struct {
	R, G, B float64
}

// Palette produces n colours. Colors calls it once with PaletteSize.
type Palette func(n int) []RGB

// Colors assigns one colour per face.
//
// Errors: ErrNilPalette, ErrShortPalette.
func (p *Polyhedron) Colors(normals []r3.Vec, palette Palette) ([]RGB, error) {
	if palette == nil {
		return nil, fmt.Errorf("%s: %w", methodColors, ErrNilPalette)
	}
	colours := palette(PaletteSize)
	if len(colours) < PaletteSize {
		return nil, fmt.Errorf("%s: got %d colours: %w", methodColors, len(colours), ErrShortPalette)
	}

	areas := p.Areas(normals)
	out := make([]RGB, len(areas))
	var buf [4]byte
	for i, a := range areas {
		binary.LittleEndian.PutUint32(buf[:], areaBucket(a))
		out[i] = colours[xxhash.Sum64(buf[:])%PaletteSize]
	}
	return out, nil
}

// areaBucket keeps six fractional digits of a, ignoring the integer part.
func areaBucket(a float64) uint32 {
	_, frac := math.Modf(a)
	return uint32(frac * 1e6)
}

// HSLPalette returns a Palette drawing random hues with moderate saturation
// and lightness from rng. The caller owns seeding. Panics if rng is nil.
func HSLPalette(rng *rand.Rand) Palette {
	if rng == nil {
		panic("polyhedron: HSLPalette(nil rng)")
	}
	return func(n int) []RGB {
		out := make([]RGB, n)
		for i := range out {
			h := rng.Float64()
			s := 0.5*rng.Float64() + 0.3
			l := 0.5*rng.Float64() + 0.45
			out[i] = hslToRGB(h, s, l)
		}
		return out
	}
}

func hslToRGB(h, s, l float64) RGB {
	if s == 0 {
		return RGB{R: l, G: l, B: l}
	}
	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q
	return RGB{
		R: hueToRGB(p, q, h+1.0/3.0),
		G: hueToRGB(p, q, h),
		B: hueToRGB(p, q, h-1.0/3.0),
	}
}

func hueToRGB(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6.0:
		return p + (q-p)*6*t
	case t < 0.5:
		return q
	case t < 2.0/3.0:
		return p + (q-p)*(2.0/3.0-t)*6
	default:
		return p
	}
}
