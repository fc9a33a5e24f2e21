// SPDX-License-Identifier: MIT
// Package: polyhedra/polyhedron
//
// fingerprint.go — name-independent 64-bit digest of a mesh.

package polyhedron

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// fingerprintScale quantizes coordinates before hashing so that values equal
// to six decimals hash equally.
const fingerprintScale = 1e6

// Fingerprint hashes vertex coordinates (quantized) and face index lists in
// order. Two meshes with the same fingerprint are, with overwhelming
// probability, identical up to name and sub-micro coordinate noise.
func (p *Polyhedron) Fingerprint() uint64 {
	d := xxhash.New()
	buf := make([]byte, 0, 64)

	buf = binary.LittleEndian.AppendUint64(buf, uint64(len(p.Vertices)))
	buf = binary.LittleEndian.AppendUint64(buf, uint64(len(p.Faces)))
	_, _ = d.Write(buf)

	for _, v := range p.Vertices {
		buf = buf[:0]
		for _, c := range [3]float64{v.X, v.Y, v.Z} {
			buf = binary.LittleEndian.AppendUint64(buf, uint64(int64(math.Round(c*fingerprintScale))))
		}
		_, _ = d.Write(buf)
	}
	for _, face := range p.Faces {
		buf = binary.LittleEndian.AppendUint32(buf[:0], uint32(len(face)))
		for _, i := range face {
			buf = binary.LittleEndian.AppendUint32(buf, uint32(i))
		}
		_, _ = d.Write(buf)
	}
	return d.Sum64()
}
