package polyhedron_test

import (
	"testing"

	"github.com/katalvlaran/polyhedra/polyhedron"
)

func BenchmarkNewFaceIndex_Antiprism(b *testing.B) {
	p, err := polyhedron.Antiprism(512)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = polyhedron.NewFaceIndex(p)
	}
}

func BenchmarkFingerprint_Dodecahedron(b *testing.B) {
	p, err := polyhedron.Platonic(polyhedron.Dodecahedron)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = p.Fingerprint()
	}
}
