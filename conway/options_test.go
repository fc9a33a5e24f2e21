package conway_test

import (
	"bytes"
	"context"
	"log"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polyhedra/conway"
	"github.com/katalvlaran/polyhedra/flag"
)

func TestOptions_PanicOnInvalid(t *testing.T) {
	t.Parallel()

	nan, inf := math.NaN(), math.Inf(1)
	cases := map[string]func(){
		"ApexNaN":       func() { conway.WithApexDist(nan) },
		"ChamferInf":    func() { conway.WithChamferDist(inf) },
		"InsetNaN":      func() { conway.WithInsetDist(nan) },
		"PopoutInf":     func() { conway.WithPopoutDist(-inf) },
		"ExtrudeNaN":    func() { conway.WithExtrudeDist(nan) },
		"HollowInset":   func() { conway.WithHollow(nan, 0.1) },
		"HollowThick":   func() { conway.WithHollow(0.2, inf) },
		"ChunkZero":     func() { conway.WithChunkSize(0) },
		"WorkersNeg":    func() { conway.WithWorkers(-1) },
		"NilContext":    func() { conway.WithContext(nil) },
		"NilLogger":     func() { conway.WithLogger(nil) },
		"NilDegenerate": func() { conway.WithDegenerateHandler(nil) },
	}
	for name, fn := range cases {
		assert.Panics(t, fn, name)
	}
}

func TestOptions_ValidDoNotPanic(t *testing.T) {
	t.Parallel()

	assert.NotPanics(t, func() {
		_ = []conway.Option{
			conway.WithApexDist(-0.2),
			conway.WithChamferDist(0),
			conway.WithHollow(0.5, 0.3),
			conway.WithChunkSize(1),
			conway.WithWorkers(1),
			conway.WithContext(context.Background()),
			conway.WithLogger(log.New(&bytes.Buffer{}, "", 0)),
			conway.WithDegenerateHandler(func(flag.Warning) {}),
		}
	})
}

// TestOptions_LastWins: later options override earlier ones.
func TestOptions_LastWins(t *testing.T) {
	t.Parallel()

	a, err := conway.Apply("kC", conway.WithApexDist(0.9), conway.WithApexDist(0.1))
	require.NoError(t, err)
	b, err := conway.Apply("kC")
	require.NoError(t, err)
	assert.Equal(t, b.Fingerprint(), a.Fingerprint())
}

func TestOptions_ChangeOutput(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		recipe string
		opt    conway.Option
	}{
		{"kC", conway.WithApexDist(0.3)},
		{"cC", conway.WithChamferDist(0.2)},
		{"nC", conway.WithInsetDist(0.1)},
		{"nC", conway.WithPopoutDist(0.4)},
		{"xC", conway.WithExtrudeDist(0.4)},
		{"lC", conway.WithInsetDist(0.1)},
		{"HC", conway.WithHollow(0.4, 0.2)},
	} {
		def, err := conway.Apply(tc.recipe)
		require.NoError(t, err)
		got, err := conway.Apply(tc.recipe, tc.opt)
		require.NoError(t, err)
		assert.NotEqual(t, def.Fingerprint(), got.Fingerprint(), tc.recipe)
		assert.Equal(t, len(def.Faces), len(got.Faces), tc.recipe)
	}
}

func TestOptions_LoggerTracesApply(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	_, err := conway.Apply("dkC", conway.WithLogger(log.New(&buf, "", 0)))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Apply: kC")
	assert.Contains(t, buf.String(), "Apply: dkC")
}
