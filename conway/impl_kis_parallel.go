// SPDX-License-Identifier: MIT
// Package: polyhedra/conway
//
// impl_kis_parallel.go — KisParallel(p, n, apexDist): chunked data-parallel kis.
//
// Model:
//   • Faces are split into consecutive chunks of cfg.chunkSize.
//   • Each chunk declares its faces into a private flag.Flag and resolves it
//     on an errgroup worker (at most cfg.workers at once). Nothing is shared
//     between workers except the read-only input.
//   • A sequential merge in chunk order shifts each chunk's face indices by
//     the number of vertices emitted before it and concatenates.
//
// Consequences:
//   • An original vertex used by several chunks is emitted once per chunk.
//     Vertex indices stay contiguous; global deduplication is not attempted.
//   • With a single chunk the output equals Kis exactly.
//   • Once cfg.ctx is done no further chunk is started and ctx.Err() is
//     returned, wrapped.
//
// Complexity:
//   • Time: O(C log(C/k)) work over chunks of k faces, spread over cfg.workers;
//     the merge is O(V′ + C′) and sequential.
//   • Space: O(V′ + C′) plus one private flag per running worker.

package conway

import (
	"fmt"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/polyhedra/flag"
	"github.com/katalvlaran/polyhedra/polyhedron"
)

// KisParallel is Kis computed in independent face chunks.
func KisParallel(p *polyhedron.Polyhedron, n int, apexDist float64, opts ...Option) (*polyhedron.Polyhedron, error) {
	if err := checkInput(MethodKisParallel, p); err != nil {
		return nil, err
	}
	if err := checkN(MethodKisParallel, n); err != nil {
		return nil, err
	}
	cfg := newConfig(opts...)

	size := cfg.chunkSize
	chunks := (len(p.Faces) + size - 1) / size
	cfg.logf("%s: %d faces in %d chunks of %d on %d workers", MethodKisParallel, len(p.Faces), chunks, size, cfg.workers)

	meshes := make([]flag.Mesh, chunks)
	matched := make([]int, chunks)

	g, ctx := errgroup.WithContext(cfg.ctx)
	g.SetLimit(cfg.workers)
	for c := 0; c < chunks; c++ {
		if ctx.Err() != nil {
			break
		}
		c := c // per-iteration copy (go directive lowered to 1.21 for the local toolchain)
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			lo := c * size
			hi := min(lo+size, len(p.Faces))

			f := flag.New(2 * (hi - lo))
			for fi := lo; fi < hi; fi++ {
				if kisFace(f, p, fi, n, apexDist) {
					matched[c]++
				}
			}
			m, err := f.Resolve()
			if err != nil {
				return fmt.Errorf("chunk %d: %w", c, err)
			}
			meshes[c] = m
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%s: %w", MethodKisParallel, err)
	}
	if err := cfg.ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", MethodKisParallel, err)
	}

	return mergeChunks(kisName(p, n), meshes, matched, n, cfg), nil
}

// mergeChunks concatenates chunk meshes in order, offsetting face indices.
func mergeChunks(name string, meshes []flag.Mesh, matched []int, n int, cfg config) *polyhedron.Polyhedron {
	var nv, nf, hits int
	for i, m := range meshes {
		nv += len(m.Vertices)
		nf += len(m.Faces)
		hits += matched[i]
	}
	out := &polyhedron.Polyhedron{
		Name:     name,
		Vertices: make([]r3.Vec, 0, nv),
		Faces:    make([][]int, 0, nf),
	}
	for _, m := range meshes {
		shifted := m.Offset(len(out.Vertices))
		out.Vertices = append(out.Vertices, m.Vertices...)
		out.Faces = append(out.Faces, shifted.Faces...)
		cfg.report(MethodKisParallel, m.Warnings)
	}
	if hits == 0 {
		noMatch(cfg, MethodKisParallel, n)
	}
	return out
}
