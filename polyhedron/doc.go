// Package polyhedron is the mesh data model every Conway operator consumes
// and produces.
//
// 🚀 What is here?
//
//	• Polyhedron     — a name, vertex coordinates (gonum r3.Vec) and faces as
//	                   index lists; winding follows the right-hand rule so the
//	                   face normal points outward.
//	• Seeds          — the five Platonic solids plus the prismatic families:
//	                   Pyramid, Prism, Antiprism, Cupola, Anticupola.
//	• Queries        — face normals, centers, areas, averaged and per-vertex
//	                   normals, edge list, Euler characteristic, bounding-box
//	                   normalization.
//	• FaceIndex      — directed-edge → face lookup; Opposite answers "which
//	                   face is on the other side of this edge".
//	• Colors         — area-bucketed face colouring against a Palette.
//	• Fingerprint    — a name-independent 64-bit xxhash of the mesh.
//
// ✨ Contract:
//
//	A Polyhedron is treated as immutable. Queries return fresh slices,
//	operators build new values, Clone deep-copies. Validate checks the index
//	invariant; operators assume it holds.
//
// ⚙️ Geometry caveat:
//
//	FaceNormal uses only the first three vertices of a face. For planar convex
//	faces that is exact; for warped faces it is an approximation.
package polyhedron
