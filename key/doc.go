// Package key defines the composite-integer namespace used to name vertices
// and faces that may or may not exist yet while an operator is being built.
//
// 🚀 What is a Key?
//
//	A Key is a fixed 4-slot tuple of uint32. Every used slot holds
//	"original index + 1", so the zero value of a slot means "unused" and
//	New1(0) is still distinguishable from the zero Key.
//
//	   New1(v)            → [v+1, 0,   0,   0  ]   an original vertex
//	   Edge(a, b)         → [min+1, max+1, 0, 0]   an undirected edge
//	   New2(TagKis, f)    → [tag+1, f+1, 0, 0  ]   a face-scoped point
//	   FaceEdge(f, a, b)  → [f+1, min+1, max+1, 0] an edge seen from one face
//
// ✨ Guarantees:
//   - Keys are plain comparable values (usable as map keys, == works).
//   - Keys are totally ordered lexicographically by slot (Compare, Less);
//     this is the order used for sort, dedupe and binary search by package flag.
//   - Edge and FaceEdge canonicalize their endpoints, so both traversal
//     directions of an edge produce the same Key.
//   - Operator tags live in a reserved high range (TagBase and above), so a
//     tagged key can never collide with an untagged key of the same arity,
//     whatever the size of the source polyhedron.
//
// Keys carry no ownership and no coordinates; see package flag for the
// resolver that turns keyed declarations into a concrete mesh.
package key
