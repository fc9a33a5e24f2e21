// Package flag is the symbolic mesh builder every polyhedron operator writes to.
//
// 🚀 What is a Flag?
//
//	An operator walks its input and, instead of allocating vertex indices,
//	describes the new mesh with keys (package key):
//	  • AddVertex(k, p)          — "there is a vertex named k at p"
//	  • AddFace(k1, k2, ...)     — "there is a face visiting these keys, in order"
//	  • AddFaceMap(f, from, to)  — "face f, arriving at from, next visits to"
//	Two face walks that reach the same logical point build the same key, so
//	they agree on identity without talking to each other.
//
// ⚙️ Resolve:
//
//	Resolve collapses the declarations into a concrete mesh in two passes:
//	  1. Vertices: stable sort by key, drop duplicate keys (first declaration
//	     wins), number the survivors 0..N-1 in key order.
//	  2. Faces: map faces first (edges grouped by face key and walked from the
//	     group's first "to" key until the cycle closes), then explicit faces in
//	     declaration order. Every key is mapped through a binary search over the
//	     sorted vertex table.
//
// Error policy:
//   - A face that references an undeclared vertex key aborts Resolve with
//     ErrKeyNotFound: a missing key is always an operator bug.
//   - A map face that cannot be closed within MaxFaceSteps, whose chain
//     dead-ends, or that closes on fewer than 3 vertices is replaced by a
//     3-index placeholder and reported as a Warning in Mesh.Warnings. It
//     never aborts the transform.
//
// Concurrency:
//
//	A Flag is owned by exactly one goroutine. Independent Flags share nothing,
//	which is what makes the chunked parallel kis in package conway lock-free.
//
// Complexity: Resolve is O(V log V + M log M + Σ|face| · log V) for V vertex
// declarations, M map edges.
package flag
