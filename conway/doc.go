// Package conway implements Conway-style polyhedron operators on top of the
// symbolic flag builder.
//
// 🚀 Operators (prefix → function):
//
//	k / k<n>  Kis          raise a pyramid on every (n-sided) face
//	a         Ambo         truncate to edge midpoints
//	g         Gyro         pentagonal faces spiralling around each face center
//	p         Propellor    rotated inner face plus a quad per corner
//	r         Reflect      mirror through the origin, faces reversed
//	d         Dual         one vertex per face, one face per vertex
//	c         Chamfer      shrink faces, add a hexagon per edge
//	w         Whirl        hexagons per edge around a rotated inner face
//	q         Quinto       pentagon per corner around an inner face
//	n / n<n>  Inset        inset and pop out every (n-sided) face
//	x / x<n>  Extrude      inset with zero inset, pushed outward
//	l / l<n>  Loft         inset with no pop-out
//	H         Hollow       carve a window through every face, closed shell
//	P         Perspectiva  stellated inset face with corner triangles
//
// KisParallel is the chunked data-parallel form of Kis, built on
// golang.org/x/sync/errgroup.
//
// ✨ Notation:
//
//	Apply("dakC") reads right to left: seed C (cube), then k, a, d. Seeds are
//	T C O D I and the families Y<n> R<n> A<n> U<n> V<n>. The result's Name is
//	the recipe itself.
//
// ⚙️ Options:
//
//	Functional options configure Apply's default distances, the parallel kis
//	chunking, a context, a *log.Logger and a handler for degenerate faces.
//	Invalid option values panic at construction; operators return errors.
//
// Every operator is safe to call concurrently on shared input: inputs are
// only read and every call owns its flag.
package conway
