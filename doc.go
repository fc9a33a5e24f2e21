// Package polyhedra is an in-memory workshop for building polyhedra and
// rewriting them with Conway operators.
//
// 🚀 What is polyhedra?
//
//	A small, deterministic library that brings together:
//		• Seeds: Platonic solids and the pyramid, prism, antiprism, cupola
//		  and anticupola families
//		• Symbolic construction: vertices and faces declared by Key, resolved
//		  into indexed meshes by flag.Flag
//		• Operators: kis, ambo, gyro, propellor, reflect, dual, chamfer,
//		  whirl, quinto, inset, extrude, loft, hollow, perspectiva
//		• Notation: recipes such as "dakC" parsed and applied right to left
//		• Geometry: normals, centres, areas, volume, area-bucketed colours
//		• Parallel kis: face chunks resolved concurrently
//
// Under the hood, everything is organized under four subpackages:
//
//	key/        — fixed-width symbolic names with a total order
//	vec/        — small r3.Vec helpers (midpoint, tween, mean, normalize)
//	flag/       — declare-then-resolve mesh builder
//	polyhedron/ — the Polyhedron type, seeds, geometry, FaceIndex
//	conway/     — the operators, options and recipe notation
//
// Quick example:
//
//	p, err := conway.Apply("dakC")
//	if err != nil { ... }
//	fmt.Println(p) // dakC (V=.. E=.. F=..)
//
//	go get github.com/katalvlaran/polyhedra
package polyhedra
