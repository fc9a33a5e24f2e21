// SPDX-License-Identifier: MIT
// Package: polyhedra/key
//
// tags.go — operator tags placed in the first slot of face-scoped keys.

package key

// Tag marks the namespace of a face-scoped key. Tags are ASCII letters
// lifted into the reserved range above TagBase.
type Tag uint32

// TagBase is the smallest tag value. Vertex and face indices must stay
// below it (2^31), which any in-memory mesh does.
const TagBase Tag = 1 << 31

// Operator tags. Letters follow the operator they serve and are distinct.
const (
	TagKis         = TagBase | 'k' // kis apex per face
	TagAmboVertex  = TagBase | 'd' // ambo face around an original vertex
	TagCenter      = TagBase | 'c' // face center (gyro)
	TagChamferFace = TagBase | 'o' // chamfer: shrunk original face
	TagChamferHex  = TagBase | 'h' // chamfer: hexagon per edge
	TagWhirlInner  = TagBase | 'n' // whirl: inner points near the face center
	TagWhirlFace   = TagBase | 'e' // whirl: rotated inner face
	TagInset       = TagBase | 'f' // inset: inset vertex
	TagInsetFace   = TagBase | 'x' // inset: extruded face
	TagHollowIn    = TagBase | 'i' // hollow: inner rim vertex
	TagHollowDown  = TagBase | 'b' // hollow: rim vertex dropped by thickness
	TagHollowUnder = TagBase | 'u' // hollow: original vertex dropped by thickness
	TagVertex      = TagBase | 'v' // separator slot for vertex-scoped keys
)

// IsTag reports whether t lies in the reserved tag range.
func (t Tag) IsTag() bool { return t >= TagBase }

// Letter returns the ASCII letter of a tag, or 0 for non-tags.
func (t Tag) Letter() byte {
	if !t.IsTag() {
		return 0
	}
	return byte(t &^ TagBase)
}

// String returns the tag letter followed by an apostrophe, e.g. "k'".
func (t Tag) String() string {
	if !t.IsTag() {
		return "?"
	}
	return string([]byte{t.Letter(), '\''})
}
