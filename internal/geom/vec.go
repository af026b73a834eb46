package geom

import (
	"github.com/chewxy/math32"
)

// Vec3 is a 3D point or direction. Stored as a plain array so slices of
// vertices can alias flat float buffers without conversion cost.
type Vec3 [3]float32

// NewVec3 returns the vector (x, y, z).
func NewVec3(x, y, z float32) Vec3 {
	return Vec3{x, y, z}
}

// Add returns v + o componentwise.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v[0] + o[0], v[1] + o[1], v[2] + o[2]}
}

// Sub returns v - o componentwise.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v[0] - o[0], v[1] - o[1], v[2] - o[2]}
}

// Scale returns v scaled by s.
func (v Vec3) Scale(s float32) Vec3 {
	return Vec3{v[0] * s, v[1] * s, v[2] * s}
}

// Cross returns the cross product v × o.
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		v[1]*o[2] - v[2]*o[1],
		v[2]*o[0] - v[0]*o[2],
		v[0]*o[1] - v[1]*o[0],
	}
}

// Dot returns the dot product v · o.
func (v Vec3) Dot(o Vec3) float32 {
	return v[0]*o[0] + v[1]*o[1] + v[2]*o[2]
}

// Length returns the Euclidean length of v.
func (v Vec3) Length() float32 {
	return math32.Sqrt(v.Dot(v))
}

// Normalize returns v scaled to unit length. The zero vector is returned
// unchanged rather than dividing by zero.
func (v Vec3) Normalize() Vec3 {
	l := v.Length()
	if l == 0 {
		return v
	}
	return v.Scale(1 / l)
}

// FaceNormal returns the unit normal of the triangle (v1, v2, v3), oriented
// by winding order (counter-clockwise = normal toward the viewer). For a
// degenerate (collinear or repeated-vertex) triangle the cross product has
// zero length and the zero vector is returned as-is; callers emit it verbatim
// instead of treating it as an error.
func FaceNormal(v1, v2, v3 Vec3) Vec3 {
	edge1 := v2.Sub(v1)
	edge2 := v3.Sub(v1)
	n := edge1.Cross(edge2)
	if n.Length() == 0 {
		return Vec3{}
	}
	return n.Normalize()
}
