// Package marker builds the pin geometry that marks anchor points in
// exported files. Markers are capped cylinders generated procedurally from
// the anchor position alone; they never consult the template catalog, so an
// anchor with an unknown shape type still gets its pin.
package marker

import (
	"github.com/chewxy/math32"

	"meshmark/internal/geom"
)

// Height is the marker pin height in length units.
const Height = 0.3

// Radius policy: the small cap shape gets a thinner pin so it stays visible
// next to its template; everything else shares one radius.
const (
	smallRadius   = 0.1
	defaultRadius = 0.15
)

// smallShapeType is the one shape type with the thinner pin.
const smallShapeType = "hs-cap-small"

// Mesh is one generated marker. Vertex order is fixed: bottom center, top
// center, the bottom circle, then the top circle. Face order is fixed too:
// the bottom-cap fan, the top-cap fan, then two side triangles per segment.
// The serializers rely on both orders for index bookkeeping and for the STL
// cap/side normal rules.
type Mesh struct {
	Vertices []float32
	Faces    []uint32
	Segments int
}

// VertexCount returns the number of vertices: 2 centers plus 2 rings.
func (m Mesh) VertexCount() int {
	return 2 + 2*m.Segments
}

// TriangleCount returns the number of triangles: one cap fan per end plus
// two triangles per side quad, 4*Segments total.
func (m Mesh) TriangleCount() int {
	return 4 * m.Segments
}

// Vertex returns vertex i as a point.
func (m Mesh) Vertex(i int) geom.Vec3 {
	return geom.Vec3{m.Vertices[3*i], m.Vertices[3*i+1], m.Vertices[3*i+2]}
}

// SideNormal returns the outward normal shared by both triangles of side
// quad s: the radial bisector of the segment's two angles, flat in Y.
func (m Mesh) SideNormal(s int) geom.Vec3 {
	a1 := 2 * math32.Pi * float32(s) / float32(m.Segments)
	a2 := 2 * math32.Pi * float32(s+1) / float32(m.Segments)
	n := geom.Vec3{math32.Cos(a1) + math32.Cos(a2), 0, math32.Sin(a1) + math32.Sin(a2)}
	return n.Normalize()
}

// RadiusFor returns the marker radius for the given shape type.
func RadiusFor(shapeType string) float32 {
	if shapeType == smallShapeType {
		return smallRadius
	}
	return defaultRadius
}

// Generate builds the marker cylinder for an anchor at point. The cylinder
// stands on the Y axis through point, from point's Y to Y+Height, with the
// circle centered on point's X/Z. segments must be ≥ 3; the ring angle for
// vertex i is 2π·i/segments. Winding keeps all normals outward: the bottom
// cap winds opposite to the top cap.
func Generate(point geom.Vec3, shapeType string, segments int) Mesh {
	radius := RadiusFor(shapeType)
	n := uint32(segments)

	vertices := make([]float32, 0, (2+2*segments)*3)
	vertices = append(vertices, point[0], point[1], point[2])        // bottom center
	vertices = append(vertices, point[0], point[1]+Height, point[2]) // top center
	for i := 0; i < segments; i++ {
		a := 2 * math32.Pi * float32(i) / float32(segments)
		vertices = append(vertices, point[0]+radius*math32.Cos(a), point[1], point[2]+radius*math32.Sin(a))
	}
	for i := 0; i < segments; i++ {
		a := 2 * math32.Pi * float32(i) / float32(segments)
		vertices = append(vertices, point[0]+radius*math32.Cos(a), point[1]+Height, point[2]+radius*math32.Sin(a))
	}

	faces := make([]uint32, 0, 4*segments*3)
	bottom := uint32(2)
	top := uint32(2) + n
	// Bottom cap fan, wound so the normal faces -Y.
	for i := uint32(0); i < n; i++ {
		faces = append(faces, 0, bottom+i, bottom+(i+1)%n)
	}
	// Top cap fan, reversed winding so the normal faces +Y.
	for i := uint32(0); i < n; i++ {
		faces = append(faces, 1, top+(i+1)%n, top+i)
	}
	// Side quads, two triangles each, wound radially outward.
	for i := uint32(0); i < n; i++ {
		next := (i + 1) % n
		faces = append(faces, bottom+i, top+i, bottom+next)
		faces = append(faces, bottom+next, top+i, top+next)
	}

	return Mesh{Vertices: vertices, Faces: faces, Segments: segments}
}
