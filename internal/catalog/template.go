package catalog

import (
	"fmt"

	"meshmark/internal/geom"
)

// TemplateMesh is one reusable shape in template space. All buffers are flat:
// Vertices holds 3 floats per vertex (x,y,z), Faces holds 3 indices per
// triangle. Bounds encloses every vertex. Templates are immutable after
// loading; placement copies the vertex buffer and shares Faces.
type TemplateMesh struct {
	Vertices []float32
	Faces    []uint32
	Bounds   geom.BoundingBox
}

// VertexCount returns the number of vertices.
func (m TemplateMesh) VertexCount() int {
	return len(m.Vertices) / 3
}

// TriangleCount returns the number of triangles.
func (m TemplateMesh) TriangleCount() int {
	return len(m.Faces) / 3
}

// Vertex returns vertex i as a point. i must be < VertexCount.
func (m TemplateMesh) Vertex(i int) geom.Vec3 {
	return geom.Vec3{m.Vertices[3*i], m.Vertices[3*i+1], m.Vertices[3*i+2]}
}

// Validate checks the template invariants: buffer lengths are multiples of 3
// and every face index references an existing vertex. Run at catalog load
// time so export never has to guard against out-of-range indices.
func (m TemplateMesh) Validate() error {
	if len(m.Vertices)%3 != 0 {
		return fmt.Errorf("vertex buffer length %d is not a multiple of 3", len(m.Vertices))
	}
	if len(m.Faces)%3 != 0 {
		return fmt.Errorf("face buffer length %d is not a multiple of 3", len(m.Faces))
	}
	n := uint32(m.VertexCount())
	for i, idx := range m.Faces {
		if idx >= n {
			return fmt.Errorf("face index %d at position %d out of range (have %d vertices)", idx, i, n)
		}
	}
	return nil
}
