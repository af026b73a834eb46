// Package place positions template meshes at anchor points. Placement is a
// rigid transform that today only carries translation; the 4×4 matrix shape
// is kept so rotation and scale can be filled in later without changing the
// placement API.
package place

import (
	"meshmark/internal/catalog"
	"meshmark/internal/geom"
	"meshmark/internal/scene"
)

// PlacedInstance is one template mesh moved to an anchor point. Vertices is a
// translated copy; Faces is the template's buffer shared unmodified (the
// vertex count does not change, so the indices stay valid). Instances are
// built per export call and not kept.
type PlacedInstance struct {
	SourceAnchorID string
	Vertices       []float32
	Faces          []uint32
	Bounds         geom.BoundingBox
}

// VertexCount returns the number of vertices.
func (p PlacedInstance) VertexCount() int {
	return len(p.Vertices) / 3
}

// TriangleCount returns the number of triangles.
func (p PlacedInstance) TriangleCount() int {
	return len(p.Faces) / 3
}

// Vertex returns vertex i as a point. i must be < VertexCount.
func (p PlacedInstance) Vertex(i int) geom.Vec3 {
	return geom.Vec3{p.Vertices[3*i], p.Vertices[3*i+1], p.Vertices[3*i+2]}
}

// Place moves the template to the anchor's position. Pure function: the
// template is never written, and each call allocates a fresh vertex buffer.
func Place(t catalog.TemplateMesh, a scene.AnchorPoint) PlacedInstance {
	m := geom.Translation(a.Position)
	offset := m.TranslationPart()

	vertices := make([]float32, len(t.Vertices))
	for i := 0; i+2 < len(t.Vertices); i += 3 {
		p := m.Apply(geom.Vec3{t.Vertices[i], t.Vertices[i+1], t.Vertices[i+2]})
		vertices[i], vertices[i+1], vertices[i+2] = p[0], p[1], p[2]
	}

	return PlacedInstance{
		SourceAnchorID: a.ID,
		Vertices:       vertices,
		Faces:          t.Faces,
		Bounds:         t.Bounds.Translate(offset),
	}
}

// PlaceAll places every anchor whose shape type the registry knows. Anchors
// with unknown shape types are skipped, not errors: the anchor still gets a
// marker in exports, just no template geometry. Order follows the input.
func PlaceAll(reg *catalog.Registry, anchors []scene.AnchorPoint) []PlacedInstance {
	out := make([]PlacedInstance, 0, len(anchors))
	for _, a := range anchors {
		t, ok := reg.Lookup(a.ShapeType)
		if !ok {
			continue
		}
		out = append(out, Place(t, a))
	}
	return out
}
