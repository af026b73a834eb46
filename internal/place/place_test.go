package place

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meshmark/internal/catalog"
	"meshmark/internal/geom"
	"meshmark/internal/scene"
)

// triangleTemplate is a one-triangle template used across placement tests.
func triangleTemplate() catalog.TemplateMesh {
	t := catalog.TemplateMesh{
		Vertices: []float32{0, 0, 0, 1, 0, 0, 0, 1, 0},
		Faces:    []uint32{0, 1, 2},
		Bounds:   geom.BoundsOf([]float32{0, 0, 0, 1, 0, 0, 0, 1, 0}),
	}
	return t
}

func TestPlaceTranslatesEveryVertex(t *testing.T) {
	t.Parallel()

	tpl := triangleTemplate()
	a := scene.AnchorPoint{ID: "a1", Position: geom.NewVec3(10, -5, 2.5), ShapeType: "x", CreatedAt: time.Now()}

	inst := Place(tpl, a)

	require.Equal(t, "a1", inst.SourceAnchorID)
	require.Len(t, inst.Vertices, len(tpl.Vertices))
	for i, v := range tpl.Vertices {
		want := v + a.Position[i%3]
		assert.InDelta(t, float64(want), float64(inst.Vertices[i]), 1e-6, "coordinate %d", i)
	}
}

func TestPlaceTranslatesBounds(t *testing.T) {
	t.Parallel()

	tpl := triangleTemplate()
	a := scene.AnchorPoint{ID: "a1", Position: geom.NewVec3(3, 4, 5)}

	inst := Place(tpl, a)
	assert.Equal(t, tpl.Bounds.Min.Add(a.Position), inst.Bounds.Min)
	assert.Equal(t, tpl.Bounds.Max.Add(a.Position), inst.Bounds.Max)
}

func TestPlaceSharesFacesAndCopiesVertices(t *testing.T) {
	t.Parallel()

	tpl := triangleTemplate()
	inst := Place(tpl, scene.AnchorPoint{ID: "a1", Position: geom.NewVec3(1, 1, 1)})

	// Faces are the same backing array; vertices are a fresh copy.
	assert.Same(t, &tpl.Faces[0], &inst.Faces[0])
	assert.NotSame(t, &tpl.Vertices[0], &inst.Vertices[0])
	assert.Equal(t, float32(0), tpl.Vertices[0], "template must not be mutated")
}

func TestPlaceAllSkipsUnknownShapeTypes(t *testing.T) {
	t.Parallel()

	reg := catalog.NewRegistry()
	anchors := []scene.AnchorPoint{
		{ID: "a1", Position: geom.NewVec3(0, 0, 0), ShapeType: "hs-cap"},
		{ID: "a2", Position: geom.NewVec3(1, 0, 0), ShapeType: "definitely-unknown"},
		{ID: "a3", Position: geom.NewVec3(2, 0, 0), ShapeType: "hs-post"},
	}

	placed := PlaceAll(reg, anchors)
	require.Len(t, placed, 2)
	assert.Equal(t, "a1", placed[0].SourceAnchorID)
	assert.Equal(t, "a3", placed[1].SourceAnchorID)
}
