package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meshmark/internal/geom"
)

func TestRegistryLookup(t *testing.T) {
	t.Parallel()

	r := NewRegistry()

	t.Run("built-in types present and valid", func(t *testing.T) {
		t.Parallel()
		for _, name := range []string{"hs-cap", "hs-cap-small", "hs-post", "hs-bracket"} {
			tm, ok := r.Lookup(name)
			require.True(t, ok, "missing built-in %s", name)
			assert.NoError(t, tm.Validate())
			assert.Greater(t, tm.TriangleCount(), 0)
		}
	})

	t.Run("unknown type reports ok=false", func(t *testing.T) {
		t.Parallel()
		_, ok := r.Lookup("no-such-shape")
		assert.False(t, ok)
	})
}

func TestTemplateValidate(t *testing.T) {
	t.Parallel()

	t.Run("face index out of range", func(t *testing.T) {
		t.Parallel()
		bad := TemplateMesh{
			Vertices: []float32{0, 0, 0, 1, 0, 0, 0, 1, 0},
			Faces:    []uint32{0, 1, 3},
		}
		assert.Error(t, bad.Validate())
	})

	t.Run("ragged vertex buffer", func(t *testing.T) {
		t.Parallel()
		bad := TemplateMesh{Vertices: []float32{0, 0}}
		assert.Error(t, bad.Validate())
	})
}

func TestGenCylinder(t *testing.T) {
	t.Parallel()

	const segments = 8
	m := genCylinder(0.5, 1.0, segments)

	require.NoError(t, m.Validate())
	// 2 centers + 2 rings of vertices; 4 triangles per segment (2 caps + 2 side).
	assert.Equal(t, 2+2*segments, m.VertexCount())
	assert.Equal(t, 4*segments, m.TriangleCount())
	wantMin := geom.Vec3{-0.5, 0, -0.5}
	wantMax := geom.Vec3{0.5, 1, 0.5}
	for i := 0; i < 3; i++ {
		assert.InDelta(t, float64(wantMin[i]), float64(m.Bounds.Min[i]), 1e-6)
		assert.InDelta(t, float64(wantMax[i]), float64(m.Bounds.Max[i]), 1e-6)
	}

	// Every cap triangle's normal points straight up or down.
	for i := 0; i < m.TriangleCount(); i++ {
		a, b, c := m.Faces[3*i], m.Faces[3*i+1], m.Faces[3*i+2]
		if a != 0 && a != 1 {
			continue
		}
		n := geom.FaceNormal(m.Vertex(int(a)), m.Vertex(int(b)), m.Vertex(int(c)))
		if a == 0 {
			assert.InDelta(t, -1, float64(n[1]), 1e-5, "bottom cap triangle %d", i)
		} else {
			assert.InDelta(t, 1, float64(n[1]), 1e-5, "top cap triangle %d", i)
		}
	}
}

func TestGenBox(t *testing.T) {
	t.Parallel()

	m := genBox(2, 1, 4)
	require.NoError(t, m.Validate())
	assert.Equal(t, 8, m.VertexCount())
	assert.Equal(t, 12, m.TriangleCount())
	assert.Equal(t, geom.Vec3{-1, 0, -2}, m.Bounds.Min)
	assert.Equal(t, geom.Vec3{1, 1, 2}, m.Bounds.Max)
}

func TestLoadDefs(t *testing.T) {
	t.Parallel()

	t.Run("registers box and cylinder defs", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "templates.yaml")
		doc := `templates:
  - type: hs-plate
    kind: box
    size: [0.6, 0.05, 0.6]
  - type: hs-cap-wide
    kind: cylinder
    radius: 0.35
    height: 0.12
    segments: 12
`
		require.NoError(t, os.WriteFile(path, []byte(doc), 0644))

		r := NewRegistry()
		require.NoError(t, r.LoadDefs(path))

		plate, ok := r.Lookup("hs-plate")
		require.True(t, ok)
		assert.Equal(t, 12, plate.TriangleCount())

		wide, ok := r.Lookup("hs-cap-wide")
		require.True(t, ok)
		assert.Equal(t, 4*12, wide.TriangleCount())
	})

	t.Run("rejects unknown kind", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "templates.yaml")
		doc := "templates:\n  - type: weird\n    kind: torus\n"
		require.NoError(t, os.WriteFile(path, []byte(doc), 0644))

		r := NewRegistry()
		assert.Error(t, r.LoadDefs(path))
	})
}
