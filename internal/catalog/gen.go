package catalog

import (
	"github.com/chewxy/math32"

	"meshmark/internal/geom"
)

// genBox builds a box mesh centered on the origin in X/Z, sitting on Y=0
// with the given width (X), height (Y), and depth (Z). 8 vertices, 12
// triangles, outward winding.
func genBox(width, height, depth float32) TemplateMesh {
	hw, hd := width/2, depth/2
	vertices := []float32{
		-hw, 0, -hd, // 0: bottom back left
		hw, 0, -hd, // 1: bottom back right
		hw, 0, hd, // 2: bottom front right
		-hw, 0, hd, // 3: bottom front left
		-hw, height, -hd, // 4: top back left
		hw, height, -hd, // 5: top back right
		hw, height, hd, // 6: top front right
		-hw, height, hd, // 7: top front left
	}
	faces := []uint32{
		0, 1, 2, 0, 2, 3, // bottom (-Y)
		4, 6, 5, 4, 7, 6, // top (+Y)
		3, 2, 6, 3, 6, 7, // front (+Z)
		1, 0, 4, 1, 4, 5, // back (-Z)
		0, 3, 7, 0, 7, 4, // left (-X)
		1, 5, 6, 1, 6, 2, // right (+X)
	}
	return TemplateMesh{
		Vertices: vertices,
		Faces:    faces,
		Bounds:   geom.BoundsOf(vertices),
	}
}

// genCylinder builds a closed cylinder around the Y axis with its base on
// Y=0 and its top at Y=height, like the base-at-origin convention used for
// cylinder primitives elsewhere in the tool. Vertex layout: bottom center,
// top center, then the bottom ring, then the top ring. Caps are triangle
// fans; each side quad is split into two triangles. Winding keeps normals
// pointing outward (-Y bottom cap, +Y top cap, radial sides).
func genCylinder(radius, height float32, segments int) TemplateMesh {
	if segments < 3 {
		segments = 3
	}
	n := uint32(segments)

	vertices := make([]float32, 0, (2+2*segments)*3)
	vertices = append(vertices, 0, 0, 0) // 0: bottom center
	vertices = append(vertices, 0, height, 0) // 1: top center
	for i := 0; i < segments; i++ {
		a := 2 * math32.Pi * float32(i) / float32(segments)
		x, z := radius*math32.Cos(a), radius*math32.Sin(a)
		vertices = append(vertices, x, 0, z)
	}
	for i := 0; i < segments; i++ {
		a := 2 * math32.Pi * float32(i) / float32(segments)
		x, z := radius*math32.Cos(a), radius*math32.Sin(a)
		vertices = append(vertices, x, height, z)
	}

	faces := make([]uint32, 0, 4*segments*3)
	bottom := uint32(2)
	top := uint32(2) + n
	for i := uint32(0); i < n; i++ {
		next := (i + 1) % n
		// Bottom cap, wound so the normal faces -Y.
		faces = append(faces, 0, bottom+i, bottom+next)
		// Top cap, reversed so the normal faces +Y.
		faces = append(faces, 1, top+next, top+i)
		// Side quad as two triangles, wound radially outward.
		faces = append(faces, bottom+i, top+i, bottom+next)
		faces = append(faces, bottom+next, top+i, top+next)
	}

	return TemplateMesh{
		Vertices: vertices,
		Faces:    faces,
		Bounds:   geom.BoundsOf(vertices),
	}
}
